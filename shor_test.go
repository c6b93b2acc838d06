package qsim

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFindFactors(t *testing.T) {
	Convey("Given the classic target 15", t, func() {
		m := NewSeededMeasurer(1234)

		Convey("The run produces a nontrivial factorization", func() {
			res, err := FindFactors(15, nil, m, 50)
			So(err, ShouldBeNil)
			So(res.Factors[0]*res.Factors[1], ShouldEqual, 15)
			So(res.Factors[0], ShouldBeGreaterThan, 1)
			So(res.Factors[0], ShouldBeLessThan, 15)
			So(res.RunID, ShouldNotBeEmpty)
			So(res.N, ShouldEqual, 15)
		})
	})

	Convey("Given degenerate inputs", t, func() {
		m := NewSeededMeasurer(1)

		Convey("Even numbers short-circuit without quantum work", func() {
			res, err := FindFactors(14, nil, m, 1)
			So(err, ShouldBeNil)
			So(res.Factors, ShouldResemble, [2]int{2, 7})
			So(res.Attempts, ShouldEqual, 0)
		})

		Convey("Values below 4 are rejected", func() {
			_, err := FindFactors(3, nil, m, 1)
			So(err, ShouldNotBeNil)
		})

		Convey("A nil measurer is rejected", func() {
			_, err := FindFactors(15, nil, nil, 1)
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given a capacity-starved configuration", t, func() {
		cfg := &Config{MaxQubits: 4, MemoryHeadroom: 0.5}

		Convey("The run fails before allocating the register", func() {
			_, err := FindFactors(15, cfg, NewSeededMeasurer(1), 5)
			So(errors.Is(err, ErrCapacity), ShouldBeTrue)
		})
	})
}

func TestGCD(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{12, 8, 4},
		{8, 12, 4},
		{7, 13, 1},
		{0, 5, 5},
		{-12, 8, 4},
	}
	for _, tc := range cases {
		if got := gcd(tc.a, tc.b); got != tc.want {
			t.Fatalf("gcd(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
