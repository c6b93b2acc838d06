package qsim

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestModExp(t *testing.T) {
	Convey("Given the order-finding parameters for 7^x mod 15", t, func() {
		modexp, err := NewModExp(7, 15, 2, 4)
		So(err, ShouldBeNil)

		Convey("Amplitudes relocate to |x, 7^x mod 15⟩", func() {
			reg, err := InitializeRegisters(2, 4)
			So(err, ShouldBeNil)

			out, err := modexp.Apply(reg)
			So(err, ShouldBeNil)

			// 7^0=1, 7^1=7, 7^2=4, 7^3=13 mod 15. Each carries weight 1/2.
			residues := []int{1, 7, 4, 13}
			for x, r := range residues {
				a, err := out.Amplitude(x*16 + r)
				So(err, ShouldBeNil)
				So(a.Coefficient(CompA).Abs(), ShouldAlmostEqual, 0.5, Epsilon)
			}
			So(out.NormSquared(), ShouldAlmostEqual, 1, Epsilon)
		})

		Convey("A register of the wrong size is rejected", func() {
			_, err := modexp.Apply(NewRegister(4))
			So(errors.Is(err, ErrDimensionMismatch), ShouldBeTrue)
		})

		Convey("A register without the |1⟩ output mass fails", func() {
			_, err := modexp.Apply(NewRegister(6))
			So(errors.Is(err, ErrZeroNorm), ShouldBeTrue)
		})
	})

	Convey("Given parameter validation", t, func() {
		Convey("An output register too narrow for the modulus fails", func() {
			_, err := NewModExp(7, 15, 2, 3)
			So(errors.Is(err, ErrDimensionMismatch), ShouldBeTrue)
		})

		Convey("Degenerate bases and widths fail", func() {
			_, err := NewModExp(1, 15, 2, 4)
			So(errors.Is(err, ErrIndexOutOfRange), ShouldBeTrue)
			_, err = NewModExp(7, 15, 0, 4)
			So(errors.Is(err, ErrIndexOutOfRange), ShouldBeTrue)
		})
	})
}

func TestPowMod(t *testing.T) {
	cases := []struct {
		base, exp, mod, want int
	}{
		{7, 0, 15, 1},
		{7, 1, 15, 7},
		{7, 2, 15, 4},
		{7, 4, 15, 1},
		{2, 10, 1000, 24},
		{11, 13, 19, 11}, // 11^13 mod 19, exercises the bignum path
	}
	for _, tc := range cases {
		if got := PowMod(tc.base, tc.exp, tc.mod); got != tc.want {
			t.Fatalf("PowMod(%d, %d, %d) = %d, want %d", tc.base, tc.exp, tc.mod, got, tc.want)
		}
	}
}

func TestInitializeRegisters(t *testing.T) {
	Convey("Given a 2+2 qubit split", t, func() {
		reg, err := InitializeRegisters(2, 2)
		So(err, ShouldBeNil)

		Convey("The input part is uniform and the output part holds |1⟩", func() {
			So(reg.Size(), ShouldEqual, 16)
			for x := 0; x < 4; x++ {
				a, _ := reg.Amplitude(x*4 + 1)
				So(a.Coefficient(CompA).Abs(), ShouldAlmostEqual, 0.5, Epsilon)
				// Output values other than 1 carry nothing.
				a, _ = reg.Amplitude(x * 4)
				So(a.IsZero(), ShouldBeTrue)
			}
			So(reg.NormSquared(), ShouldAlmostEqual, 1, Epsilon)
		})

		Convey("Zero-width parts are rejected", func() {
			_, err := InitializeRegisters(0, 2)
			So(errors.Is(err, ErrIndexOutOfRange), ShouldBeTrue)
		})
	})
}
