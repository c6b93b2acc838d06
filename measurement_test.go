package qsim

import (
	"errors"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMeasure(t *testing.T) {
	Convey("Given a deterministic register", t, func() {
		reg := NewRegister(2)
		reg.amps[2] = AmplitudeOf(CompA, One) // |10⟩

		Convey("Measurement always reports the only live index", func() {
			m := NewSeededMeasurer(1)
			for trial := 0; trial < 20; trial++ {
				outcome, err := m.Measure(reg)
				So(err, ShouldBeNil)
				So(outcome, ShouldEqual, 2)
			}
		})

		Convey("Measure does not collapse the register", func() {
			m := NewSeededMeasurer(1)
			_, err := m.Measure(reg)
			So(err, ShouldBeNil)
			So(reg.NormSquared(), ShouldAlmostEqual, 1, Epsilon)
		})

		Convey("The zero register cannot be measured", func() {
			m := NewSeededMeasurer(1)
			_, err := m.Measure(NewRegister(2))
			So(errors.Is(err, ErrZeroNorm), ShouldBeTrue)
			_, err = m.Measure(nil)
			So(errors.Is(err, ErrNilArgument), ShouldBeTrue)
		})
	})

	Convey("Given a biased superposition", t, func() {
		// 90/10 split; an unnormalized register must sample the same way.
		reg := NewRegister(1)
		reg.amps[0] = AmplitudeOf(CompA, Real(3))
		reg.amps[1] = AmplitudeOf(CompA, Real(1))

		Convey("Sampled frequencies track the Born probabilities", func() {
			m := NewSeededMeasurer(42)
			counts := [2]int{}
			const trials = 4000
			for i := 0; i < trials; i++ {
				outcome, err := m.Measure(reg)
				So(err, ShouldBeNil)
				counts[outcome]++
			}
			freq := float64(counts[0]) / trials
			So(math.Abs(freq-0.9), ShouldBeLessThan, 0.03)
		})

		Convey("Seeded runs are reproducible", func() {
			a := NewSeededMeasurer(7)
			b := NewSeededMeasurer(7)
			for i := 0; i < 50; i++ {
				oa, err := a.Measure(reg)
				So(err, ShouldBeNil)
				ob, err := b.Measure(reg)
				So(err, ShouldBeNil)
				So(oa, ShouldEqual, ob)
			}
		})
	})
}

func TestMeasureQubits(t *testing.T) {
	Convey("Given a Bell state", t, func() {
		invSqrt2 := Real(1 / math.Sqrt2)
		bell := NewRegister(2)
		bell.amps[0] = AmplitudeOf(CompA, invSqrt2)
		bell.amps[3] = AmplitudeOf(CompA, invSqrt2)

		Convey("Measuring one qubit collapses its partner", func() {
			m := NewSeededMeasurer(3)
			outcome, collapsed, err := m.MeasureQubits(bell, []int{0})
			So(err, ShouldBeNil)
			So(outcome == 0 || outcome == 1, ShouldBeTrue)
			So(collapsed.NormSquared(), ShouldAlmostEqual, 1, Epsilon)

			// All surviving mass sits on the matching |bb⟩ index.
			live := 0
			if outcome == 1 {
				live = 3
			}
			a, _ := collapsed.Amplitude(live)
			So(a.NormSquared(), ShouldAlmostEqual, 1, Epsilon)
		})

		Convey("The input register is untouched", func() {
			m := NewSeededMeasurer(3)
			_, _, err := m.MeasureQubits(bell, []int{0})
			So(err, ShouldBeNil)
			a0, _ := bell.Amplitude(0)
			So(a0.Coefficient(CompA).Equals(invSqrt2), ShouldBeTrue)
		})

		Convey("Measuring both qubits gives correlated outcomes only", func() {
			m := NewSeededMeasurer(9)
			for trial := 0; trial < 40; trial++ {
				outcome, _, err := m.MeasureQubits(bell, []int{0, 1})
				So(err, ShouldBeNil)
				So(outcome == 0b00 || outcome == 0b11, ShouldBeTrue)
			}
		})

		Convey("Outcome bit order follows the qubit list", func() {
			reg := NewRegister(2)
			reg.amps[2] = AmplitudeOf(CompA, One) // |10⟩
			m := NewSeededMeasurer(1)

			outcome, _, err := m.MeasureQubits(reg, []int{0, 1})
			So(err, ShouldBeNil)
			So(outcome, ShouldEqual, 0b10)

			outcome, _, err = m.MeasureQubits(reg, []int{1, 0})
			So(err, ShouldBeNil)
			So(outcome, ShouldEqual, 0b01)
		})

		Convey("Bad arguments are rejected", func() {
			m := NewSeededMeasurer(1)
			_, _, err := m.MeasureQubits(bell, nil)
			So(errors.Is(err, ErrIndexOutOfRange), ShouldBeTrue)
			_, _, err = m.MeasureQubits(bell, []int{4})
			So(errors.Is(err, ErrIndexOutOfRange), ShouldBeTrue)
			_, _, err = m.MeasureQubits(nil, []int{0})
			So(errors.Is(err, ErrNilArgument), ShouldBeTrue)
		})
	})

	Convey("Given a measurer with a stats sink", t, func() {
		stats := NewStats()
		m := NewSeededMeasurer(5).WithStats(stats)
		reg := ZeroState(2)

		Convey("Collapsing and non-collapsing measurements are counted apart", func() {
			_, err := m.Measure(reg)
			So(err, ShouldBeNil)
			_, _, err = m.MeasureFirstN(reg, 1)
			So(err, ShouldBeNil)

			snap := stats.Snapshot()
			So(snap.Measurements, ShouldEqual, 2)
			So(snap.Collapses, ShouldEqual, 1)
		})
	})
}
