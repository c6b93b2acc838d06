package qsim

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCircuitEditing(t *testing.T) {
	Convey("Given an empty circuit", t, func() {
		c := NewCircuit()
		So(c.Len(), ShouldEqual, 0)

		Convey("Add appends, Insert shifts, Remove deletes", func() {
			So(c.Add(Hadamard()), ShouldBeNil)
			So(c.Add(PauliZ()), ShouldBeNil)
			So(c.Insert(1, PauliX()), ShouldBeNil)
			So(c.Len(), ShouldEqual, 3)

			g, err := c.GateAt(1)
			So(err, ShouldBeNil)
			So(g.At(0, 1).Equals(One), ShouldBeTrue) // PauliX

			removed, err := c.Remove(1)
			So(err, ShouldBeNil)
			So(removed.At(0, 1).Equals(One), ShouldBeTrue)
			So(c.Len(), ShouldEqual, 2)
		})

		Convey("Nil gates are rejected", func() {
			So(errors.Is(c.Add(nil), ErrNilArgument), ShouldBeTrue)
			So(errors.Is(c.Insert(0, nil), ErrNilArgument), ShouldBeTrue)
		})

		Convey("Indices are bounds-checked", func() {
			So(errors.Is(c.Insert(1, Hadamard()), ErrIndexOutOfRange), ShouldBeTrue)
			_, err := c.Remove(0)
			So(errors.Is(err, ErrIndexOutOfRange), ShouldBeTrue)
			_, err = c.GateAt(-1)
			So(errors.Is(err, ErrIndexOutOfRange), ShouldBeTrue)
		})

		Convey("Clear empties the circuit", func() {
			So(c.Add(Hadamard()), ShouldBeNil)
			c.Clear()
			So(c.Len(), ShouldEqual, 0)
		})
	})
}

func TestCircuitRun(t *testing.T) {
	Convey("Given H then Z on a single qubit", t, func() {
		c := NewCircuit()
		So(c.Add(Hadamard()), ShouldBeNil)
		So(c.Add(PauliZ()), ShouldBeNil)

		Convey("Run folds the gates left to right", func() {
			out, err := c.Run(ZeroState(1))
			So(err, ShouldBeNil)
			// Z·H|0⟩ = (|0⟩ - |1⟩)/√2
			a0, _ := out.Amplitude(0)
			a1, _ := out.Amplitude(1)
			So(a0.Coefficient(CompA).Equals(a1.Coefficient(CompA).Neg()), ShouldBeTrue)
			So(out.NormSquared(), ShouldAlmostEqual, 1, Epsilon)
		})

		Convey("Run leaves the input register untouched", func() {
			in := ZeroState(1)
			_, err := c.Run(in)
			So(err, ShouldBeNil)
			a0, _ := in.Amplitude(0)
			So(a0.Coefficient(CompA).Equals(One), ShouldBeTrue)
		})

		Convey("RunStepwise returns every intermediate state", func() {
			states, err := c.RunStepwise(ZeroState(1))
			So(err, ShouldBeNil)
			So(len(states), ShouldEqual, 2)

			// After the Hadamard both amplitudes are positive.
			a1, _ := states[0].Amplitude(1)
			So(a1.Coefficient(CompA).Re > 0, ShouldBeTrue)
			// After the Z the |1⟩ branch is negated.
			a1, _ = states[1].Amplitude(1)
			So(a1.Coefficient(CompA).Re < 0, ShouldBeTrue)
		})

		Convey("A dimension mismatch names the failing gate", func() {
			_, err := c.Run(ZeroState(2))
			So(err, ShouldNotBeNil)
			So(errors.Is(err, ErrDimensionMismatch), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "gate 0")
		})

		Convey("A nil register is rejected", func() {
			_, err := c.Run(nil)
			So(errors.Is(err, ErrNilArgument), ShouldBeTrue)
			_, err = c.RunStepwise(nil)
			So(errors.Is(err, ErrNilArgument), ShouldBeTrue)
		})
	})

	Convey("Given a circuit with a stats sink", t, func() {
		stats := &Stats{}
		c := NewCircuit().WithStats(stats)
		So(c.Add(Hadamard()), ShouldBeNil)
		So(c.Add(PauliX()), ShouldBeNil)

		Convey("Run records one application per gate", func() {
			_, err := c.Run(ZeroState(1))
			So(err, ShouldBeNil)
			snap := stats.Snapshot()
			So(snap.GateApplications, ShouldEqual, 2)
		})
	})
}
