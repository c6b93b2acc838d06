package qsim

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestExprEval(t *testing.T) {
	Convey("Given an environment binding x and y", t, func() {
		env := Env{
			"x": Real(3),
			"y": NewScalar(0, 2),
		}

		Convey("Arithmetic nodes evaluate structurally", func() {
			// (x + y) * x = (3 + 2i) * 3 = 9 + 6i
			tree := Mul{
				L: Add{L: Symbol{Name: "x"}, R: Symbol{Name: "y"}},
				R: Symbol{Name: "x"},
			}
			v, err := Eval(tree, env)
			So(err, ShouldBeNil)
			So(v.Equals(NewScalar(9, 6)), ShouldBeTrue)
		})

		Convey("Sub and Div complete the operator set", func() {
			tree := Div{
				L: Sub{L: Symbol{Name: "x"}, R: Constant{Value: One}},
				R: Constant{Value: Real(2)},
			}
			v, err := Eval(tree, env)
			So(err, ShouldBeNil)
			So(v.Equals(One), ShouldBeTrue)
		})

		Convey("Unbound symbols fail with the symbol's name", func() {
			_, err := Eval(Symbol{Name: "ghost"}, env)
			So(errors.Is(err, ErrUnboundSymbol), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "ghost")
		})

		Convey("Division by zero propagates the scalar error", func() {
			_, err := Eval(Div{L: Symbol{Name: "x"}, R: Constant{Value: Zero}}, env)
			So(errors.Is(err, ErrDivisionByZero), ShouldBeTrue)
		})
	})
}

func TestAmplitudeLowering(t *testing.T) {
	Convey("Given a symbolic amplitude", t, func() {
		a := NewAmplitude()
		a.AddTerm(CompA, Real(0.5))
		a.AddTerm(CompB, NewScalar(0, 0.5))

		Convey("Collapsing binds each label to a scalar", func() {
			env := Env{"a": One, "b": One}
			v, err := CollapseAmplitude(a, env)
			So(err, ShouldBeNil)
			So(v.Equals(NewScalar(0.5, 0.5)), ShouldBeTrue)
		})

		Convey("The zero amplitude lowers to a zero constant", func() {
			v, err := CollapseAmplitude(NewAmplitude(), Env{})
			So(err, ShouldBeNil)
			So(v.IsZero(), ShouldBeTrue)
		})

		Convey("A missing binding surfaces as an unbound symbol", func() {
			_, err := CollapseAmplitude(a, Env{"a": One})
			So(errors.Is(err, ErrUnboundSymbol), ShouldBeTrue)
		})
	})
}

func TestCollapseSymbols(t *testing.T) {
	Convey("Given a symbolic register", t, func() {
		reg := NewRegister(1)
		reg.amps[0] = AmplitudeOf(CompB, Real(0.6))
		reg.amps[1] = AmplitudeOf(CompC, Real(0.8))

		Convey("Binding every label to one drops the symbols", func() {
			env := Env{"b": One, "c": One}
			out, err := CollapseSymbols(reg, env)
			So(err, ShouldBeNil)

			a0, _ := out.Amplitude(0)
			a1, _ := out.Amplitude(1)
			So(a0.Coefficient(CompA).Equals(Real(0.6)), ShouldBeTrue)
			So(a1.Coefficient(CompA).Equals(Real(0.8)), ShouldBeTrue)
			So(out.NormSquared(), ShouldAlmostEqual, 1, Epsilon)
		})

		Convey("An unbound label names the failing amplitude", func() {
			_, err := CollapseSymbols(reg, Env{"b": One})
			So(errors.Is(err, ErrUnboundSymbol), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "amplitude 1")
		})

		Convey("A nil register is rejected", func() {
			_, err := CollapseSymbols(nil, Env{})
			So(errors.Is(err, ErrNilArgument), ShouldBeTrue)
		})
	})
}
