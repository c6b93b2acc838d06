package qsim

import (
	"fmt"
	"sort"
)

/*
Expr is a tagged-variant expression tree over symbolic amplitudes: a value
is a Constant, a Symbol looked up in an environment, or one of the four
arithmetic nodes. Eval walks the tree structurally; there is no reflection
or dynamic dispatch involved. Symbolic registers collapse to plain numeric
ones by binding each component label to a scalar and evaluating.
*/
type Expr interface {
	isExpr()
}

// Constant is a literal scalar leaf.
type Constant struct {
	Value Scalar
}

// Symbol is a named leaf resolved against the evaluation environment.
type Symbol struct {
	Name string
}

// Add is the sum of two subtrees.
type Add struct {
	L, R Expr
}

// Sub is the difference of two subtrees.
type Sub struct {
	L, R Expr
}

// Mul is the product of two subtrees.
type Mul struct {
	L, R Expr
}

// Div is the quotient of two subtrees.
type Div struct {
	L, R Expr
}

func (Constant) isExpr() {}
func (Symbol) isExpr()   {}
func (Add) isExpr()      {}
func (Sub) isExpr()      {}
func (Mul) isExpr()      {}
func (Div) isExpr()      {}

// Env binds symbol names to scalar values for evaluation.
type Env map[string]Scalar

// Eval reduces an expression tree to a scalar. Unbound symbols and zero
// divisors are the only failure modes.
func Eval(e Expr, env Env) (Scalar, error) {
	switch node := e.(type) {
	case Constant:
		return node.Value, nil
	case Symbol:
		v, ok := env[node.Name]
		if !ok {
			return Zero, fmt.Errorf("%w: %q", ErrUnboundSymbol, node.Name)
		}
		return v, nil
	case Add:
		l, r, err := evalPair(node.L, node.R, env)
		if err != nil {
			return Zero, err
		}
		return l.Add(r), nil
	case Sub:
		l, r, err := evalPair(node.L, node.R, env)
		if err != nil {
			return Zero, err
		}
		return l.Sub(r), nil
	case Mul:
		l, r, err := evalPair(node.L, node.R, env)
		if err != nil {
			return Zero, err
		}
		return l.Mul(r), nil
	case Div:
		l, r, err := evalPair(node.L, node.R, env)
		if err != nil {
			return Zero, err
		}
		return l.Div(r)
	default:
		return Zero, fmt.Errorf("%w: unknown expression node %T", ErrNilArgument, e)
	}
}

func evalPair(l, r Expr, env Env) (Scalar, Scalar, error) {
	lv, err := Eval(l, env)
	if err != nil {
		return Zero, Zero, err
	}
	rv, err := Eval(r, env)
	if err != nil {
		return Zero, Zero, err
	}
	return lv, rv, nil
}

// AsExpression lowers an amplitude to the sum of coeff*symbol terms, terms
// ordered by label so the tree shape is deterministic. The zero amplitude
// lowers to Constant(0).
func (a Amplitude) AsExpression() Expr {
	if a.IsZero() {
		return Constant{Value: Zero}
	}
	labels := make([]string, 0, len(a.terms))
	for c := range a.terms {
		labels = append(labels, c.label)
	}
	sort.Strings(labels)

	var tree Expr
	for _, l := range labels {
		term := Mul{
			L: Constant{Value: a.terms[NewComponent(l)]},
			R: Symbol{Name: l},
		}
		if tree == nil {
			tree = term
		} else {
			tree = Add{L: tree, R: term}
		}
	}
	return tree
}

// CollapseAmplitude evaluates a symbolic amplitude down to one scalar by
// binding every component label through env.
func CollapseAmplitude(a Amplitude, env Env) (Scalar, error) {
	return Eval(a.AsExpression(), env)
}

/*
CollapseSymbols reduces a symbolic register to a plain numeric one: every
amplitude is evaluated against env and re-expressed as a coefficient on the
canonical component a. Callers typically bind each single-letter component
to 1 so the symbolic bookkeeping drops away.
*/
func CollapseSymbols(reg *Register, env Env) (*Register, error) {
	if reg == nil {
		return nil, fmt.Errorf("%w: register", ErrNilArgument)
	}
	out := RegisterOfDimension(reg.Size())
	out.numQubits = reg.numQubits
	for i, a := range reg.amps {
		if a.IsZero() {
			continue
		}
		v, err := CollapseAmplitude(a, env)
		if err != nil {
			return nil, fmt.Errorf("amplitude %d: %w", i, err)
		}
		if !v.IsZero() {
			out.amps[i] = AmplitudeOf(CompA, v)
		}
	}
	return out, nil
}
