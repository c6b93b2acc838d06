package qsim

import (
	"strings"
	"sync"
)

/*
Component is an interned symbolic label naming one branch of superposition
provenance. Amplitudes accumulated from different tensor-product factors keep
distinct components, so their origins stay distinguishable until a collapse
reduces them to plain numbers.

Components compare by label. Combined labels join with a "." separator, which
keeps Combine associative and prevents two different provenance paths from
colliding on the same joint label (concatenation alone would map ("a","bc")
and ("ab","c") to the same name).
*/
type Component struct {
	label string
}

// The single-letter components used throughout the kernel and its tests.
var (
	CompA = NewComponent("a")
	CompB = NewComponent("b")
	CompC = NewComponent("c")
	CompD = NewComponent("d")
	CompE = NewComponent("e")
	CompF = NewComponent("f")
	CompG = NewComponent("g")
)

var interned sync.Map // label -> Component

// NewComponent returns the interned component for the given label.
func NewComponent(label string) Component {
	if c, ok := interned.Load(label); ok {
		return c.(Component)
	}
	c := Component{label: label}
	actual, _ := interned.LoadOrStore(label, c)
	return actual.(Component)
}

// Label returns the component's symbolic name.
func (c Component) Label() string {
	return c.label
}

func (c Component) String() string {
	return c.label
}

// Combine names the joint component produced by tensoring two factors.
func Combine(c1, c2 Component) Component {
	return NewComponent(c1.label + "." + c2.label)
}

// Factors splits a combined label back into its provenance path.
func (c Component) Factors() []string {
	return strings.Split(c.label, ".")
}
