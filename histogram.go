package qsim

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

/*
SaveProbabilityHistogram renders the register's measurement distribution
as a bar chart and writes it to path (format chosen by extension, e.g.
.png or .pdf). Probabilities are normalized before plotting so a register
that has drifted slightly off unit norm still draws a valid distribution.
*/
func SaveProbabilityHistogram(reg *Register, title, path string) error {
	if reg == nil {
		return fmt.Errorf("%w: register", ErrNilArgument)
	}
	probs := reg.Probabilities()
	var total float64
	for _, p := range probs {
		total += p
	}
	if total == 0 {
		return fmt.Errorf("%w: zero register has no distribution", ErrZeroNorm)
	}

	values := make(plotter.Values, len(probs))
	labels := make([]string, len(probs))
	width := reg.NumQubits()
	for i, p := range probs {
		values[i] = p / total
		if width > 0 {
			labels[i] = fmt.Sprintf("%0*b", width, i)
		} else {
			labels[i] = fmt.Sprintf("%d", i)
		}
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "basis state"
	p.Y.Label.Text = "probability"

	bars, err := plotter.NewBarChart(values, vg.Points(12))
	if err != nil {
		return err
	}
	p.Add(bars)
	p.NominalX(labels...)

	return p.Save(7*vg.Inch, 4*vg.Inch, path)
}
