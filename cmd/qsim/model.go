package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/theapemachine/qsim"
)

// focus represents which panel/mode has keyboard input.
type focus int

const (
	focusMenu focus = iota
	focusDemo
)

// Model represents the TUI application state.
type Model struct {
	demos    []demo
	cursor   int
	focus    focus
	width    int
	height   int
	cfg      *qsim.Config
	measurer *qsim.Measurer
	stats    *qsim.Stats

	// Running-demo state
	active    *demo
	reg       *qsim.Register
	stepIdx   int // number of steps applied so far
	measured  int // last full-register measurement, -1 before any
	statusMsg string
}

func initialModel() Model {
	stats := qsim.NewStats()
	return Model{
		demos:    demos(),
		cfg:      qsim.NewConfig(),
		measurer: qsim.NewMeasurer(nil).WithStats(stats),
		stats:    stats,
		measured: -1,
	}
}

func (m *Model) startDemo(idx int) {
	d := m.demos[idx]
	if err := qsim.CheckCapacity(m.cfg, d.numQubits); err != nil {
		m.statusMsg = err.Error()
		return
	}
	m.active = &m.demos[idx]
	m.reg = qsim.ZeroState(d.numQubits)
	m.stepIdx = 0
	m.measured = -1
	m.statusMsg = ""
	m.focus = focusDemo
}

func (m *Model) applyNextStep() {
	if m.active == nil || m.stepIdx >= len(m.active.steps) {
		return
	}
	s := m.active.steps[m.stepIdx]
	next, err := s.apply(m.reg)
	if err != nil {
		m.statusMsg = fmt.Sprintf("%s failed: %v", s.name, err)
		return
	}
	m.reg = next
	m.stepIdx++
	m.measured = -1
	m.statusMsg = ""
}

func (m *Model) measure() {
	if m.reg == nil {
		return
	}
	outcome, collapsed, err := m.measurer.MeasureFirstN(m.reg, m.reg.NumQubits())
	if err != nil {
		m.statusMsg = fmt.Sprintf("measurement failed: %v", err)
		return
	}
	m.reg = collapsed
	m.measured = outcome
	m.statusMsg = fmt.Sprintf("measured |%0*b⟩", m.reg.NumQubits(), outcome)
}

func (m *Model) saveHistogram() {
	if m.reg == nil || m.active == nil {
		return
	}
	path := "histogram.png"
	if err := qsim.SaveProbabilityHistogram(m.reg, m.active.name, path); err != nil {
		m.statusMsg = fmt.Sprintf("save failed: %v", err)
		return
	}
	m.statusMsg = "saved " + path
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.focus {
		case focusMenu:
			switch key {
			case "q":
				return m, tea.Quit
			case "up", "k":
				if m.cursor > 0 {
					m.cursor--
				}
			case "down", "j":
				if m.cursor < len(m.demos)-1 {
					m.cursor++
				}
			case "enter":
				m.startDemo(m.cursor)
			}

		case focusDemo:
			switch key {
			case "q", "esc":
				m.focus = focusMenu
				m.active = nil
				m.reg = nil
				m.statusMsg = ""
			case "enter", " ", "n":
				m.applyNextStep()
			case "r":
				m.startDemo(m.cursor)
			case "m":
				m.measure()
			case "p":
				m.saveHistogram()
			}
		}
	}

	return m, nil
}
