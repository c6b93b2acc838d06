package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const barWidth = 24

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.focus == focusMenu {
		return m.renderMenu()
	}

	statePanel := m.renderStatePanel()
	stepPanel := m.renderStepPanel()
	topRow := lipgloss.JoinHorizontal(lipgloss.Top, statePanel, stepPanel)
	return lipgloss.JoinVertical(lipgloss.Left, topRow, m.renderControls())
}

func (m Model) renderMenu() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("qsim demos"))
	sb.WriteString("\n\n")
	for i, d := range m.demos {
		line := fmt.Sprintf("%s (%d qubits, %d steps)", d.name, d.numQubits, len(d.steps))
		if i == m.cursor {
			sb.WriteString(selectedStyle.Render("▸ " + line))
		} else {
			sb.WriteString("  " + line)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("↑↓ Select  ⏎ Run  q Quit"))
	if m.statusMsg != "" {
		sb.WriteString("\n" + statusStyle.Render(m.statusMsg))
	}

	return statePanelStyle.Width(m.width - 2).Render(sb.String())
}

// renderStatePanel draws every basis amplitude with a probability bar.
func (m Model) renderStatePanel() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(m.active.name))
	sb.WriteString("\n\n")

	n := m.reg.NumQubits()
	probs := m.reg.Probabilities()
	for i, p := range probs {
		amp, err := m.reg.Amplitude(i)
		if err != nil {
			continue
		}

		filled := int(p*barWidth + 0.5)
		if filled > barWidth {
			filled = barWidth
		}
		bar := barStyle.Render(strings.Repeat("█", filled)) +
			dimStyle.Render(strings.Repeat("·", barWidth-filled))

		label := basisStyle.Render(fmt.Sprintf("|%0*b⟩", n, i))
		sb.WriteString(fmt.Sprintf("%s %s %5.1f%%  %s\n",
			label, bar, p*100, ampStyle.Render(amp.String())))
	}

	if m.statusMsg != "" {
		sb.WriteString("\n" + statusStyle.Render(m.statusMsg))
	}

	width := m.width*2/3 - 2
	return statePanelStyle.Width(width).Render(sb.String())
}

// renderStepPanel lists the demo's steps, marking progress.
func (m Model) renderStepPanel() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Steps"))
	sb.WriteString("\n\n")
	for i, s := range m.active.steps {
		switch {
		case i < m.stepIdx:
			sb.WriteString(doneStepStyle.Render("✓ " + s.name))
		case i == m.stepIdx:
			sb.WriteString(selectedStyle.Render("▸ " + s.name))
		default:
			sb.WriteString(pendingStepStyle.Render("  " + s.name))
		}
		sb.WriteString("\n")
	}

	snap := m.stats.Snapshot()
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(fmt.Sprintf("measurements: %d", snap.Measurements)))

	width := m.width - m.width*2/3 - 2
	return stepPanelStyle.Width(width).Render(sb.String())
}

func (m Model) renderControls() string {
	var sb strings.Builder
	sb.WriteString(statusStyle.Render("Demo: "))
	sb.WriteString("⏎/n Next step  r Restart  m Measure  p Save histogram  q/Esc Back")
	return controlsStyle.Width(m.width - 2).Render(sb.String())
}
