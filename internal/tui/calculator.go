// Package tui provides an interactive terminal calculator for the
// performance relations: edit the six inputs, read c* and CF live.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/raheelusc/rocket-relations/ideal"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type param struct {
	key   string
	label string
	hint  string
}

var params = []param{
	{"gamma", "γ", "ratio of specific heats (> 1)"},
	{"rs", "Rs", "specific gas constant [J/(kg·K)]"},
	{"t0", "T0", "stagnation temperature [K]"},
	{"pe_p0", "pe/p0", "exit pressure ratio (0, 1)"},
	{"pa_p0", "pa/p0", "ambient pressure ratio (>= 0)"},
	{"ae_astar", "Ae/A*", "area expansion ratio (>= 1)"},
}

type model struct {
	values  map[string]float64
	cursor  int
	editing bool
	editBuf string
	width   int
}

func NewCalculator() *model {
	return &model{
		values: map[string]float64{
			"gamma":    1.2,
			"rs":       350,
			"t0":       3500,
			"pe_p0":    0.0125,
			"pa_p0":    0.02,
			"ae_astar": 10,
		},
		width: 80,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.editing {
			return m.handleEditKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(params)-1 {
			m.cursor++
		}
	case "enter", "e":
		m.editing = true
		m.editBuf = strconv.FormatFloat(m.values[params[m.cursor].key], 'g', -1, 64)
	}
	return m, nil
}

func (m model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.editBuf = ""
	case "enter":
		if v, err := strconv.ParseFloat(m.editBuf, 64); err == nil {
			m.values[params[m.cursor].key] = v
		}
		m.editing = false
		m.editBuf = ""
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		s := msg.String()
		if len(s) == 1 && (s[0] >= '0' && s[0] <= '9' || s[0] == '.' || s[0] == '-' || s[0] == 'e') {
			m.editBuf += s
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(cyan.Render("ideal rocket performance") + "\n")
	b.WriteString(dim.Render("ideal gas, isentropic flow, converging-diverging nozzle") + "\n\n")

	for i, p := range params {
		cursor := "  "
		if i == m.cursor {
			cursor = cyan.Render("> ")
		}

		value := strconv.FormatFloat(m.values[p.key], 'g', -1, 64)
		if m.editing && i == m.cursor {
			value = yellow.Render(m.editBuf + "█")
		} else if i == m.cursor {
			value = white.Render(value)
		} else {
			value = dim.Render(value)
		}

		b.WriteString(fmt.Sprintf("%s%-7s %-12s %s\n", cursor, p.label, value, dim.Render(p.hint)))
	}

	b.WriteString("\n")
	b.WriteString(m.renderResults())
	b.WriteString("\n")
	b.WriteString(dim.Render("↑/↓ select · enter edit · esc/q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m model) renderResults() string {
	var b strings.Builder

	cstar, err := ideal.SolveCstar(m.values["gamma"], m.values["rs"], m.values["t0"])
	if err != nil {
		b.WriteString(fmt.Sprintf("  %-7s %s\n", "c*", red.Render(err.Error())))
	} else {
		b.WriteString(fmt.Sprintf("  %-7s %s\n", "c*", green.Render(fmt.Sprintf("%.4f m/s", cstar))))
	}

	cf, err := ideal.SolveCF(m.values["gamma"], m.values["pe_p0"], m.values["pa_p0"], m.values["ae_astar"])
	if err != nil {
		b.WriteString(fmt.Sprintf("  %-7s %s\n", "CF", red.Render(err.Error())))
	} else {
		b.WriteString(fmt.Sprintf("  %-7s %s\n", "CF", green.Render(fmt.Sprintf("%.7f", cf))))
	}

	return b.String()
}

// Run starts the interactive calculator and blocks until the user quits.
func Run() error {
	p := tea.NewProgram(NewCalculator(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
