package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/cyclelab/internal/cycles"
	"github.com/san-kum/cyclelab/internal/thermo"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

var familyInfo = map[string]string{
	"otto":    "spark ignition",
	"diesel":  "compression ignition",
	"dual":    "split heat addition",
	"brayton": "gas turbine",
	"rankine": "steam plant",
}

// familyFields lists the editable inputs per family, in display order.
var familyFields = map[string][]thermo.Field{
	"otto": {
		thermo.FieldCompressionRatio, thermo.FieldT1, thermo.FieldP1,
		thermo.FieldT3, thermo.FieldHeatIn,
	},
	"diesel": {
		thermo.FieldCompressionRatio, thermo.FieldP1, thermo.FieldT1,
		thermo.FieldT3, thermo.FieldP3, thermo.FieldHeatIn,
	},
	"dual": {
		thermo.FieldCompressionRatio, thermo.FieldP1, thermo.FieldT1,
		thermo.FieldP3, thermo.FieldHeatIn,
	},
	"brayton": {
		thermo.FieldPressureRatio, thermo.FieldT1, thermo.FieldT3,
		thermo.FieldP1, thermo.FieldP3, thermo.FieldT4, thermo.FieldHeatIn,
		thermo.FieldEtaCompressor, thermo.FieldEtaTurbine,
		thermo.FieldNetPower, thermo.FieldMassFlow,
	},
	"rankine": {
		thermo.FieldCondenserP, thermo.FieldBoilerP, thermo.FieldT3,
		thermo.FieldEtaTurbine, thermo.FieldEtaPump,
		thermo.FieldNetPower, thermo.FieldMassFlow,
	},
}

type state int

const (
	stateMenu state = iota
	stateForm
	stateResults
)

type model struct {
	state    state
	cursor   int
	families []string
	selected string

	fields      []thermo.Field
	values      map[thermo.Field]float64
	known       map[thermo.Field]bool
	fieldCursor int
	editing     bool
	editBuf     string
	errMsg      string

	branch string
	result *thermo.Result
	sweep  []float64
	offset int

	width  int
	height int
}

func NewInteractiveApp() *model {
	return &model{
		state:    stateMenu,
		families: []string{"otto", "diesel", "dual", "brayton", "rankine"},
		values:   make(map[thermo.Field]float64),
		known:    make(map[thermo.Field]bool),
		width:    80,
		height:   24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateForm:
		return m.formKey(msg)
	case stateResults:
		return m.resultsKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.families)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.selected = m.families[m.cursor]
		m.state = stateForm
		m.fieldCursor = 0
		m.errMsg = ""
		m.setFieldsForFamily()
	}
	return m, nil
}

func (m model) formKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			var val float64
			if _, err := fmt.Sscanf(m.editBuf, "%f", &val); err == nil {
				f := m.fields[m.fieldCursor]
				m.values[f] = val
				m.known[f] = true
			}
			m.editing = false
			m.editBuf = ""
		case "escape":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "escape":
		m.state = stateMenu
	case "up", "k":
		if m.fieldCursor > 0 {
			m.fieldCursor--
		}
	case "down", "j":
		if m.fieldCursor < len(m.fields)-1 {
			m.fieldCursor++
		}
	case "enter", " ":
		m.editing = true
		f := m.fields[m.fieldCursor]
		if m.known[f] {
			m.editBuf = fmt.Sprintf("%g", m.values[f])
		} else {
			m.editBuf = ""
		}
	case "x", "delete":
		f := m.fields[m.fieldCursor]
		delete(m.values, f)
		delete(m.known, f)
	case "s":
		m.solve()
		if m.errMsg == "" {
			m.state = stateResults
			m.offset = 0
			return m, tea.ClearScreen
		}
	}
	return m, nil
}

func (m model) resultsKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "escape", "b":
		m.state = stateForm
		return m, tea.ClearScreen
	case "m":
		m.state = stateMenu
		return m, tea.ClearScreen
	case "up", "k":
		if m.offset > 0 {
			m.offset--
		}
	case "down", "j":
		if m.result != nil && m.offset < m.result.Len()-1 {
			m.offset++
		}
	}
	return m, nil
}

func (m *model) setFieldsForFamily() {
	m.fields = familyFields[m.selected]
	m.values = make(map[thermo.Field]float64)
	m.known = make(map[thermo.Field]bool)
}

func (m *model) inputs() thermo.Inputs {
	var in thermo.Inputs
	for f, ok := range m.known {
		if ok {
			in = in.With(f, thermo.Known(m.values[f]))
		}
	}
	return in
}

func (m *model) solve() {
	m.errMsg = ""
	in := m.inputs()

	reg := cycles.NewRegistry()
	solver, err := reg.Get(m.selected)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	branch, ok := thermo.SelectBranch(solver, in)
	if !ok {
		m.errMsg = "not enough inputs for any solution pathway"
		return
	}
	res, err := thermo.Solve(solver, in)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.branch = branch
	m.result = res
	m.sweep = m.efficiencySweep(in)
}

// efficiencySweep recomputes the cycle across a ratio range for the
// results sparkline. Families without a swept ratio get none.
func (m *model) efficiencySweep(in thermo.Inputs) []float64 {
	var field thermo.Field
	switch m.selected {
	case "otto", "diesel", "dual":
		field = thermo.FieldCompressionRatio
	case "brayton":
		field = thermo.FieldPressureRatio
	default:
		return nil
	}

	reg := cycles.NewRegistry()
	effs := make([]float64, 0, 40)
	for r := 2.0; r <= 24; r += 0.5 {
		probe := in.With(field, thermo.Known(r))
		solver, err := reg.Get(m.selected)
		if err != nil {
			return nil
		}
		res, err := thermo.Solve(solver, probe)
		if err != nil {
			continue
		}
		if eff, ok := res.Get("eff"); ok {
			effs = append(effs, eff)
		}
	}
	if len(effs) < 2 {
		return nil
	}
	return effs
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateForm:
		return m.viewForm()
	case stateResults:
		return m.viewResults()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("          " + cyan.Render("c y c l e l a b") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, name := range m.families {
		desc := familyInfo[name]
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-12s", name)) + dim.Render(desc) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-12s", name)) + dimmer.Render(desc) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter configure   q quit") + "\n")

	return b.String()
}

func (m model) viewForm() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(m.selected) + "  " + dim.Render(familyInfo[m.selected]) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 34)) + "\n\n")

	for i, f := range m.fields {
		name := string(f)
		val := dim.Render("   unset")
		if m.known[f] {
			val = magenta.Render(fmt.Sprintf("%8.3f", m.values[f]))
		}
		if m.editing && i == m.fieldCursor {
			val = magenta.Render(fmt.Sprintf("%8s", m.editBuf+"▋"))
		}
		if i == m.fieldCursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-10s", name)) + val + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-10s", name)) + val + "\n")
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n      " + red.Render(m.errMsg) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select  enter edit  x unset  s solve  esc back") + "\n")

	return b.String()
}

func (m model) viewResults() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(m.selected) + "  " + dim.Render("via "+m.branch) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 34)) + "\n\n")

	if m.result != nil {
		names := m.result.Names()
		visible := m.height - 12
		if visible < 5 {
			visible = 5
		}
		end := m.offset + visible
		if end > len(names) {
			end = len(names)
		}
		for _, name := range names[m.offset:end] {
			val, _ := m.result.Get(name)
			unit := thermo.Unit(name)
			line := "        " + white.Render(fmt.Sprintf("%-8s", name)) +
				green.Render(fmt.Sprintf("%12.4f", val))
			if unit != "" {
				line += " " + dim.Render(unit)
			}
			b.WriteString(line + "\n")
		}
		if end < len(names) {
			b.WriteString(dimmer.Render(fmt.Sprintf("        … %d more", len(names)-end)) + "\n")
		}
	}

	if len(m.sweep) > 1 {
		b.WriteString("\n      " + dim.Render("eff vs ratio ") + cyan.Render(sparkline(m.sweep, 30)) + "\n")
	}

	b.WriteString("\n" + dim.Render("      ↑↓ scroll  b back  m menu  q quit") + "\n")

	return b.String()
}

func sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return ""
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	rang := maxVal - minVal
	if rang == 0 {
		rang = 1
	}
	step := len(data) / width
	if step < 1 {
		step = 1
	}
	var sb strings.Builder
	for i := 0; i < width && i*step < len(data); i++ {
		v := data[i*step]
		idx := int((v - minVal) / rang * 7)
		if idx > 7 {
			idx = 7
		}
		if idx < 0 {
			idx = 0
		}
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}

func RunInteractive() error {
	p := tea.NewProgram(NewInteractiveApp(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
