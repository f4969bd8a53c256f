package dash

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eqgft/fieldviz/internal/chart"
	"github.com/eqgft/fieldviz/internal/metrics"
	"github.com/eqgft/fieldviz/internal/render"
)

// Model is the terminal dashboard: a kind checklist next to the chart of
// the selected series. Every key event is handled to completion and the
// chart re-rendered synchronously before the next event is processed.
type Model struct {
	table    *metrics.Table
	kinds    []string
	selected map[string]bool
	cursor   int
	width    int
	height   int
	theme    render.Theme
}

func NewModel(table *metrics.Table, theme render.Theme) Model {
	kinds := table.Kinds()
	selected := map[string]bool{}
	for _, k := range DefaultSelection(kinds) {
		selected[k] = true
	}
	return Model{
		table:    table,
		kinds:    kinds,
		selected: selected,
		width:    100,
		height:   28,
		theme:    theme,
	}
}

// Selection returns the selected kinds in first-seen order.
func (m Model) Selection() []string {
	var out []string
	for _, k := range m.kinds {
		if m.selected[k] {
			out = append(out, k)
		}
	}
	return out
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.kinds)-1 {
				m.cursor++
			}
		case " ", "enter":
			if len(m.kinds) > 0 {
				kind := m.kinds[m.cursor]
				m.selected[kind] = !m.selected[kind]
			}
		case "a":
			for _, k := range m.kinds {
				m.selected[k] = true
			}
		case "t":
			for i, t := range render.Themes {
				if t.Name == m.theme.Name {
					m.theme = render.Themes[(i+1)%len(render.Themes)]
					break
				}
			}
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m Model) View() string {
	headerStyle := lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true).MarginBottom(1)
	cursorStyle := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(m.theme.Muted)
	errStyle := lipgloss.NewStyle().Foreground(m.theme.Error)
	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(m.theme.Muted).
		Padding(0, 2)

	var list strings.Builder
	list.WriteString(headerStyle.Render("METRICS") + "\n")
	for i, kind := range m.kinds {
		mark := "[ ]"
		if m.selected[kind] {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s", mark, kind)
		if i == m.cursor {
			list.WriteString(cursorStyle.Render("> "+line) + "\n")
		} else {
			list.WriteString("  " + line + "\n")
		}
	}
	list.WriteString(mutedStyle.Render("\n↑↓:move  space:toggle\na:all  t:theme  q:quit"))

	chartWidth := m.width - 30
	if chartWidth < 20 {
		chartWidth = 20
	}
	var body string
	selection := m.Selection()
	if len(selection) == 0 {
		body = mutedStyle.Render("no metrics selected")
	} else {
		out, err := chart.Timeseries(m.table, selection, chart.Options{
			Width:  chartWidth,
			Height: m.height - 8,
		})
		if err != nil {
			body = errStyle.Render(err.Error())
		} else {
			body = out
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(list.String()),
		lipgloss.NewStyle().Padding(0, 2).Render(body),
	)
}

// RunTUI starts the terminal dashboard and blocks until quit.
func RunTUI(table *metrics.Table, theme render.Theme) error {
	_, err := tea.NewProgram(NewModel(table, theme), tea.WithAltScreen()).Run()
	return err
}
