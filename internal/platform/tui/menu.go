package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	variants []registry.GameInfo
	table    table.Model
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	selected string
	quitting bool
}

// NewMenuModel lists every registered variant.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	variants := registry.List()

	rows := make([]table.Row, 0, len(variants))
	for _, v := range variants {
		rows = append(rows, table.Row{v.Title, v.ID})
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Game", Width: 20},
			{Title: "Variant", Width: 16},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	h := help.New()
	h.Width = cfg.ScreenW

	return MenuModel{
		variants: variants,
		table:    t,
		keys:     DefaultKeyMap(),
		help:     h,
		config:   cfg,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			if i := m.table.Cursor(); i >= 0 && i < len(m.variants) {
				m.selected = m.variants[i].ID
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("B R E A K O U T"))
	b.WriteString("\n")
	b.WriteString(tableStyle.Render(m.table.View()))
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(m.help.View(menuKeys(m.keys))))

	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH,
		lipgloss.Center, lipgloss.Center, b.String())
}

// Selected returns the chosen variant ID, or "" if none was chosen.
func (m MenuModel) Selected() string {
	return m.selected
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Variant string
	Config  core.RuntimeConfig
	Quit    bool
}

// RunMenu runs the picker and returns the selection.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok || m.selected == "" {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return MenuResult{Variant: m.selected, Config: m.config}, nil
}
