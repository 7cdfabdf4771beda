package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	pagerHeaderHeight = 2
	pagerFooterHeight = 2
)

var (
	pagerTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3B82F6")).
			Bold(true)

	pagerStatusStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#64748B")).
				Italic(true)
)

// pagerModel scrolls rendered output in a viewport.
type pagerModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func newPagerModel(title, content string) pagerModel {
	return pagerModel{title: title, content: content}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - pagerHeaderHeight - pagerFooterHeight
		if height < 1 {
			height = 1
		}

		if !pm.ready {
			pm.viewport = viewport.New(msg.Width, height)
			pm.viewport.SetContent(pm.content)
			pm.ready = true
		} else {
			pm.viewport.Width = msg.Width
			pm.viewport.Height = height
		}

		return pm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return pm, tea.Quit
		case "g", "home":
			pm.viewport.GotoTop()
			return pm, nil
		case "G", "end":
			pm.viewport.GotoBottom()
			return pm, nil
		}
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	if !pm.ready {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(pagerTitleStyle.Render(pm.title) + "\n\n")
	b.WriteString(pm.viewport.View() + "\n\n")
	b.WriteString(pagerStatusStyle.Render(
		fmt.Sprintf("%3.f%% | j/k scroll, g/G top/bottom, q quit", pm.viewport.ScrollPercent()*100)))

	return b.String()
}

// runPager shows content full-screen until the user quits.
func runPager(input io.Reader, output io.Writer, title, content string) error {
	program := tea.NewProgram(
		newPagerModel(title, content),
		tea.WithInput(input),
		tea.WithOutput(output),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run pager: %w", err)
	}

	return nil
}
