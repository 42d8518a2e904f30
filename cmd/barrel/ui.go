package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"barrel/internal/cache"
)

var (
	titleStyle = lipgloss.NewStyle().
			MarginLeft(2).
			Foreground(lipgloss.Color("#3B82F6")).
			Bold(true).
			Render

	docStyle = lipgloss.NewStyle().Margin(1, 2)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B")).
			Italic(true)
)

type item struct {
	title, desc string
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title + i.desc }

type model struct {
	list       list.Model
	root       string
	stats      cache.Stats
	lastUpdate time.Time
}

type updateMsg struct {
	paths []string
	stats cache.Stats
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-4)
	case updateMsg:
		m.stats = msg.stats
		m.lastUpdate = time.Now()

		items := m.list.Items()
		for _, p := range msg.paths {
			items = append([]list.Item{item{
				title: "Invalidated",
				desc:  p,
			}}, items...)
		}
		if len(items) > 200 {
			items = items[:200]
		}
		m.list.SetItems(items)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	status := statusStyle.Render(fmt.Sprintf(
		"Last change: %v | cache %d/%d | hit rate %.0f%%",
		m.lastUpdate.Format("15:04:05"),
		m.stats.Size, m.stats.MaxSize, m.stats.HitRate*100))

	header := fmt.Sprintf("%s\n%s\n", titleStyle("barrel: watching "+m.root), status)
	return docStyle.Render(header + "\n" + m.list.View())
}

func initialModel(root string, stats cache.Stats) model {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Recent invalidations"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	return model{
		list:       l,
		root:       root,
		stats:      stats,
		lastUpdate: time.Now(),
	}
}
