// Package tui is the interactive terminal rendition of the pipes view
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ferama/rospo-pipes/pkg/pipeview"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableStyle  = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(0, 1)
)

// title, status line and table border
const chromeHeight = 5

// Options tunes the interactive view
type Options struct {
	// shown in the title bar
	Source string
	// periodic refresh, disabled if zero
	Refresh time.Duration
}

type fetchedMsg struct {
	updated bool
	err     error
}

type tickMsg time.Time

// Model is the bubbletea model wrapping a pipeview.View. The initial
// fetch starts on Init. Manual refreshes are ignored while a fetch is
// in flight, so fetches never overlap
type Model struct {
	view *pipeview.View
	opts Options

	ctx    context.Context
	cancel context.CancelFunc

	table    table.Model
	fetching bool
	err      error
	height   int
}

// New builds the model. Call Close, or quit the program, to cancel a
// pending fetch
func New(ctx context.Context, view *pipeview.View, opts Options) Model {
	ctx, cancel := context.WithCancel(ctx)

	t := table.New(
		table.WithColumns(columns(nil)),
		table.WithRows(nil),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	return Model{
		view:     view,
		opts:     opts,
		ctx:      ctx,
		cancel:   cancel,
		table:    t,
		fetching: true,
	}
}

func columns(rows [][]string) []table.Column {
	headers := pipeview.Headers()
	cols := make([]table.Column, len(headers))
	for i, h := range headers {
		w := lipgloss.Width(h)
		for _, r := range rows {
			if cw := lipgloss.Width(r[i]); cw > w {
				w = cw
			}
		}
		cols[i] = table.Column{Title: h, Width: w + 2}
	}
	return cols
}

func (m Model) fetchCmd() tea.Cmd {
	view := m.view
	ctx := m.ctx
	return func() tea.Msg {
		updated, err := view.Refresh(ctx)
		return fetchedMsg{updated: updated, err: err}
	}
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.opts.Refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init issues the initial fetch
func (m Model) Init() tea.Cmd {
	if m.opts.Refresh > 0 {
		return tea.Batch(m.fetchCmd(), m.tickCmd())
	}
	return m.fetchCmd()
}

func (m Model) setRows() Model {
	rows := pipeview.Rows(m.view.Pipes())
	trows := make([]table.Row, len(rows))
	for i, r := range rows {
		trows[i] = table.Row(r)
	}
	// rows first: columns are sized on the new content and
	// SetColumns re-renders the existing rows
	m.table.SetRows(trows)
	m.table.SetColumns(columns(rows))
	return m
}

// Update handles fetch results, ticks and key presses
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchedMsg:
		m.fetching = false
		if msg.err != nil {
			if !errors.Is(msg.err, context.Canceled) {
				m.err = msg.err
			}
			return m, nil
		}
		m.err = nil
		if msg.updated {
			m = m.setRows()
		}
		return m, nil

	case tickMsg:
		next := m.tickCmd()
		if m.fetching {
			return m, next
		}
		m.fetching = true
		return m, tea.Batch(m.fetchCmd(), next)

	case tea.WindowSizeMsg:
		m.height = msg.Height
		if h := msg.Height - chromeHeight; h > 0 {
			m.table.SetHeight(h)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.cancel()
			return m, tea.Quit
		case "r":
			if m.fetching {
				return m, nil
			}
			m.fetching = true
			return m, m.fetchCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) status() string {
	if m.err != nil {
		return errorStyle.Render(m.err.Error())
	}
	var parts []string
	if m.fetching {
		parts = append(parts, "fetching...")
	}
	parts = append(parts, fmt.Sprintf("%d pipes", len(m.view.Pipes())))
	if at := m.view.LastUpdate(); !at.IsZero() {
		parts = append(parts, "updated "+at.Format("15:04:05"))
	}
	parts = append(parts, "r refresh", "q quit")
	return statusStyle.Render(strings.Join(parts, " · "))
}

// View renders the title, the table and the status line
func (m Model) View() string {
	title := titleStyle.Render("Pipes")
	if m.opts.Source != "" {
		title += statusStyle.Render(m.opts.Source)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		tableStyle.Render(m.table.View()),
		m.status(),
	)
}

// Close cancels a pending fetch
func (m Model) Close() {
	m.cancel()
}

// Run starts the interactive view and blocks until the user quits
func Run(ctx context.Context, view *pipeview.View, opts Options) error {
	m := New(ctx, view, opts)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
