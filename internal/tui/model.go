// Package tui is a terminal front end for a single lookup screen.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ghprofile/internal/config"
	"ghprofile/internal/lookup"
	"ghprofile/internal/models"
	"ghprofile/internal/notify"
	"ghprofile/internal/presentation"
)

// maxToasts is how many recent notifications stay on screen.
const maxToasts = 3

// Message types for async operations
type lookupDoneMsg struct {
	out lookup.Outcome
}

type notificationMsg models.Notification

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	nameStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("39")).
			Padding(0, 1).
			MarginRight(1)
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Model is the bubbletea model driving one controller.
type Model struct {
	ctx      context.Context
	ctrl     *lookup.Controller
	notes    *notify.Channel
	adapter  *presentation.Adapter
	title    string
	input    textinput.Model
	spinner  spinner.Model
	toasts   []presentation.NotificationView
	loading  int // lookups submitted from this model and not yet done
	quitting bool
}

// New creates a model. ctrl must report its notifications to notes.
func New(ctx context.Context, ctrl *lookup.Controller, notes *notify.Channel, cfg *config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = cfg.Messages.InputPlaceholder
	ti.CharLimit = 39
	ti.Width = 40
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:     ctx,
		ctrl:    ctrl,
		notes:   notes,
		adapter: presentation.NewAdapter(cfg.Messages),
		title:   cfg.SiteTitle,
		input:   ti,
		spinner: sp,
	}
}

// Init starts the cursor blink and the notification listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForNotification())
}

// Update handles key presses, finished lookups and notifications.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.loading++
			return m, tea.Batch(m.submit(), m.spinner.Tick)
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.ctrl.SetUsernameInput(m.input.Value())
		return m, cmd

	case lookupDoneMsg:
		if m.loading > 0 {
			m.loading--
		}
		m.input.SetValue(m.ctrl.UsernameInput())
		return m, nil

	case notificationMsg:
		m.toasts = append(m.toasts, m.adapter.Notification(models.Notification(msg)))
		if over := len(m.toasts) - maxToasts; over > 0 {
			m.toasts = m.toasts[over:]
		}
		return m, m.waitForNotification()

	case spinner.TickMsg:
		if m.loading == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the input, the profile card and recent notifications.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	if m.loading > 0 {
		b.WriteString(" " + m.spinner.View())
	}
	b.WriteString("\n\n")
	b.WriteString(cardStyle.Render(renderCard(m.adapter.Render(m.ctrl.CurrentProfile()))))
	b.WriteString("\n")

	for _, t := range m.toasts {
		style := infoStyle
		if t.Severity == models.SeverityError {
			style = errorStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%s: %s", t.Title, t.Body)))
		b.WriteString("\n")
	}

	b.WriteString(hintStyle.Render("enter: search • esc: quit"))
	b.WriteString("\n")
	return b.String()
}

func renderCard(v presentation.View) string {
	if v.Empty {
		return hintStyle.Render("⚠ " + v.EmptyText)
	}

	badges := make([]string, 0, len(v.Badges))
	for _, badge := range v.Badges {
		badges = append(badges, badgeStyle.Render(fmt.Sprintf("%s %d", badge.Label, badge.Value)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		nameStyle.Render(v.Name),
		hintStyle.Render(v.AvatarURI),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, badges...),
	)
}

// submit runs the lookup off the update loop.
func (m Model) submit() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return lookupDoneMsg{out: ctrl.SubmitLookup(ctx)}
	}
}

func (m Model) waitForNotification() tea.Cmd {
	ch := m.notes.C()
	return func() tea.Msg {
		n, ok := <-ch
		if !ok {
			return nil
		}
		return notificationMsg(n)
	}
}
