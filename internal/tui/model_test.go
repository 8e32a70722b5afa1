package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ghprofile/internal/config"
	"ghprofile/internal/github"
	"ghprofile/internal/lookup"
	"ghprofile/internal/notify"
)

type stubFetcher map[string]*github.User

func (s stubFetcher) GetUser(_ context.Context, username string) (*github.User, error) {
	if u, ok := s[username]; ok {
		return u, nil
	}
	return nil, github.ErrUserNotFound
}

func newTestModel(t *testing.T) (Model, *lookup.Controller, *notify.Channel) {
	t.Helper()

	name := "Ada Lovelace"
	fetcher := stubFetcher{
		"ada": {Login: "ada", Name: &name, AvatarURL: "https://x/ada.png", PublicRepos: 3, Followers: 10, Following: 2},
	}
	notes := notify.NewChannel(8)
	ctrl := lookup.NewController(fetcher, notes)
	cfg := &config.Config{SiteTitle: "Profile Lookup", Messages: config.DefaultMessages()}

	return New(context.Background(), ctrl, notes, cfg), ctrl, notes
}

func typeText(m Model, s string) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(Model)
}

func TestModel_TypingUpdatesControllerInput(t *testing.T) {
	m, ctrl, _ := newTestModel(t)

	m = typeText(m, "ad")
	m = typeText(m, "a")

	assert.Equal(t, "ada", ctrl.UsernameInput())
	assert.Contains(t, m.View(), "no profile found")
}

func TestModel_SubmitRendersProfile(t *testing.T) {
	m, ctrl, _ := newTestModel(t)
	m = typeText(m, "ada")

	msg := m.submit()()
	done, ok := msg.(lookupDoneMsg)
	require.True(t, ok)
	assert.Equal(t, lookup.KindSuccess, done.out.Kind)

	next, _ := m.Update(msg)
	m = next.(Model)

	view := m.View()
	assert.Contains(t, view, "Ada Lovelace")
	assert.Contains(t, view, "Repositories 3")
	assert.Contains(t, view, "Followers 10")
	assert.Contains(t, view, "Following 2")
	assert.Empty(t, m.input.Value())
	assert.Empty(t, ctrl.UsernameInput())
}

func TestModel_NotificationsAreShown(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = typeText(m, "ghost")

	next, _ := m.Update(m.submit()())
	m = next.(Model)

	msg := m.waitForNotification()()
	note, ok := msg.(notificationMsg)
	require.True(t, ok)
	assert.Equal(t, "user not found", note.Body)

	next, cmd := m.Update(msg)
	m = next.(Model)
	assert.NotNil(t, cmd, "listener is re-armed")
	assert.Contains(t, m.View(), "Error: user not found")
}

func TestModel_ToastsAreBounded(t *testing.T) {
	m, _, _ := newTestModel(t)

	for range maxToasts + 2 {
		next, _ := m.Update(notificationMsg{Title: "Info", Body: "x"})
		m = next.(Model)
	}
	assert.Len(t, m.toasts, maxToasts)
}

func TestModel_EscQuits(t *testing.T) {
	m, _, _ := newTestModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.(Model).View())
}

func TestModel_SpinnerRunsUntilLookupDone(t *testing.T) {
	m, ctrl, _ := newTestModel(t)
	m = typeText(m, "ada")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.Equal(t, 1, m.loading)

	// the first tick can arrive before the lookup is dispatched
	require.Zero(t, ctrl.Pending())
	next, cmd = m.Update(m.spinner.Tick())
	m = next.(Model)
	assert.NotNil(t, cmd, "spinner keeps ticking while the lookup is outstanding")

	next, _ = m.Update(m.submit()())
	m = next.(Model)
	assert.Zero(t, m.loading)

	_, cmd = m.Update(m.spinner.Tick())
	assert.Nil(t, cmd, "spinner stops once the lookup is done")
}
