// Package presentation maps lookup state to what a screen renders.
// It holds no state and never fails.
package presentation

import (
	"ghprofile/internal/config"
	"ghprofile/internal/models"
)

// EmptyIcon names the indicator shown when no profile is loaded.
const EmptyIcon = "alert-outline"

// Badge is one labeled counter.
type Badge struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// View is the render model of the profile area.
type View struct {
	Empty     bool    `json:"empty"`
	EmptyIcon string  `json:"empty_icon,omitempty"`
	EmptyText string  `json:"empty_text,omitempty"`
	Name      string  `json:"name"`
	AvatarURI string  `json:"avatar_uri,omitempty"`
	Badges    []Badge `json:"badges,omitempty"`
}

// NotificationView is the render model of one toast.
type NotificationView struct {
	Severity models.Severity `json:"severity"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Class    string          `json:"class"`
}

// Adapter renders views using configured labels.
type Adapter struct {
	messages config.Messages
}

// NewAdapter creates an adapter.
func NewAdapter(messages config.Messages) *Adapter {
	return &Adapter{messages: messages}
}

// Render returns the empty view for nil, otherwise the name, avatar and the
// Repositories, Followers, Following badges in that order.
func (a *Adapter) Render(p *models.Profile) View {
	if p == nil {
		return View{
			Empty:     true,
			EmptyIcon: EmptyIcon,
			EmptyText: a.messages.NoProfile,
		}
	}

	return View{
		Name:      p.Name(),
		AvatarURI: p.AvatarURI,
		Badges: []Badge{
			{Label: a.messages.RepositoriesLabel, Value: p.PublicRepoCount},
			{Label: a.messages.FollowersLabel, Value: p.FollowerCount},
			{Label: a.messages.FollowingLabel, Value: p.FollowingCount},
		},
	}
}

// Notification maps n to its toast.
func (a *Adapter) Notification(n models.Notification) NotificationView {
	class := "toast-info"
	if n.IsError() {
		class = "toast-error"
	}
	return NotificationView{
		Severity: n.Severity,
		Title:    n.Title,
		Body:     n.Body,
		Class:    class,
	}
}

// Notifications maps a batch in order.
func (a *Adapter) Notifications(ns []models.Notification) []NotificationView {
	views := make([]NotificationView, 0, len(ns))
	for _, n := range ns {
		views = append(views, a.Notification(n))
	}
	return views
}
