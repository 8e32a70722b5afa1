package lookup

import (
	"ghprofile/internal/notify"
)

// Screen is one browser session's controller together with the inbox its
// notifications queue in until the next render.
type Screen struct {
	*Controller
	Inbox *notify.Inbox
}

// NewScreen creates a screen whose controller reports to a fresh inbox.
func NewScreen(fetcher Fetcher, opts ...Option) *Screen {
	inbox := notify.NewInbox(notify.DefaultInboxSize)
	return &Screen{
		Controller: NewController(fetcher, inbox, opts...),
		Inbox:      inbox,
	}
}
