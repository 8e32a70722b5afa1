// Package notify provides the notification surfaces a lookup controller
// reports to. Every surface is fire-and-forget: Notify never blocks.
package notify

import (
	"log/slog"
	"sync"

	"ghprofile/internal/models"
)

// DefaultInboxSize bounds how many unseen notifications an inbox keeps.
const DefaultInboxSize = 5

// Inbox queues notifications until the next page render drains them.
// When full, the oldest notification is dropped.
type Inbox struct {
	mu    sync.Mutex
	items []models.Notification
	size  int
}

// NewInbox creates an inbox holding at most size notifications.
func NewInbox(size int) *Inbox {
	if size <= 0 {
		size = DefaultInboxSize
	}
	return &Inbox{size: size}
}

// Notify queues n.
func (i *Inbox) Notify(n models.Notification) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.items = append(i.items, n)
	if over := len(i.items) - i.size; over > 0 {
		i.items = append(i.items[:0:0], i.items[over:]...)
	}
}

// Drain returns all queued notifications in arrival order and empties the inbox.
func (i *Inbox) Drain() []models.Notification {
	i.mu.Lock()
	defer i.mu.Unlock()

	items := i.items
	i.items = nil
	return items
}

// Channel forwards notifications to a buffered channel, dropping them when
// the reader falls behind.
type Channel struct {
	ch chan models.Notification
}

// NewChannel creates a channel surface with the given buffer.
func NewChannel(buffer int) *Channel {
	return &Channel{ch: make(chan models.Notification, buffer)}
}

// Notify forwards n without blocking.
func (c *Channel) Notify(n models.Notification) {
	select {
	case c.ch <- n:
	default:
		slog.Warn("notification dropped", slog.String("title", n.Title), slog.String("body", n.Body))
	}
}

// C returns the receive side.
func (c *Channel) C() <-chan models.Notification {
	return c.ch
}
