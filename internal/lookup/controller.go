// Package lookup owns the view-state of one profile screen and the workflow
// that turns a typed username into a profile or a classified notification.
package lookup

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"ghprofile/internal/config"
	"ghprofile/internal/github"
	"ghprofile/internal/models"
)

// Fetcher resolves a username against the remote profile API.
type Fetcher interface {
	GetUser(ctx context.Context, username string) (*github.User, error)
}

// Notifier is the notification surface. Notify must not block and must not
// call back into the Controller; it runs while the controller state is locked.
type Notifier interface {
	Notify(n models.Notification)
}

// Recorder observes finished lookups (metrics).
type Recorder interface {
	ObserveLookup(outcome string, elapsed time.Duration)
}

// Controller holds the state of a single screen.
//
// Concurrent SubmitLookup calls are neither coalesced nor cancelled. Without
// sequencing, whichever response resolves last determines the profile and the
// last notification. WithSequencing applies only the most recently dispatched
// lookup instead.
type Controller struct {
	fetcher   Fetcher
	notifier  Notifier
	recorder  Recorder
	logger    *slog.Logger
	messages  config.Messages
	sequenced bool

	mu      sync.Mutex
	input   string
	profile *models.Profile
	seq     uint64
	pending int
}

// Option configures a Controller.
type Option func(*Controller)

// WithSequencing drops results of lookups superseded by a later dispatch.
func WithSequencing() Option {
	return func(c *Controller) { c.sequenced = true }
}

// WithMessages overrides the notification text.
func WithMessages(m config.Messages) Option {
	return func(c *Controller) { c.messages = m }
}

// WithRecorder attaches a metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(c *Controller) { c.recorder = r }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// NewController creates a controller with an empty input and no profile.
func NewController(fetcher Fetcher, notifier Notifier, opts ...Option) *Controller {
	c := &Controller{
		fetcher:  fetcher,
		notifier: notifier,
		logger:   slog.Default(),
		messages: config.DefaultMessages(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetUsernameInput replaces the pending input verbatim.
func (c *Controller) SetUsernameInput(text string) {
	c.mu.Lock()
	c.input = text
	c.mu.Unlock()
}

// UsernameInput returns the pending input.
func (c *Controller) UsernameInput() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.input
}

// CurrentProfile returns a copy of the last resolved profile, or nil.
func (c *Controller) CurrentProfile() *models.Profile {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.profile.Clone()
}

// Pending returns the number of lookups in flight.
func (c *Controller) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// SubmitLookup validates the pending input, performs one request and applies
// the classified outcome. The input is cleared on every path. Failures are
// reported through the Notifier, never returned as errors.
func (c *Controller) SubmitLookup(ctx context.Context) Outcome {
	c.mu.Lock()
	username := strings.TrimSpace(c.input)
	if username == "" {
		c.input = ""
		c.mu.Unlock()

		c.notify(models.SeverityInfo, c.messages.InfoTitle, c.messages.EmptyInput)
		c.observe(KindEmptyInput, 0)
		return Outcome{Kind: KindEmptyInput}
	}
	c.seq++
	seq := c.seq
	c.pending++
	c.mu.Unlock()

	lookupID := uuid.NewString()
	log := c.logger.With(slog.String("lookup_id", lookupID), slog.String("username", username))
	log.Debug("lookup dispatched", slog.Uint64("seq", seq))

	start := time.Now()
	out := c.resolve(ctx, username)
	elapsed := time.Since(start)

	out.Stale = !c.apply(seq, out)

	attrs := []any{
		slog.String("outcome", out.Kind.String()),
		slog.Duration("duration", elapsed),
		slog.Bool("stale", out.Stale),
	}
	switch {
	case out.Err != nil:
		log.Warn("lookup failed", append(attrs, slog.Any("error", out.Err))...)
	default:
		log.Info("lookup finished", attrs...)
	}
	c.observe(out.Kind, elapsed)

	return out
}

// resolve performs the request and classification. A panic in either is
// absorbed as a failure.
func (c *Controller) resolve(ctx context.Context, username string) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = Outcome{Kind: KindFailure, Err: fmt.Errorf("lookup panicked: %v", r)}
		}
	}()

	user, err := c.fetcher.GetUser(ctx, username)
	return Classify(user, err)
}

// apply commits the outcome, clears the input and sends the resulting
// notification in one critical section, so the lookup that resolves last
// owns both the profile and the last notification. It reports false when the
// outcome was superseded and therefore discarded.
func (c *Controller) apply(seq uint64, out Outcome) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pending--
	c.input = ""

	if c.sequenced && seq != c.seq {
		return false
	}
	switch out.Kind {
	case KindSuccess:
		c.profile = out.Profile.Clone()
	case KindNotFound:
		c.notify(models.SeverityError, c.messages.ErrorTitle, c.messages.NotFound)
	case KindFailure:
		c.notify(models.SeverityError, c.messages.ErrorTitle, c.messages.FetchFailed)
	}
	return true
}

func (c *Controller) notify(severity models.Severity, title, body string) {
	if c.notifier == nil {
		return
	}
	c.notifier.Notify(models.Notification{Severity: severity, Title: title, Body: body})
}

func (c *Controller) observe(kind Kind, elapsed time.Duration) {
	if c.recorder == nil {
		return
	}
	c.recorder.ObserveLookup(kind.String(), elapsed)
}
