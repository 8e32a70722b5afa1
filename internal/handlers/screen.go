package handlers

import (
	"github.com/gofiber/fiber/v3"

	"ghprofile/internal/config"
	"ghprofile/internal/lookup"
	"ghprofile/internal/middleware"
	"ghprofile/internal/presentation"
)

// ScreenHandler serves the profile lookup screen.
type ScreenHandler struct {
	adapter *presentation.Adapter
	cfg     *config.Config
}

// NewScreenHandler creates a new screen handler.
func NewScreenHandler(cfg *config.Config) *ScreenHandler {
	return &ScreenHandler{
		adapter: presentation.NewAdapter(cfg.Messages),
		cfg:     cfg,
	}
}

// Index renders the screen with the current profile and any queued toasts.
func (h *ScreenHandler) Index(c fiber.Ctx) error {
	screen, ok := middleware.ScreenFrom(c)
	if !ok {
		return fiber.NewError(fiber.StatusInternalServerError, "screen unavailable")
	}

	return c.Render("index", MergeBranding(h.screenData(screen), h.cfg))
}

// Input stores the text field's current value. The field posts on every edit.
func (h *ScreenHandler) Input(c fiber.Ctx) error {
	screen, ok := middleware.ScreenFrom(c)
	if !ok {
		return fiber.NewError(fiber.StatusInternalServerError, "screen unavailable")
	}

	screen.SetUsernameInput(c.FormValue("username"))
	return c.SendStatus(fiber.StatusNoContent)
}

// Search runs a lookup for the pending input. A username form field, when
// present, replaces the pending input first. HTMX requests get the screen
// fragment back; plain form posts are redirected to the index.
func (h *ScreenHandler) Search(c fiber.Ctx) error {
	screen, ok := middleware.ScreenFrom(c)
	if !ok {
		if isHTMX(c) {
			return htmxError(c, "screen unavailable")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "screen unavailable")
	}

	if c.Request().PostArgs().Has("username") {
		screen.SetUsernameInput(c.FormValue("username"))
	}
	screen.SubmitLookup(c.Context())

	if isHTMX(c) {
		return c.Render("partials/screen", MergeBranding(h.screenData(screen), h.cfg), "")
	}
	return c.Redirect().To("/")
}

// screenData drains the inbox, so each toast is rendered once.
func (h *ScreenHandler) screenData(screen *lookup.Screen) fiber.Map {
	return fiber.Map{
		"View":     h.adapter.Render(screen.CurrentProfile()),
		"Toasts":   h.adapter.Notifications(screen.Inbox.Drain()),
		"Input":    screen.UsernameInput(),
		"Pending":  screen.Pending() > 0,
		"Messages": h.cfg.Messages,
	}
}
