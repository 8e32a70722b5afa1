package api

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"ghprofile/internal/config"
	"ghprofile/internal/lookup"
	"ghprofile/internal/middleware"
	"ghprofile/internal/presentation"
)

// ScreenHandler exposes the caller's screen via JSON API.
type ScreenHandler struct {
	adapter *presentation.Adapter
}

// NewScreenHandler creates a new API screen handler.
func NewScreenHandler(cfg *config.Config) *ScreenHandler {
	return &ScreenHandler{adapter: presentation.NewAdapter(cfg.Messages)}
}

type screenResponse struct {
	View          presentation.View                `json:"view"`
	Input         string                           `json:"input"`
	Pending       bool                             `json:"pending"`
	Notifications []presentation.NotificationView `json:"notifications"`
}

type lookupResponse struct {
	Outcome string `json:"outcome"`
	screenResponse
}

// Show returns the current view and drains queued notifications.
func (h *ScreenHandler) Show(c fiber.Ctx) error {
	screen, ok := middleware.ScreenFrom(c)
	if !ok {
		return jsonError(c, fiber.StatusInternalServerError, "screen unavailable")
	}

	return jsonSuccess(c, h.snapshot(screen))
}

// Lookup sets the input from the optional "username" body field and submits
// a lookup. Lookup failures are reported in the outcome and notifications,
// never as an HTTP error.
func (h *ScreenHandler) Lookup(c fiber.Ctx) error {
	screen, ok := middleware.ScreenFrom(c)
	if !ok {
		return jsonError(c, fiber.StatusInternalServerError, "screen unavailable")
	}

	var body struct {
		Username *string `json:"username"`
	}
	if len(c.Body()) > 0 {
		if err := json.Unmarshal(c.Body(), &body); err != nil {
			return jsonError(c, fiber.StatusBadRequest, "invalid JSON body")
		}
	}
	if body.Username != nil {
		screen.SetUsernameInput(*body.Username)
	}

	out := screen.SubmitLookup(c.Context())

	return jsonSuccess(c, lookupResponse{
		Outcome:        out.Kind.String(),
		screenResponse: h.snapshot(screen),
	})
}

func (h *ScreenHandler) snapshot(screen *lookup.Screen) screenResponse {
	return screenResponse{
		View:          h.adapter.Render(screen.CurrentProfile()),
		Input:         screen.UsernameInput(),
		Pending:       screen.Pending() > 0,
		Notifications: h.adapter.Notifications(screen.Inbox.Drain()),
	}
}
