package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
	"github.com/google/uuid"

	"ghprofile/internal/lookup"
)

// ScreenKey is the session key holding the screen id.
const ScreenKey = "screen_id"

// ScreenMiddleware attaches the caller's screen to the request.
type ScreenMiddleware struct {
	screens *lookup.Registry[*lookup.Screen]
}

// NewScreenMiddleware creates a new screen middleware instance.
func NewScreenMiddleware(screens *lookup.Registry[*lookup.Screen]) *ScreenMiddleware {
	return &ScreenMiddleware{screens: screens}
}

// LoadScreen resolves the session's screen, creating one on first visit, and
// stores it in c.Locals("screen").
func (m *ScreenMiddleware) LoadScreen(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
	}

	id, _ := sess.Get(ScreenKey).(string)
	if id == "" {
		id = uuid.NewString()
		sess.Set(ScreenKey, id)
	}

	c.Locals("screen", m.screens.Get(id))
	return c.Next()
}

// ScreenFrom returns the screen loaded by LoadScreen.
func ScreenFrom(c fiber.Ctx) (*lookup.Screen, bool) {
	s, ok := c.Locals("screen").(*lookup.Screen)
	return s, ok
}
