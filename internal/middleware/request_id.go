package middleware

import (
	"studyaid/internal/util"

	"github.com/gofiber/fiber/v2"
)

// RequestIDHeader is the response header carrying the per-request ULID.
const RequestIDHeader = "X-Request-Id"

// requestIDKey is the fiber locals key the id is stored under.
const requestIDKey = "request_id"

// RequestID assigns a ULID to every request, exposing it via locals and
// the response header so log lines and client reports can be correlated.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = util.NewULID()
		}
		c.Locals(requestIDKey, id)
		c.Set(RequestIDHeader, id)
		return c.Next()
	}
}

// GetRequestID returns the id assigned by RequestID, or "" when absent.
func GetRequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestIDKey).(string); ok {
		return id
	}
	return ""
}
