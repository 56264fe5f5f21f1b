package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestID ติด request id ให้ทุก request บน api group
// ใช้ id เดิมจาก header ถ้า client ส่งมา
func RequestID(c *fiber.Ctx) error {
	id := c.Get("X-Request-ID")
	if id == "" {
		id = uuid.NewString()
	}

	c.Locals("requestId", id)
	c.Set("X-Request-ID", id)

	return c.Next()
}
