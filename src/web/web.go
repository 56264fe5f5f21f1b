package web

import (
	_ "embed"

	"github.com/gofiber/fiber/v2"
)

//go:embed index.html
var indexHTML string

// Page เสิร์ฟหน้า dashboard (layout คงที่ ข้อมูลมาจาก API ทั้งหมด)
func Page(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	return c.SendString(indexHTML)
}
