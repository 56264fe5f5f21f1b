package routes

import (
	"Backend-MedDash/src/controllers"
	"Backend-MedDash/src/web"

	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App, dc *controllers.DashboardController) {
	// หน้า dashboard
	app.Get("/", web.Page)

	// รวม routes ของ API
	SetupDashboardRoutes(app, dc)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
