package routes

import (
	"Backend-MedDash/src/controllers"
	"Backend-MedDash/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupDashboardRoutes ตั้งค่า routes สำหรับ dashboard API
func SetupDashboardRoutes(app fiber.Router, dc *controllers.DashboardController) {
	// สร้าง group สำหรับ dashboard routes
	dashboardGroup := app.Group("/api/dashboard")
	dashboardGroup.Use(middleware.RequestID)

	// GET /api/dashboard/overview - สี่การ์ดสรุป คำนวณครั้งเดียวตอน start
	dashboardGroup.Get("/overview", dc.GetOverview)

	// GET /api/dashboard/features - ตัวเลือกของ dropdown
	dashboardGroup.Get("/features", dc.GetFeatureOptions)

	// GET /api/dashboard/charts?feature=Age - spec ของกราฟทั้งแปด slot
	dashboardGroup.Get("/charts", dc.GetCharts)

	// PUT /api/dashboard/selection - event เปลี่ยน dropdown ของ session
	dashboardGroup.Put("/selection", dc.UpdateSelection)

	// GET /api/dashboard/summary/* - ตาราง summary ดิบ
	dashboardGroup.Get("/summary/age-groups", dc.GetAgeGroupSummary)
	dashboardGroup.Get("/summary/weekdays", dc.GetWeekdaySummary)
}
