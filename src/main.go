package main

import (
	_ "Backend-MedDash/docs"
	"Backend-MedDash/src/config"
	"Backend-MedDash/src/controllers"
	"Backend-MedDash/src/database"
	"Backend-MedDash/src/routes"
	"Backend-MedDash/src/services/dataset"
	"Backend-MedDash/src/services/sessions"
	"context"
	"fmt"
	"log"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

// @title Medical Appointment Dashboard API
// @version 1.0
// @description No-show analytics over the fixed medical-appointment dataset
// @BasePath /api
func main() {

	// โหลด config จาก environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	// ต่อ Redis ถ้าตั้งค่าไว้ (แค่ cache ของไฟล์ CSV - ไม่มีก็ทำงานได้)
	var cache dataset.Cache
	if cfg.RedisURI != "" {
		if err := database.InitRedis(cfg.RedisURI); err != nil {
			log.Printf("⚠️ Warning: Redis unavailable, loading dataset without cache: %v", err)
		} else if dc := database.NewDatasetCache("dataset:csv"); dc != nil {
			cache = dc
		}
	}

	// โหลด dataset ครั้งเดียว - ล้มเหลวคือจบ ไม่มี retry
	data, err := dataset.Load(context.Background(), cfg.DatasetURL, cache)
	if err != nil {
		log.Fatalf("Error loading the dataset: %v", err)
	}

	// สร้าง app instance
	app := fiber.New()

	// ✅ เปิดใช้งาน CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     "GET,PUT,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: false, // ❌ ต้องเป็น false ถ้าใช้ "*"
	}))

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// รวม routes - data context ถูก inject ผ่าน controller ไม่มี global
	dc := controllers.NewDashboardController(data, sessions.NewStore())
	routes.InitRoutes(app, dc)

	// เริ่มเซิร์ฟเวอร์
	log.Println("Server is running on port " + cfg.Port)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(cfg.Port)))
	if err != nil {
		log.Fatal(err)
	}

}
