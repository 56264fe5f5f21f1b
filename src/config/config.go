package config

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// DefaultDatasetURL คือ dataset นัดหมายแพทย์ (Kaggle, May 2016) ชุดคงที่
const DefaultDatasetURL = "https://raw.githubusercontent.com/Ahmed3280/Dashboard/refs/heads/main/KaggleV2-May-2016.csv"

// Config ค่าตั้งต้นของ process ทั้งหมด อ่านจาก environment ครั้งเดียวตอน start
type Config struct {
	Port           string `validate:"required,numeric"`
	DatasetURL     string `validate:"required,url"`
	RedisURI       string // optional - ถ้าว่างจะไม่ใช้ cache
	AllowedOrigins string
}

var validate = validator.New()

// Load โหลดค่า Environment Variables จากไฟล์ .env แล้วประกอบเป็น Config
func Load() (*Config, error) {
	// โหลดค่า Environment Variables จากไฟล์ .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	cfg := &Config{
		Port:           os.Getenv("APP_URI"),
		DatasetURL:     os.Getenv("DATASET_URL"),
		RedisURI:       os.Getenv("REDIS_URI"),
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
	}

	if cfg.Port == "" {
		cfg.Port = "8888" // ใช้ 8888 เป็นค่าเริ่มต้น
	}
	if cfg.DatasetURL == "" {
		cfg.DatasetURL = DefaultDatasetURL
	}
	if cfg.AllowedOrigins == "" {
		cfg.AllowedOrigins = "*"
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
