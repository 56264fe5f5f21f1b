package database

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client
var RedisCtx = context.Background()

// datasetCacheTTL อายุของ CSV ที่ cache ไว้ - แค่กันโหลดซ้ำตอน restart
const datasetCacheTTL = 24 * time.Hour

// InitRedis เชื่อมต่อ Redis ถ้ามีการตั้งค่า URI ไว้ (optional)
// คืน error แทน panic เพราะ dashboard ทำงานได้โดยไม่มี cache
func InitRedis(uri string) error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     uri, // เช่น localhost:6379
		Password: "",  // ถ้าไม่มีรหัสผ่าน
		DB:       0,
	})
	_, err := RedisClient.Ping(RedisCtx).Result()
	if err != nil {
		RedisClient = nil
		return err
	}
	return nil
}

// DatasetCache ตัว cache ของไฟล์ CSV ดิบ ใช้โดย dataset loader
type DatasetCache struct {
	client *redis.Client
	key    string
}

// NewDatasetCache คืน cache ที่ผูกกับ RedisClient ปัจจุบัน หรือ nil ถ้าไม่ได้ต่อ Redis
func NewDatasetCache(key string) *DatasetCache {
	if RedisClient == nil {
		return nil
	}
	return &DatasetCache{client: RedisClient, key: key}
}

// Get คืน bytes ที่ cache ไว้ หรือ nil เมื่อไม่มี
func (dc *DatasetCache) Get(ctx context.Context) []byte {
	b, err := dc.client.Get(ctx, dc.key).Bytes()
	if err != nil {
		return nil
	}
	return b
}

// Set เก็บ bytes ลง cache (best effort - error ไม่ถือเป็นเรื่องร้ายแรง)
func (dc *DatasetCache) Set(ctx context.Context, b []byte) {
	dc.client.Set(ctx, dc.key, b, datasetCacheTTL)
}
