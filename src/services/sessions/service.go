package sessions

import (
	"sync"

	"Backend-MedDash/src/models"
)

// Store เก็บ feature ที่แต่ละ browser session เลือกไว้ (key = session id)
// เป็น state เดียวที่เปลี่ยนได้หลัง start เลยต้องมี lock ของตัวเอง
type Store struct {
	mu       sync.RWMutex
	selected map[string]models.Feature
}

func NewStore() *Store {
	return &Store{selected: make(map[string]models.Feature)}
}

// Get คืน feature ของ session หรือค่าเริ่มต้น "Age" ถ้ายังไม่เคยเลือก
func (s *Store) Get(sessionID string) models.Feature {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if f, ok := s.selected[sessionID]; ok {
		return f
	}
	return models.DefaultFeature
}

// Set บันทึก feature ที่ session เลือกจาก dropdown
func (s *Store) Set(sessionID string, f models.Feature) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected[sessionID] = f
}
