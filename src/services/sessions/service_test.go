package sessions

import (
	"testing"

	"Backend-MedDash/src/models"

	"github.com/stretchr/testify/assert"
)

func TestStoreDefaultsToAge(t *testing.T) {
	store := NewStore()
	assert.Equal(t, models.FeatureAge, store.Get("unknown-session"))
}

func TestStoreSetGet(t *testing.T) {
	store := NewStore()

	store.Set("s1", models.FeatureGender)
	assert.Equal(t, models.FeatureGender, store.Get("s1"))

	// session อื่นยังได้ค่าเริ่มต้น
	assert.Equal(t, models.FeatureAge, store.Get("s2"))

	store.Set("s1", models.FeatureAge)
	assert.Equal(t, models.FeatureAge, store.Get("s1"))
}
