package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResetTokens_ConsumeIsSingleUse(t *testing.T) {
	store := NewResetTokens()
	store.Set("tok", "admin@example.com", time.Minute)

	assert.Equal(t, "admin@example.com", store.Consume("tok"))
	assert.Equal(t, "", store.Consume("tok"))
}

func TestResetTokens_Expired(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	store := NewResetTokens()
	store.now = func() time.Time { return now }

	store.Set("old", "a@example.com", time.Minute)
	store.Set("other", "b@example.com", time.Hour)
	now = now.Add(2 * time.Minute)

	assert.Equal(t, 1, store.Purge())
	assert.Equal(t, "", store.Consume("old"))
	assert.Equal(t, "b@example.com", store.Consume("other"))
}

func TestResetTokens_NewTokenReplacesPrevious(t *testing.T) {
	store := NewResetTokens()
	store.Set("first", "a@example.com", time.Minute)
	store.Set("second", "a@example.com", time.Minute)

	assert.Equal(t, "", store.Consume("first"))
	assert.Equal(t, "a@example.com", store.Consume("second"))
}
