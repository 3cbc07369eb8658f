package services

import (
	"encoding/json"
	"maxios-backend/internal/database"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPublishChange(t *testing.T) {
	setupTestDB()
	mr := setupTestRedis()
	defer mr.Close()

	sub := database.RedisClient.Subscribe(database.Ctx, "events:withdrawals")
	defer sub.Close()

	// Wait for the subscription to be live before publishing
	_, err := sub.Receive(database.Ctx)
	assert.NoError(t, err)

	PublishChange("withdrawals", "created", 7, 3)

	select {
	case msg := <-sub.Channel():
		var event ChangeEvent
		assert.NoError(t, json.Unmarshal([]byte(msg.Payload), &event))
		assert.Equal(t, "withdrawals", event.Entity)
		assert.Equal(t, "created", event.Action)
		assert.Equal(t, uint(7), event.EntityID)
		assert.Equal(t, uint(3), event.UserID)
		assert.False(t, event.Timestamp.IsZero())
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for change event")
	}
}

func TestPublishChangeWithoutRedisIsNoop(t *testing.T) {
	database.RedisClient = nil

	// Must not panic
	PublishChange("news", "created", 1, 0)
}
