package services

import (
	"encoding/json"
	"maxios-backend/internal/database"
	"time"

	"go.uber.org/zap"
)

const eventChannelPrefix = "events:"

// ChangeEvent is published on redis whenever a collection changes, so
// interested consumers (dashboards, notifiers) can react without polling.
type ChangeEvent struct {
	Entity    string    `json:"entity"`
	Action    string    `json:"action"`
	EntityID  uint      `json:"entityId,omitempty"`
	UserID    uint      `json:"userId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// PublishChange broadcasts a change event on the "events:<entity>" channel.
// Best effort: a publish failure is logged and never fails the operation
// that triggered it.
func PublishChange(entity, action string, entityID, userID uint) {
	if database.RedisClient == nil {
		return
	}

	event := ChangeEvent{
		Entity:    entity,
		Action:    action,
		EntityID:  entityID,
		UserID:    userID,
		Timestamp: time.Now(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return
	}

	if err := database.RedisClient.Publish(database.Ctx, eventChannelPrefix+entity, payload).Err(); err != nil {
		zap.L().Warn("failed to publish change event",
			zap.String("entity", entity),
			zap.String("action", action),
			zap.Error(err))
	}
}
