package services

import (
	"encoding/json"
	"time"

	"authorshaven/config"
	"authorshaven/global"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ReactionEvent is what gets published to the notification queue after a
// ledger write commits.
type ReactionEvent struct {
	ResourceType string    `json:"resourceType"`
	ResourceID   uint      `json:"resourceId"`
	UserID       uint      `json:"userId"`
	Likes        bool      `json:"likes"`
	Counts       Counts    `json:"counts"`
	OccurredAt   time.Time `json:"occurredAt"`
}

// PublishReactionEvent pushes the event onto the configured queue. The
// stream is best-effort: a publish failure is logged and never fails the
// reaction that produced it.
func PublishReactionEvent(event ReactionEvent) {
	if global.RabbitChannel == nil {
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		global.Log.Warnw("marshal reaction event", "error", err)
		return
	}

	queue := config.AppConfig.RabbitMQ.Queue
	if queue == "" {
		queue = "reaction.events"
	}

	err = global.RabbitChannel.Publish("", queue, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		global.Log.Warnw("publish reaction event", "queue", queue, "error", err)
	}
}
