package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"cvss-scoring-service-golang/internal/events"
	kafkautil "cvss-scoring-service-golang/internal/kafka"

	"github.com/friendsofgo/errors"
	"github.com/segmentio/kafka-go"
)

// CriticalScoreNotification tells analysts that an item carries a critical
// vector.
type CriticalScoreNotification struct {
	Type       string                 `json:"type"`
	Severity   string                 `json:"severity"`
	Payload    map[string]interface{} `json:"payload"`
	OccurredAt time.Time              `json:"occurred_at"`
}

// PublishCriticalScore sends a notification for a critical score to the
// notification bus.
func PublishCriticalScore(ctx context.Context, evt CVSSScoredPayload) error {
	notification := CriticalScoreNotification{
		Type:     events.TypeCVSSCriticalDetected,
		Severity: string(evt.Severity),
		Payload: map[string]interface{}{
			"item_id":     evt.ItemID,
			"source":      evt.Source,
			"vector":      evt.Vector,
			"score":       evt.Score,
			"priority":    evt.Priority,
			"due_in_days": evt.DueInDays,
			"due_at":      evt.DueAt,
			"controls":    evt.Controls,
			"target_role": "analyst",
		},
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(notification)
	if err != nil {
		return errors.Wrap(err, "marshal critical notification")
	}

	writer, err := kafkautil.GetWriter(kafkautil.TopicNotificationEvents)
	if err != nil {
		return errors.Wrap(err, "notification writer unavailable")
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("item-%s", evt.ItemID)),
		Value: data,
		Time:  time.Now().UTC(),
	}
	if err := writer.WriteMessages(ctx, msg); err != nil {
		slog.Error("publish critical notification failed", "component", "notify", "item_id", evt.ItemID, "err", err)
		return errors.Wrap(err, "publish critical notification")
	}
	return nil
}
