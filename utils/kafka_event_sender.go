package utils

import (
	"context"
	"encoding/json"
	"time"

	"cvss-scoring-service-golang/internal/cvss"
	"cvss-scoring-service-golang/internal/events"
	kafkautil "cvss-scoring-service-golang/internal/kafka"
	"cvss-scoring-service-golang/internal/logging"

	"github.com/friendsofgo/errors"
	"github.com/segmentio/kafka-go"
)

const (
	StatusScored  = "scored"
	StatusRated   = "rated"
	StatusEmpty   = "empty"
	StatusInvalid = "invalid"
)

// CVSSScoredPayload defines the schema for cvss.scored event data.
type CVSSScoredPayload struct {
	ItemID       string        `json:"item_id"`
	Source       string        `json:"source"`
	Input        string        `json:"input"`
	Status       string        `json:"status"`
	Vector       string        `json:"vector,omitempty"`
	Score        float64       `json:"score"`
	Severity     cvss.Severity `json:"severity,omitempty"`
	Priority     string        `json:"priority,omitempty"`
	DueInDays    int           `json:"due_in_days,omitempty"`
	DueAt        *time.Time    `json:"due_at,omitempty"`
	Controls     []string      `json:"controls,omitempty"`
	Result       *cvss.Result  `json:"result,omitempty"`
	ErrorType    string        `json:"error_type,omitempty"`
	ErrorMetrics []string      `json:"error_metrics,omitempty"`
	Timestamp    time.Time     `json:"timestamp"`
}

// publishAttempts bounds retries while the broker syncs a new topic.
var (
	publishAttempts = 5
	publishBackoff  = time.Second
)

// ProduceCVSSScored publishes a scoring outcome to Kafka.
func ProduceCVSSScored(ctx context.Context, evt CVSSScoredPayload) error {
	payload := events.NewEnvelope(events.TypeCVSSScored, evt.Source, evt.ItemID, evt)
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "marshal cvss.scored")
	}

	writer, err := kafkautil.GetWriter(kafkautil.TopicCVSSScored)
	if err != nil {
		return errors.Wrap(err, "kafka writer unavailable")
	}

	msg := kafka.Message{
		Key:   []byte(evt.ItemID),
		Value: data,
		Time:  time.Now().UTC(),
	}

	log := logging.Component("kafka").With("item_id", evt.ItemID)
	for attempt := 1; attempt <= publishAttempts; attempt++ {
		if err := writer.WriteMessages(ctx, msg); err != nil {
			log.Warn("publish attempt failed", "attempt", attempt, "err", err)
			select {
			case <-ctx.Done():
				return errors.Wrap(ctx.Err(), "publish cvss.scored")
			case <-time.After(time.Duration(attempt) * publishBackoff):
			}
			continue
		}
		log.Debug("published cvss.scored", "status", evt.Status, "severity", evt.Severity)
		return nil
	}

	log.Error("failed to publish cvss.scored after retries")
	return errors.Errorf("kafka publish failed after %d attempts", publishAttempts)
}
