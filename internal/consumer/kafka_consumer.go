package consumer

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"cvss-scoring-service-golang/internal/config"
	"cvss-scoring-service-golang/internal/cvss"
	kafkautil "cvss-scoring-service-golang/internal/kafka"
	"cvss-scoring-service-golang/internal/logging"
	"cvss-scoring-service-golang/internal/services"
	"cvss-scoring-service-golang/internal/telemetry"
	"cvss-scoring-service-golang/utils"

	"github.com/friendsofgo/errors"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// ScoreRequestEvent asks for the vectors of one item to be scored. Vectors
// come from Vector, from Metrics, or are extracted from Payload.
type ScoreRequestEvent struct {
	ItemID  string                 `json:"item_id"`
	Source  string                 `json:"source"`
	Vector  string                 `json:"vector,omitempty"`
	Metrics cvss.Metrics           `json:"metrics,omitempty"`
	Profile string                 `json:"profile,omitempty"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

const (
	maxRetry      = 3
	defaultSource = "consumer"
)

var (
	retryDelay = 5 * time.Second
	// dispatch is swapped in tests.
	dispatch = services.Dispatch
)

type scorer interface {
	ScoreVector(ctx context.Context, source, vector, profile string) (*cvss.Result, error)
	ScoreMetrics(ctx context.Context, source string, m cvss.Metrics, profile string) (*cvss.Result, error)
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// StartConsumer reads score requests until ctx is cancelled.
func StartConsumer(ctx context.Context, cfg *config.Config, s scorer) error {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  kafkautil.SplitBrokers(cfg.KafkaBroker),
		GroupID:  cfg.ConsumerGroup,
		Topic:    cfg.KafkaTopic,
		MinBytes: 1e3,
		MaxBytes: 10e6,
	})

	slog.Info("kafka consumer started", "component", "consumer", "topic", cfg.KafkaTopic, "group", cfg.ConsumerGroup)
	return consume(ctx, r, s, cfg.DLQTopic)
}

func consume(ctx context.Context, r messageReader, s scorer, dlqTopic string) error {
	defer r.Close()
	log := logging.Component("consumer")

	for {
		m, err := r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("kafka consumer stopped")
				return nil
			}
			log.Warn("kafka fetch error", "err", err)
			time.Sleep(time.Second)
			continue
		}

		var evt ScoreRequestEvent
		if err := json.Unmarshal(m.Value, &evt); err != nil {
			log.Warn("invalid score request payload", "err", err)
			publishToDLQ(ctx, dlqTopic, m, err)
			_ = r.CommitMessages(ctx, m)
			continue
		}
		if evt.Source == "" {
			evt.Source = defaultSource
		}

		spanCtx, span := otel.Tracer(telemetry.ServiceName).Start(ctx, "ProcessScoreRequest")
		span.SetAttributes(attribute.String("item.id", evt.ItemID), attribute.String("item.source", evt.Source))
		start := time.Now()

		var lastErr error
		success := false
		dispatched := make(map[int]bool)
		for attempt := 1; attempt <= maxRetry; attempt++ {
			if lastErr = processEvent(spanCtx, s, evt, dispatched); lastErr != nil {
				log.Warn("score request attempt failed", "attempt", attempt, "item_id", evt.ItemID, "err", lastErr)
				if !sleepCtx(ctx, retryDelay) {
					break
				}
				continue
			}
			success = true
			break
		}

		if ctx.Err() != nil && !success {
			// left uncommitted so the request is redelivered after restart
			span.End()
			log.Info("kafka consumer stopped", "pending_item_id", evt.ItemID)
			return nil
		}

		if !success {
			log.Error("pushing score request to DLQ", "item_id", evt.ItemID, "attempts", maxRetry)
			publishToDLQ(spanCtx, dlqTopic, m, lastErr)
		}

		log.Debug("score request processed", "item_id", evt.ItemID, "took", time.Since(start), "success", success)
		span.End()

		if err := r.CommitMessages(ctx, m); err != nil {
			log.Warn("commit error", "err", err)
		}
	}
}

// processEvent scores every vector of evt and dispatches each outcome.
// Invalid vectors are dispatched as invalid outcomes; only infrastructure
// failures are returned. Jobs recorded in dispatched are skipped, so a retry
// of the same event never publishes an outcome twice.
func processEvent(ctx context.Context, s scorer, evt ScoreRequestEvent, dispatched map[int]bool) error {
	type job struct {
		input string
		score func() (*cvss.Result, error)
	}
	var jobs []job

	if evt.Vector != "" {
		vector := evt.Vector
		jobs = append(jobs, job{vector, func() (*cvss.Result, error) {
			return s.ScoreVector(ctx, evt.Source, vector, evt.Profile)
		}})
	}
	if len(evt.Metrics) > 0 {
		raw, _ := json.Marshal(evt.Metrics)
		jobs = append(jobs, job{string(raw), func() (*cvss.Result, error) {
			return s.ScoreMetrics(ctx, evt.Source, evt.Metrics, evt.Profile)
		}})
	}
	if evt.Payload != nil {
		for _, vector := range utils.ExtractVectors(evt.Payload) {
			vector := vector
			jobs = append(jobs, job{vector, func() (*cvss.Result, error) {
				return s.ScoreVector(ctx, evt.Source, vector, evt.Profile)
			}})
		}
	}

	if len(jobs) == 0 {
		slog.Info("no vectors in score request", "component", "consumer", "item_id", evt.ItemID)
		return nil
	}

	for i, j := range jobs {
		if dispatched[i] {
			continue
		}
		res, scoreErr := j.score()
		payload, err := services.BuildPayload(evt.ItemID, evt.Source, j.input, evaluation(j.input, res), scoreErr)
		if err != nil {
			return err
		}
		if err := dispatch(ctx, payload); err != nil {
			return err
		}
		dispatched[i] = true
	}
	return nil
}

// sleepCtx waits for d and reports false when ctx ends first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}

func evaluation(input string, res *cvss.Result) *cvss.Evaluation {
	if res == nil {
		return nil
	}
	return &cvss.Evaluation{
		Input:    input,
		Score:    res.BaseScore(),
		Severity: res.BaseSeverity,
		Vector:   res.VectorString,
		Result:   res,
	}
}

// publishToDLQ publishes the original Kafka message to the dead letter topic.
func publishToDLQ(ctx context.Context, topic string, msg kafka.Message, cause error) {
	if cause == nil {
		cause = errors.New("unknown failure")
	}
	writer, err := kafkautil.GetWriter(topic)
	if err != nil {
		slog.Error("DLQ writer unavailable", "component", "consumer", "err", err)
		return
	}

	data, _ := json.Marshal(map[string]interface{}{
		"key":   string(msg.Key),
		"value": string(msg.Value),
		"error": cause.Error(),
		"time":  time.Now().UTC(),
	})
	err = writer.WriteMessages(ctx, kafka.Message{
		Key:   msg.Key,
		Value: data,
	})
	if err != nil {
		slog.Error("failed to publish to DLQ", "component", "consumer", "err", err)
	}
}
