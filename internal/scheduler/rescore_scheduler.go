package scheduler

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"cvss-scoring-service-golang/internal/config"
	"cvss-scoring-service-golang/internal/cvss"
	"cvss-scoring-service-golang/internal/logging"
	"cvss-scoring-service-golang/internal/services"
	"cvss-scoring-service-golang/internal/store"
	"cvss-scoring-service-golang/internal/telemetry"
	"cvss-scoring-service-golang/utils"

	"github.com/friendsofgo/errors"
	"github.com/robfig/cron/v3"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const rescoreSource = "rescore"

type attributeStore interface {
	PendingCVSS(ctx context.Context, limit int) ([]store.Attribute, error)
	SaveScore(ctx context.Context, id int64, outcome utils.CVSSScoredPayload) error
}

type evaluator interface {
	Evaluate(ctx context.Context, source, input string) (*cvss.Evaluation, error)
}

// dispatch is swapped in tests.
var dispatch = services.Dispatch

type SchedulerConfig struct {
	RunSpec    string
	BatchLimit int
}

// LoadSchedulerConfig applies defaults to the configured values.
func LoadSchedulerConfig(cfg *config.Config) SchedulerConfig {
	sc := SchedulerConfig{
		RunSpec:    "@every 10m",
		BatchLimit: 100,
	}
	if strings.TrimSpace(cfg.RescoreSpec) != "" {
		sc.RunSpec = cfg.RescoreSpec
	}
	if cfg.RescoreBatchLimit > 0 {
		sc.BatchLimit = cfg.RescoreBatchLimit
	}
	return sc
}

// StartRescoreScheduler scores CVSS attributes that analysts entered but
// nobody scored yet. The returned cron is already running.
func StartRescoreScheduler(cfg *config.Config, st attributeStore, scorer evaluator) (*cron.Cron, error) {
	sc := LoadSchedulerConfig(cfg)
	log := logging.Component("scheduler")

	c := cron.New(cron.WithSeconds())
	_, err := c.AddFunc(sc.RunSpec, func() {
		ctx := context.Background()
		start := time.Now()

		updated, err := runRescore(ctx, st, scorer, sc.BatchLimit)
		status := "completed"
		if err != nil {
			status = "failed"
			log.Error("rescore run failed", "err", err)
		}
		telemetry.RescoreRuns.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
		log.Info("rescore run finished", "updated", updated, "took", time.Since(start))
	})
	if err != nil {
		return nil, errors.Wrapf(err, "schedule rescore job %q", sc.RunSpec)
	}

	c.Start()
	log.Info("rescore scheduler initialized", "spec", sc.RunSpec, "batch_limit", sc.BatchLimit)
	return c, nil
}

// runRescore processes one batch and returns how many rows it wrote.
func runRescore(ctx context.Context, st attributeStore, scorer evaluator, limit int) (int, error) {
	attrs, err := st.PendingCVSS(ctx, limit)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, a := range attrs {
		itemID := strconv.FormatInt(a.ID, 10)
		ev, evalErr := scorer.Evaluate(ctx, rescoreSource, a.Value)
		payload, err := services.BuildPayload(itemID, rescoreSource, a.Value, ev, evalErr)
		if err != nil {
			slog.Warn("attribute skipped", "component", "scheduler", "attribute_id", a.ID, "err", err)
			continue
		}

		if err := st.SaveScore(ctx, a.ID, payload); err != nil {
			slog.Warn("attribute not saved", "component", "scheduler", "attribute_id", a.ID, "err", err)
			continue
		}
		updated++

		if payload.Status == utils.StatusScored || payload.Status == utils.StatusRated {
			if err := dispatch(ctx, payload); err != nil {
				slog.Warn("rescored attribute not published", "component", "scheduler", "attribute_id", a.ID, "err", err)
			}
		}
	}

	telemetry.RescoreUpdated.Add(ctx, int64(updated))
	return updated, nil
}
