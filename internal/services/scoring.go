package services

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"cvss-scoring-service-golang/internal/cvss"
	"cvss-scoring-service-golang/internal/services/profiles"
	"cvss-scoring-service-golang/internal/telemetry"
	"cvss-scoring-service-golang/utils"

	"github.com/friendsofgo/errors"
)

// Scorer runs the CVSS engine behind the redis result cache and records
// every calculation.
type Scorer struct {
	CacheTTL time.Duration
	DB       *sql.DB
}

func NewScorer(cacheTTL time.Duration, db *sql.DB) *Scorer {
	return &Scorer{CacheTTL: cacheTTL, DB: db}
}

// ScoreVector scores a vector string. When profile names an environment
// profile its requirements are merged in before scoring.
func (s *Scorer) ScoreVector(ctx context.Context, source, vector, profile string) (*cvss.Result, error) {
	vector = strings.TrimSpace(vector)
	// strings outside the grammar can never have been cached
	if profile == "" && cvss.ValidVectorString(vector) {
		if res, ok := utils.GetCachedScore(ctx, vector); ok {
			telemetry.RecordScore(ctx, source, true, string(res.BaseSeverity))
			return res, nil
		}
	}

	m, err := cvss.ParseVector(vector)
	if err != nil {
		telemetry.RecordScore(ctx, source, false, "")
		return nil, err
	}
	return s.ScoreMetrics(ctx, source, m, profile)
}

// ScoreMetrics scores a metric set, applying profile like ScoreVector.
func (s *Scorer) ScoreMetrics(ctx context.Context, source string, m cvss.Metrics, profile string) (*cvss.Result, error) {
	if profile != "" {
		p, err := profiles.Get(ctx, s.DB, profile)
		if err != nil {
			return nil, err
		}
		m = p.Apply(m)
	}

	res, err := cvss.CalculateFromMetrics(m)
	if err != nil {
		telemetry.RecordScore(ctx, source, false, "")
		return nil, err
	}
	telemetry.RecordScore(ctx, source, true, string(res.BaseSeverity))
	utils.CacheScore(ctx, res, s.CacheTTL)
	return res, nil
}

// Evaluate scores a vector or rates a bare score, see cvss.Evaluate.
func (s *Scorer) Evaluate(ctx context.Context, source, input string) (*cvss.Evaluation, error) {
	trimmed := strings.TrimSpace(input)
	if !strings.HasPrefix(strings.ToUpper(trimmed), "CVSS:") {
		ev, err := cvss.Evaluate(input)
		if err == nil && !ev.Empty {
			telemetry.RecordScore(ctx, source, true, string(ev.Severity))
		}
		return ev, err
	}

	res, err := s.ScoreVector(ctx, source, trimmed, "")
	if err != nil {
		return nil, err
	}
	return &cvss.Evaluation{
		Input:    input,
		Score:    res.BaseScore(),
		Severity: res.BaseSeverity,
		Vector:   res.VectorString,
		Result:   res,
	}, nil
}

// BuildPayload turns an evaluation into the cvss.scored event body.
// Validation failures become invalid outcomes; other errors are returned.
func BuildPayload(itemID, source, input string, ev *cvss.Evaluation, evalErr error) (utils.CVSSScoredPayload, error) {
	payload := utils.CVSSScoredPayload{
		ItemID:    itemID,
		Source:    source,
		Input:     input,
		Timestamp: time.Now().UTC(),
	}

	if evalErr != nil {
		var verr *cvss.ValidationError
		if !errors.As(evalErr, &verr) {
			return payload, evalErr
		}
		payload.Status = utils.StatusInvalid
		payload.ErrorType = string(verr.Kind)
		payload.ErrorMetrics = verr.Metrics
		return payload, nil
	}

	switch {
	case ev.Empty:
		payload.Status = utils.StatusEmpty
		return payload, nil
	case ev.Result != nil:
		payload.Status = utils.StatusScored
		payload.Result = ev.Result
	default:
		payload.Status = utils.StatusRated
	}

	priority := PriorityFor(string(ev.Severity), ev.Score)
	payload.Vector = ev.Vector
	payload.Score = ev.Score
	payload.Severity = ev.Severity
	payload.Priority = priority.Level
	payload.DueInDays = priority.DueInDays()
	dueAt := priority.DueDate(payload.Timestamp)
	payload.DueAt = &dueAt
	payload.Controls = priority.Controls
	return payload, nil
}
