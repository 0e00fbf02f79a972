package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"cvss-scoring-service-golang/internal/config"
	"cvss-scoring-service-golang/internal/cvss"
	"cvss-scoring-service-golang/internal/store"
	"cvss-scoring-service-golang/utils"
)

type fakeStore struct {
	pending []store.Attribute
	saved   map[int64]utils.CVSSScoredPayload
	failOn  int64
	listErr error
}

func (f *fakeStore) PendingCVSS(_ context.Context, limit int) ([]store.Attribute, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if len(f.pending) > limit {
		return f.pending[:limit], nil
	}
	return f.pending, nil
}

func (f *fakeStore) SaveScore(_ context.Context, id int64, outcome utils.CVSSScoredPayload) error {
	if id == f.failOn {
		return errors.New("write failed")
	}
	if f.saved == nil {
		f.saved = map[int64]utils.CVSSScoredPayload{}
	}
	f.saved[id] = outcome
	return nil
}

type engineEvaluator struct{}

func (engineEvaluator) Evaluate(_ context.Context, _, input string) (*cvss.Evaluation, error) {
	return cvss.Evaluate(input)
}

func captureDispatch(t *testing.T) *[]utils.CVSSScoredPayload {
	t.Helper()
	var sent []utils.CVSSScoredPayload
	prev := dispatch
	dispatch = func(_ context.Context, p utils.CVSSScoredPayload) error {
		sent = append(sent, p)
		return nil
	}
	t.Cleanup(func() { dispatch = prev })
	return &sent
}

func TestRunRescoreWritesEveryOutcome(t *testing.T) {
	sent := captureDispatch(t)
	st := &fakeStore{pending: []store.Attribute{
		{ID: 1, Value: "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H"},
		{ID: 2, Value: "4.3"},
		{ID: 3, Value: "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H"},
		{ID: 4, Value: ""},
	}}

	updated, err := runRescore(context.Background(), st, engineEvaluator{}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated != 4 {
		t.Fatalf("expected 4 updated rows, got %d", updated)
	}

	if got := st.saved[1]; got.Status != utils.StatusScored || got.Severity != cvss.SeverityCritical {
		t.Fatalf("unexpected outcome for vector attribute: %+v", got)
	}
	if got := st.saved[2]; got.Status != utils.StatusRated || got.Severity != cvss.SeverityMedium {
		t.Fatalf("unexpected outcome for bare score: %+v", got)
	}
	if got := st.saved[3]; got.Status != utils.StatusInvalid || got.ErrorType != string(cvss.MissingBaseMetric) {
		t.Fatalf("unexpected outcome for invalid vector: %+v", got)
	}
	if got := st.saved[4]; got.Status != utils.StatusEmpty {
		t.Fatalf("unexpected outcome for empty value: %+v", got)
	}

	if len(*sent) != 2 {
		t.Fatalf("expected 2 published outcomes, got %d", len(*sent))
	}
	if (*sent)[0].Source != rescoreSource || (*sent)[0].ItemID != "1" {
		t.Fatalf("unexpected published payload: %+v", (*sent)[0])
	}
}

func TestRunRescoreSkipsFailedWrites(t *testing.T) {
	captureDispatch(t)
	st := &fakeStore{
		pending: []store.Attribute{{ID: 1, Value: "9.1"}, {ID: 2, Value: "1.0"}},
		failOn:  1,
	}

	updated, err := runRescore(context.Background(), st, engineEvaluator{}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated != 1 {
		t.Fatalf("expected 1 updated row, got %d", updated)
	}
	if _, ok := st.saved[1]; ok {
		t.Fatalf("failed write should not be recorded")
	}
}

func TestRunRescoreListError(t *testing.T) {
	st := &fakeStore{listErr: errors.New("db down")}
	if _, err := runRescore(context.Background(), st, engineEvaluator{}, 10); err == nil {
		t.Fatalf("expected list error to propagate")
	}
}

func TestLoadSchedulerConfig(t *testing.T) {
	sc := LoadSchedulerConfig(&config.Config{})
	if sc.RunSpec != "@every 10m" || sc.BatchLimit != 100 {
		t.Fatalf("unexpected defaults: %+v", sc)
	}

	sc = LoadSchedulerConfig(&config.Config{RescoreSpec: "0 */5 * * * *", RescoreBatchLimit: 7})
	if sc.RunSpec != "0 */5 * * * *" || sc.BatchLimit != 7 {
		t.Fatalf("unexpected overrides: %+v", sc)
	}
}

func TestStartRescoreSchedulerRejectsBadSpec(t *testing.T) {
	if _, err := StartRescoreScheduler(&config.Config{RescoreSpec: "not a spec"}, &fakeStore{}, engineEvaluator{}); err == nil {
		t.Fatalf("expected invalid cron spec to fail")
	}

	c, err := StartRescoreScheduler(&config.Config{RescoreSpec: "@every 1h"}, &fakeStore{}, engineEvaluator{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := c.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatalf("cron did not stop")
	}
}
