// Package store reads and writes CVSS attribute rows of the analysis
// platform.
package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"cvss-scoring-service-golang/utils"

	"github.com/aarondl/null/v8"
	"github.com/friendsofgo/errors"
)

// ErrAttributeNotFound is returned when an update matches no row.
var ErrAttributeNotFound = errors.New("attribute not found")

// Attribute is one report_item_attributes row holding a CVSS value.
type Attribute struct {
	ID           int64
	Value        string
	CVSSScore    null.Float64
	CVSSSeverity null.String
	CVSSVector   null.String
	CVSSError    null.String
	ScoredAt     null.Time
}

const (
	pendingQuery = `
SELECT id,
       COALESCE(value, ''),
       cvss_score,
       cvss_severity,
       cvss_vector,
       cvss_error,
       scored_at
FROM report_item_attributes
WHERE attribute_type = 'CVSS'
  AND scored_at IS NULL
ORDER BY id
LIMIT $1`

	saveQuery = `
UPDATE report_item_attributes
SET cvss_score = $2,
    cvss_severity = $3,
    cvss_vector = $4,
    cvss_error = $5,
    scored_at = $6
WHERE id = $1`
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// PendingCVSS returns up to limit CVSS attributes that were never scored.
func (s *Store) PendingCVSS(ctx context.Context, limit int) ([]Attribute, error) {
	rows, err := s.db.QueryContext(ctx, pendingQuery, limit)
	if err != nil {
		return nil, errors.Wrap(err, "query pending cvss attributes")
	}
	defer rows.Close()

	var out []Attribute
	for rows.Next() {
		var a Attribute
		if err := rows.Scan(
			&a.ID,
			&a.Value,
			&a.CVSSScore,
			&a.CVSSSeverity,
			&a.CVSSVector,
			&a.CVSSError,
			&a.ScoredAt,
		); err != nil {
			return nil, errors.Wrap(err, "scan cvss attribute")
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate cvss attributes")
	}
	return out, nil
}

// SaveScore writes a scoring outcome onto attribute id. Invalid outcomes
// store the error and leave the score columns NULL.
func (s *Store) SaveScore(ctx context.Context, id int64, outcome utils.CVSSScoredPayload) error {
	var (
		score    null.Float64
		severity null.String
		vector   = null.NewString(outcome.Vector, outcome.Vector != "")
		cvssErr  null.String
	)
	switch outcome.Status {
	case utils.StatusScored, utils.StatusRated:
		score = null.Float64From(outcome.Score)
		severity = null.StringFrom(string(outcome.Severity))
	case utils.StatusInvalid:
		msg := outcome.ErrorType
		if len(outcome.ErrorMetrics) > 0 {
			msg += ": " + strings.Join(outcome.ErrorMetrics, ", ")
		}
		cvssErr = null.StringFrom(msg)
	}

	scoredAt := outcome.Timestamp
	if scoredAt.IsZero() {
		scoredAt = time.Now().UTC()
	}

	res, err := s.db.ExecContext(ctx, saveQuery, id, score, severity, vector, cvssErr, null.TimeFrom(scoredAt))
	if err != nil {
		return errors.Wrapf(err, "save score for attribute %d", id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrapf(err, "save score for attribute %d", id)
	}
	if n == 0 {
		return errors.Wrapf(ErrAttributeNotFound, "attribute %d", id)
	}
	return nil
}
