package services

import (
	"context"
	"log/slog"

	"cvss-scoring-service-golang/internal/cvss"
	"cvss-scoring-service-golang/utils"

	"github.com/friendsofgo/errors"
)

// Dispatch fans a scoring outcome out: SSE subscribers first, then the
// cvss.scored topic, then a notification when the score is critical.
func Dispatch(ctx context.Context, payload utils.CVSSScoredPayload) error {
	utils.BroadcastScoreEvent(payload.Source, payload)

	if err := utils.ProduceCVSSScored(ctx, payload); err != nil {
		return errors.Wrapf(err, "dispatch item %s", payload.ItemID)
	}

	if payload.Severity == cvss.SeverityCritical {
		if err := utils.PublishCriticalScore(ctx, payload); err != nil {
			// the score itself is already published
			slog.Warn("critical notification not sent", "component", "dispatch", "item_id", payload.ItemID, "err", err)
		}
	}
	return nil
}
