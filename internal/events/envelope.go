package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeCVSSScored           = "cvss.scored"
	TypeCVSSCriticalDetected = "cvss.critical_detected"

	envelopeSchemaVersion = 1
)

// Envelope defines the standard wrapper for outbound Kafka events.
type Envelope struct {
	Type       string      `json:"type"`
	Version    int         `json:"version"`
	ID         string      `json:"id"`
	OccurredAt time.Time   `json:"occurred_at"`
	Source     string      `json:"source,omitempty"`
	ItemID     string      `json:"item_id,omitempty"`
	Data       interface{} `json:"data"`
}

// NewEnvelope builds a versioned envelope for the provided event data.
func NewEnvelope(eventType, source, itemID string, data interface{}) Envelope {
	return Envelope{
		Type:       eventType,
		Version:    envelopeSchemaVersion,
		ID:         uuid.NewString(),
		OccurredAt: time.Now().UTC(),
		Source:     source,
		ItemID:     itemID,
		Data:       data,
	}
}
