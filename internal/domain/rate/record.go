package rate

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// DefaultPlatformRate is the documented fallback commission applied
// when no active rate record exists. A missing rate configuration must
// never block a booking; callers log a warning and degrade to this.
const DefaultPlatformRate = 0.15

var ErrInvalidRate = errors.New("rate must be in [0,1)")

// Record is one versioned, time-bounded platform-fee rate. At most one
// record is active at any instant; activation swaps the flag in a
// single atomic statement at the storage layer.
type Record struct {
	ID            uuid.UUID
	Rate          float64
	Version       int
	EffectiveFrom time.Time
	EffectiveTo   *time.Time
	Active        bool
	CreatedAt     time.Time
}

func NewRecord(id uuid.UUID, value float64, version int, effectiveFrom time.Time, effectiveTo *time.Time) (*Record, error) {
	if value < 0 || value >= 1 {
		return nil, ErrInvalidRate
	}
	return &Record{
		ID:            id,
		Rate:          value,
		Version:       version,
		EffectiveFrom: effectiveFrom,
		EffectiveTo:   effectiveTo,
		Active:        true,
	}, nil
}

func (r *Record) IsEffectiveAt(t time.Time) bool {
	if t.Before(r.EffectiveFrom) {
		return false
	}
	if r.EffectiveTo != nil && t.After(*r.EffectiveTo) {
		return false
	}
	return true
}

// Provenance records which rate fed a calculation, for the audit trail.
type Provenance struct {
	RecordID *uuid.UUID `json:"record_id,omitempty"`
	Rate     float64    `json:"rate"`
	Version  int        `json:"version"`
	Fallback bool       `json:"fallback"`
}
