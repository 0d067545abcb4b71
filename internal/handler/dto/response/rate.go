package response

import (
	"time"

	"staybilling/internal/domain/rate"

	"github.com/google/uuid"
)

type RateResponse struct {
	ID            uuid.UUID  `json:"id"`
	Rate          float64    `json:"rate"`
	Version       int        `json:"version"`
	EffectiveFrom time.Time  `json:"effectiveFrom"`
	EffectiveTo   *time.Time `json:"effectiveTo,omitempty"`
	Active        bool       `json:"active"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func FromRateRecord(rec *rate.Record) *RateResponse {
	return &RateResponse{
		ID:            rec.ID,
		Rate:          rec.Rate,
		Version:       rec.Version,
		EffectiveFrom: rec.EffectiveFrom,
		EffectiveTo:   rec.EffectiveTo,
		Active:        rec.Active,
		CreatedAt:     rec.CreatedAt,
	}
}
