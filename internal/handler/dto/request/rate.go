package request

import "time"

type ActivateRateRequest struct {
	Rate          float64    `json:"rate" binding:"required,gte=0,lt=1"`
	EffectiveFrom *time.Time `json:"effective_from,omitempty"`
	EffectiveTo   *time.Time `json:"effective_to,omitempty"`
}
