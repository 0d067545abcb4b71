package queries

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type AuditEntryView struct {
	ID               uuid.UUID       `json:"id"`
	PaymentID        *uuid.UUID      `json:"payment_id,omitempty"`
	BookingID        *uuid.UUID      `json:"booking_id,omitempty"`
	Action           string          `json:"action"`
	Severity         string          `json:"severity"`
	Params           json.RawMessage `json:"params,omitempty"`
	ClientBreakdown  json.RawMessage `json:"client_breakdown,omitempty"`
	ServerBreakdown  json.RawMessage `json:"server_breakdown,omitempty"`
	Validation       json.RawMessage `json:"validation,omitempty"`
	RateProvenance   json.RawMessage `json:"rate_provenance,omitempty"`
	SecurityContext  json.RawMessage `json:"security_context,omitempty"`
	Status           string          `json:"status"`
	ProcessedAt      *time.Time      `json:"processed_at,omitempty"`
	ProcessingTimeMs *int64          `json:"processing_time_ms,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

type PaymentView struct {
	ID           uuid.UUID       `json:"id"`
	BookingID    uuid.UUID       `json:"booking_id"`
	AmountCents  int64           `json:"amount_cents"`
	Breakdown    json.RawMessage `json:"breakdown"`
	PayoutStatus string          `json:"payout_status"`
	RefundFlag   string          `json:"refund_flag"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
