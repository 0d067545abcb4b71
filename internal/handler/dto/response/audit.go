package response

import (
	"encoding/json"
	"time"

	"staybilling/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AuditEntryResponse struct {
	ID               uuid.UUID       `json:"id"`
	PaymentID        *uuid.UUID      `json:"paymentId,omitempty"`
	BookingID        *uuid.UUID      `json:"bookingId,omitempty"`
	Action           string          `json:"action"`
	Severity         string          `json:"severity"`
	Params           json.RawMessage `json:"params,omitempty"`
	ClientBreakdown  json.RawMessage `json:"clientBreakdown,omitempty"`
	ServerBreakdown  json.RawMessage `json:"serverBreakdown,omitempty"`
	Validation       json.RawMessage `json:"validation,omitempty"`
	RateProvenance   json.RawMessage `json:"rateProvenance,omitempty"`
	SecurityContext  json.RawMessage `json:"securityContext,omitempty"`
	Status           string          `json:"status"`
	ProcessedAt      *time.Time      `json:"processedAt,omitempty"`
	ProcessingTimeMs *int64          `json:"processingTimeMs,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
}

func FromAuditEntryViews(views []queries.AuditEntryView) ([]AuditEntryResponse, error) {
	resp := make([]AuditEntryResponse, 0, len(views))
	if err := copier.Copy(&resp, views); err != nil {
		return nil, err
	}
	return resp, nil
}
