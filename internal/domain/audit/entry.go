package audit

import (
	"time"

	"staybilling/internal/domain/payment"
	"staybilling/internal/domain/pricing"
	"staybilling/internal/domain/rate"

	"github.com/google/uuid"
)

type Action string

const (
	ActionPricingCalculated Action = "pricing_calculated"
	ActionPaymentCreated    Action = "payment_created"
	ActionValidationFailed  Action = "validation_failed"
	ActionRefundComputed    Action = "refund_computed"
)

type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityCritical Severity = "critical"
)

type ProcessingStatus string

const (
	ProcessingPending   ProcessingStatus = "pending"
	ProcessingCompleted ProcessingStatus = "completed"
	ProcessingRejected  ProcessingStatus = "rejected"
)

// SecurityContext snapshots who triggered a calculation and from where.
type SecurityContext struct {
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	Role      string     `json:"role,omitempty"`
	ClientIP  string     `json:"client_ip,omitempty"`
	RequestID string     `json:"request_id,omitempty"`
}

// Entry is one append-only record of a calculation attempt. Every
// field is write-once; only the terminal Status / ProcessedAt /
// ProcessingTimeMs triple may be updated later.
type Entry struct {
	ID              uuid.UUID
	PaymentID       *uuid.UUID
	BookingID       *uuid.UUID
	Action          Action
	Severity        Severity
	Params          *pricing.Params
	ClientBreakdown *payment.ClientBreakdown
	ServerBreakdown *pricing.Breakdown
	Validation      *payment.ConsistencyResult
	RateProvenance  rate.Provenance
	Security        SecurityContext
	CreatedAt       time.Time

	Status           ProcessingStatus
	ProcessedAt      *time.Time
	ProcessingTimeMs *int64
}

func NewEntry(action Action, severity Severity) *Entry {
	return &Entry{
		ID:       uuid.New(),
		Action:   action,
		Severity: severity,
		Status:   ProcessingPending,
	}
}
