package request

import (
	"github.com/google/uuid"
)

type ComputeRefundRequest struct {
	PaymentID uuid.UUID `json:"payment_id" binding:"required"`
	Reason    string    `json:"reason" binding:"required,oneof=guest_cancelled host_cancelled service_issue dispute other"`
	Type      string    `json:"type" binding:"omitempty,oneof=standard security_deposit"`
}

type CreateRefundRequest struct {
	PaymentID uuid.UUID `json:"payment_id" binding:"required"`
	Reason    string    `json:"reason" binding:"required,oneof=guest_cancelled host_cancelled service_issue dispute other"`
	Type      string    `json:"type" binding:"omitempty,oneof=standard security_deposit"`
}

type TransitionRefundRequest struct {
	Status  string `json:"status" binding:"required,oneof=approved rejected processing completed"`
	Version int    `json:"version" binding:"required,min=1"`
}
