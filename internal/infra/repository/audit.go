package repository

import (
	"context"
	"encoding/json"

	"staybilling/internal/domain/audit"
	"staybilling/internal/infra"
	"staybilling/internal/infra/db"
	"staybilling/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AuditRepository struct {
	pool *pgxpool.Pool
}

func NewAuditRepository(pool *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{pool: pool}
}

// Append inserts a new entry. Entries are append-only: apart from
// MarkProcessed no column is ever updated afterwards.
func (r *AuditRepository) Append(ctx context.Context, tx db.DBTX, e *audit.Entry) error {
	cols, err := encodeEntryPayloads(e)
	if err != nil {
		return err
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO audit_logs (
		    id, payment_id, booking_id, action, severity,
		    params, client_breakdown, server_breakdown, validation,
		    rate_provenance, security_context, status
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING created_at`,
		e.ID, e.PaymentID, e.BookingID, e.Action, e.Severity,
		cols.params, cols.clientBreakdown, cols.serverBreakdown,
		cols.validation, cols.rateProvenance, cols.security, e.Status,
	).Scan(&e.CreatedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to append audit entry", err)
	}
	return nil
}

// MarkProcessed closes out a pending entry. Only the terminal triple
// is touched; a second call on the same entry affects nothing.
func (r *AuditRepository) MarkProcessed(ctx context.Context, tx db.DBTX, id uuid.UUID, status audit.ProcessingStatus, elapsedMs int64) error {
	tag, err := tx.Exec(ctx,
		`UPDATE audit_logs
		 SET status = $2, processed_at = now(), processing_time_ms = $3
		 WHERE id = $1 AND status = 'pending'`,
		id, status, elapsedMs,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark audit entry processed", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("audit entry not found or already processed", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AuditRepository) ListByPayment(ctx context.Context, paymentID uuid.UUID) ([]queries.AuditEntryView, error) {
	rows, err := r.pool.Query(ctx,
		auditSelect+` WHERE payment_id = $1 ORDER BY created_at ASC`,
		paymentID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list audit entries", err)
	}
	return scanEntryViews(rows)
}

func (r *AuditRepository) ListValidationFailures(ctx context.Context, limit int32) ([]queries.AuditEntryView, error) {
	rows, err := r.pool.Query(ctx,
		auditSelect+` WHERE action = 'validation_failed' ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list validation failures", err)
	}
	return scanEntryViews(rows)
}

const auditSelect = `
	SELECT id, payment_id, booking_id, action, severity,
	       params, client_breakdown, server_breakdown, validation,
	       rate_provenance, security_context, status,
	       processed_at, processing_time_ms, created_at
	FROM audit_logs`

func scanEntryViews(rows pgx.Rows) ([]queries.AuditEntryView, error) {
	defer rows.Close()

	var views []queries.AuditEntryView
	for rows.Next() {
		var v queries.AuditEntryView
		err := rows.Scan(
			&v.ID, &v.PaymentID, &v.BookingID, &v.Action, &v.Severity,
			&v.Params, &v.ClientBreakdown, &v.ServerBreakdown, &v.Validation,
			&v.RateProvenance, &v.SecurityContext, &v.Status,
			&v.ProcessedAt, &v.ProcessingTimeMs, &v.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan audit entry", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate audit entries", err)
	}
	return views, nil
}

type entryPayloads struct {
	params          []byte
	clientBreakdown []byte
	serverBreakdown []byte
	validation      []byte
	rateProvenance  []byte
	security        []byte
}

func encodeEntryPayloads(e *audit.Entry) (*entryPayloads, error) {
	var (
		cols entryPayloads
		err  error
	)
	marshalOpt := func(v any) []byte {
		if err != nil || v == nil {
			return nil
		}
		var b []byte
		b, err = json.Marshal(v)
		return b
	}

	if e.Params != nil {
		cols.params = marshalOpt(e.Params)
	}
	if e.ClientBreakdown != nil {
		cols.clientBreakdown = marshalOpt(e.ClientBreakdown)
	}
	if e.ServerBreakdown != nil {
		cols.serverBreakdown = marshalOpt(e.ServerBreakdown)
	}
	if e.Validation != nil {
		cols.validation = marshalOpt(e.Validation)
	}
	cols.rateProvenance = marshalOpt(e.RateProvenance)
	cols.security = marshalOpt(e.Security)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode audit payload", err)
	}
	return &cols, nil
}
