package repository

import (
	"context"
	"encoding/json"
	"time"

	"staybilling/internal/infra"
	"staybilling/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

// CreateJob enqueues an outbox row inside the caller's transaction so
// the notification only exists if the surrounding change commits.
func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, kind string, topic string, payload any, runAt time.Time) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return infra.WrapRepoErr("failed to encode notification payload", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO notification_jobs (id, kind, topic, payload, run_at, status)
		 VALUES ($1, $2, $3, $4, $5, 'queued')`,
		uuid.New(), kind, topic, body, runAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}
