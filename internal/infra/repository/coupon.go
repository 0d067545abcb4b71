package repository

import (
	"context"
	"strings"

	"staybilling/internal/infra"
	"staybilling/internal/infra/db"
	"staybilling/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CouponRepository struct {
	pool *pgxpool.Pool
}

func NewCouponRepository(pool *pgxpool.Pool) *CouponRepository {
	return &CouponRepository{pool: pool}
}

func (r *CouponRepository) FindByCode(ctx context.Context, code string) (*commands.CouponSnapshot, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))

	var snap commands.CouponSnapshot
	err := r.pool.QueryRow(ctx,
		`SELECT id, code, kind, amount, max_discount_cents, usage_limit, used_count,
		        used_by, active, valid_from, valid_to
		 FROM coupons
		 WHERE code = $1`,
		normalized,
	).Scan(
		&snap.ID, &snap.Code, &snap.Kind, &snap.Amount, &snap.MaxDiscountCents,
		&snap.UsageLimit, &snap.UsedCount, &snap.UsedBy, &snap.Active,
		&snap.ValidFrom, &snap.ValidTo,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}
	return &snap, nil
}

// Redeem is the single atomic conditional increment: the usage counter
// and the redeemer list advance together, and only while the limit
// holds and the user has not redeemed before. Concurrent redeemers
// race on this one statement instead of a read-then-write window.
func (r *CouponRepository) Redeem(ctx context.Context, tx db.DBTX, id, userID uuid.UUID) error {
	tag, err := tx.Exec(ctx,
		`UPDATE coupons
		 SET used_count = used_count + 1,
		     used_by    = array_append(used_by, $2),
		     updated_at = now()
		 WHERE id = $1
		   AND active
		   AND (usage_limit <= 0 OR used_count < usage_limit)
		   AND NOT ($2 = ANY(used_by))`,
		id, userID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to redeem coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not redeemable", nil, infra.KindConflict)
	}
	return nil
}
