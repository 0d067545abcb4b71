package commands

import (
	"context"
	"log/slog"
	"time"

	"staybilling/internal/domain/audit"
	"staybilling/internal/domain/coupon"
	"staybilling/internal/domain/pricing"
	"staybilling/internal/domain/rate"
	reqdto "staybilling/internal/handler/dto/request"
	"staybilling/internal/infra"
	"staybilling/internal/pkg/clock"
	"staybilling/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrCouponNotFound   = errs.New("coupon not found")
	ErrInvalidCoupon    = errs.New("invalid coupon")
	ErrDomainValidation = errs.New("domain validation error")
)

type AppliedCoupon struct {
	ID       uuid.UUID
	Code     string
	Discount pricing.Money
}

type QuoteResult struct {
	Breakdown pricing.Breakdown
	Rate      rate.Provenance
	Coupon    *AppliedCoupon
}

type PricingCommands interface {
	Quote(ctx context.Context, req reqdto.QuoteRequest, userID uuid.UUID, sec audit.SecurityContext) (*QuoteResult, error)
}

type pricingUseCaseImpl struct {
	engine       *pricing.Engine
	rateResolver *RateResolver
	couponRepo   CouponRepository
	auditRepo    AuditRepository
	db           *pgxpool.Pool
	clock        clock.Clock
}

func NewPricingUseCase(
	engine *pricing.Engine,
	rateResolver *RateResolver,
	couponRepo CouponRepository,
	auditRepo AuditRepository,
	db *pgxpool.Pool,
	clock clock.Clock,
) PricingCommands {
	return &pricingUseCaseImpl{
		engine:       engine,
		rateResolver: rateResolver,
		couponRepo:   couponRepo,
		auditRepo:    auditRepo,
		db:           db,
		clock:        clock,
	}
}

func (p *pricingUseCaseImpl) Quote(
	ctx context.Context,
	req reqdto.QuoteRequest,
	userID uuid.UUID,
	sec audit.SecurityContext,
) (*QuoteResult, error) {
	start := p.clock.Now()
	params := req.Params.ToDomain()
	prov := p.rateResolver.Resolve(ctx)

	breakdown, applied, err := p.computeWithCoupon(ctx, params, prov, req.GetCouponCode(), userID)
	if err != nil {
		return nil, err
	}

	p.recordQuote(ctx, params, breakdown, prov, sec, start)

	return &QuoteResult{
		Breakdown: breakdown,
		Rate:      prov,
		Coupon:    applied,
	}, nil
}

// computeWithCoupon runs the engine, and when a coupon applies, runs it
// a second time with the discount folded into the params. The second
// pass is a full recomputation: the discount shifts every downstream
// figure, so patching the first breakdown would desynchronize them.
func (p *pricingUseCaseImpl) computeWithCoupon(
	ctx context.Context,
	params pricing.Params,
	prov rate.Provenance,
	couponCode *string,
	userID uuid.UUID,
) (pricing.Breakdown, *AppliedCoupon, error) {
	breakdown, err := p.engine.Calculate(params, prov.Rate)
	if err != nil {
		return pricing.Breakdown{}, nil, errs.Mark(err, ErrDomainValidation)
	}
	if couponCode == nil {
		return breakdown, nil, nil
	}

	couponEntity, err := p.resolveCoupon(ctx, *couponCode, userID)
	if err != nil {
		return pricing.Breakdown{}, nil, err
	}

	discount := couponEntity.DiscountFor(breakdown.HostSubtotal)
	params.Discount = discount

	breakdown, err = p.engine.Calculate(params, prov.Rate)
	if err != nil {
		return pricing.Breakdown{}, nil, errs.Mark(err, ErrDomainValidation)
	}
	return breakdown, &AppliedCoupon{
		ID:       couponEntity.ID(),
		Code:     couponEntity.Code(),
		Discount: discount,
	}, nil
}

func (p *pricingUseCaseImpl) resolveCoupon(ctx context.Context, code string, userID uuid.UUID) (*coupon.Coupon, error) {
	snap, err := p.couponRepo.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, errs.Mark(err, ErrCouponNotFound)
	}

	couponEntity, err := couponFromSnapshot(snap)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCoupon)
	}
	if err := couponEntity.ValidateUsage(p.clock.Now(), userID); err != nil {
		return nil, errs.Mark(err, ErrInvalidCoupon)
	}
	return couponEntity, nil
}

// recordQuote appends the pricing_calculated entry. Quotes are served
// even when the audit write fails; the failure is only logged.
func (p *pricingUseCaseImpl) recordQuote(
	ctx context.Context,
	params pricing.Params,
	breakdown pricing.Breakdown,
	prov rate.Provenance,
	sec audit.SecurityContext,
	start time.Time,
) {
	entry := audit.NewEntry(audit.ActionPricingCalculated, audit.SeverityInfo)
	entry.Params = &params
	entry.ServerBreakdown = &breakdown
	entry.RateProvenance = prov
	entry.Security = sec

	if err := p.auditRepo.Append(ctx, p.db, entry); err != nil {
		slog.Warn("failed to record pricing audit entry", "error", err)
		return
	}
	elapsed := p.clock.Now().Sub(start).Milliseconds()
	if err := p.auditRepo.MarkProcessed(ctx, p.db, entry.ID, audit.ProcessingCompleted, elapsed); err != nil {
		slog.Warn("failed to close pricing audit entry", "error", err)
	}
}

func couponFromSnapshot(snap *CouponSnapshot) (*coupon.Coupon, error) {
	var maxDiscount *pricing.Money
	if snap.MaxDiscountCents != nil {
		m := pricing.NewMoney(*snap.MaxDiscountCents)
		maxDiscount = &m
	}
	return coupon.NewCoupon(
		snap.ID,
		snap.Code,
		coupon.DiscountKind(snap.Kind),
		snap.Amount,
		maxDiscount,
		snap.UsageLimit,
		snap.UsedCount,
		snap.UsedBy,
		snap.Active,
		snap.ValidFrom,
		snap.ValidTo,
	)
}
