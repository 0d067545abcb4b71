package commands

import (
	"context"
	"log/slog"

	"staybilling/internal/domain/rate"
	reqdto "staybilling/internal/handler/dto/request"
	"staybilling/internal/infra"
	"staybilling/internal/pkg/clock"
	"staybilling/internal/pkg/config"
	"staybilling/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidRate             = errs.New("invalid platform rate")
	ErrNoActiveRate            = errs.New("no active platform rate")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// RateResolver picks the commission rate for a calculation. A missing
// or unreadable rate configuration never blocks a booking: resolution
// degrades to the standing default and flags the provenance so the
// audit trail shows which rate actually applied.
type RateResolver struct {
	repo     RateRepository
	fallback float64
}

func NewRateResolver(repo RateRepository, cfg config.BillingConfig) *RateResolver {
	fallback := cfg.DefaultPlatformRate
	if fallback <= 0 || fallback >= 1 {
		fallback = rate.DefaultPlatformRate
	}
	return &RateResolver{repo: repo, fallback: fallback}
}

func (r *RateResolver) Resolve(ctx context.Context) rate.Provenance {
	rec, err := r.repo.FindCurrent(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("no active platform rate configured, using fallback",
				"fallback_rate", r.fallback)
		} else {
			slog.Warn("platform rate lookup failed, using fallback",
				"fallback_rate", r.fallback, "error", err)
		}
		return rate.Provenance{Rate: r.fallback, Fallback: true}
	}
	return rate.Provenance{
		RecordID: &rec.ID,
		Rate:     rec.Rate,
		Version:  rec.Version,
	}
}

type RateCommands interface {
	ActivateRate(ctx context.Context, req reqdto.ActivateRateRequest) (*rate.Record, error)
	// CurrentRate returns the active record without fallback semantics.
	// Quote resolution tolerates a missing rate; this admin read does not.
	CurrentRate(ctx context.Context) (*rate.Record, error)
}

type rateUseCaseImpl struct {
	rateRepo RateRepository
	clock    clock.Clock
}

func NewRateUseCase(rateRepo RateRepository, clock clock.Clock) RateCommands {
	return &rateUseCaseImpl{rateRepo: rateRepo, clock: clock}
}

func (r *rateUseCaseImpl) ActivateRate(ctx context.Context, req reqdto.ActivateRateRequest) (*rate.Record, error) {
	effectiveFrom := r.clock.Now()
	if req.EffectiveFrom != nil {
		effectiveFrom = *req.EffectiveFrom
	}

	rec, err := rate.NewRecord(uuid.New(), req.Rate, 0, effectiveFrom, req.EffectiveTo)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRate)
	}

	// Version is assigned by the storage layer inside the same atomic
	// statement that swaps the active flag.
	if err := r.rateRepo.Activate(ctx, rec); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rec, nil
}

func (r *rateUseCaseImpl) CurrentRate(ctx context.Context) (*rate.Record, error) {
	rec, err := r.rateRepo.FindCurrent(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrNoActiveRate)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rec, nil
}
