package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"bookingcore/internal/infra"
	"bookingcore/internal/infra/readstore"
	"bookingcore/internal/infra/writerepo"
	"bookingcore/internal/pkg/errs"
	"bookingcore/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted plus explicit row locks: conflict re-checks take FOR UPDATE,
// so serialization failures only come from the exclusion constraint races.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db infra.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- positive after masking the sign bit
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx infra.DBTX

	// Lazy-initialized repositories
	appointmentRepo  shared.AppointmentRepository
	purchaseRepo     shared.PurchaseRepository
	workingHoursRepo shared.WorkingHoursRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() infra.DBTX {
	return t.dbtx
}

func (t *pgTx) Appointments() shared.AppointmentRepository {
	if t.appointmentRepo == nil {
		t.appointmentRepo = writerepo.NewAppointmentRepository()
	}
	return t.appointmentRepo
}

func (t *pgTx) Purchases() shared.PurchaseRepository {
	if t.purchaseRepo == nil {
		t.purchaseRepo = writerepo.NewPurchaseRepository()
	}
	return t.purchaseRepo
}

func (t *pgTx) WorkingHours() shared.WorkingHoursRepository {
	if t.workingHoursRepo == nil {
		t.workingHoursRepo = writerepo.NewWorkingHoursRepository()
	}
	return t.workingHoursRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx infra.DBTX

	// Lazy-initialized readstores
	scheduleStore    *readstore.ScheduleReadStore
	entitlementStore *readstore.EntitlementReadStore
}

func (r *commandReads) schedule() *readstore.ScheduleReadStore {
	if r.scheduleStore == nil {
		r.scheduleStore = readstore.NewScheduleReadStore(r.dbtx)
	}
	return r.scheduleStore
}

func (r *commandReads) entitlement() *readstore.EntitlementReadStore {
	if r.entitlementStore == nil {
		r.entitlementStore = readstore.NewEntitlementReadStore(r.dbtx)
	}
	return r.entitlementStore
}

func (r *commandReads) BusinessByID(ctx context.Context, id uuid.UUID) (*shared.BusinessSnapshot, error) {
	business, err := r.schedule().BusinessScheduleByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.BusinessSnapshot{
		ID:                 business.ID,
		Name:               business.Name,
		StaffModuleEnabled: business.StaffModuleEnabled,
		Settings:           business.Settings,
	}, nil
}

func (r *commandReads) ServiceByID(ctx context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	svc, err := r.schedule().ServiceByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.ServiceSnapshot{
		ID:          svc.ID,
		BusinessID:  svc.BusinessID,
		Name:        svc.Name,
		DurationMin: svc.DurationMin,
		PriceCents:  svc.PriceCents,
		IsActive:    svc.IsActive,
	}, nil
}

func (r *commandReads) StaffByID(ctx context.Context, id uuid.UUID) (*shared.StaffSnapshot, error) {
	staff, err := r.schedule().StaffByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.StaffSnapshot{
		ID:         staff.ID,
		BusinessID: staff.BusinessID,
		Name:       staff.Name,
		IsActive:   staff.IsActive,
	}, nil
}

func (r *commandReads) FirstActiveStaff(ctx context.Context, businessID uuid.UUID) (*shared.StaffSnapshot, error) {
	staff, err := r.schedule().FirstActiveStaff(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return &shared.StaffSnapshot{
		ID:         staff.ID,
		BusinessID: staff.BusinessID,
		Name:       staff.Name,
		IsActive:   staff.IsActive,
	}, nil
}

func (r *commandReads) PackageByID(ctx context.Context, id uuid.UUID) (*shared.PackageSnapshot, error) {
	pkg, err := r.entitlement().PackageByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.PackageSnapshot{
		ID:            pkg.ID,
		BusinessID:    pkg.BusinessID,
		Name:          pkg.Name,
		TotalSessions: pkg.TotalSessions,
		ValidityDays:  pkg.ValidityDays,
		PriceCents:    pkg.PriceCents,
		IsActive:      pkg.IsActive,
	}, nil
}
