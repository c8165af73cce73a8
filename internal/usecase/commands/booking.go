package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"bookingcore/internal/domain/appointment"
	"bookingcore/internal/domain/entitlement"
	"bookingcore/internal/infra"
	"bookingcore/internal/pkg/clock"
	"bookingcore/internal/pkg/errs"
	"bookingcore/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBusinessNotFound    = errs.New("business not found")
	ErrServiceNotFound     = errs.New("service not found")
	ErrServiceMismatch     = errs.New("service does not belong to business")
	ErrStaffNotFound       = errs.New("staff not found")
	ErrStaffModuleDisabled = errs.New("staff selection is disabled for this business")
	ErrNoStaffAvailable    = errs.New("no staff available")
	ErrSlotUnavailable     = errs.New("time slot is no longer available")
	ErrAppointmentNotFound = errs.New("appointment not found")
	ErrPackageNotFound     = errs.New("package purchase not found")
	ErrPackageNotOwned     = errs.New("package purchase belongs to another customer")
	ErrPackageNotActive    = errs.New("package purchase is not active")
	ErrNoSessionsRemaining = errs.New("package has no sessions remaining")
	ErrPackageExpired      = errs.New("package purchase has expired")
	ErrUsageNotFound       = errs.New("no session usage for appointment")
)

type CreateAppointmentRequest struct {
	BusinessID        uuid.UUID
	ServiceID         uuid.UUID
	StaffID           *uuid.UUID
	Start             time.Time
	Customer          CustomerInput
	Notes             *string
	PackagePurchaseID *uuid.UUID
}

type CreateAppointmentResult struct {
	AppointmentID     uuid.UUID
	Status            appointment.Status
	RemainingSessions *int
}

type RestoreSessionResult struct {
	PurchaseID        uuid.UUID
	RemainingSessions int
}

type BookingCommands interface {
	CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*CreateAppointmentResult, error)
	CancelAppointment(ctx context.Context, businessID, appointmentID uuid.UUID) error
	CompleteAppointment(ctx context.Context, businessID, appointmentID uuid.UUID) error
	RestoreSession(ctx context.Context, businessID, appointmentID uuid.UUID) (*RestoreSessionResult, error)
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	identity IdentityResolver
	notifier Notifier
	cache    AvailabilityCache
	clock    clock.Clock
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	identity IdentityResolver,
	notifier Notifier,
	cache AvailabilityCache,
	clk clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:      uow,
		identity: identity,
		notifier: notifier,
		cache:    cache,
		clock:    clk,
	}
}

// CreateAppointment is the only writer of appointments. The conflict re-check,
// the insert and the optional session debit run in one transaction: either the
// appointment exists and the session is consumed, or neither happened. An
// earlier availability answer is a hint, never a reservation.
func (uc *bookingUseCaseImpl) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*CreateAppointmentResult, error) {
	reads := uc.uow.CommandReads()

	business, err := reads.BusinessByID(ctx, req.BusinessID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}

	svc, err := reads.ServiceByID(ctx, req.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	if svc.BusinessID != business.ID {
		return nil, ErrServiceMismatch
	}
	if !svc.IsActive {
		return nil, ErrServiceNotFound
	}

	staffID, err := uc.resolveStaff(ctx, reads, business, req.StaffID)
	if err != nil {
		return nil, err
	}

	customer, err := uc.identity.ResolveOrCreate(ctx, business.ID, req.Customer)
	if err != nil {
		return nil, err
	}

	price := svc.PriceCents
	if req.PackagePurchaseID != nil {
		price = 0
	}

	appt, err := appointment.NewAppointment(
		business.ID,
		appointment.ServiceSpec{ID: svc.ID, DurationMin: svc.DurationMin},
		staffID,
		appointment.CustomerSpec{ID: customer.ID, Name: customer.Name, Phone: customer.Phone},
		req.Start,
		price,
		req.Notes,
		uc.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	var (
		remaining        *int
		expiredPurchase  uuid.UUID
		needExpiryUpdate bool
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		conflict, txErr := tx.Appointments().HasBlockingConflict(ctx, tx.DB(), business.ID, staffID, appt.Slot())
		if txErr != nil {
			return txErr
		}
		if conflict {
			return ErrSlotUnavailable
		}

		var purchase *entitlement.Purchase
		if req.PackagePurchaseID != nil {
			purchase, txErr = tx.Purchases().FindByIDForUpdate(ctx, tx.DB(), *req.PackagePurchaseID)
			if txErr != nil {
				if infra.IsKind(txErr, infra.KindNotFound) {
					return ErrPackageNotFound
				}
				return txErr
			}
			if purchase.BusinessID() != business.ID {
				return ErrPackageNotFound
			}
			if purchase.CustomerID() != customer.ID {
				return ErrPackageNotOwned
			}
		}

		if _, txErr = tx.Appointments().Create(ctx, tx.DB(), appt); txErr != nil {
			if infra.IsKind(txErr, infra.KindConflict) {
				return ErrSlotUnavailable
			}
			return txErr
		}

		if purchase != nil {
			usage, cerr := purchase.Consume(appt.ID(), uc.clock.Now())
			if cerr != nil {
				switch {
				case errors.Is(cerr, entitlement.ErrExpired):
					// The EXPIRED transition must survive even though the
					// booking is rolled back. Persisted separately below.
					expiredPurchase = purchase.ID()
					needExpiryUpdate = true
					return ErrPackageExpired
				case errors.Is(cerr, entitlement.ErrNotActive):
					return ErrPackageNotActive
				case errors.Is(cerr, entitlement.ErrNoSessionsRemaining):
					return ErrNoSessionsRemaining
				}
				return cerr
			}
			if txErr = tx.Purchases().Save(ctx, tx.DB(), purchase); txErr != nil {
				return txErr
			}
			if txErr = tx.Purchases().CreateUsage(ctx, tx.DB(), usage); txErr != nil {
				return txErr
			}
			r := purchase.RemainingSessions()
			remaining = &r
		}
		return nil
	})
	if err != nil {
		if needExpiryUpdate {
			uc.persistExpiry(ctx, expiredPurchase)
		}
		return nil, err
	}

	uc.notifier.AppointmentBooked(ctx, BookingNotification{
		AppointmentID: appt.ID(),
		BusinessID:    business.ID,
		CustomerEmail: customer.Email,
		ServiceName:   svc.Name,
		StartTime:     appt.Start(),
	})
	uc.cache.Bump(ctx, business.ID, appt.Start())

	return &CreateAppointmentResult{
		AppointmentID:     appt.ID(),
		Status:            appt.Status(),
		RemainingSessions: remaining,
	}, nil
}

// resolveStaff picks the conflict scope. With the staff module disabled the
// scope is always the whole business; a supplied staff id would silently
// narrow it past existing business-wide appointments, so it is rejected.
func (uc *bookingUseCaseImpl) resolveStaff(ctx context.Context, reads shared.CommandReads, business *shared.BusinessSnapshot, requested *uuid.UUID) (*uuid.UUID, error) {
	if requested != nil {
		if !business.StaffModuleEnabled {
			return nil, ErrStaffModuleDisabled
		}
		staff, err := reads.StaffByID(ctx, *requested)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrStaffNotFound
			}
			return nil, err
		}
		if staff.BusinessID != business.ID || !staff.IsActive {
			return nil, ErrStaffNotFound
		}
		return &staff.ID, nil
	}

	if !business.StaffModuleEnabled {
		return nil, nil
	}

	staff, err := reads.FirstActiveStaff(ctx, business.ID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNoStaffAvailable
		}
		return nil, err
	}
	return &staff.ID, nil
}

// persistExpiry records the EXPIRED transition in its own transaction after
// the failed booking rolled back. The row is re-checked under lock so a
// concurrent writer that already moved the status wins.
func (uc *bookingUseCaseImpl) persistExpiry(ctx context.Context, purchaseID uuid.UUID) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, txErr := tx.Purchases().FindByIDForUpdate(ctx, tx.DB(), purchaseID)
		if txErr != nil {
			return txErr
		}
		if cerr := p.CheckUsable(uc.clock.Now()); !errors.Is(cerr, entitlement.ErrExpired) {
			return nil
		}
		return tx.Purchases().Save(ctx, tx.DB(), p)
	})
	if err != nil {
		slog.Warn("failed to persist package expiry",
			"purchase_id", purchaseID.String(),
			"error", err.Error())
	}
}

func (uc *bookingUseCaseImpl) CancelAppointment(ctx context.Context, businessID, appointmentID uuid.UUID) error {
	var cancelled *appointment.Appointment
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		appt, txErr := tx.Appointments().FindByIDForUpdate(ctx, tx.DB(), appointmentID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return ErrAppointmentNotFound
			}
			return txErr
		}
		if appt.BusinessID() != businessID {
			return ErrAppointmentNotFound
		}
		if txErr = appt.Cancel(uc.clock.Now()); txErr != nil {
			return txErr
		}
		cancelled = appt
		return tx.Appointments().UpdateStatus(ctx, tx.DB(), appt.ID(), appt.Status(), appt.UpdatedAt())
	})
	if err != nil {
		return err
	}

	// The mailer resolves the recipient from the appointment row.
	uc.notifier.AppointmentCancelled(ctx, BookingNotification{
		AppointmentID: cancelled.ID(),
		BusinessID:    businessID,
		StartTime:     cancelled.Start(),
	})
	uc.cache.Bump(ctx, businessID, cancelled.Start())
	return nil
}

func (uc *bookingUseCaseImpl) CompleteAppointment(ctx context.Context, businessID, appointmentID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		appt, txErr := tx.Appointments().FindByIDForUpdate(ctx, tx.DB(), appointmentID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return ErrAppointmentNotFound
			}
			return txErr
		}
		if appt.BusinessID() != businessID {
			return ErrAppointmentNotFound
		}
		if txErr = appt.Complete(uc.clock.Now()); txErr != nil {
			return txErr
		}
		return tx.Appointments().UpdateStatus(ctx, tx.DB(), appt.ID(), appt.Status(), appt.UpdatedAt())
	})
}

// RestoreSession credits a consumed session back to its purchase and removes
// the usage row. Cancellation never does this implicitly; crediting is a
// separate, auditable decision.
func (uc *bookingUseCaseImpl) RestoreSession(ctx context.Context, businessID, appointmentID uuid.UUID) (*RestoreSessionResult, error) {
	var result *RestoreSessionResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		usage, txErr := tx.Purchases().UsageByAppointment(ctx, tx.DB(), appointmentID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return ErrUsageNotFound
			}
			return txErr
		}

		purchase, txErr := tx.Purchases().FindByIDForUpdate(ctx, tx.DB(), usage.PurchaseID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return ErrPackageNotFound
			}
			return txErr
		}
		if purchase.BusinessID() != businessID {
			return ErrUsageNotFound
		}

		if txErr = purchase.Restore(uc.clock.Now()); txErr != nil {
			return txErr
		}
		if txErr = tx.Purchases().Save(ctx, tx.DB(), purchase); txErr != nil {
			return txErr
		}
		if txErr = tx.Purchases().DeleteUsage(ctx, tx.DB(), usage.ID); txErr != nil {
			return txErr
		}

		result = &RestoreSessionResult{
			PurchaseID:        purchase.ID(),
			RemainingSessions: purchase.RemainingSessions(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
