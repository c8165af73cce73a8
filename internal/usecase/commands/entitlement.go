package commands

import (
	"context"

	"bookingcore/internal/domain/entitlement"
	"bookingcore/internal/infra"
	"bookingcore/internal/pkg/clock"
	"bookingcore/internal/pkg/errs"
	"bookingcore/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPackageTemplateNotFound = errs.New("package not found")
	ErrPurchaseNotFound        = errs.New("package purchase not found")
)

type ReservePackageRequest struct {
	BusinessID uuid.UUID
	PackageID  uuid.UUID
	Customer   CustomerInput
}

type ReservePackageResult struct {
	PurchaseID    uuid.UUID
	Status        entitlement.Status
	TotalSessions int
}

type EntitlementCommands interface {
	ReservePackage(ctx context.Context, req ReservePackageRequest) (*ReservePackageResult, error)
	ActivatePurchase(ctx context.Context, businessID, purchaseID uuid.UUID) error
}

type entitlementUseCaseImpl struct {
	uow      shared.UnitOfWork
	identity IdentityResolver
	clock    clock.Clock
}

func NewEntitlementUseCase(uow shared.UnitOfWork, identity IdentityResolver, clk clock.Clock) EntitlementCommands {
	return &entitlementUseCaseImpl{uow: uow, identity: identity, clock: clk}
}

// ReservePackage creates a PENDING, unpaid purchase. Session totals and price
// are snapshotted from the template; the expiry clock starts at activation,
// not here.
func (uc *entitlementUseCaseImpl) ReservePackage(ctx context.Context, req ReservePackageRequest) (*ReservePackageResult, error) {
	reads := uc.uow.CommandReads()

	business, err := reads.BusinessByID(ctx, req.BusinessID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}

	pkg, err := reads.PackageByID(ctx, req.PackageID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPackageTemplateNotFound
		}
		return nil, err
	}
	if pkg.BusinessID != business.ID || !pkg.IsActive {
		return nil, ErrPackageTemplateNotFound
	}

	customer, err := uc.identity.ResolveOrCreate(ctx, business.ID, req.Customer)
	if err != nil {
		return nil, err
	}

	purchase, err := entitlement.NewPurchase(
		business.ID,
		entitlement.PackageSpec{
			ID:            pkg.ID,
			TotalSessions: pkg.TotalSessions,
			ValidityDays:  pkg.ValidityDays,
			PriceCents:    pkg.PriceCents,
		},
		customer.ID,
		uc.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, txErr := tx.Purchases().Create(ctx, tx.DB(), purchase)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	return &ReservePackageResult{
		PurchaseID:    purchase.ID(),
		Status:        purchase.Status(),
		TotalSessions: purchase.TotalSessions(),
	}, nil
}

// ActivatePurchase marks a reserved purchase as paid and starts its expiry
// window from the package's validity period.
func (uc *entitlementUseCaseImpl) ActivatePurchase(ctx context.Context, businessID, purchaseID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		purchase, txErr := tx.Purchases().FindByIDForUpdate(ctx, tx.DB(), purchaseID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return ErrPurchaseNotFound
			}
			return txErr
		}
		if purchase.BusinessID() != businessID {
			return ErrPurchaseNotFound
		}

		pkg, txErr := tx.Reads().PackageByID(ctx, purchase.PackageID())
		if txErr != nil {
			return txErr
		}

		if txErr = purchase.Activate(uc.clock.Now(), pkg.ValidityDays); txErr != nil {
			return txErr
		}
		return tx.Purchases().Save(ctx, tx.DB(), purchase)
	})
}
