package writerepo

import (
	"context"

	"bookingcore/internal/domain/entitlement"
	"bookingcore/internal/infra"
	"bookingcore/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PurchaseRepository struct{}

func NewPurchaseRepository() *PurchaseRepository {
	return &PurchaseRepository{}
}

const createPurchaseSQL = `
INSERT INTO package_purchases (
	id, business_id, package_id, customer_id,
	total_sessions, used_sessions, remaining_sessions, price_cents,
	status, payment_status, purchased_at, expiry_date, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING id`

func (r *PurchaseRepository) Create(ctx context.Context, tx infra.DBTX, p *entitlement.Purchase) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createPurchaseSQL,
		p.ID(),
		p.BusinessID(),
		p.PackageID(),
		p.CustomerID(),
		p.TotalSessions(),
		p.UsedSessions(),
		p.RemainingSessions(),
		p.PriceCents(),
		string(p.Status()),
		string(p.PaymentStatus()),
		pgconv.TimeToPgtype(p.PurchasedAt()),
		pgconv.TimePtrToPgtype(p.ExpiryDate()),
		pgconv.TimeToPgtype(p.UpdatedAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create package purchase", err)
	}
	return id, nil
}

const purchaseForUpdateSQL = `
SELECT id, business_id, package_id, customer_id,
       total_sessions, used_sessions, remaining_sessions, price_cents,
       status, payment_status, purchased_at, expiry_date, updated_at
FROM package_purchases
WHERE id = $1
FOR UPDATE`

func (r *PurchaseRepository) FindByIDForUpdate(ctx context.Context, tx infra.DBTX, id uuid.UUID) (*entitlement.Purchase, error) {
	var (
		rowID, businessID, packageID, customerID uuid.UUID
		total, used, remaining                   int
		priceCents                               int64
		status, paymentStatus                    string
		purchasedAt, updatedAt                   pgtype.Timestamp
		expiryDate                               pgtype.Timestamp
	)
	err := tx.QueryRow(ctx, purchaseForUpdateSQL, id).Scan(
		&rowID, &businessID, &packageID, &customerID,
		&total, &used, &remaining, &priceCents,
		&status, &paymentStatus, &purchasedAt, &expiryDate, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("package purchase not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find package purchase", err)
	}

	parsedStatus, err := entitlement.ParseStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid purchase status in storage", err)
	}

	purchase, err := entitlement.Reconstruct(
		rowID, businessID, packageID, customerID,
		total, used, remaining, priceCents,
		parsedStatus, entitlement.PaymentStatus(paymentStatus),
		pgconv.TimeFromPgtype(purchasedAt),
		pgconv.TimePtrFromPgtype(expiryDate),
		pgconv.TimeFromPgtype(updatedAt),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("inconsistent purchase counters in storage", err)
	}
	return purchase, nil
}

const savePurchaseSQL = `
UPDATE package_purchases
SET used_sessions = $2,
    remaining_sessions = $3,
    status = $4,
    payment_status = $5,
    expiry_date = $6,
    updated_at = $7
WHERE id = $1`

func (r *PurchaseRepository) Save(ctx context.Context, tx infra.DBTX, p *entitlement.Purchase) error {
	tag, err := tx.Exec(ctx, savePurchaseSQL,
		p.ID(),
		p.UsedSessions(),
		p.RemainingSessions(),
		string(p.Status()),
		string(p.PaymentStatus()),
		pgconv.TimePtrToPgtype(p.ExpiryDate()),
		pgconv.TimeToPgtype(p.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save package purchase", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("package purchase not found", nil, infra.KindNotFound)
	}
	return nil
}

const createUsageSQL = `
INSERT INTO session_usages (id, purchase_id, appointment_id, session_number, used_at)
VALUES ($1, $2, $3, $4, $5)`

func (r *PurchaseRepository) CreateUsage(ctx context.Context, tx infra.DBTX, u *entitlement.Usage) error {
	_, err := tx.Exec(ctx, createUsageSQL,
		u.ID, u.PurchaseID, u.AppointmentID, u.SessionNumber, pgconv.TimeToPgtype(u.UsedAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create session usage", err)
	}
	return nil
}

const usageByAppointmentSQL = `
SELECT id, purchase_id, appointment_id, session_number, used_at
FROM session_usages
WHERE appointment_id = $1`

func (r *PurchaseRepository) UsageByAppointment(ctx context.Context, tx infra.DBTX, appointmentID uuid.UUID) (*entitlement.Usage, error) {
	var (
		u      entitlement.Usage
		usedAt pgtype.Timestamp
	)
	err := tx.QueryRow(ctx, usageByAppointmentSQL, appointmentID).Scan(
		&u.ID, &u.PurchaseID, &u.AppointmentID, &u.SessionNumber, &usedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("session usage not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find session usage", err)
	}
	u.UsedAt = pgconv.TimeFromPgtype(usedAt)
	return &u, nil
}

const deleteUsageSQL = `DELETE FROM session_usages WHERE id = $1`

func (r *PurchaseRepository) DeleteUsage(ctx context.Context, tx infra.DBTX, usageID uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteUsageSQL, usageID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete session usage", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("session usage not found", nil, infra.KindNotFound)
	}
	return nil
}
