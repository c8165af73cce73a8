package readstore

import (
	"context"

	"bookingcore/internal/infra"
	"bookingcore/internal/pkg/pgconv"
	"bookingcore/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type EntitlementReadStore struct {
	db infra.DBTX
}

func NewEntitlementReadStore(db infra.DBTX) *EntitlementReadStore {
	return &EntitlementReadStore{db: db}
}

const packageByIDSQL = `
SELECT id, business_id, name, description, total_sessions, validity_days, price_cents, is_active
FROM packages
WHERE id = $1`

func (s *EntitlementReadStore) PackageByID(ctx context.Context, id uuid.UUID) (*queries.PackageView, error) {
	view, err := scanPackageView(s.db.QueryRow(ctx, packageByIDSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("package not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find package", err)
	}
	return view, nil
}

const activePackagesSQL = `
SELECT id, business_id, name, description, total_sessions, validity_days, price_cents, is_active
FROM packages
WHERE business_id = $1 AND is_active
ORDER BY name`

func (s *EntitlementReadStore) ActivePackagesByBusiness(ctx context.Context, businessID uuid.UUID) ([]*queries.PackageView, error) {
	rows, err := s.db.Query(ctx, activePackagesSQL, businessID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list packages", err)
	}
	defer rows.Close()

	views := make([]*queries.PackageView, 0)
	for rows.Next() {
		view, err := scanPackageView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan package", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate packages", err)
	}
	return views, nil
}

const purchasesByEmailSQL = `
SELECT pp.id, pp.package_id, p.name AS package_name, c.email,
       pp.total_sessions, pp.used_sessions, pp.remaining_sessions,
       pp.status, pp.payment_status, pp.purchased_at, pp.expiry_date
FROM package_purchases pp
JOIN packages p ON p.id = pp.package_id
JOIN customers c ON c.id = pp.customer_id
WHERE pp.business_id = $1 AND lower(c.email) = lower($2)
ORDER BY pp.purchased_at DESC`

func (s *EntitlementReadStore) PurchasesByCustomerEmail(ctx context.Context, businessID uuid.UUID, email string) ([]*queries.PurchaseView, error) {
	rows, err := s.db.Query(ctx, purchasesByEmailSQL, businessID, email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list package purchases", err)
	}
	defer rows.Close()

	views := make([]*queries.PurchaseView, 0)
	for rows.Next() {
		var (
			view        queries.PurchaseView
			purchasedAt pgtype.Timestamp
			expiryDate  pgtype.Timestamp
		)
		err := rows.Scan(
			&view.ID, &view.PackageID, &view.PackageName, &view.CustomerEmail,
			&view.TotalSessions, &view.UsedSessions, &view.RemainingSessions,
			&view.Status, &view.PaymentStatus, &purchasedAt, &expiryDate,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan package purchase", err)
		}
		view.PurchasedAt = pgconv.TimeFromPgtype(purchasedAt)
		view.ExpiryDate = pgconv.TimePtrFromPgtype(expiryDate)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate package purchases", err)
	}
	return views, nil
}

type pgxScanner interface {
	Scan(dest ...any) error
}

func scanPackageView(row pgxScanner) (*queries.PackageView, error) {
	var (
		view        queries.PackageView
		description pgtype.Text
	)
	err := row.Scan(
		&view.ID, &view.BusinessID, &view.Name, &description,
		&view.TotalSessions, &view.ValidityDays, &view.PriceCents, &view.IsActive,
	)
	if err != nil {
		return nil, err
	}
	view.Description = pgconv.StringPtrFromPgtype(description)
	return &view, nil
}
