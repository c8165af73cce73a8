package readstore

import (
	"context"

	"bookingcore/internal/infra"
	"bookingcore/internal/usecase/queries"

	"github.com/google/uuid"
)

type CatalogReadStore struct {
	db infra.DBTX
}

func NewCatalogReadStore(db infra.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: db}
}

const activeServicesSQL = `
SELECT id, business_id, name, duration_min, price_cents, is_active
FROM services
WHERE business_id = $1 AND is_active
ORDER BY name`

func (s *CatalogReadStore) ActiveServicesByBusiness(ctx context.Context, businessID uuid.UUID) ([]*queries.ServiceView, error) {
	rows, err := s.db.Query(ctx, activeServicesSQL, businessID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	views := make([]*queries.ServiceView, 0)
	for rows.Next() {
		var view queries.ServiceView
		if err := rows.Scan(&view.ID, &view.BusinessID, &view.Name, &view.DurationMin, &view.PriceCents, &view.IsActive); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate services", err)
	}
	return views, nil
}

const activeStaffSQL = `
SELECT id, business_id, name, is_active
FROM staff
WHERE business_id = $1 AND is_active
ORDER BY name`

func (s *CatalogReadStore) ActiveStaffByBusiness(ctx context.Context, businessID uuid.UUID) ([]*queries.StaffView, error) {
	rows, err := s.db.Query(ctx, activeStaffSQL, businessID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list staff", err)
	}
	defer rows.Close()

	views := make([]*queries.StaffView, 0)
	for rows.Next() {
		var view queries.StaffView
		if err := rows.Scan(&view.ID, &view.BusinessID, &view.Name, &view.IsActive); err != nil {
			return nil, infra.WrapRepoErr("failed to scan staff", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate staff", err)
	}
	return views, nil
}
