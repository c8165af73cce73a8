package queries

import (
	"context"

	"bookingcore/internal/infra"

	"github.com/google/uuid"
)

type CatalogView struct {
	BusinessID         uuid.UUID      `json:"business_id"`
	BusinessName       string         `json:"business_name"`
	StaffModuleEnabled bool           `json:"staff_module_enabled"`
	Services           []*ServiceView `json:"services"`
	Staff              []*StaffView   `json:"staff,omitempty"`
}

type CatalogReadStore interface {
	ActiveServicesByBusiness(ctx context.Context, businessID uuid.UUID) ([]*ServiceView, error)
	ActiveStaffByBusiness(ctx context.Context, businessID uuid.UUID) ([]*StaffView, error)
}

type CatalogQueries interface {
	// Catalog returns the public booking page data: active services, plus
	// active staff when the business runs the staff module.
	Catalog(ctx context.Context, businessID uuid.UUID) (*CatalogView, error)
}

type catalogQueriesImpl struct {
	availability AvailabilityReadStore
	store        CatalogReadStore
}

func NewCatalogQueries(availability AvailabilityReadStore, store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{availability: availability, store: store}
}

func (q *catalogQueriesImpl) Catalog(ctx context.Context, businessID uuid.UUID) (*CatalogView, error) {
	business, err := q.availability.BusinessScheduleByID(ctx, businessID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}

	services, err := q.store.ActiveServicesByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	view := &CatalogView{
		BusinessID:         business.ID,
		BusinessName:       business.Name,
		StaffModuleEnabled: business.StaffModuleEnabled,
		Services:           services,
	}

	if business.StaffModuleEnabled {
		staff, err := q.store.ActiveStaffByBusiness(ctx, businessID)
		if err != nil {
			return nil, err
		}
		view.Staff = staff
	}

	return view, nil
}
