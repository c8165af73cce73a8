package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type PackageView struct {
	ID            uuid.UUID `json:"id"`
	BusinessID    uuid.UUID `json:"business_id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description,omitempty"`
	TotalSessions int       `json:"total_sessions"`
	ValidityDays  int       `json:"validity_days"`
	PriceCents    int64     `json:"price_cents"`
	IsActive      bool      `json:"is_active"`
}

type PurchaseView struct {
	ID                uuid.UUID  `json:"id"`
	PackageID         uuid.UUID  `json:"package_id"`
	PackageName       string     `json:"package_name"`
	CustomerEmail     string     `json:"customer_email"`
	TotalSessions     int        `json:"total_sessions"`
	UsedSessions      int        `json:"used_sessions"`
	RemainingSessions int        `json:"remaining_sessions"`
	Status            string     `json:"status"`
	PaymentStatus     string     `json:"payment_status"`
	PurchasedAt       time.Time  `json:"purchased_at"`
	ExpiryDate        *time.Time `json:"expiry_date,omitempty"`
}

type EntitlementReadStore interface {
	ActivePackagesByBusiness(ctx context.Context, businessID uuid.UUID) ([]*PackageView, error)
	PurchasesByCustomerEmail(ctx context.Context, businessID uuid.UUID, email string) ([]*PurchaseView, error)
}

type EntitlementQueries interface {
	// Packages lists a business's active package templates for the public
	// booking UI.
	Packages(ctx context.Context, businessID uuid.UUID) ([]*PackageView, error)
	// CustomerPurchases lists a customer's purchases with their remaining
	// balances, newest first.
	CustomerPurchases(ctx context.Context, businessID uuid.UUID, email string) ([]*PurchaseView, error)
}

type entitlementQueriesImpl struct {
	store EntitlementReadStore
}

func NewEntitlementQueries(store EntitlementReadStore) EntitlementQueries {
	return &entitlementQueriesImpl{store: store}
}

func (q *entitlementQueriesImpl) Packages(ctx context.Context, businessID uuid.UUID) ([]*PackageView, error) {
	return q.store.ActivePackagesByBusiness(ctx, businessID)
}

func (q *entitlementQueriesImpl) CustomerPurchases(ctx context.Context, businessID uuid.UUID, email string) ([]*PurchaseView, error) {
	return q.store.PurchasesByCustomerEmail(ctx, businessID, email)
}
