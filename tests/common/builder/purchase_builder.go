//go:build unit || e2e

package builder

import (
	"testing"
	"time"

	"bookingcore/internal/domain/entitlement"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type PurchaseBuilder struct {
	ID            uuid.UUID
	BusinessID    uuid.UUID
	PackageID     uuid.UUID
	CustomerID    uuid.UUID
	TotalSessions int
	UsedSessions  int
	PriceCents    int64
	Status        entitlement.Status
	PaymentStatus entitlement.PaymentStatus
	PurchasedAt   time.Time
	ExpiryDate    *time.Time
}

func NewPurchaseBuilder() *PurchaseBuilder {
	base := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	expiry := base.AddDate(0, 0, 365)
	return &PurchaseBuilder{
		ID:            uuid.New(),
		BusinessID:    uuid.New(),
		PackageID:     uuid.New(),
		CustomerID:    uuid.New(),
		TotalSessions: 10,
		UsedSessions:  2,
		PriceCents:    50000,
		Status:        entitlement.StatusActive,
		PaymentStatus: entitlement.PaymentPaid,
		PurchasedAt:   base,
		ExpiryDate:    &expiry,
	}
}

func (b *PurchaseBuilder) WithStatus(s entitlement.Status) *PurchaseBuilder {
	b.Status = s
	return b
}

func (b *PurchaseBuilder) WithSessions(total, used int) *PurchaseBuilder {
	b.TotalSessions = total
	b.UsedSessions = used
	return b
}

func (b *PurchaseBuilder) WithExpiry(t time.Time) *PurchaseBuilder {
	b.ExpiryDate = &t
	return b
}

func (b *PurchaseBuilder) WithoutExpiry() *PurchaseBuilder {
	b.ExpiryDate = nil
	return b
}

func (b *PurchaseBuilder) Build(t *testing.T) *entitlement.Purchase {
	t.Helper()
	p, err := entitlement.Reconstruct(
		b.ID, b.BusinessID, b.PackageID, b.CustomerID,
		b.TotalSessions, b.UsedSessions, b.TotalSessions-b.UsedSessions,
		b.PriceCents,
		b.Status, b.PaymentStatus,
		b.PurchasedAt, b.ExpiryDate, b.PurchasedAt,
	)
	require.NoError(t, err)
	return p
}
