package entitlement

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotActive           = errors.New("package purchase is not active")
	ErrNoSessionsRemaining = errors.New("no sessions remaining")
	ErrExpired             = errors.New("package purchase has expired")
	ErrNotPending          = errors.New("package purchase is not pending")
	ErrNotRestorable       = errors.New("no used sessions to restore")
	ErrInvalidSessions     = errors.New("session counters are inconsistent")
	ErrInvalidStatus       = errors.New("invalid purchase status")
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusExpired   Status = "EXPIRED"
	StatusCancelled Status = "CANCELLED"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusActive, StatusCompleted, StatusExpired, StatusCancelled:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
)

// PackageSpec is the template a purchase is cut from. Totals and validity are
// snapshotted onto the purchase at reservation time.
type PackageSpec struct {
	ID            uuid.UUID
	TotalSessions int
	ValidityDays  int
	PriceCents    int64
}

// Usage is one debit of a purchase, tied to the appointment that consumed it.
// SessionNumber counts from 1 in consumption order.
type Usage struct {
	ID            uuid.UUID
	PurchaseID    uuid.UUID
	AppointmentID uuid.UUID
	SessionNumber int
	UsedAt        time.Time
}

type Purchase struct {
	id            uuid.UUID
	businessID    uuid.UUID
	packageID     uuid.UUID
	customerID    uuid.UUID
	totalSessions int
	usedSessions  int
	remaining     int
	priceCents    int64
	status        Status
	paymentStatus PaymentStatus
	purchasedAt   time.Time
	expiryDate    *time.Time
	updatedAt     time.Time
}

// NewPurchase reserves a package for a customer. The purchase starts PENDING
// and unpaid; the expiry clock does not start until activation.
func NewPurchase(businessID uuid.UUID, pkg PackageSpec, customerID uuid.UUID, now time.Time) (*Purchase, error) {
	if pkg.TotalSessions <= 0 {
		return nil, ErrInvalidSessions
	}
	return &Purchase{
		id:            uuid.New(),
		businessID:    businessID,
		packageID:     pkg.ID,
		customerID:    customerID,
		totalSessions: pkg.TotalSessions,
		usedSessions:  0,
		remaining:     pkg.TotalSessions,
		priceCents:    pkg.PriceCents,
		status:        StatusPending,
		paymentStatus: PaymentPending,
		purchasedAt:   now,
		expiryDate:    nil,
		updatedAt:     now,
	}, nil
}

func Reconstruct(
	id, businessID, packageID, customerID uuid.UUID,
	totalSessions, usedSessions, remaining int,
	priceCents int64,
	status Status,
	paymentStatus PaymentStatus,
	purchasedAt time.Time,
	expiryDate *time.Time,
	updatedAt time.Time,
) (*Purchase, error) {
	if remaining != totalSessions-usedSessions || remaining < 0 {
		return nil, ErrInvalidSessions
	}
	return &Purchase{
		id:            id,
		businessID:    businessID,
		packageID:     packageID,
		customerID:    customerID,
		totalSessions: totalSessions,
		usedSessions:  usedSessions,
		remaining:     remaining,
		priceCents:    priceCents,
		status:        status,
		paymentStatus: paymentStatus,
		purchasedAt:   purchasedAt,
		expiryDate:    expiryDate,
		updatedAt:     updatedAt,
	}, nil
}

// Activate marks a reserved purchase as paid and starts its expiry clock at
// now plus the package's validity period.
func (p *Purchase) Activate(now time.Time, validityDays int) error {
	if p.status != StatusPending {
		return ErrNotPending
	}
	p.status = StatusActive
	p.paymentStatus = PaymentPaid
	expiry := now.AddDate(0, 0, validityDays)
	p.expiryDate = &expiry
	p.updatedAt = now
	return nil
}

// CheckUsable validates the purchase for a debit. Checks run in a fixed
// order: status first, then remaining sessions, then expiry. When the expiry
// check fails the purchase transitions to EXPIRED in memory; the caller must
// persist that transition even though the debit itself is refused.
func (p *Purchase) CheckUsable(now time.Time) error {
	if p.status != StatusActive {
		return ErrNotActive
	}
	if p.remaining <= 0 {
		return ErrNoSessionsRemaining
	}
	if p.expiryDate != nil && p.expiryDate.Before(now) {
		p.status = StatusExpired
		p.updatedAt = now
		return ErrExpired
	}
	return nil
}

// Consume debits one session for the given appointment. The returned usage
// carries the post-increment session number, so the first debit is session 1.
// When the last session is used the purchase completes.
func (p *Purchase) Consume(appointmentID uuid.UUID, now time.Time) (*Usage, error) {
	if err := p.CheckUsable(now); err != nil {
		return nil, err
	}

	p.usedSessions++
	p.remaining--
	if p.remaining == 0 {
		p.status = StatusCompleted
	}
	p.updatedAt = now

	return &Usage{
		ID:            uuid.New(),
		PurchaseID:    p.id,
		AppointmentID: appointmentID,
		SessionNumber: p.usedSessions,
		UsedAt:        now,
	}, nil
}

// Restore credits one session back after its appointment is cancelled. A
// completed purchase reopens to ACTIVE.
func (p *Purchase) Restore(now time.Time) error {
	if p.usedSessions <= 0 {
		return ErrNotRestorable
	}
	p.usedSessions--
	p.remaining++
	if p.status == StatusCompleted {
		p.status = StatusActive
	}
	p.updatedAt = now
	return nil
}

func (p *Purchase) ID() uuid.UUID                { return p.id }
func (p *Purchase) BusinessID() uuid.UUID        { return p.businessID }
func (p *Purchase) PackageID() uuid.UUID         { return p.packageID }
func (p *Purchase) CustomerID() uuid.UUID        { return p.customerID }
func (p *Purchase) TotalSessions() int           { return p.totalSessions }
func (p *Purchase) UsedSessions() int            { return p.usedSessions }
func (p *Purchase) RemainingSessions() int       { return p.remaining }
func (p *Purchase) PriceCents() int64            { return p.priceCents }
func (p *Purchase) Status() Status               { return p.status }
func (p *Purchase) PaymentStatus() PaymentStatus { return p.paymentStatus }
func (p *Purchase) PurchasedAt() time.Time       { return p.purchasedAt }
func (p *Purchase) ExpiryDate() *time.Time       { return p.expiryDate }
func (p *Purchase) UpdatedAt() time.Time         { return p.updatedAt }
