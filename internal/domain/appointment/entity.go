package appointment

import (
	"errors"
	"fmt"
	"time"

	"bookingcore/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeSlot     = errors.New("invalid time slot")
	ErrInvalidStatus       = errors.New("invalid appointment status")
	ErrAlreadyCancelled    = errors.New("appointment is already cancelled")
	ErrAlreadyCompleted    = errors.New("appointment is already completed")
	ErrNotPendingConfirmed = errors.New("appointment is not pending or confirmed")
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}

// ServiceSpec carries the booked service's duration so the appointment can
// snapshot it. Later edits to the service never move existing end times.
type ServiceSpec struct {
	ID          uuid.UUID
	DurationMin int
}

// CustomerSpec snapshots the booking customer's contact details onto the
// appointment row, so later edits to the customer record do not rewrite
// history.
type CustomerSpec struct {
	ID    uuid.UUID
	Name  string
	Phone *string
}

type Appointment struct {
	id            uuid.UUID
	businessID    uuid.UUID
	serviceID     uuid.UUID
	staffID       *uuid.UUID
	customerID    uuid.UUID
	customerName  string
	customerPhone *string
	slot          schedule.Interval
	status        Status
	priceCents    int64
	notes         *string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewAppointment(
	businessID uuid.UUID,
	svc ServiceSpec,
	staffID *uuid.UUID,
	customer CustomerSpec,
	start time.Time,
	priceCents int64,
	notes *string,
	now time.Time,
) (*Appointment, error) {
	if svc.DurationMin <= 0 {
		return nil, ErrInvalidTimeSlot
	}
	end := start.Add(time.Duration(svc.DurationMin) * time.Minute)

	return &Appointment{
		id:            uuid.New(),
		businessID:    businessID,
		serviceID:     svc.ID,
		staffID:       staffID,
		customerID:    customer.ID,
		customerName:  customer.Name,
		customerPhone: customer.Phone,
		slot:          schedule.Interval{Start: start, End: end},
		status:        StatusPending,
		priceCents:    priceCents,
		notes:         notes,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func Reconstruct(
	id, businessID, serviceID uuid.UUID,
	staffID *uuid.UUID,
	customer CustomerSpec,
	start, end time.Time,
	status Status,
	priceCents int64,
	notes *string,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:            id,
		businessID:    businessID,
		serviceID:     serviceID,
		staffID:       staffID,
		customerID:    customer.ID,
		customerName:  customer.Name,
		customerPhone: customer.Phone,
		slot:          schedule.Interval{Start: start, End: end},
		status:        status,
		priceCents:    priceCents,
		notes:         notes,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Blocks reports whether the appointment occupies its slot for conflict
// checks. Every status except CANCELLED blocks.
func (a *Appointment) Blocks() bool {
	return a.status != StatusCancelled
}

func (a *Appointment) Confirm(now time.Time) error {
	if a.status != StatusPending {
		return ErrNotPendingConfirmed
	}
	a.status = StatusConfirmed
	a.updatedAt = now
	return nil
}

func (a *Appointment) Cancel(now time.Time) error {
	switch a.status {
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusCompleted:
		return ErrAlreadyCompleted
	}
	a.status = StatusCancelled
	a.updatedAt = now
	return nil
}

func (a *Appointment) Complete(now time.Time) error {
	switch a.status {
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusCompleted:
		return ErrAlreadyCompleted
	}
	a.status = StatusCompleted
	a.updatedAt = now
	return nil
}

func (a *Appointment) ID() uuid.UUID           { return a.id }
func (a *Appointment) BusinessID() uuid.UUID   { return a.businessID }
func (a *Appointment) ServiceID() uuid.UUID    { return a.serviceID }
func (a *Appointment) StaffID() *uuid.UUID     { return a.staffID }
func (a *Appointment) CustomerID() uuid.UUID   { return a.customerID }
func (a *Appointment) CustomerName() string    { return a.customerName }
func (a *Appointment) CustomerPhone() *string  { return a.customerPhone }
func (a *Appointment) Slot() schedule.Interval { return a.slot }
func (a *Appointment) Start() time.Time        { return a.slot.Start }
func (a *Appointment) End() time.Time          { return a.slot.End }
func (a *Appointment) Status() Status          { return a.status }
func (a *Appointment) PriceCents() int64       { return a.priceCents }
func (a *Appointment) Notes() *string          { return a.notes }
func (a *Appointment) CreatedAt() time.Time    { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time    { return a.updatedAt }

const rangeTimeLayout = "2006-01-02 15:04:05"

// ToTsrange renders the slot as a half-open tsrange literal for the
// exclusion constraint column.
func (a *Appointment) ToTsrange() string {
	return fmt.Sprintf("[%s,%s)", a.slot.Start.Format(rangeTimeLayout), a.slot.End.Format(rangeTimeLayout))
}
