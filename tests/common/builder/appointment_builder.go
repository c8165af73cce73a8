//go:build unit || e2e

package builder

import (
	"time"

	domappt "bookingcore/internal/domain/appointment"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ID           uuid.UUID
	BusinessID   uuid.UUID
	ServiceID    uuid.UUID
	StaffID      *uuid.UUID
	CustomerID   uuid.UUID
	CustomerName string
	Phone        *string
	Start        time.Time
	End          time.Time
	Status       domappt.Status
	PriceCents   int64
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	base := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	return &AppointmentBuilder{
		ID:           uuid.New(),
		BusinessID:   uuid.New(),
		ServiceID:    uuid.New(),
		StaffID:      nil,
		CustomerID:   uuid.New(),
		CustomerName: "Jordan Lee",
		Phone:        nil,
		Start:        base.Add(24 * time.Hour),
		End:          base.Add(24*time.Hour + 30*time.Minute),
		Status:       domappt.StatusPending,
		PriceCents:   4500,
		Notes:        nil,
		CreatedAt:    base,
		UpdatedAt:    base,
	}
}

func (b *AppointmentBuilder) WithStatus(s domappt.Status) *AppointmentBuilder {
	b.Status = s
	return b
}

func (b *AppointmentBuilder) WithSlot(start, end time.Time) *AppointmentBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *AppointmentBuilder) WithStaff(id uuid.UUID) *AppointmentBuilder {
	b.StaffID = &id
	return b
}

func (b *AppointmentBuilder) WithNotes(notes string) *AppointmentBuilder {
	b.Notes = &notes
	return b
}

func (b *AppointmentBuilder) Build() *domappt.Appointment {
	return domappt.Reconstruct(
		b.ID, b.BusinessID, b.ServiceID,
		b.StaffID,
		domappt.CustomerSpec{ID: b.CustomerID, Name: b.CustomerName, Phone: b.Phone},
		b.Start, b.End,
		b.Status, b.PriceCents, b.Notes,
		b.CreatedAt, b.UpdatedAt,
	)
}
