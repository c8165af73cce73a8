package shared

import (
	"bookingcore/internal/domain/schedule"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands off the read-side view types.
type BusinessSnapshot struct {
	ID                 uuid.UUID
	Name               string
	StaffModuleEnabled bool
	// Settings is nil when the business has never configured its schedule.
	Settings *schedule.Settings
}

type ServiceSnapshot struct {
	ID          uuid.UUID
	BusinessID  uuid.UUID
	Name        string
	DurationMin int
	PriceCents  int64
	IsActive    bool
}

type StaffSnapshot struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	Name       string
	IsActive   bool
}

type PackageSnapshot struct {
	ID            uuid.UUID
	BusinessID    uuid.UUID
	Name          string
	TotalSessions int
	ValidityDays  int
	PriceCents    int64
	IsActive      bool
}
