package request

import (
	"strings"
	"time"

	"bookingcore/internal/pkg/errs"
	"bookingcore/internal/pkg/patch"
	"bookingcore/internal/pkg/ptr"
	"bookingcore/internal/usecase/commands"
	"bookingcore/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidDate    = errs.New("date must be YYYY-MM-DD")
	ErrInvalidTime    = errs.New("start_time must be HH:MM")
	ErrInvalidQueryID = errs.New("ids must be valid UUIDs")
)

// Dates and times arrive as naive business-local values and stay naive all the
// way down. time.UTC is only an anchor for arithmetic.
const dateLayout = "2006-01-02"

// Query-string ids are bound as strings; gin's form binding cannot fill a
// uuid.UUID, so ToQuery parses them.
type GetAvailabilityQuery struct {
	BusinessID string `form:"business_id" binding:"required"`
	ServiceID  string `form:"service_id" binding:"required"`
	Date       string `form:"date" binding:"required"`
	StaffID    string `form:"staff_id"`
}

func (q GetAvailabilityQuery) ToQuery() (queries.AvailabilityRequest, error) {
	businessID, err := uuid.Parse(q.BusinessID)
	if err != nil {
		return queries.AvailabilityRequest{}, ErrInvalidQueryID
	}
	serviceID, err := uuid.Parse(q.ServiceID)
	if err != nil {
		return queries.AvailabilityRequest{}, ErrInvalidQueryID
	}
	var staffID *uuid.UUID
	if q.StaffID != "" {
		id, err := uuid.Parse(q.StaffID)
		if err != nil {
			return queries.AvailabilityRequest{}, ErrInvalidQueryID
		}
		staffID = &id
	}
	date, err := time.ParseInLocation(dateLayout, q.Date, time.UTC)
	if err != nil {
		return queries.AvailabilityRequest{}, ErrInvalidDate
	}
	return queries.AvailabilityRequest{
		BusinessID: businessID,
		ServiceID:  serviceID,
		Date:       date,
		StaffID:    staffID,
	}, nil
}

type CustomerPayload struct {
	Name  string  `json:"name" binding:"required"`
	Email string  `json:"email" binding:"required,email"`
	Phone *string `json:"phone,omitempty"`
}

func (c CustomerPayload) toInput() commands.CustomerInput {
	in := commands.CustomerInput{
		Name:  strings.TrimSpace(c.Name),
		Email: strings.TrimSpace(c.Email),
	}
	if trimmed := strings.TrimSpace(patch.Coalesce(c.Phone, "")); trimmed != "" {
		in.Phone = ptr.To(trimmed)
	}
	return in
}

type CreateAppointmentRequest struct {
	BusinessID        uuid.UUID       `json:"business_id" binding:"required"`
	ServiceID         uuid.UUID       `json:"service_id" binding:"required"`
	StaffID           *uuid.UUID      `json:"staff_id,omitempty"`
	Date              string          `json:"date" binding:"required"`
	StartTime         string          `json:"start_time" binding:"required"`
	Customer          CustomerPayload `json:"customer" binding:"required"`
	Notes             *string         `json:"notes,omitempty"`
	PackagePurchaseID *uuid.UUID      `json:"package_purchase_id,omitempty"`
}

func (r CreateAppointmentRequest) ToCommand() (commands.CreateAppointmentRequest, error) {
	if _, err := time.ParseInLocation(dateLayout, r.Date, time.UTC); err != nil {
		return commands.CreateAppointmentRequest{}, ErrInvalidDate
	}
	start, err := time.ParseInLocation(dateLayout+" 15:04", r.Date+" "+r.StartTime, time.UTC)
	if err != nil {
		return commands.CreateAppointmentRequest{}, ErrInvalidTime
	}

	var notes *string
	if trimmed := strings.TrimSpace(patch.Coalesce(r.Notes, "")); trimmed != "" {
		notes = ptr.To(trimmed)
	}

	return commands.CreateAppointmentRequest{
		BusinessID:        r.BusinessID,
		ServiceID:         r.ServiceID,
		StaffID:           r.StaffID,
		Start:             start,
		Customer:          r.Customer.toInput(),
		Notes:             notes,
		PackagePurchaseID: r.PackagePurchaseID,
	}, nil
}
