package response

import (
	"time"

	"bookingcore/internal/usecase/commands"
	"bookingcore/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AvailabilityResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

type CreateAppointmentResponse struct {
	AppointmentID     uuid.UUID `json:"appointmentId"`
	Status            string    `json:"status"`
	RemainingSessions *int      `json:"remainingSessions,omitempty"`
}

func FromCreateAppointmentResult(r *commands.CreateAppointmentResult) *CreateAppointmentResponse {
	return &CreateAppointmentResponse{
		AppointmentID:     r.AppointmentID,
		Status:            string(r.Status),
		RemainingSessions: r.RemainingSessions,
	}
}

type AppointmentResponse struct {
	ID            uuid.UUID  `json:"id"`
	ServiceID     uuid.UUID  `json:"serviceId"`
	ServiceName   string     `json:"serviceName"`
	StaffID       *uuid.UUID `json:"staffId,omitempty"`
	StaffName     *string    `json:"staffName,omitempty"`
	CustomerName  string     `json:"customerName"`
	CustomerPhone *string    `json:"customerPhone,omitempty"`
	StartTime     time.Time  `json:"startTime"`
	EndTime       time.Time  `json:"endTime"`
	Status        string     `json:"status"`
	PriceCents    int64      `json:"priceCents"`
	Notes         *string    `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func FromAppointmentView(v *queries.AppointmentView) (*AppointmentResponse, error) {
	var resp AppointmentResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromAppointmentViews(views []*queries.AppointmentView) ([]*AppointmentResponse, error) {
	out := make([]*AppointmentResponse, 0, len(views))
	for _, v := range views {
		resp, err := FromAppointmentView(v)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

type RestoreSessionResponse struct {
	PurchaseID        uuid.UUID `json:"purchaseId"`
	RemainingSessions int       `json:"remainingSessions"`
}

func FromRestoreSessionResult(r *commands.RestoreSessionResult) *RestoreSessionResponse {
	return &RestoreSessionResponse{
		PurchaseID:        r.PurchaseID,
		RemainingSessions: r.RemainingSessions,
	}
}
