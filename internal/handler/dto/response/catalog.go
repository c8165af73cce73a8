package response

import (
	"bookingcore/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	DurationMin int       `json:"durationMin"`
	PriceCents  int64     `json:"priceCents"`
}

type StaffResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type CatalogResponse struct {
	BusinessID         uuid.UUID          `json:"businessId"`
	BusinessName       string             `json:"businessName"`
	StaffModuleEnabled bool               `json:"staffModuleEnabled"`
	Services           []*ServiceResponse `json:"services"`
	Staff              []*StaffResponse   `json:"staff,omitempty"`
}

func FromCatalogView(v *queries.CatalogView) *CatalogResponse {
	services := make([]*ServiceResponse, 0, len(v.Services))
	for _, s := range v.Services {
		services = append(services, &ServiceResponse{
			ID:          s.ID,
			Name:        s.Name,
			DurationMin: s.DurationMin,
			PriceCents:  s.PriceCents,
		})
	}

	resp := &CatalogResponse{
		BusinessID:         v.BusinessID,
		BusinessName:       v.BusinessName,
		StaffModuleEnabled: v.StaffModuleEnabled,
		Services:           services,
	}

	for _, s := range v.Staff {
		resp.Staff = append(resp.Staff, &StaffResponse{ID: s.ID, Name: s.Name})
	}
	return resp
}
