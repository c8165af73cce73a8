package request

import (
	"bookingcore/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReservePackageRequest struct {
	BusinessID uuid.UUID       `json:"business_id" binding:"required"`
	PackageID  uuid.UUID       `json:"package_id" binding:"required"`
	Customer   CustomerPayload `json:"customer" binding:"required"`
}

func (r ReservePackageRequest) ToCommand() commands.ReservePackageRequest {
	return commands.ReservePackageRequest{
		BusinessID: r.BusinessID,
		PackageID:  r.PackageID,
		Customer:   r.Customer.toInput(),
	}
}

// business_id rides the query string and is bound as a string for the same
// reason as GetAvailabilityQuery.
type CustomerPurchasesQuery struct {
	BusinessID string `form:"business_id" binding:"required"`
	Email      string `form:"email" binding:"required,email"`
}

func (q CustomerPurchasesQuery) ToQuery() (uuid.UUID, string, error) {
	businessID, err := uuid.Parse(q.BusinessID)
	if err != nil {
		return uuid.Nil, "", ErrInvalidQueryID
	}
	return businessID, q.Email, nil
}
