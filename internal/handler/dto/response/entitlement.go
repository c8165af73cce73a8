package response

import (
	"time"

	"bookingcore/internal/usecase/commands"
	"bookingcore/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservePackageResponse struct {
	PurchaseID    uuid.UUID `json:"purchaseId"`
	Status        string    `json:"status"`
	TotalSessions int       `json:"totalSessions"`
}

func FromReservePackageResult(r *commands.ReservePackageResult) *ReservePackageResponse {
	return &ReservePackageResponse{
		PurchaseID:    r.PurchaseID,
		Status:        string(r.Status),
		TotalSessions: r.TotalSessions,
	}
}

type PackageResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description,omitempty"`
	TotalSessions int       `json:"totalSessions"`
	ValidityDays  int       `json:"validityDays"`
	PriceCents    int64     `json:"priceCents"`
}

func FromPackageViews(views []*queries.PackageView) ([]*PackageResponse, error) {
	out := make([]*PackageResponse, 0, len(views))
	for _, v := range views {
		var resp PackageResponse
		if err := copier.Copy(&resp, v); err != nil {
			return nil, err
		}
		out = append(out, &resp)
	}
	return out, nil
}

type PurchaseResponse struct {
	ID                uuid.UUID  `json:"id"`
	PackageID         uuid.UUID  `json:"packageId"`
	PackageName       string     `json:"packageName"`
	TotalSessions     int        `json:"totalSessions"`
	UsedSessions      int        `json:"usedSessions"`
	RemainingSessions int        `json:"remainingSessions"`
	Status            string     `json:"status"`
	PaymentStatus     string     `json:"paymentStatus"`
	PurchasedAt       time.Time  `json:"purchasedAt"`
	ExpiryDate        *time.Time `json:"expiryDate,omitempty"`
}

func FromPurchaseViews(views []*queries.PurchaseView) ([]*PurchaseResponse, error) {
	out := make([]*PurchaseResponse, 0, len(views))
	for _, v := range views {
		var resp PurchaseResponse
		if err := copier.Copy(&resp, v); err != nil {
			return nil, err
		}
		out = append(out, &resp)
	}
	return out, nil
}
