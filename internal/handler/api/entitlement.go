package api

import (
	"errors"
	"net/http"

	"bookingcore/internal/domain/entitlement"
	reqdto "bookingcore/internal/handler/dto/request"
	resdto "bookingcore/internal/handler/dto/response"
	"bookingcore/internal/handler/middleware"
	"bookingcore/internal/usecase/commands"
	"bookingcore/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EntitlementHandler struct {
	entitlementCommands commands.EntitlementCommands
	entitlementQueries  queries.EntitlementQueries
}

func NewEntitlementHandler(entitlementCommands commands.EntitlementCommands, entitlementQueries queries.EntitlementQueries) *EntitlementHandler {
	return &EntitlementHandler{
		entitlementCommands: entitlementCommands,
		entitlementQueries:  entitlementQueries,
	}
}

// @Summary Reserve package
// @Description Create a pending, unpaid package purchase for a customer
// @Tags packages
// @Accept json
// @Produce json
// @Param request body reqdto.ReservePackageRequest true "Reservation request"
// @Success 201 {object} resdto.ReservePackageResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /packages/reserve [post]
func (h *EntitlementHandler) ReservePackage(c *gin.Context) {
	var req reqdto.ReservePackageRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.entitlementCommands.ReservePackage(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBusinessNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Business not found",
			})
		case errors.Is(err, commands.ErrPackageTemplateNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Package not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservePackageResult(result))
}

// @Summary Activate purchase
// @Description Mark a reserved purchase as paid and start its validity window
// @Tags packages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Purchase ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /dashboard/purchases/{id}/activate [post]
func (h *EntitlementHandler) ActivatePurchase(c *gin.Context) {
	businessID, ok := middleware.GetBusinessID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	purchaseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid purchase ID format",
		})
		return
	}

	err = h.entitlementCommands.ActivatePurchase(c.Request.Context(), businessID, purchaseID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPurchaseNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Package purchase not found",
			})
		case errors.Is(err, entitlement.ErrNotPending):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Package purchase is not pending",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List packages
// @Description List a business's active package templates
// @Tags packages
// @Produce json
// @Param businessId path string true "Business ID"
// @Success 200 {array} resdto.PackageResponse
// @Failure 400 {object} map[string]string
// @Router /businesses/{businessId}/packages [get]
func (h *EntitlementHandler) GetPackages(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("businessId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid business ID format",
		})
		return
	}

	views, err := h.entitlementQueries.Packages(c.Request.Context(), businessID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp, err := resdto.FromPackageViews(views)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List customer purchases
// @Description List a customer's package purchases with remaining balances, newest first
// @Tags packages
// @Produce json
// @Param business_id query string true "Business ID"
// @Param email query string true "Customer email"
// @Success 200 {array} resdto.PurchaseResponse
// @Failure 400 {object} map[string]string
// @Router /customer/purchases [get]
func (h *EntitlementHandler) GetCustomerPurchases(c *gin.Context) {
	var q reqdto.CustomerPurchasesQuery
	if bindErr := c.ShouldBindQuery(&q); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	businessID, email, err := q.ToQuery()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	views, err := h.entitlementQueries.CustomerPurchases(c.Request.Context(), businessID, email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp, err := resdto.FromPurchaseViews(views)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}
