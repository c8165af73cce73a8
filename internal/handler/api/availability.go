package api

import (
	"errors"
	"net/http"

	reqdto "bookingcore/internal/handler/dto/request"
	resdto "bookingcore/internal/handler/dto/response"
	"bookingcore/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
	}
}

// @Summary Get available slots
// @Description List bookable start times for a service on one day. An unconfigured business or a closed day returns an empty list.
// @Tags availability
// @Produce json
// @Param business_id query string true "Business ID"
// @Param service_id query string true "Service ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param staff_id query string false "Staff ID"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	var q reqdto.GetAvailabilityQuery
	if bindErr := c.ShouldBindQuery(&q); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	req, err := q.ToQuery()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	slots, err := h.availabilityQueries.Slots(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBusinessNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Business not found",
			})
		case errors.Is(err, queries.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
			})
		case errors.Is(err, queries.ErrServiceMismatch):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Service does not belong to this business",
			})
		case errors.Is(err, queries.ErrStaffModuleDisabled):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Staff selection is not enabled for this business",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, &resdto.AvailabilityResponse{
		Date:  q.Date,
		Slots: slots,
	})
}
