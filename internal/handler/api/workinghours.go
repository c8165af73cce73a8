package api

import (
	"errors"
	"net/http"

	reqdto "bookingcore/internal/handler/dto/request"
	"bookingcore/internal/handler/middleware"
	"bookingcore/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WorkingHoursHandler struct {
	workingHoursCommands commands.WorkingHoursCommands
}

func NewWorkingHoursHandler(workingHoursCommands commands.WorkingHoursCommands) *WorkingHoursHandler {
	return &WorkingHoursHandler{
		workingHoursCommands: workingHoursCommands,
	}
}

// @Summary Upsert business working hours
// @Description Replace the authenticated business's default per-day hours
// @Tags working-hours
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpsertWorkingHoursRequest true "Per-day hours"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /dashboard/working-hours [put]
func (h *WorkingHoursHandler) UpsertBusinessHours(c *gin.Context) {
	h.upsert(c, nil)
}

// @Summary Upsert staff working hours
// @Description Replace one staff member's per-day hour overrides
// @Tags working-hours
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param staffId path string true "Staff ID"
// @Param request body reqdto.UpsertWorkingHoursRequest true "Per-day hours"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /dashboard/staff/{staffId}/working-hours [put]
func (h *WorkingHoursHandler) UpsertStaffHours(c *gin.Context) {
	staffID, err := uuid.Parse(c.Param("staffId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid staff ID format",
		})
		return
	}
	h.upsert(c, &staffID)
}

func (h *WorkingHoursHandler) upsert(c *gin.Context, staffID *uuid.UUID) {
	businessID, ok := middleware.GetBusinessID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.UpsertWorkingHoursRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	days, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid day hours",
		})
		return
	}

	err = h.workingHoursCommands.UpsertWorkingHours(c.Request.Context(), businessID, staffID, days)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrStaffNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Staff member not found",
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
