package api

import (
	"errors"
	"net/http"
	"time"

	"bookingcore/internal/domain/appointment"
	"bookingcore/internal/domain/entitlement"
	reqdto "bookingcore/internal/handler/dto/request"
	resdto "bookingcore/internal/handler/dto/response"
	"bookingcore/internal/handler/middleware"
	"bookingcore/internal/usecase/commands"
	"bookingcore/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands    commands.BookingCommands
	appointmentQueries queries.AppointmentQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, appointmentQueries queries.AppointmentQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands:    bookingCommands,
		appointmentQueries: appointmentQueries,
	}
}

// @Summary Create appointment
// @Description Book a slot, optionally debiting a package session. The slot is re-checked inside the booking transaction.
// @Tags appointments
// @Accept json
// @Produce json
// @Param request body reqdto.CreateAppointmentRequest true "Booking request"
// @Success 201 {object} resdto.CreateAppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /appointments [post]
func (h *BookingHandler) CreateAppointment(c *gin.Context) {
	var req reqdto.CreateAppointmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	cmd, err := req.ToCommand()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	result, err := h.bookingCommands.CreateAppointment(c.Request.Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBusinessNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Business not found",
			})
		case errors.Is(err, commands.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
			})
		case errors.Is(err, commands.ErrServiceMismatch):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Service does not belong to this business",
			})
		case errors.Is(err, commands.ErrStaffNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Staff member not found",
			})
		case errors.Is(err, commands.ErrStaffModuleDisabled):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Staff selection is not enabled for this business",
			})
		case errors.Is(err, commands.ErrNoStaffAvailable):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "No staff available for booking",
			})
		case errors.Is(err, commands.ErrSlotUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Time slot is no longer available",
			})
		case errors.Is(err, commands.ErrPackageNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Package purchase not found",
			})
		case errors.Is(err, commands.ErrPackageNotOwned):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Package purchase belongs to another customer",
			})
		case errors.Is(err, commands.ErrPackageNotActive):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Package purchase is not active",
			})
		case errors.Is(err, commands.ErrNoSessionsRemaining):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Package has no sessions remaining",
			})
		case errors.Is(err, commands.ErrPackageExpired):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Package purchase has expired",
			})
		case errors.Is(err, appointment.ErrInvalidTimeSlot):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid time slot",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	middleware.CountBookingCreated()
	c.JSON(http.StatusCreated, resdto.FromCreateAppointmentResult(result))
}

// @Summary Cancel appointment
// @Description Cancel an appointment. Sessions consumed from a package are not refunded; use the restore-session endpoint for that.
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /dashboard/appointments/{id}/cancel [post]
func (h *BookingHandler) CancelAppointment(c *gin.Context) {
	businessID, appointmentID, ok := h.scopedAppointmentID(c)
	if !ok {
		return
	}

	err := h.bookingCommands.CancelAppointment(c.Request.Context(), businessID, appointmentID)
	if err != nil {
		h.respondTransitionError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Complete appointment
// @Description Mark an appointment as completed
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /dashboard/appointments/{id}/complete [post]
func (h *BookingHandler) CompleteAppointment(c *gin.Context) {
	businessID, appointmentID, ok := h.scopedAppointmentID(c)
	if !ok {
		return
	}

	err := h.bookingCommands.CompleteAppointment(c.Request.Context(), businessID, appointmentID)
	if err != nil {
		h.respondTransitionError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Restore package session
// @Description Credit the session consumed by an appointment back to its package purchase
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.RestoreSessionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /dashboard/appointments/{id}/restore-session [post]
func (h *BookingHandler) RestoreSession(c *gin.Context) {
	businessID, appointmentID, ok := h.scopedAppointmentID(c)
	if !ok {
		return
	}

	result, err := h.bookingCommands.RestoreSession(c.Request.Context(), businessID, appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUsageNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No session usage for this appointment",
			})
		case errors.Is(err, commands.ErrPackageNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Package purchase not found",
			})
		case errors.Is(err, entitlement.ErrNotRestorable):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "No used sessions to restore",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRestoreSessionResult(result))
}

// @Summary Get appointment
// @Description Get one appointment in the authenticated business
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /dashboard/appointments/{id} [get]
func (h *BookingHandler) GetAppointment(c *gin.Context) {
	businessID, appointmentID, ok := h.scopedAppointmentID(c)
	if !ok {
		return
	}

	view, err := h.appointmentQueries.ByID(c.Request.Context(), businessID, appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Appointment not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp, err := resdto.FromAppointmentView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List day appointments
// @Description List the authenticated business's appointments for one day
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /dashboard/appointments [get]
func (h *BookingHandler) GetDayAppointments(c *gin.Context) {
	businessID, ok := middleware.GetBusinessID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	date, err := time.ParseInLocation("2006-01-02", c.Query("date"), time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "date must be YYYY-MM-DD",
		})
		return
	}

	views, err := h.appointmentQueries.ByDay(c.Request.Context(), businessID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp, err := resdto.FromAppointmentViews(views)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) scopedAppointmentID(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	businessID, ok := middleware.GetBusinessID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return uuid.Nil, uuid.Nil, false
	}

	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment ID format",
		})
		return uuid.Nil, uuid.Nil, false
	}
	return businessID, appointmentID, true
}

func (h *BookingHandler) respondTransitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrAppointmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Appointment not found",
		})
	case errors.Is(err, appointment.ErrAlreadyCancelled):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Appointment is already cancelled",
		})
	case errors.Is(err, appointment.ErrAlreadyCompleted):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Appointment is already completed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
