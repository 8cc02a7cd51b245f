package api

import (
	"errors"
	"net/http"

	"tutorlink/internal/domain/user"
	reqdto "tutorlink/internal/handler/dto/request"
	resdto "tutorlink/internal/handler/dto/response"
	"tutorlink/internal/handler/middleware"
	"tutorlink/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

// @Summary Query tutor availability
// @Description List the open slots of a tutor for a given date
// @Tags availability
// @Produce json
// @Param tutorId path string true "Tutor ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /availability/{tutorId}/{date} [get]
func (h *BookingHandler) QueryAvailability(c *gin.Context) {
	tutorID, err := uuid.Parse(c.Param("tutorId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid tutor ID",
		})
		return
	}

	date := c.Param("date")
	slots, err := h.bookingUseCase.QueryAvailability(c.Request.Context(), tutorID, date)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date, expected YYYY-MM-DD",
			})
		case errors.Is(err, usecase.ErrTutorNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Tutor not found",
			})
		case errors.Is(err, usecase.ErrStorageUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Service temporarily unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.NewAvailabilityResponse(tutorID, date, slots))
}

// @Summary Create booking
// @Description Book a tutor slot for the authenticated student
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams(userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	view, err := h.bookingUseCase.CreateBooking(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date, expected YYYY-MM-DD",
			})
		case errors.Is(err, usecase.ErrInvalidSlot):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Time is not a bookable slot",
			})
		case errors.Is(err, usecase.ErrInvalidBooking):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid booking request",
			})
		case errors.Is(err, usecase.ErrTutorNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Tutor not found",
			})
		case errors.Is(err, usecase.ErrDuplicateBooking):
			c.JSON(http.StatusConflict, gin.H{
				"error": "You have already booked this slot",
			})
		case errors.Is(err, usecase.ErrSlotConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot is already booked",
			})
		case errors.Is(err, usecase.ErrStorageUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Service temporarily unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Fetch a single booking visible to the caller
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, role, ok := callerIdentity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID",
		})
		return
	}

	view, err := h.bookingUseCase.GetBooking(c.Request.Context(), userID, role, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, usecase.ErrBookingForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Not allowed to view this booking",
			})
		case errors.Is(err, usecase.ErrStorageUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Service temporarily unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Cancel a booking; cancelling twice is a no-op
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userID, role, ok := callerIdentity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID",
		})
		return
	}

	if err := h.bookingUseCase.CancelBooking(c.Request.Context(), userID, role, bookingID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, usecase.ErrBookingForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Not allowed to cancel this booking",
			})
		case errors.Is(err, usecase.ErrStorageUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Service temporarily unavailable",
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

// @Summary List bookings
// @Description List bookings filtered by student and/or tutor
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param studentId query string false "Student ID"
// @Param tutorId query string false "Tutor ID"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID, role, ok := callerIdentity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var query reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	filter := query.ToFilter()

	// Non-admins only see their own bookings; the unfiltered list is an
	// admin view.
	if role != user.RoleAdmin {
		if filter.IsEmpty() {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Listing all bookings requires admin access",
			})
			return
		}
		ownStudent := filter.StudentID != nil && *filter.StudentID == userID
		ownTutor := filter.TutorID != nil && *filter.TutorID == userID
		if !ownStudent && !ownTutor {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "You may only list your own bookings",
			})
			return
		}
	}

	items, err := h.bookingUseCase.ListBookings(c.Request.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrStorageUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Service temporarily unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingListItems(items))
}

func callerIdentity(c *gin.Context) (uuid.UUID, user.Role, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, "", false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		return uuid.Nil, "", false
	}
	return userID, role, true
}
