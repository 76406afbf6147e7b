package api

import (
	"errors"
	"net/http"

	"parkeaze/internal/domain/booking"
	"parkeaze/internal/domain/lot"
	reqdto "parkeaze/internal/handler/dto/request"
	resdto "parkeaze/internal/handler/dto/response"
	"parkeaze/internal/handler/middleware"
	"parkeaze/internal/usecase/commands"
	"parkeaze/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Book a parking spot. Timed lots bill immediately for the
// @Description requested duration; staffed lots issue entry and exit tokens.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	seekerID, ok := middleware.GetUserID(c)
	if !ok {
		internalError(c)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.Create(c.Request.Context(), commands.CreateBookingInput{
		LotID:         req.LotID,
		VehicleType:   req.VehicleType,
		VehicleNumber: req.VehicleNumber,
		DurationHours: req.DurationHours,
	}, seekerID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrLotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Lot not found",
			})
		case errors.Is(err, commands.ErrLotNotVerified):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Lot verification is not completed",
			})
		case errors.Is(err, lot.ErrLotClosed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Lot is closed",
			})
		case errors.Is(err, lot.ErrVehicleNotAllowed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Vehicle type is not allowed in this lot",
			})
		case errors.Is(err, lot.ErrRateNotConfigured):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Hourly rate not configured for vehicle type",
			})
		case errors.Is(err, lot.ErrInvalidVehicleType),
			errors.Is(err, booking.ErrEmptyVehicleNumber),
			errors.Is(err, booking.ErrDurationRequired),
			errors.Is(err, booking.ErrNonPositiveDuration):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			internalError(c)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description The seeker's booking history, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListItem
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	seekerID, ok := middleware.GetUserID(c)
	if !ok {
		internalError(c)
		return
	}

	items, err := h.bookingQueries.ListBySeeker(c.Request.Context(), seekerID)
	if err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingListItems(items))
}

// @Summary Get booking
// @Description One booking, visible to its seeker or the lot owner
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		internalError(c)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID",
		})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
		return
	}
	if view.SeekerID != actorID && view.OwnerID != actorID {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Cancel an active booking before entry has been recorded
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		internalError(c)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID",
		})
		return
	}

	view, err := h.bookingCommands.Cancel(c.Request.Context(), id, actorID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound),
			errors.Is(err, commands.ErrNotBookingActor):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, booking.ErrNotActive):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking is not active",
			})
		case errors.Is(err, booking.ErrCancelAfterEntry):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Cannot cancel after entry has been recorded",
			})
		default:
			internalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Redeem entry token
// @Description Record vehicle entry for a staffed booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RedeemCodeRequest true "Entry token"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/entry [post]
func (h *BookingHandler) RedeemEntry(c *gin.Context) {
	var req reqdto.RedeemCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.RedeemEntryCode(c.Request.Context(), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrWrongEntryCode):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Wrong entry token",
			})
		case errors.Is(err, booking.ErrEntryAlreadyRecorded):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Entry time has already been recorded",
			})
		case errors.Is(err, booking.ErrInvalidCode):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			internalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Redeem exit token
// @Description Record vehicle exit, compute the bill and settle the booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RedeemCodeRequest true "Exit token"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/exit [post]
func (h *BookingHandler) RedeemExit(c *gin.Context) {
	var req reqdto.RedeemCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.RedeemExitCode(c.Request.Context(), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrWrongExitCode):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Wrong exit token",
			})
		case errors.Is(err, booking.ErrEntryNotRecorded):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Cannot record exit before entry",
			})
		case errors.Is(err, booking.ErrExitAlreadyRecorded):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Exit time has already been recorded",
			})
		case errors.Is(err, lot.ErrRateNotConfigured):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Hourly rate not configured for vehicle type",
			})
		case errors.Is(err, booking.ErrInvalidCode):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			internalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}
