package api

import (
	"errors"
	"net/http"

	"parkeaze/internal/domain/lot"
	reqdto "parkeaze/internal/handler/dto/request"
	resdto "parkeaze/internal/handler/dto/response"
	"parkeaze/internal/handler/middleware"
	"parkeaze/internal/usecase/commands"
	"parkeaze/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LotHandler struct {
	lotCommands    commands.LotCommands
	lotQueries     queries.LotQueries
	bookingQueries queries.BookingQueries
}

func NewLotHandler(
	lotCommands commands.LotCommands,
	lotQueries queries.LotQueries,
	bookingQueries queries.BookingQueries,
) *LotHandler {
	return &LotHandler{
		lotCommands:    lotCommands,
		lotQueries:     lotQueries,
		bookingQueries: bookingQueries,
	}
}

// @Summary Setup lot location
// @Description First wizard step: create or update the owner's lot location
// @Tags lots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SetupLocationRequest true "Location details"
// @Success 200 {object} resdto.LotResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /lots [post]
func (h *LotHandler) SetupLocation(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		internalError(c)
		return
	}

	var req reqdto.SetupLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	_, err := h.lotCommands.SetupLocation(c.Request.Context(), ownerID, commands.SetupLocationInput{
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		h.mapLotError(c, err)
		return
	}

	h.respondWithLot(c, ownerID)
}

// @Summary Configure pricing
// @Description Second wizard step: allowed vehicle types, hourly rates and staffing
// @Tags lots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ConfigurePricingRequest true "Pricing configuration"
// @Success 200 {object} resdto.LotResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /lots/pricing [put]
func (h *LotHandler) ConfigurePricing(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		internalError(c)
		return
	}

	var req reqdto.ConfigurePricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	if req.RateTwoWheeler == nil && req.RateFourWheeler == nil && req.RateHeavyVehicle == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "At least one vehicle type must be priced",
		})
		return
	}

	err := h.lotCommands.ConfigurePricing(c.Request.Context(), ownerID, commands.ConfigurePricingInput{
		TwoWheeler:   req.RateTwoWheeler,
		FourWheeler:  req.RateFourWheeler,
		HeavyVehicle: req.RateHeavyVehicle,
		Staffed:      req.Staffed,
	})
	if err != nil {
		h.mapLotError(c, err)
		return
	}

	h.respondWithLot(c, ownerID)
}

// @Summary Submit verification documents
// @Description Third wizard step: identity document submission
// @Tags lots
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.SubmitDocumentsRequest true "Documents"
// @Success 200 {object} resdto.LotResponse
// @Failure 400 {object} map[string]string
// @Router /lots/documents [put]
func (h *LotHandler) SubmitDocuments(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		internalError(c)
		return
	}

	var req reqdto.SubmitDocumentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.lotCommands.SubmitDocuments(c.Request.Context(), ownerID, req.AadhaarNumber); err != nil {
		h.mapLotError(c, err)
		return
	}

	h.respondWithLot(c, ownerID)
}

// @Summary Submit bank details
// @Description Final wizard step: payout account, completes verification
// @Tags lots
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.SubmitBankDetailsRequest true "Bank details"
// @Success 200 {object} resdto.LotResponse
// @Failure 400 {object} map[string]string
// @Router /lots/bank-details [put]
func (h *LotHandler) SubmitBankDetails(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		internalError(c)
		return
	}

	var req reqdto.SubmitBankDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.lotCommands.SubmitBankDetails(c.Request.Context(), ownerID, commands.SubmitBankDetailsInput{
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		IFSCCode:      req.IFSCCode,
	})
	if err != nil {
		h.mapLotError(c, err)
		return
	}

	h.respondWithLot(c, ownerID)
}

// @Summary Open or close the lot
// @Description Toggle availability; opening requires completed verification
// @Tags lots
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.SetLotStatusRequest true "Status"
// @Success 200 {object} resdto.LotResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /lots/status [patch]
func (h *LotHandler) SetStatus(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		internalError(c)
		return
	}

	var req reqdto.SetLotStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.lotCommands.SetStatus(c.Request.Context(), ownerID, req.Status); err != nil {
		h.mapLotError(c, err)
		return
	}

	h.respondWithLot(c, ownerID)
}

// @Summary List all lots
// @Description Discovery listing of every registered lot
// @Tags lots
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.LotResponse
// @Router /lots [get]
func (h *LotHandler) ListAll(c *gin.Context) {
	views, err := h.lotQueries.ListAll(c.Request.Context())
	if err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLotViews(views))
}

// @Summary Owner's lot
// @Description The owner's lot with its booking history
// @Tags lots
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.OwnerLotResponse
// @Failure 404 {object} map[string]string
// @Router /lots/mine [get]
func (h *LotHandler) Mine(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		internalError(c)
		return
	}

	view, err := h.lotQueries.GetByOwner(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No lot registered",
		})
		return
	}

	bookings, err := h.bookingQueries.ListByLot(c.Request.Context(), view.ID)
	if err != nil {
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, resdto.OwnerLotResponse{
		Lot:      resdto.FromLotView(view),
		Bookings: resdto.FromBookingListItems(bookings),
	})
}

func (h *LotHandler) respondWithLot(c *gin.Context, ownerID uuid.UUID) {
	view, err := h.lotQueries.GetByOwner(c.Request.Context(), ownerID)
	if err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLotView(view))
}

func (h *LotHandler) mapLotError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Owner role required",
		})
	case errors.Is(err, commands.ErrNoLotForOwner):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No lot registered",
		})
	case errors.Is(err, commands.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "User not found",
		})
	case errors.Is(err, lot.ErrNotVerified):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Lot verification is not completed",
		})
	case errors.Is(err, lot.ErrInvalidRate),
		errors.Is(err, lot.ErrEmptyLotName),
		errors.Is(err, lot.ErrEmptyAddress),
		errors.Is(err, lot.ErrInvalidStatus),
		errors.Is(err, commands.ErrAadhaarRequired),
		errors.Is(err, commands.ErrBankDetailsEmpty):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	default:
		internalError(c)
	}
}

func internalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
	})
}
