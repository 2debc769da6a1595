package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerr "github.com/skyair-rewards/loyalty-engine/internal/domain/error"
	coreport "github.com/skyair-rewards/loyalty-engine/internal/domain/port/core"
	"github.com/skyair-rewards/loyalty-engine/internal/domain/port/usecase"
	"github.com/skyair-rewards/loyalty-engine/internal/infrastructure/adapter/api/dto"
	"github.com/skyair-rewards/loyalty-engine/internal/infrastructure/adapter/api/middleware"
)

// PointRequestHandler handles point request HTTP endpoints
type PointRequestHandler struct {
	ledgerService usecase.LedgerUseCase
	logger        coreport.Logger
}

// NewPointRequestHandler creates a new point request handler instance
func NewPointRequestHandler(ledgerService usecase.LedgerUseCase, logger coreport.Logger) *PointRequestHandler {
	return &PointRequestHandler{
		ledgerService: ledgerService,
		logger:        logger,
	}
}

// Create handles the POST /api/point-requests endpoint
func (h *PointRequestHandler) Create(c *gin.Context) {
	userID := middleware.AuthenticatedUserID(c)

	var req dto.CreatePointRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	request, err := h.ledgerService.SubmitRequest(c.Request.Context(), userID, usecase.SubmitInput{
		FlightNumber:     req.FlightNumber,
		DepartureAirport: req.DepartureAirport,
		ArrivalAirport:   req.ArrivalAirport,
		DepartureDate:    req.DepartureDate,
		AdditionalNotes:  req.AdditionalNotes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewPointRequestResponse(request))
}

// List handles the GET /api/point-requests endpoint, newest first
func (h *PointRequestHandler) List(c *gin.Context) {
	userID := middleware.AuthenticatedUserID(c)

	requests, err := h.ledgerService.GetRequests(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dto.PointRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, dto.NewPointRequestResponse(request))
	}
	c.JSON(http.StatusOK, responses)
}

// GetByID handles the GET /api/point-requests/:id endpoint. Members can
// only see their own requests.
func (h *PointRequestHandler) GetByID(c *gin.Context) {
	userID := middleware.AuthenticatedUserID(c)
	requestID := c.Param("id")

	request, err := h.ledgerService.GetRequestByID(c.Request.Context(), requestID)
	if err != nil {
		respondError(c, err)
		return
	}
	if request.UserID != userID {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrRequestNotFound),
			Message: domainerr.ErrRequestNotFound.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewPointRequestResponse(request))
}

// Resolve handles the POST /api/point-requests/:id/resolve endpoint
func (h *PointRequestHandler) Resolve(c *gin.Context) {
	requestID := c.Param("id")

	var req dto.ResolvePointRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	request, err := h.ledgerService.ResolveRequest(
		c.Request.Context(),
		requestID,
		usecase.Decision(req.Decision),
		req.PointsToAward,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPointRequestResponse(request))
}
