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

// LedgerHandler handles balance, history and redemption HTTP endpoints
type LedgerHandler struct {
	ledgerService usecase.LedgerUseCase
	logger        coreport.Logger
}

// NewLedgerHandler creates a new ledger handler instance
func NewLedgerHandler(ledgerService usecase.LedgerUseCase, logger coreport.Logger) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
		logger:        logger,
	}
}

// Balance handles the GET /api/balance endpoint
func (h *LedgerHandler) Balance(c *gin.Context) {
	userID := middleware.AuthenticatedUserID(c)

	balance, err := h.ledgerService.GetBalance(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBalanceResponse(balance))
}

// History handles the GET /api/point-history endpoint, newest first
func (h *LedgerHandler) History(c *gin.Context) {
	userID := middleware.AuthenticatedUserID(c)

	entries, err := h.ledgerService.GetHistory(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dto.HistoryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, dto.NewHistoryEntryResponse(entry))
	}
	c.JSON(http.StatusOK, responses)
}

// Redeem handles the POST /api/redemptions endpoint
func (h *LedgerHandler) Redeem(c *gin.Context) {
	userID := middleware.AuthenticatedUserID(c)

	var req dto.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	member, err := h.ledgerService.RedeemPoints(c.Request.Context(), userID, req.Points, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(member))
}

// AwardBonus handles the POST /api/bonuses endpoint
func (h *LedgerHandler) AwardBonus(c *gin.Context) {
	var req dto.BonusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	member, err := h.ledgerService.AwardBonus(c.Request.Context(), req.UserID, req.Points, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(member))
}
