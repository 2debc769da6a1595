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

// ProfileHandler handles member profile HTTP endpoints
type ProfileHandler struct {
	userService usecase.UserUseCase
	logger      coreport.Logger
}

// NewProfileHandler creates a new profile handler instance
func NewProfileHandler(userService usecase.UserUseCase, logger coreport.Logger) *ProfileHandler {
	return &ProfileHandler{
		userService: userService,
		logger:      logger,
	}
}

// Update handles the PATCH /api/profile endpoint
func (h *ProfileHandler) Update(c *gin.Context) {
	userID := middleware.AuthenticatedUserID(c)

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	member, err := h.userService.UpdateProfile(c.Request.Context(), userID, usecase.ProfileUpdate{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		Nationality: req.Nationality,
		Phone:       req.Phone,
		Address:     req.Address,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(member))
}
