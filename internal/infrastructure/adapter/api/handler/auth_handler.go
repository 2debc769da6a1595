package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	domainerr "github.com/skyair-rewards/loyalty-engine/internal/domain/error"
	authport "github.com/skyair-rewards/loyalty-engine/internal/domain/port/auth"
	coreport "github.com/skyair-rewards/loyalty-engine/internal/domain/port/core"
	"github.com/skyair-rewards/loyalty-engine/internal/domain/port/usecase"
	"github.com/skyair-rewards/loyalty-engine/internal/infrastructure/adapter/api/dto"
	"github.com/skyair-rewards/loyalty-engine/internal/infrastructure/adapter/api/middleware"
)

// AuthHandler handles registration, login and session inspection
type AuthHandler struct {
	userService usecase.UserUseCase
	tokens      authport.TokenService
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(
	userService usecase.UserUseCase,
	tokens authport.TokenService,
	logger coreport.Logger,
) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		tokens:      tokens,
		logger:      logger,
	}
}

// Register handles the POST /api/auth/register endpoint
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	member, err := h.userService.Register(c.Request.Context(), usecase.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		Nationality: req.Nationality,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	token, expiresAt, err := h.tokens.Issue(member.ID)
	if err != nil {
		h.logger.Error("Failed to issue token after registration", map[string]any{
			"user_id": member.ID,
			"error":   err.Error(),
		})
		respondError(c, domainerr.ErrInternalServer)
		return
	}

	c.JSON(http.StatusCreated, dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Format(time.RFC3339),
		User:      dto.NewUserResponse(member),
	})
}

// Login handles the POST /api/auth/login endpoint
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	member, err := h.userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domainerr.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(err),
				Message: "Invalid email or password",
			})
			return
		}
		respondError(c, err)
		return
	}

	token, expiresAt, err := h.tokens.Issue(member.ID)
	if err != nil {
		h.logger.Error("Failed to issue token", map[string]any{
			"user_id": member.ID,
			"error":   err.Error(),
		})
		respondError(c, domainerr.ErrInternalServer)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Format(time.RFC3339),
		User:      dto.NewUserResponse(member),
	})
}

// CurrentUser handles the GET /api/auth/user endpoint
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	userID := middleware.AuthenticatedUserID(c)

	member, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(member))
}
