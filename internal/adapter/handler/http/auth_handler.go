package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/webike_inventory/internal/core/domain"
	"github.com/sm8ta/webike_inventory/internal/core/ports"
)

type AuthHandler struct {
	authService  ports.AuthService
	tokenService ports.TokenService
	logger       ports.LoggerPort
	metrics      ports.MetricsPort
}

type LoginRequest struct {
	Email    string `json:"email" example:"admin@webike.fr"`
	Password string `json:"password" example:"secret1"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func NewAuthHandler(
	authService ports.AuthService,
	tokenService ports.TokenService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		tokenService: tokenService,
		logger:       logger,
		metrics:      metrics,
	}
}

// @Summary Login
// @Description Checks credentials against the users table and issues a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		newErrorResponse(c, errorStatus(err), errorMessage(err, "Login failed"))
		return
	}

	h.respondWithToken(c, http.StatusOK, user)
}

// @Summary Register
// @Description Creates a user with the USER role and issues a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body domain.RegisterData true "New user"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req domain.RegisterData
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		if details, ok := validationDetails(err); ok {
			newValidationResponse(c, "Invalid registration", details)
			return
		}
		newErrorResponse(c, errorStatus(err), errorMessage(err, "Registration failed"))
		return
	}

	h.respondWithToken(c, http.StatusCreated, user)
}

// @Summary Current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.User
// @Failure 401 {object} errorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	user, err := h.authService.CurrentUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		newErrorResponse(c, errorStatus(err), errorMessage(err, "Failed to get user"))
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, user *domain.User) {
	token, err := h.tokenService.CreateToken(user)
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Failed to create session")
		return
	}
	c.JSON(status, AuthResponse{Token: token, User: user})
}
