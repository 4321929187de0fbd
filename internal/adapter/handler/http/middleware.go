package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/webike_inventory/internal/core/domain"
	"github.com/sm8ta/webike_inventory/internal/core/ports"
	"github.com/sm8ta/webike_inventory/internal/core/services"
)

const (
	authorizationHeaderKey  = "Authorization"
	authorizationTypeBearer = "bearer"
	authorizationPayloadKey = "authorization_payload"
)

// AuthMiddleware verifies the bearer token and stores its payload in the context.
func AuthMiddleware(tokenService ports.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		fields := strings.Fields(c.GetHeader(authorizationHeaderKey))
		if len(fields) != 2 || strings.ToLower(fields[0]) != authorizationTypeBearer {
			redirect(c, nil)
			return
		}

		payload, err := tokenService.VerifyToken(fields[1])
		if err != nil {
			redirect(c, nil)
			return
		}

		c.Set(authorizationPayloadKey, payload)
		c.Next()
	}
}

// RequireRoles lets through users whose role is in roles. Must run after AuthMiddleware.
func RequireRoles(roles ...domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, _ := getAuthPayload(c, authorizationPayloadKey)
		if !redirect(c, payload, roles...) {
			return
		}
		c.Next()
	}
}

// redirect aborts the request when the guard refuses it and reports whether it may continue.
func redirect(c *gin.Context, payload *domain.TokenPayload, roles ...domain.UserRole) bool {
	decision := services.Authorize(payload, roles...)
	if decision.Allowed {
		return true
	}

	if decision.Redirect == services.LoginPath {
		newRedirectResponse(c, http.StatusUnauthorized, "Unauthorized", decision.Redirect)
	} else {
		newRedirectResponse(c, http.StatusForbidden, "Access denied", decision.Redirect)
	}
	return false
}

func getAuthPayload(c *gin.Context, key string) (*domain.TokenPayload, bool) {
	value, exists := c.Get(key)
	if !exists {
		return nil, false
	}
	payload, ok := value.(*domain.TokenPayload)
	if !ok || payload == nil {
		return nil, false
	}
	return payload, true
}

func currentUserID(c *gin.Context) string {
	payload, ok := getAuthPayload(c, authorizationPayloadKey)
	if !ok {
		return ""
	}
	return payload.UserID
}
