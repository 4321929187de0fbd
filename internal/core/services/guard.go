package services

import "github.com/sm8ta/webike_inventory/internal/core/domain"

const (
	LoginPath        = "/login"
	UnauthorizedPath = "/unauthorized"
)

type GuardDecision struct {
	Allowed  bool
	Redirect string
}

// Authorize decides whether payload may reach a route restricted to allowed roles.
// No roles means any authenticated user.
func Authorize(payload *domain.TokenPayload, allowed ...domain.UserRole) GuardDecision {
	if payload == nil {
		return GuardDecision{Redirect: LoginPath}
	}
	if len(allowed) == 0 {
		return GuardDecision{Allowed: true}
	}
	for _, role := range allowed {
		if payload.Role == role {
			return GuardDecision{Allowed: true}
		}
	}
	return GuardDecision{Redirect: UnauthorizedPath}
}
