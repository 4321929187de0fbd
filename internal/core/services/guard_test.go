package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sm8ta/webike_inventory/internal/core/domain"
)

func TestAuthorize(t *testing.T) {
	payload := func(role domain.UserRole) *domain.TokenPayload {
		return &domain.TokenPayload{ID: uuid.New(), UserID: "42", Role: role}
	}

	tests := []struct {
		name    string
		payload *domain.TokenPayload
		allowed []domain.UserRole
		want    GuardDecision
	}{
		{
			name:    "anonymous goes to login",
			payload: nil,
			want:    GuardDecision{Redirect: LoginPath},
		},
		{
			name:    "anonymous on restricted route goes to login",
			payload: nil,
			allowed: []domain.UserRole{domain.RoleAdmin},
			want:    GuardDecision{Redirect: LoginPath},
		},
		{
			name:    "any authenticated user",
			payload: payload(domain.RoleUser),
			want:    GuardDecision{Allowed: true},
		},
		{
			name:    "role in allowed set",
			payload: payload(domain.RoleCollaborator),
			allowed: []domain.UserRole{domain.RoleCollaborator, domain.RoleAdmin},
			want:    GuardDecision{Allowed: true},
		},
		{
			name:    "role outside allowed set",
			payload: payload(domain.RoleUser),
			allowed: []domain.UserRole{domain.RoleAdmin},
			want:    GuardDecision{Redirect: UnauthorizedPath},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Authorize(tt.payload, tt.allowed...))
		})
	}
}
