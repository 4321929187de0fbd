package ports

import (
	"context"

	"github.com/sm8ta/webike_inventory/internal/core/domain"
)

type TokenService interface {
	CreateToken(user *domain.User) (string, error)
	VerifyToken(token string) (*domain.TokenPayload, error)
}

type UserRepository interface {
	FindByCredentials(ctx context.Context, email, password string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	CreateUser(ctx context.Context, data *domain.RegisterData, role domain.UserRole) (*domain.User, error)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Register(ctx context.Context, data *domain.RegisterData) (*domain.User, error)
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}
