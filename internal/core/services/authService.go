package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sm8ta/webike_inventory/internal/core/domain"
	"github.com/sm8ta/webike_inventory/internal/core/ports"
	"github.com/sm8ta/webike_inventory/internal/i18n"
)

var _ ports.AuthService = (*AuthService)(nil)

const userCacheTTL = 15 * time.Minute

// AuthService authenticates against the users table. Credentials are compared by the
// backend as stored; hashing them is out of scope here.
type AuthService struct {
	users    ports.UserRepository
	logger   ports.LoggerPort
	validate *validator.Validate
	cache    ports.CachePort
	tr       *i18n.Translator
}

func NewAuthService(
	users ports.UserRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
	tr *i18n.Translator,
) *AuthService {
	return &AuthService{
		users:    users,
		logger:   logger,
		validate: validate,
		cache:    cache,
		tr:       tr,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	// Baserow ignores empty filter values, an empty credential would match any row
	if email == "" || password == "" {
		return nil, s.authError(domain.ErrInvalidCredentials, i18n.AuthInvalidCredentials)
	}

	user, err := s.users.FindByCredentials(ctx, email, password)
	if err != nil {
		s.logger.Error("Login lookup failed", map[string]interface{}{
			"email": email,
			"error": err.Error(),
		})
		return nil, err
	}
	if user == nil {
		s.logger.Warn("Invalid credentials", map[string]interface{}{
			"email": email,
		})
		return nil, s.authError(domain.ErrInvalidCredentials, i18n.AuthInvalidCredentials)
	}

	s.cacheUser(ctx, user)
	s.logger.Info("User logged in", map[string]interface{}{
		"user_id": user.ID,
		"role":    user.Role,
	})
	return user, nil
}

func (s *AuthService) Register(ctx context.Context, data *domain.RegisterData) (*domain.User, error) {
	if err := s.validate.Struct(data); err != nil {
		s.logger.Error("Registration validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("validation error: %w", err)
	}

	existing, err := s.users.FindByEmail(ctx, data.Email)
	if err != nil {
		s.logger.Error("Registration lookup failed", map[string]interface{}{
			"email": data.Email,
			"error": err.Error(),
		})
		return nil, err
	}
	if existing != nil {
		return nil, s.authError(domain.ErrUserExists, i18n.AuthUserExists)
	}

	user, err := s.users.CreateUser(ctx, data, domain.RoleUser)
	if err != nil {
		s.logger.Error("Failed to create user", map[string]interface{}{
			"email": data.Email,
			"error": err.Error(),
		})
		return nil, err
	}

	s.cacheUser(ctx, user)
	s.logger.Info("User registered", map[string]interface{}{
		"user_id": user.ID,
	})
	return user, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	cacheKey := userCacheKey(userID)
	cached, err := s.cache.Get(ctx, cacheKey)
	if err == nil {
		var user domain.User
		if err := json.Unmarshal(cached, &user); err == nil {
			return &user, nil
		}
		s.evictUser(ctx, userID)
	} else if !errors.Is(err, ports.ErrCacheMiss) {
		s.logger.Warn("User cache read failed", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to get user", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.cacheUser(ctx, user)
	return user, nil
}

// evictUser drops an unreadable cache entry.
func (s *AuthService) evictUser(ctx context.Context, userID string) {
	if err := s.cache.Delete(ctx, userCacheKey(userID)); err != nil {
		s.logger.Warn("Failed to evict cached user", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}

func (s *AuthService) cacheUser(ctx context.Context, user *domain.User) {
	data, err := json.Marshal(user)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, userCacheKey(user.ID), data, userCacheTTL); err != nil {
		s.logger.Warn("Failed to cache user", map[string]interface{}{
			"user_id": user.ID,
			"error":   err.Error(),
		})
	}
}

func (s *AuthService) authError(kind error, key string) error {
	return &domain.AuthError{Kind: kind, Message: s.tr.T(key)}
}

func userCacheKey(userID string) string {
	return fmt.Sprintf("user:%s", userID)
}
