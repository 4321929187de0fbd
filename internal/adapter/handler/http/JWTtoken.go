package http

import (
	"errors"
	"time"

	"github.com/sm8ta/webike_inventory/internal/core/domain"
	"github.com/sm8ta/webike_inventory/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var _ ports.TokenService = (*JWTTokenService)(nil)

type JWTTokenService struct {
	secretKey []byte
	ttl       time.Duration
	logger    ports.LoggerPort
}

func NewJWTTokenService(secretKey string, ttl time.Duration, logger ports.LoggerPort) *JWTTokenService {
	return &JWTTokenService{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		logger:    logger,
	}
}

func (j *JWTTokenService) CreateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":      uuid.New().String(),
		"user_id": user.ID,
		"role":    string(user.Role),
		"iat":     now.Unix(),
		"exp":     now.Add(j.ttl).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secretKey)
	if err != nil {
		j.logger.Error("Failed to sign jwt", map[string]interface{}{
			"error":   err.Error(),
			"user_id": user.ID,
		})
		return "", err
	}
	return token, nil
}

func (j *JWTTokenService) VerifyToken(token string) (*domain.TokenPayload, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		j.logger.Warn("Failed to parse jwt", map[string]interface{}{
			"error":  err.Error(),
			"method": "VerifyToken",
		})
		return nil, err
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		j.logger.Error("Failed claims from token", map[string]interface{}{
			"method": "VerifyToken",
		})
		return nil, errors.New("failed to verify")
	}

	idStr, ok := claims["id"].(string)
	if !ok {
		return nil, errors.New("invalid id convert")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, errors.New("invalid parse id")
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, errors.New("invalid user_id claims")
	}

	roleClaimed, ok := claims["role"].(string)
	if !ok {
		return nil, errors.New("invalid role")
	}

	role := domain.UserRole(roleClaimed)
	if !role.Valid() {
		j.logger.Warn("Invalid role in token", map[string]interface{}{
			"role":   roleClaimed,
			"method": "VerifyToken",
		})
		return nil, errors.New("invalid role value")
	}

	payload := &domain.TokenPayload{
		ID:     id,
		UserID: userID,
		Role:   role,
	}

	return payload, nil
}
