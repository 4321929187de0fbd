package services

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/sm8ta/webike_inventory/internal/core/domain"
	"github.com/sm8ta/webike_inventory/internal/core/ports"
)

// MockBikeRepository is a mock implementation of ports.BikeRepository.
type MockBikeRepository struct {
	mock.Mock
}

func (m *MockBikeRepository) ListBikes(ctx context.Context) ([]domain.Bike, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bike), args.Error(1)
}

func (m *MockBikeRepository) GetBike(ctx context.Context, bikeID string) (*domain.Bike, error) {
	args := m.Called(ctx, bikeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bike), args.Error(1)
}

func (m *MockBikeRepository) CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	args := m.Called(ctx, bike)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bike), args.Error(1)
}

func (m *MockBikeRepository) UpdateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	args := m.Called(ctx, bike)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bike), args.Error(1)
}

func (m *MockBikeRepository) DeleteBike(ctx context.Context, bikeID string) error {
	args := m.Called(ctx, bikeID)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of ports.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, data *domain.RegisterData, role domain.UserRole) (*domain.User, error) {
	args := m.Called(ctx, data, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockAuditRepository is a mock implementation of ports.AuditRepository.
type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Record(ctx context.Context, event *domain.AuditEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockAuditRepository) List(ctx context.Context, limit int) ([]*domain.AuditEvent, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AuditEvent), args.Error(1)
}

// memoryCache is an in-process ports.CachePort for tests.
type memoryCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: make(map[string][]byte)}
}

func (c *memoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.items[key]
	if !ok {
		return nil, ports.ErrCacheMiss
	}
	return v, nil
}

func (c *memoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	return nil
}
