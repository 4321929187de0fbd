package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-openapi/strfmt"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sm8ta/webike_inventory/internal/adapter/logger"
	"github.com/sm8ta/webike_inventory/internal/core/domain"
	"github.com/sm8ta/webike_inventory/internal/core/services"
)

const testSecret = "test-secret"

type nopMetrics struct{}

func (nopMetrics) RecordMetrics(c *gin.Context, start time.Time) {}
func (nopMetrics) RecordRemoteCall(method string, status int, duration time.Duration) {}
func (nopMetrics) SetInventory(models, units int) {}

// fakeStore is an in-memory ports.InventoryStore.
type fakeStore struct {
	mu        sync.Mutex
	state     domain.InventoryState
	err       error
	added     []*domain.Bike
	updated   []*domain.Bike
	deleted   []string
	refreshes int
	// remote holds rows the repository has but the snapshot does not
	remote map[string]domain.Bike
}

func newFakeStore(bikes ...domain.Bike) *fakeStore {
	if bikes == nil {
		bikes = []domain.Bike{}
	}
	return &fakeStore{state: domain.InventoryState{Bikes: bikes, Version: 1}}
}

func (s *fakeStore) State() domain.InventoryState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	st.Bikes = append([]domain.Bike(nil), s.state.Bikes...)
	return st
}

func (s *fakeStore) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshes++
	if s.err != nil {
		s.state.Error = s.err.Error()
		return s.err
	}
	s.state.Version++
	return nil
}

func (s *fakeStore) Bike(ctx context.Context, bikeID string) (*domain.Bike, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, bike := range s.state.Bikes {
		if bike.ID == bikeID {
			return &bike, nil
		}
	}
	if bike, ok := s.remote[bikeID]; ok {
		return &bike, nil
	}
	return nil, &domain.BikeError{Kind: domain.ErrFetch, Message: "Bike not found", Err: domain.ErrBikeNotFound}
}

func (s *fakeStore) AddBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		s.state.Error = s.err.Error()
		return nil, s.err
	}
	s.added = append(s.added, bike)
	created := *bike
	created.ID = strconv.Itoa(100 + len(s.added))
	s.state.Bikes = append(s.state.Bikes, created)
	s.state.Version++
	return &created, nil
}

func (s *fakeStore) UpdateBike(ctx context.Context, bike *domain.Bike) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		s.state.Error = s.err.Error()
		return s.err
	}
	s.updated = append(s.updated, bike)
	s.state.Version++
	return nil
}

func (s *fakeStore) DeleteBike(ctx context.Context, bikeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		s.state.Error = s.err.Error()
		return s.err
	}
	s.deleted = append(s.deleted, bikeID)
	s.state.Version++
	return nil
}

func (s *fakeStore) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Error = ""
}

func (s *fakeStore) Subscribe() (<-chan domain.InventoryState, func()) {
	ch := make(chan domain.InventoryState)
	return ch, func() {}
}

// memoryAudit is an in-memory ports.AuditRepository.
type memoryAudit struct {
	mu     sync.Mutex
	events []*domain.AuditEvent
}

func (a *memoryAudit) Record(ctx context.Context, event *domain.AuditEvent) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, event)
	return nil
}

func (a *memoryAudit) List(ctx context.Context, limit int) ([]*domain.AuditEvent, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if limit > len(a.events) {
		limit = len(a.events)
	}
	return append([]*domain.AuditEvent(nil), a.events[:limit]...), nil
}

// MockAuthService is a mock implementation of ports.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) Register(ctx context.Context, data *domain.RegisterData) (*domain.User, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type testServer struct {
	engine *gin.Engine
	store  *fakeStore
	audit  *memoryAudit
	auth   *MockAuthService
	tokens *JWTTokenService
}

func newTestServer(t *testing.T, store *fakeStore) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNopLogger()
	tokens := NewJWTTokenService(testSecret, time.Hour, log)
	authService := new(MockAuthService)
	events := &memoryAudit{}
	audit := services.NewAuditService(events, log)

	bikeHandler := NewBikeHandler(store, services.NewBikeFilterer(), audit, log, nopMetrics{}, strfmt.Default, 3)
	authHandler := NewAuthHandler(authService, tokens, log, nopMetrics{})
	auditHandler := NewAuditHandler(audit, log, nopMetrics{})

	engine := gin.New()
	registerRoutes(engine, tokens, bikeHandler, authHandler, auditHandler)

	return &testServer{engine: engine, store: store, audit: events, auth: authService, tokens: tokens}
}

func (s *testServer) token(t *testing.T, role domain.UserRole) string {
	t.Helper()
	token, err := s.tokens.CreateToken(&domain.User{ID: "42", Email: "user@webike.fr", Role: role})
	require.NoError(t, err)
	return token
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func inventoryFixture() []domain.Bike {
	return []domain.Bike{
		{ID: "1", Model: "Defy", Brand: "Giant", Type: domain.Road, Price: 1200, Stock: 3},
		{ID: "2", Model: "Talon", Brand: "Giant", Type: domain.Mountain, Price: 750, Stock: 0},
		{ID: "3", Model: "Domane", Brand: "Trek", Type: domain.Road, Price: 3100, Stock: 8},
	}
}
