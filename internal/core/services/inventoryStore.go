package services

import (
	"context"
	"sync"

	"github.com/sm8ta/webike_inventory/internal/core/domain"
	"github.com/sm8ta/webike_inventory/internal/core/ports"
)

var _ ports.InventoryStore = (*InventoryStore)(nil)

// InventoryStore owns the bike collection shown to users. It never patches bikes locally:
// every successful mutation is followed by a full reload from the repository.
type InventoryStore struct {
	repo   ports.BikeRepository
	logger ports.LoggerPort

	// refreshMu serializes reloads so concurrent callers cannot interleave writes of bikes.
	refreshMu sync.Mutex

	mu    sync.RWMutex
	state domain.InventoryState

	subMu   sync.Mutex
	subs    map[int]chan domain.InventoryState
	nextSub int
}

// NewInventoryStore loads the inventory once before returning. A failed first load is
// recorded in the state, not returned.
func NewInventoryStore(ctx context.Context, repo ports.BikeRepository, logger ports.LoggerPort) *InventoryStore {
	s := &InventoryStore{
		repo:   repo,
		logger: logger,
		state:  domain.InventoryState{Bikes: []domain.Bike{}},
		subs:   make(map[int]chan domain.InventoryState),
	}

	if err := s.Refresh(ctx); err != nil {
		logger.Warn("Initial inventory load failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return s
}

// State returns a snapshot. The bikes slice is a copy; bikes themselves must be treated as read-only.
func (s *InventoryStore) State() domain.InventoryState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

func (s *InventoryStore) snapshot() domain.InventoryState {
	st := s.state
	st.Bikes = make([]domain.Bike, len(s.state.Bikes))
	copy(st.Bikes, s.state.Bikes)
	return st
}

// Refresh reloads the whole inventory. The reload ignores ctx cancellation and is bounded
// by the gateway timeout instead.
func (s *InventoryStore) Refresh(ctx context.Context) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	s.update(func(st *domain.InventoryState) {
		st.Loading = true
	})

	bikes, err := s.repo.ListBikes(context.WithoutCancel(ctx))
	if err != nil {
		s.update(func(st *domain.InventoryState) {
			st.Bikes = []domain.Bike{}
			st.Loading = false
			st.Error = err.Error()
			st.Version++
		})
		s.logger.Error("Failed to refresh inventory", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}

	if bikes == nil {
		bikes = []domain.Bike{}
	}
	s.update(func(st *domain.InventoryState) {
		st.Bikes = bikes
		st.Loading = false
		st.Error = ""
		st.Version++
	})

	s.logger.Debug("Inventory refreshed", map[string]interface{}{
		"bikes_count": len(bikes),
	})
	return nil
}

// Bike looks the id up in the current snapshot and falls back to the repository for rows
// created since the last reload.
func (s *InventoryStore) Bike(ctx context.Context, bikeID string) (*domain.Bike, error) {
	s.mu.RLock()
	for i := range s.state.Bikes {
		if s.state.Bikes[i].ID == bikeID {
			bike := s.state.Bikes[i]
			s.mu.RUnlock()
			return &bike, nil
		}
	}
	s.mu.RUnlock()

	return s.repo.GetBike(ctx, bikeID)
}

// AddBike returns the row Baserow created, even when the follow-up reload fails.
func (s *InventoryStore) AddBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	return s.mutate(ctx, "create", bike.Model, func(ctx context.Context) (*domain.Bike, error) {
		return s.repo.CreateBike(ctx, bike)
	})
}

func (s *InventoryStore) UpdateBike(ctx context.Context, bike *domain.Bike) error {
	_, err := s.mutate(ctx, "update", bike.ID, func(ctx context.Context) (*domain.Bike, error) {
		return s.repo.UpdateBike(ctx, bike)
	})
	return err
}

func (s *InventoryStore) DeleteBike(ctx context.Context, bikeID string) error {
	_, err := s.mutate(ctx, "delete", bikeID, func(ctx context.Context) (*domain.Bike, error) {
		return nil, s.repo.DeleteBike(ctx, bikeID)
	})
	return err
}

// mutate runs a remote write then reloads. Failures at either step land in state.Error
// and are returned so the caller can react too.
func (s *InventoryStore) mutate(ctx context.Context, op, ref string, write func(context.Context) (*domain.Bike, error)) (*domain.Bike, error) {
	result, err := write(ctx)
	if err != nil {
		s.update(func(st *domain.InventoryState) {
			st.Error = err.Error()
		})
		s.logger.Error("Inventory mutation failed", map[string]interface{}{
			"op":    op,
			"ref":   ref,
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Inventory mutation applied", map[string]interface{}{
		"op":  op,
		"ref": ref,
	})

	// the write is already committed remotely
	return result, s.Refresh(context.WithoutCancel(ctx))
}

func (s *InventoryStore) ClearError() {
	s.update(func(st *domain.InventoryState) {
		st.Error = ""
	})
}

// Subscribe delivers the latest state after every change. A slow reader only misses
// intermediate states. Call the returned func to unsubscribe.
func (s *InventoryStore) Subscribe() (<-chan domain.InventoryState, func()) {
	ch := make(chan domain.InventoryState, 1)

	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.subMu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			close(ch)
			s.subMu.Unlock()
		})
	}
	return ch, cancel
}

func (s *InventoryStore) update(fn func(st *domain.InventoryState)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.state)
	// published under mu so subscribers observe states in order
	s.publish(s.snapshot())
}

func (s *InventoryStore) publish(st domain.InventoryState) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for _, ch := range s.subs {
		select {
		case ch <- st:
		default:
			// drop the stale value and keep the newest
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- st:
			default:
			}
		}
	}
}
