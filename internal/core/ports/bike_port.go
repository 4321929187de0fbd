package ports

import (
	"context"

	"github.com/sm8ta/webike_inventory/internal/core/domain"
)

type BikeRepository interface {
	ListBikes(ctx context.Context) ([]domain.Bike, error)
	GetBike(ctx context.Context, bikeID string) (*domain.Bike, error)
	CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error)
	UpdateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error)
	DeleteBike(ctx context.Context, bikeID string) error
}

type InventoryStore interface {
	State() domain.InventoryState
	Refresh(ctx context.Context) error
	Bike(ctx context.Context, bikeID string) (*domain.Bike, error)
	AddBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error)
	UpdateBike(ctx context.Context, bike *domain.Bike) error
	DeleteBike(ctx context.Context, bikeID string) error
	ClearError()
	Subscribe() (<-chan domain.InventoryState, func())
}

type AuditRepository interface {
	Record(ctx context.Context, event *domain.AuditEvent) error
	List(ctx context.Context, limit int) ([]*domain.AuditEvent, error)
}
