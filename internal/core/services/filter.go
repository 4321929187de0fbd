package services

import (
	"math"
	"strings"
	"sync"

	"github.com/go-openapi/swag"
	"github.com/sm8ta/webike_inventory/internal/core/domain"
)

// FilterBikes keeps the bikes matching every active criterion, in input order.
func FilterBikes(bikes []domain.Bike, filter domain.BikeFilter) []domain.Bike {
	term := strings.ToLower(filter.Search)
	minPrice, hasMin := parseBound(filter.MinPrice)
	maxPrice, hasMax := parseBound(filter.MaxPrice)

	out := make([]domain.Bike, 0, len(bikes))
	for _, b := range bikes {
		if term != "" &&
			!strings.Contains(strings.ToLower(b.Model), term) &&
			!strings.Contains(strings.ToLower(b.Brand), term) &&
			!strings.Contains(strings.ToLower(b.Description), term) {
			continue
		}
		if filter.Type != "" && b.Type != filter.Type {
			continue
		}
		if hasMin && b.Price < minPrice {
			continue
		}
		if hasMax && b.Price > maxPrice {
			continue
		}
		out = append(out, b)
	}
	return out
}

// parseBound treats empty and unparsable input as "no bound".
func parseBound(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := swag.ConvertFloat64(raw)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// BikeFilterer remembers the last result so repeated reads of an unchanged inventory
// with the same criteria skip the scan.
type BikeFilterer struct {
	mu      sync.Mutex
	valid   bool
	version uint64
	filter  domain.BikeFilter
	result  []domain.Bike
}

func NewBikeFilterer() *BikeFilterer {
	return &BikeFilterer{}
}

// Filter returns the filtered bikes of state. The returned slice is shared, do not modify it.
func (f *BikeFilterer) Filter(state domain.InventoryState, filter domain.BikeFilter) []domain.Bike {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.valid && f.version == state.Version && f.filter == filter {
		return f.result
	}

	f.result = FilterBikes(state.Bikes, filter)
	f.version = state.Version
	f.filter = filter
	f.valid = true
	return f.result
}
