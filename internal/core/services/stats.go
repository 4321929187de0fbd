package services

import (
	"github.com/shopspring/decimal"
	"github.com/sm8ta/webike_inventory/internal/core/domain"
)

// Uncategorized groups bikes without a type in the per-type breakdown.
const Uncategorized domain.BikeType = "UNCATEGORIZED"

func ComputeStats(bikes []domain.Bike, lowStockThreshold int) domain.StockStats {
	stats := domain.StockStats{
		TotalModels: len(bikes),
		ByType:      make(map[domain.BikeType]domain.TypeStats),
	}

	value := decimal.Zero
	priceSum := decimal.Zero
	for _, b := range bikes {
		price := decimal.NewFromFloat(b.Price)
		priceSum = priceSum.Add(price)
		value = value.Add(price.Mul(decimal.NewFromInt(int64(b.Stock))))

		stats.TotalUnits += b.Stock
		switch {
		case b.Stock == 0:
			stats.OutOfStock++
		case b.Stock <= lowStockThreshold:
			stats.InStock++
			stats.LowStock++
		default:
			stats.InStock++
		}

		key := b.Type
		if key == "" {
			key = Uncategorized
		}
		ts := stats.ByType[key]
		ts.Models++
		ts.Units += b.Stock
		stats.ByType[key] = ts
	}

	stats.InventoryValue = value.StringFixed(2)
	if len(bikes) > 0 {
		stats.AveragePrice = priceSum.Div(decimal.NewFromInt(int64(len(bikes)))).StringFixed(2)
	} else {
		stats.AveragePrice = decimal.Zero.StringFixed(2)
	}
	return stats
}
