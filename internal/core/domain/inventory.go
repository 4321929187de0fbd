package domain

// InventoryState is a snapshot of the inventory store.
type InventoryState struct {
	Bikes   []Bike `json:"bikes"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
	Version uint64 `json:"version"`
}

// BikeFilter holds the raw criteria typed by the user. Zero values mean "no constraint".
type BikeFilter struct {
	Search   string
	Type     BikeType
	MinPrice string
	MaxPrice string
}

func (f BikeFilter) IsEmpty() bool {
	return f.Search == "" && f.Type == "" && f.MinPrice == "" && f.MaxPrice == ""
}

type TypeStats struct {
	Models int `json:"models"`
	Units  int `json:"units"`
}

type StockStats struct {
	TotalModels    int                    `json:"total_models"`
	TotalUnits     int                    `json:"total_units"`
	InventoryValue string                 `json:"inventory_value"`
	AveragePrice   string                 `json:"average_price"`
	InStock        int                    `json:"in_stock"`
	OutOfStock     int                    `json:"out_of_stock"`
	LowStock       int                    `json:"low_stock"`
	ByType         map[BikeType]TypeStats `json:"by_type"`
}
