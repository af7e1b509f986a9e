package model

import "time"

// DefaultReorderThreshold is applied when an item is created without one.
const DefaultReorderThreshold = 10

// InventoryItem is a stock item. Supplier always holds exactly one supplier
// id; moving an item between suppliers also moves its id between the
// suppliers' SupplyHistory lists.
type InventoryItem struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Type         string     `json:"type"`
	UnitName     string     `json:"unitName"`
	Location     string     `json:"location,omitempty"`
	Quantity     float64    `json:"quantity"`
	Price        float64    `json:"price"`
	CostPrice    float64    `json:"costPrice"`
	SellingPrice float64    `json:"sellingPrice"`
	Manufacturer string     `json:"manufacturer,omitempty"`
	Supplier     string     `json:"supplier"`
	BatchNumber  string     `json:"batchNumber,omitempty"`
	ExpiryDate   *time.Time `json:"expiryDate,omitempty"`
	Threshold    float64    `json:"threshold"`
	Description  string     `json:"description,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
