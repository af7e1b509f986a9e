package model

import "time"

// Supplier is an inventory supplier, unique by Name. SupplyHistory is the
// ordered, de-duplicated list of inventory item ids sourced from this
// supplier; it mirrors InventoryItem.Supplier.
type Supplier struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Company       string    `json:"company"`
	PAN           string    `json:"pan"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	SupplyHistory []string  `json:"supplyHistory"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
