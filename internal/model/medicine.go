package model

import "time"

// Medicine is a pharmacy catalogue entry, unique by Name. Writes to a
// medicine are mirrored into inventory (type "Medicine") by the service.
type Medicine struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	UnitName     string    `json:"unitName"`
	Unit         float64   `json:"unit"`
	CostPrice    float64   `json:"costPrice"`
	SellingPrice float64   `json:"sellingPrice"`
	ExpiryDate   time.Time `json:"expiryDate"`
	Supplier     string    `json:"supplier"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
