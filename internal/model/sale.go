package model

import "time"

// Payment methods accepted on a sale.
const (
	PaymentCash      = "cash"
	PaymentCard      = "card"
	PaymentInsurance = "insurance"
	PaymentOnline    = "online"
)

// SaleItem is one line of a sale.
type SaleItem struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  float64 `json:"quantity"`
	CostPrice float64 `json:"costPrice"`
}

// Sale is a point-of-sale transaction.
type Sale struct {
	ID            string     `json:"id"`
	Date          time.Time  `json:"date"`
	ClientName    string     `json:"clientName"`
	ClientPhone   string     `json:"clientPhone"`
	Items         []SaleItem `json:"items"`
	PaymentMethod string     `json:"paymentMethod"`
	TaxRate       float64    `json:"taxRate"`
	Discount      float64    `json:"discount"`
	Subtotal      float64    `json:"subtotal"`
	Tax           float64    `json:"tax"`
	TotalAmount   float64    `json:"totalAmount"`
	ServiceCharge float64    `json:"serviceCharge"`
	TotalBill     float64    `json:"totalBill"`
	Notes         string     `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
