package model

import "time"

// Appointment priorities.
const (
	PriorityLow    = "Low"
	PriorityNormal = "Normal"
	PriorityHigh   = "High"
	PriorityUrgent = "Urgent"
)

// Appointment is a booked clinic visit. ClientID is optional: walk-in
// bookings carry only the free-text client fields.
type Appointment struct {
	ID            string     `json:"id"`
	ClientID      string     `json:"clientId,omitempty"`
	ClientName    string     `json:"clientName"`
	PetName       string     `json:"petName"`
	PetType       string     `json:"petType"`
	PetAge        string     `json:"petAge"`
	Date          time.Time  `json:"date"`
	Time          string     `json:"time,omitempty"`
	Reason        string     `json:"reason"`
	ContactNumber string     `json:"contactNumber"`
	Notes         string     `json:"notes,omitempty"`
	VetName       string     `json:"vetName"`
	FollowUpDate  *time.Time `json:"followUpDate,omitempty"`
	Priority      string     `json:"priority"`
	Completed     bool       `json:"completed"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
