package model

import "time"

// Client is a pet owner. Patients holds the ids of the client's patients in
// creation order; it is denormalized state maintained by the patient service
// alongside Patient.Client.
type Client struct {
	ID        string    `json:"id"`
	Owner     string    `json:"owner"`
	Address   string    `json:"address"`
	Contact   string    `json:"contact"`
	Email     string    `json:"email,omitempty"`
	Patients  []string  `json:"patients"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
