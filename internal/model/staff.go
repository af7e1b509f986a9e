package model

import "time"

// Staff is a clinic employee with login access. UserID is the unique login
// name. PasswordHash is the bcrypt hash of the password; the plaintext is
// never persisted and the hash is excluded from JSON responses.
type Staff struct {
	ID               string    `json:"id"`
	FullName         string    `json:"fullName"`
	Role             string    `json:"role"`
	LicenseNumber    string    `json:"licenseNumber,omitempty"`
	Qualifications   string    `json:"qualifications,omitempty"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email"`
	JoinDate         time.Time `json:"joinDate"`
	Address          string    `json:"address,omitempty"`
	EmergencyContact string    `json:"emergencyContact,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	Active           bool      `json:"active"`
	UserID           string    `json:"userId"`
	PasswordHash     string    `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
