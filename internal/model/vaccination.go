package model

import "time"

// Vaccination status values. A record is completed once both the vaccine
// name and the administration date are known; until then it is an upcoming
// appointment.
const (
	VaccinationUpcoming  = "upcoming"
	VaccinationCompleted = "completed"
)

// Vaccination is a vaccination record or upcoming vaccination appointment.
// Patient/owner fields are free text so a booking can be taken before the
// animal is registered; PatientID links to a Patient when one exists.
type Vaccination struct {
	ID               string     `json:"id"`
	PatientName      string     `json:"patientName,omitempty"`
	PatientSpecies   string     `json:"patientSpecies,omitempty"`
	PatientBreed     string     `json:"patientBreed,omitempty"`
	PatientAge       string     `json:"patientAge,omitempty"`
	PatientID        string     `json:"patientId,omitempty"`
	OwnerName        string     `json:"ownerName,omitempty"`
	OwnerPhone       string     `json:"ownerPhone,omitempty"`
	VaccineName      string     `json:"vaccineName,omitempty"`
	DateAdministered *time.Time `json:"dateAdministered,omitempty"`
	NextDueDate      *time.Time `json:"nextDueDate,omitempty"`
	BatchNumber      string     `json:"batchNumber,omitempty"`
	Manufacturer     string     `json:"manufacturer,omitempty"`
	Notes            string     `json:"notes,omitempty"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// DeriveStatus computes the status from the fields present.
func (v *Vaccination) DeriveStatus() string {
	if v.VaccineName != "" && v.DateAdministered != nil {
		return VaccinationCompleted
	}
	return VaccinationUpcoming
}
