package model

import "time"

// Surgery is a surgical procedure performed on a patient. Duration is in
// minutes.
type Surgery struct {
	ID             string       `json:"id"`
	Patient        string       `json:"patient"`
	SurgeryType    string       `json:"surgeryType"`
	SurgeryDate    time.Time    `json:"surgeryDate"`
	Veterinarian   string       `json:"veterinarian"`
	AnesthesiaType string       `json:"anesthesiaType,omitempty"`
	Duration       int          `json:"duration,omitempty"`
	Complications  string       `json:"complications,omitempty"`
	Notes          string       `json:"notes,omitempty"`
	FollowUpDate   *time.Time   `json:"followUpDate,omitempty"`
	Medications    []Medication `json:"medications,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
