package model

import "time"

// Species values accepted for a patient.
const (
	SpeciesCanine = "Canine"
	SpeciesFeline = "Feline"
)

// Sex values accepted for a patient.
const (
	SexMale    = "MALE"
	SexFemale  = "FEMALE"
	SexUnknown = "UNKNOWN"
)

// Patient is an animal under care. PetID and RegistrationNumber are natural
// keys, unique across all patients. Client is required. The four history
// slices are back-reference lists of child-record ids kept consistent with
// the child's own patient field by the services that write them.
type Patient struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Species            string     `json:"species"`
	Breed              string     `json:"breed,omitempty"`
	Age                string     `json:"age"`
	Sex                string     `json:"sex,omitempty"`
	PetID              string     `json:"petId"`
	RegistrationNumber string     `json:"registrationNumber"`
	Client             string     `json:"client"`
	LastAppointment    *time.Time `json:"lastAppointment,omitempty"`
	NextAppointment    *time.Time `json:"nextAppointment,omitempty"`
	MedicalHistory     []string   `json:"medicalHistory"`
	VaccinationHistory []string   `json:"vaccinationHistory"`
	BloodReports       []string   `json:"bloodReports"`
	SurgeryHistory     []string   `json:"surgeryHistory"`
	Attachments        []FileRef  `json:"attachments"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}
