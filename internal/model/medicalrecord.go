package model

import "time"

// Medication is one prescribed medication line on a medical record.
type Medication struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage,omitempty"`
	Quantity  string `json:"quantity"`
	Frequency string `json:"frequency"`
	Duration  string `json:"duration"`
}

// VaccinationStatus is the checklist snapshot taken during an examination.
type VaccinationStatus struct {
	Rabies   bool `json:"rabies"`
	DHPPiL   bool `json:"dhppil"`
	Corona   bool `json:"corona"`
	Dewormed bool `json:"dewormed"`
}

// ClinicalExamination holds the measured vitals of an examination.
// Weight is in kilograms, BodyConditionScore is on a 9-point scale.
type ClinicalExamination struct {
	Temperature         string  `json:"temperature,omitempty"`
	Respiration         string  `json:"respiration,omitempty"`
	Pulse               string  `json:"pulse,omitempty"`
	MucousMembranes     string  `json:"mucousMembranes,omitempty"`
	Skin                string  `json:"skin,omitempty"`
	CapillaryRefillTime string  `json:"capillaryRefillTime,omitempty"`
	Weight              float64 `json:"weight"`
	BodyConditionScore  int     `json:"bodyConditionScore,omitempty"`
	HydrationStatus     string  `json:"hydrationStatus,omitempty"`
	OtherFindings       string  `json:"otherFindings,omitempty"`
}

// File categories a medical record can hold. These are the only values
// accepted in the /files/:fileType routes.
const (
	FileTypeConsentForms       = "consentForms"
	FileTypeMedicalReports     = "medicalReportFiles"
	FileTypeSurgeryReports     = "surgeryReportFiles"
	FileTypeVaccinationReports = "vaccinationReportFiles"
)

// MedicalRecord is a single consultation entry. Patient is required; the
// patient's MedicalHistory list carries this record's id as the reverse link.
// Free-text clinical fields are lists; a scalar request value is normalized
// to a one-element list at the boundary.
type MedicalRecord struct {
	ID                     string               `json:"id"`
	Patient                string               `json:"patient"`
	Veterinarian           string               `json:"veterinarian"`
	Weight                 float64              `json:"weight"`
	PulseRate              string               `json:"pulseRate"`
	Examination            []string             `json:"examination,omitempty"`
	PreviousHistory        []string             `json:"previousHistory,omitempty"`
	TreatmentPlan          []string             `json:"treatmentPlan,omitempty"`
	ClinicalSigns          []string             `json:"clinicalSigns,omitempty"`
	Conclusion             string               `json:"conclusion"`
	Diagnosis              []string             `json:"diagnosis"`
	Reason                 string               `json:"reason,omitempty"`
	Treatment              []string             `json:"treatment,omitempty"`
	ClinicalFinding        []string             `json:"clinicalFinding,omitempty"`
	Prognosis              string               `json:"prognosis,omitempty"`
	Advice                 string               `json:"advice,omitempty"`
	Notes                  string               `json:"notes,omitempty"`
	Medications            []Medication         `json:"medications,omitempty"`
	TreatmentCompleted     bool                 `json:"treatmentCompleted"`
	VaccinationStatus      *VaccinationStatus   `json:"vaccinationStatus,omitempty"`
	ClinicalExamination    *ClinicalExamination `json:"clinicalExamination,omitempty"`
	ConsentForms           []FileRef            `json:"consentForms"`
	MedicalReportFiles     []FileRef            `json:"medicalReportFiles"`
	SurgeryReportFiles     []FileRef            `json:"surgeryReportFiles"`
	VaccinationReportFiles []FileRef            `json:"vaccinationReportFiles"`
	Date                   time.Time            `json:"date"`
	FollowUpDate           *time.Time           `json:"followUpDate,omitempty"`
	CreatedAt              time.Time            `json:"created_at"`
	UpdatedAt              time.Time            `json:"updated_at"`
}

// Files returns the embedded file list for the given category, or nil for an
// unknown category.
func (m *MedicalRecord) Files(fileType string) []FileRef {
	switch fileType {
	case FileTypeConsentForms:
		return m.ConsentForms
	case FileTypeMedicalReports:
		return m.MedicalReportFiles
	case FileTypeSurgeryReports:
		return m.SurgeryReportFiles
	case FileTypeVaccinationReports:
		return m.VaccinationReportFiles
	default:
		return nil
	}
}

// ValidFileType reports whether fileType names one of the record's file
// categories.
func ValidFileType(fileType string) bool {
	switch fileType {
	case FileTypeConsentForms, FileTypeMedicalReports, FileTypeSurgeryReports, FileTypeVaccinationReports:
		return true
	}
	return false
}
