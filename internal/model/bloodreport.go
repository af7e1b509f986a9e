package model

import "time"

// Hematology is the blood cell panel. All values optional; units follow
// standard lab conventions (hb gm/dL, pcv %, tlc 1000/µL, rbc 10^6/µL).
type Hematology struct {
	HB          float64 `json:"hb,omitempty"`
	PCV         float64 `json:"pcv,omitempty"`
	TLC         float64 `json:"tlc,omitempty"`
	Neutrophils float64 `json:"neutrophils,omitempty"`
	Eosinophils float64 `json:"eosinophils,omitempty"`
	Basophils   float64 `json:"basophils,omitempty"`
	Monocytes   float64 `json:"monocytes,omitempty"`
	Lymphocytes float64 `json:"lymphocytes,omitempty"`
	RBC         float64 `json:"rbc,omitempty"`
	Platelets   float64 `json:"platelets,omitempty"`
	MCHC        float64 `json:"mchc,omitempty"`
	MCH         float64 `json:"mch,omitempty"`
	MCV         float64 `json:"mcv,omitempty"`
}

// ClinicalChemistry is the serum chemistry panel.
type ClinicalChemistry struct {
	Glucose         float64 `json:"glucose,omitempty"`
	Albumin         float64 `json:"albumin,omitempty"`
	TotalProtein    float64 `json:"totalProtein,omitempty"`
	BilirubinTotal  float64 `json:"bilirubinTotal,omitempty"`
	BilirubinDirect float64 `json:"bilirubinDirect,omitempty"`
	ALT             float64 `json:"alt,omitempty"`
	ALP             float64 `json:"alp,omitempty"`
	BUN             float64 `json:"bun,omitempty"`
	Creatinine      float64 `json:"creatinine,omitempty"`
	Sodium          float64 `json:"sodium,omitempty"`
	Potassium       float64 `json:"potassium,omitempty"`
	Chloride        float64 `json:"chloride,omitempty"`
	VitaminD        float64 `json:"vitaminD,omitempty"`
}

// BloodReport is a lab result for a patient. The patient reference cannot
// change after creation.
type BloodReport struct {
	ID                  string             `json:"id"`
	Patient             string             `json:"patient"`
	Veterinarian        string             `json:"veterinarian"`
	SampleCollectedDate time.Time          `json:"sampleCollectedDate"`
	SampleTestedDate    time.Time          `json:"sampleTestedDate"`
	Hematology          *Hematology        `json:"hematology,omitempty"`
	ClinicalChemistry   *ClinicalChemistry `json:"clinicalChemistry,omitempty"`
	Notes               string             `json:"notes,omitempty"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
}
