package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.
// Repositories hold no business logic: cascades, back-reference ordering and
// find-or-create decisions belong to the service layer.

// HistoryList names one of a patient's back-reference arrays. The postgres
// implementation maps each value onto its JSONB column.
type HistoryList string

const (
	MedicalHistory     HistoryList = "medical_history"
	VaccinationHistory HistoryList = "vaccination_history"
	BloodReportHistory HistoryList = "blood_reports"
	SurgeryHistory     HistoryList = "surgery_history"
)
