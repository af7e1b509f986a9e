package handler

import (
	"encoding/json"
	"mime/multipart"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"vetapi/internal/model"
	"vetapi/internal/service"
)

// textList accepts a JSON array of strings or a bare string. A scalar is
// normalized to a one-element list; an empty scalar becomes an empty list.
type textList []string

func (t *textList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "\"") {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*t = nil
			return nil
		}
		*t = textList{s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*t = list
	return nil
}

// supplierField accepts either a supplier id string or an inline supplier
// object with at least a name.
type supplierField struct {
	ID     string
	Object *model.Supplier
}

func (s *supplierField) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == "" {
		return nil
	}
	if strings.HasPrefix(trimmed, "\"") {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		if _, err := uuid.Parse(v); err == nil {
			s.ID = v
			return nil
		}
		s.Object = &model.Supplier{Name: v}
		return nil
	}
	var sp model.Supplier
	if err := json.Unmarshal(data, &sp); err != nil {
		return err
	}
	s.Object = &sp
	return nil
}

// medicalRecordRequest is the wire shape of a medical record write. The
// patient field carries a store id, petId or registrationNumber; free-text
// clinical fields take a string or a list of strings.
type medicalRecordRequest struct {
	Patient             string                     `json:"patient"`
	Veterinarian        string                     `json:"veterinarian"`
	Weight              float64                    `json:"weight"`
	PulseRate           string                     `json:"pulseRate"`
	Examination         textList                   `json:"examination"`
	PreviousHistory     textList                   `json:"previousHistory"`
	TreatmentPlan       textList                   `json:"treatmentPlan"`
	ClinicalSigns       textList                   `json:"clinicalSigns"`
	Conclusion          string                     `json:"conclusion"`
	Diagnosis           textList                   `json:"diagnosis"`
	Reason              string                     `json:"reason"`
	Treatment           textList                   `json:"treatment"`
	ClinicalFinding     textList                   `json:"clinicalFinding"`
	Prognosis           string                     `json:"prognosis"`
	Advice              string                     `json:"advice"`
	Notes               string                     `json:"notes"`
	Medications         []model.Medication         `json:"medications"`
	TreatmentCompleted  bool                       `json:"treatmentCompleted"`
	VaccinationStatus   *model.VaccinationStatus   `json:"vaccinationStatus"`
	ClinicalExamination *model.ClinicalExamination `json:"clinicalExamination"`
	Date                *time.Time                 `json:"date"`
	FollowUpDate        *time.Time                 `json:"followUpDate"`
}

func (r *medicalRecordRequest) toModel() model.MedicalRecord {
	rec := model.MedicalRecord{
		Veterinarian:        r.Veterinarian,
		Weight:              r.Weight,
		PulseRate:           r.PulseRate,
		Examination:         r.Examination,
		PreviousHistory:     r.PreviousHistory,
		TreatmentPlan:       r.TreatmentPlan,
		ClinicalSigns:       r.ClinicalSigns,
		Conclusion:          r.Conclusion,
		Diagnosis:           r.Diagnosis,
		Reason:              r.Reason,
		Treatment:           r.Treatment,
		ClinicalFinding:     r.ClinicalFinding,
		Prognosis:           r.Prognosis,
		Advice:              r.Advice,
		Notes:               r.Notes,
		Medications:         r.Medications,
		TreatmentCompleted:  r.TreatmentCompleted,
		VaccinationStatus:   r.VaccinationStatus,
		ClinicalExamination: r.ClinicalExamination,
	}
	if r.Date != nil {
		rec.Date = *r.Date
	}
	rec.FollowUpDate = r.FollowUpDate
	return rec
}

// inventoryRequest is the wire shape of an inventory item write. The
// supplier field carries a supplier id, a supplier name or an inline
// supplier object.
type inventoryRequest struct {
	model.InventoryItem
	Supplier supplierField `json:"supplier"`
}

func (r *inventoryRequest) toModel() (*model.InventoryItem, *model.Supplier) {
	item := r.InventoryItem
	item.Supplier = r.Supplier.ID
	return &item, r.Supplier.Object
}

// staffRequest is the wire shape of a staff write: the staff record plus the
// plaintext password, which only ever crosses this boundary.
type staffRequest struct {
	model.Staff
	Password string `json:"password"`
}

type loginRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

// parseBody decodes the JSON request body into dst.
func parseBody(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
	}
	return nil
}

// requireUUID validates a path parameter that addresses a store id.
func requireUUID(c *fiber.Ctx, param string) (string, error) {
	id := c.Params(param)
	if _, err := uuid.Parse(id); err != nil {
		return "", writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}
	return id, nil
}

// formUploads converts the multipart files posted under the given field into
// service uploads. The file handles stay open until the request completes;
// Fiber releases them afterwards.
func formUploads(form *multipart.Form, field string) ([]service.FileUpload, error) {
	headers := form.File[field]
	uploads := make([]service.FileUpload, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}
		uploads = append(uploads, service.FileUpload{
			FileName:    fh.Filename,
			ContentType: ct,
			Size:        fh.Size,
			Reader:      f,
		})
	}
	return uploads, nil
}
