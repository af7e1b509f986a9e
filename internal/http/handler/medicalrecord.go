package handler

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"

	"vetapi/internal/model"
	"vetapi/internal/service"
)

// File categories map onto the upload routes; the route segment is the
// kebab-case form of the record's field name.
var fileRouteTypes = map[string]string{
	"consent-forms":       model.FileTypeConsentForms,
	"medical-reports":     model.FileTypeMedicalReports,
	"surgery-reports":     model.FileTypeSurgeryReports,
	"vaccination-reports": model.FileTypeVaccinationReports,
}

// recordInput parses a medical record write. A JSON body carries the fields
// directly; a multipart body carries them as a JSON document under the
// "data" field with files grouped by category field name.
func recordInput(c *fiber.Ctx) (service.MedicalRecordInput, error) {
	var req medicalRecordRequest

	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return service.MedicalRecordInput{}, writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed multipart form")
		}
		data := ""
		if vals := form.Value["data"]; len(vals) > 0 {
			data = vals[0]
		}
		if err := json.Unmarshal([]byte(data), &req); err != nil {
			return service.MedicalRecordInput{}, writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed record data")
		}
		files := make(map[string][]service.FileUpload)
		for _, fileType := range fileRouteTypes {
			uploads, err := formUploads(form, fileType)
			if err != nil {
				return service.MedicalRecordInput{}, writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
			}
			if len(uploads) > 0 {
				files[fileType] = uploads
			}
		}
		return service.MedicalRecordInput{Identifier: req.Patient, Record: req.toModel(), Files: files}, nil
	}

	if err := parseBody(c, &req); err != nil {
		return service.MedicalRecordInput{}, err
	}
	return service.MedicalRecordInput{Identifier: req.Patient, Record: req.toModel()}, nil
}

// ListMedicalRecords returns every medical record.
func ListMedicalRecords(svc service.MedicalRecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		records, err := svc.List(c.UserContext())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(records)
	}
}

// CreateMedicalRecord creates a record transactionally against the patient's
// medical history.
func CreateMedicalRecord(svc service.MedicalRecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in, err := recordInput(c)
		if err != nil {
			return err
		}
		stored, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(stored)
	}
}

// AppendMedicalRecord creates a record with sequential best-effort writes
// instead of a transaction.
func AppendMedicalRecord(svc service.MedicalRecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in, err := recordInput(c)
		if err != nil {
			return err
		}
		stored, err := svc.Append(c.UserContext(), in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(stored)
	}
}

// GetMedicalRecord returns one record by id.
func GetMedicalRecord(svc service.MedicalRecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requireUUID(c, "id")
		if err != nil {
			return err
		}
		rec, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(rec)
	}
}

// ListMedicalRecordsByPatient returns the records of one patient.
func ListMedicalRecordsByPatient(svc service.MedicalRecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		patientID, err := requireUUID(c, "patientId")
		if err != nil {
			return err
		}
		records, err := svc.ListByPatient(c.UserContext(), patientID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(records)
	}
}

// UpdateMedicalRecord replaces a record's clinical fields. The patient link
// and the file lists are not editable here.
func UpdateMedicalRecord(svc service.MedicalRecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requireUUID(c, "id")
		if err != nil {
			return err
		}
		var req medicalRecordRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		rec := req.toModel()
		stored, err := svc.Update(c.UserContext(), id, &rec)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(stored)
	}
}

// DeleteMedicalRecord removes a record, its stored files and its history
// back-reference.
func DeleteMedicalRecord(svc service.MedicalRecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requireUUID(c, "id")
		if err != nil {
			return err
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// AddMedicalRecordFiles uploads files into one category of a record. The
// category is fixed per route.
func AddMedicalRecordFiles(svc service.MedicalRecordService, fileType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requireUUID(c, "id")
		if err != nil {
			return err
		}
		form, err := c.MultipartForm()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "multipart form with files is required")
		}
		uploads, err := formUploads(form, "files")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		if len(uploads) == 0 {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "at least one file is required")
		}
		stored, err := svc.AddFiles(c.UserContext(), id, fileType, uploads)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(stored)
	}
}

// ToggleMedicalRecordStatus flips the treatmentCompleted flag.
func ToggleMedicalRecordStatus(svc service.MedicalRecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requireUUID(c, "id")
		if err != nil {
			return err
		}
		rec, err := svc.ToggleStatus(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(rec)
	}
}

// DeleteMedicalRecordFile removes one file descriptor and its stored object.
func DeleteMedicalRecordFile(svc service.MedicalRecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		recordID, err := requireUUID(c, "recordId")
		if err != nil {
			return err
		}
		if err := svc.DeleteFile(c.UserContext(), recordID, c.Params("fileType"), c.Params("fileId")); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DownloadMedicalRecordFile streams one stored file's content.
func DownloadMedicalRecordFile(svc service.MedicalRecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		recordID, err := requireUUID(c, "recordId")
		if err != nil {
			return err
		}
		rc, ref, err := svc.OpenFile(c.UserContext(), recordID, c.Params("fileType"), c.Params("fileId"))
		if err != nil {
			return serviceError(c, err)
		}
		return sendFileRef(c, rc, ref)
	}
}
