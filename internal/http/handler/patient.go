package handler

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"vetapi/internal/model"
	"vetapi/internal/service"
)

// ListPatients returns every patient.
func ListPatients(svc service.PatientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		patients, err := svc.List(c.UserContext())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(patients)
	}
}

// CreatePatient registers a patient under an existing client.
func CreatePatient(svc service.PatientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.Patient
		if err := parseBody(c, &req); err != nil {
			return err
		}
		stored, err := svc.Create(c.UserContext(), &req)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(stored)
	}
}

// GetPatient returns one patient by store id.
func GetPatient(svc service.PatientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requireUUID(c, "id")
		if err != nil {
			return err
		}
		p, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(p)
	}
}

// GetPatientByIdentifier resolves a patient by store id, petId or
// registrationNumber.
func GetPatientByIdentifier(svc service.PatientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.GetByIdentifier(c.UserContext(), c.Params("identifier"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(p)
	}
}

// ListPatientsByClient returns the patients owned by one client.
func ListPatientsByClient(svc service.PatientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		clientID, err := requireUUID(c, "clientId")
		if err != nil {
			return err
		}
		patients, err := svc.ListByClient(c.UserContext(), clientID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(patients)
	}
}

// UpdatePatient replaces a patient's editable fields; a client change moves
// the patient between the clients' patient lists.
func UpdatePatient(svc service.PatientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requireUUID(c, "id")
		if err != nil {
			return err
		}
		var req model.Patient
		if err := parseBody(c, &req); err != nil {
			return err
		}
		stored, err := svc.Update(c.UserContext(), id, &req)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(stored)
	}
}

// DeletePatient removes a patient, its medical records and its stored files.
func DeletePatient(svc service.PatientService) fiber.Handler {
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

// UploadPatientAttachments stores the multipart files posted under the
// "attachments" field onto the patient.
func UploadPatientAttachments(svc service.PatientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requireUUID(c, "id")
		if err != nil {
			return err
		}
		form, err := c.MultipartForm()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "multipart form with attachments is required")
		}
		uploads, err := formUploads(form, "attachments")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		if len(uploads) == 0 {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "at least one attachment is required")
		}
		stored, err := svc.UploadAttachments(c.UserContext(), id, uploads)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(stored)
	}
}

// DeletePatientAttachment removes one attachment and its stored object.
func DeletePatientAttachment(svc service.PatientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requireUUID(c, "id")
		if err != nil {
			return err
		}
		if err := svc.DeleteAttachment(c.UserContext(), id, c.Params("attachmentId")); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DownloadPatientAttachment streams one attachment's content.
func DownloadPatientAttachment(svc service.PatientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requireUUID(c, "id")
		if err != nil {
			return err
		}
		rc, ref, err := svc.OpenAttachment(c.UserContext(), id, c.Params("attachmentId"))
		if err != nil {
			return serviceError(c, err)
		}
		return sendFileRef(c, rc, ref)
	}
}

// sendFileRef streams a stored object to the response with its original
// filename and content type. fasthttp closes the reader once the body has
// been written.
func sendFileRef(c *fiber.Ctx, rc io.ReadCloser, ref model.FileRef) error {
	ct := ref.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	c.Set(fiber.HeaderContentType, ct)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+ref.FileName+`"`)
	return c.SendStream(rc, int(ref.Size))
}
