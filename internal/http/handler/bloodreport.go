package handler

import (
	"github.com/gofiber/fiber/v2"

	"vetapi/internal/model"
	"vetapi/internal/service"
)

// ListBloodReports returns every blood report.
func ListBloodReports(svc service.BloodReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reports, err := svc.List(c.UserContext())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(reports)
	}
}

// ListBloodReportsByPatient returns the blood reports of one patient.
func ListBloodReportsByPatient(svc service.BloodReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		patientID, err := requireUUID(c, "patientId")
		if err != nil {
			return err
		}
		reports, err := svc.ListByPatient(c.UserContext(), patientID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(reports)
	}
}

// CreateBloodReport records a blood report against an existing patient.
func CreateBloodReport(svc service.BloodReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.BloodReport
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

// GetBloodReport returns one blood report by id.
func GetBloodReport(svc service.BloodReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requireUUID(c, "id")
		if err != nil {
			return err
		}
		b, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(b)
	}
}

// UpdateBloodReport replaces a blood report; the patient link is immutable.
func UpdateBloodReport(svc service.BloodReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requireUUID(c, "id")
		if err != nil {
			return err
		}
		var req model.BloodReport
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

// DeleteBloodReport removes a blood report and its history back-reference.
func DeleteBloodReport(svc service.BloodReportService) fiber.Handler {
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
