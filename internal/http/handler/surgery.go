package handler

import (
	"github.com/gofiber/fiber/v2"

	"vetapi/internal/model"
	"vetapi/internal/service"
)

// ListSurgeries returns every surgery record.
func ListSurgeries(svc service.SurgeryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		surgeries, err := svc.List(c.UserContext())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(surgeries)
	}
}

// ListSurgeriesByPatient returns the surgeries of one patient.
func ListSurgeriesByPatient(svc service.SurgeryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		patientID, err := requireUUID(c, "patientId")
		if err != nil {
			return err
		}
		surgeries, err := svc.ListByPatient(c.UserContext(), patientID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(surgeries)
	}
}

// CreateSurgery records a surgery against an existing patient.
func CreateSurgery(svc service.SurgeryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.Surgery
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

// GetSurgery returns one surgery record by id.
func GetSurgery(svc service.SurgeryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requireUUID(c, "id")
		if err != nil {
			return err
		}
		sg, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(sg)
	}
}

// UpdateSurgery replaces a surgery record; the patient link is immutable.
func UpdateSurgery(svc service.SurgeryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requireUUID(c, "id")
		if err != nil {
			return err
		}
		var req model.Surgery
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

// DeleteSurgery removes a surgery record and its history back-reference.
func DeleteSurgery(svc service.SurgeryService) fiber.Handler {
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
