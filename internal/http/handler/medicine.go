package handler

import (
	"github.com/gofiber/fiber/v2"

	"vetapi/internal/model"
	"vetapi/internal/service"
)

// ListMedicines returns every medicine.
func ListMedicines(svc service.MedicineService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		medicines, err := svc.List(c.UserContext())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(medicines)
	}
}

// CreateMedicine registers a medicine and mirrors it into inventory.
func CreateMedicine(svc service.MedicineService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.Medicine
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

// GetMedicine returns one medicine by id.
func GetMedicine(svc service.MedicineService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requireUUID(c, "id")
		if err != nil {
			return err
		}
		m, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(m)
	}
}

// UpdateMedicine replaces a medicine and refreshes its inventory mirror.
func UpdateMedicine(svc service.MedicineService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requireUUID(c, "id")
		if err != nil {
			return err
		}
		var req model.Medicine
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

// DeleteMedicine removes a medicine together with its inventory mirror.
func DeleteMedicine(svc service.MedicineService) fiber.Handler {
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
