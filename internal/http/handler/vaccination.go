package handler

import (
	"github.com/gofiber/fiber/v2"

	"vetapi/internal/model"
	"vetapi/internal/service"
)

// ListVaccinations returns every vaccination record.
func ListVaccinations(svc service.VaccinationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vaccinations, err := svc.List(c.UserContext())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(vaccinations)
	}
}

// SearchVaccinations filters by patient name substring and exact owner phone.
func SearchVaccinations(svc service.VaccinationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vaccinations, err := svc.Search(c.UserContext(), c.Query("patientName"), c.Query("ownerPhone"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(vaccinations)
	}
}

// CreateVaccination records a vaccination or books an upcoming one.
func CreateVaccination(svc service.VaccinationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.Vaccination
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

// GetVaccination returns one vaccination record by id.
func GetVaccination(svc service.VaccinationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requireUUID(c, "id")
		if err != nil {
			return err
		}
		v, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(v)
	}
}

// UpdateVaccination replaces a vaccination record; its status is re-derived.
func UpdateVaccination(svc service.VaccinationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requireUUID(c, "id")
		if err != nil {
			return err
		}
		var req model.Vaccination
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

// DeleteVaccination removes a vaccination record.
func DeleteVaccination(svc service.VaccinationService) fiber.Handler {
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
