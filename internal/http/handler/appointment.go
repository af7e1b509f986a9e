package handler

import (
	"github.com/gofiber/fiber/v2"

	"vetapi/internal/model"
	"vetapi/internal/service"
)

// ListAppointments returns every appointment, soonest first.
func ListAppointments(svc service.AppointmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		appointments, err := svc.List(c.UserContext())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(appointments)
	}
}

// CreateAppointment books an appointment.
func CreateAppointment(svc service.AppointmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.Appointment
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

// GetAppointment returns one appointment by id.
func GetAppointment(svc service.AppointmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requireUUID(c, "id")
		if err != nil {
			return err
		}
		a, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(a)
	}
}

// UpdateAppointment replaces an appointment.
func UpdateAppointment(svc service.AppointmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requireUUID(c, "id")
		if err != nil {
			return err
		}
		var req model.Appointment
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

// DeleteAppointment cancels an appointment.
func DeleteAppointment(svc service.AppointmentService) fiber.Handler {
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
