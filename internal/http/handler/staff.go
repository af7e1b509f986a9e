package handler

import (
	"github.com/gofiber/fiber/v2"

	"vetapi/internal/service"
)

// ListStaffs returns every staff member. Password hashes never appear in the
// response.
func ListStaffs(svc service.StaffService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		staffs, err := svc.List(c.UserContext())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(staffs)
	}
}

// CreateStaff registers a staff member with a hashed password.
func CreateStaff(svc service.StaffService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req staffRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		stored, err := svc.Create(c.UserContext(), &req.Staff, req.Password)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(stored)
	}
}

// GetStaff returns one staff member by id.
func GetStaff(svc service.StaffService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requireUUID(c, "id")
		if err != nil {
			return err
		}
		st, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(st)
	}
}

// UpdateStaff replaces a staff member; an empty password keeps the stored
// hash.
func UpdateStaff(svc service.StaffService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requireUUID(c, "id")
		if err != nil {
			return err
		}
		var req staffRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		stored, err := svc.Update(c.UserContext(), id, &req.Staff, req.Password)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(stored)
	}
}

// DeleteStaff removes a staff member.
func DeleteStaff(svc service.StaffService) fiber.Handler {
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

// Login verifies the credentials and returns a session token. The failure
// response is identical for an unknown user and a wrong password.
func Login(svc service.StaffService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		res, err := svc.Login(c.UserContext(), req.UserID, req.Password)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}
