package handler

import (
	"github.com/gofiber/fiber/v2"

	"vetapi/internal/model"
	"vetapi/internal/service"
)

// ListSuppliers returns every supplier.
func ListSuppliers(svc service.SupplierService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		suppliers, err := svc.List(c.UserContext())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(suppliers)
	}
}

// CreateSupplier registers a supplier; the name must be unused.
func CreateSupplier(svc service.SupplierService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.Supplier
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

// GetSupplier returns one supplier by id.
func GetSupplier(svc service.SupplierService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requireUUID(c, "id")
		if err != nil {
			return err
		}
		sp, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(sp)
	}
}

// UpdateSupplier replaces a supplier's attributes; the supply history is not
// editable here.
func UpdateSupplier(svc service.SupplierService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requireUUID(c, "id")
		if err != nil {
			return err
		}
		var req model.Supplier
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

// DeleteSupplier removes a supplier.
func DeleteSupplier(svc service.SupplierService) fiber.Handler {
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
