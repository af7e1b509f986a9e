package handler

import (
	"github.com/gofiber/fiber/v2"

	"vetapi/internal/service"
)

// ListInventory returns every inventory item.
func ListInventory(svc service.InventoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(items)
	}
}

// CreateInventoryItem inserts an item; an inline supplier is found-or-created
// by name and the item id is pushed onto its supply history.
func CreateInventoryItem(svc service.InventoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req inventoryRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		item, supplier := req.toModel()
		stored, err := svc.Create(c.UserContext(), item, supplier)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(stored)
	}
}

// GetInventoryItem returns one inventory item by id.
func GetInventoryItem(svc service.InventoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requireUUID(c, "id")
		if err != nil {
			return err
		}
		item, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(item)
	}
}

// UpdateInventoryItem replaces an item; a supplier change moves the item id
// between the suppliers' supply histories.
func UpdateInventoryItem(svc service.InventoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requireUUID(c, "id")
		if err != nil {
			return err
		}
		var req inventoryRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		item, supplier := req.toModel()
		stored, err := svc.Update(c.UserContext(), id, item, supplier)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(stored)
	}
}

// DeleteInventoryItem removes an item and pulls it from its supplier's
// supply history.
func DeleteInventoryItem(svc service.InventoryService) fiber.Handler {
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
