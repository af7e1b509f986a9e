package handler

import (
	"github.com/gofiber/fiber/v2"

	"vetapi/internal/model"
	"vetapi/internal/service"
)

// ListClients returns every client.
func ListClients(svc service.ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		clients, err := svc.List(c.UserContext())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(clients)
	}
}

// CreateClient registers a new client.
func CreateClient(svc service.ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.Client
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

// GetClient returns one client by id.
func GetClient(svc service.ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requireUUID(c, "id")
		if err != nil {
			return err
		}
		client, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(client)
	}
}

// UpdateClient replaces a client's editable fields.
func UpdateClient(svc service.ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requireUUID(c, "id")
		if err != nil {
			return err
		}
		var req model.Client
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

// DeleteClient removes a client together with its patients and their records.
func DeleteClient(svc service.ClientService) fiber.Handler {
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
