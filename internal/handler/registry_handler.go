package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"go-agritrace/internal/model"
	"go-agritrace/internal/service"
	"go-agritrace/internal/session"
)

type RegistryHandler struct {
	service service.RegistryService
}

func NewRegistryHandler(s service.RegistryService) *RegistryHandler {
	return &RegistryHandler{service: s}
}

// sessionFromCtx rebuilds the acting session from the locals set by
// RequireAuth.
func sessionFromCtx(c *fiber.Ctx) session.Session {
	sess := session.Session{}
	if v, ok := c.Locals("user_identity").(string); ok {
		sess.Identity = v
	}
	if v, ok := c.Locals("user_role").(string); ok {
		sess.Role = model.Role(v)
	}
	if v, ok := c.Locals("session_id").(uuid.UUID); ok {
		sess.ID = v
	}
	return sess
}

func registrationStatus(err error) int {
	if errors.Is(err, service.ErrRoleNotAllowed) {
		return 403
	}
	return 400
}

// RegisterProduce handles a farmer submission
// POST /api/v1/produce
func (h *RegistryHandler) RegisterProduce(c *fiber.Ctx) error {
	var rec model.ProduceRecord
	if err := c.BodyParser(&rec); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	created, err := h.service.RegisterProduce(&rec, sessionFromCtx(c))
	if err != nil {
		return c.Status(registrationStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":  "Produce registered successfully",
		"batch_id": created.BatchID,
		"data":     created,
	})
}

// RecordEvent handles a distributor supply-chain update
// POST /api/v1/events
func (h *RegistryHandler) RecordEvent(c *fiber.Ctx) error {
	var ev model.SupplyChainEvent
	if err := c.BodyParser(&ev); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	created, err := h.service.RecordSupplyChainEvent(&ev, sessionFromCtx(c))
	if err != nil {
		return c.Status(registrationStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Supply chain event recorded",
		"data":    created,
	})
}

// ListAvailability handles a retailer marking produce available
// POST /api/v1/inventory
func (h *RegistryHandler) ListAvailability(c *fiber.Ctx) error {
	var li model.InventoryListing
	if err := c.BodyParser(&li); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	created, err := h.service.ListAvailability(&li, sessionFromCtx(c))
	if err != nil {
		return c.Status(registrationStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Product marked as available in store",
		"data":    created,
	})
}

func (h *RegistryHandler) GetProduce(c *fiber.Ctx) error {
	return c.JSON(h.service.GetAllProduce())
}

func (h *RegistryHandler) GetEvents(c *fiber.Ctx) error {
	return c.JSON(h.service.GetAllEvents())
}

func (h *RegistryHandler) GetInventory(c *fiber.Ctx) error {
	return c.JSON(h.service.GetAllListings())
}
