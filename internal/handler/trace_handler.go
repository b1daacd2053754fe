package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"go-agritrace/internal/service"
)

type TraceHandler struct {
	service service.TraceService
}

func NewTraceHandler(s service.TraceService) *TraceHandler {
	return &TraceHandler{service: s}
}

// GetHistory reconstructs a batch's history for the consumer scan
// GET /api/v1/trace/:batchId
func (h *TraceHandler) GetHistory(c *fiber.Ctx) error {
	// Scanned input is uppercased, matching how batch IDs are issued.
	batchID := strings.ToUpper(c.Params("batchId"))

	history := h.service.GetHistory(batchID)
	if !history.Found {
		return c.Status(404).JSON(history)
	}
	return c.JSON(history)
}
