package handlers

import (
	"github.com/LunaaVerse/ttm-sub002/internal/dto"
	"github.com/LunaaVerse/ttm-sub002/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type DirectoryHandler struct {
	directoryService *services.DirectoryService
}

func NewDirectoryHandler(directoryService *services.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directoryService: directoryService}
}

func (h *DirectoryHandler) ListStaff(c *fiber.Ctx) error {
	users, err := h.directoryService.FindActiveStaff()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"staff": users})
}

func (h *DirectoryHandler) ListTanods(c *fiber.Ctx) error {
	users, err := h.directoryService.FindActiveTanods()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"tanods": users})
}

func (h *DirectoryHandler) GetActor(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	user, err := h.directoryService.GetActor(id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(user)
}

func (h *DirectoryHandler) ListBarangays(c *fiber.Ctx) error {
	barangays, err := h.directoryService.ListBarangays()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"barangays": barangays})
}

func (h *DirectoryHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := h.directoryService.CreateUser(&req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *DirectoryHandler) ListConditionCosts(c *fiber.Ctx) error {
	costs, err := h.directoryService.ListConditionCosts()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"condition_costs": costs})
}

func (h *DirectoryHandler) SetConditionCost(c *fiber.Ctx) error {
	var payload struct {
		UnitCost int64 `json:"unit_cost"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	cost, err := h.directoryService.SetConditionCost(c.Params("condition"), payload.UnitCost)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(cost)
}
