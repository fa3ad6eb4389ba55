package handlers

import (
	"strconv"
	"time"

	"github.com/LunaaVerse/ttm-sub002/internal/actor"
	"github.com/LunaaVerse/ttm-sub002/internal/dto"
	"github.com/LunaaVerse/ttm-sub002/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) Create(c *fiber.Ctx) error {
	act, err := actor.FromContext(c)
	if err != nil {
		return respondError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	report, err := h.reportService.Create(act, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(report)
}

func (h *ReportHandler) Get(c *fiber.Ctx) error {
	id, err := reportID(c)
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid report ID")
	}

	report, err := h.reportService.GetByID(id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(report)
}

func (h *ReportHandler) List(c *fiber.Ctx) error {
	filter := dto.ReportFilter{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Barangay: c.Query("barangay"),
	}
	filter.Page, _ = strconv.Atoi(c.Query("page", "1"))
	filter.PageSize, _ = strconv.Atoi(c.Query("page_size", "20"))

	if raw := c.Query("assigned_to"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return respondError(c, fiber.StatusBadRequest, "Invalid assigned_to")
		}
		filter.AssignedTo = &id
	}
	if raw := c.Query("date_from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return respondError(c, fiber.StatusBadRequest, "Invalid date_from, expected YYYY-MM-DD")
		}
		filter.DateFrom = &t
	}
	if raw := c.Query("date_to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return respondError(c, fiber.StatusBadRequest, "Invalid date_to, expected YYYY-MM-DD")
		}
		end := t.Add(24*time.Hour - time.Nanosecond)
		filter.DateTo = &end
	}

	reports, total, err := h.reportService.ListByFilter(&filter)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"reports":   reports,
		"total":     total,
		"page":      filter.Page,
		"page_size": filter.PageSize,
	})
}

func (h *ReportHandler) Statistics(c *fiber.Ctx) error {
	stats, err := h.reportService.GetStatistics()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(stats)
}

func (h *ReportHandler) History(c *fiber.Ctx) error {
	id, err := reportID(c)
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid report ID")
	}

	logs, err := h.reportService.GetHistory(id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"report_id": id, "history": logs})
}

func (h *ReportHandler) Verify(c *fiber.Ctx) error {
	return h.mutate(c, func(act actor.Actor, id uint) (interface{}, error) {
		var req dto.VerifyRequest
		if err := c.BodyParser(&req); err != nil {
			return nil, errBadBody
		}
		return h.reportService.Verify(act, id, &req)
	})
}

func (h *ReportHandler) RequestClarification(c *fiber.Ctx) error {
	return h.mutate(c, func(act actor.Actor, id uint) (interface{}, error) {
		var req dto.NotesRequest
		if err := c.BodyParser(&req); err != nil {
			return nil, errBadBody
		}
		return h.reportService.RequestClarification(act, id, &req)
	})
}

func (h *ReportHandler) Reject(c *fiber.Ctx) error {
	return h.mutate(c, func(act actor.Actor, id uint) (interface{}, error) {
		var req dto.NotesRequest
		if err := c.BodyParser(&req); err != nil {
			return nil, errBadBody
		}
		return h.reportService.Reject(act, id, &req)
	})
}

func (h *ReportHandler) Assign(c *fiber.Ctx) error {
	return h.mutate(c, func(act actor.Actor, id uint) (interface{}, error) {
		var req dto.AssignRequest
		if err := c.BodyParser(&req); err != nil {
			return nil, errBadBody
		}
		return h.reportService.Assign(act, id, &req)
	})
}

func (h *ReportHandler) Reassign(c *fiber.Ctx) error {
	return h.mutate(c, func(act actor.Actor, id uint) (interface{}, error) {
		var req dto.ReassignRequest
		if err := c.BodyParser(&req); err != nil {
			return nil, errBadBody
		}
		return h.reportService.Reassign(act, id, &req)
	})
}

func (h *ReportHandler) UpdateStatus(c *fiber.Ctx) error {
	return h.mutate(c, func(act actor.Actor, id uint) (interface{}, error) {
		var req dto.UpdateStatusRequest
		if err := c.BodyParser(&req); err != nil {
			return nil, errBadBody
		}
		return h.reportService.UpdateStatus(act, id, &req)
	})
}

func (h *ReportHandler) SetDispatch(c *fiber.Ctx) error {
	return h.mutate(c, func(act actor.Actor, id uint) (interface{}, error) {
		var req dto.NotesRequest
		if err := c.BodyParser(&req); err != nil {
			return nil, errBadBody
		}
		return h.reportService.SetDispatch(act, id, &req)
	})
}

func (h *ReportHandler) Resolve(c *fiber.Ctx) error {
	return h.mutate(c, func(act actor.Actor, id uint) (interface{}, error) {
		var req dto.NotesRequest
		if err := c.BodyParser(&req); err != nil {
			return nil, errBadBody
		}
		return h.reportService.Resolve(act, id, &req)
	})
}

func (h *ReportHandler) UpdatePriority(c *fiber.Ctx) error {
	return h.mutate(c, func(act actor.Actor, id uint) (interface{}, error) {
		var req dto.UpdatePriorityRequest
		if err := c.BodyParser(&req); err != nil {
			return nil, errBadBody
		}
		return h.reportService.UpdatePriority(act, id, &req)
	})
}

func (h *ReportHandler) TanodFollowUp(c *fiber.Ctx) error {
	return h.mutate(c, func(act actor.Actor, id uint) (interface{}, error) {
		var req dto.TanodFollowUpRequest
		if err := c.BodyParser(&req); err != nil {
			return nil, errBadBody
		}
		return h.reportService.AssignTanodFollowUp(act, id, &req)
	})
}

func (h *ReportHandler) OverrideStatus(c *fiber.Ctx) error {
	return h.mutate(c, func(act actor.Actor, id uint) (interface{}, error) {
		var req dto.OverrideStatusRequest
		if err := c.BodyParser(&req); err != nil {
			return nil, errBadBody
		}
		return h.reportService.OverrideStatus(act, id, &req)
	})
}

func (h *ReportHandler) BulkAssign(c *fiber.Ctx) error {
	act, err := actor.FromContext(c)
	if err != nil {
		return respondError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.BulkAssignRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	reports, err := h.reportService.BulkAssign(act, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Reports assigned successfully",
		"reports": reports,
	})
}

var errBadBody = fiber.NewError(fiber.StatusBadRequest, "Invalid request body")

// mutate wraps the shared plumbing of every transition endpoint: actor
// extraction, report ID parsing, and error mapping.
func (h *ReportHandler) mutate(c *fiber.Ctx, fn func(act actor.Actor, id uint) (interface{}, error)) error {
	act, err := actor.FromContext(c)
	if err != nil {
		return respondError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	id, err := reportID(c)
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid report ID")
	}

	result, err := fn(act, id)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return respondError(c, fe.Code, fe.Message)
		}
		return serviceError(c, err)
	}
	return c.JSON(result)
}

func reportID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
