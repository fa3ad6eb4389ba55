package handlers

import (
	"strconv"
	"time"

	"github.com/LunaaVerse/ttm-sub002/internal/dto"
	"github.com/LunaaVerse/ttm-sub002/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

func (h *AnalyticsHandler) Overview(c *fiber.Ctx) error {
	year, _ := strconv.Atoi(c.Query("year", strconv.Itoa(time.Now().Year())))
	month, _ := strconv.Atoi(c.Query("month", "0"))

	filter := dto.AnalyticsFilter{
		Year:          year,
		Month:         month,
		Barangay:      c.Query("barangay"),
		ConditionType: c.Query("condition_type"),
		Severity:      c.Query("severity"),
	}

	resp, err := h.analyticsService.Overview(&filter)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(resp)
}
