package handler

import (
	"go-bms-api/internal/service"
	"go-bms-api/pkg/flash"

	"github.com/gofiber/fiber/v2"
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Analysis returns the full profit and consumption report, recomputed
// from live rows on every request
// GET /admin/analysis
func (h *AnalyticsHandler) Analysis(c *fiber.Ctx) error {
	report, err := h.analyticsService.Analysis()
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"total_sales":             report.TotalSales,
		"total_invested":          report.TotalInvested,
		"profit":                  report.Profit,
		"product_analysis":        report.Products,
		"sales":                   report.Sales,
		"total_admin_consumption": report.TotalStaffConsumption,
		"total_user_consumption":  report.TotalUserConsumption,
		"total_consumption":       report.TotalConsumption,
		"messages":                flash.Drain(c),
	})
}
