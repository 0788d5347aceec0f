package handler

import (
	"go-bms-api/internal/service"
	"go-bms-api/pkg/flash"

	"github.com/gofiber/fiber/v2"
)

// ConsumptionHandler serves both variants of the consumption flow: the
// staff one over every row, and the user one scoped to the caller. The
// two differ only in scope and redirect target, so they share the struct.
type ConsumptionHandler struct {
	consumptionService service.ConsumptionService
	productService     service.ProductService
}

func NewConsumptionHandler(consumptionService service.ConsumptionService, productService service.ProductService) *ConsumptionHandler {
	return &ConsumptionHandler{
		consumptionService: consumptionService,
		productService:     productService,
	}
}

const adminConsumptionHome = "/admin/consumption"
const userConsumptionHome = "/consumption"

// AdminList shows all consumption rows partitioned by creator role
// GET /admin/consumption
func (h *ConsumptionHandler) AdminList(c *fiber.Ctx) error {
	summary, err := h.consumptionService.AdminSummary()
	if err != nil {
		return fail(c, err)
	}
	products, err := h.productService.List()
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"admin_consumptions": summary.StaffRows,
		"user_consumptions":  summary.UserRows,
		"total_admin":        summary.TotalStaff,
		"total_user":         summary.TotalUser,
		"total_consumption":  summary.Total,
		"products":           products,
		"messages":           flash.Drain(c),
	})
}

// AdminAdd records consumption as staff
// GET|POST /admin/consumption/add
func (h *ConsumptionHandler) AdminAdd(c *fiber.Ctx) error {
	return h.add(c, adminConsumptionHome)
}

// AdminUpdate edits any consumption row
// GET|POST /admin/consumption/update/:id
func (h *ConsumptionHandler) AdminUpdate(c *fiber.Ctx) error {
	return h.update(c, adminConsumptionHome)
}

// AdminDelete removes any consumption row on POST
func (h *ConsumptionHandler) AdminDelete(c *fiber.Ctx) error {
	return h.delete(c, adminConsumptionHome)
}

// UserList shows the caller's own consumption with its total
// GET /consumption
func (h *ConsumptionHandler) UserList(c *fiber.Ctx) error {
	consumptions, total, err := h.consumptionService.ListFor(currentUser(c))
	if err != nil {
		return fail(c, err)
	}
	products, err := h.productService.List()
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"consumptions":      consumptions,
		"total_consumption": total,
		"products":          products,
		"messages":          flash.Drain(c),
	})
}

// UserAdd records consumption for the caller
// GET|POST /consumption/add
func (h *ConsumptionHandler) UserAdd(c *fiber.Ctx) error {
	return h.add(c, userConsumptionHome)
}

// UserUpdate edits one of the caller's own rows
// GET|POST /consumption/update/:id
func (h *ConsumptionHandler) UserUpdate(c *fiber.Ctx) error {
	return h.update(c, userConsumptionHome)
}

// UserDelete removes one of the caller's own rows on POST
func (h *ConsumptionHandler) UserDelete(c *fiber.Ctx) error {
	return h.delete(c, userConsumptionHome)
}

func (h *ConsumptionHandler) add(c *fiber.Ctx, home string) error {
	if c.Method() != fiber.MethodPost {
		products, err := h.productService.List()
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{
			"products": products,
			"messages": flash.Drain(c),
		})
	}

	var input service.ConsumptionInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid form body"})
	}

	if _, err := h.consumptionService.Create(input, currentUser(c)); err != nil {
		return fail(c, err)
	}

	flash.Success(c, "Consumption recorded successfully")
	return c.Redirect(home, fiber.StatusFound)
}

func (h *ConsumptionHandler) update(c *fiber.Ctx, home string) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, service.ErrNotFound)
	}

	if c.Method() != fiber.MethodPost {
		consumption, err := h.consumptionService.Get(id, currentUser(c))
		if err != nil {
			return fail(c, err)
		}
		products, err := h.productService.List()
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{
			"consumption": consumption,
			"products":    products,
			"messages":    flash.Drain(c),
		})
	}

	var input service.ConsumptionInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid form body"})
	}

	if _, err := h.consumptionService.Update(id, input, currentUser(c)); err != nil {
		return fail(c, err)
	}

	flash.Success(c, "Consumption updated successfully")
	return c.Redirect(home, fiber.StatusFound)
}

// delete removes the row on POST; any other method answers the bare
// acknowledgment without touching the row.
func (h *ConsumptionHandler) delete(c *fiber.Ctx, home string) error {
	if c.Method() != fiber.MethodPost {
		return c.JSON(fiber.Map{"success": true})
	}

	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, service.ErrNotFound)
	}

	if err := h.consumptionService.Delete(id, currentUser(c)); err != nil {
		return fail(c, err)
	}

	flash.Success(c, "Consumption deleted successfully")
	return c.Redirect(home, fiber.StatusFound)
}
