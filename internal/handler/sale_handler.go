package handler

import (
	"go-bms-api/internal/middleware"
	"go-bms-api/internal/service"
	"go-bms-api/pkg/flash"

	"github.com/gofiber/fiber/v2"
)

type SaleHandler struct {
	saleService    service.SaleService
	productService service.ProductService
}

func NewSaleHandler(saleService service.SaleService, productService service.ProductService) *SaleHandler {
	return &SaleHandler{
		saleService:    saleService,
		productService: productService,
	}
}

// Sales lists the caller's own sales with their total, plus the product
// catalogue for the entry form
// GET /sales
func (h *SaleHandler) Sales(c *fiber.Ctx) error {
	user := currentUser(c)

	sales, total, err := h.saleService.ListFor(user)
	if err != nil {
		return fail(c, err)
	}
	products, err := h.productService.List()
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"products":    products,
		"sales":       sales,
		"total_sales": total,
		"messages":    flash.Drain(c),
	})
}

// AddSale records a sale for the caller
// GET|POST /sales/add
func (h *SaleHandler) AddSale(c *fiber.Ctx) error {
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

	var input service.SaleInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid form body"})
	}

	if _, err := h.saleService.Create(input, currentUser(c)); err != nil {
		return fail(c, err)
	}

	flash.Success(c, "Sale recorded successfully")
	return c.Redirect(middleware.UserHome, fiber.StatusFound)
}

// UpdateSale edits one of the caller's own sales
// GET|POST /sales/update/:id
func (h *SaleHandler) UpdateSale(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, service.ErrNotFound)
	}

	if c.Method() != fiber.MethodPost {
		sale, err := h.saleService.Get(id, currentUser(c))
		if err != nil {
			return fail(c, err)
		}
		products, err := h.productService.List()
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{
			"sale":     sale,
			"products": products,
			"messages": flash.Drain(c),
		})
	}

	var input service.SaleInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid form body"})
	}

	if _, err := h.saleService.Update(id, input, currentUser(c)); err != nil {
		return fail(c, err)
	}

	flash.Success(c, "Sale updated successfully")
	return c.Redirect(middleware.UserHome, fiber.StatusFound)
}

// DeleteSale removes one of the caller's own sales on POST; any other
// method answers the bare acknowledgment without touching the row.
func (h *SaleHandler) DeleteSale(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return c.JSON(fiber.Map{"success": true})
	}

	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, service.ErrNotFound)
	}

	if err := h.saleService.Delete(id, currentUser(c)); err != nil {
		return fail(c, err)
	}

	flash.Success(c, "Sale deleted successfully")
	return c.Redirect(middleware.UserHome, fiber.StatusFound)
}
