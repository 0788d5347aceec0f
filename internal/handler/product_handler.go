package handler

import (
	"go-bms-api/internal/middleware"
	"go-bms-api/internal/service"
	"go-bms-api/pkg/flash"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Dashboard lists all products for staff
// GET /admin/dashboard
func (h *ProductHandler) Dashboard(c *fiber.Ctx) error {
	products, err := h.productService.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"products": products,
		"messages": flash.Drain(c),
	})
}

// AddProduct renders the form on GET and creates on POST
// GET|POST /admin/product/add
func (h *ProductHandler) AddProduct(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return c.JSON(fiber.Map{"messages": flash.Drain(c)})
	}

	var input service.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid form body"})
	}

	if _, err := h.productService.Create(input, currentUser(c)); err != nil {
		return fail(c, err)
	}

	flash.Success(c, "Product added successfully")
	return c.Redirect(middleware.AdminHome, fiber.StatusFound)
}

// UpdateProduct renders current values on GET and overwrites on POST
// GET|POST /admin/product/update/:id
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, service.ErrNotFound)
	}

	if c.Method() != fiber.MethodPost {
		product, err := h.productService.Get(id)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{
			"product":  product,
			"messages": flash.Drain(c),
		})
	}

	var input service.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid form body"})
	}

	if _, err := h.productService.Update(id, input, currentUser(c)); err != nil {
		return fail(c, err)
	}

	flash.Success(c, "Product updated successfully")
	return c.Redirect(middleware.AdminHome, fiber.StatusFound)
}

// DeleteProduct removes the product on POST. Any other method answers a
// bare success acknowledgment without touching the row; clients depend on
// this exact behavior.
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return c.JSON(fiber.Map{"success": true})
	}

	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return fail(c, service.ErrNotFound)
	}

	if err := h.productService.Delete(id, currentUser(c)); err != nil {
		return fail(c, err)
	}

	flash.Success(c, "Product deleted successfully")
	return c.Redirect(middleware.AdminHome, fiber.StatusFound)
}
