package service

import (
	"fmt"

	"go-bms-api/internal/model"
	"go-bms-api/internal/repository"
	"go-bms-api/internal/ws"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleInput carries raw form fields for recording a sale.
type SaleInput struct {
	Product      string `json:"product" form:"product"`
	QuantitySold string `json:"quantity_sold" form:"quantity_sold"`
	Amount       string `json:"amount" form:"amount"`
	Description  string `json:"description" form:"description"`
}

type SaleService interface {
	ListFor(user *model.User) ([]model.Sale, decimal.Decimal, error)
	Get(id uuid.UUID, actor *model.User) (*model.Sale, error)
	Create(input SaleInput, actor *model.User) (*model.Sale, error)
	Update(id uuid.UUID, input SaleInput, actor *model.User) (*model.Sale, error)
	Delete(id uuid.UUID, actor *model.User) error
}

type saleService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	wsHub       *ws.Hub
}

func NewSaleService(saleRepo repository.SaleRepository, productRepo repository.ProductRepository, hub *ws.Hub) SaleService {
	return &saleService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		wsHub:       hub,
	}
}

// ListFor returns the user's own sales together with their total revenue.
func (s *saleService) ListFor(user *model.User) ([]model.Sale, decimal.Decimal, error) {
	sales, err := s.saleRepo.FindByUser(user.ID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	total, err := s.saleRepo.SumAmountByUser(user.ID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return sales, total, nil
}

// Get looks a sale up within the actor's ownership scope. A row that
// exists but belongs to someone else is reported as not found.
func (s *saleService) Get(id uuid.UUID, actor *model.User) (*model.Sale, error) {
	sale, err := s.saleRepo.FindByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if !actor.CanAccess(sale.CreatedByID) {
		return nil, ErrNotFound
	}
	return sale, nil
}

func (s *saleService) Create(input SaleInput, actor *model.User) (*model.Sale, error) {
	sale, err := s.coerce(input)
	if err != nil {
		return nil, err
	}
	sale.CreatedByID = actor.ID

	if err := s.saleRepo.Create(sale); err != nil {
		return nil, err
	}

	s.wsHub.Notify("sale", "created", actor.Username,
		fmt.Sprintf("%s recorded a sale of %d units", actor.Username, sale.QuantitySold))

	return sale, nil
}

func (s *saleService) Update(id uuid.UUID, input SaleInput, actor *model.User) (*model.Sale, error) {
	existing, err := s.Get(id, actor)
	if err != nil {
		return nil, err
	}

	parsed, err := s.coerce(input)
	if err != nil {
		return nil, err
	}

	existing.ProductID = parsed.ProductID
	existing.Product = nil
	existing.QuantitySold = parsed.QuantitySold
	existing.Amount = parsed.Amount
	existing.Description = parsed.Description

	if err := s.saleRepo.Update(existing); err != nil {
		return nil, err
	}

	s.wsHub.Notify("sale", "updated", actor.Username,
		fmt.Sprintf("%s updated a sale", actor.Username))

	return existing, nil
}

func (s *saleService) Delete(id uuid.UUID, actor *model.User) error {
	existing, err := s.Get(id, actor)
	if err != nil {
		return err
	}

	if err := s.saleRepo.Delete(existing.ID); err != nil {
		return err
	}

	s.wsHub.Notify("sale", "deleted", actor.Username,
		fmt.Sprintf("%s deleted a sale", actor.Username))

	return nil
}

// coerce validates the form fields and resolves the product reference.
// A well-formed reference to a product that does not exist is not a
// validation failure but a lookup failure.
func (s *saleService) coerce(input SaleInput) (*model.Sale, error) {
	var errs ValidationErrors

	productID := coerceUUID("product", input.Product, &errs)
	quantity := coerceInt("quantity_sold", input.QuantitySold, &errs)
	amount := coerceDecimal("amount", input.Amount, &errs)

	if len(errs) > 0 {
		return nil, errs
	}

	if _, err := s.productRepo.FindByID(productID); err != nil {
		return nil, ErrNotFound
	}

	return &model.Sale{
		ProductID:    productID,
		QuantitySold: quantity,
		Amount:       amount,
		Description:  input.Description,
	}, nil
}
