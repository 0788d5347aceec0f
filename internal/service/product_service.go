package service

import (
	"fmt"

	"go-bms-api/internal/model"
	"go-bms-api/internal/repository"
	"go-bms-api/internal/ws"
	"go-bms-api/pkg/validator"

	"github.com/google/uuid"
)

// ProductInput carries raw form fields; coercion happens here so every
// bad field yields its own validation message.
type ProductInput struct {
	Name          string `json:"name" form:"name"`
	Quantity      string `json:"quantity" form:"quantity"`
	TotalInvested string `json:"total_invested" form:"total_invested"`
	Description   string `json:"description" form:"description"`
}

type ProductService interface {
	List() ([]model.Product, error)
	Get(id uuid.UUID) (*model.Product, error)
	Create(input ProductInput, actor *model.User) (*model.Product, error)
	Update(id uuid.UUID, input ProductInput, actor *model.User) (*model.Product, error)
	Delete(id uuid.UUID, actor *model.User) error
}

type productService struct {
	productRepo repository.ProductRepository
	wsHub       *ws.Hub
}

func NewProductService(productRepo repository.ProductRepository, hub *ws.Hub) ProductService {
	return &productService{
		productRepo: productRepo,
		wsHub:       hub,
	}
}

func (s *productService) List() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *productService) Get(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return product, nil
}

func (s *productService) Create(input ProductInput, actor *model.User) (*model.Product, error) {
	product, errs := s.coerce(input)
	if len(errs) > 0 {
		return nil, errs
	}
	product.CreatedByID = actor.ID

	if verrs := validator.ValidateStruct(product); len(verrs) > 0 {
		var msgs ValidationErrors
		for _, v := range verrs {
			msgs = append(msgs, v.Message())
		}
		return nil, msgs
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	s.wsHub.Notify("product", "created", actor.Username,
		fmt.Sprintf("%s added product '%s'", actor.Username, product.Name))

	return product, nil
}

// Update overwrites every mutable field; there is no partial patch.
// The creator reference stays with the original author.
func (s *productService) Update(id uuid.UUID, input ProductInput, actor *model.User) (*model.Product, error) {
	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	parsed, errs := s.coerce(input)
	if len(errs) > 0 {
		return nil, errs
	}

	existing.Name = parsed.Name
	existing.Quantity = parsed.Quantity
	existing.TotalInvested = parsed.TotalInvested
	existing.Description = parsed.Description

	if verrs := validator.ValidateStruct(existing); len(verrs) > 0 {
		var msgs ValidationErrors
		for _, v := range verrs {
			msgs = append(msgs, v.Message())
		}
		return nil, msgs
	}

	if err := s.productRepo.Update(existing); err != nil {
		return nil, err
	}

	s.wsHub.Notify("product", "updated", actor.Username,
		fmt.Sprintf("%s updated product '%s'", actor.Username, existing.Name))

	return existing, nil
}

func (s *productService) Delete(id uuid.UUID, actor *model.User) error {
	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		return ErrNotFound
	}

	if err := s.productRepo.Delete(existing.ID); err != nil {
		return err
	}

	s.wsHub.Notify("product", "deleted", actor.Username,
		fmt.Sprintf("%s deleted product '%s'", actor.Username, existing.Name))

	return nil
}

func (s *productService) coerce(input ProductInput) (*model.Product, ValidationErrors) {
	var errs ValidationErrors

	if input.Name == "" {
		errs = append(errs, "name: this field is required")
	}
	quantity := coerceInt("quantity", input.Quantity, &errs)
	invested := coerceDecimal("total_invested", input.TotalInvested, &errs)

	if len(errs) > 0 {
		return nil, errs
	}

	return &model.Product{
		Name:          input.Name,
		Quantity:      quantity,
		TotalInvested: invested,
		Description:   input.Description,
	}, nil
}
