package service

import (
	"fmt"

	"go-bms-api/internal/model"
	"go-bms-api/internal/repository"
	"go-bms-api/internal/ws"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConsumptionInput carries raw form fields for recording consumption.
type ConsumptionInput struct {
	Product     string `json:"product" form:"product"`
	AmountUsed  string `json:"amount_used" form:"amount_used"`
	Description string `json:"description" form:"description"`
}

// ConsumptionSummary is the admin view: all rows partitioned by whether
// their creator is staff, with per-partition totals and the grand total.
type ConsumptionSummary struct {
	StaffRows  []model.Consumption `json:"staff_consumptions"`
	UserRows   []model.Consumption `json:"user_consumptions"`
	TotalStaff decimal.Decimal     `json:"total_staff_consumption"`
	TotalUser  decimal.Decimal     `json:"total_user_consumption"`
	Total      decimal.Decimal     `json:"total_consumption"`
}

type ConsumptionService interface {
	ListFor(user *model.User) ([]model.Consumption, decimal.Decimal, error)
	AdminSummary() (*ConsumptionSummary, error)
	Get(id uuid.UUID, actor *model.User) (*model.Consumption, error)
	Create(input ConsumptionInput, actor *model.User) (*model.Consumption, error)
	Update(id uuid.UUID, input ConsumptionInput, actor *model.User) (*model.Consumption, error)
	Delete(id uuid.UUID, actor *model.User) error
}

type consumptionService struct {
	consumptionRepo repository.ConsumptionRepository
	productRepo     repository.ProductRepository
	wsHub           *ws.Hub
}

func NewConsumptionService(consumptionRepo repository.ConsumptionRepository, productRepo repository.ProductRepository, hub *ws.Hub) ConsumptionService {
	return &consumptionService{
		consumptionRepo: consumptionRepo,
		productRepo:     productRepo,
		wsHub:           hub,
	}
}

// ListFor returns the user's own consumption rows and their total.
func (s *consumptionService) ListFor(user *model.User) ([]model.Consumption, decimal.Decimal, error) {
	consumptions, err := s.consumptionRepo.FindByUser(user.ID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	total, err := s.consumptionRepo.SumAmountUsedByUser(user.ID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return consumptions, total, nil
}

// AdminSummary recomputes the staff/non-staff partition from live rows on
// every call.
func (s *consumptionService) AdminSummary() (*ConsumptionSummary, error) {
	staffRows, err := s.consumptionRepo.FindByCreatorStaff(true)
	if err != nil {
		return nil, err
	}
	userRows, err := s.consumptionRepo.FindByCreatorStaff(false)
	if err != nil {
		return nil, err
	}
	totalStaff, err := s.consumptionRepo.SumAmountUsedByCreatorStaff(true)
	if err != nil {
		return nil, err
	}
	totalUser, err := s.consumptionRepo.SumAmountUsedByCreatorStaff(false)
	if err != nil {
		return nil, err
	}

	return &ConsumptionSummary{
		StaffRows:  staffRows,
		UserRows:   userRows,
		TotalStaff: totalStaff,
		TotalUser:  totalUser,
		Total:      totalStaff.Add(totalUser),
	}, nil
}

// Get looks a consumption row up within the actor's ownership scope.
// Staff reach any row; regular users only their own.
func (s *consumptionService) Get(id uuid.UUID, actor *model.User) (*model.Consumption, error) {
	consumption, err := s.consumptionRepo.FindByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if !actor.CanAccess(consumption.CreatedByID) {
		return nil, ErrNotFound
	}
	return consumption, nil
}

func (s *consumptionService) Create(input ConsumptionInput, actor *model.User) (*model.Consumption, error) {
	consumption, err := s.coerce(input)
	if err != nil {
		return nil, err
	}
	consumption.CreatedByID = actor.ID

	if err := s.consumptionRepo.Create(consumption); err != nil {
		return nil, err
	}

	s.wsHub.Notify("consumption", "created", actor.Username,
		fmt.Sprintf("%s recorded consumption of %s units", actor.Username, consumption.AmountUsed))

	return consumption, nil
}

func (s *consumptionService) Update(id uuid.UUID, input ConsumptionInput, actor *model.User) (*model.Consumption, error) {
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
	existing.AmountUsed = parsed.AmountUsed
	existing.Description = parsed.Description

	if err := s.consumptionRepo.Update(existing); err != nil {
		return nil, err
	}

	s.wsHub.Notify("consumption", "updated", actor.Username,
		fmt.Sprintf("%s updated a consumption record", actor.Username))

	return existing, nil
}

func (s *consumptionService) Delete(id uuid.UUID, actor *model.User) error {
	existing, err := s.Get(id, actor)
	if err != nil {
		return err
	}

	if err := s.consumptionRepo.Delete(existing.ID); err != nil {
		return err
	}

	s.wsHub.Notify("consumption", "deleted", actor.Username,
		fmt.Sprintf("%s deleted a consumption record", actor.Username))

	return nil
}

func (s *consumptionService) coerce(input ConsumptionInput) (*model.Consumption, error) {
	var errs ValidationErrors

	productID := coerceUUID("product", input.Product, &errs)
	amountUsed := coerceDecimal("amount_used", input.AmountUsed, &errs)

	if len(errs) > 0 {
		return nil, errs
	}

	if _, err := s.productRepo.FindByID(productID); err != nil {
		return nil, ErrNotFound
	}

	return &model.Consumption{
		ProductID:   productID,
		AmountUsed:  amountUsed,
		Description: input.Description,
	}, nil
}
