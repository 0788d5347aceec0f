package repository

import (
	"go-bms-api/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ConsumptionRepository interface {
	Create(consumption *model.Consumption) error
	FindAll() ([]model.Consumption, error)
	FindByUser(userID uuid.UUID) ([]model.Consumption, error)
	FindByCreatorStaff(isStaff bool) ([]model.Consumption, error)
	FindByID(id uuid.UUID) (*model.Consumption, error)
	Update(consumption *model.Consumption) error
	Delete(id uuid.UUID) error
	SumAmountUsedByUser(userID uuid.UUID) (decimal.Decimal, error)
	SumAmountUsedByCreatorStaff(isStaff bool) (decimal.Decimal, error)
}

type consumptionRepo struct {
	db *gorm.DB
}

func NewConsumptionRepo(db *gorm.DB) ConsumptionRepository {
	return &consumptionRepo{db}
}

func (r *consumptionRepo) Create(consumption *model.Consumption) error {
	return r.db.Create(consumption).Error
}

func (r *consumptionRepo) FindAll() ([]model.Consumption, error) {
	var consumptions []model.Consumption
	err := r.db.Preload("Product").Preload("CreatedBy").
		Order("created_at DESC").Find(&consumptions).Error
	return consumptions, err
}

func (r *consumptionRepo) FindByUser(userID uuid.UUID) ([]model.Consumption, error) {
	var consumptions []model.Consumption
	err := r.db.Preload("Product").Where("created_by_id = ?", userID).
		Order("created_at DESC").Find(&consumptions).Error
	return consumptions, err
}

// FindByCreatorStaff partitions consumption rows by the role of their
// creator, for the admin summary.
func (r *consumptionRepo) FindByCreatorStaff(isStaff bool) ([]model.Consumption, error) {
	var consumptions []model.Consumption
	err := r.db.Preload("Product").Preload("CreatedBy").
		Joins("JOIN users ON users.id = consumptions.created_by_id").
		Where("users.is_staff = ?", isStaff).
		Order("consumptions.created_at DESC").
		Find(&consumptions).Error
	return consumptions, err
}

func (r *consumptionRepo) FindByID(id uuid.UUID) (*model.Consumption, error) {
	var consumption model.Consumption
	err := r.db.Preload("Product").First(&consumption, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &consumption, nil
}

func (r *consumptionRepo) Update(consumption *model.Consumption) error {
	return r.db.Save(consumption).Error
}

func (r *consumptionRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Consumption{}, "id = ?", id).Error
}

func (r *consumptionRepo) SumAmountUsedByUser(userID uuid.UUID) (decimal.Decimal, error) {
	var values []decimal.Decimal
	if err := r.db.Model(&model.Consumption{}).Where("created_by_id = ?", userID).
		Pluck("amount_used", &values).Error; err != nil {
		return decimal.Zero, err
	}
	return sumDecimals(values), nil
}

func (r *consumptionRepo) SumAmountUsedByCreatorStaff(isStaff bool) (decimal.Decimal, error) {
	var values []decimal.Decimal
	if err := r.db.Model(&model.Consumption{}).
		Joins("JOIN users ON users.id = consumptions.created_by_id").
		Where("users.is_staff = ?", isStaff).
		Pluck("consumptions.amount_used", &values).Error; err != nil {
		return decimal.Zero, err
	}
	return sumDecimals(values), nil
}
