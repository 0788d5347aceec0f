package repository

import (
	"go-bms-api/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SaleRepository interface {
	Create(sale *model.Sale) error
	FindAll() ([]model.Sale, error)
	FindByUser(userID uuid.UUID) ([]model.Sale, error)
	FindByID(id uuid.UUID) (*model.Sale, error)
	Update(sale *model.Sale) error
	Delete(id uuid.UUID) error
	SumAmount() (decimal.Decimal, error)
	SumAmountByUser(userID uuid.UUID) (decimal.Decimal, error)
	SumAmountByProduct(productID uuid.UUID) (decimal.Decimal, error)
	SumQuantityByProduct(productID uuid.UUID) (int64, error)
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

func (r *saleRepo) Create(sale *model.Sale) error {
	return r.db.Create(sale).Error
}

func (r *saleRepo) FindAll() ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.Preload("Product").Preload("CreatedBy").Order("created_at DESC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) FindByUser(userID uuid.UUID) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.Preload("Product").Where("created_by_id = ?", userID).
		Order("created_at DESC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) FindByID(id uuid.UUID) (*model.Sale, error) {
	var sale model.Sale
	err := r.db.Preload("Product").First(&sale, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepo) Update(sale *model.Sale) error {
	return r.db.Save(sale).Error
}

func (r *saleRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Sale{}, "id = ?", id).Error
}

func (r *saleRepo) SumAmount() (decimal.Decimal, error) {
	var values []decimal.Decimal
	if err := r.db.Model(&model.Sale{}).Pluck("amount", &values).Error; err != nil {
		return decimal.Zero, err
	}
	return sumDecimals(values), nil
}

func (r *saleRepo) SumAmountByUser(userID uuid.UUID) (decimal.Decimal, error) {
	var values []decimal.Decimal
	if err := r.db.Model(&model.Sale{}).Where("created_by_id = ?", userID).
		Pluck("amount", &values).Error; err != nil {
		return decimal.Zero, err
	}
	return sumDecimals(values), nil
}

func (r *saleRepo) SumAmountByProduct(productID uuid.UUID) (decimal.Decimal, error) {
	var values []decimal.Decimal
	if err := r.db.Model(&model.Sale{}).Where("product_id = ?", productID).
		Pluck("amount", &values).Error; err != nil {
		return decimal.Zero, err
	}
	return sumDecimals(values), nil
}

func (r *saleRepo) SumQuantityByProduct(productID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.Model(&model.Sale{}).Where("product_id = ?", productID).
		Select("COALESCE(SUM(quantity_sold), 0)").Scan(&total).Error
	return total, err
}
