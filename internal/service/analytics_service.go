package service

import (
	"go-bms-api/internal/model"
	"go-bms-api/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductAnalysis is the per-product slice of the report. Remaining
// quantity is derived, never stored: original quantity minus units sold.
// It is intentionally not clamped at zero, matching the books even when
// more units were sold than stocked.
type ProductAnalysis struct {
	Product           model.Product   `json:"product"`
	TotalSales        decimal.Decimal `json:"total_sales"`
	QuantitySold      int64           `json:"quantity_sold"`
	RemainingQuantity int64           `json:"remaining_quantity"`
	Profit            decimal.Decimal `json:"profit"`
}

// AnalysisReport is the full admin report, recomputed from live rows on
// every call.
type AnalysisReport struct {
	TotalSales    decimal.Decimal   `json:"total_sales"`
	TotalInvested decimal.Decimal   `json:"total_invested"`
	Profit        decimal.Decimal   `json:"profit"`
	Products      []ProductAnalysis `json:"product_analysis"`
	Sales         []model.Sale      `json:"sales"`

	TotalStaffConsumption decimal.Decimal `json:"total_admin_consumption"`
	TotalUserConsumption  decimal.Decimal `json:"total_user_consumption"`
	TotalConsumption      decimal.Decimal `json:"total_consumption"`
}

type AnalyticsService interface {
	Analysis() (*AnalysisReport, error)
}

type analyticsService struct {
	productRepo     repository.ProductRepository
	saleRepo        repository.SaleRepository
	consumptionRepo repository.ConsumptionRepository
}

func NewAnalyticsService(productRepo repository.ProductRepository, saleRepo repository.SaleRepository, consumptionRepo repository.ConsumptionRepository) AnalyticsService {
	return &analyticsService{
		productRepo:     productRepo,
		saleRepo:        saleRepo,
		consumptionRepo: consumptionRepo,
	}
}

func (s *analyticsService) Analysis() (*AnalysisReport, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}
	sales, err := s.saleRepo.FindAll()
	if err != nil {
		return nil, err
	}

	totalSales, err := s.saleRepo.SumAmount()
	if err != nil {
		return nil, err
	}
	totalInvested, err := s.productRepo.SumInvested()
	if err != nil {
		return nil, err
	}

	analysis := make([]ProductAnalysis, 0, len(products))
	for _, product := range products {
		productSales, err := s.saleRepo.SumAmountByProduct(product.ID)
		if err != nil {
			return nil, err
		}
		quantitySold, err := s.saleRepo.SumQuantityByProduct(product.ID)
		if err != nil {
			return nil, err
		}

		analysis = append(analysis, ProductAnalysis{
			Product:           product,
			TotalSales:        productSales,
			QuantitySold:      quantitySold,
			RemainingQuantity: int64(product.Quantity) - quantitySold,
			Profit:            productSales.Sub(product.TotalInvested),
		})
	}

	totalStaff, err := s.consumptionRepo.SumAmountUsedByCreatorStaff(true)
	if err != nil {
		return nil, err
	}
	totalUser, err := s.consumptionRepo.SumAmountUsedByCreatorStaff(false)
	if err != nil {
		return nil, err
	}

	return &AnalysisReport{
		TotalSales:            totalSales,
		TotalInvested:         totalInvested,
		Profit:                totalSales.Sub(totalInvested),
		Products:              analysis,
		Sales:                 sales,
		TotalStaffConsumption: totalStaff,
		TotalUserConsumption:  totalUser,
		TotalConsumption:      totalStaff.Add(totalUser),
	}, nil
}
