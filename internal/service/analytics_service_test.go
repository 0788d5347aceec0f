package service

import (
	"testing"

	"go-bms-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAnalyticsService(db *gorm.DB) AnalyticsService {
	return NewAnalyticsService(
		repository.NewProductRepo(db),
		repository.NewSaleRepo(db),
		repository.NewConsumptionRepo(db),
	)
}

func TestAnalysisEmptyStoreYieldsZeros(t *testing.T) {
	db := setupDB(t)
	svc := newAnalyticsService(db)

	report, err := svc.Analysis()
	require.NoError(t, err)

	assert.True(t, report.TotalSales.IsZero())
	assert.True(t, report.TotalInvested.IsZero())
	assert.True(t, report.Profit.IsZero())
	assert.True(t, report.TotalConsumption.IsZero())
	assert.Empty(t, report.Products)
}

func TestAnalysisProductWithoutSalesKeepsQuantity(t *testing.T) {
	db := setupDB(t)
	staff := createUser(t, db, "admin", true)
	createProduct(t, db, staff, "beans", 40, "120.00")
	svc := newAnalyticsService(db)

	report, err := svc.Analysis()
	require.NoError(t, err)

	require.Len(t, report.Products, 1)
	entry := report.Products[0]
	assert.EqualValues(t, 40, entry.RemainingQuantity)
	assert.EqualValues(t, 0, entry.QuantitySold)
	assert.True(t, entry.TotalSales.IsZero())
}

func TestAnalysisScenario(t *testing.T) {
	// Product(quantity=100, total_invested=500.00) with one
	// Sale(quantity_sold=30, amount=450.00): remaining 70, profit -50.00.
	db := setupDB(t)
	staff := createUser(t, db, "admin", true)
	user := createUser(t, db, "mary", false)
	product := createProduct(t, db, staff, "coffee", 100, "500.00")
	createSale(t, db, product, user, 30, "450.00")
	svc := newAnalyticsService(db)

	report, err := svc.Analysis()
	require.NoError(t, err)

	require.Len(t, report.Products, 1)
	entry := report.Products[0]
	assert.EqualValues(t, 30, entry.QuantitySold)
	assert.EqualValues(t, 70, entry.RemainingQuantity)
	assert.True(t, entry.Profit.Equal(dec("-50.00")), "got %s", entry.Profit)

	assert.True(t, report.TotalSales.Equal(dec("450.00")))
	assert.True(t, report.TotalInvested.Equal(dec("500.00")))
	assert.True(t, report.Profit.Equal(dec("-50.00")))
}

func TestAnalysisRemainingQuantityMayGoNegative(t *testing.T) {
	// Oversold products report negative remaining quantity; the figure is
	// not clamped.
	db := setupDB(t)
	staff := createUser(t, db, "admin", true)
	user := createUser(t, db, "mary", false)
	product := createProduct(t, db, staff, "tea", 10, "100.00")
	createSale(t, db, product, user, 8, "80.00")
	createSale(t, db, product, user, 7, "70.00")
	svc := newAnalyticsService(db)

	report, err := svc.Analysis()
	require.NoError(t, err)

	require.Len(t, report.Products, 1)
	assert.EqualValues(t, -5, report.Products[0].RemainingQuantity)
}

func TestAnalysisProfitOverAllRows(t *testing.T) {
	db := setupDB(t)
	staff := createUser(t, db, "admin", true)
	user := createUser(t, db, "mary", false)
	p1 := createProduct(t, db, staff, "coffee", 100, "500.00")
	p2 := createProduct(t, db, staff, "tea", 50, "200.50")
	createSale(t, db, p1, user, 10, "150.25")
	createSale(t, db, p2, user, 5, "99.75")
	svc := newAnalyticsService(db)

	report, err := svc.Analysis()
	require.NoError(t, err)

	// profit == Σ(amount) − Σ(total_invested), exactly
	assert.True(t, report.TotalSales.Equal(dec("250.00")))
	assert.True(t, report.TotalInvested.Equal(dec("700.50")))
	assert.True(t, report.Profit.Equal(dec("-450.50")))
}

func TestAnalysisConsumptionPartition(t *testing.T) {
	db := setupDB(t)
	staff := createUser(t, db, "admin", true)
	user := createUser(t, db, "mary", false)
	product := createProduct(t, db, staff, "flour", 100, "300.00")
	createConsumption(t, db, product, staff, "12.50")
	createConsumption(t, db, product, staff, "7.50")
	createConsumption(t, db, product, user, "5.25")
	svc := newAnalyticsService(db)

	report, err := svc.Analysis()
	require.NoError(t, err)

	assert.True(t, report.TotalStaffConsumption.Equal(dec("20.00")))
	assert.True(t, report.TotalUserConsumption.Equal(dec("5.25")))
	// partition totals always add up to the grand total
	assert.True(t, report.TotalConsumption.Equal(report.TotalStaffConsumption.Add(report.TotalUserConsumption)))
	assert.True(t, report.TotalConsumption.Equal(dec("25.25")))
}

func TestAnalysisIdempotentWithoutWrites(t *testing.T) {
	db := setupDB(t)
	staff := createUser(t, db, "admin", true)
	user := createUser(t, db, "mary", false)
	product := createProduct(t, db, staff, "coffee", 100, "500.00")
	createSale(t, db, product, user, 30, "450.00")
	svc := newAnalyticsService(db)

	first, err := svc.Analysis()
	require.NoError(t, err)
	second, err := svc.Analysis()
	require.NoError(t, err)

	assert.True(t, first.Profit.Equal(second.Profit))
	assert.True(t, first.TotalSales.Equal(second.TotalSales))
	assert.Equal(t, len(first.Products), len(second.Products))
}
