package service

import (
	"testing"

	"go-bms-api/internal/model"
	"go-bms-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSaleService(db *gorm.DB) SaleService {
	return NewSaleService(repository.NewSaleRepo(db), repository.NewProductRepo(db), nil)
}

func TestSaleCreateStampsCreator(t *testing.T) {
	db := setupDB(t)
	staff := createUser(t, db, "admin", true)
	user := createUser(t, db, "mary", false)
	product := createProduct(t, db, staff, "coffee", 100, "500.00")
	svc := newSaleService(db)

	sale, err := svc.Create(SaleInput{
		Product:      product.ID.String(),
		QuantitySold: "30",
		Amount:       "450.00",
		Description:  "bulk order",
	}, user)
	require.NoError(t, err)

	assert.Equal(t, user.ID, sale.CreatedByID)
	assert.Equal(t, 30, sale.QuantitySold)
	assert.True(t, sale.Amount.Equal(dec("450.00")))
	assert.False(t, sale.CreatedAt.IsZero())
}

func TestSaleCreateValidationOneMessagePerField(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "mary", false)
	svc := newSaleService(db)

	_, err := svc.Create(SaleInput{
		Product:      "not-a-uuid",
		QuantitySold: "many",
		Amount:       "lots",
	}, user)
	require.Error(t, err)

	verrs, ok := AsValidation(err)
	require.True(t, ok)
	assert.Len(t, verrs, 3)
}

func TestSaleCreateRejectsNegativeQuantity(t *testing.T) {
	db := setupDB(t)
	staff := createUser(t, db, "admin", true)
	user := createUser(t, db, "mary", false)
	product := createProduct(t, db, staff, "coffee", 100, "500.00")
	svc := newSaleService(db)

	_, err := svc.Create(SaleInput{
		Product:      product.ID.String(),
		QuantitySold: "-3",
		Amount:       "10.00",
	}, user)

	verrs, ok := AsValidation(err)
	require.True(t, ok)
	require.Len(t, verrs, 1)
	assert.Contains(t, verrs[0], "quantity_sold")
}

func TestSaleCreateMissingProductIsNotFound(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "mary", false)
	svc := newSaleService(db)

	_, err := svc.Create(SaleInput{
		Product:      "a2a84b6e-7f10-4aee-9be2-0b42c6da12f6",
		QuantitySold: "1",
		Amount:       "5.00",
	}, user)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaleOwnershipScope(t *testing.T) {
	db := setupDB(t)
	staff := createUser(t, db, "admin", true)
	alice := createUser(t, db, "alice", false)
	bob := createUser(t, db, "bob", false)
	product := createProduct(t, db, staff, "coffee", 100, "500.00")
	sale := createSale(t, db, product, alice, 3, "30.00")
	svc := newSaleService(db)

	// Bob cannot see, change or remove Alice's sale
	_, err := svc.Get(sale.ID, bob)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(sale.ID, SaleInput{
		Product:      product.ID.String(),
		QuantitySold: "99",
		Amount:       "999.00",
	}, bob)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(sale.ID, bob)
	assert.ErrorIs(t, err, ErrNotFound)

	// The row is unchanged
	var stored model.Sale
	require.NoError(t, db.First(&stored, "id = ?", sale.ID).Error)
	assert.Equal(t, 3, stored.QuantitySold)
	assert.True(t, stored.Amount.Equal(dec("30.00")))
}

func TestSaleUpdateOverwritesAllFields(t *testing.T) {
	db := setupDB(t)
	staff := createUser(t, db, "admin", true)
	alice := createUser(t, db, "alice", false)
	p1 := createProduct(t, db, staff, "coffee", 100, "500.00")
	p2 := createProduct(t, db, staff, "tea", 50, "200.00")
	sale := createSale(t, db, p1, alice, 3, "30.00")
	svc := newSaleService(db)

	updated, err := svc.Update(sale.ID, SaleInput{
		Product:      p2.ID.String(),
		QuantitySold: "5",
		Amount:       "55.50",
		Description:  "corrected",
	}, alice)
	require.NoError(t, err)

	assert.Equal(t, p2.ID, updated.ProductID)
	assert.Equal(t, 5, updated.QuantitySold)
	assert.True(t, updated.Amount.Equal(dec("55.50")))
	assert.Equal(t, "corrected", updated.Description)
	// creator never changes on update
	assert.Equal(t, alice.ID, updated.CreatedByID)
}

func TestSaleDeleteOwnRow(t *testing.T) {
	db := setupDB(t)
	staff := createUser(t, db, "admin", true)
	alice := createUser(t, db, "alice", false)
	product := createProduct(t, db, staff, "coffee", 100, "500.00")
	sale := createSale(t, db, product, alice, 3, "30.00")
	svc := newSaleService(db)

	require.NoError(t, svc.Delete(sale.ID, alice))

	var count int64
	db.Model(&model.Sale{}).Where("id = ?", sale.ID).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestSaleListForReturnsOwnRowsAndTotal(t *testing.T) {
	db := setupDB(t)
	staff := createUser(t, db, "admin", true)
	alice := createUser(t, db, "alice", false)
	bob := createUser(t, db, "bob", false)
	product := createProduct(t, db, staff, "coffee", 100, "500.00")
	createSale(t, db, product, alice, 3, "30.00")
	createSale(t, db, product, alice, 2, "20.50")
	createSale(t, db, product, bob, 9, "90.00")
	svc := newSaleService(db)

	sales, total, err := svc.ListFor(alice)
	require.NoError(t, err)
	assert.Len(t, sales, 2)
	assert.True(t, total.Equal(dec("50.50")))
}
