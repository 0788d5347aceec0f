package service

import (
	"strings"
	"testing"

	"go-bms-api/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	// One shared in-memory database per test; the DSN must be unique or
	// parallel tests would see each other's rows.
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// sqlite does not enforce FK cascades unless asked
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Product{}, &model.Sale{}, &model.Consumption{}))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string, isStaff bool) *model.User {
	t.Helper()
	user := &model.User{Username: username, IsStaff: isStaff}
	require.NoError(t, user.SetPassword("correct-horse-battery"))
	require.NoError(t, db.Create(user).Error)
	return user
}

func createProduct(t *testing.T, db *gorm.DB, owner *model.User, name string, quantity int, invested string) *model.Product {
	t.Helper()
	product := &model.Product{
		Name:          name,
		Quantity:      quantity,
		TotalInvested: dec(invested),
		CreatedByID:   owner.ID,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func createSale(t *testing.T, db *gorm.DB, product *model.Product, owner *model.User, quantitySold int, amount string) *model.Sale {
	t.Helper()
	sale := &model.Sale{
		ProductID:    product.ID,
		QuantitySold: quantitySold,
		Amount:       dec(amount),
		CreatedByID:  owner.ID,
	}
	require.NoError(t, db.Create(sale).Error)
	return sale
}

func createConsumption(t *testing.T, db *gorm.DB, product *model.Product, owner *model.User, amountUsed string) *model.Consumption {
	t.Helper()
	consumption := &model.Consumption{
		ProductID:   product.ID,
		AmountUsed:  dec(amountUsed),
		CreatedByID: owner.ID,
	}
	require.NoError(t, db.Create(consumption).Error)
	return consumption
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
