package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is an inventory item recorded by staff. Quantity and
// TotalInvested are fixed at creation/update time; sales and consumption
// never decrement them. Remaining quantity is derived in analytics.
type Product struct {
	BaseModel
	Name          string          `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	Quantity      int             `gorm:"not null" json:"quantity" validate:"gte=0"`
	TotalInvested decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_invested"`
	Description   string          `gorm:"type:text" json:"description"`

	CreatedByID uuid.UUID `gorm:"type:uuid;not null;index" json:"created_by_id"`
	CreatedBy   *User     `gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE" json:"created_by,omitempty"`

	// Dependent rows go with the product
	Sales        []Sale        `gorm:"constraint:OnDelete:CASCADE" json:"sales,omitempty"`
	Consumptions []Consumption `gorm:"constraint:OnDelete:CASCADE" json:"consumptions,omitempty"`
}
