package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale records revenue against a product. Amount is entered manually and
// is not derived from any unit price.
type Sale struct {
	BaseModel
	ProductID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	Product      *Product        `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty" validate:"-"`
	QuantitySold int             `gorm:"not null" json:"quantity_sold" validate:"gte=0"`
	Amount       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Description  string          `gorm:"type:text" json:"description"`

	CreatedByID uuid.UUID `gorm:"type:uuid;not null;index" json:"created_by_id"`
	CreatedBy   *User     `gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE" json:"created_by,omitempty"`
}
