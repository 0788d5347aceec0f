package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Consumption records internal usage of product quantity, distinct from a
// sale. Staff and regular users both record consumption; the admin summary
// partitions rows by whether the creator is staff.
type Consumption struct {
	BaseModel
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	Product     *Product        `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty" validate:"-"`
	AmountUsed  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount_used"`
	Description string          `gorm:"type:text" json:"description"`

	CreatedByID uuid.UUID `gorm:"type:uuid;not null;index" json:"created_by_id"`
	CreatedBy   *User     `gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE" json:"created_by,omitempty"`
}
