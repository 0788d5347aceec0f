package model

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User represents an account in the system. IsStaff is the single role
// axis: staff manage products, all consumption rows and analytics; regular
// users manage only their own sales and consumption.
type User struct {
	BaseModel
	Username string `gorm:"type:varchar(150);uniqueIndex;not null" json:"username" validate:"required"`
	Password string `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	IsStaff  bool   `gorm:"default:false" json:"is_staff"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// CanAccess reports whether the user may read or mutate a row created by
// createdByID. Staff reach every row; regular users only their own. Every
// ownership-scoped lookup goes through this one predicate.
func (u *User) CanAccess(createdByID uuid.UUID) bool {
	return u.IsStaff || u.ID == createdByID
}

// UserResponse is used for API responses (without sensitive data)
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	IsStaff  bool      `json:"is_staff"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		IsStaff:  u.IsStaff,
	}
}
