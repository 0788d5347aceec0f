package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndCheckPassword(t *testing.T) {
	user := &User{Username: "mary"}
	require.NoError(t, user.SetPassword("super-secret-pass"))

	assert.NotEqual(t, "super-secret-pass", user.Password)
	assert.True(t, user.CheckPassword("super-secret-pass"))
	assert.False(t, user.CheckPassword("wrong"))
}

func TestCanAccess(t *testing.T) {
	staff := &User{BaseModel: BaseModel{ID: uuid.New()}, IsStaff: true}
	owner := &User{BaseModel: BaseModel{ID: uuid.New()}}
	stranger := &User{BaseModel: BaseModel{ID: uuid.New()}}

	rowOwner := owner.ID

	assert.True(t, staff.CanAccess(rowOwner), "staff reach every row")
	assert.True(t, owner.CanAccess(rowOwner), "creators reach their own rows")
	assert.False(t, stranger.CanAccess(rowOwner), "other users do not")
}

func TestToResponseHidesPassword(t *testing.T) {
	user := &User{Username: "mary", IsStaff: true}
	require.NoError(t, user.SetPassword("super-secret-pass"))

	resp := user.ToResponse()
	assert.Equal(t, "mary", resp.Username)
	assert.True(t, resp.IsStaff)
}
