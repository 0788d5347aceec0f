package service

import (
	"testing"

	"go-bms-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (AuthService, repository.UserRepository) {
	db := setupDB(t)
	userRepo := repository.NewUserRepo(db)
	return NewAuthService(userRepo, nil), userRepo
}

func TestSignupCreatesNonStaffUser(t *testing.T) {
	svc, userRepo := newAuthService(t)

	user, err := svc.Signup("mary", "plain-password", "plain-password")
	require.NoError(t, err)
	assert.False(t, user.IsStaff)
	assert.True(t, user.CheckPassword("plain-password"))

	stored, err := userRepo.FindByUsername("mary")
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)
}

func TestSignupValidationOneMessagePerRule(t *testing.T) {
	svc, _ := newAuthService(t)

	// Short, entirely numeric and mismatched at once: three messages
	_, err := svc.Signup("bob", "1234", "5678")
	require.Error(t, err)

	verrs, ok := AsValidation(err)
	require.True(t, ok)
	assert.Len(t, verrs, 3)
}

func TestSignupRejectsNumericPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Signup("bob", "123456789", "123456789")
	verrs, ok := AsValidation(err)
	require.True(t, ok)
	require.Len(t, verrs, 1)
	assert.Contains(t, verrs[0], "entirely numeric")
}

func TestSignupRejectsTakenUsername(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Signup("mary", "plain-password", "plain-password")
	require.NoError(t, err)

	_, err = svc.Signup("mary", "other-password", "other-password")
	verrs, ok := AsValidation(err)
	require.True(t, ok)
	require.Len(t, verrs, 1)
	assert.Contains(t, verrs[0], "already exists")
}

func TestSignupRequiresUsername(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Signup("", "plain-password", "plain-password")
	verrs, ok := AsValidation(err)
	require.True(t, ok)
	require.Len(t, verrs, 1)
	assert.Contains(t, verrs[0], "username")
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Signup("mary", "plain-password", "plain-password")
	require.NoError(t, err)

	_, err = svc.Login("mary", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUserSameError(t *testing.T) {
	svc, _ := newAuthService(t)

	// Missing user and bad password are indistinguishable
	_, err := svc.Login("nobody", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginSuccess(t *testing.T) {
	svc, _ := newAuthService(t)

	created, err := svc.Signup("mary", "plain-password", "plain-password")
	require.NoError(t, err)

	user, err := svc.Login("mary", "plain-password")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}
