package service

import (
	"unicode"

	"go-bms-api/internal/model"
	"go-bms-api/internal/repository"
	"go-bms-api/internal/ws"
)

type AuthService interface {
	Signup(username, password, passwordConfirm string) (*model.User, error)
	Login(username, password string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	wsHub    *ws.Hub
}

func NewAuthService(userRepo repository.UserRepository, hub *ws.Hub) AuthService {
	return &authService{
		userRepo: userRepo,
		wsHub:    hub,
	}
}

// Signup creates a new non-staff account. Validation mirrors the standard
// password-confirmation rules: every violated rule produces its own message.
func (s *authService) Signup(username, password, passwordConfirm string) (*model.User, error) {
	var errs ValidationErrors

	if username == "" {
		errs = append(errs, "username: this field is required")
	} else if existing, _ := s.userRepo.FindByUsername(username); existing != nil {
		errs = append(errs, "username: a user with that username already exists")
	}

	if len(password) < 8 {
		errs = append(errs, "password: this password is too short, it must contain at least 8 characters")
	}
	if password != "" && isEntirelyNumeric(password) {
		errs = append(errs, "password: this password is entirely numeric")
	}
	if password != passwordConfirm {
		errs = append(errs, "password: the two password fields didn't match")
	}

	if len(errs) > 0 {
		return nil, errs
	}

	user := &model.User{
		Username: username,
		IsStaff:  false,
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	s.wsHub.Notify("user", "signed_up", username, username+" created an account")

	return user, nil
}

// Login verifies credentials. The error never says which field was wrong.
func (s *authService) Login(username, password string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func isEntirelyNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
