package service

import (
	"errors"
	"fmt"

	"go-bms-api/internal/model"
	"go-bms-api/internal/repository"
	"go-bms-api/internal/ws"

	"github.com/google/uuid"
)

var ErrSelfDelete = errors.New("cannot delete your own account")

// UserService is the staff-only user administration surface.
type UserService interface {
	List() ([]model.User, error)
	Delete(id uuid.UUID, actor *model.User) error
}

type userService struct {
	userRepo repository.UserRepository
	wsHub    *ws.Hub
}

func NewUserService(userRepo repository.UserRepository, hub *ws.Hub) UserService {
	return &userService{
		userRepo: userRepo,
		wsHub:    hub,
	}
}

func (s *userService) List() ([]model.User, error) {
	return s.userRepo.FindAll()
}

// Delete removes the user along with everything they created, through the
// FK cascade. Deleting the acting account is refused.
func (s *userService) Delete(id uuid.UUID, actor *model.User) error {
	if id == actor.ID {
		return ErrSelfDelete
	}

	target, err := s.userRepo.FindByID(id)
	if err != nil {
		return ErrNotFound
	}

	if err := s.userRepo.Delete(target.ID); err != nil {
		return err
	}

	s.wsHub.Notify("user", "deleted", actor.Username,
		fmt.Sprintf("%s deleted account '%s'", actor.Username, target.Username))

	return nil
}
