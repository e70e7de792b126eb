package service

import (
	"database/sql"
	"errors"
	"studio-api/model"
	"studio-api/repository"
)

var (
	ErrInvalidLevel   = errors.New("invalid employee level specified")
	ErrPersonNotFound = errors.New("person not found")
)

// UserService handles person-related business logic.
type UserService struct {
	userRepo repository.IUserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.IUserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) ListPersons() ([]*model.Person, error) {
	return s.userRepo.GetAllUsers()
}

// UpdateEmployeeLevel validates the level and calls the repository to update it.
func (s *UserService) UpdateEmployeeLevel(userID int, level model.Level) error {
	if !level.Valid() {
		return ErrInvalidLevel
	}

	err := s.userRepo.UpdateEmployeeLevel(userID, string(level))
	if errors.Is(err, sql.ErrNoRows) {
		return ErrPersonNotFound
	}
	return err
}
