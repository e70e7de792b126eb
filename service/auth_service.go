package service

import (
	"database/sql"
	"errors"
	"fmt"
	"studio-api/logger"
	"studio-api/model"
	"studio-api/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
)

// AuthService registers persons and exchanges credentials for tokens.
type AuthService struct {
	userRepo   repository.IUserRepository
	tokens     *TokenService
	bcryptCost int
}

func NewAuthService(userRepo repository.IUserRepository, tokens *TokenService, bcryptCost int) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		userRepo:   userRepo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

func (s *AuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash password")
		return "", err
	}
	return string(bytes), nil
}

func (s *AuthService) CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// Register stores a new person with the default user level.
func (s *AuthService) Register(req model.RegisterRequest) (*model.Person, error) {
	hashed, err := s.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	person := &model.Person{
		Name:          req.Name,
		Email:         req.Email,
		Password:      hashed,
		EmployeeLevel: model.LevelUser,
	}
	if err := s.userRepo.CreateUser(person); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	person.Password = ""
	return person, nil
}

// Login verifies the password and issues a token for the person.
func (s *AuthService) Login(req model.LoginRequest) (string, error) {
	log := logger.Log.WithField("email", req.Email)

	person, err := s.userRepo.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn("Login attempt for unknown email")
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !s.CheckPasswordHash(req.Password, person.Password) {
		log.Warn("Login attempt with wrong password")
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.IssueToken(person.Principal())
	if err != nil {
		return "", err
	}

	log.WithFields(logrus.Fields{
		"person_id":      person.ID,
		"employee_level": person.EmployeeLevel,
	}).Info("Person logged in")
	return token, nil
}
