// file: service/auth_service_test.go

package service

import (
	"database/sql"
	"errors"
	"studio-api/config"
	"studio-api/model"
	"studio-api/repository"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(repo repository.IUserRepository, secret string) *AuthService {
	tokens := NewTokenService(config.JWTConfig{SecretKey: secret, Expiry: time.Hour})
	return NewAuthService(repo, tokens, bcrypt.MinCost)
}

// TestAuthService_HashAndCheckPassword ensures that password hashing and verification methods work correctly.
func TestAuthService_HashAndCheckPassword(t *testing.T) {
	authService := newTestAuthService(nil, "S1")
	password := "mySecretPassword123"

	hashedPassword, err := authService.HashPassword(password)
	require.NoError(t, err)
	assert.NotEqual(t, password, hashedPassword)

	assert.True(t, authService.CheckPasswordHash(password, hashedPassword))
	assert.False(t, authService.CheckPasswordHash("notMyPassword", hashedPassword))
}

func TestAuthService_Register(t *testing.T) {
	req := model.RegisterRequest{Name: "Ada", Email: "ada@studio.test", Password: "password123"}

	t.Run("success", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("CreateUser", mock.MatchedBy(func(p *model.Person) bool {
			return p.Email == req.Email && p.EmployeeLevel == model.LevelUser && p.Password != req.Password
		})).Run(func(args mock.Arguments) {
			args.Get(0).(*model.Person).ID = 12
		}).Return(nil).Once()

		person, err := newTestAuthService(repo, "S1").Register(req)

		require.NoError(t, err)
		assert.Equal(t, 12, person.ID)
		assert.Empty(t, person.Password)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("CreateUser", mock.Anything).Return(repository.ErrDuplicate).Once()

		_, err := newTestAuthService(repo, "S1").Register(req)

		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestAuthService_Login(t *testing.T) {
	svc := newTestAuthService(nil, "S1")
	hash, err := svc.HashPassword("password123")
	require.NoError(t, err)
	person := &model.Person{ID: 1, Name: "admin", Email: "admin@studio.test", Password: hash, EmployeeLevel: model.LevelAdmin}

	t.Run("success issues a verifiable token", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetUserByEmail", person.Email).Return(person, nil).Once()
		svc := newTestAuthService(repo, "S1")

		token, err := svc.Login(model.LoginRequest{Email: person.Email, Password: "password123"})
		require.NoError(t, err)

		principal, err := svc.tokens.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, 1, principal.ID)
		assert.Equal(t, "admin", principal.Name)
		assert.Equal(t, model.LevelAdmin, principal.EmployeeLevel)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetUserByEmail", person.Email).Return(person, nil).Once()

		_, err := newTestAuthService(repo, "S1").Login(model.LoginRequest{Email: person.Email, Password: "wrongpassword"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetUserByEmail", "ghost@studio.test").Return(nil, sql.ErrNoRows).Once()

		_, err := newTestAuthService(repo, "S1").Login(model.LoginRequest{Email: "ghost@studio.test", Password: "password123"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := new(mockUserRepo)
		dbErr := errors.New("connection refused")
		repo.On("GetUserByEmail", person.Email).Return(nil, dbErr).Once()

		_, err := newTestAuthService(repo, "S1").Login(model.LoginRequest{Email: person.Email, Password: "password123"})

		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("secret not configured", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetUserByEmail", person.Email).Return(person, nil).Once()

		_, err := newTestAuthService(repo, "").Login(model.LoginRequest{Email: person.Email, Password: "password123"})

		assert.ErrorIs(t, err, ErrSecretNotConfigured)
	})
}
