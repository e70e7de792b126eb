// file: service/token_service.go

package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"studio-api/config"
	"studio-api/model"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken        = errors.New("authorization token is required")
	ErrInvalidToken        = errors.New("invalid token")
	ErrExpiredToken        = errors.New("token has expired")
	ErrSecretNotConfigured = errors.New("token signing secret is not configured")
)

const bearerScheme = "Bearer"

// TokenService issues and verifies HS256 credentials. It holds no mutable state
// and is safe for concurrent use.
type TokenService struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// NewTokenService creates a TokenService from the JWT settings. An empty secret is
// accepted here; IssueToken and VerifyAuthorization report it per call.
func NewTokenService(cfg config.JWTConfig) *TokenService {
	return &TokenService{
		secret: []byte(cfg.SecretKey),
		expiry: cfg.Expiry,
		now:    time.Now,
	}
}

// WithClock returns a copy of s that reads the current time from now.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	clone := *s
	clone.now = now
	return &clone
}

// Expiry returns the configured credential lifetime.
func (s *TokenService) Expiry() time.Duration {
	return s.expiry
}

// IssueToken signs a credential for p that expires Expiry() after now. The exp
// claim only carries whole seconds, so it is rounded up rather than down.
// An empty level is recorded as model.LevelUser.
func (s *TokenService) IssueToken(p model.Principal) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrSecretNotConfigured
	}

	level := p.EmployeeLevel
	if level == "" {
		level = model.LevelUser
	}

	issuedAt := s.now()
	claims := &model.AppClaims{
		UserID:        p.ID,
		Name:          p.Name,
		EmployeeLevel: level,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(p.ID),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(ceilToPrecision(issuedAt.Add(s.expiry))),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token string: %w", err)
	}

	return tokenString, nil
}

// VerifyAuthorization validates a raw Authorization header value of the form
// "Bearer <token>". The secret is checked first, then the header shape, then the token.
func (s *TokenService) VerifyAuthorization(header string) (*model.Principal, error) {
	if len(s.secret) == 0 {
		return nil, ErrSecretNotConfigured
	}

	scheme, tokenString, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return nil, ErrMissingToken
	}
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	return s.ParseToken(tokenString)
}

// ParseToken verifies signature and expiry of a bare token. A token is valid
// up to and including the instant in its exp claim.
func (s *TokenService) ParseToken(tokenString string) (*model.Principal, error) {
	if len(s.secret) == 0 {
		return nil, ErrSecretNotConfigured
	}

	// Claims are checked below so the exp boundary is inclusive; jwt's own
	// validator treats exp as exclusive.
	claims := &model.AppClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.ExpiresAt == nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, jwt.ErrTokenRequiredClaimMissing)
	}
	expiresAt := claims.ExpiresAt.Time.UTC()
	if s.now().After(expiresAt) {
		return nil, fmt.Errorf("%w: expired at %s", ErrExpiredToken, expiresAt.Format(time.RFC3339))
	}

	level := claims.EmployeeLevel
	if level == "" {
		level = model.LevelUser
	}

	principal := &model.Principal{
		ID:            claims.UserID,
		Name:          claims.Name,
		EmployeeLevel: level,
		ExpiresAt:     expiresAt,
	}
	if claims.IssuedAt != nil {
		principal.IssuedAt = claims.IssuedAt.Time.UTC()
	}

	return principal, nil
}

func ceilToPrecision(t time.Time) time.Time {
	truncated := t.Truncate(jwt.TimePrecision)
	if truncated.Before(t) {
		return truncated.Add(jwt.TimePrecision)
	}
	return truncated
}
