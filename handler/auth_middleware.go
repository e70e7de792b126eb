package handler

import (
	"context"
	"errors"
	"net/http"
	"studio-api/common"
	"studio-api/logger"
	"studio-api/model"
	"studio-api/service"

	"github.com/sirupsen/logrus"
)

type contextKey string

const principalKey contextKey = "principal"

// TokenVerifier is implemented by service.TokenService.
type TokenVerifier interface {
	VerifyAuthorization(header string) (*model.Principal, error)
}

// Authenticator gates protected routes on a valid bearer token.
type Authenticator struct {
	tokens        TokenVerifier
	exposeDetails bool
}

// NewAuthenticator builds the gate. exposeDetails controls whether operator-facing
// messages (such as a missing signing secret) reach the client.
func NewAuthenticator(tokens TokenVerifier, exposeDetails bool) *Authenticator {
	return &Authenticator{tokens: tokens, exposeDetails: exposeDetails}
}

func (a *Authenticator) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := a.tokens.VerifyAuthorization(r.Header.Get("Authorization"))
		if err != nil {
			a.reject(err).Send(w)
			return
		}

		ctx := context.WithValue(r.Context(), principalKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *Authenticator) reject(err error) *common.AppError {
	switch {
	case errors.Is(err, service.ErrMissingToken):
		return common.NewAppError(http.StatusUnauthorized, "Authorization token is required", nil)
	case errors.Is(err, service.ErrExpiredToken):
		return common.NewExpiredError("Token has expired", nil)
	case errors.Is(err, service.ErrSecretNotConfigured):
		message := "Internal server error"
		if a.exposeDetails {
			message = err.Error()
		}
		return common.NewAppError(http.StatusInternalServerError, message, err)
	default:
		logger.Log.WithError(err).Debug("Rejected invalid token")
		return common.NewAppError(http.StatusForbidden, "Invalid token", nil)
	}
}

// RequireLevel allows the request through only when the principal holds one of levels.
// It must be mounted behind Authenticate.
func RequireLevel(levels ...model.Level) func(http.Handler) http.Handler {
	allowed := make(map[model.Level]struct{}, len(levels))
	for _, l := range levels {
		allowed[l] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				common.NewAppError(http.StatusUnauthorized, "Authorization token is required", nil).Send(w)
				return
			}
			if _, ok := allowed[principal.EmployeeLevel]; !ok {
				logger.Log.WithFields(logrus.Fields{
					"person_id":      principal.ID,
					"employee_level": principal.EmployeeLevel,
					"path":           r.URL.Path,
				}).Warn("Access denied for employee level")
				common.NewAppError(http.StatusForbidden, "Access denied. Insufficient privileges.", nil).Send(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// PrincipalFromContext returns the identity attached by Authenticate.
func PrincipalFromContext(ctx context.Context) (*model.Principal, bool) {
	principal, ok := ctx.Value(principalKey).(*model.Principal)
	return principal, ok && principal != nil
}
