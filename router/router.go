package router

import (
	"net/http"
	"studio-api/handler"
	"studio-api/model"
)

// NewRouter registers every route. Routes under /api/ require a bearer token.
func NewRouter(userHandler *handler.UserHandler, bankHandler *handler.BankHandler, auth *handler.Authenticator) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("POST /register", handler.ErrorHandlingMiddleware(userHandler.Register))
	mux.Handle("POST /login", handler.ErrorHandlingMiddleware(userHandler.Login))

	protected := func(h http.Handler, levels ...model.Level) http.Handler {
		if len(levels) > 0 {
			h = handler.RequireLevel(levels...)(h)
		}
		return auth.Authenticate(h)
	}

	mux.Handle("GET /api/me", protected(handler.ErrorHandlingMiddleware(userHandler.Me)))

	mux.Handle("GET /api/banks", protected(handler.ErrorHandlingMiddleware(bankHandler.ListBanks)))
	mux.Handle("POST /api/banks", protected(handler.ErrorHandlingMiddleware(bankHandler.CreateBank), model.LevelEmployee, model.LevelAdmin))

	mux.Handle("GET /api/admin/persons", protected(handler.ErrorHandlingMiddleware(userHandler.ListPersons), model.LevelAdmin))
	mux.Handle("PATCH /api/admin/persons/{id}/level", protected(handler.ErrorHandlingMiddleware(userHandler.UpdateEmployeeLevel), model.LevelAdmin))

	return handler.RequestLogger(mux)
}
