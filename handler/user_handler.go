package handler

import (
	"errors"
	"net/http"
	"strconv"
	"studio-api/common"
	"studio-api/logger"
	"studio-api/model"
	"studio-api/service"

	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	auth  *service.AuthService
	users *service.UserService
}

func NewUserHandler(auth *service.AuthService, users *service.UserService) *UserHandler {
	return &UserHandler{auth: auth, users: users}
}

// Register godoc
// @Summary      Register a new person
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        person body model.RegisterRequest true "Registration details"
// @Success      201  {object}  model.Person
// @Failure      400  {object}  common.AppError
// @Failure      409  {object}  common.AppError "Email already registered"
// @Router       /register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RegisterRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	person, err := h.auth.Register(req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return common.NewAppError(http.StatusConflict, err.Error(), nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not register person", err)
	}

	common.WriteJSON(w, http.StatusCreated, person)
	return nil
}

// Login godoc
// @Summary      Exchange email and password for a token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body model.LoginRequest true "Login credentials"
// @Success      200  {object}  model.TokenResponse
// @Failure      400  {object}  common.AppError
// @Failure      401  {object}  common.AppError "Invalid email or password"
// @Failure      500  {object}  common.AppError
// @Router       /login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	token, err := h.auth.Login(req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return common.NewAppError(http.StatusUnauthorized, err.Error(), nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not log in", err)
	}

	common.WriteJSON(w, http.StatusOK, model.TokenResponse{Token: token})
	return nil
}

// Me godoc
// @Summary      Show the authenticated principal
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.Principal
// @Failure      401  {object}  common.AppError
// @Failure      403  {object}  common.AppError
// @Router       /api/me [get]
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) *common.AppError {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Authorization token is required", nil)
	}

	common.WriteJSON(w, http.StatusOK, principal)
	return nil
}

// ListPersons godoc
// @Summary      List all persons
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   model.Person
// @Failure      403  {object}  common.AppError
// @Router       /api/admin/persons [get]
func (h *UserHandler) ListPersons(w http.ResponseWriter, r *http.Request) *common.AppError {
	persons, err := h.users.ListPersons()
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve persons", err)
	}

	common.WriteJSON(w, http.StatusOK, persons)
	return nil
}

// UpdateEmployeeLevel godoc
// @Summary      Change a person's employee level
// @Tags         admin
// @Accept       json
// @Security     BearerAuth
// @Param        id    path int                      true "Person ID"
// @Param        level body model.UpdateLevelRequest true "New level"
// @Success      204
// @Failure      400  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Router       /api/admin/persons/{id}/level [patch]
func (h *UserHandler) UpdateEmployeeLevel(w http.ResponseWriter, r *http.Request) *common.AppError {
	personID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid person ID in URL path", nil)
	}

	var req model.UpdateLevelRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	if principal, ok := PrincipalFromContext(r.Context()); ok {
		logger.Log.WithFields(logrus.Fields{
			"admin_id":       principal.ID,
			"person_id":      personID,
			"employee_level": req.EmployeeLevel,
		}).Info("Employee level change requested")
	}

	if err := h.users.UpdateEmployeeLevel(personID, req.EmployeeLevel); err != nil {
		switch {
		case errors.Is(err, service.ErrPersonNotFound):
			return common.NewAppError(http.StatusNotFound, err.Error(), nil)
		case errors.Is(err, service.ErrInvalidLevel):
			return common.NewAppError(http.StatusBadRequest, err.Error(), nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not update employee level", err)
		}
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
