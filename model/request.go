// file: model/request.go

package model

// RegisterRequest defines the payload for creating a new person.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest defines the payload for authentication.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// UpdateLevelRequest defines the payload for changing a person's employee level.
type UpdateLevelRequest struct {
	EmployeeLevel Level `json:"employee_level" validate:"required,oneof=user employee admin"`
}

type CreateBankRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Code string `json:"code" validate:"required,alphanum,min=3,max=11"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}
