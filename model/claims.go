package model

import "github.com/golang-jwt/jwt/v5"

type AppClaims struct {
	UserID        int    `json:"id"`
	Name          string `json:"name,omitempty"`
	EmployeeLevel Level  `json:"employee_level"`
	jwt.RegisteredClaims
}
