package model

import "time"

// Principal is the authenticated identity attached to a request after verification.
type Principal struct {
	ID            int       `json:"id"`
	Name          string    `json:"name,omitempty"`
	EmployeeLevel Level     `json:"employee_level"`
	IssuedAt      time.Time `json:"issued_at"`
	ExpiresAt     time.Time `json:"expires_at"`
}
