package model

import "time"

// Level is the coarse privilege marker carried in a credential.
type Level string

const (
	LevelUser     Level = "user"
	LevelEmployee Level = "employee"
	LevelAdmin    Level = "admin"
)

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	switch l {
	case LevelUser, LevelEmployee, LevelAdmin:
		return true
	}
	return false
}

// Person is a studio member or staff member able to log in.
type Person struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Password      string    `json:"-"`
	EmployeeLevel Level     `json:"employee_level"`
	CreatedAt     time.Time `json:"created_at"`
}

// Principal returns the identity fields that go into a credential.
func (p *Person) Principal() Principal {
	return Principal{
		ID:            p.ID,
		Name:          p.Name,
		EmployeeLevel: p.EmployeeLevel,
	}
}
