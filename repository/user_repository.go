package repository

import (
	"database/sql"
	"studio-api/logger"
	"studio-api/model"

	"github.com/sirupsen/logrus"
)

// IUserRepository defines the contract for person persistence.
type IUserRepository interface {
	CreateUser(user *model.Person) error
	GetUserByEmail(email string) (*model.Person, error)
	GetAllUsers() ([]*model.Person, error)
	UpdateEmployeeLevel(userID int, level string) error
}

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// CreateUser inserts a person and fills in the generated id and created_at.
func (r *UserRepository) CreateUser(user *model.Person) error {
	log := logger.Log.WithFields(logrus.Fields{
		"email":          user.Email,
		"employee_level": user.EmployeeLevel,
	})
	log.Info("Executing query to create a new person")

	query := `INSERT INTO persons (name, email, password, employee_level) VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	err := r.DB.QueryRow(query, user.Name, user.Email, user.Password, user.EmployeeLevel).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		log.WithError(err).Error("Failed to execute create person query")
		return err
	}
	return nil
}

func (r *UserRepository) GetUserByEmail(email string) (*model.Person, error) {
	user := &model.Person{}
	query := `SELECT id, name, email, password, employee_level, created_at FROM persons WHERE email = $1`
	err := r.DB.QueryRow(query, email).Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.EmployeeLevel, &user.CreatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithError(err).WithField("email", email).Error("Failed to execute get person by email query")
		}
		return nil, err
	}
	return user, nil
}

// GetAllUsers lists every person. Password hashes are not selected.
func (r *UserRepository) GetAllUsers() ([]*model.Person, error) {
	log := logger.Log
	log.Info("Executing query to get all persons")

	query := `SELECT id, name, email, employee_level, created_at FROM persons ORDER BY id`
	rows, err := r.DB.Query(query)
	if err != nil {
		log.WithError(err).Error("Failed to execute query for all persons")
		return nil, err
	}
	defer rows.Close()

	users := []*model.Person{}
	for rows.Next() {
		var u model.Person
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.EmployeeLevel, &u.CreatedAt); err != nil {
			log.WithError(err).Error("Failed to scan person row")
			return nil, err
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}

// UpdateEmployeeLevel changes a person's level. It returns sql.ErrNoRows when
// no person has the given id.
func (r *UserRepository) UpdateEmployeeLevel(userID int, level string) error {
	log := logger.Log.WithFields(logrus.Fields{
		"person_id":      userID,
		"employee_level": level,
	})
	log.Info("Executing query to update employee level")

	res, err := r.DB.Exec(`UPDATE persons SET employee_level = $1 WHERE id = $2`, level, userID)
	if err != nil {
		log.WithError(err).Error("Failed to execute update employee level query")
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
