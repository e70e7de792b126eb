package repository

import (
	"database/sql"
	"studio-api/logger"
	"studio-api/model"

	"github.com/sirupsen/logrus"
)

type IBankRepository interface {
	CreateBank(bank *model.Bank) error
	GetAllBanks() ([]*model.Bank, error)
}

type BankRepository struct {
	DB *sql.DB
}

func NewBankRepository(db *sql.DB) *BankRepository {
	return &BankRepository{DB: db}
}

// CreateBank adds a new bank to the database.
func (r *BankRepository) CreateBank(bank *model.Bank) error {
	log := logger.Log.WithFields(logrus.Fields{
		"name": bank.Name,
		"code": bank.Code,
	})
	log.Info("Executing query to create a new bank")

	query := `INSERT INTO banks (name, code) VALUES ($1, $2) RETURNING id, created_at`
	err := r.DB.QueryRow(query, bank.Name, bank.Code).Scan(&bank.ID, &bank.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		log.WithError(err).Error("Failed to execute create bank query")
		return err
	}
	return nil
}

// GetAllBanks retrieves all banks ordered by name.
func (r *BankRepository) GetAllBanks() ([]*model.Bank, error) {
	log := logger.Log
	log.Info("Executing query to get all banks")

	rows, err := r.DB.Query(`SELECT id, name, code, created_at FROM banks ORDER BY name`)
	if err != nil {
		log.WithError(err).Error("Failed to execute query for all banks")
		return nil, err
	}
	defer rows.Close()

	banks := []*model.Bank{}
	for rows.Next() {
		var b model.Bank
		if err := rows.Scan(&b.ID, &b.Name, &b.Code, &b.CreatedAt); err != nil {
			log.WithError(err).Error("Failed to scan bank row")
			return nil, err
		}
		banks = append(banks, &b)
	}
	return banks, rows.Err()
}
