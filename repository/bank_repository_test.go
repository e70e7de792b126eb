package repository

import (
	"errors"
	"regexp"
	"studio-api/model"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBankRepository_CreateBank(t *testing.T) {
	query := regexp.QuoteMeta(`INSERT INTO banks (name, code) VALUES ($1, $2) RETURNING id, created_at`)

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).WithArgs("Garanti", "TGBATRIS").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(5, time.Now()))

		bank := &model.Bank{Name: "Garanti", Code: "TGBATRIS"}
		err := NewBankRepository(db).CreateBank(bank)

		require.NoError(t, err)
		assert.Equal(t, 5, bank.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate code", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).WillReturnError(&pq.Error{Code: "23505"})

		err := NewBankRepository(db).CreateBank(&model.Bank{Name: "Garanti", Code: "TGBATRIS"})

		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("other error", func(t *testing.T) {
		db, mock := newMockDB(t)
		dbErr := errors.New("connection reset")
		mock.ExpectQuery(query).WillReturnError(dbErr)

		err := NewBankRepository(db).CreateBank(&model.Bank{Name: "Garanti", Code: "TGBATRIS"})

		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, ErrDuplicate)
	})
}

func TestBankRepository_GetAllBanks(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, code, created_at FROM banks ORDER BY name`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "code", "created_at"}).
			AddRow(1, "Akbank", "AKBKTRIS", time.Now()).
			AddRow(2, "Ziraat", "TCZBTR2A", time.Now()))

	banks, err := NewBankRepository(db).GetAllBanks()

	require.NoError(t, err)
	require.Len(t, banks, 2)
	assert.Equal(t, "AKBKTRIS", banks[0].Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBankRepository_GetAllBanks_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, code, created_at FROM banks ORDER BY name`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "code", "created_at"}))

	banks, err := NewBankRepository(db).GetAllBanks()

	require.NoError(t, err)
	assert.NotNil(t, banks)
	assert.Empty(t, banks)
}
