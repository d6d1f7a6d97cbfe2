package persistence

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDatabase(t *testing.T, opts ...func(*sqlmock.Sqlmock)) (*Database, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() { _ = sqlDB.Close() })
	return &Database{DB: gormDB}, mock
}

func TestDatabase_Transaction(t *testing.T) {
	t.Run("commits when the function succeeds", func(t *testing.T) {
		database, mock := newMockDatabase(t)
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE products").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := database.Transaction(func(tx *gorm.DB) error {
			return tx.Exec("UPDATE products SET quantity = quantity - 1").Error
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when the function fails", func(t *testing.T) {
		database, mock := newMockDatabase(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		wantErr := errors.New("out of stock")
		err := database.Transaction(func(tx *gorm.DB) error {
			return wantErr
		})
		assert.ErrorIs(t, err, wantErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDatabase_Ping(t *testing.T) {
	database, mock := newMockDatabase(t)
	mock.ExpectPing()

	require.NoError(t, database.Ping())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatabase_Stats(t *testing.T) {
	database, _ := newMockDatabase(t)

	stats, err := database.Stats()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.OpenConnections, 0)
}
