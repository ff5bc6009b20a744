package theme

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return NewStore(sqlx.NewDb(mockDB, "sqlite3")), mock
}

func TestSaveActiveDeactivatesOthers(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE theme_settings SET is_active = FALSE WHERE id <>").
		WithArgs(int64(0)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO theme_settings").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	th := Default()
	err := store.Save(context.Background(), &th)
	require.NoError(t, err)
	assert.Equal(t, int64(7), th.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveInactiveLeavesOthersAlone(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO theme_settings").
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectCommit()

	th := Default()
	th.IsActive = false
	err := store.Save(context.Background(), &th)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveUpdateExisting(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE theme_settings SET is_active = FALSE WHERE id <>").
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE theme_settings SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	th := Default()
	th.ID = 4
	th.Name = "Dark"
	err := store.Save(context.Background(), &th)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActiveBootstrapsDefault(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT (.+) FROM theme_settings").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE theme_settings SET is_active = FALSE WHERE id <>").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO theme_settings").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	th, err := store.Active(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Default Theme", th.Name)
	assert.Equal(t, "#667eea", th.PrimaryColor)
	assert.Equal(t, "#764ba2", th.SecondaryColor)
	assert.True(t, th.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActiveBootstrapFailurePropagates(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT (.+) FROM theme_settings").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE theme_settings SET is_active = FALSE WHERE id <>").
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	_, err := store.Active(context.Background())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActiveReturnsNewestActive(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"id", "name", "is_active", "primary_color"}).
		AddRow(9, "Current", true, "#112233")
	mock.ExpectQuery("SELECT (.+) FROM theme_settings").
		WillReturnRows(rows)

	th, err := store.Active(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(9), th.ID)
	assert.Equal(t, "#112233", th.PrimaryColor)
}

func TestDeleteMissingTheme(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("DELETE FROM theme_settings WHERE id =").
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
