package settings

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/mailpassd/internal/common"
	"github.com/dmitrijs2005/mailpassd/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	loadQ = `(?s)^SELECT\s+supported_servers,\s*host,\s*port,\s*updated_at\s+FROM\s+module_settings\s+WHERE\s+id\s*=\s*1\s*$`
	saveQ = `(?s)^INSERT\s+INTO\s+module_settings\s*\(id,\s*supported_servers,\s*host,\s*port,\s*updated_at\)\s*VALUES\s*\(1,\s*\$1,\s*\$2,\s*\$3,\s*\$4\)\s*ON\s+CONFLICT\s*\(id\)\s*DO\s+UPDATE.*$`
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestLoad_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	updated := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(loadQ).WillReturnRows(
		sqlmock.NewRows([]string{"supported_servers", "host", "port", "updated_at"}).
			AddRow("mail.example.com\nimap.example.com", "10.0.0.5", 106, updated))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"mail.example.com", "imap.example.com"}, got.SupportedServers)
	assert.Equal(t, "10.0.0.5", got.Host)
	assert.Equal(t, 106, got.Port)
	assert.True(t, updated.Equal(got.UpdatedAt))
}

func TestLoad_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(loadQ).WillReturnError(sql.ErrNoRows)

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestLoad_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(loadQ).WillReturnError(errors.New("db err"))

	_, err := repo.Load(context.Background())
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestSave_Upserts(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	updated := time.Now()
	mock.ExpectExec(saveQ).
		WithArgs("mail.example.com\n*", "127.0.0.1", 106, updated).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), &models.Settings{
		SupportedServers: []string{"mail.example.com", "*"},
		Host:             "127.0.0.1",
		Port:             106,
		UpdatedAt:        updated,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(saveQ).WillReturnError(errors.New("db down"))

	err := repo.Save(context.Background(), &models.Settings{Host: "h", Port: 1})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestInMemoryRepository(t *testing.T) {
	r := NewInMemoryRepository()
	ctx := context.Background()

	_, err := r.Load(ctx)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	s := &models.Settings{SupportedServers: []string{"a"}, Host: "h", Port: 106}
	require.NoError(t, r.Save(ctx, s))
	s.SupportedServers[0] = "changed"

	got, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, got.SupportedServers)
}
