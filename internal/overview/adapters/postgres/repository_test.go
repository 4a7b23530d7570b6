package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"solar-stats-service/internal/platform/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (*OverviewRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewOverviewRepository(database.NewQuerier(db, "overview")), mock
}

func countRows(n int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

func TestCounts(t *testing.T) {
	repo, mock := newRepo(t)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).WillReturnRows(countRows(3))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM sites`).WillReturnRows(countRows(5))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM telemetry_data`).WillReturnRows(countRows(4_294_967_296))

	users, err := repo.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, users)

	sites, err := repo.CountSites(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, sites)

	samples, err := repo.CountAllTelemetrySamples(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4_294_967_296), samples)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountDevicesActiveSince(t *testing.T) {
	repo, mock := newRepo(t)
	since := time.Date(2025, 12, 9, 15, 30, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT COUNT\(DISTINCT device_id\)\s+FROM telemetry_data\s+WHERE recorded_at >= \$1`).
		WithArgs(since).
		WillReturnRows(countRows(2))

	n, err := repo.CountDevicesActiveSince(context.Background(), since)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCount_QueryError(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`FROM users`).WillReturnError(errors.New("connection refused"))

	_, err := repo.CountUsers(context.Background())
	assert.EqualError(t, err, "connection refused")
}
