package usecase

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	warnOfflineLimited    = "Using offline data. Some features may be limited."
	warnOfflineConnection = "Using offline data. Please check your connection."
)

// offlineWarning picks the soft warning shown with fallback data: a query the
// database rejected, or a database that could not be reached at all.
func offlineWarning(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return warnOfflineLimited
	}
	return warnOfflineConnection
}
