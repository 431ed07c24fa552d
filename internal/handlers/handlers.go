package handlers

import (
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/vinevault/vinevault-golang/internal/ai"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	DB        *sql.DB       // Application connection pool
	AIService *ai.AIService // Generation-service client for the assistant
}

// isDuplicateKey reports whether err is a MySQL duplicate-entry error (1062),
// i.e. a unique-key conflict rather than an infrastructure failure.
func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

// parseDate accepts both full RFC 3339 timestamps and bare YYYY-MM-DD dates,
// since form clients send either.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
