package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// NewDB creates a new MySQL connection pool with the given DSN.
// A failed ping is logged but not fatal; callers decide whether to keep the pool.
func NewDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		slog.Warn("database ping failed", "error", err)
		return db, err
	}

	return db, nil
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS generations (
	id           CHAR(36)     NOT NULL PRIMARY KEY,
	length       INT          NOT NULL,
	count        INT          NOT NULL,
	symbol_count INT          NOT NULL,
	hashed       BOOLEAN      NOT NULL DEFAULT FALSE,
	client_ip    VARCHAR(45)  NOT NULL DEFAULT '',
	created_at   TIMESTAMP(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	INDEX idx_generations_created_at (created_at)
)`

// EnsureSchema creates the audit table if it does not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schemaSQL)
	return err
}
