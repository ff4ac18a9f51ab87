package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/vaultpass/pwgen-go/internal/model"
)

const mysqlDuplicateEntry = 1062

var (
	ErrDuplicateRecord  = errors.New("generation record already exists")
	ErrNonPositiveLimit = errors.New("repository: list limit must be positive")
)

// GenerationRepository persists generation audit records.
type GenerationRepository struct {
	db *sql.DB
}

// NewGenerationRepository creates a new GenerationRepository.
func NewGenerationRepository(db *sql.DB) *GenerationRepository {
	return &GenerationRepository{db: db}
}

// Record inserts an audit record. CreatedAt is assigned by the database.
func (r *GenerationRepository) Record(ctx context.Context, rec *model.GenerationRecord) error {
	query := `INSERT INTO generations (id, length, count, symbol_count, hashed, client_ip)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.Length,
		rec.Count,
		rec.SymbolCount,
		rec.Hashed,
		rec.ClientIP,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateRecord
		}
		return err
	}

	return nil
}

// ListRecent returns up to limit records, newest first.
func (r *GenerationRepository) ListRecent(ctx context.Context, limit int) ([]model.GenerationRecord, error) {
	if limit <= 0 {
		return nil, ErrNonPositiveLimit
	}

	query := `SELECT id, length, count, symbol_count, hashed, client_ip, created_at
		FROM generations ORDER BY created_at DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.GenerationRecord
	for rows.Next() {
		var rec model.GenerationRecord
		if err := rows.Scan(
			&rec.ID, &rec.Length, &rec.Count, &rec.SymbolCount,
			&rec.Hashed, &rec.ClientIP, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// isDuplicateEntryError reports a MySQL duplicate key error (1062).
func isDuplicateEntryError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}
