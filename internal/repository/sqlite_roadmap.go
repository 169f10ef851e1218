package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/roadtrack/internal/codec"
	"github.com/alexanderramin/roadtrack/internal/db"
	"github.com/alexanderramin/roadtrack/internal/domain"
)

// SQLiteRoadmapRepo implements RoadmapRepo on the roadmap_documents table.
// Documents are stored as the same JSON a catalog file holds.
type SQLiteRoadmapRepo struct {
	db db.DBTX
}

// NewSQLiteRoadmapRepo creates a repo bound to a database or transaction.
func NewSQLiteRoadmapRepo(db db.DBTX) *SQLiteRoadmapRepo {
	return &SQLiteRoadmapRepo{db: db}
}

func (r *SQLiteRoadmapRepo) Save(ctx context.Context, key string, rm *domain.Roadmap) error {
	doc, err := codec.Encode(rm)
	if err != nil {
		return err
	}
	query := `INSERT INTO roadmap_documents (storage_key, document, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(storage_key) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, key, string(doc), nowUTC()); err != nil {
		return fmt.Errorf("saving roadmap %q: %w", key, err)
	}
	return nil
}

func (r *SQLiteRoadmapRepo) Load(ctx context.Context, key string) (*domain.Roadmap, error) {
	var doc string
	err := r.db.QueryRowContext(ctx, `SELECT document FROM roadmap_documents WHERE storage_key = ?`, key).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAbsent
		}
		return nil, fmt.Errorf("reading roadmap %q: %w", key, err)
	}

	rm, err := codec.DecodeBytes([]byte(doc))
	if err != nil {
		return nil, &domain.CorruptPersistedStateError{Key: key, Err: err}
	}
	return rm, nil
}

func (r *SQLiteRoadmapRepo) Remove(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM roadmap_documents WHERE storage_key = ?`, key); err != nil {
		return fmt.Errorf("removing roadmap %q: %w", key, err)
	}
	return nil
}
