package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	_ "modernc.org/sqlite"

	"fintrack/internal/log"
	"fintrack/internal/services"
)

// SQLiteRepository persists each record collection as one JSON blob in the
// collections table. A corrupt or missing blob loads as an empty
// collection.
type SQLiteRepository struct {
	db     *sql.DB
	logger *log.Logger
}

func NewSQLiteRepository(dbPath string, logger *log.Logger) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{
		db:     db,
		logger: logger.WithComponent(log.ComponentStorage),
	}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Save upserts one collection as a JSON blob.
func (r *SQLiteRepository) Save(ctx context.Context, name string, collection any) error {
	data, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("marshal collection %s: %w", name, err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO collections (name, data, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at`,
		name, string(data))
	if err != nil {
		return fmt.Errorf("save collection %s: %w", name, err)
	}
	return nil
}

// Load reads all five collections concurrently. A collection that is
// missing or fails to decode comes back empty; only infrastructure errors
// propagate.
func (r *SQLiteRepository) Load(ctx context.Context) (services.Snapshot, error) {
	var snapshot services.Snapshot

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loadCollection(ctx, r, services.CollectionExpenses, &snapshot.Expenses)
	})
	g.Go(func() error {
		return loadCollection(ctx, r, services.CollectionInvestments, &snapshot.Investments)
	})
	g.Go(func() error {
		return loadCollection(ctx, r, services.CollectionBudgets, &snapshot.Budgets)
	})
	g.Go(func() error {
		return loadCollection(ctx, r, services.CollectionGoals, &snapshot.Goals)
	})
	g.Go(func() error {
		return loadCollection(ctx, r, services.CollectionBills, &snapshot.Bills)
	})

	if err := g.Wait(); err != nil {
		return services.Snapshot{}, err
	}
	return snapshot, nil
}

func loadCollection[T any](ctx context.Context, r *SQLiteRepository, name string, out *[]T) error {
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM collections WHERE name = ?`, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		*out = []T{}
		return nil
	}
	if err != nil {
		return fmt.Errorf("load collection %s: %w", name, err)
	}

	if err := json.Unmarshal([]byte(data), out); err != nil {
		r.logger.Warn("Corrupt collection blob, starting empty",
			log.FieldCollection, name, log.FieldError, err)
		*out = []T{}
	}
	return nil
}
