package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/urlscout/urlscout-cli/pkg/models"
)

const createURLsTable = `
	CREATE TABLE IF NOT EXISTS urls (
		id        INTEGER PRIMARY KEY,
		url       TEXT NOT NULL,
		file_type TEXT NOT NULL CHECK (file_type IN ('file', 'folder'))
	)`

// SQLiteProvider serves URL records from a SQLite database
type SQLiteProvider struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// OpenSQLite opens an existing dataset database read-only
func OpenSQLite(ctx context.Context, path string, logger *slog.Logger) (*SQLiteProvider, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("database file does not exist: %s: %w", path, err)
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("verifying database connection: %w", err)
	}

	ok, err := hasURLsTable(ctx, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	if !ok {
		db.Close()
		return nil, fmt.Errorf("required table urls not found in %s", path)
	}

	logger.Debug("opened sqlite dataset", "path", path)
	return &SQLiteProvider{db: db, path: path, logger: logger}, nil
}

func (p *SQLiteProvider) Search(ctx context.Context, query string) ([]models.URLRecord, error) {
	var (
		rows *sql.Rows
		err  error
	)
	// instr is case-sensitive where LIKE is not
	if query == "" {
		rows, err = p.db.QueryContext(ctx, `SELECT id, url, file_type FROM urls ORDER BY id`)
	} else {
		rows, err = p.db.QueryContext(ctx, `SELECT id, url, file_type FROM urls WHERE instr(url, ?) > 0 ORDER BY id`, query)
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}
	defer rows.Close()

	records := []models.URLRecord{}
	for rows.Next() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		var (
			r        models.URLRecord
			fileType string
		)
		if err := rows.Scan(&r.ID, &r.URL, &fileType); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		r.FileType = models.FileType(fileType)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.logger.Debug("sqlite search", "query", query, "matches", len(records))
	return records, nil
}

// Close releases the database handle
func (p *SQLiteProvider) Close() error {
	return p.db.Close()
}

// WriteSQLite creates (or replaces the contents of) a dataset database
func WriteSQLite(ctx context.Context, path string, records []models.URLRecord) error {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=rwc", path))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, createURLsTable); err != nil {
		return fmt.Errorf("creating urls table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM urls`); err != nil {
		return fmt.Errorf("clearing urls table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO urls (id, url, file_type) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx, r.ID, r.URL, string(r.FileType)); err != nil {
			return fmt.Errorf("inserting record %d: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing dataset: %w", err)
	}
	return nil
}

func hasURLsTable(ctx context.Context, db *sql.DB) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx, "SELECT 1 FROM sqlite_master WHERE type='table' AND name='urls'").Scan(&exists)
	if err != nil && err != sql.ErrNoRows {
		return false, fmt.Errorf("checking urls table existence: %w", err)
	}
	return exists, nil
}
