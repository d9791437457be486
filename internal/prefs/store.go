// Package prefs persists user display preferences (column widths) in an
// embedded SQLite database, keyed under a fixed namespace. The map is read
// once at startup and written back on every width change.
package prefs

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"

	"github.com/tdnguyen/sales-ledger/constants"
)

// Namespace is the fixed key the column-width map is stored under.
const Namespace = "sale_column_widths"

// Store is the local key-value preference boundary.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (and initializes, if needed) the preference database at path.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open prefs db: %w", err)
	}
	const schema = `CREATE TABLE IF NOT EXISTS preferences (
		namespace TEXT NOT NULL,
		field     TEXT NOT NULL,
		value     TEXT NOT NULL,
		PRIMARY KEY (namespace, field)
	)`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init prefs schema: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// ColumnWidths loads the saved width map. Fields without a saved width are
// simply absent; callers fall back to their default width.
func (s *Store) ColumnWidths(ctx context.Context) (map[constants.FieldKey]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT field, value FROM preferences WHERE namespace = ?`, Namespace)
	if err != nil {
		return nil, fmt.Errorf("load column widths: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logger.Warn("prefs.rows_close_error", "error", cerr)
		}
	}()

	widths := make(map[constants.FieldKey]string)
	for rows.Next() {
		var field, value string
		if err := rows.Scan(&field, &value); err != nil {
			return nil, fmt.Errorf("scan column width: %w", err)
		}
		widths[constants.FieldKey(field)] = value
	}
	return widths, rows.Err()
}

// SetColumnWidth saves one field's pixel width (e.g. "120px").
func (s *Store) SetColumnWidth(ctx context.Context, field constants.FieldKey, width string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO preferences (namespace, field, value) VALUES (?, ?, ?)
		 ON CONFLICT (namespace, field) DO UPDATE SET value = excluded.value`,
		Namespace, string(field), width)
	if err != nil {
		return fmt.Errorf("save column width: %w", err)
	}
	s.logger.Info("prefs.width.saved", "field", string(field), "width", width)
	return nil
}
