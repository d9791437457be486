package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/tdnguyen/sales-ledger/internal/entity"
)

// SalesRepository stores saved record batches. A save replaces the previous
// batch wholesale, mirroring the client's replace-whole-set semantics.
type SalesRepository interface {
	ReplaceBatch(ctx context.Context, records []entity.Record) (uuid.UUID, error)
	LatestBatch(ctx context.Context) ([]entity.Record, error)
	Close() error
}

type salesRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// OpenDB opens (and initializes, if needed) the sales database at path.
func OpenDB(ctx context.Context, path string, logger *slog.Logger) (SalesRepository, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sales db: %w", err)
	}
	const schema = `
	CREATE TABLE IF NOT EXISTS batches (
		id       TEXT PRIMARY KEY,
		saved_at TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS sales (
		batch_id  TEXT NOT NULL REFERENCES batches(id),
		pos       INTEGER NOT NULL,
		date      TEXT NOT NULL,
		bill      TEXT NOT NULL,
		upc       TEXT NOT NULL,
		skus      TEXT NOT NULL,
		qty       TEXT NOT NULL,
		amount    TEXT NOT NULL,
		customer  TEXT NOT NULL,
		mobile    TEXT NOT NULL,
		promotion TEXT NOT NULL,
		cashier   TEXT NOT NULL,
		type      TEXT NOT NULL,
		gender    TEXT NOT NULL,
		division  TEXT NOT NULL,
		category  TEXT NOT NULL,
		year      TEXT NOT NULL,
		season    TEXT NOT NULL,
		size      TEXT NOT NULL,
		PRIMARY KEY (batch_id, pos)
	)`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init sales schema: %w", err)
	}
	return &salesRepository{db: db, logger: logger}, nil
}

func (r *salesRepository) Close() error {
	return r.db.Close()
}

func (r *salesRepository) ReplaceBatch(ctx context.Context, records []entity.Record) (uuid.UUID, error) {
	batchID := uuid.New()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("begin: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM sales`); err != nil {
		return uuid.Nil, fmt.Errorf("clear sales: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM batches`); err != nil {
		return uuid.Nil, fmt.Errorf("clear batches: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO batches (id, saved_at) VALUES (?, ?)`,
		batchID.String(), time.Now().UTC().Format(time.RFC3339)); err != nil {
		return uuid.Nil, fmt.Errorf("insert batch: %w", err)
	}

	const insert = `INSERT INTO sales (
		batch_id, pos, date, bill, upc, skus, qty, amount, customer, mobile,
		promotion, cashier, type, gender, division, category, year, season, size
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return uuid.Nil, fmt.Errorf("prepare insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for i, rec := range records {
		if _, err := stmt.ExecContext(ctx,
			batchID.String(), i,
			rec.Date, rec.Bill, rec.UPC, rec.SKU, rec.Qty, rec.Amount,
			rec.Customer, rec.Mobile, rec.Promotion, rec.Cashier,
			rec.Type, rec.Gender, rec.Division, rec.Category,
			rec.Year, rec.Season, rec.Size,
		); err != nil {
			return uuid.Nil, fmt.Errorf("insert row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("commit: %w", err)
	}
	r.logger.Info("sales.batch.saved", "batch_id", batchID.String(), "rows", len(records))
	return batchID, nil
}

func (r *salesRepository) LatestBatch(ctx context.Context) ([]entity.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT date, bill, upc, skus, qty, amount, customer, mobile,
		       promotion, cashier, type, gender, division, category,
		       year, season, size
		FROM sales ORDER BY pos`)
	if err != nil {
		return nil, fmt.Errorf("query sales: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			r.logger.Warn("sales.rows_close_error", "error", cerr)
		}
	}()

	var records []entity.Record
	for rows.Next() {
		var rec entity.Record
		if err := rows.Scan(
			&rec.Date, &rec.Bill, &rec.UPC, &rec.SKU, &rec.Qty, &rec.Amount,
			&rec.Customer, &rec.Mobile, &rec.Promotion, &rec.Cashier,
			&rec.Type, &rec.Gender, &rec.Division, &rec.Category,
			&rec.Year, &rec.Season, &rec.Size,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
