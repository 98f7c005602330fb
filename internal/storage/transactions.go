package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/paisatrack/paisatrack/internal/common"
	"github.com/paisatrack/paisatrack/internal/model"
	"github.com/paisatrack/paisatrack/internal/service"
)

// SaveTransactions stores transactions, skipping hash duplicates.
// Returns the number actually inserted.
func (s *SQLiteStorage) SaveTransactions(ctx context.Context, txns []model.ParsedTransaction) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateTransactions(txns); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO transactions (
			id, hash, date, merchant, account_number, description,
			direction, channel, category, tags, amount, balance
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	inserted := 0
	for i := range txns {
		txn := txns[i]
		if txn.Hash == "" {
			txn.Hash = txn.GenerateHash()
		}

		tagsJSON := ""
		if len(txn.Tags) > 0 {
			if b, marshalErr := json.Marshal(txn.Tags); marshalErr == nil {
				tagsJSON = string(b)
			}
		}

		res, execErr := stmt.ExecContext(ctx,
			txn.ID,
			txn.Hash,
			txn.Date,
			txn.Merchant,
			txn.AccountNumber,
			txn.Description,
			string(txn.Direction),
			string(txn.Channel),
			string(txn.Category),
			tagsJSON,
			txn.Amount,
			txn.Balance,
		)
		if execErr != nil {
			return 0, fmt.Errorf("failed to save transaction %s: %w", txn.ID, execErr)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	return inserted, nil
}

// GetTransactionByID fetches a single transaction.
func (s *SQLiteStorage) GetTransactionByID(ctx context.Context, id string) (*model.ParsedTransaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, hash, date, merchant, account_number, description,
		       direction, channel, category, tags, amount, balance
		FROM transactions WHERE id = ?
	`, id)

	txn, err := scanTransaction(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("transaction %s: %w", id, common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return txn, nil
}

// ListTransactions returns transactions ordered by date descending,
// optionally bounded by the given range.
func (s *SQLiteStorage) ListTransactions(ctx context.Context, start, end *time.Time) ([]model.ParsedTransaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateDateRange(start, end); err != nil {
		return nil, err
	}

	query := `
		SELECT id, hash, date, merchant, account_number, description,
		       direction, channel, category, tags, amount, balance
		FROM transactions
	`
	where, args := dateRangeClause(start, end)
	query += where + " ORDER BY date DESC, created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var txns []model.ParsedTransaction
	for rows.Next() {
		txn, scanErr := scanTransaction(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", scanErr)
		}
		txns = append(txns, *txn)
	}
	return txns, rows.Err()
}

// CategorySummary aggregates debit totals per category.
func (s *SQLiteStorage) CategorySummary(ctx context.Context, start, end *time.Time) ([]service.CategoryTotal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateDateRange(start, end); err != nil {
		return nil, err
	}

	query := `
		SELECT category, SUM(amount), COUNT(*)
		FROM transactions
	`
	where, args := dateRangeClause(start, end)
	if where == "" {
		where = " WHERE direction = 'debit'"
	} else {
		where += " AND direction = 'debit'"
	}
	query += where + " GROUP BY category ORDER BY SUM(amount) DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var totals []service.CategoryTotal
	for rows.Next() {
		var t service.CategoryTotal
		var category string
		if scanErr := rows.Scan(&category, &t.Total, &t.Count); scanErr != nil {
			return nil, fmt.Errorf("failed to scan summary row: %w", scanErr)
		}
		t.Category = model.Category(category)
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

func dateRangeClause(start, end *time.Time) (string, []any) {
	var conditions []string
	var args []any
	if start != nil {
		conditions = append(conditions, "date >= ?")
		args = append(args, *start)
	}
	if end != nil {
		conditions = append(conditions, "date <= ?")
		args = append(args, *end)
	}
	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row scanner) (*model.ParsedTransaction, error) {
	var txn model.ParsedTransaction
	var direction, channel, category, tagsJSON string
	var balance sql.NullFloat64

	err := row.Scan(
		&txn.ID,
		&txn.Hash,
		&txn.Date,
		&txn.Merchant,
		&txn.AccountNumber,
		&txn.Description,
		&direction,
		&channel,
		&category,
		&tagsJSON,
		&txn.Amount,
		&balance,
	)
	if err != nil {
		return nil, err
	}

	txn.Direction = model.Direction(direction)
	txn.Channel = model.Channel(channel)
	txn.Category = model.Category(category)
	if tagsJSON != "" {
		if unmarshalErr := json.Unmarshal([]byte(tagsJSON), &txn.Tags); unmarshalErr != nil {
			return nil, fmt.Errorf("corrupt tags for %s: %w", txn.ID, unmarshalErr)
		}
	}
	if balance.Valid {
		txn.Balance = &balance.Float64
	}
	return &txn, nil
}
