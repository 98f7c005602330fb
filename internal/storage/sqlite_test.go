package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paisatrack/paisatrack/internal/common"
	"github.com/paisatrack/paisatrack/internal/model"
)

func setupTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func testTransaction(merchant string, amount float64, date time.Time) model.ParsedTransaction {
	txn := model.ParsedTransaction{
		ID:          model.NewID(),
		Date:        date,
		Merchant:    merchant,
		Description: "test message for " + merchant,
		Direction:   model.DirectionDebit,
		Channel:     model.ChannelUPI,
		Category:    model.CategoryFood,
		Tags:        []model.Tag{model.TagFood},
		Amount:      amount,
	}
	txn.Hash = txn.GenerateHash()
	return txn
}

func TestSaveAndGetTransaction(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	balance := 25000.0
	txn := testTransaction("SWIGGY", 500, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))
	txn.AccountNumber = "1234"
	txn.Balance = &balance

	inserted, err := store.SaveTransactions(ctx, []model.ParsedTransaction{txn})
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)

	got, err := store.GetTransactionByID(ctx, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, txn.Merchant, got.Merchant)
	assert.Equal(t, txn.Amount, got.Amount)
	assert.Equal(t, txn.Direction, got.Direction)
	assert.Equal(t, txn.Channel, got.Channel)
	assert.Equal(t, txn.Category, got.Category)
	assert.Equal(t, txn.Tags, got.Tags)
	assert.Equal(t, "1234", got.AccountNumber)
	require.NotNil(t, got.Balance)
	assert.Equal(t, balance, *got.Balance)
}

func TestSaveTransactionsDeduplicates(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	txn := testTransaction("SWIGGY", 500, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))

	inserted, err := store.SaveTransactions(ctx, []model.ParsedTransaction{txn})
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)

	// Same message parsed again gets a new ID but the same hash.
	dup := txn
	dup.ID = model.NewID()
	inserted, err = store.SaveTransactions(ctx, []model.ParsedTransaction{dup})
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)

	txns, err := store.ListTransactions(ctx, nil, nil)
	require.NoError(t, err)
	assert.Len(t, txns, 1)
}

func TestGetTransactionByIDNotFound(t *testing.T) {
	store := setupTestStorage(t)

	_, err := store.GetTransactionByID(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestListTransactionsDateRange(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	jan := testTransaction("SWIGGY", 100, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC))
	feb := testTransaction("ZOMATO", 200, time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC))
	mar := testTransaction("UBER", 300, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC))

	_, err := store.SaveTransactions(ctx, []model.ParsedTransaction{jan, feb, mar})
	require.NoError(t, err)

	t.Run("no bounds returns all newest first", func(t *testing.T) {
		txns, err := store.ListTransactions(ctx, nil, nil)
		require.NoError(t, err)
		require.Len(t, txns, 3)
		assert.Equal(t, "UBER", txns[0].Merchant)
		assert.Equal(t, "SWIGGY", txns[2].Merchant)
	})

	t.Run("bounded range", func(t *testing.T) {
		start := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, time.February, 28, 0, 0, 0, 0, time.UTC)
		txns, err := store.ListTransactions(ctx, &start, &end)
		require.NoError(t, err)
		require.Len(t, txns, 1)
		assert.Equal(t, "ZOMATO", txns[0].Merchant)
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
		_, err := store.ListTransactions(ctx, &start, &end)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})
}

func TestCategorySummary(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	food1 := testTransaction("SWIGGY", 100, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))
	food2 := testTransaction("ZOMATO", 150, time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC))
	travel := testTransaction("UBER", 400, time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC))
	travel.Category = model.CategoryTravel
	salary := testTransaction("ACME CORP", 90000, time.Date(2024, time.January, 4, 0, 0, 0, 0, time.UTC))
	salary.Direction = model.DirectionCredit
	salary.Category = model.CategorySalary

	_, err := store.SaveTransactions(ctx, []model.ParsedTransaction{food1, food2, travel, salary})
	require.NoError(t, err)

	totals, err := store.CategorySummary(ctx, nil, nil)
	require.NoError(t, err)

	// Credits are excluded; debits grouped by category, largest first.
	require.Len(t, totals, 2)
	assert.Equal(t, model.CategoryTravel, totals[0].Category)
	assert.Equal(t, 400.0, totals[0].Total)
	assert.Equal(t, 1, totals[0].Count)
	assert.Equal(t, model.CategoryFood, totals[1].Category)
	assert.Equal(t, 250.0, totals[1].Total)
	assert.Equal(t, 2, totals[1].Count)
}

func TestSaveTransactionsValidation(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	t.Run("nil slice", func(t *testing.T) {
		_, err := store.SaveTransactions(ctx, nil)
		assert.ErrorIs(t, err, ErrNilParameter)
	})

	t.Run("missing merchant", func(t *testing.T) {
		txn := testTransaction("SWIGGY", 100, time.Now())
		txn.Merchant = ""
		_, err := store.SaveTransactions(ctx, []model.ParsedTransaction{txn})
		assert.ErrorIs(t, err, ErrInvalidTransaction)
	})

	t.Run("non positive amount", func(t *testing.T) {
		txn := testTransaction("SWIGGY", 100, time.Now())
		txn.Amount = 0
		_, err := store.SaveTransactions(ctx, []model.ParsedTransaction{txn})
		assert.ErrorIs(t, err, ErrInvalidTransaction)
	})

	t.Run("unknown category", func(t *testing.T) {
		txn := testTransaction("SWIGGY", 100, time.Now())
		txn.Category = "Snacks"
		_, err := store.SaveTransactions(ctx, []model.ParsedTransaction{txn})
		assert.ErrorIs(t, err, ErrInvalidTransaction)
	})

	t.Run("empty slice is a no-op", func(t *testing.T) {
		inserted, err := store.SaveTransactions(ctx, []model.ParsedTransaction{})
		require.NoError(t, err)
		assert.Zero(t, inserted)
	})
}
