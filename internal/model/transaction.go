// Package model defines the core domain models used throughout the application.
package model

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Direction indicates whether money left or entered the account.
type Direction string

// Transaction direction constants.
const (
	DirectionDebit  Direction = "debit"
	DirectionCredit Direction = "credit"
)

// Tag is a non-exclusive lower-case label supplementing Category.
type Tag string

// Known tag values produced by the tag generator.
const (
	TagFood         Tag = "food"
	TagGroceries    Tag = "groceries"
	TagSubscription Tag = "subscription"
	TagRecharge     Tag = "recharge"
	TagTravel       Tag = "travel"
)

// ParsedTransaction is a fully enriched transaction assembled from raw
// bank text. All fields are computed synchronously; persistence and user
// association belong to the storage layer.
type ParsedTransaction struct {
	Date          time.Time
	ID            string
	Merchant      string // Canonical merchant name, never empty
	AccountNumber string // Last 4 digits of the account, if advertised
	Description   string // Original raw text, kept for audit/search
	Hash          string
	Direction     Direction
	Channel       Channel
	Category      Category
	Tags          []Tag
	Amount        float64
	Balance       *float64 // Post-transaction balance, if advertised
}

// NewID returns a fresh transaction identifier.
func NewID() string {
	return uuid.NewString()
}

// GenerateHash creates a stable hash for duplicate detection. Two
// transactions with the same date, amount, direction and merchant are
// considered the same message parsed twice.
func (t *ParsedTransaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%.2f:%s:%s:%s",
		t.Date.Format("2006-01-02"),
		t.Amount,
		t.Direction,
		t.Merchant,
		t.AccountNumber)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
