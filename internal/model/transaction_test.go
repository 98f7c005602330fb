package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateHash(t *testing.T) {
	base := ParsedTransaction{
		Date:          time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		Amount:        500,
		Direction:     DirectionDebit,
		Merchant:      "SWIGGY",
		AccountNumber: "1234",
	}

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, base.GenerateHash(), base.GenerateHash())
	})

	t.Run("direction changes hash", func(t *testing.T) {
		other := base
		other.Direction = DirectionCredit
		assert.NotEqual(t, base.GenerateHash(), other.GenerateHash())
	})

	t.Run("amount changes hash", func(t *testing.T) {
		other := base
		other.Amount = 501
		assert.NotEqual(t, base.GenerateHash(), other.GenerateHash())
	})

	t.Run("time of day does not change hash", func(t *testing.T) {
		other := base
		other.Date = base.Date.Add(5 * time.Hour)
		assert.Equal(t, base.GenerateHash(), other.GenerateHash())
	})
}

func TestNewID(t *testing.T) {
	assert.NotEqual(t, NewID(), NewID())
}

func TestCategoryValid(t *testing.T) {
	assert.True(t, CategoryFood.Valid())
	assert.True(t, CategoryOther.Valid())
	assert.False(t, Category("Snacks").Valid())
}

func TestChannelValid(t *testing.T) {
	assert.True(t, ChannelUPI.Valid())
	assert.False(t, Channel("Wire").Valid())
}
