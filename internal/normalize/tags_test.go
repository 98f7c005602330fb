package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paisatrack/paisatrack/internal/model"
)

func TestGenerateTags(t *testing.T) {
	tests := []struct {
		name        string
		merchant    string
		description string
		want        []model.Tag
	}{
		{
			name:     "food merchant",
			merchant: "SWIGGY",
			want:     []model.Tag{model.TagFood},
		},
		{
			name:     "groceries",
			merchant: "BLINKIT",
			want:     []model.Tag{model.TagGroceries},
		},
		{
			name:        "additive not exclusive",
			merchant:    "SWIGGY",
			description: "NETFLIX subscription renewal",
			want:        []model.Tag{model.TagFood, model.TagSubscription},
		},
		{
			name:        "recharge from description",
			merchant:    "UNKNOWN",
			description: "airtel prepaid recharge",
			want:        []model.Tag{model.TagRecharge},
		},
		{
			name:     "travel",
			merchant: "IRCTC",
			want:     []model.Tag{model.TagTravel},
		},
		{
			name:     "no tags",
			merchant: "ZERODHA",
			want:     nil,
		},
		{
			name:        "group contributes at most once",
			merchant:    "SWIGGY",
			description: "ZOMATO PIZZA FOOD",
			want:        []model.Tag{model.TagFood},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateTags(tt.merchant, tt.description))
		})
	}
}

func TestEnrich(t *testing.T) {
	got := Enrich("swiggy*order", "UPI-SWIGGY REF 9931")

	assert.Equal(t, "SWIGGY", got.Merchant)
	assert.Equal(t, model.ChannelUPI, got.Channel)
	assert.Contains(t, got.Tags, model.TagFood)
}

func TestEnrichFallsBackToDescription(t *testing.T) {
	got := Enrich("", "monthly NETFLIX charge")

	assert.Equal(t, "NETFLIX", got.Merchant)
	assert.Contains(t, got.Tags, model.TagSubscription)
}
