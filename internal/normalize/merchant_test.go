package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMerchant(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "exact table entry",
			raw:  "SWIGGY",
			want: "SWIGGY",
		},
		{
			name: "table entry survives surrounding noise",
			raw:  "POS DEBIT SWIGGY*FOOD ORDER REF 12345",
			want: "SWIGGY",
		},
		{
			name: "instamart collapses to parent brand",
			raw:  "SWIGGYINSTAMART BANGALORE",
			want: "SWIGGY",
		},
		{
			name: "lower case input",
			raw:  "upi-zomato-order",
			want: "ZOMATO",
		},
		{
			name: "specific pattern wins over generic",
			raw:  "JIOMART GROCERY",
			want: "JIOMART",
		},
		{
			name: "gpay aliases to google pay",
			raw:  "GPAY RECHARGE",
			want: "GOOGLE PAY",
		},
		{
			name: "unlisted merchant gets noise stripped and upper cased",
			raw:  "POS purchase at Chai Point",
			want: "CHAI POINT",
		},
		{
			name: "vpa handle is not in table but keeps residue",
			raw:  "UPI-ramesh.kirana@okaxis",
			want: "RAMESH KIRANA OKAXIS",
		},
		{
			name: "pure noise collapses to UNKNOWN",
			raw:  "UPI POS REF NO",
			want: UnknownMerchant,
		},
		{
			name: "empty input",
			raw:  "",
			want: UnknownMerchant,
		},
		{
			name: "punctuation only",
			raw:  "-- // **",
			want: UnknownMerchant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeMerchant(tt.raw))
		})
	}
}

func TestNormalizeMerchantTableOrder(t *testing.T) {
	// Both patterns are substrings of the input; the earlier table
	// entry must win.
	assert.Equal(t, "JIOMART", NormalizeMerchant("JIOMART JIO PAYMENT"))
}

func TestCleanDescription(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "noise words removed",
			raw:  "POS DEBIT Chai Point Koramangala",
			want: "Chai Point Koramangala",
		},
		{
			name: "long reference runs removed",
			raw:  "Paid Chai Point ref UPI402389127364",
			want: "Paid Chai Point",
		},
		{
			name: "whitespace collapsed",
			raw:  "Chai   Point    Koramangala",
			want: "Chai Point Koramangala",
		},
		{
			name: "case preserved",
			raw:  "Coffee at Blue Tokai",
			want: "Coffee Blue Tokai",
		},
		{
			name: "empty stays empty",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanDescription(tt.raw))
		})
	}
}
