package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paisatrack/paisatrack/internal/model"
)

func TestDetectChannel(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.Channel
	}{
		{"upi keyword", "UPI payment of Rs 100", model.ChannelUPI},
		{"vpa handle", "paid to ramesh@okaxis", model.ChannelUPI},
		{"pos", "POS purchase at DMART", model.ChannelCard},
		{"card", "spent on HDFC Bank Card XX1234", model.ChannelCard},
		{"visa", "VISA txn at store", model.ChannelCard},
		{"mastercard", "MASTERCARD payment", model.ChannelCard},
		{"neft", "NEFT transfer to landlord", model.ChannelNetBanking},
		{"rtgs", "RTGS settlement", model.ChannelNetBanking},
		{"imps", "IMPS Ref 1234", model.ChannelNetBanking},
		{"atm", "ATM withdrawal", model.ChannelCash},
		{"cash", "CASH withdrawal at branch", model.ChannelCash},
		// "deposit" embeds POS, and the Card keywords are checked first.
		{"cash deposit hits pos substring", "CASH deposit at branch", model.ChannelCard},
		{"no keywords", "Rs 500 debited at SWIGGY", model.ChannelOther},
		{"empty", "", model.ChannelOther},
		{"lower case keywords", "upi payment via phonepe", model.ChannelUPI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectChannel(tt.text))
		})
	}
}

func TestDetectChannelPriority(t *testing.T) {
	// UPI outranks Card even when both keyword sets appear.
	assert.Equal(t, model.ChannelUPI, DetectChannel("UPI payment via CARD POS"))
	// Card outranks NetBanking.
	assert.Equal(t, model.ChannelCard, DetectChannel("CARD payment via NEFT"))
	// NetBanking outranks Cash.
	assert.Equal(t, model.ChannelNetBanking, DetectChannel("IMPS CASH transfer"))
}
