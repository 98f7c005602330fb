package normalize

import (
	"strings"

	"github.com/paisatrack/paisatrack/internal/model"
)

// channelRule maps a keyword set to a channel. Rules are checked in
// declaration order and the first hit wins, so UPI outranks Card even
// when both keywords appear.
type channelRule struct {
	channel  model.Channel
	keywords []string
}

var channelRules = []channelRule{
	{model.ChannelUPI, []string{"UPI", "@"}},
	{model.ChannelCard, []string{"POS", "CARD", "VISA", "MASTERCARD"}},
	{model.ChannelNetBanking, []string{"NEFT", "RTGS", "IMPS"}},
	{model.ChannelCash, []string{"ATM", "CASH"}},
}

// DetectChannel classifies the payment rail from raw transaction text.
func DetectChannel(text string) model.Channel {
	upper := strings.ToUpper(text)
	for _, rule := range channelRules {
		for _, kw := range rule.keywords {
			if strings.Contains(upper, kw) {
				return rule.channel
			}
		}
	}
	return model.ChannelOther
}
