package model

// Channel identifies the payment rail a transaction travelled over.
type Channel string

// Payment channel constants.
const (
	ChannelUPI        Channel = "UPI"
	ChannelCard       Channel = "Card"
	ChannelNetBanking Channel = "NetBanking"
	ChannelCash       Channel = "Cash"
	ChannelOther      Channel = "Other"
)

// Valid reports whether c is one of the known channels.
func (c Channel) Valid() bool {
	switch c {
	case ChannelUPI, ChannelCard, ChannelNetBanking, ChannelCash, ChannelOther:
		return true
	}
	return false
}
