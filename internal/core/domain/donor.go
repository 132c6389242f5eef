package domain

// Channel is how a donor was acquired.
type Channel string

const (
	ChannelEmail    Channel = "Email"
	ChannelSocial   Channel = "Social"
	ChannelReferral Channel = "Referral"
	ChannelDirect   Channel = "Direct"
)

// Channels lists every acquisition channel.
var Channels = []Channel{ChannelEmail, ChannelSocial, ChannelReferral, ChannelDirect}

// Donor is a simulated supporter. Donations counts gifts made; TotalDonated
// is the lifetime value in dollars.
type Donor struct {
	ID           int64   `json:"id"`
	Donations    int     `json:"donations"`
	Channel      Channel `json:"channel"`
	TotalDonated float64 `json:"total_donated"`
}
