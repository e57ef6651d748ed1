package model

// Platform identifies which community surface an offense happened on.
type Platform string

const (
	PlatformDiscord Platform = "discord"
	PlatformTwitch  Platform = "twitch"
)

// OffenseCollection returns the name of the ledger collection for this platform.
func (p Platform) OffenseCollection() string {
	return string(p) + "Offenses"
}

// UserCollection returns the name of the profile snapshot collection for this platform.
func (p Platform) UserCollection() string {
	return string(p) + "Users"
}

// Color is the embed accent color used for this platform.
func (p Platform) Color() int {
	switch p {
	case PlatformTwitch:
		return 0x9146ff
	default:
		return 0x5865f2
	}
}
