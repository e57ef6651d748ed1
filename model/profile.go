package model

// Profile is the resolved identity of a user on either platform. Discord
// profiles fill the common fields plus JoinedAt; Twitch profiles fill the
// common fields plus the follow/subscription block. Timestamps are unix
// milliseconds; zero means unknown.
type Profile struct {
	ID          string
	Name        string
	DisplayName string
	AvatarURL   string
	CreatedAt   int64

	// Discord only: when the user joined the guild.
	JoinedAt int64

	// Twitch only.
	Follows       bool
	FollowedAt    int64
	SubTier       string
	SubIsGift     bool
	SubGifterID   string
	SubGifterName string
}
