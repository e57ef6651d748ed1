package identity

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/wizo06/offense-logger/model"
)

// DiscordDirectory looks up guild members through the gateway session.
type DiscordDirectory struct {
	session *discordgo.Session
	guildID string
}

func NewDiscordDirectory(session *discordgo.Session, guildID string) *DiscordDirectory {
	return &DiscordDirectory{session: session, guildID: guildID}
}

func (d *DiscordDirectory) Lookup(key Key) (*model.Profile, error) {
	if key.ID == "" {
		return nil, fmt.Errorf("discord lookup requires a user id")
	}

	member, err := d.session.GuildMember(d.guildID, key.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guild member %s: %w", key.ID, err)
	}

	created, err := discordgo.SnowflakeTimestamp(member.User.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse snowflake %s: %w", member.User.ID, err)
	}

	return &model.Profile{
		ID:          member.User.ID,
		Name:        member.User.Username,
		DisplayName: member.User.String(),
		AvatarURL:   member.User.AvatarURL(""),
		CreatedAt:   created.UnixMilli(),
		JoinedAt:    member.JoinedAt.UnixMilli(),
	}, nil
}
