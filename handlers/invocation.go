package handlers

import (
	"github.com/bwmarrin/discordgo"

	"github.com/wizo06/offense-logger/model"
)

// buildInvocation converts an interaction into the structured command record
// the service consumes. Options are flattened to typed values; user and
// channel options become their IDs, attachments become their URL.
func buildInvocation(i *discordgo.InteractionCreate) model.Invocation {
	data := i.ApplicationCommandData()

	inv := model.Invocation{
		Command:   data.Name,
		Options:   model.Options{},
		InvokerID: invokerID(i),
	}
	if ts, err := discordgo.SnowflakeTimestamp(i.ID); err == nil {
		inv.CreatedAt = ts.UnixMilli()
	}

	opts := data.Options
	if len(opts) == 1 && opts[0].Type == discordgo.ApplicationCommandOptionSubCommandGroup {
		inv.Group = opts[0].Name
		opts = opts[0].Options
	}
	if len(opts) == 1 && opts[0].Type == discordgo.ApplicationCommandOptionSubCommand {
		inv.Subcommand = opts[0].Name
		opts = opts[0].Options
	}

	for _, opt := range opts {
		switch opt.Type {
		case discordgo.ApplicationCommandOptionString:
			inv.Options[opt.Name] = opt.StringValue()
		case discordgo.ApplicationCommandOptionInteger:
			inv.Options[opt.Name] = int(opt.IntValue())
		case discordgo.ApplicationCommandOptionBoolean:
			inv.Options[opt.Name] = opt.BoolValue()
		case discordgo.ApplicationCommandOptionUser:
			inv.Options[opt.Name] = opt.UserValue(nil).ID
		case discordgo.ApplicationCommandOptionChannel:
			inv.Options[opt.Name] = opt.ChannelValue(nil).ID
		case discordgo.ApplicationCommandOptionAttachment:
			id, ok := opt.Value.(string)
			if !ok {
				continue
			}
			if att, ok := data.Resolved.Attachments[id]; ok {
				inv.Options[opt.Name] = att.URL
			}
		}
	}
	return inv
}

func invokerID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
