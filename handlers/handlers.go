// Package handlers glues the Discord gateway to the service: interactions in,
// structured replies out.
package handlers

import (
	"github.com/bwmarrin/discordgo"

	"github.com/wizo06/offense-logger/bot"
	"github.com/wizo06/offense-logger/utils"
)

func Register(b *bot.Bot) {
	b.CommandHandlers = map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate){
		"discord": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			handleCommand(s, i, b)
		},
		"twitch": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			handleCommand(s, i, b)
		},
		"status": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			StatusHandler(s, i, b)
		},
	}

	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		b.Log.Info().Str("user", r.User.String()).Msg("logged in")
	})
	b.Session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionApplicationCommand {
			return
		}
		if h, ok := b.CommandHandlers[i.ApplicationCommandData().Name]; ok {
			h(s, i)
		}
	})
}

func handleCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	inv := buildInvocation(i)

	// Unmatched invocations are ignored. Checked before deferring: a deferred
	// interaction that never gets an edit stays in "thinking" forever.
	if !b.Service.Recognized(inv) {
		return
	}

	b.Log.Info().
		Str("invoker", inv.InvokerID).
		Str("command", inv.Command).
		Str("group", inv.Group).
		Str("subcommand", inv.Subcommand).
		Msg("command received")

	// The rule catalog is static; keep it out of channel history.
	ephemeral := inv.Group == "rules"
	if err := utils.DeferResponse(s, i, ephemeral); err != nil {
		b.Log.Error().Err(err).Msg("failed to defer interaction")
		return
	}

	if reply := b.Service.Dispatch(inv); reply != nil {
		sendReply(s, i.Interaction, reply)
	}
}
