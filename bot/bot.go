package bot

import (
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/wizo06/offense-logger/config"
	"github.com/wizo06/offense-logger/rules"
	"github.com/wizo06/offense-logger/service"
)

type Bot struct {
	Session *discordgo.Session
	Service *service.Service
	Config  *config.Config
	Catalog *rules.Catalog
	Log     zerolog.Logger

	CommandHandlers map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate)
}

func New(cfg *config.Config, session *discordgo.Session, svc *service.Service, catalog *rules.Catalog, logger zerolog.Logger) *Bot {
	session.Identify.Intents = discordgo.IntentsGuilds
	session.StateEnabled = false

	return &Bot{
		Session: session,
		Service: svc,
		Config:  cfg,
		Catalog: catalog,
		Log:     logger.With().Str("component", "bot").Logger(),
	}
}

func (b *Bot) Close() {
	b.Log.Info().Msg("gracefully shutting down")
	b.Session.Close()
}
