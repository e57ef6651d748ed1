package main

import (
	"os"
	"path/filepath"

	"github.com/bwmarrin/discordgo"
	"github.com/nicklaw5/helix/v2"
	"github.com/rs/zerolog"

	"github.com/wizo06/offense-logger/bot"
	"github.com/wizo06/offense-logger/config"
	"github.com/wizo06/offense-logger/handlers"
	"github.com/wizo06/offense-logger/identity"
	"github.com/wizo06/offense-logger/model"
	"github.com/wizo06/offense-logger/rules"
	"github.com/wizo06/offense-logger/service"
	"github.com/wizo06/offense-logger/storage"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), os.ModePerm); err != nil {
		logger.Fatal().Err(err).Msg("failed to create data directory")
	}

	store, err := storage.Open(cfg.DBPath, logger,
		model.PlatformDiscord.OffenseCollection(),
		model.PlatformDiscord.UserCollection(),
		model.PlatformTwitch.OffenseCollection(),
		model.PlatformTwitch.UserCollection(),
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open store")
	}
	defer store.Close()

	catalog, err := rules.Load(cfg.RulesPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load rule catalog")
	}

	session, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create discord session")
	}

	twitchClient, err := helix.NewClient(&helix.Options{
		ClientID:        cfg.TwitchClientID,
		ClientSecret:    cfg.TwitchClientSecret,
		UserAccessToken: cfg.TwitchAccessToken,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create twitch client")
	}
	if cfg.TwitchAccessToken == "" {
		token, err := twitchClient.RequestAppAccessToken(nil)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to request twitch app token")
		}
		twitchClient.SetAppAccessToken(token.Data.AccessToken)
	}

	twitchDir, err := identity.NewTwitchDirectory(twitchClient, cfg.TwitchBroadcaster)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize twitch directory")
	}
	discordDir := identity.NewDiscordDirectory(session, cfg.GuildID)

	svc := service.New(store, catalog,
		identity.NewDiscordResolver(discordDir, store, logger),
		identity.NewTwitchResolver(twitchDir, store, logger),
		logger,
	)

	b := bot.New(cfg, session, svc, catalog, logger)
	handlers.Register(b)
	defer b.Close()

	if err := b.Run(); err != nil {
		logger.Fatal().Err(err).Msg("bot stopped")
	}
}
