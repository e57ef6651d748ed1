package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config is the process configuration, read from the environment.
type Config struct {
	BotToken           string `env:"BOT_TOKEN,required"`
	AppID              string `env:"APP_ID,required"`
	GuildID            string `env:"GUILD_ID,required"`
	TwitchClientID     string `env:"TWITCH_CLIENT_ID,required"`
	TwitchClientSecret string `env:"TWITCH_CLIENT_SECRET,required"`
	TwitchAccessToken  string `env:"TWITCH_ACCESS_TOKEN"`
	TwitchBroadcaster  string `env:"TWITCH_BROADCASTER,required"`
	DBPath             string `env:"DB_PATH" envDefault:"./data/offenses.db"`
	RulesPath          string `env:"RULES_PATH" envDefault:"./data/rules.yaml"`
	LogLevel           string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads .env (when present) and parses the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg(".env file not found, relying on environment variables")
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &cfg, nil
}
