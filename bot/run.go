package bot

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/wizo06/offense-logger/commands"
)

// Run opens the gateway connection, registers the command set for the
// configured guild and blocks until the process is signalled.
func (b *Bot) Run() error {
	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("failed to open gateway connection: %w", err)
	}

	cmds := commands.Generate(b.Catalog)
	b.Log.Info().Int("count", len(cmds)).Str("guild", b.Config.GuildID).Msg("registering commands")
	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.Config.AppID, b.Config.GuildID, cmds); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	b.Log.Info().Msg("bot is now running, press CTRL-C to exit")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc
	return nil
}
