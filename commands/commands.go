// Package commands builds the slash-command schemas registered with Discord.
package commands

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/wizo06/offense-logger/model"
	"github.com/wizo06/offense-logger/rules"
)

// Generate returns the full command set: /discord, /twitch and /status.
func Generate(catalog *rules.Catalog) []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		platformCommand(model.PlatformDiscord, "Commands related to offenses that happened in discord", catalog),
		platformCommand(model.PlatformTwitch, "Commands related to offenses that happened in twitch", catalog),
		{
			Name:        "status",
			Description: "Show bot and host status",
		},
	}
}

func platformCommand(p model.Platform, description string, catalog *rules.Catalog) *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        string(p),
		Description: description,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
				Name:        "offenses",
				Description: "Manage logged offenses",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "list",
						Description: "List the 25 most recent offenses",
						Options:     []*discordgo.ApplicationCommandOption{offenderOption(p, false)},
					},
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "get",
						Description: "Get one offense by its ID",
						Options:     []*discordgo.ApplicationCommandOption{idOption()},
					},
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "create",
						Description: "Log an offense",
						Options:     createOptions(p, catalog),
					},
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "update",
						Description: "Update fields of an offense",
						Options:     updateOptions(p, catalog),
					},
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "delete",
						Description: "Delete one offense by its ID",
						Options:     []*discordgo.ApplicationCommandOption{idOption()},
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
				Name:        "rules",
				Description: "Rule catalog",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "list",
						Description: "See all rules",
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
				Name:        "users",
				Description: "Users with logged offenses",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "list",
						Description: "List all users that appear in the ledger",
					},
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "get",
						Description: "Look up a user's profile",
						Options:     []*discordgo.ApplicationCommandOption{userOption(p)},
					},
				},
			},
		},
	}
}

func createOptions(p model.Platform, catalog *rules.Catalog) []*discordgo.ApplicationCommandOption {
	opts := []*discordgo.ApplicationCommandOption{
		offenderOption(p, true),
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "punishment",
			Description: "The action taken to punish the user",
			Required:    true,
		},
	}
	if p == model.PlatformDiscord {
		opts = append(opts, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "channel",
			Description: "The channel where the offense took place",
			Required:    true,
		})
	}
	opts = append(opts,
		ruleOption(p, catalog, true),
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "notes",
			Description: "Additional notes",
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionAttachment,
			Name:        "screenshot",
			Description: "Screenshot of the offense",
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "reporter",
			Description: "The mod reporting this offense, when filing on behalf of another mod",
		},
	)
	return opts
}

func updateOptions(p model.Platform, catalog *rules.Catalog) []*discordgo.ApplicationCommandOption {
	opts := []*discordgo.ApplicationCommandOption{
		idOption(),
		offenderOption(p, false),
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "punishment",
			Description: "The action taken to punish the user",
		},
	}
	if p == model.PlatformDiscord {
		opts = append(opts, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "channel",
			Description: "The channel where the offense took place",
		})
	}
	opts = append(opts,
		ruleOption(p, catalog, false),
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "notes",
			Description: "Additional notes",
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionAttachment,
			Name:        "screenshot",
			Description: "Screenshot of the offense",
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "reporter",
			Description: "The mod who reported this offense",
		},
	)
	return opts
}

func idOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "id",
		Description: "The offense ID",
		Required:    true,
	}
}

func offenderOption(p model.Platform, required bool) *discordgo.ApplicationCommandOption {
	if p == model.PlatformTwitch {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "offender",
			Description: "The twitch username of the offender",
			Required:    required,
		}
	}
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        "offender",
		Description: "The user that committed the offense",
		Required:    required,
	}
}

func userOption(p model.Platform) *discordgo.ApplicationCommandOption {
	if p == model.PlatformTwitch {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "user",
			Description: "The twitch username",
			Required:    true,
		}
	}
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        "user",
		Description: "The user in question",
		Required:    true,
	}
}

func ruleOption(p model.Platform, catalog *rules.Catalog, required bool) *discordgo.ApplicationCommandOption {
	list := catalog.ForPlatform(p)
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(list))
	for _, r := range list {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  fmt.Sprintf("%d. %s", r.Number, r.ShortName),
			Value: r.Number,
		})
	}
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "rule",
		Description: "The rule that was broken",
		Required:    required,
		Choices:     choices,
	}
}
