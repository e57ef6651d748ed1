package service

import (
	"fmt"
	"strings"

	"github.com/wizo06/offense-logger/model"
	"github.com/wizo06/offense-logger/utils"
)

func (s *Service) offenseReply(ad *platformAdapter, offense model.Offense, profile *model.Profile) *model.Reply {
	embed := &model.Embed{
		Title:         strings.ToUpper(string(ad.platform)) + " OFFENSE",
		Description:   offense.Notes,
		Color:         ad.platform.Color(),
		AuthorName:    profile.DisplayName,
		AuthorIconURL: profile.AvatarURL,
		ImageURL:      offense.ScreenshotURL,
		FooterText:    "Offense ID: " + offense.ID,
	}

	embed.Fields = append(embed.Fields,
		model.EmbedField{Name: "Offender", Value: ad.userRef(offense.OffenderID, profile), Inline: true},
		model.EmbedField{Name: "Account Created", Value: utils.FormatTimestamp(profile.CreatedAt), Inline: true},
	)
	if ad.platform == model.PlatformDiscord {
		embed.Fields = append(embed.Fields,
			model.EmbedField{Name: "Joined Server", Value: utils.FormatTimestamp(profile.JoinedAt), Inline: true},
			model.EmbedField{Name: "Channel", Value: fmt.Sprintf("<#%s>", offense.ChannelID), Inline: true},
		)
	} else {
		embed.Fields = append(embed.Fields,
			model.EmbedField{Name: "Follow Date", Value: followDate(profile), Inline: true},
			model.EmbedField{Name: "Subscription Tier", Value: orNA(profile.SubTier), Inline: true},
			model.EmbedField{Name: "Subscription Gifted by", Value: orNA(profile.SubGifterName), Inline: true},
		)
	}

	embed.Fields = append(embed.Fields,
		model.EmbedField{Name: "Punishment", Value: offense.Punishment, Inline: true},
		model.EmbedField{Name: "Reported by", Value: fmt.Sprintf("<@%s>", offense.ReporterID), Inline: true},
		model.EmbedField{Name: "Time of report", Value: utils.FormatTimestamp(offense.Timestamp), Inline: true},
	)

	if rule, ok := s.catalog.Lookup(ad.platform, offense.Rule); ok {
		embed.Fields = append(embed.Fields, model.EmbedField{
			Name:   fmt.Sprintf("%d. %s", rule.Number, rule.ShortName),
			Value:  rule.Description,
			Inline: true,
		})
	}
	if label := s.strikeLabelFor(ad, offense); label != "" {
		embed.Fields = append(embed.Fields, model.EmbedField{Name: "Strikes", Value: label, Inline: true})
	}

	return &model.Reply{Embed: embed}
}

func (s *Service) userReply(ad *platformAdapter, profile *model.Profile) *model.Reply {
	embed := &model.Embed{
		Title:         strings.ToUpper(string(ad.platform)) + " USER",
		Color:         ad.platform.Color(),
		AuthorName:    profile.DisplayName,
		AuthorIconURL: profile.AvatarURL,
		ThumbnailURL:  profile.AvatarURL,
		FooterText:    "User ID: " + profile.ID,
	}

	embed.Fields = append(embed.Fields,
		model.EmbedField{Name: "User", Value: ad.userRef(profile.ID, profile), Inline: true},
		model.EmbedField{Name: "Account Created", Value: utils.FormatTimestamp(profile.CreatedAt), Inline: true},
	)
	if ad.platform == model.PlatformDiscord {
		embed.Fields = append(embed.Fields,
			model.EmbedField{Name: "Joined Server", Value: utils.FormatTimestamp(profile.JoinedAt), Inline: true},
		)
	} else {
		embed.Fields = append(embed.Fields,
			model.EmbedField{Name: "Follow Date", Value: followDate(profile), Inline: true},
			model.EmbedField{Name: "Subscription Tier", Value: orNA(profile.SubTier), Inline: true},
			model.EmbedField{Name: "Subscription Gifted by", Value: orNA(profile.SubGifterName), Inline: true},
		)
	}

	return &model.Reply{Embed: embed}
}

func followDate(profile *model.Profile) string {
	if !profile.Follows {
		return "N/A"
	}
	return utils.FormatTimestamp(profile.FollowedAt)
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
