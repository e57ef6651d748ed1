package handlers

import (
	"github.com/bwmarrin/discordgo"

	"github.com/wizo06/offense-logger/model"
	"github.com/wizo06/offense-logger/utils"
)

func sendReply(s *discordgo.Session, i *discordgo.Interaction, reply *model.Reply) {
	if reply.Embed == nil {
		utils.SendFollowUp(s, i, reply.Content)
		return
	}
	utils.SendFollowUpEmbed(s, i, toMessageEmbed(reply.Embed))
}

func toMessageEmbed(e *model.Embed) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       e.Title,
		Description: e.Description,
		Color:       e.Color,
	}
	for _, f := range e.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}
	if e.ImageURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: e.ImageURL}
	}
	if e.ThumbnailURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: e.ThumbnailURL}
	}
	if e.AuthorName != "" {
		embed.Author = &discordgo.MessageEmbedAuthor{
			Name:    e.AuthorName,
			IconURL: e.AuthorIconURL,
		}
	}
	if e.FooterText != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: e.FooterText}
	}
	return embed
}
