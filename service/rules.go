package service

import (
	"fmt"
	"strings"

	"github.com/wizo06/offense-logger/model"
)

func (s *Service) rulesList(ad *platformAdapter) *model.Reply {
	embed := &model.Embed{
		Title: strings.ToUpper(string(ad.platform)) + " RULES",
		Color: ad.platform.Color(),
	}
	for _, rule := range s.catalog.ForPlatform(ad.platform) {
		name := fmt.Sprintf("%d. %s", rule.Number, rule.ShortName)
		if rule.Bannable {
			name += " ⛔"
		}
		embed.Fields = append(embed.Fields, model.EmbedField{Name: name, Value: rule.Description})
	}
	return &model.Reply{Embed: embed}
}
