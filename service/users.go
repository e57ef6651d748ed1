package service

import (
	"fmt"
	"strings"

	"github.com/wizo06/offense-logger/identity"
	"github.com/wizo06/offense-logger/model"
	"github.com/wizo06/offense-logger/utils"
)

func (s *Service) usersList(ad *platformAdapter) *model.Reply {
	ids, err := s.store.Distinct(ad.platform.OffenseCollection(), "offenderId")
	if err != nil {
		return model.ErrorReply(err.Error())
	}

	lines := make([]string, 0, len(ids))
	for _, v := range ids {
		id, ok := v.(string)
		if !ok {
			continue
		}
		profile, _ := ad.resolver.Resolve(identity.Key{ID: id}, false)
		lines = append(lines, fmt.Sprintf("%s Account Created: %s",
			ad.userRef(id, profile), utils.FormatTimestamp(profile.CreatedAt)))
	}

	return &model.Reply{Embed: &model.Embed{
		Title:       strings.ToUpper(string(ad.platform)) + " USERS",
		Color:       ad.platform.Color(),
		Description: strings.Join(lines, "\n"),
	}}
}

func (s *Service) usersGet(ad *platformAdapter, inv model.Invocation) *model.Reply {
	userOpt, ok := inv.Options.String("user")
	if !ok {
		return model.ErrorReply(missingOption("user").Error())
	}

	// Lenient, but a live hit opportunistically refreshes the cache.
	profile, err := ad.resolver.Resolve(ad.offenderKey(userOpt), false)
	if err != nil {
		return model.ErrorReply(err.Error())
	}

	return s.userReply(ad, profile)
}
