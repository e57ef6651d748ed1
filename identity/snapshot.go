package identity

import (
	"github.com/wizo06/offense-logger/model"
	"github.com/wizo06/offense-logger/storage"
)

// Snapshot codecs translate between profiles and the cached documents in the
// {platform}Users collections. Field names match the documents written by
// earlier deployments, so upgrades keep their cache.

func discordSnapshot(p *model.Profile) storage.Document {
	return storage.Document{
		"userName":             p.Name,
		"userTag":              p.DisplayName,
		"userAvatarUrl":        p.AvatarURL,
		"userCreatedTimestamp": p.CreatedAt,
		"userJoinedTimestamp":  p.JoinedAt,
	}
}

func discordProfile(doc storage.Document) *model.Profile {
	return &model.Profile{
		ID:          doc.ID(),
		Name:        docString(doc, "userName"),
		DisplayName: docString(doc, "userTag"),
		AvatarURL:   docString(doc, "userAvatarUrl"),
		CreatedAt:   docInt64(doc, "userCreatedTimestamp"),
		JoinedAt:    docInt64(doc, "userJoinedTimestamp"),
	}
}

func twitchSnapshot(p *model.Profile) storage.Document {
	return storage.Document{
		"userName":                   p.Name,
		"userDisplayName":            p.DisplayName,
		"userProfilePictureUrl":      p.AvatarURL,
		"userCreationDate":           p.CreatedAt,
		"userFollowsBroadcaster":     p.Follows,
		"userFollowBroadcasterDate":  p.FollowedAt,
		"userSubscriptionTier":       p.SubTier,
		"userSubscriptionIsGift":     p.SubIsGift,
		"userSubscriptionGifterId":   p.SubGifterID,
		"userSubscriptionGifterName": p.SubGifterName,
	}
}

func twitchProfile(doc storage.Document) *model.Profile {
	return &model.Profile{
		ID:            doc.ID(),
		Name:          docString(doc, "userName"),
		DisplayName:   docString(doc, "userDisplayName"),
		AvatarURL:     docString(doc, "userProfilePictureUrl"),
		CreatedAt:     docInt64(doc, "userCreationDate"),
		Follows:       docBool(doc, "userFollowsBroadcaster"),
		FollowedAt:    docInt64(doc, "userFollowBroadcasterDate"),
		SubTier:       docString(doc, "userSubscriptionTier"),
		SubIsGift:     docBool(doc, "userSubscriptionIsGift"),
		SubGifterID:   docString(doc, "userSubscriptionGifterId"),
		SubGifterName: docString(doc, "userSubscriptionGifterName"),
	}
}

func docString(doc storage.Document, key string) string {
	v, _ := doc[key].(string)
	return v
}

func docBool(doc storage.Document, key string) bool {
	v, _ := doc[key].(bool)
	return v
}

func docInt64(doc storage.Document, key string) int64 {
	switch v := doc[key].(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	case int:
		return int64(v)
	}
	return 0
}
