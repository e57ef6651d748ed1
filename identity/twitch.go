package identity

import (
	"fmt"

	"github.com/nicklaw5/helix/v2"

	"github.com/wizo06/offense-logger/model"
)

// TwitchDirectory looks up users through the Helix API. Follow and
// subscription status are checked against the configured broadcaster; a
// failure in either sub-lookup fails the whole resolution so callers fall
// through to the cache instead of silently reporting "not following".
type TwitchDirectory struct {
	client        *helix.Client
	broadcasterID string
}

// NewTwitchDirectory resolves the broadcaster's id once and returns the
// directory bound to it.
func NewTwitchDirectory(client *helix.Client, broadcasterLogin string) (*TwitchDirectory, error) {
	resp, err := client.GetUsers(&helix.UsersParams{Logins: []string{broadcasterLogin}})
	if err != nil {
		return nil, fmt.Errorf("failed to look up broadcaster %s: %w", broadcasterLogin, err)
	}
	if resp.ErrorMessage != "" {
		return nil, fmt.Errorf("failed to look up broadcaster %s: %s", broadcasterLogin, resp.ErrorMessage)
	}
	if len(resp.Data.Users) == 0 {
		return nil, fmt.Errorf("broadcaster %s not found", broadcasterLogin)
	}
	return &TwitchDirectory{client: client, broadcasterID: resp.Data.Users[0].ID}, nil
}

func (d *TwitchDirectory) Lookup(key Key) (*model.Profile, error) {
	params := &helix.UsersParams{}
	if key.ID != "" {
		params.IDs = []string{key.ID}
	} else {
		params.Logins = []string{key.Name}
	}

	resp, err := d.client.GetUsers(params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch twitch user %s: %w", key, err)
	}
	if resp.ErrorMessage != "" {
		return nil, fmt.Errorf("failed to fetch twitch user %s: %s", key, resp.ErrorMessage)
	}
	if len(resp.Data.Users) == 0 {
		return nil, fmt.Errorf("twitch user %s not found", key)
	}
	user := resp.Data.Users[0]

	profile := &model.Profile{
		ID:          user.ID,
		Name:        user.Login,
		DisplayName: user.DisplayName,
		AvatarURL:   user.ProfileImageURL,
		CreatedAt:   user.CreatedAt.UnixMilli(),
	}

	if err := d.follow(user.ID, profile); err != nil {
		return nil, err
	}
	if err := d.subscription(user.ID, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (d *TwitchDirectory) follow(userID string, profile *model.Profile) error {
	resp, err := d.client.GetChannelFollows(&helix.GetChannelFollowsParams{
		BroadcasterID: d.broadcasterID,
		UserID:        userID,
	})
	if err != nil {
		return fmt.Errorf("failed to fetch follow status for %s: %w", userID, err)
	}
	if resp.ErrorMessage != "" {
		return fmt.Errorf("failed to fetch follow status for %s: %s", userID, resp.ErrorMessage)
	}
	if len(resp.Data.Channels) > 0 {
		profile.Follows = true
		profile.FollowedAt = resp.Data.Channels[0].Followed.UnixMilli()
	}
	return nil
}

func (d *TwitchDirectory) subscription(userID string, profile *model.Profile) error {
	resp, err := d.client.GetSubscriptions(&helix.SubscriptionsParams{
		BroadcasterID: d.broadcasterID,
		UserID:        []string{userID},
	})
	if err != nil {
		return fmt.Errorf("failed to fetch subscription for %s: %w", userID, err)
	}
	if resp.ErrorMessage != "" {
		return fmt.Errorf("failed to fetch subscription for %s: %s", userID, resp.ErrorMessage)
	}
	if len(resp.Data.Subscriptions) > 0 {
		sub := resp.Data.Subscriptions[0]
		profile.SubTier = sub.Tier
		profile.SubIsGift = sub.IsGift
		profile.SubGifterID = sub.GifterID
		profile.SubGifterName = sub.GifterName
	}
	return nil
}
