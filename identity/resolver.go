package identity

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wizo06/offense-logger/model"
	"github.com/wizo06/offense-logger/storage"
)

// Resolver produces a best-effort profile for a platform user, preferring
// live truth over the cache.
type Resolver struct {
	platform model.Platform
	dir      Directory
	store    *storage.Store
	toDoc    func(*model.Profile) storage.Document
	fromDoc  func(storage.Document) *model.Profile
	log      zerolog.Logger
}

func NewDiscordResolver(dir Directory, store *storage.Store, logger zerolog.Logger) *Resolver {
	return &Resolver{
		platform: model.PlatformDiscord,
		dir:      dir,
		store:    store,
		toDoc:    discordSnapshot,
		fromDoc:  discordProfile,
		log:      logger.With().Str("component", "identity").Str("platform", "discord").Logger(),
	}
}

func NewTwitchResolver(dir Directory, store *storage.Store, logger zerolog.Logger) *Resolver {
	return &Resolver{
		platform: model.PlatformTwitch,
		dir:      dir,
		store:    store,
		toDoc:    twitchSnapshot,
		fromDoc:  twitchProfile,
		log:      logger.With().Str("component", "identity").Str("platform", "twitch").Logger(),
	}
}

// Resolve looks the user up in the live directory, falling back to the cached
// snapshot and then to a zero-value profile. With strict set, a failed live
// lookup returns ErrNotFound instead of falling back; callers use that mode
// before writing an offense against an unverified identity.
func (r *Resolver) Resolve(key Key, strict bool) (*model.Profile, error) {
	profile, err := r.dir.Lookup(key)
	if err == nil {
		r.RefreshCache(profile)
		return profile, nil
	}

	if strict {
		r.log.Warn().Err(err).Str("key", key.String()).Msg("strict lookup failed")
		return nil, fmt.Errorf("%s: %w", key, ErrNotFound)
	}

	r.log.Debug().Err(err).Str("key", key.String()).Msg("live lookup failed, trying cache")

	if key.ID != "" {
		doc, cacheErr := r.store.Get(r.platform.UserCollection(), key.ID)
		if cacheErr == nil {
			return r.fromDoc(doc), nil
		}
		r.log.Debug().Err(cacheErr).Str("key", key.ID).Msg("cache lookup failed")
	}

	// Callers must always receive some profile.
	return &model.Profile{}, nil
}

// RefreshCache upserts the profile snapshot. Best effort: failures are logged
// and swallowed so they never unwind a committed ledger write.
func (r *Resolver) RefreshCache(profile *model.Profile) {
	if profile == nil || profile.ID == "" {
		return
	}
	if _, err := r.store.Upsert(r.platform.UserCollection(), profile.ID, r.toDoc(profile)); err != nil {
		r.log.Warn().Err(err).Str("user", profile.ID).Msg("profile cache refresh failed")
	}
}
