// Package service holds the application logic: routing command invocations,
// maintaining the offense ledger, and computing strike aggregates.
package service

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wizo06/offense-logger/identity"
	"github.com/wizo06/offense-logger/model"
	"github.com/wizo06/offense-logger/rules"
	"github.com/wizo06/offense-logger/storage"
)

// pageSize bounds every ledger listing.
const pageSize = 25

// aggregationLimit bounds strike-count scans. The ledger is human-written;
// a single offender crossing this many offenses on one rule is not a case
// worth counting precisely.
const aggregationLimit = 1000

// Service orchestrates offense CRUD and identity resolution for both
// platforms. One invocation runs as one independent unit of work; concurrent
// invocations are not coordinated, so a strike count reported in a reply can
// be stale with respect to a just-committed concurrent write.
type Service struct {
	store     *storage.Store
	catalog   *rules.Catalog
	platforms map[model.Platform]*platformAdapter
	log       zerolog.Logger
}

func New(store *storage.Store, catalog *rules.Catalog, discord, twitch *identity.Resolver, logger zerolog.Logger) *Service {
	return &Service{
		store:   store,
		catalog: catalog,
		platforms: map[model.Platform]*platformAdapter{
			model.PlatformDiscord: {
				platform:     model.PlatformDiscord,
				resolver:     discord,
				needsChannel: true,
			},
			model.PlatformTwitch: {
				platform:       model.PlatformTwitch,
				resolver:       twitch,
				offenderByName: true,
			},
		},
		log: logger.With().Str("component", "service").Logger(),
	}
}

// platformAdapter captures what differs between the two platforms: how the
// offender option is interpreted, which fields are required, and how a user
// is referenced in reply text.
type platformAdapter struct {
	platform       model.Platform
	resolver       *identity.Resolver
	needsChannel   bool
	offenderByName bool
}

// offenderKey interprets the "offender" option: a native user id on the
// community platform, a login name on the stream channel.
func (a *platformAdapter) offenderKey(value string) identity.Key {
	if a.offenderByName {
		return identity.Key{Name: value}
	}
	return identity.Key{ID: value}
}

// userRef renders a user reference for reply text.
func (a *platformAdapter) userRef(id string, profile *model.Profile) string {
	if a.offenderByName {
		name := ""
		if profile != nil {
			name = profile.Name
		}
		return fmt.Sprintf("(%s)%s", id, name)
	}
	return fmt.Sprintf("<@%s>", id)
}
