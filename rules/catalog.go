// Package rules loads the static rule catalog. The catalog is read once at
// startup and never mutated afterwards.
package rules

import (
	"fmt"
	"sort"

	"github.com/spf13/viper"

	"github.com/wizo06/offense-logger/model"
)

// Catalog is the preloaded rule set, keyed by (platform, number).
type Catalog struct {
	byPlatform map[model.Platform][]model.Rule
}

// Load reads the rule catalog from the YAML file at path. Each platform key
// ("discord", "twitch") holds a list of rule entries.
func Load(path string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	c := &Catalog{byPlatform: make(map[model.Platform][]model.Rule)}
	for _, p := range []model.Platform{model.PlatformDiscord, model.PlatformTwitch} {
		var list []model.Rule
		if err := v.UnmarshalKey(string(p), &list); err != nil {
			return nil, fmt.Errorf("failed to parse %s rules: %w", p, err)
		}
		if len(list) == 0 {
			return nil, fmt.Errorf("no rules configured for platform %s", p)
		}
		sort.Slice(list, func(i, j int) bool { return list[i].Number < list[j].Number })
		c.byPlatform[p] = list
	}
	return c, nil
}

// ForPlatform returns the platform's rules sorted by number ascending. The
// returned slice must not be modified.
func (c *Catalog) ForPlatform(p model.Platform) []model.Rule {
	return c.byPlatform[p]
}

// Lookup returns the rule with the given number on the platform.
func (c *Catalog) Lookup(p model.Platform, number int) (model.Rule, bool) {
	for _, r := range c.byPlatform[p] {
		if r.Number == number {
			return r, true
		}
	}
	return model.Rule{}, false
}
