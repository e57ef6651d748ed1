// Package identity resolves user profiles through a tiered fallback chain:
// live directory lookup first, the cached snapshot second, and a zero-value
// profile last, so callers always receive some profile in lenient mode.
package identity

import (
	"errors"

	"github.com/wizo06/offense-logger/model"
)

// ErrNotFound reports that a strict-mode lookup could not verify the user.
var ErrNotFound = errors.New("user not found")

// Key identifies a user in a platform directory: by ID when known, otherwise
// by name (stream-channel lookups only).
type Key struct {
	ID   string
	Name string
}

func (k Key) String() string {
	if k.ID != "" {
		return k.ID
	}
	return k.Name
}

// Directory is a platform's live user directory.
type Directory interface {
	Lookup(key Key) (*model.Profile, error)
}
