package identity

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nicklaw5/helix/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHelix(t *testing.T, handler http.Handler) *helix.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := helix.NewClient(&helix.Options{
		ClientID:       "test-client",
		AppAccessToken: "test-token",
		APIBaseURL:     srv.URL,
	})
	require.NoError(t, err)
	return client
}

func helixMux(t *testing.T, followersBody, subscriptionsBody string) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("login") {
		case "streamer":
			fmt.Fprint(w, `{"data":[{"id":"B1","login":"streamer","display_name":"Streamer","created_at":"2015-05-02T13:14:15Z"}]}`)
		case "viewer":
			fmt.Fprint(w, `{"data":[{"id":"T1","login":"viewer","display_name":"Viewer","profile_image_url":"https://cdn.example.com/t.png","created_at":"2017-01-02T03:04:05Z"}]}`)
		default:
			fmt.Fprint(w, `{"data":[]}`)
		}
	})
	mux.HandleFunc("/channels/followers", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "B1", r.URL.Query().Get("broadcaster_id"))
		assert.Equal(t, "T1", r.URL.Query().Get("user_id"))
		fmt.Fprint(w, followersBody)
	})
	mux.HandleFunc("/subscriptions", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "B1", r.URL.Query().Get("broadcaster_id"))
		fmt.Fprint(w, subscriptionsBody)
	})
	return mux
}

func TestTwitchLookupFillsFollowAndSubscription(t *testing.T) {
	client := newTestHelix(t, helixMux(t,
		`{"total":1,"data":[{"user_id":"T1","user_login":"viewer","followed_at":"2020-01-02T03:04:05Z"}]}`,
		`{"data":[{"broadcaster_id":"B1","user_id":"T1","tier":"2000","is_gift":true,"gifter_id":"G1","gifter_name":"generous"}]}`,
	))

	dir, err := NewTwitchDirectory(client, "streamer")
	require.NoError(t, err)

	profile, err := dir.Lookup(Key{Name: "viewer"})
	require.NoError(t, err)

	assert.Equal(t, "T1", profile.ID)
	assert.Equal(t, "viewer", profile.Name)
	assert.Equal(t, "Viewer", profile.DisplayName)
	assert.Equal(t, "https://cdn.example.com/t.png", profile.AvatarURL)
	assert.Equal(t, time.Date(2017, 1, 2, 3, 4, 5, 0, time.UTC).UnixMilli(), profile.CreatedAt)

	assert.True(t, profile.Follows)
	assert.Equal(t, time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC).UnixMilli(), profile.FollowedAt)
	assert.Equal(t, "2000", profile.SubTier)
	assert.True(t, profile.SubIsGift)
	assert.Equal(t, "G1", profile.SubGifterID)
	assert.Equal(t, "generous", profile.SubGifterName)
}

func TestTwitchLookupNonFollower(t *testing.T) {
	client := newTestHelix(t, helixMux(t,
		`{"total":0,"data":[]}`,
		`{"data":[]}`,
	))

	dir, err := NewTwitchDirectory(client, "streamer")
	require.NoError(t, err)

	profile, err := dir.Lookup(Key{Name: "viewer"})
	require.NoError(t, err)

	assert.False(t, profile.Follows)
	assert.Zero(t, profile.FollowedAt)
	assert.Empty(t, profile.SubTier)
}

func TestTwitchLookupUnknownUser(t *testing.T) {
	client := newTestHelix(t, helixMux(t, `{"total":0,"data":[]}`, `{"data":[]}`))

	dir, err := NewTwitchDirectory(client, "streamer")
	require.NoError(t, err)

	_, err = dir.Lookup(Key{Name: "ghost"})
	assert.Error(t, err)
}
