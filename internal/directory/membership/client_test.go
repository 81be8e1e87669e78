package membership

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-appmanager/internal/pkg/cache"
)

// The platform resolves lookups per caller token, so cached answers must
// stay scoped to the token that produced them.
func newDirectoryStub(allowedToken string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+allowedToken {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.URL.Path {
		case "/user/42/":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":42,"member_id":7}`))
		case "/member/7/":
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestUserLookupCacheScopedToToken(t *testing.T) {
	srv := newDirectoryStub("alice")
	defer srv.Close()
	ctx := context.Background()
	c := NewClient(srv.URL, time.Second, cache.NewLocal(), time.Minute)

	memberID, found, err := c.UserMemberID(ctx, "alice", 42)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int64(7), memberID)

	// alice's cached resolution must not answer for bob
	_, found, err = c.UserMemberID(ctx, "bob", 42)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUserLookupNegativeCacheScopedToToken(t *testing.T) {
	srv := newDirectoryStub("alice")
	defer srv.Close()
	ctx := context.Background()
	c := NewClient(srv.URL, time.Second, cache.NewLocal(), time.Minute)

	_, found, err := c.UserMemberID(ctx, "bob", 42)
	require.NoError(t, err)
	require.False(t, found)

	// bob's cached miss must not shadow alice's resolution
	memberID, found, err := c.UserMemberID(ctx, "alice", 42)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int64(7), memberID)
}

func TestMemberLookupCacheScopedToToken(t *testing.T) {
	srv := newDirectoryStub("alice")
	defer srv.Close()
	ctx := context.Background()
	c := NewClient(srv.URL, time.Second, cache.NewLocal(), time.Minute)

	ok, err := c.MemberExists(ctx, "alice", 7)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.MemberExists(ctx, "bob", 7)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUserLookupServedFromCache(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":42,"member_id":7}`))
	}))
	defer srv.Close()
	ctx := context.Background()
	c := NewClient(srv.URL, time.Second, cache.NewLocal(), time.Minute)

	for i := 0; i < 3; i++ {
		_, found, err := c.UserMemberID(ctx, "alice", 42)
		require.NoError(t, err)
		require.True(t, found)
	}
	assert.Equal(t, 1, hits, "repeat lookups under the same token hit the cache")
}
