package membership

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go-appmanager/internal/metrics"
	"go-appmanager/internal/pkg/cache"
)

// Directory answers existence questions about users and members that live
// in the external membership platform. Lookups are authenticated with the
// caller's own bearer token so the platform applies its own access rules.
type Directory interface {
	// UserExists reports whether the user id resolves on the platform.
	UserExists(ctx context.Context, token string, userID int64) (bool, error)
	// MemberExists reports whether the member id resolves on the platform.
	MemberExists(ctx context.Context, token string, memberID int64) (bool, error)
	// UserMemberID returns the member the user belongs to. found is false
	// when the user does not resolve.
	UserMemberID(ctx context.Context, token string, userID int64) (memberID int64, found bool, err error)
}

type Client struct {
	baseURL  string
	http     *http.Client
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewClient(baseURL string, timeout time.Duration, c cache.Cache, cacheTTL time.Duration) *Client {
	return &Client{
		baseURL:  baseURL,
		http:     &http.Client{Timeout: timeout},
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

// tokenDigest scopes cache entries to the credentials that produced
// them. Lookups run under the actor's own token and the platform applies
// its access rules per token, so one actor's resolution must never answer
// for another.
func tokenDigest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:8])
}

type userPayload struct {
	ID       int64 `json:"id"`
	MemberID int64 `json:"member_id"`
}

func (c *Client) UserExists(ctx context.Context, token string, userID int64) (bool, error) {
	_, found, err := c.UserMemberID(ctx, token, userID)
	return found, err
}

func (c *Client) UserMemberID(ctx context.Context, token string, userID int64) (int64, bool, error) {
	key := fmt.Sprintf("dir:user:%s:%d", tokenDigest(token), userID)
	if raw, err := c.cache.Get(ctx, key); err == nil && raw != "" {
		metrics.DirectoryLookups.WithLabelValues("user", "cache").Inc()
		var p userPayload
		if err := json.Unmarshal([]byte(raw), &p); err == nil {
			if p.ID == 0 {
				return 0, false, nil
			}
			return p.MemberID, true, nil
		}
	}
	status, body, err := c.get(ctx, token, fmt.Sprintf("%s/user/%d/", c.baseURL, userID))
	if err != nil {
		metrics.DirectoryLookups.WithLabelValues("user", "error").Inc()
		return 0, false, err
	}
	if status == http.StatusNotFound {
		metrics.DirectoryLookups.WithLabelValues("user", "miss").Inc()
		c.cache.SetEX(ctx, key, `{"id":0}`, c.cacheTTL)
		return 0, false, nil
	}
	if status != http.StatusOK {
		metrics.DirectoryLookups.WithLabelValues("user", "error").Inc()
		return 0, false, fmt.Errorf("membership: user lookup status %d", status)
	}
	var p userPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return 0, false, fmt.Errorf("membership: decode user: %w", err)
	}
	metrics.DirectoryLookups.WithLabelValues("user", "hit").Inc()
	c.cache.SetEX(ctx, key, string(body), c.cacheTTL)
	return p.MemberID, true, nil
}

func (c *Client) MemberExists(ctx context.Context, token string, memberID int64) (bool, error) {
	key := fmt.Sprintf("dir:member:%s:%d", tokenDigest(token), memberID)
	if raw, err := c.cache.Get(ctx, key); err == nil && raw != "" {
		metrics.DirectoryLookups.WithLabelValues("member", "cache").Inc()
		return raw == "1", nil
	}
	status, _, err := c.get(ctx, token, fmt.Sprintf("%s/member/%d/", c.baseURL, memberID))
	if err != nil {
		metrics.DirectoryLookups.WithLabelValues("member", "error").Inc()
		return false, err
	}
	switch status {
	case http.StatusOK:
		metrics.DirectoryLookups.WithLabelValues("member", "hit").Inc()
		c.cache.SetEX(ctx, key, "1", c.cacheTTL)
		return true, nil
	case http.StatusNotFound:
		metrics.DirectoryLookups.WithLabelValues("member", "miss").Inc()
		c.cache.SetEX(ctx, key, "0", c.cacheTTL)
		return false, nil
	default:
		metrics.DirectoryLookups.WithLabelValues("member", "error").Inc()
		return false, fmt.Errorf("membership: member lookup status %d", status)
	}
}

func (c *Client) get(ctx context.Context, token, url string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}
