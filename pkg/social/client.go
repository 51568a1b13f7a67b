// Package social drives the publishing platform through a real browser
// session. The Client interface is what the orchestrator programs against; the
// rod-backed implementation lives in rod.go.
package social

import (
	"context"
	"errors"
	"time"

	"github.com/pulsebot/pulsebot/pkg/types"
)

// ErrNotLoggedIn reports that the session could not be authenticated. Callers
// treat it as fatal for the whole cycle.
var ErrNotLoggedIn = errors.New("social: not logged in")

// Client is a logged-in platform session.
type Client interface {
	// Init opens the browser, restores or establishes the session, and
	// verifies login. It must be called before any other method.
	Init(ctx context.Context) error

	// Close tears down the browser. Safe to call after a failed Init.
	Close() error

	// PostUpdate publishes a single post from the home composer.
	PostUpdate(ctx context.Context, text string) error

	// PostThread publishes parts as one connected thread, in order.
	PostThread(ctx context.Context, parts []string) error

	// Reply posts text as a comment under the post at url.
	Reply(ctx context.Context, url string, text string) error

	// RecentPosts returns up to max non-pinned posts from username's
	// profile, newest first. Posts outside window are still returned;
	// recency gating is the caller's concern.
	RecentPosts(ctx context.Context, username string, window time.Duration, max int) ([]types.Post, error)
}
