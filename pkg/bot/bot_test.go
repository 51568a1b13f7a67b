package bot

import (
	"context"
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pulsebot/pulsebot/pkg/config"
	"github.com/pulsebot/pulsebot/pkg/ledger"
	"github.com/pulsebot/pulsebot/pkg/rotation"
	"github.com/pulsebot/pulsebot/pkg/segment"
	"github.com/pulsebot/pulsebot/pkg/types"
)

type fakeGenerator struct {
	postErr    error
	commentErr error
	rewriteErr error
	postText   string
}

func (g *fakeGenerator) ProjectPost(_ context.Context, p types.Project) (string, error) {
	if g.postErr != nil {
		return "", g.postErr
	}
	if g.postText != "" {
		return g.postText, nil
	}
	return "generated post about " + p.Name, nil
}

func (g *fakeGenerator) Comment(_ context.Context, username string, _ types.Post) (string, error) {
	if g.commentErr != nil {
		return "", g.commentErr
	}
	return "generated comment for @" + username, nil
}

func (g *fakeGenerator) Rewrite(_ context.Context, text string) (string, error) {
	if g.rewriteErr != nil {
		return "", g.rewriteErr
	}
	return "rewritten: " + text, nil
}

type fakeClient struct {
	initErr     error
	closeCalls  int
	posted      []string
	threads     [][]string
	repliedURLs []string
	postsByUser map[string][]types.Post
}

func (c *fakeClient) Init(context.Context) error { return c.initErr }

func (c *fakeClient) Close() error {
	c.closeCalls++
	return nil
}

func (c *fakeClient) PostUpdate(_ context.Context, text string) error {
	c.posted = append(c.posted, text)
	return nil
}

func (c *fakeClient) PostThread(_ context.Context, parts []string) error {
	c.threads = append(c.threads, parts)
	return nil
}

func (c *fakeClient) Reply(_ context.Context, url string, _ string) error {
	c.repliedURLs = append(c.repliedURLs, url)
	return nil
}

func (c *fakeClient) RecentPosts(_ context.Context, username string, _ time.Duration, max int) ([]types.Post, error) {
	posts := c.postsByUser[username]
	if len(posts) > max {
		posts = posts[:max]
	}
	return posts, nil
}

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func recentStamp() string { return testNow.Add(-30 * time.Minute).Format("2006-01-02 15:04:05") }
func staleStamp() string  { return testNow.Add(-5 * time.Hour).Format("2006-01-02 15:04:05") }

func newTestBot(t *testing.T, cfg config.Config, gen *fakeGenerator, client *fakeClient) *Bot {
	t.Helper()
	dir := t.TempDir()

	commented, err := ledger.Open(filepath.Join(dir, "commented_posts.json"))
	if err != nil {
		t.Fatal(err)
	}
	regenerated, err := ledger.Open(filepath.Join(dir, "regenerated_posts.json"))
	if err != nil {
		t.Fatal(err)
	}

	return &Bot{
		cfg:         cfg,
		gen:         gen,
		client:      client,
		cursor:      rotation.Load(filepath.Join(dir, "bot_state.json")),
		commented:   commented,
		regenerated: regenerated,
		rng:         rand.New(rand.NewSource(1)),
		sleep:       func(time.Duration) {},
		now:         func() time.Time { return testNow },
		state:       StateIdle,
	}
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Projects = []types.Project{
		{Name: "Alpha", Handle: "@alpha", Website: "alpha.xyz", Category: "L2"},
		{Name: "Beta", Handle: "@beta", Website: "beta.xyz", Category: "DeFi"},
	}
	cfg.Accounts = []string{"commenter1"}
	cfg.RegenerationAccounts = []string{"regen1"}
	cfg.Keywords = []string{"defi"}
	cfg.ProjectsPerCycle = 2
	cfg.AccountsPerCycle = 1
	return cfg
}

func TestRunCycle_SessionFailureAbortsAndCloses(t *testing.T) {
	client := &fakeClient{initErr: fmt.Errorf("browser gone")}
	b := newTestBot(t, testConfig(), &fakeGenerator{}, client)

	err := b.RunCycle(context.Background())
	if err == nil {
		t.Fatal("expected error when session init fails")
	}
	if b.State() != StateFailed {
		t.Errorf("state = %s, want %s", b.State(), StateFailed)
	}
	if client.closeCalls == 0 {
		t.Error("client must be closed even after failed init")
	}
	if len(client.posted) != 0 || len(client.repliedURLs) != 0 {
		t.Error("no publishing may happen without a session")
	}
}

func TestRunCycle_HappyPath(t *testing.T) {
	cfg := testConfig()
	client := &fakeClient{
		postsByUser: map[string][]types.Post{
			"commenter1": {{
				ID: "c1", URL: "https://x.com/commenter1/status/c1",
				Text: "big moves in DeFi today", Username: "commenter1",
				Timestamp: recentStamp(),
			}},
			"regen1": {{
				ID: "r1", URL: "https://x.com/regen1/status/r1",
				Text: "an original post worth rewriting", Username: "regen1",
				Timestamp: recentStamp(),
			}},
		},
	}
	b := newTestBot(t, cfg, &fakeGenerator{}, client)

	if err := b.RunCycle(context.Background()); err != nil {
		t.Fatalf("RunCycle failed: %v", err)
	}
	if b.State() != StateIdle {
		t.Errorf("state = %s, want %s", b.State(), StateIdle)
	}

	// 2 project posts, plus the regenerated post from each of the two
	// regenerate passes. The second pass must skip r1 via the ledger.
	var regenCount int
	for _, p := range client.posted {
		if strings.HasPrefix(p, "rewritten:") {
			regenCount++
		}
	}
	if regenCount != 1 {
		t.Errorf("regenerated posts published = %d, want 1 (ledger must block the second pass)", regenCount)
	}
	if len(client.posted) != 3 {
		t.Errorf("total posts = %d, want 3: %v", len(client.posted), client.posted)
	}

	if len(client.repliedURLs) != 1 {
		t.Fatalf("replies = %d, want 1", len(client.repliedURLs))
	}
	if !b.commented.Contains("c1") {
		t.Error("commented ledger must record c1")
	}
	if !b.regenerated.Contains("r1") {
		t.Error("regenerated ledger must record r1")
	}
	if client.closeCalls == 0 {
		t.Error("session must be closed at cycle end")
	}
}

func TestCommentPass_GatesAndOnePerAccount(t *testing.T) {
	cfg := testConfig()
	client := &fakeClient{
		postsByUser: map[string][]types.Post{
			"commenter1": {
				{ID: "stale", URL: "u1", Text: "defi post", Timestamp: staleStamp()},
				{ID: "offtopic", URL: "u2", Text: "nothing relevant", Timestamp: recentStamp()},
				{ID: "good", URL: "u3", Text: "fresh DeFi alpha", Timestamp: recentStamp()},
				{ID: "alsogood", URL: "u4", Text: "more defi", Timestamp: recentStamp()},
			},
		},
	}
	b := newTestBot(t, cfg, &fakeGenerator{}, client)

	b.commentPass(context.Background(), "cycle")

	if len(client.repliedURLs) != 1 || client.repliedURLs[0] != "u3" {
		t.Fatalf("replied to %v, want exactly [u3]", client.repliedURLs)
	}
	if !b.commented.Contains("good") {
		t.Error("ledger must record the handled post")
	}
	if b.commented.Contains("alsogood") {
		t.Error("at most one post per account may be handled")
	}
}

func TestCommentPass_FallbackOnGeneratorError(t *testing.T) {
	cfg := testConfig()
	client := &fakeClient{
		postsByUser: map[string][]types.Post{
			"commenter1": {
				{ID: "good", URL: "u1", Text: "fresh DeFi alpha", Timestamp: recentStamp()},
			},
		},
	}
	b := newTestBot(t, cfg, &fakeGenerator{commentErr: fmt.Errorf("model down")}, client)

	b.commentPass(context.Background(), "cycle")

	if len(client.repliedURLs) != 1 {
		t.Fatalf("replies = %d, want 1 (fallback text must still be posted)", len(client.repliedURLs))
	}
	if !b.commented.Contains("good") {
		t.Error("handled post must be recorded even with fallback text")
	}
}

func TestRegeneratePass_SkipRules(t *testing.T) {
	cfg := testConfig()
	client := &fakeClient{
		postsByUser: map[string][]types.Post{
			"regen1": {
				{ID: "old", URL: "u0", Text: "a long gone original post", Timestamp: staleStamp()},
				{ID: "rt", URL: "u1", Text: "RT someone else's take", Timestamp: recentStamp()},
				{ID: "flagged", URL: "u2", Text: "a shared post", Timestamp: recentStamp(), IsRepost: true},
				{ID: "tiny", URL: "u3", Text: "ok", Timestamp: recentStamp()},
				{ID: "seen", URL: "u4", Text: "already handled before", Timestamp: recentStamp()},
				{ID: "fresh", URL: "u5", Text: "an original post worth rewriting", Timestamp: recentStamp()},
			},
		},
	}
	b := newTestBot(t, cfg, &fakeGenerator{}, client)
	if err := b.regenerated.Record("seen"); err != nil {
		t.Fatal(err)
	}

	b.regeneratePass(context.Background(), "cycle")

	if len(client.posted) != 1 {
		t.Fatalf("posts = %v, want exactly the rewrite of the fresh post", client.posted)
	}
	if !strings.Contains(client.posted[0], "an original post worth rewriting") {
		t.Errorf("unexpected publish: %q", client.posted[0])
	}
	if !b.regenerated.Contains("fresh") {
		t.Error("ledger must record the regenerated post")
	}
	for _, id := range []string{"old", "rt", "flagged", "tiny"} {
		if b.regenerated.Contains(id) {
			t.Errorf("skipped post %q must not be recorded", id)
		}
	}
}

func TestRegeneratePass_RewriteErrorSkips(t *testing.T) {
	cfg := testConfig()
	client := &fakeClient{
		postsByUser: map[string][]types.Post{
			"regen1": {
				{ID: "fresh", URL: "u1", Text: "an original post", Timestamp: recentStamp()},
			},
		},
	}
	b := newTestBot(t, cfg, &fakeGenerator{rewriteErr: fmt.Errorf("model down")}, client)

	b.regeneratePass(context.Background(), "cycle")

	if len(client.posted) != 0 {
		t.Errorf("nothing may be published when the rewrite fails: %v", client.posted)
	}
	if b.regenerated.Contains("fresh") {
		t.Error("failed rewrite must not be recorded")
	}
}

func TestPostPass_FallbackOnGeneratorError(t *testing.T) {
	cfg := testConfig()
	client := &fakeClient{}
	b := newTestBot(t, cfg, &fakeGenerator{postErr: fmt.Errorf("model down")}, client)

	b.postPass(context.Background(), "cycle")

	if len(client.posted) != 2 {
		t.Fatalf("posts = %d, want 2 fallbacks", len(client.posted))
	}
	if !strings.Contains(client.posted[0], "Alpha") {
		t.Errorf("fallback must mention the project: %q", client.posted[0])
	}
}

func TestPublish_ThreadsLongText(t *testing.T) {
	cfg := testConfig()
	client := &fakeClient{}
	long := strings.Repeat("A thorough sentence about rollups. ", 20)
	b := newTestBot(t, cfg, &fakeGenerator{postText: long}, client)

	b.postPass(context.Background(), "cycle")

	if len(client.threads) != 2 {
		t.Fatalf("threads = %d, want 2", len(client.threads))
	}
	if len(client.posted) != 0 {
		t.Errorf("long text must not go out as a single post")
	}
	want := segment.Split(long, cfg.ThreadLimit)
	for _, parts := range client.threads {
		if len(parts) != len(want) {
			t.Fatalf("thread has %d parts, want %d", len(parts), len(want))
		}
		for i, part := range parts {
			if part != want[i] {
				t.Errorf("thread part %d = %q, want the segmenter's %q", i, part, want[i])
			}
		}
	}
}

func TestRunCycle_CursorAdvancesAcrossCycles(t *testing.T) {
	cfg := testConfig()
	gen := &fakeGenerator{}
	client := &fakeClient{postsByUser: map[string][]types.Post{}}
	b := newTestBot(t, cfg, gen, client)

	b.postPass(context.Background(), "cycle")
	first := append([]string(nil), client.posted...)
	client.posted = nil
	b.postPass(context.Background(), "cycle")

	// Two projects, batch of two: the roster wraps and repeats in order.
	if len(first) != 2 || len(client.posted) != 2 {
		t.Fatalf("batches = %d/%d, want 2/2", len(first), len(client.posted))
	}
	if first[0] != client.posted[0] {
		t.Errorf("wraparound should restart the roster: %q vs %q", first[0], client.posted[0])
	}
}
