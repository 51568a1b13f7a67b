// Package bot is the publishing orchestrator. A cycle runs four passes over
// one browser session: regenerate, post, comment, regenerate again. Per-item
// failures are logged and skipped; only a failed session establishment aborts
// the cycle.
package bot

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pulsebot/pulsebot/pkg/config"
	"github.com/pulsebot/pulsebot/pkg/filter"
	"github.com/pulsebot/pulsebot/pkg/generate"
	"github.com/pulsebot/pulsebot/pkg/ledger"
	"github.com/pulsebot/pulsebot/pkg/rotation"
	"github.com/pulsebot/pulsebot/pkg/segment"
	"github.com/pulsebot/pulsebot/pkg/social"
)

// State names the orchestrator's position in the cycle.
type State string

const (
	StateIdle       State = "idle"
	StateLoadState  State = "load_state"
	StateRegenerate State = "regenerate_pass"
	StatePost       State = "post_pass"
	StateComment    State = "comment_pass"
	StateSaveState  State = "save_state"
	StateFailed     State = "failed"
)

// Bot drives publishing cycles against one platform session.
type Bot struct {
	cfg    config.Config
	gen    generate.Generator
	client social.Client

	cursor      *rotation.Cursor
	commented   *ledger.Ledger
	regenerated *ledger.Ledger

	events EventLogger
	rng    *rand.Rand
	sleep  func(time.Duration)
	now    func() time.Time

	mu    sync.Mutex
	state State
}

// New wires a bot from persistent state under dataDir. A corrupt ledger file
// is fatal here; delete or repair the file before restarting.
func New(cfg config.Config, gen generate.Generator, client social.Client, dataDir string, events EventLogger) (*Bot, error) {
	commented, err := ledger.Open(filepath.Join(dataDir, "commented_posts.json"))
	if err != nil {
		return nil, fmt.Errorf("open commented ledger: %w", err)
	}
	regenerated, err := ledger.Open(filepath.Join(dataDir, "regenerated_posts.json"))
	if err != nil {
		return nil, fmt.Errorf("open regenerated ledger: %w", err)
	}

	return &Bot{
		cfg:         cfg,
		gen:         gen,
		client:      client,
		cursor:      rotation.Load(filepath.Join(dataDir, "bot_state.json")),
		commented:   commented,
		regenerated: regenerated,
		events:      events,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		sleep:       time.Sleep,
		now:         time.Now,
		state:       StateIdle,
	}, nil
}

// State returns the current cycle state. Safe for concurrent use.
func (b *Bot) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Bot) setState(s State) {
	b.mu.Lock()
	b.state = s
	b.mu.Unlock()
	log.Printf("bot: state -> %s", s)
}

// RunCycle executes one full publishing cycle. It returns an error only when
// the session could not be established; everything else is handled in-pass.
func (b *Bot) RunCycle(ctx context.Context) error {
	cycleID := uuid.NewString()
	log.Printf("bot: starting cycle %s", cycleID)
	b.setState(StateLoadState)

	// The cursor is saved no matter how the cycle ends, so partial progress
	// through the rosters is never replayed.
	defer func() {
		if err := b.cursor.Save(); err != nil {
			log.Printf("bot: save cursor: %v", err)
		}
	}()

	if err := b.client.Init(ctx); err != nil {
		b.setState(StateFailed)
		b.logEvent(cycleID, "session", "init_failed", "", "", err)
		if closeErr := b.client.Close(); closeErr != nil {
			log.Printf("bot: close after failed init: %v", closeErr)
		}
		return fmt.Errorf("establish session: %w", err)
	}
	defer func() {
		if err := b.client.Close(); err != nil {
			log.Printf("bot: close session: %v", err)
		}
	}()

	b.setState(StateRegenerate)
	b.regeneratePass(ctx, cycleID)

	b.setState(StatePost)
	b.postPass(ctx, cycleID)

	b.setState(StateComment)
	b.commentPass(ctx, cycleID)

	b.setState(StateRegenerate)
	b.regeneratePass(ctx, cycleID)

	b.setState(StateSaveState)
	b.setState(StateIdle)
	log.Printf("bot: cycle %s completed", cycleID)
	return nil
}

// regeneratePass rewrites fresh posts from the regeneration roster and
// republishes them.
func (b *Bot) regeneratePass(ctx context.Context, cycleID string) {
	for _, username := range b.cfg.RegenerationAccounts {
		posts, err := b.client.RecentPosts(ctx, username, b.cfg.RecencyWindow.Std(), b.cfg.MaxFetched)
		if err != nil {
			log.Printf("bot: fetch posts for @%s: %v", username, err)
			b.logEvent(cycleID, "regenerate", "fetch_failed", username, "", err)
			continue
		}
		if len(posts) == 0 {
			log.Printf("bot: no recent posts for @%s", username)
			continue
		}

		for _, post := range posts {
			text := strings.TrimSpace(post.Text)
			if !filter.IsRecent(post.Timestamp, b.cfg.RecencyWindow.Std(), b.now()) {
				log.Printf("bot: post %s by @%s is stale, skipping", post.ID, username)
				continue
			}
			if post.IsRepost || strings.HasPrefix(strings.ToLower(text), "rt ") {
				log.Printf("bot: skipping repost by @%s", username)
				continue
			}
			if b.regenerated.Contains(post.ID) {
				log.Printf("bot: already regenerated %s by @%s", post.ID, username)
				continue
			}
			if len(text) < b.cfg.MinItemLength {
				log.Printf("bot: post by @%s too short, skipping", username)
				continue
			}

			rewritten, err := b.gen.Rewrite(ctx, text)
			if err != nil {
				log.Printf("bot: rewrite for @%s: %v", username, err)
				b.logEvent(cycleID, "regenerate", "rewrite_failed", username, post.ID, err)
				continue
			}
			rewritten = strings.TrimSpace(rewritten)
			if len(rewritten) < b.cfg.MinItemLength {
				log.Printf("bot: rewrite for @%s came back too short, skipping", username)
				continue
			}

			if err := b.publish(ctx, rewritten); err != nil {
				log.Printf("bot: publish regenerated post for @%s: %v", username, err)
				b.logEvent(cycleID, "regenerate", "publish_failed", username, post.ID, err)
				continue
			}
			if err := b.regenerated.Record(post.ID); err != nil {
				log.Printf("bot: record regenerated %s: %v", post.ID, err)
			}
			b.logEvent(cycleID, "regenerate", "published", username, post.ID, nil)
			b.jitter(10, 20)
		}
		b.jitter(10, 20)
	}
}

// postPass publishes a promotional post for the next batch of projects.
func (b *Bot) postPass(ctx context.Context, cycleID string) {
	indices := b.cursor.NextContent(b.cfg.ProjectsPerCycle, len(b.cfg.Projects))
	for _, idx := range indices {
		project := b.cfg.Projects[idx]

		text, err := b.gen.ProjectPost(ctx, project)
		if err != nil {
			log.Printf("bot: generate post for %s: %v, using fallback", project.Name, err)
			b.logEvent(cycleID, "post", "generation_fallback", project.Name, "", err)
			text = generate.FallbackProjectPost(project)
		}

		if err := b.publish(ctx, text); err != nil {
			log.Printf("bot: publish post for %s: %v", project.Name, err)
			b.logEvent(cycleID, "post", "publish_failed", project.Name, "", err)
		} else {
			log.Printf("bot: posted about %s", project.Name)
			b.logEvent(cycleID, "post", "published", project.Name, "", nil)
		}
		b.jitter(10, 15)
	}
}

// commentPass replies to at most one fresh, relevant post per account in the
// next batch.
func (b *Bot) commentPass(ctx context.Context, cycleID string) {
	indices := b.cursor.NextAccounts(b.cfg.AccountsPerCycle, len(b.cfg.Accounts))
	for _, idx := range indices {
		username := b.cfg.Accounts[idx]

		posts, err := b.client.RecentPosts(ctx, username, b.cfg.RecencyWindow.Std(), b.cfg.MaxFetched)
		if err != nil {
			log.Printf("bot: fetch posts for @%s: %v", username, err)
			b.logEvent(cycleID, "comment", "fetch_failed", username, "", err)
			continue
		}
		if len(posts) == 0 {
			log.Printf("bot: no recent posts for @%s", username)
			continue
		}

		for _, post := range posts {
			if b.commented.Contains(post.ID) {
				log.Printf("bot: already commented on %s by @%s", post.ID, username)
				continue
			}
			if !filter.IsRecent(post.Timestamp, b.cfg.RecencyWindow.Std(), b.now()) {
				log.Printf("bot: post %s by @%s is stale, skipping", post.ID, username)
				continue
			}
			if !filter.MatchesKeyword(post.Text, b.cfg.Keywords) {
				log.Printf("bot: post %s by @%s has no keywords, skipping", post.ID, username)
				continue
			}

			comment, err := b.gen.Comment(ctx, username, post)
			if err != nil {
				log.Printf("bot: generate comment for @%s: %v, using fallback", username, err)
				b.logEvent(cycleID, "comment", "generation_fallback", username, post.ID, err)
				comment = generate.FallbackComment(username)
			}

			if err := b.client.Reply(ctx, post.URL, comment); err != nil {
				log.Printf("bot: reply to @%s: %v", username, err)
				b.logEvent(cycleID, "comment", "publish_failed", username, post.ID, err)
			} else {
				if err := b.commented.Record(post.ID); err != nil {
					log.Printf("bot: record commented %s: %v", post.ID, err)
				}
				log.Printf("bot: commented on %s by @%s", post.ID, username)
				b.logEvent(cycleID, "comment", "published", username, post.ID, nil)
			}
			// One handled post per account keeps the reply volume low.
			break
		}
		b.jitter(3, 7)
	}
}

// publish sends text as a single post when it fits, otherwise as a thread.
func (b *Bot) publish(ctx context.Context, text string) error {
	if len(text) <= b.cfg.PostLimit {
		return b.client.PostUpdate(ctx, text)
	}
	parts := segment.Split(text, b.cfg.ThreadLimit)
	return b.client.PostThread(ctx, parts)
}

func (b *Bot) jitter(minSec, maxSec int) {
	b.sleep(time.Duration(minSec+b.rng.Intn(maxSec-minSec+1)) * time.Second)
}

func (b *Bot) logEvent(cycleID, phase, action, target, postID string, err error) {
	if b.events == nil {
		return
	}
	ev := CycleEvent{
		Timestamp: b.now(),
		CycleID:   cycleID,
		Phase:     phase,
		Action:    action,
		Target:    target,
		PostID:    postID,
	}
	if err != nil {
		ev.Error = err.Error()
	}
	if logErr := b.events.LogEvent(ev); logErr != nil {
		log.Printf("bot: audit log: %v", logErr)
	}
}
