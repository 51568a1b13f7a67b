// Package generate produces the bot's written content: promotional posts,
// replies, and rewrites. The Generator interface keeps the orchestrator
// testable without a live model.
package generate

import (
	"context"
	"fmt"

	"github.com/pulsebot/pulsebot/pkg/types"
)

// Generator produces post, comment, and rewrite text. Implementations may
// call a remote model; callers must be prepared for errors and fall back to
// the deterministic templates below.
type Generator interface {
	// ProjectPost writes a promotional post about the project.
	ProjectPost(ctx context.Context, project types.Project) (string, error)

	// Comment writes a reply to the given post by username.
	Comment(ctx context.Context, username string, post types.Post) (string, error)

	// Rewrite rephrases text while keeping its meaning.
	Rewrite(ctx context.Context, text string) (string, error)
}

// FallbackProjectPost is the deterministic post used when generation fails.
func FallbackProjectPost(project types.Project) string {
	name := project.Name
	if name == "" {
		name = "this project"
	}
	category := project.Category
	if category == "" {
		category = "Web3"
	}
	website := project.Website
	if website == "" || website == "N/A" {
		website = "their website"
	}
	return fmt.Sprintf("Exploring the innovative work of %s in the %s space. Their developments at %s are worth a look! #Web3", name, category, website)
}

// FallbackComment is the deterministic reply used when generation fails.
func FallbackComment(username string) string {
	return fmt.Sprintf("The points @%s raises are crucial for Web3's future. It sparks thought on how scalability and user adoption will evolve. Appreciate the insight!", username)
}
