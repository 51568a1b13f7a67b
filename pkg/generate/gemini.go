package generate

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/pulsebot/pulsebot/pkg/types"
)

// commentLimit is the hard cap applied to generated replies.
const commentLimit = 280

// GeminiGenerator implements Generator using Google GenAI Gemini.
type GeminiGenerator struct {
	client *genai.Client
	model  string
	rng    *rand.Rand
}

// GeminiConfig holds configuration for the Gemini generator.
type GeminiConfig struct {
	APIKey string // If empty, uses GEMINI_API_KEY env var
	Model  string // e.g., "gemini-2.5-flash"
}

// NewGeminiGenerator creates a new Gemini generator.
func NewGeminiGenerator(ctx context.Context, cfg GeminiConfig) (*GeminiGenerator, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = os.Getenv("GEMINI_MODEL")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &GeminiGenerator{
		client: client,
		model:  model,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// ProjectPost writes a promotional post about the project.
func (g *GeminiGenerator) ProjectPost(ctx context.Context, project types.Project) (string, error) {
	text, err := g.generate(ctx, projectPostPrompt(project))
	if err != nil {
		return "", fmt.Errorf("generate project post for %s: %w", project.Name, err)
	}
	return text, nil
}

// Comment writes a reply to the given post by username.
func (g *GeminiGenerator) Comment(ctx context.Context, username string, post types.Post) (string, error) {
	text, err := g.generate(ctx, commentPrompt(g.rng, username, post.Text))
	if err != nil {
		return "", fmt.Errorf("generate comment for @%s: %w", username, err)
	}
	if len(text) > commentLimit {
		text = text[:commentLimit-3] + "..."
	}
	return text, nil
}

// Rewrite rephrases text while keeping its meaning.
func (g *GeminiGenerator) Rewrite(ctx context.Context, text string) (string, error) {
	out, err := g.generate(ctx, rewritePrompt(text))
	if err != nil {
		return "", fmt.Errorf("rewrite post: %w", err)
	}
	return out, nil
}

func (g *GeminiGenerator) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response from gemini")
	}

	var result string
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			result += part.Text
		}
	}

	result = strings.TrimSpace(result)
	if result == "" {
		return "", fmt.Errorf("empty response from gemini")
	}
	return result, nil
}

// Model returns the model name.
func (g *GeminiGenerator) Model() string {
	return g.model
}
