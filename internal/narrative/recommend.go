// Package narrative provides optional AI-generated natural-language
// summaries for the top-ranked solutions, enabled via the
// "ai_narrative" feature flag. Failures are logged and swallowed; the
// planning response is always returned even when enrichment fails.
package narrative

import (
	"context"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/urban-gardening-assistant/planner-engine/pkg/dto"
)

const (
	requestTimeout    = 10 * time.Second
	maxRetries        = 3
	retryBaseDelay    = 500 * time.Millisecond
	responseCacheTTL  = time.Hour
	cacheCleanup      = 2 * time.Hour
)

// Enricher generates a short narrative description for a ranked solution
// using an OpenAI chat completion, caching responses under a key built from
// the objective and each instance's id and position (to one decimal) to
// avoid repeat calls for identical layouts.
type Enricher struct {
	client *openai.Client
	cache  *gocache.Cache
	log    *zap.Logger
}

// NewEnricher builds an Enricher from an API key. The client is nil-safe:
// an empty apiKey disables enrichment and Describe becomes a no-op.
func NewEnricher(apiKey string, log *zap.Logger) *Enricher {
	var client *openai.Client
	if apiKey != "" {
		client = openai.NewClient(apiKey)
	}
	return &Enricher{
		client: client,
		cache:  gocache.New(responseCacheTTL, cacheCleanup),
		log:    log,
	}
}

// Describe returns a short narrative for the solution, or "" if
// enrichment is disabled or every retry fails. It never returns an error:
// callers treat narrative text as a best-effort enhancement.
func (e *Enricher) Describe(ctx context.Context, objective string, sol dto.Solution) string {
	if e.client == nil {
		return ""
	}

	key := cacheKey(objective, sol)
	if cached, ok := e.cache.Get(key); ok {
		return cached.(string)
	}

	text, err := e.generateWithRetry(ctx, objective, sol)
	if err != nil {
		if e.log != nil {
			e.log.Warn("narrative enrichment failed", zap.Error(err))
		}
		return ""
	}

	e.cache.Set(key, text, gocache.DefaultExpiration)
	return text
}

func (e *Enricher) generateWithRetry(ctx context.Context, objective string, sol dto.Solution) (string, error) {
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(retryBaseDelay * time.Duration(1<<attempt))
		}

		callCtx, cancel := context.WithTimeout(ctx, requestTimeout)
		resp, err := e.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
			Model: openai.GPT3Dot5Turbo,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: "You are an urban gardening assistant. Summarize a garden layout in two sentences."},
				{Role: openai.ChatMessageRoleUser, Content: buildPrompt(objective, sol)},
			},
			MaxTokens:   120,
			Temperature: 0.7,
		})
		cancel()

		if err == nil && len(resp.Choices) > 0 {
			return strings.TrimSpace(resp.Choices[0].Message.Content), nil
		}
		lastErr = err
	}
	return "", lastErr
}

func buildPrompt(objective string, sol dto.Solution) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Objective: %s. Plot: %.2f x %.2f m. Fitness: %.2f.\n", objective, sol.Layout.Dimensions.Width, sol.Layout.Dimensions.Height, sol.Metrics.Fitness)
	b.WriteString("Plants: ")
	for i, instance := range sol.Layout.Instances {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(instance.Name)
	}
	return b.String()
}

func cacheKey(objective string, sol dto.Solution) string {
	var b strings.Builder
	b.WriteString(objective)
	for _, instance := range sol.Layout.Instances {
		fmt.Fprintf(&b, "|%d@%.1f,%.1f", instance.ID, instance.Position.X, instance.Position.Y)
	}
	return b.String()
}
