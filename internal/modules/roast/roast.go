// Package roast produces the Count Dracula caption for an analysis result.
package roast

import (
	"context"
	"strings"
	"time"

	"github.com/CyberTud/dracula-wtf/internal/rubric"
	"go.uber.org/zap"
)

const (
	DefaultTimeout = 3 * time.Second
	maxRoastRunes  = 200
)

// Generator asks a Provider for a caption and falls back to the built-in
// captions when the provider is absent, fails, or misses the deadline.
type Generator struct {
	provider Provider
	timeout  time.Duration
	log      *zap.Logger
}

// NewGenerator builds a generator. A nil provider always yields fallbacks.
func NewGenerator(provider Provider, timeout time.Duration, log *zap.Logger) *Generator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{provider: provider, timeout: timeout, log: log}
}

type completion struct {
	text string
	err  error
}

// Generate returns a caption for res. It never fails and returns within the
// generator's timeout.
func (g *Generator) Generate(ctx context.Context, res rubric.Result) string {
	fallback := Fallback(res.Bucket, res.OverallScore)
	if g.provider == nil {
		return fallback
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	// Buffered so the provider goroutine can always deliver and exit.
	done := make(chan completion, 1)
	go func() {
		text, err := g.provider.Complete(ctx, systemPrompt(res.Bucket), userPrompt(res))
		done <- completion{text: text, err: err}
	}()

	select {
	case out := <-done:
		if out.err != nil {
			g.log.Warn("roast provider failed, using fallback", zap.Error(out.err))
			return fallback
		}
		text := strings.TrimSpace(out.text)
		if text == "" {
			g.log.Warn("roast provider returned empty text, using fallback")
			return fallback
		}
		return truncateRunes(text, maxRoastRunes)
	case <-ctx.Done():
		g.log.Warn("roast provider timed out, using fallback", zap.Duration("timeout", g.timeout))
		return fallback
	}
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
