package ports

import "context"

// InsightProvider generates free-text insights from a prompt. The engine
// never depends on a provider being reachable: callers substitute the
// deterministic fallback set when Generate fails or times out.
type InsightProvider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
