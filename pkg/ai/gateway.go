package ai

import "context"

// Gateway is the language-understanding capability the pipeline depends on.
// Extract returns the raw assistant content; the caller owns parsing because
// the model may wrap the JSON payload in markdown fences or refuse entirely.
type Gateway interface {
	Extract(ctx context.Context, transcript string) (string, error)
	Embed(ctx context.Context, text string) ([]float64, error)
	Summarize(ctx context.Context, transcript string) (string, error)
}

// Embedder is the subset of Gateway needed to embed free text.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}
