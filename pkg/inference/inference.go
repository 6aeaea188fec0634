package inference

import (
	"context"

	"github.com/openai/openai-go/v3"
)

// Inferencer runs one structured-extraction completion against a model
// backend. Implementations must not retry on their own: the caller
// guarantees at most one call in flight per filing session.
type Inferencer interface {
	Infer(ctx context.Context, params *openai.ChatCompletionNewParams, system, user string) (string, error)
	Verify(ctx context.Context, result string) (bool, error)
}
