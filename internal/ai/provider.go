package ai

import "context"

// Provider is a stateless text-completion backend. The caller assembles the
// full prompt (history, retrieved context, instructions) before the call.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
