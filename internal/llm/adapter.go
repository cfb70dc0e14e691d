package llm

import "context"

// Generator turns a prompt into model output text.
// Keep this surface small; request shaping lives in the concrete client.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) { return f(ctx, prompt) }
