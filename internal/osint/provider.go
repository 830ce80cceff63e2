// Package osint holds the lookup providers behind the bot commands. Each
// provider implements the same narrow contract so the dispatch layer can
// treat every feature family uniformly.
package osint

import "context"

// Provider executes one lookup. args arrive already split and
// arity-checked; the returned text is emitted to the user unmodified.
type Provider interface {
	Execute(ctx context.Context, args []string) (string, error)
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func(ctx context.Context, args []string) (string, error)

func (f ProviderFunc) Execute(ctx context.Context, args []string) (string, error) {
	return f(ctx, args)
}
