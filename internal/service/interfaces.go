package service

import "context"

// Suggester is the surface the API layer needs from the suggestion client.
type Suggester interface {
	Suggest(ctx context.Context, prompt string) (string, error)
}
