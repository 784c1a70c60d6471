package translator

import "context"

// Translator translates a single caption line between two languages.
type Translator interface {
	// Translate returns text rendered from source into target
	Translate(ctx context.Context, text, source, target string) (string, error)
	// Name returns the backend name
	Name() string
}
