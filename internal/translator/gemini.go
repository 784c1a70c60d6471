package translator

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"google.golang.org/genai"
)

const translatePrompt = `Translate the following subtitle line from %s to %s.
Reply with the translation only, on a single line, without quotes or notes.

%s`

// GeminiTranslator translates through a Gemini model, rotating API keys on rate limits
type GeminiTranslator struct {
	apiKeys []string
	model   string
	baseURL string

	mu         sync.Mutex
	currentKey int
}

func NewGeminiTranslator(apiKeys []string, model, baseURL string) *GeminiTranslator {
	return &GeminiTranslator{
		apiKeys: apiKeys,
		model:   model,
		baseURL: baseURL,
	}
}

func (g *GeminiTranslator) Name() string {
	return "gemini"
}

func (g *GeminiTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	if len(g.apiKeys) == 0 {
		return "", fmt.Errorf("Gemini API key not configured")
	}

	prompt := buildPrompt(text, source, target)

	var lastErr error
	for range g.apiKeys {
		key := g.key()

		cfg := &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		}
		if g.baseURL != "" {
			cfg.HTTPOptions = genai.HTTPOptions{BaseURL: g.baseURL}
		}

		client, err := genai.NewClient(ctx, cfg)
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			g.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
		if err != nil {
			if isRateLimited(err) {
				g.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var sb strings.Builder
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					sb.WriteString(part.Text)
				}
			}
			if out := singleLine(sb.String()); out != "" {
				return out, nil
			}
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (g *GeminiTranslator) key() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.apiKeys[g.currentKey]
}

func (g *GeminiTranslator) rotateKey() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
}

func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func buildPrompt(text, source, target string) string {
	return fmt.Sprintf(translatePrompt, languageName(source), languageName(target), text)
}

// languageName returns the English name for a language code, or the code itself.
func languageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return code
}
