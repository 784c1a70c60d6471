package translator

import (
	"fmt"

	"github.com/nguyentantai21042004/bisub/internal/config"
)

// New creates the Translator selected by cfg.Provider
func New(cfg config.TranslatorConfig) (Translator, error) {
	switch cfg.Provider {
	case config.ProviderPapago:
		return NewPapagoTranslator(cfg.Papago.ClientID, cfg.Papago.ClientSecret, cfg.Papago.URL), nil
	case config.ProviderDeepL:
		return NewDeepLTranslator(cfg.DeepL.AuthKey, cfg.DeepL.URL), nil
	case config.ProviderGemini:
		return NewGeminiTranslator(cfg.Gemini.APIKeys, cfg.Gemini.Model, cfg.Gemini.URL), nil
	default:
		return nil, fmt.Errorf("unknown translation provider: %s", cfg.Provider)
	}
}
