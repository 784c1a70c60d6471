package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/bisub/internal/logger"
	"github.com/nguyentantai21042004/bisub/internal/script"
	"golang.org/x/text/language"
)

const (
	ProviderPapago = "papago"
	ProviderDeepL  = "deepl"
	ProviderGemini = "gemini"
)

type Config struct {
	Translator TranslatorConfig `yaml:"translator"`
	Languages  LanguagesConfig  `yaml:"languages"`
	Pipeline   PipelineConfig   `yaml:"pipeline"`
	Paths      PathsConfig      `yaml:"paths"`
	Server     ServerConfig     `yaml:"server"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type TranslatorConfig struct {
	Provider string       `yaml:"provider"`
	Papago   PapagoConfig `yaml:"papago"`
	DeepL    DeepLConfig  `yaml:"deepl"`
	Gemini   GeminiConfig `yaml:"gemini"`
}

type PapagoConfig struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	URL          string `yaml:"url"`
}

type DeepLConfig struct {
	AuthKey string `yaml:"auth_key"`
	URL     string `yaml:"url"`
}

type GeminiConfig struct {
	APIKeys []string `yaml:"api_keys"`
	Model   string   `yaml:"model"`
	URL     string   `yaml:"url"`
}

// LanguagesConfig names the two languages a bilingual file pairs.
// Primary text is always written first in the output.
type LanguagesConfig struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
}

type PipelineConfig struct {
	Delay      time.Duration `yaml:"delay"`
	ExportDocx bool          `yaml:"export_docx"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type ServerConfig struct {
	Addr           string `yaml:"addr"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func (c *Config) Validate() error {
	c.Translator.Provider = strings.ToLower(strings.TrimSpace(c.Translator.Provider))
	switch c.Translator.Provider {
	case ProviderPapago:
		if c.Translator.Papago.ClientID == "" || c.Translator.Papago.ClientSecret == "" {
			return fmt.Errorf("translator.papago.client_id and client_secret are required")
		}
	case ProviderDeepL:
		if c.Translator.DeepL.AuthKey == "" {
			return fmt.Errorf("translator.deepl.auth_key is required")
		}
	case ProviderGemini:
		if len(c.Translator.Gemini.APIKeys) == 0 {
			return fmt.Errorf("translator.gemini.api_keys is required")
		}
	case "":
		return fmt.Errorf("translator.provider is required")
	default:
		return fmt.Errorf("unknown translator.provider: %s", c.Translator.Provider)
	}

	if c.Languages.Primary == "" {
		c.Languages.Primary = "ko"
	}
	if c.Languages.Secondary == "" {
		c.Languages.Secondary = "th"
	}
	primary, err := normalizeLanguage(c.Languages.Primary)
	if err != nil {
		return fmt.Errorf("languages.primary: %w", err)
	}
	secondary, err := normalizeLanguage(c.Languages.Secondary)
	if err != nil {
		return fmt.Errorf("languages.secondary: %w", err)
	}
	if primary == secondary {
		return fmt.Errorf("languages.primary and languages.secondary must differ")
	}
	primaryScript, ok := script.ForLanguage(primary)
	if !ok {
		return fmt.Errorf("no script detection for language %q", primary)
	}
	secondaryScript, ok := script.ForLanguage(secondary)
	if !ok {
		return fmt.Errorf("no script detection for language %q", secondary)
	}
	if primaryScript == secondaryScript {
		return fmt.Errorf("languages %q and %q share a script and cannot be told apart", primary, secondary)
	}
	c.Languages.Primary, c.Languages.Secondary = primary, secondary

	if c.Pipeline.Delay < 0 {
		return fmt.Errorf("pipeline.delay must not be negative")
	}
	if c.Pipeline.Delay == 0 {
		c.Pipeline.Delay = 500 * time.Millisecond
	}

	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.MaxUploadBytes == 0 {
		c.Server.MaxUploadBytes = 10 << 20
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if !logger.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("unknown logging.level: %s", c.Logging.Level)
	}

	if c.Translator.Gemini.Model == "" {
		c.Translator.Gemini.Model = "gemini-2.5-flash"
	}

	return nil
}

// normalizeLanguage reduces a BCP 47 tag to its base language code.
func normalizeLanguage(code string) (string, error) {
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return "", fmt.Errorf("invalid language %q: %w", code, err)
	}
	base, _ := tag.Base()
	return base.String(), nil
}
