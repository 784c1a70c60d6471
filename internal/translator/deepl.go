package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const deeplAPIURL = "https://api-free.deepl.com/v2/translate"

// DeepLTranslator translates through the DeepL API
type DeepLTranslator struct {
	authKey    string
	apiURL     string
	httpClient *http.Client
}

func NewDeepLTranslator(authKey, apiURL string) *DeepLTranslator {
	if apiURL == "" {
		apiURL = deeplAPIURL
	}
	return &DeepLTranslator{
		authKey: authKey,
		apiURL:  apiURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (d *DeepLTranslator) Name() string {
	return "deepl"
}

func (d *DeepLTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	form := url.Values{}
	form.Set("text", text)
	form.Set("source_lang", deeplLangCode(source))
	form.Set("target_lang", deeplLangCode(target))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, d.apiURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Authorization", "DeepL-Auth-Key "+d.authKey)

	resp, err := d.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("DeepL API request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{Provider: "DeepL", StatusCode: resp.StatusCode, Body: string(body)}
	}

	var deeplResp struct {
		Translations []struct {
			Text string `json:"text"`
		} `json:"translations"`
	}

	if err := json.Unmarshal(body, &deeplResp); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	if len(deeplResp.Translations) == 0 {
		return "", fmt.Errorf("parse response: no translations returned")
	}

	out := singleLine(deeplResp.Translations[0].Text)
	if out == "" {
		return "", errMissingText
	}
	return out, nil
}

// deeplLangCode converts ISO 639-1 codes to DeepL format
func deeplLangCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
