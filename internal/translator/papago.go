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

const papagoAPIURL = "https://naveropenapi.apigw.ntruss.com/nmt/v1/translation"

// PapagoTranslator translates through the Naver Cloud Papago NMT API
type PapagoTranslator struct {
	clientID     string
	clientSecret string
	apiURL       string
	httpClient   *http.Client
}

func NewPapagoTranslator(clientID, clientSecret, apiURL string) *PapagoTranslator {
	if apiURL == "" {
		apiURL = papagoAPIURL
	}
	return &PapagoTranslator{
		clientID:     clientID,
		clientSecret: clientSecret,
		apiURL:       apiURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (p *PapagoTranslator) Name() string {
	return "papago"
}

func (p *PapagoTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	form := url.Values{}
	form.Set("source", source)
	form.Set("target", target)
	form.Set("text", text)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
	httpReq.Header.Set("X-NCP-APIGW-API-KEY-ID", p.clientID)
	httpReq.Header.Set("X-NCP-APIGW-API-KEY", p.clientSecret)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("Papago API request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{Provider: "Papago", StatusCode: resp.StatusCode, Body: string(body)}
	}

	var papagoResp struct {
		Message struct {
			Result struct {
				TranslatedText string `json:"translatedText"`
			} `json:"result"`
		} `json:"message"`
	}

	if err := json.Unmarshal(body, &papagoResp); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}

	out := singleLine(papagoResp.Message.Result.TranslatedText)
	if out == "" {
		return "", errMissingText
	}
	return out, nil
}
