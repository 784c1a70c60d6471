package translator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/bisub/internal/config"
)

func TestPapagoTranslate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-NCP-APIGW-API-KEY-ID") != "id" || r.Header.Get("X-NCP-APIGW-API-KEY") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm() error = %v", err)
		}
		if r.Form.Get("source") != "ko" || r.Form.Get("target") != "th" || r.Form.Get("text") != "안녕하세요" {
			t.Errorf("unexpected form: %v", r.Form)
		}
		fmt.Fprint(w, `{"message":{"result":{"srcLangType":"ko","tarLangType":"th","translatedText":"สวัสดี"}}}`)
	}))
	defer srv.Close()

	p := NewPapagoTranslator("id", "secret", srv.URL)
	got, err := p.Translate(context.Background(), "안녕하세요", "ko", "th")
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if got != "สวัสดี" {
		t.Errorf("Translate() = %q, want สวัสดี", got)
	}
}

func TestPapagoStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errorCode":"024"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := NewPapagoTranslator("bad", "bad", srv.URL).Translate(context.Background(), "x", "ko", "th")

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Translate() error = %v, want *StatusError", err)
	}
	if statusErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("StatusCode = %d, want 401", statusErr.StatusCode)
	}
	if FailureText(err) != TranslationErrorText {
		t.Errorf("FailureText() = %q, want %q", FailureText(err), TranslationErrorText)
	}
}

func TestPapagoMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json`)
	}))
	defer srv.Close()

	_, err := NewPapagoTranslator("id", "secret", srv.URL).Translate(context.Background(), "x", "ko", "th")
	if err == nil {
		t.Fatal("Translate() should fail on a malformed body")
	}
	if !strings.HasPrefix(FailureText(err), "Error: ") {
		t.Errorf("FailureText() = %q, want Error: prefix", FailureText(err))
	}
}

func TestPapagoMissingText(t *testing.T) {
	bodies := []string{
		`{}`,
		`{"message":{"result":{}}}`,
		`{"message":{"result":{"translatedText":"  "}}}`,
	}

	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, body)
			}))
			defer srv.Close()

			out, err := NewPapagoTranslator("id", "secret", srv.URL).Translate(context.Background(), "x", "ko", "th")
			if err == nil {
				t.Fatalf("Translate() = %q, want error", out)
			}
			if got := FailureText(err); got != "Error: parse response: missing translated text" {
				t.Errorf("FailureText() = %q", got)
			}
		})
	}
}

func TestMultiLineReplyIsJoined(t *testing.T) {
	papago := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"message":{"result":{"translatedText":"first\nsecond"}}}`)
	}))
	defer papago.Close()

	deepl := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"translations":[{"text":"first\r\nsecond"}]}`)
	}))
	defer deepl.Close()

	tests := []struct {
		name string
		tr   Translator
	}{
		{"papago", NewPapagoTranslator("id", "secret", papago.URL)},
		{"deepl", NewDeepLTranslator("key", deepl.URL)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.tr.Translate(context.Background(), "x", "ko", "th")
			if err != nil {
				t.Fatalf("Translate() error = %v", err)
			}
			if got != "first second" {
				t.Errorf("Translate() = %q, want %q", got, "first second")
			}
		})
	}
}

func TestDeepLTranslate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "DeepL-Auth-Key key" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm() error = %v", err)
		}
		if r.Form.Get("source_lang") != "TH" || r.Form.Get("target_lang") != "KO" {
			t.Errorf("unexpected languages: %v", r.Form)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"translations": []map[string]string{{"detected_source_language": "TH", "text": "안녕하세요"}},
		})
	}))
	defer srv.Close()

	got, err := NewDeepLTranslator("key", srv.URL).Translate(context.Background(), "สวัสดี", "th", "ko")
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if got != "안녕하세요" {
		t.Errorf("Translate() = %q, want 안녕하세요", got)
	}
}

func TestDeepLErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus bool
	}{
		{"quota exceeded", 456, `{"message":"Quota exceeded"}`, true},
		{"empty translations", http.StatusOK, `{"translations":[]}`, false},
		{"translation without text", http.StatusOK, `{"translations":[{}]}`, false},
		{"empty object", http.StatusOK, `{}`, false},
		{"malformed body", http.StatusOK, `{`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer srv.Close()

			_, err := NewDeepLTranslator("key", srv.URL).Translate(context.Background(), "x", "ko", "th")
			if err == nil {
				t.Fatal("Translate() error = nil, want error")
			}
			var statusErr *StatusError
			if got := errors.As(err, &statusErr); got != tt.wantStatus {
				t.Errorf("errors.As(StatusError) = %v, want %v (err = %v)", got, tt.wantStatus, err)
			}
		})
	}
}

func TestNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewPapagoTranslator("id", "secret", url).Translate(context.Background(), "x", "ko", "th")
	if err == nil {
		t.Fatal("Translate() should fail when the service is unreachable")
	}
	if !strings.HasPrefix(FailureText(err), "Error: Papago API request") {
		t.Errorf("FailureText() = %q", FailureText(err))
	}
}

func TestGeminiTranslate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ":generateContent") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"สวัสดี\n"}]}}]}`)
	}))
	defer srv.Close()

	g := NewGeminiTranslator([]string{"key"}, "gemini-2.5-flash", srv.URL)
	got, err := g.Translate(context.Background(), "안녕하세요", "ko", "th")
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if got != "สวัสดี" {
		t.Errorf("Translate() = %q, want สวัสดี", got)
	}
}

func geminiServer(t *testing.T, limited map[string]bool, seen *[]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get("x-goog-api-key")
		*seen = append(*seen, key)
		w.Header().Set("Content-Type", "application/json")
		if limited[key] {
			w.WriteHeader(http.StatusTooManyRequests)
			fmt.Fprint(w, `{"error":{"code":429,"message":"Resource has been exhausted (e.g. check quota).","status":"RESOURCE_EXHAUSTED"}}`)
			return
		}
		fmt.Fprint(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"สวัสดี"}]}}]}`)
	}))
}

func TestGeminiRotatesRateLimitedKey(t *testing.T) {
	var seen []string
	srv := geminiServer(t, map[string]bool{"k1": true}, &seen)
	defer srv.Close()

	g := NewGeminiTranslator([]string{"k1", "k2"}, "gemini-2.5-flash", srv.URL)
	got, err := g.Translate(context.Background(), "안녕하세요", "ko", "th")
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if got != "สวัสดี" {
		t.Errorf("Translate() = %q, want สวัสดี", got)
	}
	if g.currentKey != 1 {
		t.Errorf("currentKey = %d, want 1", g.currentKey)
	}
	if len(seen) == 0 || seen[len(seen)-1] != "k2" {
		t.Errorf("keys used = %v, want last k2", seen)
	}
}

func TestGeminiAllKeysRateLimited(t *testing.T) {
	var seen []string
	srv := geminiServer(t, map[string]bool{"k1": true, "k2": true}, &seen)
	defer srv.Close()

	g := NewGeminiTranslator([]string{"k1", "k2"}, "gemini-2.5-flash", srv.URL)
	_, err := g.Translate(context.Background(), "안녕하세요", "ko", "th")
	if err == nil {
		t.Fatal("Translate() error = nil, want error")
	}
	if !strings.Contains(err.Error(), "all API keys exhausted") {
		t.Errorf("Translate() error = %v, want all API keys exhausted", err)
	}
	if g.currentKey != 0 {
		t.Errorf("currentKey = %d, want 0 after a full rotation", g.currentKey)
	}
}

func TestGeminiNoKeys(t *testing.T) {
	if _, err := NewGeminiTranslator(nil, "m", "").Translate(context.Background(), "x", "ko", "th"); err == nil {
		t.Error("Translate() should fail without API keys")
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt("안녕하세요", "ko", "th")
	if !strings.Contains(prompt, "from Korean to Thai") {
		t.Errorf("prompt missing language names: %q", prompt)
	}
	if !strings.HasSuffix(prompt, "안녕하세요") {
		t.Errorf("prompt should end with the text: %q", prompt)
	}
}

func TestSingleLine(t *testing.T) {
	if got := singleLine("  first\nsecond \n"); got != "first second" {
		t.Errorf("singleLine() = %q", got)
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		provider string
		want     string
		wantErr  bool
	}{
		{config.ProviderPapago, "papago", false},
		{config.ProviderDeepL, "deepl", false},
		{config.ProviderGemini, "gemini", false},
		{"babelfish", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			tr, err := New(config.TranslatorConfig{Provider: tt.provider})
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && tr.Name() != tt.want {
				t.Errorf("Name() = %q, want %q", tr.Name(), tt.want)
			}
		})
	}
}
