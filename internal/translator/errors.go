package translator

import (
	"errors"
	"fmt"
	"strings"
)

// TranslationErrorText stands in for a translation when the service answered
// with a non-success status.
const TranslationErrorText = "Translation Error"

var errMissingText = errors.New("parse response: missing translated text")

// StatusError is returned when a translation service answers with a non-2xx status.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s API error (status %d): %s", e.Provider, e.StatusCode, e.Body)
}

// FailureText converts a failed request into the text written in place of the translation.
func FailureText(err error) string {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return TranslationErrorText
	}
	return "Error: " + err.Error()
}

// singleLine joins a multi-line reply so it cannot break the cue layout.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
