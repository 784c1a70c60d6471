package script

import (
	"strings"
	"unicode"
)

var byLanguage = map[string]*unicode.RangeTable{
	"ko": Hangul,
	"th": Thai,
	"ru": unicode.Cyrillic,
	"uk": unicode.Cyrillic,
	"el": unicode.Greek,
	"he": unicode.Hebrew,
	"ar": unicode.Arabic,
}

// ForLanguage returns the script range used to detect text in a language.
func ForLanguage(code string) (*unicode.RangeTable, bool) {
	table, ok := byLanguage[strings.ToLower(strings.TrimSpace(code))]
	return table, ok
}
