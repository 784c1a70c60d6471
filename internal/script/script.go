// Package script classifies caption text by the writing systems it contains.
package script

import "unicode"

// Class is the outcome of classifying one caption line.
type Class int

const (
	Neither Class = iota
	PrimaryOnly
	SecondaryOnly
	Both
)

func (c Class) String() string {
	switch c {
	case PrimaryOnly:
		return "primary"
	case SecondaryOnly:
		return "secondary"
	case Both:
		return "both"
	default:
		return "neither"
	}
}

// Hangul covers the precomposed Hangul syllables block only; bare jamo do not count.
var Hangul = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0xAC00, Hi: 0xD7A3, Stride: 1}},
}

// Thai covers the whole Thai block.
var Thai = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0E00, Hi: 0x0E7F, Stride: 1}},
}

// Classifier detects a primary and a secondary script in text.
type Classifier struct {
	primary   *unicode.RangeTable
	secondary *unicode.RangeTable
}

// NewClassifier creates a Classifier for the given primary and secondary ranges
func NewClassifier(primary, secondary *unicode.RangeTable) Classifier {
	return Classifier{primary: primary, secondary: secondary}
}

// Default classifies Korean (primary) against Thai (secondary).
var Default = NewClassifier(Hangul, Thai)

// Classify reports which of the two scripts appear in text.
func (c Classifier) Classify(text string) Class {
	var hasPrimary, hasSecondary bool
	for _, r := range text {
		if !hasPrimary && in(c.primary, r) {
			hasPrimary = true
		}
		if !hasSecondary && in(c.secondary, r) {
			hasSecondary = true
		}
		if hasPrimary && hasSecondary {
			return Both
		}
	}

	switch {
	case hasPrimary:
		return PrimaryOnly
	case hasSecondary:
		return SecondaryOnly
	default:
		return Neither
	}
}

func in(table *unicode.RangeTable, r rune) bool {
	return table != nil && unicode.Is(table, r)
}
