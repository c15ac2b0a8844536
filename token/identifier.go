package token

import (
	"unicode/utf8"

	"github.com/nukilabs/unicodeid"
)

// Lookup tables for ASCII identifier characters.
// Non-ASCII runes always take the Unicode path.
var asciiStart, asciiContinue [utf8.RuneSelf]bool

func init() {
	for i := 0; i < utf8.RuneSelf; i++ {
		if i >= 'a' && i <= 'z' || i >= 'A' && i <= 'Z' || i == '$' || i == '_' {
			asciiStart[i] = true
			asciiContinue[i] = true
		}
		if i >= '0' && i <= '9' {
			asciiContinue[i] = true
		}
	}
}

// IsIdentifierStart reports whether chr may begin an identifier.
func IsIdentifierStart(chr rune) bool {
	if chr < 0 {
		return false
	}
	if chr < utf8.RuneSelf {
		return asciiStart[chr]
	}
	return unicodeid.IsIDStartUnicode(chr)
}

// IsIdentifierPart reports whether chr may continue an identifier.
func IsIdentifierPart(chr rune) bool {
	if chr < 0 {
		return false
	}
	if chr < utf8.RuneSelf {
		return asciiContinue[chr]
	}
	return unicodeid.IsIDContinueUnicode(chr)
}

// IsIdentifierName reports whether s can be written after a `.` without
// quoting. Reserved words qualify: `a.class` is valid.
func IsIdentifierName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !IsIdentifierStart(r) || i > 0 && !IsIdentifierPart(r) {
			return false
		}
	}
	return true
}
