package naming

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrEmptyWord reports a phrase whose space-split yields an empty word
// (leading, trailing, or doubled spaces). Description names are expected to
// be clean single-space phrases; anything else is an input-construction bug
// surfaced immediately rather than silently emitted.
var ErrEmptyWord = errors.New("phrase contains an empty word")

// CamelCase joins the space-delimited words of phrase into a camelCase
// identifier: the first word is kept as is, every following word gets its
// first character uppercased. Unless preserveCase is set, the whole phrase
// is lowercased first.
func CamelCase(phrase string, preserveCase bool) (string, error) {
	return join(phrase, preserveCase, false)
}

// PascalCase is CamelCase with the first word capitalized too.
func PascalCase(phrase string, preserveCase bool) (string, error) {
	return join(phrase, preserveCase, true)
}

func join(phrase string, preserveCase, capitalizeFirst bool) (string, error) {
	if !preserveCase {
		phrase = strings.ToLower(phrase)
	}

	var sb strings.Builder
	sb.Grow(len(phrase))

	for i, word := range strings.Split(phrase, " ") {
		if word == "" {
			return "", fmt.Errorf("%w: %q", ErrEmptyWord, phrase)
		}

		if i == 0 && !capitalizeFirst {
			sb.WriteString(word)
			continue
		}

		sb.WriteString(capitalize(word))
	}

	return sb.String(), nil
}

// capitalize uppercases the first character and keeps the remainder
// untouched ("3d" stays "3d", "sRGB" becomes "SRGB" only in its first rune).
func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)

	return string(unicode.ToUpper(r)) + word[size:]
}
