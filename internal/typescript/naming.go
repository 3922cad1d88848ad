package typescript

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCaser uppercases the first letter of a word and leaves the rest
// alone, so "history" becomes "History" and "APIKeys" stays "APIKeys".
// Generated identifiers never use Go-style initialisms: a path parameter
// "id" renders as "Id", matching what the emitted JavaScript expects.
var titleCaser = cases.Title(language.Und, cases.NoLower)

func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return titleCaser.String(s)
}

func PascalCase(s string) string {
	words := splitWords(s)
	var result strings.Builder
	for _, word := range words {
		result.WriteString(Capitalize(word))
	}
	return result.String()
}

func CamelCase(s string) string {
	words := splitWords(s)
	var result strings.Builder
	for i, word := range words {
		if i == 0 {
			result.WriteString(strings.ToLower(word))
		} else {
			result.WriteString(Capitalize(word))
		}
	}
	return result.String()
}

func KebabCase(s string) string {
	words := splitWords(s)
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return strings.Join(words, "-")
}

// splitWords breaks a string into words on anything that is not a letter or
// digit, and on lower-to-upper case boundaries. Separator runes are dropped,
// which keeps every output word identifier-safe.
func splitWords(s string) []string {
	var words []string
	var current strings.Builder

	prev := rune(0)
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
			prev = r
			continue
		}

		if unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
		}

		current.WriteRune(r)
		prev = r
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

// Identifier makes a name safe to use as a JavaScript identifier by
// prefixing names that would start with a digit.
func Identifier(s string) string {
	if s == "" {
		return "X"
	}
	if first := rune(s[0]); unicode.IsDigit(first) {
		return "X" + s
	}
	return s
}

var reservedWords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true,
	"do": true, "else": true, "export": true, "extends": true, "finally": true,
	"for": true, "function": true, "if": true, "import": true, "in": true,
	"instanceof": true, "new": true, "return": true, "super": true,
	"switch": true, "this": true, "throw": true, "try": true, "typeof": true,
	"var": true, "void": true, "while": true, "with": true, "yield": true,
}

// EscapeReserved suffixes names that collide with JavaScript reserved words.
func EscapeReserved(s string) string {
	if reservedWords[s] {
		return s + "_"
	}
	return s
}
