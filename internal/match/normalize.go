package match

import (
	"strings"
	"unicode"

	"type-closure/internal/common"
)

// NormalizeName reduces a qualified type name to its simple name, lower-cased
// and without separators, so "net/http.Client", "http_client" and "Client"
// compare on "client" versus "httpclient".
func NormalizeName(name string) string {
	_, simple := common.SplitQualified(name)

	var b strings.Builder

	b.Grow(len(simple))

	for _, r := range simple {
		if isSeparator(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// Tokens splits a simple name on separators and CamelCase boundaries into
// lower-case words. "XMLParser" gives ["xml", "parser"].
func Tokens(name string) []string {
	_, simple := common.SplitQualified(name)

	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, strings.ToLower(current.String()))
			current.Reset()
		}
	}

	runes := []rune(simple)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '$'
}

// startsToken reports whether runes[i] opens a new CamelCase word.
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// "orderID": lower to upper
	if !unicode.IsUpper(prev) {
		return true
	}

	// "XMLParser": the last capital of an acronym starts the next word
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
