package projector

import (
	"go/token"
	"strings"
	"unicode"
)

// initialisms are rendered fully upper case, following Go naming.
var initialisms = map[string]bool{
	"API":  true,
	"HTML": true,
	"HTTP": true,
	"ID":   true,
	"JSON": true,
	"SQL":  true,
	"UID":  true,
	"URI":  true,
	"URL":  true,
	"UUID": true,
}

// GoName converts a GraphQL name to an exported Go identifier:
// "subTitle" -> "SubTitle", "id" -> "ID", "endCursor" -> "EndCursor",
// "__typename" -> "Typename".
func GoName(name string) string {
	var b strings.Builder
	for _, word := range splitWords(name) {
		upper := strings.ToUpper(word)
		switch {
		case initialisms[upper]:
			b.WriteString(upper)
		case word == upper && len(word) > 1:
			b.WriteString(word[:1] + strings.ToLower(word[1:]))
		default:
			r := []rune(word)
			r[0] = unicode.ToUpper(r[0])
			b.WriteString(string(r))
		}
	}
	out := b.String()
	if out == "" || !token.IsIdentifier(out) {
		return "X" + out
	}
	return out
}

// lowerFirst returns an unexported form of an exported identifier, keeping
// a leading initialism together: "IDList" -> "idList", "User" -> "user".
func lowerFirst(s string) string {
	r := []rune(s)
	n := 0
	for n < len(r) && unicode.IsUpper(r[n]) {
		n++
	}
	if n > 1 && n < len(r) {
		n--
	}
	for i := 0; i < n; i++ {
		r[i] = unicode.ToLower(r[i])
	}
	return string(r)
}

// splitWords splits on underscores and lower-to-upper case transitions,
// keeping runs of capitals together ("HTTPServer" -> "HTTP", "Server").
func splitWords(s string) []string {
	var words []string
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == '-' }) {
		r := []rune(part)
		start := 0
		for i := 1; i < len(r); i++ {
			prev, cur := r[i-1], r[i]
			switch {
			case unicode.IsUpper(cur) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
				words = append(words, string(r[start:i]))
				start = i
			case unicode.IsUpper(prev) && unicode.IsUpper(cur) && i+1 < len(r) && unicode.IsLower(r[i+1]):
				words = append(words, string(r[start:i]))
				start = i
			}
		}
		words = append(words, string(r[start:]))
	}
	return words
}
