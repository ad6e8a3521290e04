package normalize

import (
	"strings"
)

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// RewriteIdentifiers replaces whole identifier tokens in GML source using
// renames. String literals, comments and numbers are copied unchanged.
func RewriteIdentifiers(source string, renames map[string]string) string {
	var out strings.Builder
	out.Grow(len(source))

	i := 0
	for i < len(source) {
		c := source[i]

		switch {
		case c == '"' || c == '\'':
			// GML strings have no escapes
			end := strings.IndexByte(source[i+1:], c)
			if end < 0 {
				out.WriteString(source[i:])
				return out.String()
			}
			end += i + 2
			out.WriteString(source[i:end])
			i = end

		case c == '/' && i+1 < len(source) && source[i+1] == '/':
			end := strings.IndexByte(source[i:], '\n')
			if end < 0 {
				out.WriteString(source[i:])
				return out.String()
			}
			end += i
			out.WriteString(source[i:end])
			i = end

		case c == '/' && i+1 < len(source) && source[i+1] == '*':
			end := strings.Index(source[i+2:], "*/")
			if end < 0 {
				out.WriteString(source[i:])
				return out.String()
			}
			end += i + 4
			out.WriteString(source[i:end])
			i = end

		case (c >= '0' && c <= '9') || c == '$':
			end := i + 1
			for end < len(source) && (isIdentPart(source[end]) || source[end] == '.') {
				end++
			}
			out.WriteString(source[i:end])
			i = end

		case isIdentStart(c):
			end := i + 1
			for end < len(source) && isIdentPart(source[end]) {
				end++
			}
			token := source[i:end]
			if renamed, ok := renames[token]; ok {
				token = renamed
			}
			out.WriteString(token)
			i = end

		default:
			out.WriteByte(c)
			i++
		}
	}

	return out.String()
}
