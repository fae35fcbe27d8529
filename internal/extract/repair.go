// README: Best-effort JSON repair passes applied between parse attempts.
package extract

import "strings"

// repair is a single idempotent normalization. Each pass is independent so it
// can be unit-tested in isolation.
type repair struct {
	name  string
	apply func(s string) string
}

var repairs = []repair{
	{name: "strip_code_fences", apply: stripCodeFences},
	{name: "strip_trailing_commas", apply: stripTrailingCommas},
	{name: "normalize_single_quotes", apply: normalizeSingleQuotes},
}

// stripCodeFences removes a wrapping ``` or ```json fence if present.
func stripCodeFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return s
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

// stripTrailingCommas removes commas that directly precede a closing brace or
// bracket. String literals are respected so a "," inside a value survives.
func stripTrailingCommas(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			b.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		if c == '"' {
			inString = true
			b.WriteByte(c)
			continue
		}
		if c == ',' {
			// Look ahead past whitespace; drop the comma if a closer follows.
			j := i + 1
			for j < len(s) && (s[j] == ' ' || s[j] == '\t' || s[j] == '\n' || s[j] == '\r') {
				j++
			}
			if j < len(s) && (s[j] == '}' || s[j] == ']') {
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

// normalizeSingleQuotes rewrites single-quoted keys/values to double-quoted
// form. Only unambiguous runs are converted: if a single-quoted run contains
// a double quote or a backslash the whole input is returned unchanged rather
// than risk corrupting it.
func normalizeSingleQuotes(s string) string {
	if !strings.ContainsRune(s, '\'') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	inDouble := false
	inSingle := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inDouble:
			b.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inDouble = false
			}
		case inSingle:
			if c == '"' || c == '\\' {
				return s // ambiguous, refuse to rewrite
			}
			if c == '\'' {
				inSingle = false
				b.WriteByte('"')
				continue
			}
			b.WriteByte(c)
		case c == '"':
			inDouble = true
			b.WriteByte(c)
		case c == '\'':
			inSingle = true
			b.WriteByte('"')
		default:
			b.WriteByte(c)
		}
	}
	if inSingle {
		return s // unterminated run, leave as-is
	}
	return b.String()
}
