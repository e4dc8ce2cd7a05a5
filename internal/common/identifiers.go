package common

import (
	"strings"
	"unicode"
)

// PascalCase converts a field name to PascalCase for use in generated
// type names and method names.
// Examples:
//   - "name" -> "Name"
//   - "user_name" -> "UserName"
//   - "maxRetries" -> "MaxRetries"
//   - "ID" -> "ID"
func PascalCase(s string) string {
	var b strings.Builder

	for _, token := range splitTokens(s) {
		runes := []rune(token)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}

	return b.String()
}

// LowerCamelCase converts a field name to lowerCamelCase for use as an
// unexported struct field in generated builder types.
// Examples:
//   - "Name" -> "name"
//   - "user_name" -> "userName"
//   - "MaxRetries" -> "maxRetries"
func LowerCamelCase(s string) string {
	pascal := PascalCase(s)
	if pascal == "" {
		return ""
	}

	runes := []rune(pascal)

	// Lowercase the leading run of uppercase letters, keeping the last one
	// intact when it starts a new word ("IDValue" -> "idValue").
	upperRun := 0
	for upperRun < len(runes) && unicode.IsUpper(runes[upperRun]) {
		upperRun++
	}

	switch {
	case upperRun == 0:
		// Already lowercase-leading.
	case upperRun == len(runes):
		for i := range runes {
			runes[i] = unicode.ToLower(runes[i])
		}
	case upperRun == 1:
		runes[0] = unicode.ToLower(runes[0])
	default:
		for i := 0; i < upperRun-1; i++ {
			runes[i] = unicode.ToLower(runes[i])
		}
	}

	return string(runes)
}

// SnakeCase converts an identifier to snake_case for use in generated
// file names.
// Examples:
//   - "User" -> "user"
//   - "ServerConfig" -> "server_config"
//   - "HTTPServer" -> "httpserver" (an all-caps run stays one token)
func SnakeCase(s string) string {
	tokens := splitTokens(s)
	for i, token := range tokens {
		tokens[i] = strings.ToLower(token)
	}

	return strings.Join(tokens, "_")
}

// IsValidIdentifier reports whether s is a legal Go identifier.
func IsValidIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}

		if i > 0 && unicode.IsDigit(r) {
			continue
		}

		return false
	}

	return !isKeyword(s)
}

// splitTokens splits an identifier on underscores, dashes, and lower-to-upper
// case boundaries. Empty tokens are dropped.
func splitTokens(s string) []string {
	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i, r := range runes {
		if r == '_' || r == '-' || r == ' ' {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(runes[i-1]) {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// isKeyword reports whether s is a Go keyword.
func isKeyword(s string) bool {
	switch s {
	case "break", "case", "chan", "const", "continue", "default", "defer",
		"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
		"interface", "map", "package", "range", "return", "select", "struct",
		"switch", "type", "var":
		return true
	}

	return false
}
