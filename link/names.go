// Copyright (c) 2024 The morloc project contributors

package link

import (
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
)

// isBareIdentifier reports whether s is already safe to use as a bare
// function identifier: no whitespace, no dots, and not starting with
// a digit.
func isBareIdentifier(s string) bool {
	if s == "" {
		return true
	}
	if unicode.IsDigit(rune(s[0])) {
		return false
	}
	if strings.ContainsRune(s, '.') || strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return false
	}
	return true
}

func strcaseToSnake(s string) string {
	return strcase.ToSnake(s)
}
