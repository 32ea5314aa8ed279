package lang

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCaser upper-cases the first letter of a word without touching the
// rest, so "itemName" stays "ItemName" rather than "Itemname".
var titleCaser = cases.Title(language.English, cases.NoLower)

// Capitalize returns s with its first rune upper-cased.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return titleCaser.String(s[:size]) + s[size:]
}

// PascalCase converts a hyphen or snake case slug to PascalCase:
// "fire-resistance" -> "FireResistance".
func PascalCase(slug string) string {
	parts := strings.FieldsFunc(slug, func(r rune) bool {
		return r == '-' || r == '_'
	})
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(Capitalize(p))
	}
	return b.String()
}

// Localize translates key against dict and applies {name} placeholder
// replacements to the result.
//
// With a nil dict the last dot-segment of key is returned with its first
// character capitalized; a key with no dot is returned unchanged. With a
// non-nil dict a failed lookup returns key itself unchanged, not the derived
// fallback. The asymmetry is deliberate: content rendered with a dictionary
// should surface the exact missing key.
//
// Placeholder substitution is non-recursive and order-independent over
// disjoint placeholder names.
func Localize(dict Dictionary, key string, replacements map[string]any) string {
	var out string
	switch {
	case dict == nil:
		out = fallbackLabel(key)
	default:
		if v, ok := Resolve(dict, key); ok {
			out = v
		} else {
			out = key
		}
	}

	for name, val := range replacements {
		out = strings.ReplaceAll(out, "{"+name+"}", fmt.Sprint(val))
	}
	return out
}

// fallbackLabel derives a human-readable label from a dotted key.
func fallbackLabel(key string) string {
	i := strings.LastIndex(key, ".")
	if i < 0 {
		return key
	}
	return Capitalize(key[i+1:])
}
