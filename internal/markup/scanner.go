package markup

import "strings"

// The scanners below are small explicit state machines (position plus a
// nesting depth counter) instead of regular expressions: Damage and Check
// arguments may contain arbitrarily nested [...] and labels may contain
// nested {}, which no non-greedy pattern handles correctly. Each scanner
// terminates on any input; an unmatched opening token is reported rather
// than consumed.

// scanArgument extracts the bracketed argument whose '[' sits at open.
// With nested set, depth increments on '[' and decrements on ']' and the
// argument ends when depth returns to zero; otherwise the first ']'
// terminates it. Returns the argument and the offset just past the ']'.
func scanArgument(text string, open int, nested bool) (arg string, end int, ok bool) {
	if open < 0 || open >= len(text) || text[open] != '[' {
		return "", 0, false
	}

	if !nested {
		rel := strings.IndexByte(text[open+1:], ']')
		if rel < 0 {
			return "", 0, false
		}
		return text[open+1 : open+1+rel], open + rel + 2, true
	}

	depth := 0
	for i := open; i < len(text); i++ {
		switch text[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return text[open+1 : i], i + 1, true
			}
		}
	}
	return "", 0, false
}

// scanLabel extracts a {label} starting at pos, tracking brace depth so the
// label itself may contain balanced {}. With space set, horizontal
// whitespace between pos and the '{' is consumed. Returns the label and the
// offset just past the '}'.
func scanLabel(text string, pos int, space bool) (label string, end int, ok bool) {
	i := pos
	if space {
		for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
			i++
		}
	}
	if i >= len(text) || text[i] != '{' {
		return "", 0, false
	}

	depth := 0
	for j := i; j < len(text); j++ {
		switch text[j] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[i+1 : j], j + 1, true
			}
		}
	}
	return "", 0, false
}

// indexFrom is strings.Index relative to pos, returning an absolute offset.
func indexFrom(text, sub string, pos int) int {
	if pos >= len(text) {
		return -1
	}
	rel := strings.Index(text[pos:], sub)
	if rel < 0 {
		return -1
	}
	return pos + rel
}
