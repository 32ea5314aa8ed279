package markup

import (
	"strconv"
	"strings"

	"github.com/TaleSale/Foundry-JSON-reader/internal/lang"
)

// checkParams holds the fields parsed out of a @Check argument.
type checkParams struct {
	typ       string // saving throw name, lower case
	dc        int
	hasDC     bool
	basic     bool
	unclaimed []string // positional tokens the heuristics did not claim
}

// saveNames are the recognized saving throw names. A bare token matching
// one of them (case-insensitive) claims the type slot.
var saveNames = map[string]bool{
	"fortitude": true,
	"reflex":    true,
	"will":      true,
}

// parseCheck splits a pipe-delimited @Check argument into fields. Tokens
// are either key:value pairs or bare positional values. Positional values
// are classified heuristically, and the heuristic is load-bearing for
// existing content: the first unclaimed save-name token becomes the type,
// the first unclaimed integer-parseable token becomes the dc. Everything
// else stays unclaimed for the best-effort fallback.
func parseCheck(arg string) checkParams {
	var p checkParams
	for _, tok := range strings.Split(arg, "|") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}

		if key, val, ok := strings.Cut(tok, ":"); ok {
			val = strings.TrimSpace(val)
			switch strings.ToLower(strings.TrimSpace(key)) {
			case "type":
				if p.typ == "" {
					p.typ = strings.ToLower(val)
				}
			case "dc":
				if n, err := strconv.Atoi(val); err == nil && !p.hasDC {
					p.dc, p.hasDC = n, true
				}
			case "basic":
				p.basic = strings.EqualFold(val, "true")
			}
			continue
		}

		if p.typ == "" && saveNames[strings.ToLower(tok)] {
			p.typ = strings.ToLower(tok)
			continue
		}
		if n, err := strconv.Atoi(tok); err == nil && !p.hasDC {
			p.dc, p.hasDC = n, true
			continue
		}
		p.unclaimed = append(p.unclaimed, tok)
	}
	return p
}

// rewriteChecks formats @Check[...] directives. With both a type and a dc
// the compact normalized label is produced ("Basic Reflex DC15"); with a
// partial parse a best-effort reconstruction ("Perception DC 20"); with
// nothing parsed the explicit label, or failing that the raw argument.
// Every form is wrapped in strong emphasis.
func rewriteChecks(text string) string {
	return rewriteToken(text, "@Check[", func(arg, label string, hasLabel bool) string {
		p := parseCheck(arg)

		if p.typ != "" && p.hasDC {
			parts := make([]string, 0, 3)
			if p.basic {
				parts = append(parts, "Basic")
			}
			parts = append(parts, lang.Capitalize(p.typ), "DC"+strconv.Itoa(p.dc))
			return "<strong>" + strings.Join(parts, " ") + "</strong>"
		}

		var parts []string
		if p.basic {
			parts = append(parts, "Basic")
		}
		if p.typ != "" {
			parts = append(parts, lang.Capitalize(p.typ))
		}
		for _, u := range p.unclaimed {
			parts = append(parts, lang.Capitalize(u))
		}
		if p.hasDC {
			parts = append(parts, "DC "+strconv.Itoa(p.dc))
		}
		if len(parts) > 0 {
			return "<strong>" + strings.Join(parts, " ") + "</strong>"
		}

		if hasLabel {
			return "<strong>" + label + "</strong>"
		}
		return "<strong>" + arg + "</strong>"
	})
}
