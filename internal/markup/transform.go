package markup

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/TaleSale/Foundry-JSON-reader/internal/document"
	"github.com/TaleSale/Foundry-JSON-reader/internal/lang"
)

// DefaultMaxDepth bounds recursive localization expansion. A dictionary
// entry whose value embeds a @Localize directive for itself would otherwise
// expand forever; past the ceiling the literal key text is substituted.
const DefaultMaxDepth = 8

// Context is the read-only resolution data for transform calls: the
// localization dictionary, the current journal's page-id set and, when the
// caller supplies a world bundle, the page-id sets of every journal.
//
// The transformer never mutates a Context, so one Context may be shared
// across concurrent Transform calls.
type Context struct {
	Dict      lang.Dictionary
	JournalID string
	Pages     map[string]bool            // page ids of the current journal
	Journals  map[string]map[string]bool // journal id -> page ids, cross-journal graph
	MaxDepth  int                        // localization recursion ceiling, 0 means DefaultMaxDepth
}

// NewContext builds a Context from the current journal, an optional world
// bundle providing the cross-journal graph, and an optional dictionary.
func NewContext(j *document.Journal, w *document.World, dict lang.Dictionary) *Context {
	ctx := &Context{Dict: dict, MaxDepth: DefaultMaxDepth}
	if j != nil {
		ctx.JournalID = j.ID
		ctx.Pages = make(map[string]bool, len(j.Pages))
		for _, p := range j.Pages {
			ctx.Pages[p.ID] = true
		}
	}
	if w != nil {
		ctx.Journals = make(map[string]map[string]bool, len(w.Journals))
		for _, wj := range w.Journals {
			set := make(map[string]bool, len(wj.Pages))
			for _, p := range wj.Pages {
				set[p.ID] = true
			}
			ctx.Journals[wj.ID] = set
		}
	}
	return ctx
}

func (c *Context) maxDepth() int {
	if c.MaxDepth > 0 {
		return c.MaxDepth
	}
	return DefaultMaxDepth
}

// Transform rewrites every recognized directive in text into presentational
// markup. It is total over its input: malformed or unresolvable directives
// degrade to per-kind fallbacks and the surrounding text is preserved.
func Transform(text string, ctx *Context) string {
	if ctx == nil {
		ctx = &Context{}
	}
	return transform(text, ctx, 0)
}

// transform runs the fixed rewrite pipeline. Each stage scans the whole
// current string once, so later stages see earlier stages' output. The
// Localize stage re-enters the full pipeline on resolved values.
func transform(text string, ctx *Context, depth int) string {
	if ctx.Dict != nil {
		text = rewriteLocalize(text, ctx, depth)
	}
	text = rewriteCompendium(text)
	text = rewriteCrossRefs(text, ctx)
	text = rewriteTraits(text, ctx)
	text = rewriteConditions(text)
	text = rewriteDamage(text)
	text = rewriteChecks(text)
	return text
}

// tokenSyntax indexes the syntax table by opening token for the rewriters.
var tokenSyntax = func() map[string]directiveSyntax {
	m := make(map[string]directiveSyntax, len(syntaxTable))
	for _, s := range syntaxTable {
		m[s.token] = s
	}
	return m
}()

// rewriteToken scans text once left to right, replacing each terminated
// occurrence of token with fn's output. An occurrence with no matching
// close bracket is copied verbatim and the scan resumes immediately past
// the opening token, so neither the directive nor the text after it is lost.
func rewriteToken(text, token string, fn func(arg, label string, hasLabel bool) string) string {
	if !strings.Contains(text, token) {
		return text
	}
	syn := tokenSyntax[token]

	var b strings.Builder
	pos := 0
	for {
		at := indexFrom(text, token, pos)
		if at < 0 {
			b.WriteString(text[pos:])
			break
		}
		b.WriteString(text[pos:at])

		arg, next, ok := scanArgument(text, at+len(token)-1, syn.nested)
		if !ok {
			b.WriteString(token)
			pos = at + len(token)
			continue
		}

		label, hasLabel := "", false
		if syn.label {
			if l, end, ok := scanLabel(text, next, syn.space); ok {
				label, hasLabel, next = l, true, end
			}
		}

		b.WriteString(fn(arg, label, hasLabel))
		pos = next
	}
	return b.String()
}

// rewriteLocalize resolves @Localize[key] directives. Resolved values run
// through the full pipeline again with the same context before splicing, so
// a localized string embedding further directives is fully expanded. An
// unresolved key is shown bold; at the recursion ceiling the literal key is
// substituted instead of expanding further.
func rewriteLocalize(text string, ctx *Context, depth int) string {
	return rewriteToken(text, "@Localize[", func(arg, _ string, _ bool) string {
		key := strings.TrimSpace(arg)
		val, ok := lang.Resolve(ctx.Dict, key)
		if !ok {
			return "<strong>" + key + "</strong>"
		}
		if depth >= ctx.maxDepth() {
			return key
		}
		return transform(val, ctx, depth+1)
	})
}

// rewriteCompendium replaces @Compendium[pack]{label} with the label alone;
// there is nothing to link the pack reference to in a standalone context.
func rewriteCompendium(text string) string {
	return rewriteToken(text, "@Compendium[", func(arg, label string, hasLabel bool) string {
		if !hasLabel {
			return "@Compendium[" + arg + "]"
		}
		return label
	})
}

// rewriteCrossRefs resolves @UUID[locator]{label} directives against the
// document graph. Sub-cases are tried in priority order: a cross-journal
// page (when the context carries the world graph), a page of the current
// journal, an actor reference, an item reference, then a bold fallback.
// Actor and item references carry the display label as the name to resolve;
// resolution by name happens in the host, not here.
func rewriteCrossRefs(text string, ctx *Context) string {
	return rewriteToken(text, "@UUID[", func(arg, label string, hasLabel bool) string {
		loc := strings.TrimSpace(arg)
		if !hasLabel {
			label = loc
			if i := strings.LastIndex(loc, "."); i >= 0 {
				label = loc[i+1:]
			}
		}

		if jid, pid, ok := SplitJournalPage(loc); ok {
			if jid != ctx.JournalID && ctx.Journals[jid] != nil && ctx.Journals[jid][pid] {
				return fmt.Sprintf(`<a class="content-link" data-journal-id=%q data-page-id=%q>%s</a>`, jid, pid, label)
			}
			if ctx.Pages[pid] {
				return fmt.Sprintf(`<a class="content-link" data-page-id=%q>%s</a>`, pid, label)
			}
			return "<strong>" + label + "</strong>"
		}
		if strings.Contains(loc, "Actor.") {
			return fmt.Sprintf(`<a class="content-link" data-actor-name=%q>%s</a>`, label, label)
		}
		if strings.Contains(loc, ".Item.") {
			return fmt.Sprintf(`<a class="content-link" data-item-name=%q>%s</a>`, label, label)
		}
		return "<strong>" + label + "</strong>"
	})
}

// SplitJournalPage extracts the journal and page ids from a page locator
// such as "JournalEntry.X.JournalEntryPage.p1".
func SplitJournalPage(loc string) (jid, pid string, ok bool) {
	const (
		jMarker = "JournalEntry."
		pMarker = ".JournalEntryPage."
	)
	m := strings.Index(loc, pMarker)
	if m < 0 || !strings.Contains(loc, jMarker) {
		return "", "", false
	}

	pid = loc[m+len(pMarker):]
	if i := strings.IndexByte(pid, '.'); i >= 0 {
		pid = pid[:i]
	}
	if pid == "" {
		return "", "", false
	}
	if i := strings.LastIndex(loc[:m], jMarker); i >= 0 {
		jid = loc[i+len(jMarker) : m]
	}
	return jid, pid, true
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// rewriteTraits resolves @Trait[slug] and @Traits[slug] directives. The
// display label is the explicit {label} if given, else the localized trait
// name keyed by the PascalCase slug, else the PascalCase slug itself. A
// localized description, when present, is stripped of markup and attached
// as hover-text metadata.
func rewriteTraits(text string, ctx *Context) string {
	fn := func(arg, label string, hasLabel bool) string {
		pascal := lang.PascalCase(strings.TrimSpace(arg))
		display := label
		if !hasLabel {
			if v, ok := lang.Resolve(ctx.Dict, "PF2E.Trait"+pascal); ok {
				display = v
			} else {
				display = pascal
			}
		}
		if desc, ok := lang.Resolve(ctx.Dict, "PF2E.TraitDescription"+pascal); ok {
			tip := strings.ReplaceAll(tagPattern.ReplaceAllString(desc, ""), `"`, "&quot;")
			return `<span class="trait" data-tooltip="` + tip + `">` + display + `</span>`
		}
		return display
	}
	text = rewriteToken(text, "@Traits[", fn)
	return rewriteToken(text, "@Trait[", fn)
}

// rewriteConditions wraps the condition label in emphasis; the condition
// identifier itself does not appear in output.
func rewriteConditions(text string) string {
	return rewriteToken(text, "@Condition[", func(arg, label string, hasLabel bool) string {
		if !hasLabel {
			label = strings.TrimSpace(arg)
		}
		return "<em>" + label + "</em>"
	})
}

// rewriteDamage renders the damage formula verbatim in strong emphasis.
// Nested [...] such as "2d6[fire]" survives intact via the depth scanner.
func rewriteDamage(text string) string {
	return rewriteToken(text, "@Damage[", func(arg, _ string, _ bool) string {
		return "<strong>" + arg + "</strong>"
	})
}
