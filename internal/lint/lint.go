// Package lint scans journal rich text for directives the transformer
// would fall back on — missing localization keys, broken page references,
// unterminated brackets, unknown traits — and reports them as findings.
//
// The transformer itself stays silent about fallbacks by design; lint is
// the separate diagnostic pass content authors run over their files.
package lint

import (
	"fmt"
	"slices"
	"strings"

	"github.com/TaleSale/Foundry-JSON-reader/internal/document"
	"github.com/TaleSale/Foundry-JSON-reader/internal/lang"
	"github.com/TaleSale/Foundry-JSON-reader/internal/markup"
	"github.com/TaleSale/Foundry-JSON-reader/internal/report"
)

// RuleFunc inspects a journal against a resolution context and returns any
// findings. Rule funcs never mutate the journal or the context.
type RuleFunc func(*document.Journal, *markup.Context) []report.Finding

// ruleEntry binds a named lint rule to its implementation.
type ruleEntry struct {
	Name string
	Fn   RuleFunc
}

// Linter runs registered lint rules over journals.
type Linter struct {
	rules []ruleEntry
}

// New creates a Linter with all built-in rules registered.
func New() *Linter {
	l := &Linter{}
	l.Register("localization", checkLocalization)
	l.Register("references", checkReferences)
	l.Register("syntax", checkSyntax)
	l.Register("traits", checkTraits)
	return l
}

// Register adds a lint rule to the linter.
func (l *Linter) Register(name string, fn RuleFunc) {
	l.rules = append(l.rules, ruleEntry{Name: name, Fn: fn})
}

// Rules returns the names of all registered rules in registration order.
func (l *Linter) Rules() []string {
	names := make([]string, len(l.rules))
	for i, r := range l.rules {
		names[i] = r.Name
	}
	return names
}

// Lint runs the registered rules (all of them when filter is empty, else
// only those named) over the journal and returns findings with their File
// location set to file.
func (l *Linter) Lint(file string, j *document.Journal, ctx *markup.Context, filter []string) []report.Finding {
	var findings []report.Finding
	for _, r := range l.rules {
		if len(filter) > 0 && !slices.Contains(filter, r.Name) {
			continue
		}
		findings = append(findings, r.Fn(j, ctx)...)
	}
	for i := range findings {
		findings[i].Location.File = file
	}
	return findings
}

// pageLoc builds the location for a finding inside page i of a journal.
func pageLoc(i int, p document.Page, offset int) report.Location {
	return report.Location{
		Path:   fmt.Sprintf("$.pages[%d].text.content", i),
		Page:   p.ID,
		Offset: offset,
	}
}

// checkLocalization reports @Localize keys absent from the dictionary.
// Without a dictionary the rule is silent: the transformer would not run
// the Localize stage either.
func checkLocalization(j *document.Journal, ctx *markup.Context) []report.Finding {
	if ctx.Dict == nil {
		return nil
	}
	var findings []report.Finding
	for i, p := range j.Pages {
		for _, d := range markup.Scan(p.Text.Content) {
			if d.Kind != markup.KindLocalize || d.Unterminated {
				continue
			}
			key := strings.TrimSpace(d.Argument)
			if _, ok := lang.Resolve(ctx.Dict, key); !ok {
				findings = append(findings, report.NewWarning(
					"LOC-MISSING",
					fmt.Sprintf("Localization key '%s' not found in dictionary", key),
					pageLoc(i, p, d.Offset),
				))
			}
		}
	}
	return findings
}

// checkReferences reports @UUID page locators whose page id is addressable
// neither in the current journal nor in the world graph.
func checkReferences(j *document.Journal, ctx *markup.Context) []report.Finding {
	var findings []report.Finding
	for i, p := range j.Pages {
		for _, d := range markup.Scan(p.Text.Content) {
			if d.Kind != markup.KindCrossReference || d.Unterminated {
				continue
			}
			jid, pid, ok := markup.SplitJournalPage(strings.TrimSpace(d.Argument))
			if !ok {
				continue
			}
			if ctx.Pages[pid] || ctx.Journals[jid][pid] {
				continue
			}
			findings = append(findings, report.NewWarning(
				"REF-BROKEN",
				fmt.Sprintf("Page '%s' is not addressable from this journal", pid),
				pageLoc(i, p, d.Offset),
			))
		}
	}
	return findings
}

// checkSyntax reports directive opening tokens with no matching close
// bracket. The transformer leaves these verbatim; authors usually want to
// know anyway.
func checkSyntax(j *document.Journal, _ *markup.Context) []report.Finding {
	var findings []report.Finding
	for i, p := range j.Pages {
		for _, d := range markup.Scan(p.Text.Content) {
			if !d.Unterminated {
				continue
			}
			findings = append(findings, report.NewError(
				"SYNTAX-UNTERMINATED",
				fmt.Sprintf("@%s directive has no matching ']'", d.Kind),
				pageLoc(i, p, d.Offset),
			))
		}
	}
	return findings
}

// checkTraits reports trait slugs with neither an explicit label nor a
// localized name, which render as the bare PascalCase slug.
func checkTraits(j *document.Journal, ctx *markup.Context) []report.Finding {
	if ctx.Dict == nil {
		return nil
	}
	var findings []report.Finding
	for i, p := range j.Pages {
		for _, d := range markup.Scan(p.Text.Content) {
			if d.Kind != markup.KindTrait || d.Unterminated || d.HasLabel {
				continue
			}
			slug := strings.TrimSpace(d.Argument)
			if _, ok := lang.Resolve(ctx.Dict, "PF2E.Trait"+lang.PascalCase(slug)); !ok {
				findings = append(findings, report.NewWarning(
					"TRAIT-UNKNOWN",
					fmt.Sprintf("Trait '%s' has no localized name", slug),
					pageLoc(i, p, d.Offset),
				))
			}
		}
	}
	return findings
}
