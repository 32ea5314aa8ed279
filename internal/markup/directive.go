// Package markup rewrites the inline @-directives embedded in rich-text
// fields of game data documents (cross-references, localization lookups,
// dice and check formatting, trait annotations) into presentational output.
//
// The transformer is a pure function of (text, context): it never mutates
// the context, never panics on malformed or untrusted content, and every
// unresolvable directive has a deterministic textual fallback.
package markup

// Kind identifies a recognized directive family. The set is closed: each
// kind has exactly one handler in the rewrite pipeline.
type Kind int

const (
	KindUnknown Kind = iota
	KindLocalize
	KindCompendium
	KindCrossReference
	KindTrait
	KindCondition
	KindDamage
	KindCheck
)

// String returns the directive keyword for the kind.
func (k Kind) String() string {
	switch k {
	case KindLocalize:
		return "Localize"
	case KindCompendium:
		return "Compendium"
	case KindCrossReference:
		return "UUID"
	case KindTrait:
		return "Trait"
	case KindCondition:
		return "Condition"
	case KindDamage:
		return "Damage"
	case KindCheck:
		return "Check"
	default:
		return "Unknown"
	}
}

// directiveSyntax describes how one opening token is scanned.
type directiveSyntax struct {
	kind   Kind
	token  string // opening marker, always ending in '['
	nested bool   // argument extent found by bracket-depth matching
	label  bool   // an optional trailing {label} may follow
	space  bool   // whitespace allowed between ']' and '{'
}

// syntaxTable lists every recognized opening token. Damage and Check need
// true bracket-depth matching because their arguments may contain nested
// [...] such as inline roll formulas; the remaining kinds never carry
// brackets in their arguments, so the first ']' terminates them.
var syntaxTable = []directiveSyntax{
	{kind: KindLocalize, token: "@Localize["},
	{kind: KindCompendium, token: "@Compendium[", label: true},
	{kind: KindCrossReference, token: "@UUID[", label: true},
	{kind: KindTrait, token: "@Traits[", label: true},
	{kind: KindTrait, token: "@Trait[", label: true},
	{kind: KindCondition, token: "@Condition[", label: true},
	{kind: KindDamage, token: "@Damage[", nested: true},
	{kind: KindCheck, token: "@Check[", nested: true, label: true, space: true},
}

// Directive is one occurrence of a bracketed markup unit in source text.
// Directives have no persistent identity; they exist only while a single
// scan or transform call runs.
type Directive struct {
	Kind         Kind
	Token        string // the opening marker that matched, e.g. "@Traits["
	Argument     string // raw bracketed payload, empty when unterminated
	Label        string // trailing {...} display override, if present
	HasLabel     bool
	Offset       int  // byte offset of the opening token in the input
	End          int  // byte offset just past the directive (or past the token when unterminated)
	Unterminated bool // no matching close bracket was found
}

// Scan tokenizes text into its directive occurrences, left to right. Plain
// text between directives is skipped. Unterminated directives are reported
// with Unterminated set and scanning resumes immediately past the opening
// token, so the remainder of the string is still scanned.
func Scan(text string) []Directive {
	var out []Directive
	pos := 0
	for pos < len(text) {
		syn, at := nextToken(text, pos)
		if at < 0 {
			break
		}

		d := Directive{Kind: syn.kind, Token: syn.token, Offset: at}
		open := at + len(syn.token) - 1

		arg, next, ok := scanArgument(text, open, syn.nested)
		if !ok {
			d.Unterminated = true
			d.End = at + len(syn.token)
			out = append(out, d)
			pos = d.End
			continue
		}
		d.Argument = arg
		d.End = next

		if syn.label {
			if label, end, ok := scanLabel(text, next, syn.space); ok {
				d.Label, d.HasLabel, d.End = label, true, end
			}
		}

		out = append(out, d)
		pos = d.End
	}
	return out
}

// nextToken finds the earliest opening token at or after pos. Longer tokens
// sharing a prefix win over shorter ones at the same offset ("@Traits["
// before "@Trait[").
func nextToken(text string, pos int) (directiveSyntax, int) {
	best := -1
	var bestSyn directiveSyntax
	for _, syn := range syntaxTable {
		at := indexFrom(text, syn.token, pos)
		if at < 0 {
			continue
		}
		if best < 0 || at < best || (at == best && len(syn.token) > len(bestSyn.token)) {
			best, bestSyn = at, syn
		}
	}
	return bestSyn, best
}
