package lang

import "testing"

func TestLocalizeWithoutDictionary(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"PF2E.Actions.itemName", "ItemName"},
		{"A.B.strike", "Strike"},
		{"plain", "plain"}, // no dot: returned unchanged, not capitalized
		{"", ""},
	}
	for _, tt := range tests {
		if got := Localize(nil, tt.key, nil); got != tt.want {
			t.Errorf("Localize(nil, %q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestLocalizeWithDictionary(t *testing.T) {
	dict := Dictionary{
		"PF2E": map[string]any{
			"TraitFire": "Fire",
			"Greeting":  "Hello {name}, you have {count} points",
		},
	}

	if got := Localize(dict, "PF2E.TraitFire", nil); got != "Fire" {
		t.Errorf("resolved key = %q, want %q", got, "Fire")
	}

	// A miss with a dictionary returns the key itself, not the derived
	// fallback label.
	if got := Localize(dict, "Does.Not.Exist", nil); got != "Does.Not.Exist" {
		t.Errorf("missing key = %q, want the key unchanged", got)
	}
}

func TestLocalizeReplacements(t *testing.T) {
	dict := Dictionary{
		"Greeting": "Hello {name}, you have {count} points",
	}

	got := Localize(dict, "Greeting", map[string]any{"name": "Ann", "count": 2})
	want := "Hello Ann, you have 2 points"
	if got != want {
		t.Errorf("Localize with replacements = %q, want %q", got, want)
	}

	// Unknown placeholders stay verbatim.
	got = Localize(dict, "Greeting", map[string]any{"name": "Ann"})
	want = "Hello Ann, you have {count} points"
	if got != want {
		t.Errorf("partial replacements = %q, want %q", got, want)
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"reflex", "Reflex"},
		{"itemName", "ItemName"},
		{"Already", "Already"},
		{"éclair", "Éclair"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Capitalize(tt.in); got != tt.want {
			t.Errorf("Capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPascalCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"fire-resistance", "FireResistance"},
		{"very_fast", "VeryFast"},
		{"solo", "Solo"},
		{"double--dash", "DoubleDash"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := PascalCase(tt.in); got != tt.want {
			t.Errorf("PascalCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
