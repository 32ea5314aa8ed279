package markup

import "testing"

func TestScanArgumentFlat(t *testing.T) {
	text := "ab[cd]e"
	arg, end, ok := scanArgument(text, 2, false)
	if !ok || arg != "cd" || end != 6 {
		t.Errorf("scanArgument = (%q, %d, %v), want (\"cd\", 6, true)", arg, end, ok)
	}
}

func TestScanArgumentFlatStopsAtFirstClose(t *testing.T) {
	// Non-nested scanning terminates on the first ']' even when more follow.
	text := "[2d6[fire]]"
	arg, end, ok := scanArgument(text, 0, false)
	if !ok || arg != "2d6[fire" || end != 10 {
		t.Errorf("scanArgument = (%q, %d, %v), want (\"2d6[fire\", 10, true)", arg, end, ok)
	}
}

func TestScanArgumentNested(t *testing.T) {
	text := "[2d6[fire] plus 1d4[acid]] tail"
	arg, end, ok := scanArgument(text, 0, true)
	if !ok || arg != "2d6[fire] plus 1d4[acid]" {
		t.Errorf("scanArgument = (%q, %v), want full nested argument", arg, ok)
	}
	if text[end:] != " tail" {
		t.Errorf("end = %d, rest = %q, want \" tail\"", end, text[end:])
	}
}

func TestScanArgumentUnterminated(t *testing.T) {
	for _, text := range []string{"[abc", "[a[b]", "["} {
		if _, _, ok := scanArgument(text, 0, true); ok {
			t.Errorf("scanArgument(%q) ok = true, want false", text)
		}
	}
	if _, _, ok := scanArgument("[abc", 0, false); ok {
		t.Error("flat scanArgument on unterminated input should fail")
	}
}

func TestScanArgumentBadOpen(t *testing.T) {
	if _, _, ok := scanArgument("abc", 0, true); ok {
		t.Error("scanArgument without '[' at open should fail")
	}
	if _, _, ok := scanArgument("abc", 99, false); ok {
		t.Error("scanArgument past end of string should fail")
	}
}

func TestScanLabel(t *testing.T) {
	label, end, ok := scanLabel("{Intro} x", 0, false)
	if !ok || label != "Intro" || end != 7 {
		t.Errorf("scanLabel = (%q, %d, %v), want (\"Intro\", 7, true)", label, end, ok)
	}
}

func TestScanLabelNestedBraces(t *testing.T) {
	label, _, ok := scanLabel("{a{b}c}", 0, false)
	if !ok || label != "a{b}c" {
		t.Errorf("scanLabel = (%q, %v), want (\"a{b}c\", true)", label, ok)
	}
}

func TestScanLabelWhitespacePolicy(t *testing.T) {
	if label, _, ok := scanLabel("  {L}", 0, true); !ok || label != "L" {
		t.Errorf("scanLabel with space = (%q, %v), want (\"L\", true)", label, ok)
	}
	if _, _, ok := scanLabel("  {L}", 0, false); ok {
		t.Error("scanLabel without space should not skip whitespace")
	}
	if _, _, ok := scanLabel("x{L}", 0, true); ok {
		t.Error("scanLabel should not skip non-whitespace")
	}
}

func TestScanLabelUnterminated(t *testing.T) {
	if _, _, ok := scanLabel("{ab", 0, false); ok {
		t.Error("scanLabel on unterminated input should fail")
	}
	if _, _, ok := scanLabel("", 0, true); ok {
		t.Error("scanLabel at end of string should fail")
	}
}

func TestIndexFrom(t *testing.T) {
	text := "a@X[b@X[c"
	if got := indexFrom(text, "@X[", 0); got != 1 {
		t.Errorf("indexFrom from 0 = %d, want 1", got)
	}
	if got := indexFrom(text, "@X[", 2); got != 5 {
		t.Errorf("indexFrom from 2 = %d, want 5", got)
	}
	if got := indexFrom(text, "@X[", 6); got != -1 {
		t.Errorf("indexFrom from 6 = %d, want -1", got)
	}
	if got := indexFrom(text, "@X[", 99); got != -1 {
		t.Errorf("indexFrom past end = %d, want -1", got)
	}
}
