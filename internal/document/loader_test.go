package document

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadJournal(t *testing.T) {
	path := writeFile(t, "journal.json", `{
		"_id": "j1",
		"name": "Adventure Guide",
		"pages": [
			{"_id": "p1", "name": "Intro", "type": "text", "text": {"content": "Hello @Trait[holy]"}},
			{"_id": "p2", "name": "Map", "type": "image", "text": {"content": ""}}
		]
	}`)

	j, err := LoadJournal(path)
	if err != nil {
		t.Fatalf("LoadJournal: %v", err)
	}
	if j.ID != "j1" || j.Name != "Adventure Guide" {
		t.Errorf("journal = %+v", j)
	}
	if len(j.Pages) != 2 {
		t.Fatalf("pages = %d, want 2", len(j.Pages))
	}
	if j.Pages[0].Text.Content != "Hello @Trait[holy]" {
		t.Errorf("page content = %q", j.Pages[0].Text.Content)
	}
	if j.Pages[1].Type != "image" {
		t.Errorf("page type = %q, want image", j.Pages[1].Type)
	}
}

func TestLoadJournalErrors(t *testing.T) {
	if _, err := LoadJournal(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("LoadJournal(missing) should fail")
	}

	path := writeFile(t, "bad.json", `{"name": `)
	if _, err := LoadJournal(path); err == nil {
		t.Error("LoadJournal(invalid JSON) should fail")
	}
}

func TestLoadWorld(t *testing.T) {
	path := writeFile(t, "world.json", `{
		"journals": [
			{"_id": "j1", "name": "One", "pages": [{"_id": "p1", "name": "A", "text": {"content": ""}}]},
			{"_id": "j2", "name": "Two", "pages": []}
		],
		"actors": [{"_id": "a1", "name": "Bob", "type": "npc"}],
		"items": [{"_id": "i1", "name": "Sword", "description": "sharp"}]
	}`)

	w, err := LoadWorld(path)
	if err != nil {
		t.Fatalf("LoadWorld: %v", err)
	}
	if len(w.Journals) != 2 || len(w.Actors) != 1 || len(w.Items) != 1 {
		t.Errorf("world = %+v", w)
	}

	if j := w.JournalByID("j2"); j == nil || j.Name != "Two" {
		t.Errorf("JournalByID(j2) = %+v", j)
	}
	if j := w.JournalByID("nope"); j != nil {
		t.Errorf("JournalByID(nope) = %+v, want nil", j)
	}
}

func TestLoadDictionary(t *testing.T) {
	path := writeFile(t, "en.json", `{"PF2E": {"TraitHoly": "Holy", "Level": 3}}`)

	dict, err := LoadDictionary(path)
	if err != nil {
		t.Fatalf("LoadDictionary: %v", err)
	}

	nested, ok := dict["PF2E"].(map[string]any)
	if !ok {
		t.Fatalf("dict[PF2E] = %T, want nested map", dict["PF2E"])
	}
	if nested["TraitHoly"] != "Holy" {
		t.Errorf("TraitHoly = %v", nested["TraitHoly"])
	}
}

func TestLoadDictionaryErrors(t *testing.T) {
	if _, err := LoadDictionary(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("LoadDictionary(missing) should fail")
	}

	path := writeFile(t, "bad.json", `["not", "an", "object"]`)
	if _, err := LoadDictionary(path); err == nil {
		t.Error("LoadDictionary(array) should fail")
	}
}
