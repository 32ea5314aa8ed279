// Package document defines the Go types for deserializing Foundry-style
// game data JSON files: journals with rich-text pages, actors, items, and
// the world bundle that groups them.
package document

// Journal is a journal entry: a named collection of pages.
type Journal struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Pages []Page `json:"pages"`
}

// Page is a single journal page. Rich text lives in Text.Content and may
// embed inline directives.
type Page struct {
	ID    string    `json:"_id"`
	Name  string    `json:"name"`
	Type  string    `json:"type,omitempty"` // "text", "image", ...
	Title PageTitle `json:"title,omitempty"`
	Text  PageText  `json:"text"`
}

// PageTitle controls heading display for a page.
type PageTitle struct {
	Show  bool `json:"show,omitempty"`
	Level int  `json:"level,omitempty"`
}

// PageText holds a page's rich-text content.
type PageText struct {
	Content string `json:"content"`
}

// Actor is an addressable actor document. Cross-references resolve actors
// by name, so Name is the lookup key.
type Actor struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Type  string `json:"type,omitempty"`
	Items []Item `json:"items,omitempty"`
}

// Item is an addressable item document, either standalone or embedded in
// an actor.
type Item struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// World bundles every addressable document of a session: all journals,
// actors, and standalone items. It is the source of the cross-journal
// reference graph.
type World struct {
	Journals []Journal `json:"journals"`
	Actors   []Actor   `json:"actors,omitempty"`
	Items    []Item    `json:"items,omitempty"`
}

// JournalByID returns the journal with the given id, or nil.
func (w *World) JournalByID(id string) *Journal {
	for i := range w.Journals {
		if w.Journals[i].ID == id {
			return &w.Journals[i]
		}
	}
	return nil
}
