package model

// Sermon is the row subset returned for verse-by-verse search matches.
type Sermon struct {
	ID      string `db:"id" json:"id"`
	Title   string `db:"title" json:"title"`
	Passage string `db:"passage" json:"passage"`
	Book    string `db:"book" json:"book"`
	Slug    string `db:"slug" json:"slug"`
}

type Topic struct {
	ID    string `db:"id" json:"id"`
	Title string `db:"title" json:"title"`
	Slug  string `db:"slug" json:"slug"`
}

type Resource struct {
	ID          string `db:"id" json:"id"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
	Slug        string `db:"slug" json:"slug"`
}

// Question is a single entry from the Ask section (Q&A).
type Question struct {
	ID       string `db:"id" json:"id"`
	Question string `db:"question" json:"question"`
	Slug     string `db:"slug" json:"slug"`
}

type Conference struct {
	ID          string `db:"id" json:"id"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
	Slug        string `db:"slug" json:"slug"`
}

// SearchResults is the unified envelope returned by the search endpoint.
// All five slots are always present; a category with no matches is an
// empty slice, never null.
type SearchResults struct {
	VerseByVerse []Sermon     `json:"verseByVerse"`
	Topics       []Topic      `json:"topics"`
	Resources    []Resource   `json:"resources"`
	Ask          []Question   `json:"ask"`
	Conferences  []Conference `json:"conferences"`
}

// EmptySearchResults returns an envelope with all slots initialized to
// empty slices so they serialize as [] rather than null.
func EmptySearchResults() *SearchResults {
	return &SearchResults{
		VerseByVerse: []Sermon{},
		Topics:       []Topic{},
		Resources:    []Resource{},
		Ask:          []Question{},
		Conferences:  []Conference{},
	}
}
