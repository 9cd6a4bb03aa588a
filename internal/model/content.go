package model

// Document is a structured content document as returned by the content
// store: a title plus a rich-text body made of typed blocks.
type Document struct {
	ID    string  `json:"_id"`
	Type  string  `json:"_type"`
	Title string  `json:"title"`
	Slug  string  `json:"slug"`
	Body  []Block `json:"body"`
}

// Block is one node of a rich-text body. Only blocks with Type "block"
// carry text content; other types (images, embeds, etc.) are opaque here.
type Block struct {
	Type     string `json:"_type"`
	Style    string `json:"style"`
	Children []Span `json:"children"`
}

// Span is a text run inside a block.
type Span struct {
	Type string `json:"_type"`
	Text string `json:"text"`
}
