package document

import "fmt"

// Document types produced by retrieval
const (
	TypeServices = "services"
	TypeFAQ      = "faq"
	TypeAbout    = "about"
	TypeContact  = "contact"
	TypePage     = "page"
)

// Document is a retrieved content snippet
type Document struct {
	PageContent string   `json:"pageContent"`
	Metadata    Metadata `json:"metadata"`
}

// Metadata describes where a document came from
type Metadata struct {
	Type   string `json:"type,omitempty"`
	Title  string `json:"title,omitempty"`
	Slug   string `json:"slug,omitempty"`
	Locale string `json:"locale,omitempty"`
}

// Label returns the title, or the type when the document has no title
func (m Metadata) Label() string {
	if m.Title != "" {
		return m.Title
	}
	return m.Type
}

// FilterByType returns the documents whose metadata type equals typ
func FilterByType(docs []Document, typ string) []Document {
	var out []Document
	for _, d := range docs {
		if d.Metadata.Type == typ {
			out = append(out, d)
		}
	}
	return out
}

// Top returns at most n leading documents
func Top(docs []Document, n int) []Document {
	if n < 0 {
		n = 0
	}
	if len(docs) <= n {
		return docs
	}
	return docs[:n]
}

func (d Document) String() string {
	return fmt.Sprintf("[%s] %s", d.Metadata.Type, d.Metadata.Label())
}
