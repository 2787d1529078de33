package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetadataLabel(t *testing.T) {
	assert.Equal(t, "Pricing", Metadata{Type: TypePage, Title: "Pricing"}.Label())
	assert.Equal(t, TypeFAQ, Metadata{Type: TypeFAQ}.Label())
	assert.Equal(t, "", Metadata{}.Label())
}

func TestFilterByType(t *testing.T) {
	docs := []Document{
		{PageContent: "a", Metadata: Metadata{Type: TypeServices}},
		{PageContent: "b", Metadata: Metadata{Type: TypeFAQ}},
		{PageContent: "c", Metadata: Metadata{Type: TypeServices}},
	}

	got := FilterByType(docs, TypeServices)
	assert.Len(t, got, 2)
	assert.Equal(t, "a", got[0].PageContent)
	assert.Equal(t, "c", got[1].PageContent)
	assert.Empty(t, FilterByType(docs, TypeAbout))
	assert.Empty(t, FilterByType(nil, TypeAbout))
}

func TestTop(t *testing.T) {
	docs := make([]Document, 5)
	assert.Len(t, Top(docs, 3), 3)
	assert.Len(t, Top(docs[:2], 3), 2)
	assert.Len(t, Top(nil, 3), 0)
	assert.Len(t, Top(docs, -1), 0)
}
