package retrieval

import (
	"strings"
	"testing"
)

func TestChunkDocument(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		maxChunkSize int
		wantChunks   int
	}{
		{
			name:         "empty content",
			content:      "",
			maxChunkSize: 1000,
			wantChunks:   0,
		},
		{
			name:         "single paragraph",
			content:      "This is a single paragraph of text.",
			maxChunkSize: 1000,
			wantChunks:   1,
		},
		{
			name:         "multiple paragraphs within limit",
			content:      "First paragraph.\n\nSecond paragraph.\n\nThird paragraph.",
			maxChunkSize: 1000,
			wantChunks:   1,
		},
		{
			name:         "paragraphs exceed limit",
			content:      strings.Repeat("word ", 100) + "\n\n" + strings.Repeat("word ", 100),
			maxChunkSize: 200,
			wantChunks:   2,
		},
		{
			name:         "headers split sections",
			content:      "# Header 1\nContent under header 1.\n\n# Header 2\nContent under header 2.",
			maxChunkSize: 1000,
			wantChunks:   2,
		},
		{
			name:         "header on its own line",
			content:      "# Title\n\nBody paragraph.",
			maxChunkSize: 1000,
			wantChunks:   1,
		},
		{
			name:         "default size",
			content:      "Some text.",
			maxChunkSize: 0,
			wantChunks:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := ChunkDocument(tt.content, tt.maxChunkSize)
			if len(chunks) != tt.wantChunks {
				t.Errorf("ChunkDocument() returned %d chunks, want %d", len(chunks), tt.wantChunks)
			}
		})
	}
}

func TestChunkDocumentSections(t *testing.T) {
	chunks := ChunkDocument("Intro text.\n\n# Cookies\n\nWe use cookies.\n\nOnly necessary ones.\n\n# Retention\nKept for two years.", 1000)

	want := []Chunk{
		{ID: 0, Content: "Intro text.", Section: ""},
		{ID: 1, Content: "We use cookies.\n\nOnly necessary ones.", Section: "Cookies"},
		{ID: 2, Content: "Kept for two years.", Section: "Retention"},
	}
	if len(chunks) != len(want) {
		t.Fatalf("got %d chunks, want %d", len(chunks), len(want))
	}
	for i := range want {
		if chunks[i] != want[i] {
			t.Errorf("chunk %d = %+v, want %+v", i, chunks[i], want[i])
		}
	}
}
