package retrieval

import (
	"strings"
)

// DefaultChunkSize is the target chunk length in bytes
const DefaultChunkSize = 600

// Chunk represents a piece of page content
type Chunk struct {
	ID      int
	Content string
	Section string
}

// ChunkDocument splits markdown into paragraph-aligned chunks.
// A "#" heading starts a new section and closes the chunk in progress,
// so every chunk belongs to exactly one section.
func ChunkDocument(markdown string, maxChunkSize int) []Chunk {
	if maxChunkSize <= 0 {
		maxChunkSize = DefaultChunkSize
	}

	var chunks []Chunk
	var current strings.Builder
	var section string

	flush := func() {
		if current.Len() == 0 {
			return
		}
		chunks = append(chunks, Chunk{
			ID:      len(chunks),
			Content: current.String(),
			Section: section,
		})
		current.Reset()
	}

	// Split by double newlines (paragraphs/sections)
	for _, para := range strings.Split(markdown, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		if strings.HasPrefix(para, "#") {
			flush()
			lines := strings.SplitN(para, "\n", 2)
			section = strings.TrimSpace(strings.TrimLeft(lines[0], "# "))
			if len(lines) == 1 {
				continue
			}
			para = strings.TrimSpace(lines[1])
		}

		if current.Len() > 0 && current.Len()+len(para)+2 > maxChunkSize {
			flush()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(para)
	}
	flush()

	return chunks
}
