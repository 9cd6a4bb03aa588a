// Package richtext converts structured rich-text bodies from the content
// store into plain text.
package richtext

import (
	"strings"

	"github.com/livingword/site/internal/model"
)

// PlainText flattens a rich-text body into plain text: the text runs of
// every paragraph block are concatenated, paragraphs are separated by a
// blank line, and every other node type (images, embeds, code blocks) is
// discarded.
func PlainText(blocks []model.Block) string {
	var paragraphs []string

	for _, block := range blocks {
		if block.Type != "block" {
			continue
		}
		var sb strings.Builder
		for _, span := range block.Children {
			sb.WriteString(span.Text)
		}
		paragraphs = append(paragraphs, sb.String())
	}

	return strings.Join(paragraphs, "\n\n")
}
