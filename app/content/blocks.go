package content

import (
	"strings"
	"unicode/utf8"

	"github.com/codejedi-ai/portfolio-api/app/notion"
)

const excerptLimit = 200

// BlocksToMarkdown concatenates the plain text of paragraph and heading
// blocks with blank-line separators, prefixing headings with the matching
// number of '#' markers. Unsupported block types contribute nothing.
func BlocksToMarkdown(blocks []notion.Block) string {
	var parts []string

	for _, block := range blocks {
		var text string
		switch block.Type {
		case "paragraph":
			if block.Paragraph != nil {
				text = notion.PlainText(block.Paragraph.RichText)
			}
		case "heading_1":
			if block.Heading1 != nil {
				if t := notion.PlainText(block.Heading1.RichText); t != "" {
					text = "# " + t
				}
			}
		case "heading_2":
			if block.Heading2 != nil {
				if t := notion.PlainText(block.Heading2.RichText); t != "" {
					text = "## " + t
				}
			}
		case "heading_3":
			if block.Heading3 != nil {
				if t := notion.PlainText(block.Heading3.RichText); t != "" {
					text = "### " + t
				}
			}
		}

		if text != "" {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, "\n\n")
}

// Excerpt returns roughly the first 200 characters of text, cut back to a
// word boundary, with an ellipsis when anything was dropped.
func Excerpt(text string) string {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) <= excerptLimit {
		return text
	}

	runes := []rune(text)
	cut := string(runes[:excerptLimit])
	if idx := strings.LastIndexByte(cut, ' '); idx > 0 {
		cut = cut[:idx]
	}

	return strings.TrimRight(cut, " ,;:.") + "…"
}
