package content

import (
	"context"
	"fmt"
	"sync"

	"github.com/codejedi-ai/portfolio-api/app/notion"
)

// Test fixtures shared by the normalizer tests.

func propTitle(text string) notion.Property {
	return notion.Property{Type: "title", Title: []notion.RichText{{PlainText: text}}}
}

func propRichText(text string) notion.Property {
	return notion.Property{Type: "rich_text", RichText: []notion.RichText{{PlainText: text}}}
}

func propDate(start, end string) notion.Property {
	return notion.Property{Type: "date", Date: &notion.DateValue{Start: start, End: end}}
}

func propCheckbox(value bool) notion.Property {
	return notion.Property{Type: "checkbox", Checkbox: &value}
}

func propSelect(name string) notion.Property {
	return notion.Property{Type: "select", Select: &notion.SelectValue{Name: name}}
}

func propMultiSelect(names ...string) notion.Property {
	options := make([]notion.SelectValue, 0, len(names))
	for _, name := range names {
		options = append(options, notion.SelectValue{Name: name})
	}
	return notion.Property{Type: "multi_select", MultiSelect: options}
}

func propFiles(url string) notion.Property {
	return notion.Property{Type: "files", Files: []notion.File{{External: &notion.FileLink{URL: url}}}}
}

func cover(url string) *notion.File {
	return &notion.File{External: &notion.FileLink{URL: url}}
}

// fakeBlockFetcher returns canned blocks per page ID and records calls.
type fakeBlockFetcher struct {
	mu     sync.Mutex
	blocks map[string][]notion.Block
	errors map[string]error
	calls  int
}

func (f *fakeBlockFetcher) GetBlockChildren(ctx context.Context, blockID string) ([]notion.Block, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if err, ok := f.errors[blockID]; ok {
		return nil, err
	}
	if blocks, ok := f.blocks[blockID]; ok {
		return blocks, nil
	}
	return nil, fmt.Errorf("no blocks for %s", blockID)
}
