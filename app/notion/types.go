package notion

import "strings"

// Page is a single record returned by a database query. Property names are
// deployment-specific, so Properties stays a map and extraction goes through
// the resolver package.
type Page struct {
	ID             string              `json:"id"`
	CreatedTime    string              `json:"created_time"`
	LastEditedTime string              `json:"last_edited_time"`
	URL            string              `json:"url"`
	Cover          *File               `json:"cover"`
	Properties     map[string]Property `json:"properties"`
}

// Property carries every shape the API can return; Type selects which payload
// is populated.
type Property struct {
	ID          string        `json:"id,omitempty"`
	Type        string        `json:"type"`
	Title       []RichText    `json:"title,omitempty"`
	RichText    []RichText    `json:"rich_text,omitempty"`
	Select      *SelectValue  `json:"select,omitempty"`
	MultiSelect []SelectValue `json:"multi_select,omitempty"`
	Checkbox    *bool         `json:"checkbox,omitempty"`
	URL         *string       `json:"url,omitempty"`
	Date        *DateValue    `json:"date,omitempty"`
	Files       []File        `json:"files,omitempty"`
	Number      *float64      `json:"number,omitempty"`
	Email       *string       `json:"email,omitempty"`
	PhoneNumber *string       `json:"phone_number,omitempty"`
}

type RichText struct {
	Type      string       `json:"type,omitempty"`
	PlainText string       `json:"plain_text,omitempty"`
	Text      *TextContent `json:"text,omitempty"`
}

type TextContent struct {
	Content string `json:"content"`
}

type SelectValue struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type DateValue struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// File covers both externally hosted and Notion-hosted files.
type File struct {
	Type     string    `json:"type,omitempty"`
	Name     string    `json:"name,omitempty"`
	External *FileLink `json:"external,omitempty"`
	File     *FileLink `json:"file,omitempty"`
}

type FileLink struct {
	URL string `json:"url"`
}

// Block is a unit of page body content. Only paragraph and heading blocks
// carry text the site renders; everything else is passed over.
type Block struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Paragraph *RichTextBlock `json:"paragraph,omitempty"`
	Heading1  *RichTextBlock `json:"heading_1,omitempty"`
	Heading2  *RichTextBlock `json:"heading_2,omitempty"`
	Heading3  *RichTextBlock `json:"heading_3,omitempty"`
}

type RichTextBlock struct {
	RichText []RichText `json:"rich_text"`
}

// PlainText joins the runs of a rich text list into a single string.
func PlainText(runs []RichText) string {
	if len(runs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, run := range runs {
		if run.PlainText != "" {
			b.WriteString(run.PlainText)
		} else if run.Text != nil {
			b.WriteString(run.Text.Content)
		}
	}
	return b.String()
}

// ResolveURL returns the file URL regardless of hosting type.
func (f *File) ResolveURL() string {
	if f == nil {
		return ""
	}
	if f.External != nil && f.External.URL != "" {
		return f.External.URL
	}
	if f.File != nil {
		return f.File.URL
	}
	return ""
}

// CoverURL returns the page-level cover image URL, or empty when the page has
// no cover.
func (p *Page) CoverURL() string {
	return p.Cover.ResolveURL()
}

// Text returns the plain value of a rich-text-like property shape.
func (p Property) Text() string {
	switch p.Type {
	case "title":
		return PlainText(p.Title)
	case "rich_text":
		return PlainText(p.RichText)
	}
	return ""
}
