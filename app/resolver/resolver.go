// Package resolver extracts logical fields from raw content-source pages.
//
// Property names are not stable across deployments (the same logical field
// has been observed as "Title", "title", "Name" and "Job Title"), so every
// lookup goes through an ordered candidate list: the first property that is
// present and matches the expected shape wins, otherwise a caller-supplied
// default is returned. Resolution never fails; only normalizers decide
// whether an empty value matters.
package resolver

import (
	"github.com/codejedi-ai/portfolio-api/app/notion"
)

type Shape string

const (
	ShapeTitle       Shape = "title"
	ShapeRichText    Shape = "rich_text"
	ShapeSelect      Shape = "select"
	ShapeMultiSelect Shape = "multi_select"
	ShapeCheckbox    Shape = "checkbox"
	ShapeURL         Shape = "url"
	ShapeDate        Shape = "date"
	ShapeFiles       Shape = "files"
	ShapeNumber      Shape = "number"
	ShapeEmail       Shape = "email"
	ShapePhone       Shape = "phone_number"
)

// Candidate names one property to try and the shape it must have.
type Candidate struct {
	Name  string
	Shape Shape
}

// C is shorthand for building candidate lists inline.
func C(name string, shape Shape) Candidate {
	return Candidate{Name: name, Shape: shape}
}

func lookup(page *notion.Page, candidate Candidate) (notion.Property, bool) {
	if page == nil || page.Properties == nil {
		return notion.Property{}, false
	}
	prop, ok := page.Properties[candidate.Name]
	if !ok || prop.Type != string(candidate.Shape) {
		return notion.Property{}, false
	}
	return prop, true
}

// String resolves a text-like field. Title and rich text runs are joined into
// one string; select values resolve to the option name; url/email/phone
// resolve to their raw value. Empty resolved values do not count as matches,
// so later candidates still get a chance.
func String(page *notion.Page, candidates []Candidate, def string) string {
	for _, candidate := range candidates {
		prop, ok := lookup(page, candidate)
		if !ok {
			continue
		}

		var value string
		switch candidate.Shape {
		case ShapeTitle, ShapeRichText:
			value = prop.Text()
		case ShapeSelect:
			if prop.Select != nil {
				value = prop.Select.Name
			}
		case ShapeURL:
			if prop.URL != nil {
				value = *prop.URL
			}
		case ShapeEmail:
			if prop.Email != nil {
				value = *prop.Email
			}
		case ShapePhone:
			if prop.PhoneNumber != nil {
				value = *prop.PhoneNumber
			}
		case ShapeDate:
			if prop.Date != nil {
				value = prop.Date.Start
			}
		}

		if value != "" {
			return value
		}
	}
	return def
}

// Bool resolves a checkbox field.
func Bool(page *notion.Page, candidates []Candidate, def bool) bool {
	for _, candidate := range candidates {
		prop, ok := lookup(page, candidate)
		if !ok {
			continue
		}
		if candidate.Shape == ShapeCheckbox && prop.Checkbox != nil {
			return *prop.Checkbox
		}
	}
	return def
}

// Number resolves a numeric field.
func Number(page *notion.Page, candidates []Candidate, def float64) float64 {
	for _, candidate := range candidates {
		prop, ok := lookup(page, candidate)
		if !ok {
			continue
		}
		if candidate.Shape == ShapeNumber && prop.Number != nil {
			return *prop.Number
		}
	}
	return def
}

// Strings resolves a multi-select field to its option names.
func Strings(page *notion.Page, candidates []Candidate) []string {
	for _, candidate := range candidates {
		prop, ok := lookup(page, candidate)
		if !ok || candidate.Shape != ShapeMultiSelect {
			continue
		}
		if len(prop.MultiSelect) == 0 {
			continue
		}
		names := make([]string, 0, len(prop.MultiSelect))
		for _, option := range prop.MultiSelect {
			names = append(names, option.Name)
		}
		return names
	}
	return nil
}

// DateRange resolves a date field to its start and end values. End is empty
// when the source has no range end.
func DateRange(page *notion.Page, candidates []Candidate) (string, string) {
	for _, candidate := range candidates {
		prop, ok := lookup(page, candidate)
		if !ok || candidate.Shape != ShapeDate {
			continue
		}
		if prop.Date != nil && prop.Date.Start != "" {
			return prop.Date.Start, prop.Date.End
		}
	}
	return "", ""
}

// FileURL resolves the first file of a files-type property to its URL.
func FileURL(page *notion.Page, candidates []Candidate, def string) string {
	for _, candidate := range candidates {
		prop, ok := lookup(page, candidate)
		if !ok || candidate.Shape != ShapeFiles {
			continue
		}
		for _, file := range prop.Files {
			if url := file.ResolveURL(); url != "" {
				return url
			}
		}
	}
	return def
}
