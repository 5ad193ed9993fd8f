package content

import (
	"strings"

	"github.com/codejedi-ai/portfolio-api/app/notion"
	"github.com/codejedi-ai/portfolio-api/app/resolver"
)

const skillGroupSize = 3

// defaultSkillIcon is applied when a category names no icon or an unknown
// one; the presentation layer maps icon names through a closed table.
const defaultSkillIcon = "tag"

var knownSkillIcons = map[string]bool{
	"code":     true,
	"server":   true,
	"database": true,
	"cloud":    true,
	"wrench":   true,
	"brain":    true,
	"globe":    true,
	"tag":      true,
}

var (
	skillTitleCandidates = []resolver.Candidate{
		resolver.C("Title", resolver.ShapeTitle),
		resolver.C("title", resolver.ShapeTitle),
		resolver.C("Name", resolver.ShapeTitle),
		resolver.C("Category", resolver.ShapeTitle),
	}
	skillIconCandidates = []resolver.Candidate{
		resolver.C("Icon", resolver.ShapeRichText),
		resolver.C("icon", resolver.ShapeRichText),
		resolver.C("Icon", resolver.ShapeSelect),
	}
	skillItemsCandidates = []resolver.Candidate{
		resolver.C("Skills", resolver.ShapeMultiSelect),
		resolver.C("skills", resolver.ShapeMultiSelect),
		resolver.C("Items", resolver.ShapeMultiSelect),
	}
	skillDisplayCandidates = []resolver.Candidate{
		resolver.C("Display", resolver.ShapeCheckbox),
		resolver.C("display", resolver.ShapeCheckbox),
		resolver.C("Show", resolver.ShapeCheckbox),
	}
)

// MapSkills normalizes skill category pages. Only categories with a truthy
// display flag are emitted; raw skill names are clustered into comma-joined
// display strings, with every input skill appearing exactly once.
func MapSkills(pages []notion.Page) []SkillCategory {
	categories := make([]SkillCategory, 0, len(pages))

	for i := range pages {
		page := &pages[i]
		if page.ID == "" {
			continue
		}

		if !resolver.Bool(page, skillDisplayCandidates, false) {
			continue
		}

		title := resolver.String(page, skillTitleCandidates, "Skills")

		icon := strings.ToLower(resolver.String(page, skillIconCandidates, ""))
		if !knownSkillIcons[icon] {
			icon = defaultSkillIcon
		}

		categories = append(categories, SkillCategory{
			ID:     page.ID,
			Title:  title,
			Icon:   icon,
			Skills: groupSkills(title, resolver.Strings(page, skillItemsCandidates)),
		})
	}

	return categories
}

// groupSkills clusters raw skill names into display strings. Language-style
// categories collapse into a single group; everything else is chunked in
// input order into groups of three (the tail may be shorter).
func groupSkills(category string, skills []string) []string {
	if len(skills) == 0 {
		return []string{}
	}

	if isLanguageCategory(category) {
		return []string{strings.Join(skills, ", ")}
	}

	groups := make([]string, 0, (len(skills)+skillGroupSize-1)/skillGroupSize)
	for start := 0; start < len(skills); start += skillGroupSize {
		end := start + skillGroupSize
		if end > len(skills) {
			end = len(skills)
		}
		groups = append(groups, strings.Join(skills[start:end], ", "))
	}

	return groups
}

func isLanguageCategory(category string) bool {
	return strings.Contains(strings.ToLower(category), "language")
}
