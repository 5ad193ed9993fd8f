package content

import (
	"sort"

	"github.com/codejedi-ai/portfolio-api/app/notion"
	"github.com/codejedi-ai/portfolio-api/app/resolver"
)

// Candidate lists document the property names the site has depended on
// historically; first present wins.
var (
	workTitleCandidates = []resolver.Candidate{
		resolver.C("Title", resolver.ShapeTitle),
		resolver.C("title", resolver.ShapeTitle),
		resolver.C("Name", resolver.ShapeTitle),
		resolver.C("Job Title", resolver.ShapeTitle),
		resolver.C("Job Title", resolver.ShapeRichText),
	}
	workCompanyCandidates = []resolver.Candidate{
		resolver.C("Company", resolver.ShapeRichText),
		resolver.C("company", resolver.ShapeRichText),
		resolver.C("Company", resolver.ShapeSelect),
		resolver.C("Organization", resolver.ShapeRichText),
	}
	workLocationCandidates = []resolver.Candidate{
		resolver.C("Location", resolver.ShapeRichText),
		resolver.C("location", resolver.ShapeRichText),
		resolver.C("Location", resolver.ShapeSelect),
	}
	workDateCandidates = []resolver.Candidate{
		resolver.C("Date", resolver.ShapeDate),
		resolver.C("date", resolver.ShapeDate),
		resolver.C("Period", resolver.ShapeDate),
		resolver.C("Start Date", resolver.ShapeDate),
	}
	workLinkCandidates = []resolver.Candidate{
		resolver.C("Link", resolver.ShapeURL),
		resolver.C("link", resolver.ShapeURL),
		resolver.C("URL", resolver.ShapeURL),
		resolver.C("Website", resolver.ShapeURL),
	}
)

// MapWorkExperience normalizes work history pages, newest first. A record
// without an end date is treated as a single-day entry starting and ending on
// its start date.
func MapWorkExperience(pages []notion.Page) []WorkExperienceEntry {
	entries := make([]WorkExperienceEntry, 0, len(pages))

	for i := range pages {
		page := &pages[i]
		if page.ID == "" {
			continue
		}

		start, end := resolver.DateRange(page, workDateCandidates)
		if end == "" {
			end = start
		}

		entries = append(entries, WorkExperienceEntry{
			ID:         page.ID,
			Title:      resolver.String(page, workTitleCandidates, "Untitled Role"),
			Company:    resolver.String(page, workCompanyCandidates, ""),
			Location:   resolver.String(page, workLocationCandidates, ""),
			StartDate:  start,
			EndDate:    end,
			TenureDays: TenureDays(start, end),
			Link:       resolver.String(page, workLinkCandidates, ""),
			Year:       Year(start),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].StartDate > entries[j].StartDate
	})

	return entries
}
