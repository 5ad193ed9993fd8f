package content

import (
	"context"
	"log/slog"
	"sort"

	"github.com/codejedi-ai/portfolio-api/app/notion"
	"github.com/codejedi-ai/portfolio-api/app/resolver"
)

var (
	projectTitleCandidates = []resolver.Candidate{
		resolver.C("Title", resolver.ShapeTitle),
		resolver.C("title", resolver.ShapeTitle),
		resolver.C("Name", resolver.ShapeTitle),
	}
	projectDescriptionCandidates = []resolver.Candidate{
		resolver.C("Description", resolver.ShapeRichText),
		resolver.C("description", resolver.ShapeRichText),
		resolver.C("Summary", resolver.ShapeRichText),
	}
	projectImageCandidates = []resolver.Candidate{
		resolver.C("Image", resolver.ShapeFiles),
		resolver.C("image", resolver.ShapeFiles),
	}
	projectTagsCandidates = []resolver.Candidate{
		resolver.C("Tags", resolver.ShapeMultiSelect),
		resolver.C("tags", resolver.ShapeMultiSelect),
		resolver.C("Tech", resolver.ShapeMultiSelect),
	}
	projectLinkCandidates = []resolver.Candidate{
		resolver.C("Link", resolver.ShapeURL),
		resolver.C("link", resolver.ShapeURL),
		resolver.C("Demo", resolver.ShapeURL),
	}
	projectGithubCandidates = []resolver.Candidate{
		resolver.C("Github", resolver.ShapeURL),
		resolver.C("GitHub", resolver.ShapeURL),
		resolver.C("github", resolver.ShapeURL),
		resolver.C("Repository", resolver.ShapeURL),
	}
	projectFeaturedCandidates = []resolver.Candidate{
		resolver.C("Featured", resolver.ShapeCheckbox),
		resolver.C("featured", resolver.ShapeCheckbox),
	}
	projectDateCandidates = []resolver.Candidate{
		resolver.C("Date", resolver.ShapeDate),
		resolver.C("date", resolver.ShapeDate),
	}
)

// MapProjects normalizes project pages, newest first. The long description
// comes from the project's page body; when the body is empty or unreachable
// it falls back to the short description.
func MapProjects(ctx context.Context, pages []notion.Page, fetcher BlockFetcher) []Project {
	projects := make([]Project, 0, len(pages))

	for i := range pages {
		page := &pages[i]
		if page.ID == "" {
			continue
		}

		description := resolver.String(page, projectDescriptionCandidates, "")

		image := page.CoverURL()
		if image == "" {
			image = resolver.FileURL(page, projectImageCandidates, "")
		}

		tags := resolver.Strings(page, projectTagsCandidates)
		if tags == nil {
			tags = []string{}
		}

		projects = append(projects, Project{
			ID:              page.ID,
			Title:           resolver.String(page, projectTitleCandidates, "Untitled Project"),
			Description:     description,
			LongDescription: longDescription(ctx, page.ID, description, fetcher),
			Image:           image,
			Tags:            tags,
			Link:            resolver.String(page, projectLinkCandidates, ""),
			Github:          resolver.String(page, projectGithubCandidates, ""),
			Featured:        resolver.Bool(page, projectFeaturedCandidates, false),
		})
	}

	// Newest first by date property when present; pages without one keep
	// their source order at the end.
	dates := make(map[string]string, len(pages))
	for i := range pages {
		start, _ := resolver.DateRange(&pages[i], projectDateCandidates)
		dates[pages[i].ID] = start
	}
	sort.SliceStable(projects, func(i, j int) bool {
		return dates[projects[i].ID] > dates[projects[j].ID]
	})

	return projects
}

func longDescription(ctx context.Context, pageID, fallback string, fetcher BlockFetcher) string {
	if fetcher == nil {
		return fallback
	}

	fetchCtx, cancel := context.WithTimeout(ctx, blockFetchTimeout)
	defer cancel()

	blocks, err := fetcher.GetBlockChildren(fetchCtx, pageID)
	if err != nil {
		slog.Warn("Failed to fetch project body", "page_id", pageID, "error", err)
		return fallback
	}

	body := BlocksToMarkdown(blocks)
	if body == "" {
		return fallback
	}
	return body
}
