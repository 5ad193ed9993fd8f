package content

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/codejedi-ai/portfolio-api/app/notion"
	"github.com/codejedi-ai/portfolio-api/app/resolver"
)

// ContentUnavailable is substituted for a post body when the nested block
// fetch fails or times out. The rest of the collection is unaffected.
const ContentUnavailable = "Content unavailable"

const blockFetchTimeout = 5 * time.Second

// BlockFetcher is satisfied by notion.Client.
type BlockFetcher interface {
	GetBlockChildren(ctx context.Context, blockID string) ([]notion.Block, error)
}

var (
	blogTitleCandidates = []resolver.Candidate{
		resolver.C("Title", resolver.ShapeTitle),
		resolver.C("title", resolver.ShapeTitle),
		resolver.C("Name", resolver.ShapeTitle),
	}
	blogAuthorCandidates = []resolver.Candidate{
		resolver.C("Author", resolver.ShapeRichText),
		resolver.C("author", resolver.ShapeRichText),
		resolver.C("Author", resolver.ShapeSelect),
	}
	blogPublishedCandidates = []resolver.Candidate{
		resolver.C("Published", resolver.ShapeDate),
		resolver.C("published", resolver.ShapeDate),
		resolver.C("Date", resolver.ShapeDate),
		resolver.C("Published At", resolver.ShapeDate),
	}
	blogTagsCandidates = []resolver.Candidate{
		resolver.C("Tags", resolver.ShapeMultiSelect),
		resolver.C("tags", resolver.ShapeMultiSelect),
	}
	blogFeaturedCandidates = []resolver.Candidate{
		resolver.C("Featured", resolver.ShapeCheckbox),
		resolver.C("featured", resolver.ShapeCheckbox),
	}
	blogCategoryCandidates = []resolver.Candidate{
		resolver.C("Category", resolver.ShapeSelect),
		resolver.C("category", resolver.ShapeSelect),
	}
	blogIconCandidates = []resolver.Candidate{
		resolver.C("Icon", resolver.ShapeRichText),
		resolver.C("icon", resolver.ShapeRichText),
	}
	blogIconTypeCandidates = []resolver.Candidate{
		resolver.C("Icon Type", resolver.ShapeSelect),
		resolver.C("IconType", resolver.ShapeSelect),
	}
	blogImageCandidates = []resolver.Candidate{
		resolver.C("Image", resolver.ShapeFiles),
		resolver.C("image", resolver.ShapeFiles),
		resolver.C("Cover", resolver.ShapeFiles),
	}
	blogExcerptCandidates = []resolver.Candidate{
		resolver.C("Excerpt", resolver.ShapeRichText),
		resolver.C("excerpt", resolver.ShapeRichText),
		resolver.C("Description", resolver.ShapeRichText),
	}
)

// MapBlogPosts normalizes blog pages, newest first. Bodies are fetched
// concurrently with a per-record timeout; a failed fetch degrades that single
// record to a placeholder body and a property-based excerpt. When withContent
// is false the markdown body is dropped after deriving the excerpt.
func MapBlogPosts(ctx context.Context, pages []notion.Page, fetcher BlockFetcher, withContent bool) []BlogPost {
	posts := make([]BlogPost, 0, len(pages))
	for i := range pages {
		page := &pages[i]
		if page.ID == "" {
			continue
		}
		posts = append(posts, mapBlogMetadata(page))
	}

	bodies := fetchBodies(ctx, posts, fetcher)

	for i := range posts {
		body := bodies[i]

		if body == ContentUnavailable || body == "" {
			if posts[i].Excerpt == "" && body != "" {
				posts[i].Excerpt = body
			}
		} else {
			posts[i].Excerpt = Excerpt(body)
		}

		posts[i].ReadTime = readTime(body)
		if withContent {
			posts[i].Content = body
		}
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishedAt > posts[j].PublishedAt
	})

	return posts
}

func mapBlogMetadata(page *notion.Page) BlogPost {
	title := resolver.String(page, blogTitleCandidates, "Untitled")

	slug := Slugify(title)
	if slug == "" {
		slug = page.ID
	}

	published, _ := resolver.DateRange(page, blogPublishedCandidates)
	if published == "" {
		published = page.CreatedTime
	}

	image := page.CoverURL()
	if image == "" {
		image = resolver.FileURL(page, blogImageCandidates, "")
	}

	tags := resolver.Strings(page, blogTagsCandidates)
	if tags == nil {
		tags = []string{}
	}

	return BlogPost{
		ID:          page.ID,
		Title:       title,
		Slug:        slug,
		Excerpt:     resolver.String(page, blogExcerptCandidates, ""),
		Author:      resolver.String(page, blogAuthorCandidates, ""),
		PublishedAt: published,
		UpdatedAt:   page.LastEditedTime,
		Tags:        tags,
		Featured:    resolver.Bool(page, blogFeaturedCandidates, false),
		Image:       image,
		Category:    resolver.String(page, blogCategoryCandidates, ""),
		Icon:        resolver.String(page, blogIconCandidates, ""),
		IconType:    resolver.String(page, blogIconTypeCandidates, "emoji"),
	}
}

// fetchBodies fans out one block fetch per post. Records are independent, so
// a slow or failing fetch only affects its own slot.
func fetchBodies(ctx context.Context, posts []BlogPost, fetcher BlockFetcher) []string {
	bodies := make([]string, len(posts))
	if fetcher == nil {
		return bodies
	}

	var wg sync.WaitGroup
	for i := range posts {
		wg.Add(1)
		go func(idx int, pageID string) {
			defer wg.Done()

			fetchCtx, cancel := context.WithTimeout(ctx, blockFetchTimeout)
			defer cancel()

			blocks, err := fetcher.GetBlockChildren(fetchCtx, pageID)
			if err != nil {
				slog.Warn("Failed to fetch post body", "page_id", pageID, "error", err)
				bodies[idx] = ContentUnavailable
				return
			}
			bodies[idx] = BlocksToMarkdown(blocks)
		}(i, posts[i].ID)
	}
	wg.Wait()

	return bodies
}

func readTime(body string) string {
	words := len(strings.Fields(body))
	minutes := (words + 199) / 200
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}
