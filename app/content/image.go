package content

import (
	"sort"

	"github.com/codejedi-ai/portfolio-api/app/notion"
	"github.com/codejedi-ai/portfolio-api/app/resolver"
)

var (
	imageNameCandidates = []resolver.Candidate{
		resolver.C("Name", resolver.ShapeTitle),
		resolver.C("name", resolver.ShapeTitle),
		resolver.C("Title", resolver.ShapeTitle),
	}
	imageTypeCandidates = []resolver.Candidate{
		resolver.C("Type", resolver.ShapeSelect),
		resolver.C("type", resolver.ShapeSelect),
	}
	imageFileCandidates = []resolver.Candidate{
		resolver.C("Image", resolver.ShapeFiles),
		resolver.C("image", resolver.ShapeFiles),
		resolver.C("File", resolver.ShapeFiles),
	}
	imageURLCandidates = []resolver.Candidate{
		resolver.C("URL", resolver.ShapeURL),
		resolver.C("url", resolver.ShapeURL),
		resolver.C("Link", resolver.ShapeURL),
	}
)

// MapImages normalizes image asset pages, newest first. Image URL resolution
// order: page cover, then a files-type property, then placeholder.
func MapImages(pages []notion.Page) []ImageAsset {
	images := mapImageAssets(pages)
	sort.SliceStable(images, func(i, j int) bool {
		return images[i].CreatedTime > images[j].CreatedTime
	})
	return images
}

// MapAboutImages is the chronological variant used by the about section.
func MapAboutImages(pages []notion.Page) []ImageAsset {
	images := mapImageAssets(pages)
	sort.SliceStable(images, func(i, j int) bool {
		return images[i].CreatedTime < images[j].CreatedTime
	})
	return images
}

func mapImageAssets(pages []notion.Page) []ImageAsset {
	images := make([]ImageAsset, 0, len(pages))

	for i := range pages {
		page := &pages[i]
		if page.ID == "" {
			continue
		}

		imageURL := page.CoverURL()
		if imageURL == "" {
			imageURL = resolver.FileURL(page, imageFileCandidates, "/placeholder.svg")
		}

		images = append(images, ImageAsset{
			ID:             page.ID,
			Name:           resolver.String(page, imageNameCandidates, "Untitled"),
			Type:           resolver.String(page, imageTypeCandidates, "general"),
			ImageURL:       imageURL,
			CreatedTime:    page.CreatedTime,
			LastEditedTime: page.LastEditedTime,
			URL:            resolver.String(page, imageURLCandidates, page.URL),
		})
	}

	return images
}
