package content

import (
	"testing"

	"github.com/codejedi-ai/portfolio-api/app/notion"
)

func imagePage(id, name, created string) notion.Page {
	return notion.Page{
		ID:          id,
		CreatedTime: created,
		Properties: map[string]notion.Property{
			"Name":  propTitle(name),
			"Image": propFiles("https://example.com/" + id + ".png"),
		},
	}
}

func TestMapImagesNewestFirst(t *testing.T) {
	pages := []notion.Page{
		imagePage("a", "First", "2023-01-01T00:00:00.000Z"),
		imagePage("b", "Second", "2024-06-01T00:00:00.000Z"),
	}

	images := MapImages(pages)
	if images[0].ID != "b" || images[1].ID != "a" {
		t.Errorf("Expected newest first, got %s then %s", images[0].ID, images[1].ID)
	}
}

func TestMapAboutImagesOldestFirst(t *testing.T) {
	pages := []notion.Page{
		imagePage("b", "Second", "2024-06-01T00:00:00.000Z"),
		imagePage("a", "First", "2023-01-01T00:00:00.000Z"),
	}

	images := MapAboutImages(pages)
	if images[0].ID != "a" || images[1].ID != "b" {
		t.Errorf("Expected oldest first, got %s then %s", images[0].ID, images[1].ID)
	}
}

func TestMapImagesResolutionOrder(t *testing.T) {
	pages := []notion.Page{
		{
			ID:    "covered",
			Cover: cover("https://example.com/cover.png"),
			Properties: map[string]notion.Property{
				"Image": propFiles("https://example.com/file.png"),
			},
		},
		{
			ID: "filed",
			Properties: map[string]notion.Property{
				"Image": propFiles("https://example.com/file.png"),
			},
		},
		{
			ID:         "bare",
			Properties: map[string]notion.Property{},
		},
	}

	images := mapImageAssets(pages)
	if images[0].ImageURL != "https://example.com/cover.png" {
		t.Errorf("Expected cover URL, got %q", images[0].ImageURL)
	}
	if images[1].ImageURL != "https://example.com/file.png" {
		t.Errorf("Expected files property URL, got %q", images[1].ImageURL)
	}
	if images[2].ImageURL != "/placeholder.svg" {
		t.Errorf("Expected placeholder, got %q", images[2].ImageURL)
	}
}

func TestMapImagesDefaults(t *testing.T) {
	pages := []notion.Page{
		{ID: "x", URL: "https://notion.so/x", Properties: map[string]notion.Property{}},
	}

	images := mapImageAssets(pages)
	if images[0].Name != "Untitled" {
		t.Errorf("Expected default name, got %q", images[0].Name)
	}
	if images[0].Type != "general" {
		t.Errorf("Expected default type, got %q", images[0].Type)
	}
	if images[0].URL != "https://notion.so/x" {
		t.Errorf("Expected page URL fallback, got %q", images[0].URL)
	}
}
