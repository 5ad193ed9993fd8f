package content

import (
	"log/slog"
	"sort"

	"github.com/codejedi-ai/portfolio-api/app/notion"
	"github.com/codejedi-ai/portfolio-api/app/resolver"
)

var (
	certificateNameCandidates = []resolver.Candidate{
		resolver.C("Name", resolver.ShapeTitle),
		resolver.C("name", resolver.ShapeTitle),
		resolver.C("Title", resolver.ShapeTitle),
	}
	certificateImageCandidates = []resolver.Candidate{
		resolver.C("Image", resolver.ShapeFiles),
		resolver.C("image", resolver.ShapeFiles),
		resolver.C("Certificate", resolver.ShapeFiles),
	}
	certificateAltCandidates = []resolver.Candidate{
		resolver.C("Alt", resolver.ShapeRichText),
		resolver.C("alt", resolver.ShapeRichText),
	}
	certificateDateCandidates = []resolver.Candidate{
		resolver.C("Date", resolver.ShapeDate),
		resolver.C("date", resolver.ShapeDate),
		resolver.C("Issued", resolver.ShapeDate),
	}
)

// MapCertificates normalizes certificate pages in chronological display
// order. A malformed record is defaulted field by field and still emitted;
// only a record with no identifier is skipped (and logged).
func MapCertificates(pages []notion.Page) []Certificate {
	certificates := make([]Certificate, 0, len(pages))

	for i := range pages {
		page := &pages[i]
		if page.ID == "" {
			slog.Warn("Skipping certificate record without identifier")
			continue
		}

		name := resolver.String(page, certificateNameCandidates, "Certificate")

		// Page cover wins over the explicit image property.
		image := page.CoverURL()
		if image == "" {
			image = resolver.FileURL(page, certificateImageCandidates, "/placeholder.svg")
		}

		alt := resolver.String(page, certificateAltCandidates, "")
		if alt == "" {
			alt = name
		}

		date, _ := resolver.DateRange(page, certificateDateCandidates)

		certificates = append(certificates, Certificate{
			ID:    page.ID,
			Name:  name,
			Image: image,
			Alt:   alt,
			Date:  FormatHuman(date),
		})
	}

	// Oldest first: certificates render as a chronological journey.
	dates := make(map[string]string, len(pages))
	for i := range pages {
		start, _ := resolver.DateRange(&pages[i], certificateDateCandidates)
		dates[pages[i].ID] = start
	}
	sort.SliceStable(certificates, func(i, j int) bool {
		return dates[certificates[i].ID] < dates[certificates[j].ID]
	})

	return certificates
}
