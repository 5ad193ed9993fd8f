package content

import (
	"context"
	"fmt"

	"github.com/codejedi-ai/portfolio-api/app/notion"
)

// SourceClient is the slice of the content-source client the service uses.
// Satisfied by notion.Client.
type SourceClient interface {
	QueryDatabase(ctx context.Context, databaseID string, query *notion.Query) ([]notion.Page, error)
	GetBlockChildren(ctx context.Context, blockID string) ([]notion.Block, error)
}

// Databases maps content types to their source database identifiers.
type Databases struct {
	Work           string
	Blog           string
	Projects       string
	Certificates   string
	HFCertificates string
	Images         string
	AboutImages    string
	Skills         string
	Contacts       string
}

// ByName resolves the logical database names accepted by the generic proxy
// endpoint.
func (d Databases) ByName(name string) (string, bool) {
	mapping := map[string]string{
		"work-experience":           d.Work,
		"blog":                      d.Blog,
		"projects":                  d.Projects,
		"certificates":              d.Certificates,
		"hugging-face-certificates": d.HFCertificates,
		"images":                    d.Images,
		"about-images":              d.AboutImages,
		"skills":                    d.Skills,
	}

	id, ok := mapping[name]
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// Service composes source queries with the per-type normalizers.
type Service struct {
	client    SourceClient
	databases Databases
}

func NewService(client SourceClient, databases Databases) *Service {
	return &Service{client: client, databases: databases}
}

func (s *Service) query(ctx context.Context, databaseID string) ([]notion.Page, error) {
	if databaseID == "" {
		return nil, fmt.Errorf("database not configured")
	}
	return s.client.QueryDatabase(ctx, databaseID, nil)
}

func (s *Service) WorkExperience(ctx context.Context) ([]WorkExperienceEntry, error) {
	pages, err := s.query(ctx, s.databases.Work)
	if err != nil {
		return nil, err
	}
	return MapWorkExperience(pages), nil
}

func (s *Service) BlogPosts(ctx context.Context, withContent bool) ([]BlogPost, error) {
	pages, err := s.query(ctx, s.databases.Blog)
	if err != nil {
		return nil, err
	}
	return MapBlogPosts(ctx, pages, s.client, withContent), nil
}

func (s *Service) Projects(ctx context.Context) ([]Project, error) {
	pages, err := s.query(ctx, s.databases.Projects)
	if err != nil {
		return nil, err
	}
	return MapProjects(ctx, pages, s.client), nil
}

func (s *Service) Certificates(ctx context.Context) ([]Certificate, error) {
	pages, err := s.query(ctx, s.databases.Certificates)
	if err != nil {
		return nil, err
	}
	return MapCertificates(pages), nil
}

func (s *Service) HFCertificates(ctx context.Context) ([]Certificate, error) {
	pages, err := s.query(ctx, s.databases.HFCertificates)
	if err != nil {
		return nil, err
	}
	return MapCertificates(pages), nil
}

func (s *Service) Images(ctx context.Context) ([]ImageAsset, error) {
	pages, err := s.query(ctx, s.databases.Images)
	if err != nil {
		return nil, err
	}
	return MapImages(pages), nil
}

func (s *Service) AboutImages(ctx context.Context) ([]ImageAsset, error) {
	pages, err := s.query(ctx, s.databases.AboutImages)
	if err != nil {
		return nil, err
	}
	return MapAboutImages(pages), nil
}

func (s *Service) Skills(ctx context.Context) ([]SkillCategory, error) {
	pages, err := s.query(ctx, s.databases.Skills)
	if err != nil {
		return nil, err
	}
	return MapSkills(pages), nil
}

// Database is the generic pass-through used by the admin dashboard: raw pages
// for a logical database name, no normalization.
func (s *Service) Database(ctx context.Context, name string) ([]notion.Page, error) {
	id, ok := s.databases.ByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown database name: %s", name)
	}
	return s.client.QueryDatabase(ctx, id, nil)
}
