package content

import (
	"context"
	"encoding/json"

	"github.com/codejedi-ai/portfolio-api/app/notion"
)

// Provider is what the API layer and the background refresher need from the
// content service. Satisfied by *Service.
type Provider interface {
	WorkExperience(ctx context.Context) ([]WorkExperienceEntry, error)
	BlogPosts(ctx context.Context, withContent bool) ([]BlogPost, error)
	Projects(ctx context.Context) ([]Project, error)
	Certificates(ctx context.Context) ([]Certificate, error)
	HFCertificates(ctx context.Context) ([]Certificate, error)
	Images(ctx context.Context) ([]ImageAsset, error)
	AboutImages(ctx context.Context) ([]ImageAsset, error)
	Skills(ctx context.Context) ([]SkillCategory, error)
	Database(ctx context.Context, name string) ([]notion.Page, error)
}

var _ Provider = (*Service)(nil)

type PayloadFetcher func(ctx context.Context) ([]byte, error)

// PayloadFetchers returns one fetcher per cache key, each producing the exact
// JSON payload the corresponding endpoint serves. Handlers and the cache
// refresher share these so a refreshed entry is byte-identical to a
// request-driven one.
func PayloadFetchers(p Provider) map[string]PayloadFetcher {
	envelope := func(key string, fetch func(ctx context.Context) (interface{}, error)) PayloadFetcher {
		return func(ctx context.Context) ([]byte, error) {
			value, err := fetch(ctx)
			if err != nil {
				return nil, err
			}
			return json.Marshal(map[string]interface{}{key: value})
		}
	}

	return map[string]PayloadFetcher{
		"work-experience": envelope("workExperience", func(ctx context.Context) (interface{}, error) {
			return p.WorkExperience(ctx)
		}),
		"blog-posts": envelope("posts", func(ctx context.Context) (interface{}, error) {
			return p.BlogPosts(ctx, false)
		}),
		"blog-posts-full": func(ctx context.Context) ([]byte, error) {
			posts, err := p.BlogPosts(ctx, true)
			if err != nil {
				return nil, err
			}
			return json.Marshal(posts)
		},
		"projects": envelope("projects", func(ctx context.Context) (interface{}, error) {
			return p.Projects(ctx)
		}),
		"certificates": envelope("certificates", func(ctx context.Context) (interface{}, error) {
			return p.Certificates(ctx)
		}),
		"hugging-face-certificates": envelope("certificates", func(ctx context.Context) (interface{}, error) {
			return p.HFCertificates(ctx)
		}),
		"images": envelope("images", func(ctx context.Context) (interface{}, error) {
			return p.Images(ctx)
		}),
		"about-images": envelope("images", func(ctx context.Context) (interface{}, error) {
			return p.AboutImages(ctx)
		}),
		"skills": envelope("skills", func(ctx context.Context) (interface{}, error) {
			return p.Skills(ctx)
		}),
	}
}
