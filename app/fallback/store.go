// Package fallback holds the static collections served when the external
// content source is unreachable. Defaults ship embedded in the binary; a
// deployment can override any collection by dropping a YAML file with the
// same name into the configured fallback directory.
package fallback

import (
	"embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/codejedi-ai/portfolio-api/app/content"
)

//go:embed data/*.yml
var dataFS embed.FS

type Store struct {
	work           []content.WorkExperienceEntry
	projects       []content.Project
	skills         []content.SkillCategory
	certificates   []content.Certificate
	hfCertificates []content.Certificate
}

// NewStore loads the embedded defaults, then applies overrides from
// overrideDir when it is set and exists.
func NewStore(overrideDir string) (*Store, error) {
	s := &Store{}

	if err := s.loadEmbedded(); err != nil {
		return nil, err
	}

	if overrideDir != "" {
		if err := s.loadOverrides(overrideDir); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *Store) loadEmbedded() error {
	files := map[string]interface{}{
		"data/work_experience.yml": &s.work,
		"data/projects.yml":        &s.projects,
		"data/skills.yml":          &s.skills,
		"data/certificates.yml":    &s.certificates,
		"data/hf_certificates.yml": &s.hfCertificates,
	}

	for name, target := range files {
		data, err := dataFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("failed to read embedded fallback %s: %w", name, err)
		}
		if err := yaml.Unmarshal(data, target); err != nil {
			return fmt.Errorf("failed to parse embedded fallback %s: %w", name, err)
		}
	}

	return nil
}

func (s *Store) loadOverrides(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}

	files := map[string]interface{}{
		"work_experience.yml": &s.work,
		"projects.yml":        &s.projects,
		"skills.yml":          &s.skills,
		"certificates.yml":    &s.certificates,
		"hf_certificates.yml": &s.hfCertificates,
	}

	for name, target := range files {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("failed to read fallback override %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, target); err != nil {
			return fmt.Errorf("failed to parse fallback override %s: %w", path, err)
		}
		slog.Info("Fallback override loaded", "file", path)
	}

	return nil
}

func (s *Store) WorkExperience() []content.WorkExperienceEntry {
	return append([]content.WorkExperienceEntry(nil), s.work...)
}

func (s *Store) Projects() []content.Project {
	return append([]content.Project(nil), s.projects...)
}

func (s *Store) Skills() []content.SkillCategory {
	return append([]content.SkillCategory(nil), s.skills...)
}

func (s *Store) Certificates() []content.Certificate {
	return append([]content.Certificate(nil), s.certificates...)
}

func (s *Store) HFCertificates() []content.Certificate {
	return append([]content.Certificate(nil), s.hfCertificates...)
}

// BlogPosts and Images intentionally fall back to empty collections: stale
// or invented posts are worse than an empty list.
func (s *Store) BlogPosts() []content.BlogPost {
	return []content.BlogPost{}
}

func (s *Store) Images() []content.ImageAsset {
	return []content.ImageAsset{}
}
