package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/codejedi-ai/portfolio-api/app/cache"
	"github.com/codejedi-ai/portfolio-api/app/cfg"
	"github.com/codejedi-ai/portfolio-api/app/content"
	"github.com/codejedi-ai/portfolio-api/app/fallback"
	"github.com/codejedi-ai/portfolio-api/app/notion"
)

// fakeProvider serves canned collections and counts calls. Setting failAll
// simulates an unreachable content source.
type fakeProvider struct {
	mu      sync.Mutex
	calls   map[string]int
	failAll bool

	work      []content.WorkExperienceEntry
	blogPosts []content.BlogPost
	projects  []content.Project
	certs     []content.Certificate
	hfCerts   []content.Certificate
	images    []content.ImageAsset
	skills    []content.SkillCategory
	pages     []notion.Page
}

func (f *fakeProvider) record(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[name]++
	if f.failAll {
		return fmt.Errorf("source unreachable")
	}
	return nil
}

func (f *fakeProvider) callCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeProvider) WorkExperience(ctx context.Context) ([]content.WorkExperienceEntry, error) {
	if err := f.record("work"); err != nil {
		return nil, err
	}
	return f.work, nil
}

func (f *fakeProvider) BlogPosts(ctx context.Context, withContent bool) ([]content.BlogPost, error) {
	if err := f.record("blog"); err != nil {
		return nil, err
	}
	if withContent {
		return f.blogPosts, nil
	}
	stripped := make([]content.BlogPost, len(f.blogPosts))
	copy(stripped, f.blogPosts)
	for i := range stripped {
		stripped[i].Content = ""
	}
	return stripped, nil
}

func (f *fakeProvider) Projects(ctx context.Context) ([]content.Project, error) {
	if err := f.record("projects"); err != nil {
		return nil, err
	}
	return f.projects, nil
}

func (f *fakeProvider) Certificates(ctx context.Context) ([]content.Certificate, error) {
	if err := f.record("certs"); err != nil {
		return nil, err
	}
	return f.certs, nil
}

func (f *fakeProvider) HFCertificates(ctx context.Context) ([]content.Certificate, error) {
	if err := f.record("hf-certs"); err != nil {
		return nil, err
	}
	return f.hfCerts, nil
}

func (f *fakeProvider) Images(ctx context.Context) ([]content.ImageAsset, error) {
	if err := f.record("images"); err != nil {
		return nil, err
	}
	return f.images, nil
}

func (f *fakeProvider) AboutImages(ctx context.Context) ([]content.ImageAsset, error) {
	if err := f.record("about-images"); err != nil {
		return nil, err
	}
	return f.images, nil
}

func (f *fakeProvider) Skills(ctx context.Context) ([]content.SkillCategory, error) {
	if err := f.record("skills"); err != nil {
		return nil, err
	}
	return f.skills, nil
}

func (f *fakeProvider) Database(ctx context.Context, name string) ([]notion.Page, error) {
	if err := f.record("database"); err != nil {
		return nil, err
	}
	if name != "projects" {
		return nil, fmt.Errorf("unknown database name: %s", name)
	}
	return f.pages, nil
}

// fakeCreator records the write-path call.
type fakeCreator struct {
	databaseID string
	properties map[string]notion.Property
	err        error
}

func (f *fakeCreator) CreatePage(ctx context.Context, databaseID string, properties map[string]notion.Property) (*notion.Page, error) {
	f.databaseID = databaseID
	f.properties = properties
	if f.err != nil {
		return nil, f.err
	}
	return &notion.Page{ID: "created-page-1"}, nil
}

func testConfig() *cfg.Cfg {
	return &cfg.Cfg{
		ContactsDatabaseID: "contacts-db",
		CacheTTL:           300,
		Version:            "test",
	}
}

func newTestServer(t *testing.T, provider *fakeProvider, creator *fakeCreator, policy *CORSPolicy) *gin.Engine {
	return newTestServerWithConfig(t, testConfig(), provider, creator, policy)
}

func newTestServerWithConfig(t *testing.T, appCfg *cfg.Cfg, provider *fakeProvider, creator *fakeCreator, policy *CORSPolicy) *gin.Engine {
	t.Helper()

	cfg.Set(appCfg)

	fallbackStore, err := fallback.NewStore("")
	if err != nil {
		t.Fatalf("Failed to load fallback store: %v", err)
	}

	handler := NewHandler(provider, cache.New(cache.NewMemoryStore(), false), fallbackStore, creator)
	if policy == nil {
		policy = NewCORSPolicy(nil, true)
	}
	return NewServer(handler, policy)
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
