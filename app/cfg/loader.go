package cfg

import (
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	if Version != "" {
		return Version
	}
	return "unknown"
}

type rawCfg struct {
	// External content source configuration
	NotionToken   string `long:"notion-token" env:"NOTION_TOKEN" description:"Notion integration secret (required)" required:"true"`
	NotionBaseURL string `long:"notion-base-url" env:"NOTION_BASE_URL" default:"https://api.notion.com" description:"Base URL for the Notion API"`

	// Per-content-type database identifiers
	WorkDatabaseID         string `long:"work-db" env:"NOTION_WORK_DATABASE_ID" description:"Work experience database ID"`
	BlogDatabaseID         string `long:"blog-db" env:"NOTION_BLOG_DATABASE_ID" description:"Blog posts database ID"`
	ProjectsDatabaseID     string `long:"projects-db" env:"NOTION_PROJECTS_DATABASE_ID" description:"Projects database ID"`
	CertificatesDatabaseID string `long:"certificates-db" env:"NOTION_CERTIFICATES_DATABASE_ID" description:"Certificates database ID"`
	HFCertsDatabaseID      string `long:"hf-certificates-db" env:"NOTION_HF_CERTIFICATES_DATABASE_ID" description:"Hugging Face certificates database ID"`
	ImagesDatabaseID       string `long:"images-db" env:"NOTION_IMAGES_DATABASE_ID" description:"Images database ID"`
	AboutImagesDatabaseID  string `long:"about-images-db" env:"NOTION_ABOUT_IMAGES_DATABASE_ID" description:"About section images database ID"`
	SkillsDatabaseID       string `long:"skills-db" env:"NOTION_SKILLS_DATABASE_ID" description:"Skills database ID"`
	ContactsDatabaseID     string `long:"contacts-db" env:"NOTION_CONTACTS_DATABASE_ID" description:"Contact submissions database ID"`

	// Application configuration
	Port              string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	CacheDBPath       string `long:"cache-db-path" env:"CACHE_DB_PATH" default:"./data/cache.db" description:"Path to the cache database file"`
	CacheTTL          int    `long:"cache-ttl" env:"CACHE_TTL" default:"300" description:"Default cache TTL in seconds"`
	CacheDisabled     bool   `long:"cache-disabled" env:"CACHE_DISABLED" description:"Disable response caching"`
	FallbackDir       string `long:"fallback-dir" env:"FALLBACK_DIR" description:"Directory with fallback data overrides (optional)"`
	WorkerCount       int    `long:"worker-count" env:"WORKER_COUNT" default:"3" description:"Number of background workers for cache refresh"`
	SchedulerInterval int    `long:"scheduler-interval" env:"SCHEDULER_INTERVAL" default:"60" description:"Scheduler interval in seconds"`

	// CORS configuration
	CORSAllowedOrigins []string `long:"cors-origin" env:"CORS_ALLOWED_ORIGINS" env-delim:"," description:"Allowed CORS origins (repeatable)"`
	CORSAllowAll       bool     `long:"cors-allow-all" env:"CORS_ALLOW_ALL" description:"Allow any origin"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"Portfolio API/1.0" description:"User agent string for HTTP requests"`
	Timezone  string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		NotionToken:            raw.NotionToken,
		NotionBaseURL:          raw.NotionBaseURL,
		WorkDatabaseID:         raw.WorkDatabaseID,
		BlogDatabaseID:         raw.BlogDatabaseID,
		ProjectsDatabaseID:     raw.ProjectsDatabaseID,
		CertificatesDatabaseID: raw.CertificatesDatabaseID,
		HFCertsDatabaseID:      raw.HFCertsDatabaseID,
		ImagesDatabaseID:       raw.ImagesDatabaseID,
		AboutImagesDatabaseID:  raw.AboutImagesDatabaseID,
		SkillsDatabaseID:       raw.SkillsDatabaseID,
		ContactsDatabaseID:     raw.ContactsDatabaseID,
		Port:                   raw.Port,
		CacheDBPath:            raw.CacheDBPath,
		CacheTTL:               raw.CacheTTL,
		CacheDisabled:          raw.CacheDisabled,
		FallbackDir:            raw.FallbackDir,
		WorkerCount:            raw.WorkerCount,
		SchedulerInterval:      raw.SchedulerInterval,
		CORSAllowedOrigins:     raw.CORSAllowedOrigins,
		CORSAllowAll:           raw.CORSAllowAll,
		UserAgent:              raw.UserAgent,
		Timezone:               raw.Timezone,
		Debug:                  raw.Debug,
		Version:                GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

// Set replaces the global configuration. Intended for tests.
func Set(cfg *Cfg) {
	globalCfg = cfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		loc, err := time.LoadLocation(timezone)
		if err != nil {
			return err
		}
		time.Local = loc
	}
	return nil
}
