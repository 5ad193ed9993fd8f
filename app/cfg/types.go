package cfg

type Cfg struct {
	// External content source configuration
	NotionToken   string
	NotionBaseURL string

	// Per-content-type database identifiers
	WorkDatabaseID         string
	BlogDatabaseID         string
	ProjectsDatabaseID     string
	CertificatesDatabaseID string
	HFCertsDatabaseID      string
	ImagesDatabaseID       string
	AboutImagesDatabaseID  string
	SkillsDatabaseID       string
	ContactsDatabaseID     string

	// Application configuration
	Port              string
	CacheDBPath       string
	CacheTTL          int
	CacheDisabled     bool
	FallbackDir       string
	WorkerCount       int
	SchedulerInterval int

	// CORS configuration
	CORSAllowedOrigins []string
	CORSAllowAll       bool

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
