package content

// Public content model served to the presentation layer. Every record keeps
// the source page identifier even when other fields are defaulted. YAML tags
// exist for the fallback collections shipped with the binary.

type WorkExperienceEntry struct {
	ID         string `json:"id" yaml:"id"`
	Title      string `json:"title" yaml:"title"`
	Company    string `json:"company" yaml:"company"`
	Location   string `json:"location" yaml:"location"`
	StartDate  string `json:"startDate" yaml:"startDate"`
	EndDate    string `json:"endDate" yaml:"endDate"`
	TenureDays int    `json:"tenureDays" yaml:"tenureDays"`
	Link       string `json:"link" yaml:"link"`
	Year       string `json:"year" yaml:"year"`
}

type BlogPost struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Slug        string   `json:"slug" yaml:"slug"`
	Excerpt     string   `json:"excerpt" yaml:"excerpt"`
	Content     string   `json:"content,omitempty" yaml:"content,omitempty"`
	Author      string   `json:"author" yaml:"author"`
	PublishedAt string   `json:"publishedAt" yaml:"publishedAt"`
	UpdatedAt   string   `json:"updatedAt" yaml:"updatedAt"`
	Tags        []string `json:"tags" yaml:"tags"`
	Featured    bool     `json:"featured" yaml:"featured"`
	ReadTime    string   `json:"readTime" yaml:"readTime"`
	Image       string   `json:"image" yaml:"image"`
	Category    string   `json:"category" yaml:"category"`
	Icon        string   `json:"icon" yaml:"icon"`
	IconType    string   `json:"iconType" yaml:"iconType"`
}

type Project struct {
	ID              string   `json:"id" yaml:"id"`
	Title           string   `json:"title" yaml:"title"`
	Description     string   `json:"description" yaml:"description"`
	LongDescription string   `json:"longDescription" yaml:"longDescription"`
	Image           string   `json:"image" yaml:"image"`
	Tags            []string `json:"tags" yaml:"tags"`
	Link            string   `json:"link" yaml:"link"`
	Github          string   `json:"github" yaml:"github"`
	Featured        bool     `json:"featured" yaml:"featured"`
}

type Certificate struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Image string `json:"image" yaml:"image"`
	Alt   string `json:"alt" yaml:"alt"`
	Date  string `json:"date" yaml:"date"`
}

type ImageAsset struct {
	ID             string `json:"id" yaml:"id"`
	Name           string `json:"name" yaml:"name"`
	Type           string `json:"type" yaml:"type"`
	ImageURL       string `json:"imageUrl" yaml:"imageUrl"`
	CreatedTime    string `json:"createdTime" yaml:"createdTime"`
	LastEditedTime string `json:"lastEditedTime" yaml:"lastEditedTime"`
	URL            string `json:"url" yaml:"url"`
}

type SkillCategory struct {
	ID     string   `json:"id" yaml:"id"`
	Title  string   `json:"title" yaml:"title"`
	Icon   string   `json:"icon" yaml:"icon"`
	Skills []string `json:"skills" yaml:"skills"`
}

type ContactChannel struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
	Icon  string `json:"icon" yaml:"icon"`
	Href  string `json:"href" yaml:"href"`
	Color string `json:"color" yaml:"color"`
}
