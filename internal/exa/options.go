package exa

// SearchOptions is an open set of request options. Recognized keys shape
// the payload defaults and the contents block; anything else is passed
// through to the wire unchanged, so fields added by the service after this
// client was written keep working.
type SearchOptions map[string]any

// Search types accepted by the 'type' option.
const (
	SearchTypeNeural  = "neural"
	SearchTypeKeyword = "keyword"
	SearchTypeAuto    = "auto"
)

// Content categories accepted by the 'category' option.
const (
	CategoryCompany         = "company"
	CategoryResearchPaper   = "research_paper"
	CategoryNewsArticle     = "news_article"
	CategoryPdf             = "pdf"
	CategoryGithub          = "github"
	CategoryTweet           = "tweet"
	CategoryPersonalSite    = "personal_site"
	CategoryLinkedinProfile = "linkedin_profile"
	CategoryFinancialReport = "financial_report"
)

// Crawl freshness modes accepted by the 'livecrawl' option.
const (
	LivecrawlNever     = "never"
	LivecrawlFallback  = "fallback"
	LivecrawlAlways    = "always"
	LivecrawlPreferred = "preferred"
)
