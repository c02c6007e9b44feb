package views

// SiteConfig holds site-wide settings populated from configuration.
// Every handler passes this to templates so nothing is hardcoded.
type SiteConfig struct {
	Name        string // owner name shown in the header and footer
	URL         string // canonical URL
	Description string
	GitHubURL   string
	LinkedInURL string
	Email       string
	ContentPath string // endpoint page.js fetches the content document from
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "profile"
	Image       string
}
