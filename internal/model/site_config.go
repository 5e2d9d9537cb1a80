package model

// SiteConfig is the singleton site-wide configuration record. It is read
// merged over its defaults so fields added later are backfilled, and always
// written back as a whole object.
type SiteConfig struct {
	SiteName        string `json:"siteName"`
	SiteDescription string `json:"siteDescription"`
	ContactEmail    string `json:"contactEmail"`
	ContactPhone    string `json:"contactPhone"`
	Address         string `json:"address"`
	SEOTitle        string `json:"seoTitle"`
	SEOKeywords     string `json:"seoKeywords"`
	SEODescription  string `json:"seoDescription"`
	AIAPIKey        string `json:"aiApiKey,omitempty"`
}

// Public returns a copy safe to expose on the public site.
func (c SiteConfig) Public() SiteConfig {
	c.AIAPIKey = ""
	return c
}
