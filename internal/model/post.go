package model

// ContentStatus is shared by blog posts and custom pages.
type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusPublished ContentStatus = "published"
)

// Post is a blog entry. Content is stored HTML.
type Post struct {
	ID      string        `json:"id"`
	Title   string        `json:"title"`
	Excerpt string        `json:"excerpt"`
	Content string        `json:"content"`
	Status  ContentStatus `json:"status"`
	Views   int           `json:"views"`
	Date    string        `json:"date"`
	Author  string        `json:"author"`
}
