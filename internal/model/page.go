package model

// Page is an admin-authored custom page. The slug doubles as the routing key;
// slug collisions are not checked.
type Page struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Slug         string        `json:"slug"`
	Content      string        `json:"content"`
	Status       ContentStatus `json:"status"`
	ShowInHeader bool          `json:"showInHeader"`
	ShowInFooter bool          `json:"showInFooter"`
	Date         string        `json:"date"`
}
