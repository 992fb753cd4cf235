// Package models defines the record types persisted in the collection
// files and provides the core types used throughout the application.
package models

// BlogPost represents a single blog article. Drafts and published posts
// live in the same collection, differentiated by the Published flag.
type BlogPost struct {
	ID        int      `json:"id"`
	Title     string   `json:"title"`
	Excerpt   string   `json:"excerpt"`
	Content   string   `json:"content"`
	Author    string   `json:"author"`
	Date      string   `json:"date"`
	ReadTime  int      `json:"readTime"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
	Image     string   `json:"image"`
	Views     int      `json:"views"`
	Likes     int      `json:"likes"`
	Featured  bool     `json:"featured"`
	Published bool     `json:"published"`
}

// IsPublished reports whether the post is visible on the public site.
func (b *BlogPost) IsPublished() bool {
	return b.Published
}
