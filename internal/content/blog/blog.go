package blog

import (
	"time"

	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/pkg/slice"
)

// Metadata holds presentation hints shown on the blog listing page.
type Metadata struct {
	ReadTime string   `json:"readTime"`
	Tags     []string `json:"tags"`
}

// Post is a blog article. Content is stored as sanitized HTML.
type Post struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Date      string    `json:"date"`
	Author    string    `json:"author"`
	Category  string    `json:"category"`
	Excerpt   string    `json:"excerpt"`
	Metadata  Metadata  `json:"metadata"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MediaURLs returns the owned media set; a post carries a single cover image.
func (p *Post) MediaURLs() []string {
	return slice.NonEmpty([]string{p.Image})
}

// Input is the JSON payload submitted in the multipart "data" field.
type Input struct {
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Date     string   `json:"date"`
	Author   string   `json:"author"`
	Category string   `json:"category"`
	Excerpt  string   `json:"excerpt"`
	Metadata Metadata `json:"metadata"`
	Image    string   `json:"image"`
}

const SlotMainImage = "mainImage"

const (
	FieldSlug    = "slug"
	FieldTitle   = "title"
	FieldContent = "content"
	FieldAuthor  = "author"
	FieldImage   = "image"
)
