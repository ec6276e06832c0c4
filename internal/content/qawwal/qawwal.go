package qawwal

import (
	"time"

	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/pkg/slice"
)

// Stats is the counter block shown on a qawwal's profile page.
type Stats struct {
	Songs      int    `json:"songs"`
	Awards     int    `json:"awards"`
	Experience string `json:"experience"`
}

// Qawwal is a qawwali artist profile.
type Qawwal struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Bio         string    `json:"bio"`
	BirthDate   string    `json:"birthDate"`
	Birthplace  string    `json:"birthplace"`
	CareerStart string    `json:"careerStart"`
	Stats       Stats     `json:"stats"`
	Image       string    `json:"image"`
	Gallery     []string  `json:"gallery"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MediaURLs returns the deduplicated owned media set of the document.
func (q *Qawwal) MediaURLs() []string {
	return slice.Unique(slice.NonEmpty(append([]string{q.Image}, q.Gallery...)))
}

// Input is the JSON payload submitted in the multipart "data" field. A nil
// Gallery means no replacement list was submitted and the stored gallery
// stays the append base.
type Input struct {
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Bio         string   `json:"bio"`
	BirthDate   string   `json:"birthDate"`
	Birthplace  string   `json:"birthplace"`
	CareerStart string   `json:"careerStart"`
	Stats       Stats    `json:"stats"`
	Image       string   `json:"image"`
	Gallery     []string `json:"gallery"`
}

const (
	SlotMainImage = "mainImage"
	SlotGallery   = "gallery"
)

const (
	FieldSlug  = "slug"
	FieldName  = "name"
	FieldBio   = "bio"
	FieldImage = "image"
)
