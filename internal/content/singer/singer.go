package singer

import (
	"time"

	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/pkg/slice"
)

// Stats is the fixed-shape counter block shown on a singer's profile page.
type Stats struct {
	Albums     int    `json:"albums"`
	Songs      int    `json:"songs"`
	Awards     int    `json:"awards"`
	Experience string `json:"experience"`
}

// Singer is a playback/pop artist profile.
type Singer struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Genre       string    `json:"genre"`
	Bio         string    `json:"bio"`
	BirthDate   string    `json:"birthDate"`
	Birthplace  string    `json:"birthplace"`
	CareerStart string    `json:"careerStart"`
	Stats       Stats     `json:"stats"`
	Albums      []string  `json:"albums"`
	Image       string    `json:"image"`
	Gallery     []string  `json:"gallery"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MediaURLs returns the deduplicated owned media set: every non-empty media
// field of the document. The document is the only record of this set, so it
// must be harvested before deletion.
func (s *Singer) MediaURLs() []string {
	return slice.Unique(slice.NonEmpty(append([]string{s.Image}, s.Gallery...)))
}

// Input is the JSON payload submitted in the multipart "data" field on
// create and update. Gallery is nil when the caller did not submit a
// replacement list, which keeps the stored gallery as the append base.
type Input struct {
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Genre       string   `json:"genre"`
	Bio         string   `json:"bio"`
	BirthDate   string   `json:"birthDate"`
	Birthplace  string   `json:"birthplace"`
	CareerStart string   `json:"careerStart"`
	Stats       Stats    `json:"stats"`
	Albums      []string `json:"albums"`
	Image       string   `json:"image"`
	Gallery     []string `json:"gallery"`
}

// Multipart file slot names used by the dashboard forms.
const (
	SlotMainImage = "mainImage"
	SlotGallery   = "gallery"
)

const (
	FieldSlug  = "slug"
	FieldName  = "name"
	FieldGenre = "genre"
	FieldBio   = "bio"
	FieldImage = "image"
)
