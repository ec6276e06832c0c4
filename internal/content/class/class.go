package class

import (
	"time"

	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/pkg/slice"
)

// Class types and instruments accepted by the dashboard.
const (
	TypeStudio = "studio"
	TypeAtHome = "at-home"

	InstrumentGuitar  = "guitar"
	InstrumentPiano   = "piano"
	InstrumentSinging = "singing"
)

// Hero is the landing banner block of a class page. HeroImage mirrors
// Images.HeroImage; both are kept so the page template can read either.
type Hero struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	HeroImage   string `json:"heroImage"`
}

// Feature is one selling-point card. Icon names a dashboard icon key.
type Feature struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CurriculumItem is one stage of the course outline.
type CurriculumItem struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Topics      []string `json:"topics"`
}

// LearningPath is one progression track offered within the class.
type LearningPath struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
}

// Benefit is one outcome card, structurally a Feature.
type Benefit struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// PracticeTips is the guidance block shown under the curriculum.
type PracticeTips struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tips        []string `json:"tips"`
}

// CTA is the closing call-to-action block.
type CTA struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ButtonText  string `json:"buttonText"`
	ButtonLink  string `json:"buttonLink"`
}

// Images holds the page's three media slots.
type Images struct {
	HeroImage       string `json:"heroImage"`
	CurriculumImage string `json:"curriculumImage"`
	TeachingImage   string `json:"teachingImage"`
}

// SEO is the optional metadata override block.
type SEO struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// Class is a music class page document.
type Class struct {
	ID            string           `json:"id"`
	Slug          string           `json:"slug"`
	Title         string           `json:"title"`
	Type          string           `json:"type"`
	Instrument    string           `json:"instrument"`
	Hero          Hero             `json:"hero"`
	Features      []Feature        `json:"features"`
	Curriculum    []CurriculumItem `json:"curriculum"`
	LearningPaths []LearningPath   `json:"learningPaths"`
	Benefits      []Benefit        `json:"benefits"`
	PracticeTips  PracticeTips     `json:"practiceTips"`
	CTA           CTA              `json:"cta"`
	Images        Images           `json:"images"`
	SEO           *SEO             `json:"seo,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// MediaURLs returns the deduplicated owned media set. Hero.HeroImage mirrors
// Images.HeroImage, so deduplication keeps the set accurate.
func (c *Class) MediaURLs() []string {
	return slice.Unique(slice.NonEmpty([]string{
		c.Hero.HeroImage,
		c.Images.HeroImage,
		c.Images.CurriculumImage,
		c.Images.TeachingImage,
	}))
}

// PublicView is the slug-lookup projection: the full page content with
// internal fields (id, timestamps) stripped.
type PublicView struct {
	Slug          string           `json:"slug"`
	Title         string           `json:"title"`
	Type          string           `json:"type"`
	Instrument    string           `json:"instrument"`
	Hero          Hero             `json:"hero"`
	Features      []Feature        `json:"features"`
	Curriculum    []CurriculumItem `json:"curriculum"`
	LearningPaths []LearningPath   `json:"learningPaths"`
	Benefits      []Benefit        `json:"benefits"`
	PracticeTips  PracticeTips     `json:"practiceTips"`
	CTA           CTA              `json:"cta"`
	Images        Images           `json:"images"`
	SEO           *SEO             `json:"seo,omitempty"`
}

// Public strips the internal fields for slug-addressed reads.
func (c *Class) Public() *PublicView {
	return &PublicView{
		Slug:          c.Slug,
		Title:         c.Title,
		Type:          c.Type,
		Instrument:    c.Instrument,
		Hero:          c.Hero,
		Features:      c.Features,
		Curriculum:    c.Curriculum,
		LearningPaths: c.LearningPaths,
		Benefits:      c.Benefits,
		PracticeTips:  c.PracticeTips,
		CTA:           c.CTA,
		Images:        c.Images,
		SEO:           c.SEO,
	}
}

// NavItem is the narrow projection served to the public site's navigation.
type NavItem struct {
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	Type       string `json:"type"`
	Instrument string `json:"instrument"`
}

// Nav projects a class to its navigation entry.
func (c *Class) Nav() NavItem {
	return NavItem{
		Slug:       c.Slug,
		Title:      c.Title,
		Type:       c.Type,
		Instrument: c.Instrument,
	}
}

// Input is the JSON payload submitted in the multipart "data" field.
type Input struct {
	Slug          string           `json:"slug"`
	Title         string           `json:"title"`
	Type          string           `json:"type"`
	Instrument    string           `json:"instrument"`
	Hero          Hero             `json:"hero"`
	Features      []Feature        `json:"features"`
	Curriculum    []CurriculumItem `json:"curriculum"`
	LearningPaths []LearningPath   `json:"learningPaths"`
	Benefits      []Benefit        `json:"benefits"`
	PracticeTips  PracticeTips     `json:"practiceTips"`
	CTA           CTA              `json:"cta"`
	Images        Images           `json:"images"`
	SEO           *SEO             `json:"seo,omitempty"`
}

// Multipart file slot names used by the dashboard forms. The hero banner
// has no slot of its own; it follows SlotHeroImage.
const (
	SlotHeroImage       = "heroImage"
	SlotCurriculumImage = "curriculumImage"
	SlotTeachingImage   = "teachingImage"
)

const (
	FieldSlug       = "slug"
	FieldTitle      = "title"
	FieldType       = "type"
	FieldInstrument = "instrument"
)
