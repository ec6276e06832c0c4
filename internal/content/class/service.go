package class

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/content/identifier"
	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/media"
	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/platform/apperr"
	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/platform/dberr"
	requestutil "github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/platform/request"
	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/platform/validate"
	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/pkg/slice"
	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/pkg/slug"
	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/pkg/uuidv7"
)

const resourceName = "Class"

type Service struct {
	repo    Repository
	media   media.Store
	cleaner media.Cleaner
	logger  *slog.Logger
}

func NewService(repo Repository, mediaStore media.Store, cleaner media.Cleaner, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		media:   mediaStore,
		cleaner: cleaner,
		logger:  logger,
	}
}

func (service *Service) ListClasses(context context.Context) ([]*Class, error) {
	return service.repo.ListClasses(context)
}

// ListNav returns the narrow projection the public site navigation consumes.
func (service *Service) ListNav(context context.Context) ([]NavItem, error) {
	classes, err := service.repo.ListClasses(context)
	if err != nil {
		return nil, err
	}
	return slice.Map(classes, func(c *Class) NavItem { return c.Nav() }), nil
}

// GetClass serves the dashboard path: full document including internal fields.
func (service *Service) GetClass(context context.Context, id string) (*Class, error) {
	c, err := service.repo.GetClass(context, id)
	if errors.Is(err, dberr.ErrNotFound) {
		return nil, apperr.NotFound(resourceName)
	}
	return c, err
}

// GetClassBySlug serves the public path: internal fields stripped.
func (service *Service) GetClassBySlug(context context.Context, s string) (*PublicView, error) {
	c, err := service.repo.GetClassBySlug(context, s)
	if errors.Is(err, dberr.ErrNotFound) {
		return nil, apperr.NotFound(resourceName)
	}
	if err != nil {
		return nil, err
	}
	return c.Public(), nil
}

func (service *Service) CreateClass(context context.Context, input *Input, files requestutil.Files) (*Class, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	c := &Class{
		ID:            uuidv7.New(),
		Slug:          input.Slug,
		Title:         input.Title,
		Type:          input.Type,
		Instrument:    input.Instrument,
		Hero:          input.Hero,
		Features:      input.Features,
		Curriculum:    input.Curriculum,
		LearningPaths: input.LearningPaths,
		Benefits:      input.Benefits,
		PracticeTips:  input.PracticeTips,
		CTA:           input.CTA,
		SEO:           input.SEO,
	}
	if c.Slug == "" {
		c.Slug = slug.From(c.Title)
	}

	images, err := service.resolveImages(context, files, input, nil)
	if err != nil {
		return nil, err
	}
	c.Images = images
	c.Hero.HeroImage = images.HeroImage

	if err := service.repo.CreateClass(context, c); err != nil {
		return nil, err
	}

	service.logger.Info("class_created",
		slog.String("class_id", c.ID),
		slog.String("slug", c.Slug),
	)
	return c, nil
}

func (service *Service) UpdateClass(context context.Context, rawID string, input *Input, files requestutil.Files) (*Class, error) {
	id, err := identifier.RequireID(rawID, resourceName)
	if err != nil {
		return nil, err
	}

	existing, err := service.repo.GetClass(context, id)
	if errors.Is(err, dberr.ErrNotFound) {
		return nil, apperr.NotFound(resourceName)
	}
	if err != nil {
		return nil, err
	}

	if err := validateInput(input); err != nil {
		return nil, err
	}

	updated := &Class{
		ID:            existing.ID,
		Slug:          input.Slug,
		Title:         input.Title,
		Type:          input.Type,
		Instrument:    input.Instrument,
		Hero:          input.Hero,
		Features:      input.Features,
		Curriculum:    input.Curriculum,
		LearningPaths: input.LearningPaths,
		Benefits:      input.Benefits,
		PracticeTips:  input.PracticeTips,
		CTA:           input.CTA,
		SEO:           input.SEO,
		CreatedAt:     existing.CreatedAt,
	}
	if updated.Slug == "" {
		updated.Slug = existing.Slug
	}

	images, err := service.resolveImages(context, files, input, existing)
	if err != nil {
		return nil, err
	}
	updated.Images = images
	updated.Hero.HeroImage = images.HeroImage

	if err := service.repo.UpdateClass(context, updated); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound(resourceName)
		}
		return nil, err
	}

	service.logger.Info("class_updated", slog.String("class_id", updated.ID))
	return updated, nil
}

func (service *Service) DeleteClass(context context.Context, rawID string) error {
	id, err := identifier.RequireID(rawID, resourceName)
	if err != nil {
		return err
	}

	existing, err := service.repo.GetClass(context, id)
	if errors.Is(err, dberr.ErrNotFound) {
		return apperr.NotFound(resourceName)
	}
	if err != nil {
		return err
	}

	if err := service.repo.DeleteClass(context, id); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound(resourceName)
		}
		return err
	}

	service.cleaner.Enqueue(existing.MediaURLs())

	service.logger.Warn("class_deleted", slog.String("class_id", id))
	return nil
}

func (service *Service) DeleteClasses(context context.Context, rawIDs []string) (int, error) {
	if len(rawIDs) == 0 {
		return 0, apperr.ValidationError("No document ids provided")
	}

	ids := slice.Filter(rawIDs, identifier.IsIDShaped)
	if len(ids) == 0 {
		return 0, nil
	}

	existing, err := service.repo.GetClassesByIDs(context, ids)
	if err != nil {
		return 0, err
	}

	deleted, err := service.repo.DeleteClasses(context, ids)
	if err != nil {
		return 0, err
	}

	var urls []string
	for _, c := range existing {
		urls = append(urls, c.MediaURLs()...)
	}
	service.cleaner.Enqueue(urls)

	service.logger.Warn("classes_bulk_deleted", slog.Int("deleted_count", deleted))
	return deleted, nil
}

// resolveImages fills the three media slots. existing is nil on create;
// the hero banner mirrors the heroImage slot and carries no slot of its own.
func (service *Service) resolveImages(context context.Context, files requestutil.Files, input *Input, existing *Class) (Images, error) {
	var previous Images
	if existing != nil {
		previous = existing.Images
	}

	// The dashboard may submit the hero URL in either images.heroImage or
	// hero.heroImage; images wins when both are set.
	submittedHero := input.Images.HeroImage
	if strings.TrimSpace(submittedHero) == "" {
		submittedHero = input.Hero.HeroImage
	}

	hero, err := media.ResolveSlot(context, service.media, files.Slot(SlotHeroImage), submittedHero, previous.HeroImage)
	if err != nil {
		return Images{}, err
	}
	curriculum, err := media.ResolveSlot(context, service.media, files.Slot(SlotCurriculumImage), input.Images.CurriculumImage, previous.CurriculumImage)
	if err != nil {
		return Images{}, err
	}
	teaching, err := media.ResolveSlot(context, service.media, files.Slot(SlotTeachingImage), input.Images.TeachingImage, previous.TeachingImage)
	if err != nil {
		return Images{}, err
	}

	return Images{
		HeroImage:       hero,
		CurriculumImage: curriculum,
		TeachingImage:   teaching,
	}, nil
}

func validateInput(input *Input) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, 200)
	validator.OneOf(FieldType, input.Type, TypeStudio, TypeAtHome)
	validator.OneOf(FieldInstrument, input.Instrument, InstrumentGuitar, InstrumentPiano, InstrumentSinging)

	if input.Slug != "" {
		validator.Slug(FieldSlug, input.Slug)
	}

	// Card items surface per-item, 1-indexed messages so the dashboard
	// can point at the exact row.
	for i, feature := range input.Features {
		validator.Custom("features", feature.Icon == "", fmt.Sprintf("Feature %d: Icon is required", i+1))
		validator.Custom("features", feature.Title == "", fmt.Sprintf("Feature %d: Title is required", i+1))
	}
	for i, benefit := range input.Benefits {
		validator.Custom("benefits", benefit.Icon == "", fmt.Sprintf("Benefit %d: Icon is required", i+1))
		validator.Custom("benefits", benefit.Title == "", fmt.Sprintf("Benefit %d: Title is required", i+1))
	}

	return validator.Err()
}
