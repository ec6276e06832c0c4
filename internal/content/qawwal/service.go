package qawwal

import (
	"context"
	"errors"
	"log/slog"

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

const resourceName = "Qawwal"

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

func (service *Service) ListQawwals(context context.Context) ([]*Qawwal, error) {
	return service.repo.ListQawwals(context)
}

func (service *Service) GetQawwal(context context.Context, rawID string) (*Qawwal, error) {
	id, err := identifier.RequireID(rawID, resourceName)
	if err != nil {
		return nil, err
	}

	q, err := service.repo.GetQawwal(context, id)
	if errors.Is(err, dberr.ErrNotFound) {
		return nil, apperr.NotFound(resourceName)
	}
	return q, err
}

func (service *Service) CreateQawwal(context context.Context, input *Input, files requestutil.Files) (*Qawwal, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	q := &Qawwal{
		ID:          uuidv7.New(),
		Slug:        input.Slug,
		Name:        input.Name,
		Bio:         input.Bio,
		BirthDate:   input.BirthDate,
		Birthplace:  input.Birthplace,
		CareerStart: input.CareerStart,
		Stats:       input.Stats,
	}
	if q.Slug == "" {
		q.Slug = slug.From(q.Name)
	}

	// Uploads complete before the document referencing them is written;
	// any upload failure aborts the create.
	image, err := media.ResolveSlot(context, service.media, files.Slot(SlotMainImage), input.Image, "")
	if err != nil {
		return nil, err
	}
	gallery, err := media.ResolveGallery(context, service.media, files.Slot(SlotGallery), input.Gallery, nil)
	if err != nil {
		return nil, err
	}
	q.Image = image
	q.Gallery = gallery

	if err := service.repo.CreateQawwal(context, q); err != nil {
		return nil, err
	}

	service.logger.Info("qawwal_created",
		slog.String("qawwal_id", q.ID),
		slog.String("slug", q.Slug),
	)
	return q, nil
}

func (service *Service) UpdateQawwal(context context.Context, rawID string, input *Input, files requestutil.Files) (*Qawwal, error) {
	id, err := identifier.RequireID(rawID, resourceName)
	if err != nil {
		return nil, err
	}

	existing, err := service.repo.GetQawwal(context, id)
	if errors.Is(err, dberr.ErrNotFound) {
		return nil, apperr.NotFound(resourceName)
	}
	if err != nil {
		return nil, err
	}

	if err := validateInput(input); err != nil {
		return nil, err
	}

	updated := &Qawwal{
		ID:          existing.ID,
		Slug:        input.Slug,
		Name:        input.Name,
		Bio:         input.Bio,
		BirthDate:   input.BirthDate,
		Birthplace:  input.Birthplace,
		CareerStart: input.CareerStart,
		Stats:       input.Stats,
		CreatedAt:   existing.CreatedAt,
	}
	if updated.Slug == "" {
		updated.Slug = existing.Slug
	}

	image, err := media.ResolveSlot(context, service.media, files.Slot(SlotMainImage), input.Image, existing.Image)
	if err != nil {
		return nil, err
	}
	gallery, err := media.ResolveGallery(context, service.media, files.Slot(SlotGallery), input.Gallery, existing.Gallery)
	if err != nil {
		return nil, err
	}
	updated.Image = image
	updated.Gallery = gallery

	if err := service.repo.UpdateQawwal(context, updated); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound(resourceName)
		}
		return nil, err
	}

	service.logger.Info("qawwal_updated", slog.String("qawwal_id", updated.ID))
	return updated, nil
}

func (service *Service) DeleteQawwal(context context.Context, rawID string) error {
	id, err := identifier.RequireID(rawID, resourceName)
	if err != nil {
		return err
	}

	existing, err := service.repo.GetQawwal(context, id)
	if errors.Is(err, dberr.ErrNotFound) {
		return apperr.NotFound(resourceName)
	}
	if err != nil {
		return err
	}

	if err := service.repo.DeleteQawwal(context, id); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound(resourceName)
		}
		return err
	}

	service.cleaner.Enqueue(existing.MediaURLs())

	service.logger.Warn("qawwal_deleted", slog.String("qawwal_id", id))
	return nil
}

func (service *Service) DeleteQawwals(context context.Context, rawIDs []string) (int, error) {
	if len(rawIDs) == 0 {
		return 0, apperr.ValidationError("No document ids provided")
	}

	ids := slice.Filter(rawIDs, identifier.IsIDShaped)
	if len(ids) == 0 {
		return 0, nil
	}

	existing, err := service.repo.GetQawwalsByIDs(context, ids)
	if err != nil {
		return 0, err
	}

	deleted, err := service.repo.DeleteQawwals(context, ids)
	if err != nil {
		return 0, err
	}

	var urls []string
	for _, q := range existing {
		urls = append(urls, q.MediaURLs()...)
	}
	service.cleaner.Enqueue(urls)

	service.logger.Warn("qawwals_bulk_deleted", slog.Int("deleted_count", deleted))
	return deleted, nil
}

func validateInput(input *Input) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, 200)
	validator.Required(FieldBio, input.Bio)

	if input.Slug != "" {
		validator.Slug(FieldSlug, input.Slug)
	}
	if input.Image != "" {
		validator.URL(FieldImage, input.Image)
	}

	return validator.Err()
}
