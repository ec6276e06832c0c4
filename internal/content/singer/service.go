package singer

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

const resourceName = "Singer"

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

func (service *Service) ListSingers(context context.Context) ([]*Singer, error) {
	return service.repo.ListSingers(context)
}

func (service *Service) GetSinger(context context.Context, rawID string) (*Singer, error) {
	id, err := identifier.RequireID(rawID, resourceName)
	if err != nil {
		return nil, err
	}

	s, err := service.repo.GetSinger(context, id)
	if errors.Is(err, dberr.ErrNotFound) {
		return nil, apperr.NotFound(resourceName)
	}
	return s, err
}

func (service *Service) CreateSinger(context context.Context, input *Input, files requestutil.Files) (*Singer, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	s := &Singer{
		ID:          uuidv7.New(),
		Slug:        input.Slug,
		Name:        input.Name,
		Genre:       input.Genre,
		Bio:         input.Bio,
		BirthDate:   input.BirthDate,
		Birthplace:  input.Birthplace,
		CareerStart: input.CareerStart,
		Stats:       input.Stats,
		Albums:      input.Albums,
	}
	if s.Slug == "" {
		s.Slug = slug.From(s.Name)
	}

	// Media must be fully uploaded before the document referencing it is
	// written. An upload failure aborts the create with no partial write.
	image, err := media.ResolveSlot(context, service.media, files.Slot(SlotMainImage), input.Image, "")
	if err != nil {
		return nil, err
	}
	gallery, err := media.ResolveGallery(context, service.media, files.Slot(SlotGallery), input.Gallery, nil)
	if err != nil {
		return nil, err
	}
	s.Image = image
	s.Gallery = gallery

	if err := service.repo.CreateSinger(context, s); err != nil {
		return nil, err
	}

	service.logger.Info("singer_created",
		slog.String("singer_id", s.ID),
		slog.String("slug", s.Slug),
	)
	return s, nil
}

func (service *Service) UpdateSinger(context context.Context, rawID string, input *Input, files requestutil.Files) (*Singer, error) {
	id, err := identifier.RequireID(rawID, resourceName)
	if err != nil {
		return nil, err
	}

	// Load first so untouched media slots can keep their stored values.
	existing, err := service.repo.GetSinger(context, id)
	if errors.Is(err, dberr.ErrNotFound) {
		return nil, apperr.NotFound(resourceName)
	}
	if err != nil {
		return nil, err
	}

	if err := validateInput(input); err != nil {
		return nil, err
	}

	updated := &Singer{
		ID:          existing.ID,
		Slug:        input.Slug,
		Name:        input.Name,
		Genre:       input.Genre,
		Bio:         input.Bio,
		BirthDate:   input.BirthDate,
		Birthplace:  input.Birthplace,
		CareerStart: input.CareerStart,
		Stats:       input.Stats,
		Albums:      input.Albums,
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

	if err := service.repo.UpdateSinger(context, updated); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound(resourceName)
		}
		return nil, err
	}

	service.logger.Info("singer_updated", slog.String("singer_id", updated.ID))
	return updated, nil
}

func (service *Service) DeleteSinger(context context.Context, rawID string) error {
	id, err := identifier.RequireID(rawID, resourceName)
	if err != nil {
		return err
	}

	// The document is the only record of its owned media, so harvest the
	// URLs before the row disappears.
	existing, err := service.repo.GetSinger(context, id)
	if errors.Is(err, dberr.ErrNotFound) {
		return apperr.NotFound(resourceName)
	}
	if err != nil {
		return err
	}

	if err := service.repo.DeleteSinger(context, id); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound(resourceName)
		}
		return err
	}

	// Cleanup is scheduled after the delete commits and never blocks or
	// fails the response.
	service.cleaner.Enqueue(existing.MediaURLs())

	service.logger.Warn("singer_deleted", slog.String("singer_id", id))
	return nil
}

func (service *Service) DeleteSingers(context context.Context, rawIDs []string) (int, error) {
	if len(rawIDs) == 0 {
		return 0, apperr.ValidationError("No document ids provided")
	}

	// Malformed and unknown ids are skipped, not errors; the returned
	// count reflects what was actually deleted.
	ids := slice.Filter(rawIDs, identifier.IsIDShaped)
	if len(ids) == 0 {
		return 0, nil
	}

	existing, err := service.repo.GetSingersByIDs(context, ids)
	if err != nil {
		return 0, err
	}

	deleted, err := service.repo.DeleteSingers(context, ids)
	if err != nil {
		return 0, err
	}

	var urls []string
	for _, s := range existing {
		urls = append(urls, s.MediaURLs()...)
	}
	service.cleaner.Enqueue(urls)

	service.logger.Warn("singers_bulk_deleted", slog.Int("deleted_count", deleted))
	return deleted, nil
}

func validateInput(input *Input) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, 200)
	validator.Required(FieldGenre, input.Genre)
	validator.Required(FieldBio, input.Bio)

	if input.Slug != "" {
		validator.Slug(FieldSlug, input.Slug)
	}
	if input.Image != "" {
		validator.URL(FieldImage, input.Image)
	}

	return validator.Err()
}
