package blog

import (
	"context"
	"errors"
	"log/slog"

	"github.com/microcosm-cc/bluemonday"

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

const resourceName = "Blog"

type Service struct {
	repo    Repository
	media   media.Store
	cleaner media.Cleaner
	logger  *slog.Logger

	// Post bodies arrive as editor HTML and go straight back out to the
	// public site, so they are sanitized on the way in. Excerpts render
	// in listing cards and are stripped to plain text.
	contentPolicy *bluemonday.Policy
	excerptPolicy *bluemonday.Policy
}

func NewService(repo Repository, mediaStore media.Store, cleaner media.Cleaner, logger *slog.Logger) *Service {
	return &Service{
		repo:          repo,
		media:         mediaStore,
		cleaner:       cleaner,
		logger:        logger,
		contentPolicy: bluemonday.UGCPolicy(),
		excerptPolicy: bluemonday.StrictPolicy(),
	}
}

func (service *Service) ListPosts(context context.Context) ([]*Post, error) {
	return service.repo.ListPosts(context)
}

func (service *Service) GetPost(context context.Context, rawID string) (*Post, error) {
	id, err := identifier.RequireID(rawID, resourceName)
	if err != nil {
		return nil, err
	}

	p, err := service.repo.GetPost(context, id)
	if errors.Is(err, dberr.ErrNotFound) {
		return nil, apperr.NotFound(resourceName)
	}
	return p, err
}

func (service *Service) CreatePost(context context.Context, input *Input, files requestutil.Files) (*Post, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	p := &Post{
		ID:       uuidv7.New(),
		Slug:     input.Slug,
		Title:    input.Title,
		Content:  service.contentPolicy.Sanitize(input.Content),
		Date:     input.Date,
		Author:   input.Author,
		Category: input.Category,
		Excerpt:  service.excerptPolicy.Sanitize(input.Excerpt),
		Metadata: input.Metadata,
	}
	if p.Slug == "" {
		p.Slug = slug.From(p.Title)
	}

	image, err := media.ResolveSlot(context, service.media, files.Slot(SlotMainImage), input.Image, "")
	if err != nil {
		return nil, err
	}
	p.Image = image

	if err := service.repo.CreatePost(context, p); err != nil {
		return nil, err
	}

	service.logger.Info("blog_post_created",
		slog.String("post_id", p.ID),
		slog.String("slug", p.Slug),
	)
	return p, nil
}

func (service *Service) UpdatePost(context context.Context, rawID string, input *Input, files requestutil.Files) (*Post, error) {
	id, err := identifier.RequireID(rawID, resourceName)
	if err != nil {
		return nil, err
	}

	existing, err := service.repo.GetPost(context, id)
	if errors.Is(err, dberr.ErrNotFound) {
		return nil, apperr.NotFound(resourceName)
	}
	if err != nil {
		return nil, err
	}

	if err := validateInput(input); err != nil {
		return nil, err
	}

	updated := &Post{
		ID:        existing.ID,
		Slug:      input.Slug,
		Title:     input.Title,
		Content:   service.contentPolicy.Sanitize(input.Content),
		Date:      input.Date,
		Author:    input.Author,
		Category:  input.Category,
		Excerpt:   service.excerptPolicy.Sanitize(input.Excerpt),
		Metadata:  input.Metadata,
		CreatedAt: existing.CreatedAt,
	}
	if updated.Slug == "" {
		updated.Slug = existing.Slug
	}

	image, err := media.ResolveSlot(context, service.media, files.Slot(SlotMainImage), input.Image, existing.Image)
	if err != nil {
		return nil, err
	}
	updated.Image = image

	if err := service.repo.UpdatePost(context, updated); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound(resourceName)
		}
		return nil, err
	}

	service.logger.Info("blog_post_updated", slog.String("post_id", updated.ID))
	return updated, nil
}

func (service *Service) DeletePost(context context.Context, rawID string) error {
	id, err := identifier.RequireID(rawID, resourceName)
	if err != nil {
		return err
	}

	existing, err := service.repo.GetPost(context, id)
	if errors.Is(err, dberr.ErrNotFound) {
		return apperr.NotFound(resourceName)
	}
	if err != nil {
		return err
	}

	if err := service.repo.DeletePost(context, id); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound(resourceName)
		}
		return err
	}

	service.cleaner.Enqueue(existing.MediaURLs())

	service.logger.Warn("blog_post_deleted", slog.String("post_id", id))
	return nil
}

func (service *Service) DeletePosts(context context.Context, rawIDs []string) (int, error) {
	if len(rawIDs) == 0 {
		return 0, apperr.ValidationError("No document ids provided")
	}

	ids := slice.Filter(rawIDs, identifier.IsIDShaped)
	if len(ids) == 0 {
		return 0, nil
	}

	existing, err := service.repo.GetPostsByIDs(context, ids)
	if err != nil {
		return 0, err
	}

	deleted, err := service.repo.DeletePosts(context, ids)
	if err != nil {
		return 0, err
	}

	var urls []string
	for _, p := range existing {
		urls = append(urls, p.MediaURLs()...)
	}
	service.cleaner.Enqueue(urls)

	service.logger.Warn("blog_posts_bulk_deleted", slog.Int("deleted_count", deleted))
	return deleted, nil
}

func validateInput(input *Input) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, 300)
	validator.Required(FieldContent, input.Content)
	validator.Required(FieldAuthor, input.Author)

	if input.Slug != "" {
		validator.Slug(FieldSlug, input.Slug)
	}
	if input.Image != "" {
		validator.URL(FieldImage, input.Image)
	}

	return validator.Err()
}
