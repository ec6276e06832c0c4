package singer

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/media/mediatest"
	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/platform/apperr"
	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/platform/dberr"
	requestutil "github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/platform/request"
)

/*
fakeRepository is an in-memory Repository. Iteration order does not matter
for these tests; ordering is a store concern covered by the postgres layer.
*/
type fakeRepository struct {
	singers map[string]*Singer

	createErr error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{singers: make(map[string]*Singer)}
}

func (repo *fakeRepository) ListSingers(_ context.Context) ([]*Singer, error) {
	all := make([]*Singer, 0, len(repo.singers))
	for _, s := range repo.singers {
		all = append(all, s)
	}
	return all, nil
}

func (repo *fakeRepository) GetSinger(_ context.Context, id string) (*Singer, error) {
	s, ok := repo.singers[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return s, nil
}

func (repo *fakeRepository) GetSingersByIDs(_ context.Context, ids []string) ([]*Singer, error) {
	var found []*Singer
	for _, id := range ids {
		if s, ok := repo.singers[id]; ok {
			found = append(found, s)
		}
	}
	return found, nil
}

func (repo *fakeRepository) CreateSinger(_ context.Context, s *Singer) error {
	if repo.createErr != nil {
		return repo.createErr
	}
	repo.singers[s.ID] = s
	return nil
}

func (repo *fakeRepository) UpdateSinger(_ context.Context, s *Singer) error {
	if _, ok := repo.singers[s.ID]; !ok {
		return dberr.ErrNotFound
	}
	repo.singers[s.ID] = s
	return nil
}

func (repo *fakeRepository) DeleteSinger(_ context.Context, id string) error {
	if _, ok := repo.singers[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(repo.singers, id)
	return nil
}

func (repo *fakeRepository) DeleteSingers(_ context.Context, ids []string) (int, error) {
	deleted := 0
	for _, id := range ids {
		if _, ok := repo.singers[id]; ok {
			delete(repo.singers, id)
			deleted++
		}
	}
	return deleted, nil
}

// recordingCleaner captures Enqueue batches instead of deleting anything.
type recordingCleaner struct {
	batches [][]string
}

func (cleaner *recordingCleaner) Enqueue(urls []string) {
	if len(urls) == 0 {
		return
	}
	cleaner.batches = append(cleaner.batches, urls)
}

func newTestService() (*Service, *fakeRepository, *mediatest.SpyStore, *recordingCleaner) {
	repo := newFakeRepository()
	store := &mediatest.SpyStore{}
	cleaner := &recordingCleaner{}
	service := NewService(repo, store, cleaner, slog.New(slog.NewJSONHandler(io.Discard, nil)))
	return service, repo, store, cleaner
}

func validInput() *Input {
	return &Input{
		Name:  "Rahat Fateh Ali Khan",
		Genre: "Playback",
		Bio:   "Leading playback voice of his generation.",
	}
}

func fileNamed(name string) requestutil.File {
	return requestutil.File{Name: name, ContentType: "image/jpeg", Data: []byte{0xff, 0xd8}}
}

func TestCreateSinger(t *testing.T) {
	t.Run("generates id and slug from name", func(t *testing.T) {
		service, repo, _, _ := newTestService()

		created, err := service.CreateSinger(context.Background(), validInput(), nil)
		require.NoError(t, err)

		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "rahat-fateh-ali-khan", created.Slug)
		assert.Contains(t, repo.singers, created.ID)
	})

	t.Run("uploaded file wins over submitted image URL", func(t *testing.T) {
		service, _, store, _ := newTestService()

		input := validInput()
		input.Image = "https://media.test/uploads/old.jpg"
		files := requestutil.Files{SlotMainImage: {fileNamed("portrait.jpg")}}

		created, err := service.CreateSinger(context.Background(), input, files)
		require.NoError(t, err)

		require.Len(t, store.Uploaded, 1)
		assert.Equal(t, store.Uploaded[0], created.Image)
	})

	t.Run("submitted URL kept when no file uploaded", func(t *testing.T) {
		service, _, store, _ := newTestService()

		input := validInput()
		input.Image = "https://media.test/uploads/keep.jpg"

		created, err := service.CreateSinger(context.Background(), input, nil)
		require.NoError(t, err)

		assert.Equal(t, "https://media.test/uploads/keep.jpg", created.Image)
		assert.Empty(t, store.Uploaded)
	})

	t.Run("validation failure happens before any upload", func(t *testing.T) {
		service, _, store, _ := newTestService()

		input := validInput()
		input.Name = ""
		files := requestutil.Files{SlotMainImage: {fileNamed("portrait.jpg")}}

		_, err := service.CreateSinger(context.Background(), input, files)
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		assert.Empty(t, store.Uploaded, "no media should be uploaded for an invalid payload")
	})

	t.Run("duplicate slug surfaces as conflict", func(t *testing.T) {
		service, repo, _, _ := newTestService()
		repo.createErr = dberr.Wrap(&pgconn.PgError{
			Code:           pgerrcode.UniqueViolation,
			ConstraintName: "singers_slug_key",
		}, "create_singer")

		_, err := service.CreateSinger(context.Background(), validInput(), nil)
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "CONFLICT", ae.Code)
		assert.Equal(t, http.StatusConflict, ae.HTTPStatus)
	})

	t.Run("upload failure aborts the write", func(t *testing.T) {
		service, repo, store, _ := newTestService()
		store.FailUploads = true

		files := requestutil.Files{SlotMainImage: {fileNamed("portrait.jpg")}}

		_, err := service.CreateSinger(context.Background(), validInput(), files)
		require.Error(t, err)
		assert.Equal(t, "UPLOAD_ERROR", apperr.As(err).Code)
		assert.Empty(t, repo.singers, "document must not be written when an upload fails")
	})
}

func TestUpdateSinger(t *testing.T) {
	seed := func(t *testing.T, service *Service) *Singer {
		t.Helper()
		input := validInput()
		input.Image = "https://media.test/uploads/1-original.jpg"
		input.Gallery = []string{
			"https://media.test/uploads/2-a.jpg",
			"https://media.test/uploads/3-b.jpg",
			"https://media.test/uploads/4-c.jpg",
		}
		created, err := service.CreateSinger(context.Background(), input, nil)
		require.NoError(t, err)
		return created
	}

	t.Run("untouched slots keep their stored values", func(t *testing.T) {
		service, _, _, _ := newTestService()
		existing := seed(t, service)

		input := validInput()
		input.Bio = "Updated biography."

		updated, err := service.UpdateSinger(context.Background(), existing.ID, input, nil)
		require.NoError(t, err)

		assert.Equal(t, existing.Image, updated.Image)
		assert.Equal(t, existing.Gallery, updated.Gallery)
		assert.Equal(t, existing.Slug, updated.Slug, "empty input slug keeps the stored slug")
	})

	t.Run("gallery uploads append after existing entries", func(t *testing.T) {
		service, _, store, _ := newTestService()
		existing := seed(t, service)

		files := requestutil.Files{SlotGallery: {fileNamed("new1.jpg"), fileNamed("new2.jpg")}}

		updated, err := service.UpdateSinger(context.Background(), existing.ID, validInput(), files)
		require.NoError(t, err)

		require.Len(t, updated.Gallery, 5)
		assert.Equal(t, existing.Gallery, updated.Gallery[:3], "originals come first, in order")
		assert.Equal(t, store.Uploaded, updated.Gallery[3:])
	})

	t.Run("explicit gallery list replaces the stored one", func(t *testing.T) {
		service, _, _, _ := newTestService()
		existing := seed(t, service)

		input := validInput()
		input.Gallery = []string{"https://media.test/uploads/9-only.jpg"}

		updated, err := service.UpdateSinger(context.Background(), existing.ID, input, nil)
		require.NoError(t, err)

		assert.Equal(t, []string{"https://media.test/uploads/9-only.jpg"}, updated.Gallery)
	})

	t.Run("malformed id is rejected without a lookup", func(t *testing.T) {
		service, _, _, _ := newTestService()

		_, err := service.UpdateSinger(context.Background(), "not-an-id", validInput(), nil)
		require.Error(t, err)
		assert.Equal(t, "INVALID_IDENTIFIER", apperr.As(err).Code)
	})

	t.Run("unknown id maps to not found", func(t *testing.T) {
		service, _, _, _ := newTestService()

		_, err := service.UpdateSinger(context.Background(), "00000000-0000-0000-0000-000000000000", validInput(), nil)
		require.Error(t, err)
		assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	})
}

func TestDeleteSinger(t *testing.T) {
	t.Run("harvests the full media set for cleanup", func(t *testing.T) {
		service, _, _, cleaner := newTestService()

		input := validInput()
		input.Image = "https://media.test/uploads/1-main.jpg"
		input.Gallery = []string{
			"https://media.test/uploads/2-a.jpg",
			"https://media.test/uploads/1-main.jpg", // duplicate of the image slot
		}
		created, err := service.CreateSinger(context.Background(), input, nil)
		require.NoError(t, err)

		require.NoError(t, service.DeleteSinger(context.Background(), created.ID))

		require.Len(t, cleaner.batches, 1)
		assert.ElementsMatch(t, []string{
			"https://media.test/uploads/1-main.jpg",
			"https://media.test/uploads/2-a.jpg",
		}, cleaner.batches[0], "owned media is deduplicated before enqueue")
	})

	t.Run("second delete reports not found", func(t *testing.T) {
		service, _, _, _ := newTestService()

		created, err := service.CreateSinger(context.Background(), validInput(), nil)
		require.NoError(t, err)

		require.NoError(t, service.DeleteSinger(context.Background(), created.ID))

		err = service.DeleteSinger(context.Background(), created.ID)
		require.Error(t, err)
		assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	})

	t.Run("no enqueue for a document without media", func(t *testing.T) {
		service, _, _, cleaner := newTestService()

		created, err := service.CreateSinger(context.Background(), validInput(), nil)
		require.NoError(t, err)

		require.NoError(t, service.DeleteSinger(context.Background(), created.ID))
		assert.Empty(t, cleaner.batches)
	})
}

func TestDeleteSingers(t *testing.T) {
	t.Run("empty id list is a validation error", func(t *testing.T) {
		service, _, _, _ := newTestService()

		_, err := service.DeleteSingers(context.Background(), nil)
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})

	t.Run("skips malformed and unknown ids", func(t *testing.T) {
		service, _, _, _ := newTestService()

		created, err := service.CreateSinger(context.Background(), validInput(), nil)
		require.NoError(t, err)

		deleted, err := service.DeleteSingers(context.Background(), []string{
			created.ID,
			"not-an-id",
			"00000000-0000-0000-0000-000000000000",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, deleted)
	})

	t.Run("enqueues media of every deleted document", func(t *testing.T) {
		service, _, _, cleaner := newTestService()

		first := validInput()
		first.Image = "https://media.test/uploads/1-first.jpg"
		a, err := service.CreateSinger(context.Background(), first, nil)
		require.NoError(t, err)

		second := validInput()
		second.Name = "Atif Aslam"
		second.Image = "https://media.test/uploads/2-second.jpg"
		b, err := service.CreateSinger(context.Background(), second, nil)
		require.NoError(t, err)

		deleted, err := service.DeleteSingers(context.Background(), []string{a.ID, b.ID})
		require.NoError(t, err)
		assert.Equal(t, 2, deleted)

		require.Len(t, cleaner.batches, 1)
		assert.ElementsMatch(t, []string{
			"https://media.test/uploads/1-first.jpg",
			"https://media.test/uploads/2-second.jpg",
		}, cleaner.batches[0])
	})
}
