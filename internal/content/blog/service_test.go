package blog

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/media/mediatest"
	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/platform/apperr"
	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/platform/dberr"
	requestutil "github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/platform/request"
)

type fakeRepository struct {
	posts map[string]*Post
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{posts: make(map[string]*Post)}
}

func (repo *fakeRepository) ListPosts(_ context.Context) ([]*Post, error) {
	all := make([]*Post, 0, len(repo.posts))
	for _, p := range repo.posts {
		all = append(all, p)
	}
	return all, nil
}

func (repo *fakeRepository) GetPost(_ context.Context, id string) (*Post, error) {
	p, ok := repo.posts[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return p, nil
}

func (repo *fakeRepository) GetPostsByIDs(_ context.Context, ids []string) ([]*Post, error) {
	var found []*Post
	for _, id := range ids {
		if p, ok := repo.posts[id]; ok {
			found = append(found, p)
		}
	}
	return found, nil
}

func (repo *fakeRepository) CreatePost(_ context.Context, p *Post) error {
	repo.posts[p.ID] = p
	return nil
}

func (repo *fakeRepository) UpdatePost(_ context.Context, p *Post) error {
	if _, ok := repo.posts[p.ID]; !ok {
		return dberr.ErrNotFound
	}
	repo.posts[p.ID] = p
	return nil
}

func (repo *fakeRepository) DeletePost(_ context.Context, id string) error {
	if _, ok := repo.posts[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(repo.posts, id)
	return nil
}

func (repo *fakeRepository) DeletePosts(_ context.Context, ids []string) (int, error) {
	deleted := 0
	for _, id := range ids {
		if _, ok := repo.posts[id]; ok {
			delete(repo.posts, id)
			deleted++
		}
	}
	return deleted, nil
}

type recordingCleaner struct {
	batches [][]string
}

func (cleaner *recordingCleaner) Enqueue(urls []string) {
	if len(urls) == 0 {
		return
	}
	cleaner.batches = append(cleaner.batches, urls)
}

func newTestService() (*Service, *mediatest.SpyStore, *recordingCleaner) {
	store := &mediatest.SpyStore{}
	cleaner := &recordingCleaner{}
	service := NewService(newFakeRepository(), store, cleaner, slog.New(slog.NewJSONHandler(io.Discard, nil)))
	return service, store, cleaner
}

func validInput() *Input {
	return &Input{
		Title:   "Behind the Melody",
		Content: "<p>Studio notes from the last recording session.</p>",
		Author:  "Editorial Team",
	}
}

func TestCreatePost(t *testing.T) {
	t.Run("sanitizes script tags out of the content", func(t *testing.T) {
		service, _, _ := newTestService()

		input := validInput()
		input.Content = `<p>Hello</p><script>alert("x")</script>`

		created, err := service.CreatePost(context.Background(), input, nil)
		require.NoError(t, err)

		assert.Equal(t, "<p>Hello</p>", created.Content)
	})

	t.Run("strips markup from the excerpt entirely", func(t *testing.T) {
		service, _, _ := newTestService()

		input := validInput()
		input.Excerpt = `Studio <b>notes</b> <img src="x">from the session`

		created, err := service.CreatePost(context.Background(), input, nil)
		require.NoError(t, err)

		assert.Equal(t, "Studio notes from the session", created.Excerpt)
	})

	t.Run("generates slug from title", func(t *testing.T) {
		service, _, _ := newTestService()

		created, err := service.CreatePost(context.Background(), validInput(), nil)
		require.NoError(t, err)
		assert.Equal(t, "behind-the-melody", created.Slug)
	})

	t.Run("uploaded cover image fills the image field", func(t *testing.T) {
		service, store, _ := newTestService()

		files := requestutil.Files{SlotMainImage: {{Name: "cover.jpg", ContentType: "image/jpeg", Data: []byte{1}}}}
		created, err := service.CreatePost(context.Background(), validInput(), files)
		require.NoError(t, err)

		require.Len(t, store.Uploaded, 1)
		assert.Equal(t, store.Uploaded[0], created.Image)
	})

	t.Run("missing title is a validation error", func(t *testing.T) {
		service, _, _ := newTestService()

		input := validInput()
		input.Title = ""

		_, err := service.CreatePost(context.Background(), input, nil)
		require.Error(t, err)

		appErr := apperr.As(err)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})
}

func TestDeletePost(t *testing.T) {
	t.Run("enqueues the cover image for cleanup", func(t *testing.T) {
		service, _, cleaner := newTestService()

		input := validInput()
		input.Image = "https://media.test/uploads/1-cover.jpg"
		created, err := service.CreatePost(context.Background(), input, nil)
		require.NoError(t, err)

		require.NoError(t, service.DeletePost(context.Background(), created.ID))

		require.Len(t, cleaner.batches, 1)
		assert.Equal(t, []string{"https://media.test/uploads/1-cover.jpg"}, cleaner.batches[0])
	})

	t.Run("malformed id never reaches the store", func(t *testing.T) {
		service, _, _ := newTestService()

		err := service.DeletePost(context.Background(), "abc123")
		require.Error(t, err)
		assert.Equal(t, "INVALID_IDENTIFIER", apperr.As(err).Code)
	})
}
