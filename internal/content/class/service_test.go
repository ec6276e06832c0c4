package class

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
	classes map[string]*Class
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{classes: make(map[string]*Class)}
}

func (repo *fakeRepository) ListClasses(_ context.Context) ([]*Class, error) {
	all := make([]*Class, 0, len(repo.classes))
	for _, c := range repo.classes {
		all = append(all, c)
	}
	return all, nil
}

func (repo *fakeRepository) GetClass(_ context.Context, id string) (*Class, error) {
	c, ok := repo.classes[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return c, nil
}

func (repo *fakeRepository) GetClassBySlug(_ context.Context, slug string) (*Class, error) {
	for _, c := range repo.classes {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *fakeRepository) GetClassesByIDs(_ context.Context, ids []string) ([]*Class, error) {
	var found []*Class
	for _, id := range ids {
		if c, ok := repo.classes[id]; ok {
			found = append(found, c)
		}
	}
	return found, nil
}

func (repo *fakeRepository) CreateClass(_ context.Context, c *Class) error {
	repo.classes[c.ID] = c
	return nil
}

func (repo *fakeRepository) UpdateClass(_ context.Context, c *Class) error {
	if _, ok := repo.classes[c.ID]; !ok {
		return dberr.ErrNotFound
	}
	repo.classes[c.ID] = c
	return nil
}

func (repo *fakeRepository) DeleteClass(_ context.Context, id string) error {
	if _, ok := repo.classes[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(repo.classes, id)
	return nil
}

func (repo *fakeRepository) DeleteClasses(_ context.Context, ids []string) (int, error) {
	deleted := 0
	for _, id := range ids {
		if _, ok := repo.classes[id]; ok {
			delete(repo.classes, id)
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

func newTestService() (*Service, *fakeRepository, *mediatest.SpyStore, *recordingCleaner) {
	repo := newFakeRepository()
	store := &mediatest.SpyStore{}
	cleaner := &recordingCleaner{}
	service := NewService(repo, store, cleaner, slog.New(slog.NewJSONHandler(io.Discard, nil)))
	return service, repo, store, cleaner
}

func validInput() *Input {
	return &Input{
		Title:      "Guitar Fundamentals",
		Type:       TypeStudio,
		Instrument: InstrumentGuitar,
		Features: []Feature{
			{Icon: "guitar", Title: "Hands-on sessions"},
		},
		Benefits: []Benefit{
			{Icon: "star", Title: "Stage confidence"},
		},
	}
}

func TestCreateClass(t *testing.T) {
	t.Run("hero banner mirrors the uploaded hero image slot", func(t *testing.T) {
		service, _, store, _ := newTestService()

		files := requestutil.Files{SlotHeroImage: {{Name: "hero.jpg", ContentType: "image/jpeg", Data: []byte{1}}}}
		created, err := service.CreateClass(context.Background(), validInput(), files)
		require.NoError(t, err)

		require.Len(t, store.Uploaded, 1)
		assert.Equal(t, store.Uploaded[0], created.Images.HeroImage)
		assert.Equal(t, store.Uploaded[0], created.Hero.HeroImage)
	})

	t.Run("hero URL submitted only in the hero block is honored", func(t *testing.T) {
		service, _, store, _ := newTestService()

		input := validInput()
		input.Hero.HeroImage = "https://media.test/uploads/1-hero.jpg"

		created, err := service.CreateClass(context.Background(), input, nil)
		require.NoError(t, err)

		assert.Equal(t, "https://media.test/uploads/1-hero.jpg", created.Images.HeroImage)
		assert.Equal(t, "https://media.test/uploads/1-hero.jpg", created.Hero.HeroImage)
		assert.Empty(t, store.Uploaded)
	})

	t.Run("images.heroImage wins when both hero URL fields are set", func(t *testing.T) {
		service, _, _, _ := newTestService()

		input := validInput()
		input.Hero.HeroImage = "https://media.test/uploads/1-old.jpg"
		input.Images = Images{HeroImage: "https://media.test/uploads/2-new.jpg"}

		created, err := service.CreateClass(context.Background(), input, nil)
		require.NoError(t, err)

		assert.Equal(t, "https://media.test/uploads/2-new.jpg", created.Images.HeroImage)
		assert.Equal(t, "https://media.test/uploads/2-new.jpg", created.Hero.HeroImage)
	})

	t.Run("feature with a blank title fails with a 1-indexed message", func(t *testing.T) {
		service, repo, _, _ := newTestService()

		input := validInput()
		input.Features = []Feature{{Icon: "guitar", Title: ""}}

		_, err := service.CreateClass(context.Background(), input, nil)
		require.Error(t, err)

		appErr := apperr.As(err)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		assert.Equal(t, "Feature 1: Title is required", appErr.Message)
		assert.Empty(t, repo.classes, "no document is persisted on a validation failure")
	})

	t.Run("second benefit missing its icon names the right row", func(t *testing.T) {
		service, _, _, _ := newTestService()

		input := validInput()
		input.Benefits = []Benefit{
			{Icon: "star", Title: "Stage confidence"},
			{Icon: "", Title: "Ear training"},
		}

		_, err := service.CreateClass(context.Background(), input, nil)
		require.Error(t, err)
		assert.Equal(t, "Benefit 2: Icon is required", apperr.As(err).Message)
	})

	t.Run("rejects an unknown class type", func(t *testing.T) {
		service, _, _, _ := newTestService()

		input := validInput()
		input.Type = "online"

		_, err := service.CreateClass(context.Background(), input, nil)
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})
}

func TestGetClassBySlug(t *testing.T) {
	t.Run("strips internal fields from the public view", func(t *testing.T) {
		service, _, _, _ := newTestService()

		created, err := service.CreateClass(context.Background(), validInput(), nil)
		require.NoError(t, err)

		view, err := service.GetClassBySlug(context.Background(), created.Slug)
		require.NoError(t, err)

		assert.Equal(t, created.Slug, view.Slug)
		assert.Equal(t, created.Title, view.Title)
		assert.Equal(t, created.Features, view.Features)
	})

	t.Run("unknown slug is not found", func(t *testing.T) {
		service, _, _, _ := newTestService()

		_, err := service.GetClassBySlug(context.Background(), "no-such-class")
		require.Error(t, err)
		assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	})
}

func TestListNav(t *testing.T) {
	service, _, _, _ := newTestService()

	_, err := service.CreateClass(context.Background(), validInput(), nil)
	require.NoError(t, err)

	items, err := service.ListNav(context.Background())
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, NavItem{
		Slug:       "guitar-fundamentals",
		Title:      "Guitar Fundamentals",
		Type:       TypeStudio,
		Instrument: InstrumentGuitar,
	}, items[0])
}

func TestUpdateClass(t *testing.T) {
	t.Run("untouched image slots keep their stored URLs", func(t *testing.T) {
		service, _, _, _ := newTestService()

		input := validInput()
		input.Images = Images{
			HeroImage:       "https://media.test/uploads/1-hero.jpg",
			CurriculumImage: "https://media.test/uploads/2-curriculum.jpg",
		}
		created, err := service.CreateClass(context.Background(), input, nil)
		require.NoError(t, err)

		updated, err := service.UpdateClass(context.Background(), created.ID, validInput(), nil)
		require.NoError(t, err)

		assert.Equal(t, created.Images, updated.Images)
		assert.Equal(t, created.Hero.HeroImage, updated.Hero.HeroImage)
	})

	t.Run("new teaching image replaces only its slot", func(t *testing.T) {
		service, _, store, _ := newTestService()

		input := validInput()
		input.Images = Images{HeroImage: "https://media.test/uploads/1-hero.jpg"}
		created, err := service.CreateClass(context.Background(), input, nil)
		require.NoError(t, err)

		files := requestutil.Files{SlotTeachingImage: {{Name: "teach.jpg", ContentType: "image/jpeg", Data: []byte{1}}}}
		updated, err := service.UpdateClass(context.Background(), created.ID, validInput(), files)
		require.NoError(t, err)

		require.Len(t, store.Uploaded, 1)
		assert.Equal(t, store.Uploaded[0], updated.Images.TeachingImage)
		assert.Equal(t, "https://media.test/uploads/1-hero.jpg", updated.Images.HeroImage)
	})
}

func TestDeleteClass(t *testing.T) {
	t.Run("harvests all image slots without duplicating the hero", func(t *testing.T) {
		service, _, _, cleaner := newTestService()

		input := validInput()
		input.Images = Images{
			HeroImage:       "https://media.test/uploads/1-hero.jpg",
			CurriculumImage: "https://media.test/uploads/2-curriculum.jpg",
			TeachingImage:   "https://media.test/uploads/3-teaching.jpg",
		}
		created, err := service.CreateClass(context.Background(), input, nil)
		require.NoError(t, err)

		require.NoError(t, service.DeleteClass(context.Background(), created.ID))

		require.Len(t, cleaner.batches, 1)
		assert.ElementsMatch(t, []string{
			"https://media.test/uploads/1-hero.jpg",
			"https://media.test/uploads/2-curriculum.jpg",
			"https://media.test/uploads/3-teaching.jpg",
		}, cleaner.batches[0], "hero mirror must not double-count the hero image")
	})
}
