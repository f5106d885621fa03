package relational_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realty-catalog/internal/domain"
	"github.com/realty-catalog/internal/domain/repository"
	"github.com/realty-catalog/internal/pkg/errors"
	"github.com/realty-catalog/internal/repository/relational/testhelpers"
)

// forEachBackend прогоняет тест на SQLite и, если доступен, на PostgreSQL
func forEachBackend(t *testing.T, fn func(t *testing.T, tdb *testhelpers.TestDB)) {
	t.Run("sqlite", func(t *testing.T) {
		fn(t, testhelpers.SetupSQLite(t))
	})
	t.Run("postgres", func(t *testing.T) {
		tdb := testhelpers.SetupPostgres(t)
		testhelpers.NewDBForTest(t, tdb)
		require.NoError(t, tdb.Cleanup(context.Background()))
		fn(t, tdb)
	})
}

func newImage(owner domain.OwnerRef, order int, title string) *domain.GalleryItem {
	return &domain.GalleryItem{
		OwnerKind: owner.Kind,
		OwnerID:   owner.ID,
		Kind:      domain.ContentImage,
		Title:     title,
		ImagePath: "gallery/" + title + ".jpg",
		Order:     order,
		IsActive:  true,
	}
}

func countMain(t *testing.T, repo repository.GalleryRepository, owner domain.OwnerRef) int {
	items, err := repo.List(context.Background(), domain.GalleryFilter{Owner: owner})
	require.NoError(t, err)
	n := 0
	for _, it := range items {
		if it.IsMain {
			n++
		}
	}
	return n
}

func TestGalleryRepository_CreateAndList(t *testing.T) {
	forEachBackend(t, func(t *testing.T, tdb *testhelpers.TestDB) {
		repo := testhelpers.NewGalleryRepositoryForTest(t, tdb)
		ctx := context.Background()
		owner := domain.OwnerRef{Kind: domain.OwnerResidentialComplex, ID: 42}

		base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		second := newImage(owner, 1, "b")
		second.CreatedAt = base
		first := newImage(owner, 0, "a")
		first.CreatedAt = base.Add(time.Minute)
		tie := newImage(owner, 1, "c")
		tie.CreatedAt = base.Add(-time.Minute)
		other := newImage(domain.OwnerRef{Kind: domain.OwnerArticle, ID: 42}, 0, "x")

		for _, it := range []*domain.GalleryItem{second, first, tie, other} {
			require.NoError(t, repo.Create(ctx, it))
			assert.NotZero(t, it.ID)
		}

		video := &domain.GalleryItem{
			OwnerKind: owner.Kind, OwnerID: owner.ID, Kind: domain.ContentVideo,
			Title: "Видео", VideoURL: "https://youtu.be/x", IsActive: true,
		}
		require.NoError(t, repo.Create(ctx, video))

		images, err := repo.List(ctx, domain.GalleryFilter{Owner: owner, Kind: domain.ContentImage})
		require.NoError(t, err)
		require.Len(t, images, 3)
		assert.Equal(t, "a", images[0].Title)
		assert.Equal(t, "c", images[1].Title)
		assert.Equal(t, "b", images[2].Title)
		assert.True(t, images[0].IsActive)
		assert.Equal(t, domain.ContentImage, images[0].Kind)

		all, err := repo.List(ctx, domain.GalleryFilter{Owner: owner})
		require.NoError(t, err)
		assert.Len(t, all, 4)

		got, err := repo.GetByID(ctx, video.ID)
		require.NoError(t, err)
		assert.Equal(t, "https://youtu.be/x", got.VideoURL)
		assert.Equal(t, owner, got.Owner())
	})
}

func TestGalleryRepository_SetMainScenario(t *testing.T) {
	forEachBackend(t, func(t *testing.T, tdb *testhelpers.TestDB) {
		repo := testhelpers.NewGalleryRepositoryForTest(t, tdb)
		ctx := context.Background()
		owner := domain.OwnerRef{Kind: domain.OwnerResidentialComplex, ID: 7}

		items := make([]*domain.GalleryItem, 3)
		for i := range items {
			items[i] = newImage(owner, i, string(rune('a'+i)))
			require.NoError(t, repo.Create(ctx, items[i]))
		}
		neighbour := newImage(domain.OwnerRef{Kind: domain.OwnerResidentialComplex, ID: 8}, 0, "n")
		neighbour.IsMain = true
		require.NoError(t, repo.Create(ctx, neighbour))

		yes := true
		updated, err := repo.Update(ctx, items[2].ID, domain.GalleryPatch{IsMain: &yes})
		require.NoError(t, err)
		assert.True(t, updated.IsMain)

		list, err := repo.List(ctx, domain.GalleryFilter{Owner: owner})
		require.NoError(t, err)
		assert.False(t, list[0].IsMain)
		assert.False(t, list[1].IsMain)
		assert.True(t, list[2].IsMain)

		_, err = repo.Update(ctx, items[0].ID, domain.GalleryPatch{IsMain: &yes})
		require.NoError(t, err)

		list, err = repo.List(ctx, domain.GalleryFilter{Owner: owner})
		require.NoError(t, err)
		assert.True(t, list[0].IsMain)
		assert.False(t, list[2].IsMain)
		assert.Equal(t, 1, countMain(t, repo, owner))

		other, err := repo.GetByID(ctx, neighbour.ID)
		require.NoError(t, err)
		assert.True(t, other.IsMain)
	})
}

func TestGalleryRepository_CreateMainClearsSiblings(t *testing.T) {
	forEachBackend(t, func(t *testing.T, tdb *testhelpers.TestDB) {
		repo := testhelpers.NewGalleryRepositoryForTest(t, tdb)
		ctx := context.Background()
		owner := domain.OwnerRef{Kind: domain.OwnerEmployeeVideo, ID: 3}

		for i := 0; i < 3; i++ {
			it := newImage(owner, i, "m")
			it.IsMain = true
			require.NoError(t, repo.Create(ctx, it))
		}
		assert.Equal(t, 1, countMain(t, repo, owner))

		require.NoError(t, repo.ClearMain(ctx, owner))
		assert.Equal(t, 0, countMain(t, repo, owner))
	})
}

func TestGalleryRepository_ConcurrentSetMain(t *testing.T) {
	forEachBackend(t, func(t *testing.T, tdb *testhelpers.TestDB) {
		repo := testhelpers.NewGalleryRepositoryForTest(t, tdb)
		ctx := context.Background()
		owner := domain.OwnerRef{Kind: domain.OwnerOffice, ID: 1}

		ids := make([]int64, 5)
		for i := range ids {
			it := newImage(owner, i, "c")
			require.NoError(t, repo.Create(ctx, it))
			ids[i] = it.ID
		}

		var wg sync.WaitGroup
		for _, id := range ids {
			wg.Add(1)
			go func(id int64) {
				defer wg.Done()
				yes := true
				_, _ = repo.Update(ctx, id, domain.GalleryPatch{IsMain: &yes})
			}(id)
		}
		wg.Wait()

		assert.Equal(t, 1, countMain(t, repo, owner))
	})
}

func TestGalleryRepository_ConcurrentCreateAndSetMain(t *testing.T) {
	forEachBackend(t, func(t *testing.T, tdb *testhelpers.TestDB) {
		repo := testhelpers.NewGalleryRepositoryForTest(t, tdb)
		ctx := context.Background()
		owner := domain.OwnerRef{Kind: domain.OwnerResidentialComplex, ID: 42}

		ids := make([]int64, 4)
		for i := range ids {
			it := newImage(owner, i, "existing")
			require.NoError(t, repo.Create(ctx, it))
			ids[i] = it.ID
		}

		var wg sync.WaitGroup
		errs := make(chan error, 2*len(ids))
		for i, id := range ids {
			wg.Add(2)
			go func(order int) {
				defer wg.Done()
				it := newImage(owner, 10+order, "new main")
				it.IsMain = true
				errs <- repo.Create(ctx, it)
			}(i)
			go func(id int64) {
				defer wg.Done()
				yes := true
				_, err := repo.Update(ctx, id, domain.GalleryPatch{IsMain: &yes})
				errs <- err
			}(id)
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			require.NoError(t, err)
		}
		assert.Equal(t, 1, countMain(t, repo, owner))
	})
}

func TestGalleryRepository_UpdateFields(t *testing.T) {
	forEachBackend(t, func(t *testing.T, tdb *testhelpers.TestDB) {
		repo := testhelpers.NewGalleryRepositoryForTest(t, tdb)
		ctx := context.Background()
		owner := domain.OwnerRef{Kind: domain.OwnerCompany, ID: 1}

		video := &domain.GalleryItem{
			OwnerKind: owner.Kind, OwnerID: owner.ID, Kind: domain.ContentVideo,
			Title: "Видео", VideoURL: "https://youtu.be/x", IsMain: true, IsActive: true,
		}
		require.NoError(t, repo.Create(ctx, video))

		title, desc, empty, no := "Новый", "Описание", "", false
		updated, err := repo.Update(ctx, video.ID, domain.GalleryPatch{
			Title:       &title,
			Description: &desc,
			VideoURL:    &empty,
			IsMain:      &no,
		})
		require.NoError(t, err)
		assert.Equal(t, "Новый", updated.Title)
		assert.Equal(t, "Описание", updated.Description)
		assert.Equal(t, "", updated.VideoURL)
		assert.False(t, updated.IsMain)
		assert.Equal(t, domain.ContentVideo, updated.Kind)
		assert.Equal(t, owner, updated.Owner())

		_, err = repo.Update(ctx, 999999, domain.GalleryPatch{Title: &title})
		assert.True(t, errors.Is(err, errors.ErrGalleryItemNotFound))
	})
}

func TestGalleryRepository_Delete(t *testing.T) {
	forEachBackend(t, func(t *testing.T, tdb *testhelpers.TestDB) {
		repo := testhelpers.NewGalleryRepositoryForTest(t, tdb)
		ctx := context.Background()
		owner := domain.OwnerRef{Kind: domain.OwnerArticle, ID: 5}

		a, b := newImage(owner, 0, "a"), newImage(owner, 1, "b")
		require.NoError(t, repo.Create(ctx, a))
		require.NoError(t, repo.Create(ctx, b))

		require.NoError(t, repo.Delete(ctx, a.ID))

		_, err := repo.GetByID(ctx, a.ID)
		assert.True(t, errors.Is(err, errors.ErrGalleryItemNotFound))

		left, err := repo.List(ctx, domain.GalleryFilter{Owner: owner})
		require.NoError(t, err)
		require.Len(t, left, 1)
		assert.Equal(t, b.ID, left[0].ID)

		err = repo.Delete(ctx, a.ID)
		assert.True(t, errors.Is(err, errors.ErrGalleryItemNotFound))
	})
}

func TestGalleryRepository_ListVideosForCleanup(t *testing.T) {
	forEachBackend(t, func(t *testing.T, tdb *testhelpers.TestDB) {
		repo := testhelpers.NewGalleryRepositoryForTest(t, tdb)
		ctx := context.Background()
		owner := domain.OwnerRef{Kind: domain.OwnerResidentialVideo, ID: 1}

		for _, u := range []string{"", "  ", `<iframe src="https://rutube.ru/play/embed/abc/"></iframe>`, "https://youtu.be/ok"} {
			require.NoError(t, repo.Create(ctx, &domain.GalleryItem{
				OwnerKind: owner.Kind, OwnerID: owner.ID, Kind: domain.ContentVideo,
				Title: "v", VideoURL: u, IsActive: true,
			}))
		}

		items, err := repo.ListVideosForCleanup(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 3)
	})
}

func TestGalleryRepository_ImagePaths(t *testing.T) {
	forEachBackend(t, func(t *testing.T, tdb *testhelpers.TestDB) {
		repo := testhelpers.NewGalleryRepositoryForTest(t, tdb)
		ctx := context.Background()
		owner := domain.OwnerRef{Kind: domain.OwnerResidentialComplex, ID: 7}

		require.NoError(t, repo.Create(ctx, newImage(owner, 0, "a")))
		require.NoError(t, repo.Create(ctx, newImage(owner, 1, "a")))
		require.NoError(t, repo.Create(ctx, &domain.GalleryItem{
			OwnerKind: owner.Kind, OwnerID: owner.ID, Kind: domain.ContentVideo,
			VideoURL: "https://youtu.be/x", VideoThumbnail: "gallery/thumb.jpg", IsActive: true,
		}))
		require.NoError(t, repo.Create(ctx, &domain.GalleryItem{
			OwnerKind: owner.Kind, OwnerID: owner.ID, Kind: domain.ContentVideo,
			VideoURL: "https://youtu.be/y", IsActive: true,
		}))

		paths, err := repo.ImagePaths(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"gallery/a.jpg", "gallery/thumb.jpg"}, paths)
	})
}
