package statistics

import (
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/Folio/app/models"
	"github.com/ManuelReschke/Folio/app/repository"
	"github.com/ManuelReschke/Folio/internal/pkg/cache"
	"github.com/ManuelReschke/Folio/internal/pkg/testdb"
)

func seedContent(t *testing.T, repos *repository.Repositories, now time.Time) {
	t.Helper()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	posts := []models.Post{
		{Title: "Published", Slug: "published", Content: "c", Status: models.StatusPublished, PublishedAt: &past},
		{Title: "Due", Slug: "due", Content: "c", Status: models.StatusScheduled, PublishedAt: &past},
		{Title: "Later", Slug: "later", Content: "c", Status: models.StatusScheduled, PublishedAt: &future},
		{Title: "Draft", Slug: "draft", Content: "c", Status: models.StatusDraft},
	}
	for i := range posts {
		require.NoError(t, repos.Post.Create(&posts[i]))
	}

	resources := []models.Resource{
		{Title: "Due Notes", Slug: "due-notes", Description: "d", Category: models.CategoryLectureMaterials, Status: models.StatusScheduled, PublishedAt: &past, IsFree: true},
		{Title: "Later Notes", Slug: "later-notes", Description: "d", Category: models.CategoryLectureMaterials, Status: models.StatusScheduled, PublishedAt: &future, IsFree: true},
	}
	for i := range resources {
		require.NoError(t, repos.Resource.Create(&resources[i]))
	}

	require.NoError(t, repos.Subscriber.Create(&models.Subscriber{Email: "ada@example.com", IsActive: true}))
}

func TestCollect_CountsWhatThePublicSees(t *testing.T) {
	repos := repository.NewRepositories(testdb.Open(t))
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	seedContent(t, repos, now)

	stats, err := collectAt(repos, now)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.Posts)
	assert.Equal(t, int64(1), stats.Resources)
	assert.Equal(t, int64(1), stats.Subscribers)
}

func TestGetHomeStats_FallsBackWhenCacheIsDown(t *testing.T) {
	cache.SetClient(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1}))
	ResetCacheUpdateTimer()

	repos := repository.NewRepositories(testdb.Open(t))
	seedContent(t, repos, time.Now())

	stats := GetHomeStats(repos)
	assert.Equal(t, HomeStats{Posts: 2, Resources: 1, Subscribers: 1}, stats)
}
