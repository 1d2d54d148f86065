package statistics

import (
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/ManuelReschke/Folio/app/models"
	"github.com/ManuelReschke/Folio/app/repository"
	"github.com/ManuelReschke/Folio/internal/pkg/cache"
)

const (
	CacheKeyPosts       = "statistics:posts:visible"
	CacheKeyResources   = "statistics:resources:visible"
	CacheKeySubscribers = "statistics:subscribers:active"
	CacheExpiration     = 30 * time.Minute
)

// HomeStats are the public totals shown on the home page
type HomeStats struct {
	Posts       int64
	Resources   int64
	Subscribers int64
}

// Dashboard holds the totals of the admin dashboard
type Dashboard struct {
	TotalPosts        int64
	PublishedPosts    int64
	DraftPosts        int64
	ScheduledPosts    int64
	TotalResources    int64
	ActiveSubscribers int64
	TotalSubscribers  int64
	TotalViews        int64
	TotalDownloads    int64
	RecentPosts       []models.Post
}

var (
	lastCacheUpdate     time.Time
	cacheUpdateMutex    sync.Mutex
	cacheUpdateInterval = 5 * time.Minute
)

// Collect reads the home page totals straight from the datastore. Posts and
// resources are counted the way the public listings see them, so scheduled
// rows that are due count before the sweep promotes them.
func Collect(repos *repository.Repositories) (HomeStats, error) {
	return collectAt(repos, time.Now())
}

func collectAt(repos *repository.Repositories, now time.Time) (HomeStats, error) {
	var stats HomeStats
	var err error

	if stats.Posts, err = repos.Post.CountVisible(now, repository.ListOptions{}); err != nil {
		return stats, fmt.Errorf("count visible posts: %w", err)
	}
	if stats.Resources, err = repos.Resource.CountVisible(now); err != nil {
		return stats, fmt.Errorf("count visible resources: %w", err)
	}
	if stats.Subscribers, err = repos.Subscriber.CountActive(); err != nil {
		return stats, fmt.Errorf("count active subscribers: %w", err)
	}
	return stats, nil
}

// CollectDashboard reads all admin dashboard figures
func CollectDashboard(repos *repository.Repositories, recent int) (Dashboard, error) {
	var d Dashboard
	var err error

	if d.TotalPosts, err = repos.Post.Count(); err != nil {
		return d, fmt.Errorf("count posts: %w", err)
	}
	if d.PublishedPosts, err = repos.Post.CountByStatus(models.StatusPublished); err != nil {
		return d, fmt.Errorf("count published posts: %w", err)
	}
	if d.DraftPosts, err = repos.Post.CountByStatus(models.StatusDraft); err != nil {
		return d, fmt.Errorf("count draft posts: %w", err)
	}
	if d.ScheduledPosts, err = repos.Post.CountByStatus(models.StatusScheduled); err != nil {
		return d, fmt.Errorf("count scheduled posts: %w", err)
	}
	if d.TotalResources, err = repos.Resource.Count(); err != nil {
		return d, fmt.Errorf("count resources: %w", err)
	}
	if d.ActiveSubscribers, err = repos.Subscriber.CountActive(); err != nil {
		return d, fmt.Errorf("count active subscribers: %w", err)
	}
	if d.TotalSubscribers, err = repos.Subscriber.Count(); err != nil {
		return d, fmt.Errorf("count subscribers: %w", err)
	}
	if d.TotalViews, err = repos.Post.SumViews(); err != nil {
		return d, fmt.Errorf("sum post views: %w", err)
	}
	if d.TotalDownloads, err = repos.Resource.SumDownloads(); err != nil {
		return d, fmt.Errorf("sum resource downloads: %w", err)
	}
	if d.RecentPosts, err = repos.Post.GetRecent(recent); err != nil {
		return d, fmt.Errorf("load recent posts: %w", err)
	}
	return d, nil
}

// ShouldUpdateCache reports whether the refresh interval has elapsed
func ShouldUpdateCache() bool {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()
	return time.Since(lastCacheUpdate) > cacheUpdateInterval
}

// UpdateCacheIfNeeded refreshes the cached totals once per interval
func UpdateCacheIfNeeded(repos *repository.Repositories) {
	if !ShouldUpdateCache() {
		return
	}
	if _, err := UpdateStatisticsCache(repos); err != nil {
		log.Errorf("[Statistics] Failed to refresh cache: %v", err)
	}
}

// ResetCacheUpdateTimer forces the next UpdateCacheIfNeeded to refresh
func ResetCacheUpdateTimer() {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()
	lastCacheUpdate = time.Time{}
}

// Invalidate drops the cached totals after content or subscriber mutations
func Invalidate() {
	ResetCacheUpdateTimer()
	if err := cache.Delete(CacheKeyPosts, CacheKeyResources, CacheKeySubscribers); err != nil {
		log.Warnf("[Statistics] Failed to invalidate cache: %v", err)
	}
}

// UpdateStatisticsCache recomputes and stores all home page totals
func UpdateStatisticsCache(repos *repository.Repositories) (HomeStats, error) {
	stats, err := Collect(repos)
	if err != nil {
		return stats, err
	}

	values := map[string]int64{
		CacheKeyPosts:       stats.Posts,
		CacheKeyResources:   stats.Resources,
		CacheKeySubscribers: stats.Subscribers,
	}
	for key, value := range values {
		if err := cache.Set(key, value, CacheExpiration); err != nil {
			return stats, fmt.Errorf("cache %s: %w", key, err)
		}
	}

	cacheUpdateMutex.Lock()
	lastCacheUpdate = time.Now()
	cacheUpdateMutex.Unlock()

	log.Infof("[Statistics] Cache updated: posts=%d resources=%d subscribers=%d",
		stats.Posts, stats.Resources, stats.Subscribers)
	return stats, nil
}

// GetHomeStats returns the cached totals, falling back to the datastore
func GetHomeStats(repos *repository.Repositories) HomeStats {
	UpdateCacheIfNeeded(repos)

	posts, errPosts := cache.GetInt64(CacheKeyPosts)
	resources, errResources := cache.GetInt64(CacheKeyResources)
	subscribers, errSubscribers := cache.GetInt64(CacheKeySubscribers)
	if errPosts == nil && errResources == nil && errSubscribers == nil {
		return HomeStats{Posts: posts, Resources: resources, Subscribers: subscribers}
	}
	for _, err := range []error{errPosts, errResources, errSubscribers} {
		if err != nil && !cache.IsMiss(err) {
			log.Warnf("[Statistics] Cache unavailable, counting in the datastore: %v", err)
			break
		}
	}

	stats, err := Collect(repos)
	if err != nil {
		log.Errorf("[Statistics] Failed to count totals: %v", err)
		return HomeStats{}
	}
	return stats
}
