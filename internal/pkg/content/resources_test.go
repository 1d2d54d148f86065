package content

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/Folio/app/models"
)

func boolPtr(b bool) *bool { return &b }

func validResource(title string) ResourceInput {
	return ResourceInput{
		Title:       title,
		Description: "Notes for the course",
		Category:    models.CategoryLectureMaterials,
		Topics:      []string{"statistics", " ", "python"},
		DownloadURL: "https://files.example.com/notes.pdf",
		Status:      models.StatusPublished,
	}
}

func TestCreateResource_Defaults(t *testing.T) {
	svc, repos, _ := newTestService(t)

	res, err := svc.CreateResource(validResource("Intro to Statistics"))
	require.NoError(t, err)

	stored, err := repos.Resource.GetByID(res.ID)
	require.NoError(t, err)
	assert.Equal(t, "intro-to-statistics", stored.Slug)
	assert.True(t, stored.IsFree)
	assert.Equal(t, []string{"statistics", "python"}, stored.Topics)
	assert.Equal(t, int64(0), stored.Views)
	assert.Equal(t, int64(0), stored.Downloads)
	require.NotNil(t, stored.PublishedAt)
}

func TestCreateResource_PaidIsStored(t *testing.T) {
	svc, repos, _ := newTestService(t)

	in := validResource("Paid Program")
	in.IsFree = boolPtr(false)
	res, err := svc.CreateResource(in)
	require.NoError(t, err)

	stored, err := repos.Resource.GetByID(res.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsFree)
}

func TestCreateResource_UnknownCategory(t *testing.T) {
	svc, _, _ := newTestService(t)

	in := validResource("Odd")
	in.Category = "Podcasts"
	_, err := svc.CreateResource(in)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields(), "Category")
}

func TestCreateResource_DuplicateSlug(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CreateResource(validResource("Same Title"))
	require.NoError(t, err)
	_, err = svc.CreateResource(validResource("Same title"))
	assert.ErrorIs(t, err, ErrDuplicateSlug)
}

func TestDeleteResource_RemovesOnlyThatRow(t *testing.T) {
	svc, repos, _ := newTestService(t)

	var ids []uint
	for _, title := range []string{"Notes A", "Notes B", "Notes C"} {
		res, err := svc.CreateResource(validResource(title))
		require.NoError(t, err)
		ids = append(ids, res.ID)
	}
	before, err := repos.Resource.Count()
	require.NoError(t, err)

	require.NoError(t, svc.DeleteResource(ids[0]))

	after, err := repos.Resource.Count()
	require.NoError(t, err)
	assert.Equal(t, before-1, after)

	_, err = svc.GetResource(ids[0])
	assert.ErrorIs(t, err, ErrNotFound)
	for _, id := range ids[1:] {
		kept, err := svc.GetResource(id)
		require.NoError(t, err)
		assert.Equal(t, id, kept.ID)
	}

	assert.ErrorIs(t, svc.DeleteResource(ids[0]), ErrNotFound)
}

func TestUpdateResource_PreservesCounters(t *testing.T) {
	svc, repos, _ := newTestService(t)

	res, err := svc.CreateResource(validResource("Counted"))
	require.NoError(t, err)
	_, _, err = svc.DownloadResource(res.ID)
	require.NoError(t, err)
	_, err = svc.VisitResource(res.ID)
	require.NoError(t, err)

	in := validResource("Counted")
	in.Description = "Updated"
	_, err = svc.UpdateResource(res.ID, in)
	require.NoError(t, err)

	stored, err := repos.Resource.GetByID(res.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated", stored.Description)
	assert.Equal(t, int64(1), stored.Views)
	assert.Equal(t, int64(1), stored.Downloads)
	assert.True(t, stored.IsFree)
}

func TestUpdateResource_SlugConflict(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CreateResource(validResource("First"))
	require.NoError(t, err)
	second, err := svc.CreateResource(validResource("Second"))
	require.NoError(t, err)

	in := validResource("Second")
	in.Slug = "first"
	_, err = svc.UpdateResource(second.ID, in)
	assert.ErrorIs(t, err, ErrDuplicateSlug)
}

func TestDownloadResource(t *testing.T) {
	svc, _, _ := newTestService(t)

	res, err := svc.CreateResource(validResource("Slides"))
	require.NoError(t, err)

	url, downloads, err := svc.DownloadResource(res.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://files.example.com/notes.pdf", url)
	assert.Equal(t, int64(1), downloads)

	_, downloads, err = svc.DownloadResource(res.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), downloads)

	_, _, err = svc.DownloadResource(12345)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDownloadResource_HiddenOrWithoutLink(t *testing.T) {
	svc, _, _ := newTestService(t)

	draft := validResource("Draft")
	draft.Status = models.StatusDraft
	res, err := svc.CreateResource(draft)
	require.NoError(t, err)
	_, _, err = svc.DownloadResource(res.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	noLink := validResource("Website Only")
	noLink.DownloadURL = ""
	noLink.WebsiteURL = "https://example.com/course"
	res, err = svc.CreateResource(noLink)
	require.NoError(t, err)
	_, _, err = svc.DownloadResource(res.ID)
	assert.ErrorIs(t, err, ErrNoLink)

	target, err := svc.VisitResource(res.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/course", target)
}

func TestListVisibleResources_FeaturedFirstAndCategory(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CreateResource(validResource("Plain"))
	require.NoError(t, err)
	featured := validResource("Featured")
	featured.IsFeatured = true
	_, err = svc.CreateResource(featured)
	require.NoError(t, err)
	mentor := validResource("Mentor")
	mentor.Category = models.CategoryMentorshipPrograms
	_, err = svc.CreateResource(mentor)
	require.NoError(t, err)

	all, err := svc.ListVisibleResources("")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "featured", all[0].Slug)

	lectures, err := svc.ListVisibleResources(models.CategoryLectureMaterials)
	require.NoError(t, err)
	assert.Len(t, lectures, 2)
}
