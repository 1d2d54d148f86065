package newsletter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ManuelReschke/Folio/app/models"
	"github.com/ManuelReschke/Folio/app/repository"
	"github.com/ManuelReschke/Folio/internal/pkg/testdb"
)

func newTestService(t *testing.T) (*Service, repository.SubscriberRepository) {
	t.Helper()
	repo := repository.NewSubscriberRepository(testdb.Open(t))
	return NewService(repo), repo
}

// recordingRepo fails the test on any datastore access
type recordingRepo struct {
	repository.SubscriberRepository
	calls int
}

func (r *recordingRepo) GetByEmail(string) (*models.Subscriber, error) {
	r.calls++
	return nil, gorm.ErrRecordNotFound
}

func (r *recordingRepo) Create(*models.Subscriber) error {
	r.calls++
	return nil
}

// racingRepo simulates another request inserting the address between lookup and insert
type racingRepo struct {
	repository.SubscriberRepository
}

func (racingRepo) GetByEmail(string) (*models.Subscriber, error) {
	return nil, gorm.ErrRecordNotFound
}

func (racingRepo) Create(*models.Subscriber) error {
	return gorm.ErrDuplicatedKey
}

func TestSubscribe_NewAddress(t *testing.T) {
	svc, repo := newTestService(t)

	res, err := svc.Subscribe("  ada@example.com ")
	require.NoError(t, err)
	assert.Equal(t, MessageSubscribed, res.Message)
	assert.False(t, res.Reactivated)

	stored, err := repo.GetByEmail("ada@example.com")
	require.NoError(t, err)
	assert.True(t, stored.IsActive)
}

func TestSubscribe_AlreadyActive(t *testing.T) {
	svc, repo := newTestService(t)

	_, err := svc.Subscribe("ada@example.com")
	require.NoError(t, err)

	_, err = svc.Subscribe("ada@example.com")
	assert.ErrorIs(t, err, ErrAlreadySubscribed)
	assert.Equal(t, "Email is already subscribed", err.Error())

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSubscribe_EmailMatchIsExact(t *testing.T) {
	svc, repo := newTestService(t)

	_, err := svc.Subscribe("ada@example.com")
	require.NoError(t, err)

	res, err := svc.Subscribe("Ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, MessageSubscribed, res.Message)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestSubscribe_ReactivatesInactive(t *testing.T) {
	svc, repo := newTestService(t)

	res, err := svc.Subscribe("ada@example.com")
	require.NoError(t, err)
	require.NoError(t, svc.Deactivate(res.Subscriber.ID))

	stored, err := repo.GetByEmail("ada@example.com")
	require.NoError(t, err)
	assert.False(t, stored.IsActive)

	res, err = svc.Subscribe("ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, MessageReactivated, res.Message)
	assert.True(t, res.Reactivated)

	stored, err = repo.GetByEmail("ada@example.com")
	require.NoError(t, err)
	assert.True(t, stored.IsActive)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSubscribe_InvalidEmailNeverTouchesDatastore(t *testing.T) {
	repo := &recordingRepo{}
	svc := NewService(repo)

	for _, email := range []string{"", "   ", "not-an-email"} {
		_, err := svc.Subscribe(email)
		assert.ErrorIs(t, err, ErrInvalidEmail, email)
	}
	assert.Zero(t, repo.calls)
}

func TestSubscribe_ConcurrentInsertIsAlreadySubscribed(t *testing.T) {
	svc := NewService(racingRepo{})

	_, err := svc.Subscribe("ada@example.com")
	assert.ErrorIs(t, err, ErrAlreadySubscribed)
}

func TestSubscribe_UniqueIndexOnEmail(t *testing.T) {
	_, repo := newTestService(t)

	require.NoError(t, repo.Create(&models.Subscriber{Email: "ada@example.com", IsActive: true}))
	err := repo.Create(&models.Subscriber{Email: "ada@example.com", IsActive: true})
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestDeactivate_Unknown(t *testing.T) {
	svc, _ := newTestService(t)

	assert.ErrorIs(t, svc.Deactivate(42), ErrSubscriberNotFound)
}

func TestList(t *testing.T) {
	svc, repo := newTestService(t)

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		_, err := svc.Subscribe(email)
		require.NoError(t, err)
	}
	res, err := repo.GetByEmail("b@example.com")
	require.NoError(t, err)
	require.NoError(t, svc.Deactivate(res.ID))

	items, total, err := svc.List(1, 2)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, int64(3), total)

	active, err := repo.CountActive()
	require.NoError(t, err)
	assert.Equal(t, int64(2), active)
}
