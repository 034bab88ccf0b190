package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"reporting-srv/internal/appuser"
	"reporting-srv/internal/appuser/repository"
	"reporting-srv/internal/model"
	"reporting-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepo struct{ mock.Mock }

func (m *mockRepo) GetAppUser(ctx context.Context, opts repository.GetAppUserOptions) (model.AppUser, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(model.AppUser), args.Error(1)
}

type mockCache struct{ mock.Mock }

func (m *mockCache) GetAppUser(ctx context.Context, userID int64) (model.AppUser, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.AppUser), args.Error(1)
}

func (m *mockCache) SaveAppUser(ctx context.Context, opts repository.SaveAppUserOptions) error {
	return m.Called(ctx, opts).Error(0)
}

func (m *mockCache) DeleteAppUser(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *mockCache) DeleteAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

var sc = model.Scope{UserID: "7", Username: "mifos"}

func TestAuthenticatedUser_CacheHit(t *testing.T) {
	repo, cache := &mockRepo{}, &mockCache{}
	want := model.AppUser{ID: 7, Username: "mifos", Permissions: []string{"ALL_FUNCTIONS"}}
	cache.On("GetAppUser", mock.Anything, int64(7)).Return(want, nil)

	uc := New(repo, cache, log.NewNop(), Config{})
	got, err := uc.AuthenticatedUser(context.Background(), sc)

	require.NoError(t, err)
	assert.Equal(t, want, got)
	repo.AssertNotCalled(t, "GetAppUser", mock.Anything, mock.Anything)
}

func TestAuthenticatedUser_CacheMissLoadsAndStores(t *testing.T) {
	repo, cache := &mockRepo{}, &mockCache{}
	want := model.AppUser{ID: 7, Username: "mifos", Permissions: []string{"CAN_RUN_Client Listing"}}
	cache.On("GetAppUser", mock.Anything, int64(7)).Return(model.AppUser{}, repository.ErrCacheMiss)
	repo.On("GetAppUser", mock.Anything, repository.GetAppUserOptions{UserID: 7}).Return(want, nil)
	cache.On("SaveAppUser", mock.Anything, repository.SaveAppUserOptions{User: want, TTL: time.Minute}).Return(nil)

	uc := New(repo, cache, log.NewNop(), Config{PermissionsTTL: time.Minute})
	got, err := uc.AuthenticatedUser(context.Background(), sc)

	require.NoError(t, err)
	assert.Equal(t, want, got)
	cache.AssertExpectations(t)
}

func TestAuthenticatedUser_CacheErrorFallsBack(t *testing.T) {
	repo, cache := &mockRepo{}, &mockCache{}
	want := model.AppUser{ID: 7}
	cache.On("GetAppUser", mock.Anything, int64(7)).Return(model.AppUser{}, errors.New("redis down"))
	repo.On("GetAppUser", mock.Anything, mock.Anything).Return(want, nil)
	cache.On("SaveAppUser", mock.Anything, mock.Anything).Return(errors.New("redis down"))

	uc := New(repo, cache, log.NewNop(), Config{})
	got, err := uc.AuthenticatedUser(context.Background(), sc)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAuthenticatedUser_NotFound(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetAppUser", mock.Anything, mock.Anything).Return(model.AppUser{}, repository.ErrUserNotFound)

	uc := New(repo, nil, log.NewNop(), Config{})
	_, err := uc.AuthenticatedUser(context.Background(), sc)
	assert.ErrorIs(t, err, appuser.ErrUserNotFound)
}

func TestAuthenticatedUser_BadScope(t *testing.T) {
	uc := New(&mockRepo{}, nil, log.NewNop(), Config{})

	_, err := uc.AuthenticatedUser(context.Background(), model.Scope{})
	assert.ErrorIs(t, err, appuser.ErrUnauthenticated)

	_, err = uc.AuthenticatedUser(context.Background(), model.Scope{UserID: "abc"})
	assert.ErrorIs(t, err, appuser.ErrUnauthenticated)
}

func TestEvictPermissions(t *testing.T) {
	cache := &mockCache{}
	cache.On("DeleteAppUser", mock.Anything, int64(7)).Return(nil)
	cache.On("DeleteAll", mock.Anything).Return(3, nil)

	uc := New(&mockRepo{}, cache, log.NewNop(), Config{})

	n, err := uc.EvictPermissions(context.Background(), appuser.EvictPermissionsInput{UserID: 7})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = uc.EvictPermissions(context.Background(), appuser.EvictPermissionsInput{})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
