package usecase

import (
	"context"
	"errors"
	"strconv"

	"reporting-srv/internal/appuser"
	"reporting-srv/internal/appuser/repository"
	"reporting-srv/internal/model"
)

func (uc *implUseCase) AuthenticatedUser(ctx context.Context, sc model.Scope) (model.AppUser, error) {
	if !sc.IsAuthenticated() {
		return model.AppUser{}, appuser.ErrUnauthenticated
	}
	userID, err := strconv.ParseInt(sc.UserID, 10, 64)
	if err != nil || userID <= 0 {
		uc.l.Warnf(ctx, "appuser.usecase.AuthenticatedUser: invalid user id %q", sc.UserID)
		return model.AppUser{}, appuser.ErrUnauthenticated
	}

	if uc.cache != nil {
		u, err := uc.cache.GetAppUser(ctx, userID)
		if err == nil {
			return u, nil
		}
		if !errors.Is(err, repository.ErrCacheMiss) {
			uc.l.Warnf(ctx, "appuser.usecase.AuthenticatedUser: cache read failed, falling back to database: %v", err)
		}
	}

	u, err := uc.repo.GetAppUser(ctx, repository.GetAppUserOptions{UserID: userID})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AppUser{}, appuser.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "appuser.usecase.AuthenticatedUser: repo.GetAppUser failed: %v", err)
		return model.AppUser{}, err
	}

	if uc.cache != nil {
		if err := uc.cache.SaveAppUser(ctx, repository.SaveAppUserOptions{User: u, TTL: uc.config.PermissionsTTL}); err != nil {
			uc.l.Warnf(ctx, "appuser.usecase.AuthenticatedUser: cache write failed: %v", err)
		}
	}

	return u, nil
}

func (uc *implUseCase) EvictPermissions(ctx context.Context, input appuser.EvictPermissionsInput) (int, error) {
	if uc.cache == nil {
		return 0, nil
	}
	if input.UserID > 0 {
		if err := uc.cache.DeleteAppUser(ctx, input.UserID); err != nil {
			uc.l.Errorf(ctx, "appuser.usecase.EvictPermissions: cache.DeleteAppUser failed: %v", err)
			return 0, err
		}
		return 1, nil
	}

	n, err := uc.cache.DeleteAll(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "appuser.usecase.EvictPermissions: cache.DeleteAll failed: %v", err)
		return 0, err
	}
	return n, nil
}
