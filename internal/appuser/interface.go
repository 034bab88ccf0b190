package appuser

import (
	"context"

	"reporting-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// AuthenticatedUser loads the caller of sc with the permission codes of all its roles.
	AuthenticatedUser(ctx context.Context, sc model.Scope) (model.AppUser, error)
	// EvictPermissions drops cached permissions of one user, or of every user when input.UserID is 0.
	EvictPermissions(ctx context.Context, input EvictPermissionsInput) (int, error)
}
