package postgre

import (
	"context"
	"database/sql"
	"errors"

	"reporting-srv/internal/appuser/repository"
	"reporting-srv/internal/model"
)

// GetAppUser - load the user and the permission codes of all its roles.
func (r *implRepository) GetAppUser(ctx context.Context, opts repository.GetAppUserOptions) (model.AppUser, error) {
	query, args, err := r.buildGetAppUserQuery(opts.UserID).ToSql()
	if err != nil {
		return model.AppUser{}, err
	}

	var u model.AppUser
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.Username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.AppUser{}, repository.ErrUserNotFound
		}
		r.l.Errorf(ctx, "appuser.repository.postgre.GetAppUser: Failed to get user: %v", err)
		return model.AppUser{}, err
	}

	query, args, err = r.buildPermissionsQuery(opts.UserID).ToSql()
	if err != nil {
		return model.AppUser{}, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "appuser.repository.postgre.GetAppUser: Failed to list permissions: %v", err)
		return model.AppUser{}, err
	}
	defer rows.Close()

	u.Permissions = make([]string, 0)
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			r.l.Errorf(ctx, "appuser.repository.postgre.GetAppUser: Failed to scan permission: %v", err)
			return model.AppUser{}, err
		}
		u.Permissions = append(u.Permissions, code)
	}
	if err := rows.Err(); err != nil {
		return model.AppUser{}, err
	}

	return u, nil
}
