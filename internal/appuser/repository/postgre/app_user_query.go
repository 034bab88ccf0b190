package postgre

import (
	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildGetAppUserQuery - enabled users only.
func (r *implRepository) buildGetAppUserQuery(userID int64) sq.SelectBuilder {
	return psql.
		Select("u.id", "u.username").
		From("m_appuser u").
		Where(sq.Eq{"u.id": userID}).
		Where("u.enabled = TRUE")
}

// buildPermissionsQuery - permission codes granted through any role of the user.
func (r *implRepository) buildPermissionsQuery(userID int64) sq.SelectBuilder {
	return psql.
		Select("DISTINCT p.code").
		From("m_permission p").
		Join("m_role_permission rp ON rp.permission_id = p.id").
		Join("m_appuser_role ur ON ur.role_id = rp.role_id").
		Where(sq.Eq{"ur.appuser_id": userID}).
		OrderBy("p.code")
}
