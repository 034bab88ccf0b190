package appuser

type EvictPermissionsInput struct {
	UserID int64
}
