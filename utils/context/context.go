package context

import (
	"context"

	"github.com/kariago/kariago-backend/constant"
)

// GetUserID returns the authenticated user's hex id set by the auth middleware.
func GetUserID(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
