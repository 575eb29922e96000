package constant

type contextKey int

const (
	// UserIDKey carries the authenticated user's hex id in a request context.
	UserIDKey contextKey = iota
)
