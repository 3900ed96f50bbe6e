package http

import (
	"context"
	"net/http"
)

// DefaultUserID is used when no identity header is present, so the demo
// works without any auth setup.
const DefaultUserID = "demo"

// MockAuthMiddleware simulates authentication (replace with real JWT validation).
// The user id comes from the X-User-ID header; every id gets its own session.
func MockAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-ID")
		if userID == "" {
			userID = DefaultUserID
		}

		ctx := context.WithValue(r.Context(), "user_id", userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getUserIDFromContext(ctx context.Context) string {
	if userID, ok := ctx.Value("user_id").(string); ok {
		return userID
	}
	return ""
}
