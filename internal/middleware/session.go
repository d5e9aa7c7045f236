package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SessionCookieName is the cookie carrying the session token
const SessionCookieName = "session"

type contextKey string

const sessionTokenContextKey contextKey = "sessionToken"

// SessionToken extracts the session token from the request. The Authorization header wins
// over the cookie.
func SessionToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	cookie, err := r.Cookie(SessionCookieName)
	if err == nil {
		return cookie.Value
	}

	return ""
}

// SetSessionCookie stores a token in an HttpOnly cookie expiring with the session
func SetSessionCookie(w http.ResponseWriter, r *http.Request, token string, expiresAt time.Time, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// WithSessionToken records a validated token on the context
func WithSessionToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, sessionTokenContextKey, token)
}

// GetSessionToken returns the validated token stored by the auth middleware, if any
func GetSessionToken(ctx context.Context) string {
	token, _ := ctx.Value(sessionTokenContextKey).(string)
	return token
}
