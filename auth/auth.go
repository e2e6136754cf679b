// Package auth binds the browser to a stored session via an HMAC-signed
// cookie. The cookie only carries the session id; the token and profile live
// in the session store.
package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"github.com/tjtrack/tjtrack-web/internal/session"
)

type ctxKey string

const (
	sessionCookieName = "tj_session"
	sessionCtxKey     = ctxKey("session")
)

// Cookies carries the signing secret and the session store. One instance is
// created in main and shared by the middleware and the auth handlers.
type Cookies struct {
	Secret string
	Store  *session.Store
}

func (c *Cookies) sign(sid string) string {
	mac := hmac.New(sha256.New, []byte(c.Secret))
	mac.Write([]byte(sid))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// CreateSession sets the signed session cookie.
func (c *Cookies) CreateSession(w http.ResponseWriter, sid string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sid + "." + c.sign(sid),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(14 * 24 * time.Hour),
	})
}

// ClearSession deletes the session cookie.
func (c *Cookies) ClearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name: sessionCookieName, Value: "", Path: "/",
		Expires: time.Unix(0, 0), HttpOnly: true, SameSite: http.SameSiteLaxMode,
	})
}

// ParseSession validates the cookie signature and returns the session id.
func (c *Cookies) ParseSession(r *http.Request) (string, bool) {
	ck, err := r.Cookie(sessionCookieName)
	if err != nil || ck.Value == "" {
		return "", false
	}
	parts := strings.Split(ck.Value, ".")
	if len(parts) != 2 {
		return "", false
	}
	sid, sig := parts[0], parts[1]
	if !hmac.Equal([]byte(sig), []byte(c.sign(sid))) {
		return "", false
	}
	return sid, true
}

// WithSession stores the hydrated session in the context.
func WithSession(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey, sess)
}

// SessionFromContext extracts the session; nil means unauthenticated.
func SessionFromContext(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(sessionCtxKey).(*session.Session)
	return sess
}

// Middleware resolves the cookie through the store and attaches the session
// to the request context when present and intact.
func (c *Cookies) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sid, ok := c.ParseSession(r); ok {
			if sess := c.Store.Get(sid); sess.IsAuthenticated() {
				r = r.WithContext(WithSession(r.Context(), sess))
			}
		}
		next.ServeHTTP(w, r)
	})
}
