// Package handlers contains the HTTP handlers for every screen: storefront,
// authentication and the back-office resource pages. Handlers read from the
// TJ-Track API through the snapshot cache and render html/template pages.
package handlers

import (
	"context"
	"encoding/base64"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/tjtrack/tjtrack-web/auth"
	"github.com/tjtrack/tjtrack-web/i18n"
	"github.com/tjtrack/tjtrack-web/internal/api"
	"github.com/tjtrack/tjtrack-web/internal/cache"
	"github.com/tjtrack/tjtrack-web/internal/cart"
	"github.com/tjtrack/tjtrack-web/internal/session"
	"github.com/tjtrack/tjtrack-web/internal/table"
	"github.com/tjtrack/tjtrack-web/view"
)

const flashCookieName = "tj_flash"

// Base carries the dependencies shared by every handler.
type Base struct {
	API      *api.Client
	Sessions *session.Store
	Cookies  *auth.Cookies
	Cache    *cache.Store
	Cart     *cart.Synchronizer
	Log      *zap.SugaredLogger
}

// Flash is a one-shot message displayed on the next rendered page.
type Flash struct {
	Level string // "success" or "error"
	Code  string // i18n message code
}

func setFlash(w http.ResponseWriter, level, code string) {
	v := base64.RawURLEncoding.EncodeToString([]byte(level + "|" + code))
	http.SetCookie(w, &http.Cookie{
		Name: flashCookieName, Value: v, Path: "/",
		HttpOnly: true, SameSite: http.SameSiteLaxMode,
	})
}

func popFlash(w http.ResponseWriter, r *http.Request) *Flash {
	ck, err := r.Cookie(flashCookieName)
	if err != nil || ck.Value == "" {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name: flashCookieName, Value: "", Path: "/", MaxAge: -1,
		HttpOnly: true, SameSite: http.SameSiteLaxMode,
	})
	raw, err := base64.RawURLEncoding.DecodeString(ck.Value)
	if err != nil {
		return nil
	}
	parts := strings.SplitN(string(raw), "|", 2)
	if len(parts) != 2 {
		return nil
	}
	return &Flash{Level: parts[0], Code: parts[1]}
}

// render injects the data every page expects (session, cart badge, flash)
// and hands off to the view engine.
func (b *Base) render(w http.ResponseWriter, r *http.Request, name string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	sess := auth.SessionFromContext(r.Context())
	data["IsLoggedIn"] = sess.IsAuthenticated()
	if sess.IsAuthenticated() {
		data["User"] = sess.User
		if b.Cart != nil {
			data["CartCount"] = b.Cart.ItemCount(r.Context(), sess)
		}
	}
	if _, ok := data["Flash"]; !ok {
		if f := popFlash(w, r); f != nil {
			data["Flash"] = f
		}
	}
	if err := view.Render(w, r, name, data); err != nil {
		b.Log.Errorw("render failed", "template", name, "err", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// authCtx returns the request context with the session token attached, for
// calls to protected API endpoints.
func authCtx(r *http.Request) context.Context {
	ctx := r.Context()
	if sess := auth.SessionFromContext(ctx); sess.IsAuthenticated() {
		return api.WithToken(ctx, sess.Token)
	}
	return ctx
}

// expireSession tears the whole local session down: store row, cookie and
// cached snapshots.
func (b *Base) expireSession(w http.ResponseWriter, r *http.Request) {
	if sess := auth.SessionFromContext(r.Context()); sess != nil {
		if err := b.Sessions.Logout(sess.ID); err != nil {
			b.Log.Warnw("session delete failed", "err", err)
		}
	}
	b.Cookies.ClearSession(w)
	b.Cache.Reset()
}

// errorCode maps a classified API error to the message shown to the user.
func errorCode(err error) string {
	var apiErr *api.Error
	switch {
	case api.IsNotFound(err):
		return "not_found"
	case api.IsValidation(err):
		if ok := asAPIError(err, &apiErr); ok && apiErr.Message != "" {
			return apiErr.Message
		}
		return "server_error"
	case api.IsNetwork(err):
		return "network_error"
	default:
		return "server_error"
	}
}

func asAPIError(err error, target **api.Error) bool {
	var e *api.Error
	if api.As(err, &e) {
		*target = e
		return true
	}
	return false
}

// fail renders a GET failure. A rejected token ends the session and sends
// the user back to the login form; everything else gets the error page.
func (b *Base) fail(w http.ResponseWriter, r *http.Request, err error) {
	if api.IsUnauthorized(err) {
		b.expireSession(w, r)
		setFlash(w, "error", "session_expired")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if api.IsNotFound(err) {
		b.render(w, r, "error.html", map[string]any{
			"Status": http.StatusNotFound, "Code": "not_found",
		})
		return
	}
	b.Log.Warnw("page load failed", "path", r.URL.Path, "err", err)
	b.render(w, r, "error.html", map[string]any{
		"Status": http.StatusBadGateway, "Code": errorCode(err),
	})
}

// failAction handles a POST failure by flashing the error and returning to
// backURL, except for rejected tokens which end the session.
func (b *Base) failAction(w http.ResponseWriter, r *http.Request, err error, backURL string) {
	if api.IsUnauthorized(err) {
		b.expireSession(w, r)
		setFlash(w, "error", "session_expired")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	b.Log.Warnw("action failed", "path", r.URL.Path, "err", err)
	setFlash(w, "error", errorCode(err))
	http.Redirect(w, r, backURL, http.StatusSeeOther)
}

// tableParams applies the q / size / page query parameters to a view table.
func tableParams[T any](t *table.Table[T], r *http.Request) {
	if q := r.URL.Query().Get("q"); q != "" {
		t.SetQuery(q)
	}
	if size, err := strconv.Atoi(r.URL.Query().Get("size")); err == nil {
		t.SetPageSize(size)
	}
	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		t.SetPage(page)
	}
}

// lang resolves the request language the same way the view layer does.
func lang(r *http.Request) string {
	return i18n.LangFromContext(r.Context())
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func formInt(r *http.Request, field string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(r.FormValue(field)))
	return n
}

func formFloat(r *http.Request, field string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(r.FormValue(field)), 64)
	return f
}

// optString returns nil for a blank form value so absent fields marshal as
// omitted JSON instead of empty strings.
func optString(r *http.Request, field string) *string {
	v := strings.TrimSpace(r.FormValue(field))
	if v == "" {
		return nil
	}
	return &v
}

func ptr[T any](v T) *T { return &v }

// money formats an optional amount for table cells.
func money(v *float64) string {
	if v == nil {
		return "0.00"
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}
