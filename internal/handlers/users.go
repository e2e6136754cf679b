package handlers

import (
	"net/http"
	"strings"

	"github.com/tjtrack/tjtrack-web/internal/cache"
	"github.com/tjtrack/tjtrack-web/internal/models"
	"github.com/tjtrack/tjtrack-web/internal/table"
)

// UsersHandler is the admin account-review screen: all accounts plus the
// approval queue.
type UsersHandler struct {
	*Base
}

func NewUsersHandler(b *Base) *UsersHandler { return &UsersHandler{Base: b} }

func userColumns() []table.Column[models.ProfileResponse] {
	return []table.Column[models.ProfileResponse]{
		{Key: "name", Header: "Nom"},
		{Key: "email", Header: "Email"},
		{Header: "Rôles", Render: func(p models.ProfileResponse) string {
			if len(p.Roles) == 0 {
				return table.Placeholder
			}
			return strings.Join(p.Roles, ", ")
		}},
		{Header: "Vérifié", Render: func(p models.ProfileResponse) string {
			if p.IsAccountVerified {
				return "oui"
			}
			return "non"
		}},
		{Header: "Approuvé", Render: func(p models.ProfileResponse) string {
			if p.IsApproved {
				return "oui"
			}
			return "non"
		}},
	}
}

func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := cache.Get(authCtx(r), h.Cache, "users", h.API.AllUsers)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	t := table.New(userColumns())
	t.SetRecords(users)
	tableParams(t, r)

	h.render(w, r, "admin/users.html", map[string]any{"Table": t.View()})
}

func (h *UsersHandler) Pending(w http.ResponseWriter, r *http.Request) {
	users, err := cache.Get(authCtx(r), h.Cache, "users/pending", h.API.PendingUsers)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	t := table.New(userColumns())
	t.HasActions = true
	t.SetRecords(users)
	tableParams(t, r)

	h.render(w, r, "admin/pending.html", map[string]any{"Table": t.View()})
}

func (h *UsersHandler) Approve(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if userID == "" {
		http.NotFound(w, r)
		return
	}
	if err := h.API.ApproveUser(authCtx(r), userID); err != nil {
		h.failAction(w, r, err, "/admin/users/pending")
		return
	}
	h.Cache.Invalidate("users")
	setFlash(w, "success", "user_approved")
	http.Redirect(w, r, "/admin/users/pending", http.StatusSeeOther)
}

func (h *UsersHandler) Reject(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if userID == "" {
		http.NotFound(w, r)
		return
	}
	if err := h.API.RejectUser(authCtx(r), userID); err != nil {
		h.failAction(w, r, err, "/admin/users/pending")
		return
	}
	h.Cache.Invalidate("users")
	setFlash(w, "success", "user_rejected")
	http.Redirect(w, r, "/admin/users/pending", http.StatusSeeOther)
}
