package handlers

import (
	"net/http"
	"net/url"
	"strings"

	authpkg "github.com/tjtrack/tjtrack-web/auth"
	"github.com/tjtrack/tjtrack-web/internal/api"
	"github.com/tjtrack/tjtrack-web/internal/models"
	"github.com/tjtrack/tjtrack-web/validation"
)

// AuthHandler owns the login, registration, OTP and password-reset screens.
type AuthHandler struct {
	*Base
}

func NewAuthHandler(b *Base) *AuthHandler { return &AuthHandler{Base: b} }

func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if authpkg.SessionFromContext(r.Context()).IsAuthenticated() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render(w, r, "auth/login.html", nil)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req := models.AuthRequest{
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
	}

	v := make(validation.Violations)
	validation.Required("email", req.Email, v)
	validation.Email("email", req.Email, v)
	validation.Required("password", req.Password, v)
	if !v.Empty() {
		h.render(w, r, "auth/login.html", map[string]any{"Email": req.Email, "Errors": v})
		return
	}

	resp, err := h.API.Login(r.Context(), req)
	if err != nil {
		// a 401 on the login form itself is wrong credentials, not an
		// expired session
		if api.IsUnauthorized(err) || api.IsValidation(err) {
			h.render(w, r, "auth/login.html", map[string]any{
				"Email": req.Email, "Error": "login_failed",
			})
			return
		}
		h.render(w, r, "auth/login.html", map[string]any{
			"Email": req.Email, "Error": errorCode(err),
		})
		return
	}

	profile, err := h.API.Profile(api.WithToken(r.Context(), resp.Token), req.Email)
	if err != nil {
		h.render(w, r, "auth/login.html", map[string]any{
			"Email": req.Email, "Error": errorCode(err),
		})
		return
	}

	sid, err := h.Sessions.Login(resp.Token, profile)
	if err != nil {
		h.Log.Errorw("session create failed", "err", err)
		h.render(w, r, "auth/login.html", map[string]any{
			"Email": req.Email, "Error": "server_error",
		})
		return
	}
	h.Cookies.CreateSession(w, sid)
	h.Cache.Reset()

	if profile.HasRole(models.RoleAdmin) || profile.HasRole(models.RoleManager) ||
		profile.HasRole(models.RoleCommercant) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "auth/register.html", map[string]any{"Role": models.RoleClient})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	req := models.ProfileRequest{
		Name:     strings.TrimSpace(r.FormValue("name")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
		Role:     r.FormValue("role"),
	}

	v := make(validation.Violations)
	validation.Required("name", req.Name, v)
	validation.Required("email", req.Email, v)
	validation.Email("email", req.Email, v)
	validation.Required("password", req.Password, v)
	validation.MinLen("password", req.Password, 8, v)
	validation.FieldsMatch("confirmPassword", req.Password, r.FormValue("confirmPassword"), v)
	validation.Phone("phoneNumber", r.FormValue("phoneNumber"), v)

	switch req.Role {
	case models.RoleCommercant:
		req.MerchantInfo = &models.MerchantInfo{
			ShopName:    strings.TrimSpace(r.FormValue("shopName")),
			Town:        strings.TrimSpace(r.FormValue("town")),
			Address:     strings.TrimSpace(r.FormValue("address")),
			PhoneNumber: strings.TrimSpace(r.FormValue("phoneNumber")),
		}
		validation.Required("shopName", req.MerchantInfo.ShopName, v)
	case models.RoleFournisseur:
		req.SupplierInfo = &models.SupplierInfo{
			ShopName:    strings.TrimSpace(r.FormValue("shopName")),
			Town:        strings.TrimSpace(r.FormValue("town")),
			Address:     strings.TrimSpace(r.FormValue("address")),
			PhoneNumber: strings.TrimSpace(r.FormValue("phoneNumber")),
		}
		validation.Required("shopName", req.SupplierInfo.ShopName, v)
	case models.RoleLivreur:
		req.DeliveryInfo = &models.DeliveryInfo{
			Town:        strings.TrimSpace(r.FormValue("town")),
			Address:     strings.TrimSpace(r.FormValue("address")),
			PhoneNumber: strings.TrimSpace(r.FormValue("phoneNumber")),
		}
	default:
		req.Role = models.RoleClient
		req.ClientInfo = &models.ClientInfo{
			Town:        strings.TrimSpace(r.FormValue("town")),
			Address:     strings.TrimSpace(r.FormValue("address")),
			PhoneNumber: strings.TrimSpace(r.FormValue("phoneNumber")),
		}
	}

	if !v.Empty() {
		h.render(w, r, "auth/register.html", map[string]any{"Form": req, "Role": req.Role, "Errors": v})
		return
	}

	if err := h.API.Register(r.Context(), req); err != nil {
		h.render(w, r, "auth/register.html", map[string]any{
			"Form": req, "Role": req.Role, "Error": errorCode(err),
		})
		return
	}

	// account created; the verification code goes out next
	if err := h.API.SendOTP(r.Context(), req.Email); err != nil {
		h.Log.Warnw("send otp failed", "err", err)
	}
	setFlash(w, "success", "otp_sent")
	http.Redirect(w, r, "/verify?email="+url.QueryEscape(req.Email), http.StatusSeeOther)
}

func (h *AuthHandler) VerifyForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "auth/verify.html", map[string]any{"Email": r.URL.Query().Get("email")})
}

func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	otp := strings.TrimSpace(r.FormValue("otp"))

	v := make(validation.Violations)
	validation.Required("email", email, v)
	validation.Required("otp", otp, v)
	if !v.Empty() {
		h.render(w, r, "auth/verify.html", map[string]any{"Email": email, "Errors": v})
		return
	}

	resp, err := h.API.RegisterOTP(r.Context(), email, otp)
	if err != nil {
		h.render(w, r, "auth/verify.html", map[string]any{"Email": email, "Error": "otp_invalid"})
		return
	}

	if resp.Token == "" {
		// verified but not yet approved by an admin
		setFlash(w, "success", "pending_account")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	profile, err := h.API.Profile(api.WithToken(r.Context(), resp.Token), email)
	if err != nil {
		setFlash(w, "success", "pending_account")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if sid, err := h.Sessions.Login(resp.Token, profile); err == nil {
		h.Cookies.CreateSession(w, sid)
		h.Cache.Reset()
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) ForgotForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "auth/forgot.html", nil)
}

func (h *AuthHandler) SendResetOTP(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))

	v := make(validation.Violations)
	validation.Required("email", email, v)
	validation.Email("email", email, v)
	if !v.Empty() {
		h.render(w, r, "auth/forgot.html", map[string]any{"Email": email, "Errors": v})
		return
	}

	if err := h.API.SendResetOTP(r.Context(), email); err != nil {
		h.render(w, r, "auth/forgot.html", map[string]any{"Email": email, "Error": errorCode(err)})
		return
	}
	setFlash(w, "success", "otp_sent")
	http.Redirect(w, r, "/reset-password?email="+url.QueryEscape(email), http.StatusSeeOther)
}

func (h *AuthHandler) ResetForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "auth/reset.html", map[string]any{"Email": r.URL.Query().Get("email")})
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	req := models.ResetPasswordRequest{
		Email:       strings.TrimSpace(r.FormValue("email")),
		OTP:         strings.TrimSpace(r.FormValue("otp")),
		NewPassword: r.FormValue("newPassword"),
	}

	v := make(validation.Violations)
	validation.Required("email", req.Email, v)
	validation.Required("otp", req.OTP, v)
	validation.Required("newPassword", req.NewPassword, v)
	validation.MinLen("newPassword", req.NewPassword, 8, v)
	validation.FieldsMatch("confirmPassword", req.NewPassword, r.FormValue("confirmPassword"), v)
	if !v.Empty() {
		h.render(w, r, "auth/reset.html", map[string]any{"Email": req.Email, "Errors": v})
		return
	}

	if err := h.API.ResetPassword(r.Context(), req); err != nil {
		h.render(w, r, "auth/reset.html", map[string]any{"Email": req.Email, "Error": "otp_invalid"})
		return
	}
	setFlash(w, "success", "reset_done")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Logout destroys the local session; the API keeps its own state.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.expireSession(w, r)
	setFlash(w, "success", "logged_out")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// ProfilePage shows the signed-in user's profile, refreshed from the API.
func (h *AuthHandler) ProfilePage(w http.ResponseWriter, r *http.Request) {
	sess := authpkg.SessionFromContext(r.Context())
	profile, err := h.API.Profile(api.WithToken(r.Context(), sess.Token), sess.User.Email)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.Sessions.UpdateUser(sess.ID, profile); err != nil {
		h.Log.Warnw("profile refresh not persisted", "err", err)
	}
	h.render(w, r, "auth/profile.html", map[string]any{"Profile": profile})
}
