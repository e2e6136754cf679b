package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	authpkg "github.com/tjtrack/tjtrack-web/auth"
	"github.com/tjtrack/tjtrack-web/internal/api"
	"github.com/tjtrack/tjtrack-web/internal/cache"
	"github.com/tjtrack/tjtrack-web/internal/cart"
	"github.com/tjtrack/tjtrack-web/internal/models"
	"github.com/tjtrack/tjtrack-web/internal/session"
	"github.com/tjtrack/tjtrack-web/view"

	"go.uber.org/zap"
)

// backendCall records one request that reached the fake API.
type backendCall struct {
	Method string
	Path   string
}

type fixture struct {
	base  *Base
	calls *[]backendCall
}

func newFixture(t *testing.T, mux *http.ServeMux) *fixture {
	t.Helper()
	view.SetBaseDir("../../templates")
	t.Cleanup(view.ResetForTests)

	calls := &[]backendCall{}
	recorder := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls = append(*calls, backendCall{Method: r.Method, Path: r.URL.Path})
		mux.ServeHTTP(w, r)
	})
	srv := httptest.NewServer(recorder)
	t.Cleanup(srv.Close)

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sessions, err := session.NewStore(db, nil)
	if err != nil {
		t.Fatalf("session store: %v", err)
	}

	client := api.New(srv.URL, nil)
	store := cache.NewStore()
	base := &Base{
		API:      client,
		Sessions: sessions,
		Cookies:  &authpkg.Cookies{Secret: "test-secret", Store: sessions},
		Cache:    store,
		Cart:     cart.New(client, store),
		Log:      zap.NewNop().Sugar(),
	}
	return &fixture{base: base, calls: calls}
}

func (f *fixture) called(method, path string) bool {
	for _, c := range *f.calls {
		if c.Method == method && c.Path == path {
			return true
		}
	}
	return false
}

// loggedIn persists a session and attaches it to the request context the way
// the cookie middleware would.
func (f *fixture) loggedIn(t *testing.T, r *http.Request, roles ...string) *http.Request {
	t.Helper()
	if len(roles) == 0 {
		roles = []string{models.RoleManager}
	}
	user := &models.ProfileResponse{
		UserID: "u-1", Name: "Marie", Email: "marie@shop.tld", Roles: roles,
	}
	id, err := f.base.Sessions.Login("tok-test", user)
	if err != nil {
		t.Fatal(err)
	}
	sess := f.base.Sessions.Get(id)
	return r.WithContext(authpkg.WithSession(r.Context(), sess))
}

func postForm(path string, form url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func jsonHandler(v any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(v)
	}
}

func TestArticleSaveCreateVsUpdate(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /stock/articles", jsonHandler(models.ArticleDto{}))
	mux.HandleFunc("PUT /stock/articles/{id}", jsonHandler(models.ArticleDto{}))

	f := newFixture(t, mux)
	h := NewArticlesHandler(f.base)

	form := url.Values{
		"codeArticle":    {"ART-1"},
		"designation":    {"Clavier"},
		"prixUnitaireHt": {"25.50"},
	}
	w := httptest.NewRecorder()
	h.Save(w, f.loggedIn(t, postForm("/stock/articles", form)))
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if !f.called(http.MethodPost, "/stock/articles") {
		t.Error("draft without id should create")
	}

	form.Set("id", "7")
	w = httptest.NewRecorder()
	h.Save(w, f.loggedIn(t, postForm("/stock/articles", form)))
	if !f.called(http.MethodPut, "/stock/articles/7") {
		t.Error("draft with id should update in place")
	}
}

func TestArticleSaveValidationRendersForm(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /stock/categories", jsonHandler([]models.CategorieDto{}))

	f := newFixture(t, mux)
	h := NewArticlesHandler(f.base)

	// missing designation and non-positive price
	form := url.Values{"codeArticle": {"ART-1"}, "prixUnitaireHt": {"0"}}
	w := httptest.NewRecorder()
	h.Save(w, f.loggedIn(t, postForm("/stock/articles", form)))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want re-rendered form", w.Code)
	}
	if f.called(http.MethodPost, "/stock/articles") {
		t.Error("invalid draft must not reach the API")
	}
	body := w.Body.String()
	if !strings.Contains(body, "ART-1") {
		t.Error("re-rendered form should keep the submitted draft")
	}
}

func TestUnauthorizedListExpiresSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /stock/articles", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	f := newFixture(t, mux)
	h := NewArticlesHandler(f.base)

	r := f.loggedIn(t, httptest.NewRequest(http.MethodGet, "/stock/articles", nil))
	sessID := authpkg.SessionFromContext(r.Context()).ID
	w := httptest.NewRecorder()
	h.List(w, r)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Errorf("redirect = %q, want /login", loc)
	}
	if f.base.Sessions.Get(sessID) != nil {
		t.Error("rejected token must destroy the stored session")
	}
}

func TestNotFoundRendersErrorPage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /catalogue/articles/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	f := newFixture(t, mux)
	h := NewCatalogueHandler(f.base)

	r := httptest.NewRequest(http.MethodGet, "/catalogue/99", nil)
	r.SetPathValue("id", "99")
	w := httptest.NewRecorder()
	h.Detail(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "404") {
		t.Error("error page should show the status")
	}
}

func TestTerminalOrderDeleteRefusedLocally(t *testing.T) {
	statut := models.CommandeLivree
	mux := http.NewServeMux()
	mux.HandleFunc("GET /commandes-client/{id}", jsonHandler(models.CommandeClient{Statut: &statut}))

	f := newFixture(t, mux)
	h := NewCommandesClientHandler(f.base)

	r := f.loggedIn(t, postForm("/commandes-client/3/delete", nil))
	r.SetPathValue("id", "3")
	w := httptest.NewRecorder()
	h.Delete(w, r)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if f.called(http.MethodDelete, "/commandes-client/3") {
		t.Error("delivered order delete must be refused before the API call")
	}
}

func TestOpenOrderDeleteGoesThrough(t *testing.T) {
	statut := models.CommandeEnAttente
	mux := http.NewServeMux()
	mux.HandleFunc("GET /commandes-client/{id}", jsonHandler(models.CommandeClient{Statut: &statut}))
	mux.HandleFunc("DELETE /commandes-client/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	f := newFixture(t, mux)
	h := NewCommandesClientHandler(f.base)

	r := f.loggedIn(t, postForm("/commandes-client/3/delete", nil))
	r.SetPathValue("id", "3")
	w := httptest.NewRecorder()
	h.Delete(w, r)

	if !f.called(http.MethodDelete, "/commandes-client/3") {
		t.Error("open order delete should reach the API")
	}
}

func TestLoginSuccessCreatesSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", jsonHandler(map[string]string{"token": "tok-xyz"}))
	mux.HandleFunc("GET /profile", jsonHandler(models.ProfileResponse{
		UserID: "u-9", Name: "Paul", Email: "paul@shop.tld",
		Roles: []string{models.RoleManager},
	}))

	f := newFixture(t, mux)
	h := NewAuthHandler(f.base)

	form := url.Values{"email": {"paul@shop.tld"}, "password": {"secret123"}}
	w := httptest.NewRecorder()
	h.Login(w, postForm("/login", form))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303; body: %s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "/dashboard" {
		t.Errorf("redirect = %q, want /dashboard for back-office role", loc)
	}
	var sessionCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "tj_session" {
			sessionCookie = c
		}
	}
	if sessionCookie == nil || sessionCookie.Value == "" {
		t.Fatal("login should set the session cookie")
	}
}

func TestLoginRejectedShowsFormAgain(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	f := newFixture(t, mux)
	h := NewAuthHandler(f.base)

	form := url.Values{"email": {"paul@shop.tld"}, "password": {"wrong"}}
	w := httptest.NewRecorder()
	h.Login(w, postForm("/login", form))

	// wrong credentials re-render the form, they never count as an
	// expired session
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want re-rendered login form", w.Code)
	}
	if !strings.Contains(w.Body.String(), "paul@shop.tld") {
		t.Error("email should be kept on the re-rendered form")
	}
}

func TestCartAddRequiresLogin(t *testing.T) {
	f := newFixture(t, http.NewServeMux())
	h := NewPanierHandler(f.base)

	form := url.Values{"articleId": {"4"}, "quantite": {"1"}}
	w := httptest.NewRecorder()
	h.Add(w, postForm("/panier/ajouter", form))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Errorf("redirect = %q, want /login for anonymous cart", loc)
	}
}

func TestResetOTPRedirectEscapesEmail(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /send-reset-otp", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{}"))
	})

	f := newFixture(t, mux)
	h := NewAuthHandler(f.base)

	form := url.Values{"email": {"anne+test@shop.tld"}}
	w := httptest.NewRecorder()
	h.SendResetOTP(w, postForm("/forgot-password", form))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303; body: %s", w.Code, w.Body.String())
	}
	want := "/reset-password?email=" + url.QueryEscape("anne+test@shop.tld")
	if loc := w.Header().Get("Location"); loc != want {
		t.Errorf("redirect = %q, want %q", loc, want)
	}
}

func TestClientEditSeedsForm(t *testing.T) {
	id := 9
	nom := "Durand"
	prenom := "Luc"
	mux := http.NewServeMux()
	mux.HandleFunc("GET /clients/{id}", jsonHandler(models.Client{ID: &id, Nom: &nom, Prenom: &prenom}))

	f := newFixture(t, mux)
	h := NewClientsHandler(f.base)

	r := f.loggedIn(t, httptest.NewRequest(http.MethodGet, "/clients/9/edit", nil))
	r.SetPathValue("id", "9")
	w := httptest.NewRecorder()
	h.Edit(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Durand") || !strings.Contains(body, "Luc") {
		t.Error("form should be seeded from the selected record")
	}
	if !strings.Contains(body, "Modifier le client") {
		t.Error("seeded form should use the edit heading")
	}
}

func TestEntrepriseEditSeedsForm(t *testing.T) {
	id := 4
	nom := "Camtel"
	mux := http.NewServeMux()
	mux.HandleFunc("GET /entreprises/{id}", jsonHandler(models.Entreprise{ID: &id, Nom: &nom}))

	f := newFixture(t, mux)
	h := NewEntreprisesHandler(f.base)

	r := f.loggedIn(t, httptest.NewRequest(http.MethodGet, "/entreprises/4/edit", nil))
	r.SetPathValue("id", "4")
	w := httptest.NewRecorder()
	h.Edit(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Camtel") {
		t.Error("form should be seeded from the selected record")
	}
}

func TestFlashRoundTrip(t *testing.T) {
	w := httptest.NewRecorder()
	setFlash(w, "success", "saved")

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	w2 := httptest.NewRecorder()
	f := popFlash(w2, r)
	if f == nil || f.Level != "success" || f.Code != "saved" {
		t.Fatalf("flash = %+v, want success/saved", f)
	}

	// popping clears the cookie
	cleared := false
	for _, c := range w2.Result().Cookies() {
		if c.Name == flashCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("pop should expire the flash cookie")
	}
}

func TestErrorCodeMapping(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&api.Error{Kind: api.KindNotFound}, "not_found"},
		{&api.Error{Kind: api.KindNetwork}, "network_error"},
		{&api.Error{Kind: api.KindServer}, "server_error"},
		{&api.Error{Kind: api.KindValidation, Message: "stock insuffisant"}, "stock insuffisant"},
		{&api.Error{Kind: api.KindValidation}, "server_error"},
		{context.Canceled, "server_error"},
	}
	for _, tc := range cases {
		if got := errorCode(tc.err); got != tc.want {
			t.Errorf("errorCode(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
