package view

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tjtrack/tjtrack-web/i18n"
)

func writePage(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func resetResolvers() {
	langResolver = func(_ *http.Request) string { return i18n.DefaultLang }
	themeResolver = func(_ *http.Request) string { return "system" }
	canResolver = nil
	isAdminResolver = nil
}

// A cached parse must not freeze the first request's language, theme or
// permission answers into later renders.
func TestRenderBindsFuncsPerRequest(t *testing.T) {
	t.Setenv("DEV", "")
	dir := t.TempDir()
	writePage(t, dir, "nav.html",
		`<!doctype html><p>lang={{ lang }} admin={{ isAdmin }} theme={{ theme }}</p>`)
	SetBaseDir(dir)
	t.Cleanup(ResetForTests)

	SetLangResolver(func(r *http.Request) string {
		if l := r.Header.Get("X-Lang"); l != "" {
			return l
		}
		return i18n.DefaultLang
	})
	SetThemeResolver(func(r *http.Request) string {
		if th := r.Header.Get("X-Theme"); th != "" {
			return th
		}
		return "system"
	})
	SetIsAdminResolver(func(r *http.Request) bool {
		return r.Header.Get("X-Admin") == "1"
	})
	t.Cleanup(resetResolvers)

	render := func(hdr map[string]string) string {
		t.Helper()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		for k, v := range hdr {
			r.Header.Set(k, v)
		}
		w := httptest.NewRecorder()
		if err := Render(w, r, "nav.html", nil); err != nil {
			t.Fatalf("render: %v", err)
		}
		return w.Body.String()
	}

	// first request warms the template cache as an anonymous fr visitor
	first := render(nil)
	if !strings.Contains(first, "lang=fr admin=false theme=system") {
		t.Fatalf("first render = %q", first)
	}

	second := render(map[string]string{"X-Lang": "en", "X-Admin": "1", "X-Theme": "dark"})
	if !strings.Contains(second, "lang=en admin=true theme=dark") {
		t.Errorf("cached render kept the first request's bindings: %q", second)
	}

	// and back again, so the second request didn't just overwrite the cache
	third := render(nil)
	if !strings.Contains(third, "lang=fr admin=false theme=system") {
		t.Errorf("third render = %q", third)
	}
}

func TestRenderWrapsFragmentInLayout(t *testing.T) {
	t.Setenv("DEV", "")
	dir := t.TempDir()
	writePage(t, dir, "layout.html",
		`<!doctype html><html><body>{{ block "content" . }}{{ end }}</body></html>`)
	writePage(t, dir, "page.html",
		`{{ define "content" }}<h1>{{ .Title }}</h1>{{ end }}`)
	SetBaseDir(dir)
	t.Cleanup(ResetForTests)
	t.Cleanup(resetResolvers)

	for _, title := range []string{"Articles", "Ventes"} {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		if err := Render(w, r, "page.html", map[string]any{"Title": title}); err != nil {
			t.Fatalf("render: %v", err)
		}
		body := w.Body.String()
		if !strings.Contains(body, "<h1>"+title+"</h1>") || !strings.Contains(body, "<!doctype html>") {
			t.Errorf("body = %q, want layout-wrapped %q", body, title)
		}
	}
}
