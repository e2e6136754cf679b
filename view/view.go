// Package view renders html/template pages composed from a shared layout and
// a partials directory. Templates are parsed once and cached; set DEV=1 to
// re-parse on every request.
package view

import (
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/tjtrack/tjtrack-web/i18n"
)

var (
	baseDir  string
	once     sync.Once
	tplCache = struct {
		sync.RWMutex
		m map[string]*template.Template
	}{m: map[string]*template.Template{}}
	assetManifest     map[string]string
	assetManifestOnce sync.Once

	langResolver  = func(_ *http.Request) string { return i18n.DefaultLang }
	themeResolver = func(_ *http.Request) string { return "system" }
	// permission resolvers are set by the host app so templates can gate
	// back-office affordances without importing the policy layer
	canResolver     func(*http.Request, string, string) bool
	isAdminResolver func(*http.Request) bool
)

// SetCanResolver sets the callback templates use to check a
// (resource, action) permission for the current request.
func SetCanResolver(f func(*http.Request, string, string) bool) {
	if f != nil {
		canResolver = f
	}
}

// SetIsAdminResolver sets the callback templates use to detect admin users.
func SetIsAdminResolver(f func(*http.Request) bool) {
	if f != nil {
		isAdminResolver = f
	}
}

// SetLangResolver lets the host app resolve the language per request.
func SetLangResolver(f func(*http.Request) string) {
	if f != nil {
		langResolver = f
	}
}

// SetThemeResolver lets the host app resolve the UI theme per request.
func SetThemeResolver(f func(*http.Request) string) {
	if f != nil {
		themeResolver = f
	}
}

func detectBase() {
	candidates := []string{"templates", "../templates", "../../templates"}
	for _, c := range candidates {
		if fi, err := os.Stat(filepath.Clean(c)); err == nil && fi.IsDir() {
			baseDir = filepath.Clean(c)
			return
		}
	}
	baseDir = "templates"
}

// layoutBase walks upward from a template path to the directory holding
// layout.html; falls back to the template's own directory.
func layoutBase(mainPath string) string {
	d := filepath.Dir(mainPath)
	for {
		lp := filepath.Join(d, "layout.html")
		if fi, err := os.Stat(lp); err == nil && !fi.IsDir() {
			return d
		}
		p := filepath.Dir(d)
		if p == d {
			return filepath.Dir(mainPath)
		}
		d = p
	}
}

// Funcs returns the shared func map: i18n, permission checks and the small
// formatting helpers the pages need. A nil request yields the defaults; that
// variant only serves template parsing, never a real render.
func Funcs(r *http.Request) template.FuncMap {
	lang := i18n.DefaultLang
	theme := "system"
	if r != nil {
		lang = langResolver(r)
		theme = themeResolver(r)
	}
	return template.FuncMap{
		"t":    func(code string) string { return i18n.T(lang, code) },
		"lang": func() string { return lang },
		// can checks profile-level permission (resource, action) -> bool
		"can": func(resource, action string) bool {
			if r == nil || canResolver == nil {
				return false
			}
			return canResolver(r, resource, action)
		},
		"isAdmin": func() bool {
			if r == nil || isAdminResolver == nil {
				return false
			}
			return isAdminResolver(r)
		},
		"theme": func() string { return theme },
		"year":  func() int { return time.Now().Year() },
		"add":   func(a, b int) int { return a + b },
		"sub":   func(a, b int) int { return a - b },
		"asset": func(path string) string { return resolveAsset(path) },
		// money formats an optional amount; absent values render as zero
		"money": func(v *float64) string {
			if v == nil {
				return "0.00"
			}
			return fmt.Sprintf("%.2f", *v)
		},
		// num unwraps an optional integer, absent values count as zero
		"num": func(p *int) int {
			if p == nil {
				return 0
			}
			return *p
		},
		// str unwraps an optional string for form values
		"str": func(v *string) string {
			if v == nil {
				return ""
			}
			return *v
		},
		// dash renders optional strings, substituting "-" when absent
		"dash": func(v *string) string {
			if v == nil || *v == "" {
				return "-"
			}
			return *v
		},
		// dict builds a map for passing several values to a partial.
		// Usage: {{ template "partial" (dict "Key1" val1 "Key2" val2) }}
		"dict": func(values ...any) map[string]any {
			if len(values)%2 != 0 {
				return nil
			}
			m := make(map[string]any, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					continue
				}
				m[key] = values[i+1]
			}
			return m
		},
	}
}

// versionedAsset returns /static/<name>?v=<hash> for cache busting.
func versionedAsset(rel string) string {
	if strings.HasPrefix(rel, "http://") || strings.HasPrefix(rel, "https://") || strings.HasPrefix(rel, "//") {
		return rel
	}
	p := filepath.Join("static", rel)
	b, err := os.ReadFile(p)
	if err != nil {
		return "/static/" + rel
	}
	h := sha1.Sum(b)
	return "/static/" + rel + "?v=" + fmt.Sprintf("%x", h[:8])
}

// resolveAsset prefers a hashed filename from manifest.json then falls back
// to query-param versioning.
func resolveAsset(rel string) string {
	dev := os.Getenv("DEV") == "1"
	if dev {
		parseManifest()
	} else {
		assetManifestOnce.Do(parseManifest)
	}
	if assetManifest != nil {
		if h, ok := assetManifest[rel]; ok {
			return "/static/" + h
		}
	}
	return versionedAsset(rel)
}

func parseManifest() {
	b, err := os.ReadFile(filepath.Join("static", "manifest.json"))
	if err != nil {
		return
	}
	var m map[string]string
	if err := json.Unmarshal(b, &m); err != nil {
		return
	}
	assetManifest = m
}

// SetBaseDir overrides the template base directory (useful for tests).
func SetBaseDir(path string) {
	if path == "" {
		return
	}
	baseDir = filepath.Clean(path)
	once = sync.Once{}
}

// ResetForTests clears caches and forces base dir detection to rerun.
func ResetForTests() {
	tplCache.Lock()
	tplCache.m = map[string]*template.Template{}
	tplCache.Unlock()
	baseDir = ""
	once = sync.Once{}
}

// Render executes a page template wrapped in the shared layout. name is the
// filename relative to the templates root (e.g. "articles.html"). Parse
// results carry no request state and are cached; the request's func map is
// bound on a clone right before execution, so lang, theme and permission
// checks always reflect the current request.
func Render(w http.ResponseWriter, r *http.Request, name string, data map[string]any) error {
	if data == nil {
		data = map[string]any{}
	}
	if _, exists := data["Year"]; !exists {
		data["Year"] = time.Now().Year()
	}

	devMode := os.Getenv("DEV") == "1"
	var t *template.Template
	if !devMode {
		tplCache.RLock()
		t = tplCache.m[name]
		tplCache.RUnlock()
	}
	if t == nil {
		parsed, err := parsePage(name)
		if err != nil {
			return err
		}
		t = parsed
		if !devMode {
			tplCache.Lock()
			tplCache.m[name] = t
			tplCache.Unlock()
		}
	}

	// the cached tree is shared across requests and never executed directly
	bound, err := t.Clone()
	if err != nil {
		return err
	}
	return bound.Funcs(Funcs(r)).Execute(w, data)
}

// parsePage locates and parses a page template, with the layout and partials
// when the page is a fragment. Parsing uses the default func map so the
// result can be reused by any request.
func parsePage(name string) (*template.Template, error) {
	if baseDir == "" {
		once.Do(detectBase)
	}
	mainPath := filepath.Join(baseDir, name)
	if _, err := os.Stat(mainPath); err != nil {
		candidates := []string{
			filepath.Join("templates", name),
			filepath.Join("../templates", name),
			filepath.Join("../../templates", name),
			filepath.Join("../../../templates", name),
		}
		for _, c := range candidates {
			if fi, e2 := os.Stat(c); e2 == nil && !fi.IsDir() {
				mainPath = c
				break
			}
		}
		if _, err2 := os.Stat(mainPath); err2 != nil {
			return nil, err
		}
	}
	dir := layoutBase(mainPath)
	layoutPath := filepath.Join(dir, "layout.html")
	partials := []string{
		filepath.Join(dir, "partials", "header.html"),
		filepath.Join(dir, "partials", "page-header.html"),
		filepath.Join(dir, "partials", "flash.html"),
		filepath.Join(dir, "partials", "errors-alert.html"),
		filepath.Join(dir, "partials", "search-filter.html"),
		filepath.Join(dir, "partials", "table.html"),
		filepath.Join(dir, "partials", "pagination.html"),
		filepath.Join(dir, "partials", "stat-card.html"),
		filepath.Join(dir, "partials", "field-text.html"),
		filepath.Join(dir, "partials", "field-select.html"),
	}
	funcMap := Funcs(nil)
	contentBytes, _ := os.ReadFile(mainPath)
	if bytes.Contains(bytes.ToLower(contentBytes), []byte("<!doctype")) {
		// full document provided; skip layout wrapping
		return template.New(name).Funcs(funcMap).ParseFiles(mainPath)
	}
	if fi, err := os.Stat(layoutPath); err != nil || fi.IsDir() {
		return template.New(name).Funcs(funcMap).ParseFiles(mainPath)
	}
	files := []string{layoutPath, mainPath}
	for _, p := range partials {
		if pf, err := os.Stat(p); err == nil && !pf.IsDir() {
			files = append(files, p)
		}
	}
	return template.New("layout.html").Funcs(funcMap).ParseFiles(files...)
}
