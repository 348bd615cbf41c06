// Package templates holds the embedded HTML views and their renderer.
// Every page defines a "content" block composed into the shared layout.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/alphadash/dashboard/internal/web/flash"
)

//go:embed *.tmpl
var files embed.FS

// pages lists every view; each name maps to <name>.tmpl composed with
// the layout.
var pages = []string{
	"home",
	"login",
	"portfolio",
	"holding_form",
	"holding_delete",
	"asset_detail",
	"manage_assets",
}

// BaseData carries the fields every page needs. Page view models embed it.
type BaseData struct {
	Title         string
	Authenticated bool
	Flash         *flash.Message
}

// Renderer executes named pages into HTTP responses.
type Renderer struct {
	templates map[string]*template.Template
}

// New parses all embedded views. Parsing happens once at startup so a
// broken template fails the boot, not a request.
func New() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template)}

	for _, page := range pages {
		t, err := template.New("layout.tmpl").ParseFS(files, "layout.tmpl", page+".tmpl")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		r.templates[page] = t
	}

	return r, nil
}

// Render writes the named page with the given status code. The page is
// executed into a buffer first so a mid-render failure produces a clean
// 500 instead of a half-written body.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data interface{}) {
	t, ok := r.templates[page]
	if !ok {
		log.Printf("render: unknown page %q", page)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.tmpl", data); err != nil {
		log.Printf("render: failed to execute %q: %v", page, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("render: failed to write %q: %v", page, err)
	}
}
