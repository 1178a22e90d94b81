package web

import (
	"bytes"
	"html/template"
	"net/http"
	"path/filepath"
	"time"
	"unicode"

	"github.com/brianbaso/Social-Blog-App/internal/models"
)

type HTMLData struct {
	Title       string
	Path        string
	Flash       *Flash            // one-shot notice queued by the previous request
	FormError   string
	FormData    map[string]string // keeps submitted values when re-rendering a form
	CurrentUser *models.User
	Blog        *models.Post
	Blogs       []*models.Post
}

var functions = template.FuncMap{
	"cap": func(str string) string {
		if str == "" {
			return ""
		}
		runes := []rune(str)
		runes[0] = unicode.ToUpper(runes[0])
		return string(runes)
	},
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("02 Jan 2006, 15:04")
	},
	// Post bodies are sanitized before storage, so the stored markup
	// is safe to render as-is.
	"safeHTML": func(s string) template.HTML {
		return template.HTML(s)
	},
}

func (app *app) RenderHTML(w http.ResponseWriter, r *http.Request, pageFile string, data *HTMLData) {
	if data == nil {
		data = &HTMLData{}
	}

	data.Path = r.URL.Path

	if data.CurrentUser == nil {
		data.CurrentUser = app.getCurrentUser(r)
	}

	// Deliver any notice queued by the previous request, then clear it
	if data.Flash == nil {
		data.Flash = app.popFlash(w, r)
	}

	layoutFile := "base.layout.html"

	files := []string{
		filepath.Join(app.HTMLDir, layoutFile),
		filepath.Join(app.HTMLDir, pageFile),
	}

	ts, err := template.New("").Funcs(functions).ParseFiles(files...)
	if err != nil {
		app.ServerError(w, err)
		return
	}

	// Render into a buffer first so template errors never produce a
	// half-written page
	buf := new(bytes.Buffer)
	if err := ts.ExecuteTemplate(buf, "base", data); err != nil {
		app.ServerError(w, err)
		return
	}

	buf.WriteTo(w)
}
