package web

import (
	"net/http"
	"regexp"
)

func (app *app) routes() http.Handler {
	mux := http.NewServeMux()

	fileServer := http.FileServer(http.Dir(app.StaticDir))
	mux.Handle("/static/", http.StripPrefix("/static", fileServer))

	mux.HandleFunc("/", app.home)

	mux.HandleFunc("/register", app.register)
	mux.HandleFunc("/login", app.login)
	mux.HandleFunc("/logout", app.requireAuth(app.logout))

	mux.HandleFunc("/blogs", app.handleBlogCollection)
	mux.HandleFunc("/blogs/", app.handleBlogRoutes)

	// HTML forms only speak GET and POST; rewrite the method before
	// dispatch so edit/delete forms can declare PUT and DELETE.
	return app.methodOverride(mux)
}

var (
	blogIDPattern     = regexp.MustCompile(`^/blogs/([^/]+)$`)
	blogIDEditPattern = regexp.MustCompile(`^/blogs/([^/]+)/edit$`)
)

// handleBlogCollection serves the /blogs collection route.
func (app *app) handleBlogCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		app.listBlogs(w, r)
	case http.MethodPost:
		app.requireAuth(app.createBlog)(w, r)
	default:
		app.MethodNotAllowed(w, []string{"GET", "POST"})
	}
}

// handleBlogRoutes dispatches the dynamic /blogs/... routes.
func (app *app) handleBlogRoutes(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	// /blogs/new
	if path == "/blogs/new" {
		app.requireAuth(app.newBlogForm)(w, r)
		return
	}

	// /blogs/{id}/edit
	if matches := blogIDEditPattern.FindStringSubmatch(path); matches != nil {
		app.requireBlogOwner(matches[1], app.editBlogForm)(w, r)
		return
	}

	// /blogs/{id}
	if matches := blogIDPattern.FindStringSubmatch(path); matches != nil {
		id := matches[1]
		switch r.Method {
		case http.MethodGet:
			app.viewBlog(w, r)
		case http.MethodPut:
			app.requireBlogOwner(id, app.updateBlog)(w, r)
		case http.MethodDelete:
			app.requireBlogOwner(id, app.deleteBlog)(w, r)
		default:
			app.MethodNotAllowed(w, []string{"GET", "PUT", "DELETE"})
		}
		return
	}

	app.NotFound(w)
}

const methodOverrideField = "_method"

// methodOverride rewrites POST requests that carry a _method form
// field (or X-HTTP-Method-Override header) of PUT or DELETE.
func (app *app) methodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			method := r.PostFormValue(methodOverrideField)
			if method == "" {
				method = r.Header.Get("X-HTTP-Method-Override")
			}
			if method == http.MethodPut || method == http.MethodDelete {
				r.Method = method
			}
		}
		next.ServeHTTP(w, r)
	})
}
