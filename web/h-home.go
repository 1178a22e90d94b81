package web

import "net/http"

// home redirects the site root to the blog listing.
func (app *app) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		app.NotFound(w)
		return
	}

	http.Redirect(w, r, "/blogs", http.StatusSeeOther)
}
