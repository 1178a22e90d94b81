package web

import (
	"net/http"

	"github.com/brianbaso/Social-Blog-App/internal/database"
	"github.com/brianbaso/Social-Blog-App/internal/models"
)

// requireAuth gates a route behind an authenticated session. Rejected
// requests are sent to the login page with an error notice queued.
func (app *app) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Protected pages must not be cached
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")

		if !app.isAuthenticated(r) {
			app.flashError(w, "You must be logged in to do that.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

// requireBlogOwner gates a route behind ownership of the post with the
// given ID. The loaded post is handed to the next handler so a passing
// request does not fetch it twice. Missing posts redirect back to the
// referring page; unauthenticated sessions, mismatched owners and
// ownerless posts are all rejected identically.
func (app *app) requireBlogOwner(id string, next func(http.ResponseWriter, *http.Request, *models.Post)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")

		user := app.getCurrentUser(r)
		if user == nil {
			app.flashError(w, "You must be logged in to do that.")
			app.redirectBack(w, r)
			return
		}

		post, err := app.PostService.GetPost(id)
		if err != nil {
			if err != database.ErrPostNotFound {
				app.errorLog.Printf("Failed to load post %s for ownership check: %v", id, err)
			}
			app.redirectBack(w, r)
			return
		}

		// Ownerless posts predate authentication; nobody may edit them.
		if !post.HasAuthor() || post.AuthorID != user.ID {
			app.flashError(w, "You do not have permission to do that.")
			app.redirectBack(w, r)
			return
		}

		next(w, r, post)
	}
}

// redirectBack sends the client to the referring page, falling back to
// the blog listing.
func (app *app) redirectBack(w http.ResponseWriter, r *http.Request) {
	target := r.Referer()
	if target == "" {
		target = "/blogs"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
