package web

import (
	"net/http"
	"strings"

	"github.com/brianbaso/Social-Blog-App/internal/database"
	"github.com/brianbaso/Social-Blog-App/internal/models"
	"github.com/microcosm-cc/bluemonday"
)

// sanitizer strips executable markup from post bodies before storage
// while keeping benign formatting. Policies are safe for concurrent
// use.
var sanitizer = bluemonday.UGCPolicy()

// listBlogs shows every post, newest first. A store failure degrades
// to an empty listing rather than an error page.
func (app *app) listBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := app.PostService.GetAllPosts()
	if err != nil {
		app.errorLog.Printf("Failed to get posts: %v", err)
		blogs = []*models.Post{}
	}

	data := &HTMLData{
		Title: "Blogs",
		Blogs: blogs,
	}

	app.RenderHTML(w, r, "index.page.html", data)
}

// newBlogForm shows the create-post form.
func (app *app) newBlogForm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.MethodNotAllowed(w, []string{"GET"})
		return
	}

	data := &HTMLData{
		Title: "New Blog",
	}

	app.RenderHTML(w, r, "new.page.html", data)
}

// createBlog stores a new post owned by the current user and returns
// to the listing.
func (app *app) createBlog(w http.ResponseWriter, r *http.Request) {
	user := app.getCurrentUser(r)

	title := r.PostFormValue("blog[title]")
	body := sanitizer.Sanitize(r.PostFormValue("blog[body]"))

	blog, err := app.PostService.CreatePost(title, body, user)
	if err != nil {
		app.errorLog.Printf("Failed to create post: %v", err)
		data := &HTMLData{
			Title:     "New Blog",
			FormError: "Could not save your post, please try again.",
			FormData: map[string]string{
				"title": title,
				"body":  body,
			},
		}
		app.RenderHTML(w, r, "new.page.html", data)
		return
	}

	app.infoLog.Printf("Blog created: ID=%s, Title=%q, Author=%q",
		blog.ID, blog.Title, blog.AuthorName)

	http.Redirect(w, r, "/blogs", http.StatusSeeOther)
}

// viewBlog shows a single post. A missing post redirects to the
// listing, never an error page.
func (app *app) viewBlog(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/blogs/")

	blog, err := app.PostService.GetPost(id)
	if err != nil {
		if err != database.ErrPostNotFound {
			app.errorLog.Printf("Failed to get post %s: %v", id, err)
		}
		http.Redirect(w, r, "/blogs", http.StatusSeeOther)
		return
	}

	data := &HTMLData{
		Title: blog.Title,
		Blog:  blog,
	}

	app.RenderHTML(w, r, "show.page.html", data)
}

// editBlogForm shows the edit form pre-filled with the post's current
// content. Ownership was already checked and the post loaded by the
// guard.
func (app *app) editBlogForm(w http.ResponseWriter, r *http.Request, blog *models.Post) {
	if r.Method != http.MethodGet {
		app.MethodNotAllowed(w, []string{"GET"})
		return
	}

	data := &HTMLData{
		Title: "Edit Blog",
		Blog:  blog,
		FormData: map[string]string{
			"title": blog.Title,
			"body":  blog.Body,
		},
	}

	app.RenderHTML(w, r, "edit.page.html", data)
}

// updateBlog replaces the post's title and body and returns to the
// post page. Any failure falls back to the listing.
func (app *app) updateBlog(w http.ResponseWriter, r *http.Request, blog *models.Post) {
	title := r.PostFormValue("blog[title]")
	body := sanitizer.Sanitize(r.PostFormValue("blog[body]"))

	if err := app.PostService.UpdatePost(blog.ID, title, body); err != nil {
		if err != database.ErrPostNotFound {
			app.errorLog.Printf("Failed to update post %s: %v", blog.ID, err)
		}
		http.Redirect(w, r, "/blogs", http.StatusSeeOther)
		return
	}

	app.infoLog.Printf("Blog updated: ID=%s, Title=%q", blog.ID, title)

	http.Redirect(w, r, "/blogs/"+blog.ID, http.StatusSeeOther)
}

// deleteBlog removes the post and returns to the listing. Deleting an
// already-removed post lands on the same page with no visible
// difference.
func (app *app) deleteBlog(w http.ResponseWriter, r *http.Request, blog *models.Post) {
	if err := app.PostService.DeletePost(blog.ID); err != nil {
		app.errorLog.Printf("Failed to delete post %s: %v", blog.ID, err)
	} else {
		app.infoLog.Printf("Blog deleted: ID=%s", blog.ID)
	}

	http.Redirect(w, r, "/blogs", http.StatusSeeOther)
}
