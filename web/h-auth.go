package web

import (
	"net/http"
)

func (app *app) register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		data := &HTMLData{
			Title: "Register",
		}
		app.RenderHTML(w, r, "register.page.html", data)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	app.infoLog.Printf("Attempting to register user: username=%q", username)

	user, err := app.UserService.CreateUser(username, password)
	if err != nil {
		// Duplicate usernames and weak credentials surface verbatim
		// as a one-shot notice on the re-rendered form
		data := &HTMLData{
			Title:     "Register",
			FormError: err.Error(),
			FormData: map[string]string{
				"username": username,
			},
		}
		app.RenderHTML(w, r, "register.page.html", data)
		return
	}

	app.infoLog.Printf("Successfully registered user: %q (ID %s)", user.Username, user.ID)

	// Registration implies login
	session, err := app.SessionService.CreateSession(user.ID)
	if err != nil {
		app.errorLog.Printf("Failed to create session for user %s: %v", user.ID, err)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	app.setSessionCookie(w, session.Token)
	app.flashSuccess(w, "Welcome, "+user.Username)

	http.Redirect(w, r, "/blogs", http.StatusSeeOther)
}

func (app *app) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		data := &HTMLData{
			Title: "Login",
		}
		app.RenderHTML(w, r, "login.page.html", data)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	app.infoLog.Printf("Attempting to login user: username=%q", username)

	user, err := app.UserService.VerifyUser(username, password)
	if err != nil {
		// Back to the login page with a notice; the message never says
		// whether the username or the password was wrong
		app.flashError(w, "Incorrect username or password.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	session, err := app.SessionService.CreateSession(user.ID)
	if err != nil {
		app.errorLog.Printf("Failed to create session for user %s: %v", user.ID, err)
		app.ServerError(w, err)
		return
	}

	app.setSessionCookie(w, session.Token)

	app.infoLog.Printf("Login successful: id=%s, username=%q", user.ID, user.Username)

	http.Redirect(w, r, "/blogs", http.StatusSeeOther)
}

func (app *app) logout(w http.ResponseWriter, r *http.Request) {
	token := app.getSessionToken(r)
	if token != "" {
		if err := app.SessionService.DeleteSession(token); err != nil {
			app.errorLog.Printf("Failed to delete session: %v", err)
		}
	}

	app.clearSessionCookie(w)
	app.flashSuccess(w, "Logged you out!")
	http.Redirect(w, r, "/blogs", http.StatusSeeOther)
}
