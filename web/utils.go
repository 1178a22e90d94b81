package web

import (
	"net/http"

	"github.com/brianbaso/Social-Blog-App/internal/models"
)

const SessionCookieName = "session_token"

// setSessionCookie sets the session token cookie
func (app *app) setSessionCookie(w http.ResponseWriter, token string) {
	cookie := &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   24 * 60 * 60,
		HttpOnly: true,  // XSS protection
		Secure:   false, // set true behind HTTPS
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
}

// clearSessionCookie removes the session cookie
func (app *app) clearSessionCookie(w http.ResponseWriter) {
	cookie := &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	}
	http.SetCookie(w, cookie)
}

// getSessionToken reads the session token from the request cookie
func (app *app) getSessionToken(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// getCurrentUser resolves the current user from the session cookie
func (app *app) getCurrentUser(r *http.Request) *models.User {
	token := app.getSessionToken(r)
	if token == "" {
		return nil
	}

	user, err := app.SessionService.GetUserBySession(token)
	if err != nil {
		return nil
	}

	return user
}

// isAuthenticated reports whether the request carries a valid session
func (app *app) isAuthenticated(r *http.Request) bool {
	return app.getCurrentUser(r) != nil
}
