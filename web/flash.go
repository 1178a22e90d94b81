package web

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"
)

const FlashCookieName = "flash"

// Flash is a one-shot notice carried to the next rendered page.
type Flash struct {
	Kind    string // "error" or "success"
	Message string
}

// flashError queues an error notice for the next rendered page.
func (app *app) flashError(w http.ResponseWriter, message string) {
	app.setFlash(w, Flash{Kind: "error", Message: message})
}

// flashSuccess queues a success notice for the next rendered page.
func (app *app) flashSuccess(w http.ResponseWriter, message string) {
	app.setFlash(w, Flash{Kind: "success", Message: message})
}

// setFlash stores the notice in a signed cookie. The cookie is read
// and cleared by the next render, so the notice appears exactly once.
func (app *app) setFlash(w http.ResponseWriter, f Flash) {
	payload := base64.RawURLEncoding.EncodeToString([]byte(f.Kind + ":" + f.Message))
	cookie := &http.Cookie{
		Name:     FlashCookieName,
		Value:    payload + "." + app.signFlash(payload),
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
}

// popFlash returns the queued notice, if any, and clears it. Values
// with a missing or invalid signature are dropped silently.
func (app *app) popFlash(w http.ResponseWriter, r *http.Request) *Flash {
	cookie, err := r.Cookie(FlashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	// Clear regardless of whether the value verifies
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	payload, sig, ok := strings.Cut(cookie.Value, ".")
	if !ok || !hmac.Equal([]byte(sig), []byte(app.signFlash(payload))) {
		return nil
	}

	decoded, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil
	}

	kind, message, ok := strings.Cut(string(decoded), ":")
	if !ok {
		return nil
	}

	return &Flash{Kind: kind, Message: message}
}

func (app *app) signFlash(payload string) string {
	mac := hmac.New(sha256.New, app.SessionSecret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
