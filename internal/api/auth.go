package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"backoffice/internal/guard"
	"backoffice/internal/models"
)

const tooManyAttemptsMessage = "Demasiados intentos, intenta de nuevo más tarde"

func (s *HTTPServer) handleLoginView(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"login":  guard.LoginPath,
		"fields": []string{"email", "password"},
	})
}

// handleLogin accepts a JSON body or a form post. On success the backend
// token is set as the session cookie.
func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeLogin(r)
	if err != nil || payload.Email == "" || payload.Password == "" {
		writeError(w, http.StatusBadRequest, "email y password son requeridos")
		return
	}

	if limit := s.cfg.RateLimit.LoginAttempts; limit > 0 {
		key := "login:" + strings.ToLower(payload.Email)
		if !s.deps.Sessions.Allow(r.Context(), key, limit, s.cfg.RateLimit.LoginWindow) {
			writeError(w, http.StatusTooManyRequests, tooManyAttemptsMessage)
			return
		}
	}

	result := s.deps.Sessions.Login(r.Context(), payload)
	if result == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]bool{"ok": false})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.Session.CookieName,
		Value:    result.Token,
		Path:     "/",
		MaxAge:   int(s.cfg.Session.TTL.Seconds()),
		HttpOnly: true,
		Secure:   s.cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":   true,
		"user": result.User,
		"role": result.State.Role(),
	})
}

func (s *HTTPServer) handleLogout(w http.ResponseWriter, r *http.Request) {
	token := ""
	if c, err := r.Cookie(s.cfg.Session.CookieName); err == nil {
		token = c.Value
	}
	s.deps.Sessions.Logout(r.Context(), token)

	http.SetCookie(w, &http.Cookie{Name: s.cfg.Session.CookieName, Path: "/", MaxAge: -1})
	http.Redirect(w, r, guard.LoginPath, http.StatusSeeOther)
}

func decodeLogin(r *http.Request) (models.LoginPayload, error) {
	var payload models.LoginPayload
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		err := json.NewDecoder(r.Body).Decode(&payload)
		payload.Email = strings.TrimSpace(payload.Email)
		return payload, err
	}
	if err := r.ParseForm(); err != nil {
		return payload, err
	}
	payload.Email = strings.TrimSpace(r.PostForm.Get("email"))
	payload.Password = r.PostForm.Get("password")
	return payload, nil
}
