package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"chatto/internal/store"
)

type contextKey int

const userContextKey contextKey = iota

// requireAuth resolves the bearer token into a username before the wrapped
// handler runs. Every failure answers the same 401, whether the header was
// missing, malformed, or the token unknown.
func (h *Handler) requireAuth(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok {
			writeJSON(w, http.StatusUnauthorized, envelope{"success": false, "message": "Unauthorized. Please login again."})
			return
		}
		username, ok := h.Store.Sessions.Resolve(token)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, envelope{"success": false, "message": "Unauthorized. Please login again."})
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), userContextKey, username)))
	})
}

// requestUser returns the authenticated username placed by requireAuth.
func requestUser(r *http.Request) string {
	username, _ := r.Context().Value(userContextKey).(string)
	return username
}

// Register handles POST /register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log.Printf("[POST /register] Request received from %s", r.RemoteAddr)

	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{"success": false, "message": "Invalid request body."})
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		writeJSON(w, http.StatusBadRequest, envelope{"success": false, "message": "Username and password are required."})
		return
	}

	canonical, err := h.Store.Credentials.Register(username, password)
	if err != nil {
		status, msg := registerErrorResponse(err)
		log.Printf("[POST /register] Registration rejected: %v", err)
		writeJSON(w, status, envelope{"success": false, "message": msg})
		return
	}

	token := h.Store.Sessions.Create(canonical)
	log.Printf("[POST /register] User %q registered and logged in", canonical)
	writeJSON(w, http.StatusCreated, envelope{
		"success":  true,
		"message":  "Registration successful! Logging you in...",
		"username": canonical,
		"token":    token,
	})
}

func registerErrorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, store.ErrUsernameTaken):
		return http.StatusConflict, "Username already exists."
	case errors.Is(err, store.ErrInvalidUsername):
		return http.StatusBadRequest, "Username must be 3-20 characters: letters, numbers, underscore, and hyphen."
	case errors.Is(err, store.ErrInvalidPassword):
		return http.StatusBadRequest, "Password must be at least 6 characters."
	default:
		return http.StatusInternalServerError, "Registration failed."
	}
}

// Login handles POST /login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log.Printf("[POST /login] Request received from %s", r.RemoteAddr)

	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{"success": false, "message": "Invalid request body."})
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		writeJSON(w, http.StatusBadRequest, envelope{"success": false, "message": "Username and password are required."})
		return
	}

	canonical, err := h.Store.Credentials.Verify(username, password)
	if err != nil {
		log.Printf("[POST /login] Failed login for %q", username)
		writeJSON(w, http.StatusUnauthorized, envelope{"success": false, "message": "Invalid username or password."})
		return
	}

	token := h.Store.Sessions.Create(canonical)
	log.Printf("[POST /login] User %q logged in", canonical)
	writeJSON(w, http.StatusOK, envelope{
		"success":  true,
		"message":  "Login successful!",
		"username": canonical,
		"token":    token,
	})
}
