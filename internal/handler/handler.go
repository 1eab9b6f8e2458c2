package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"chatto/internal/config"
	"chatto/internal/store"
)

// Handler holds application dependencies
type Handler struct {
	Store  *store.Store
	Config config.Config
}

// New creates a new Handler with the given dependencies
func New(st *store.Store, cfg config.Config) *Handler {
	return &Handler{
		Store:  st,
		Config: cfg,
	}
}

// SetupRouter configures and returns the HTTP router
func (h *Handler) SetupRouter() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.countRequests)

	// アカウント
	r.HandleFunc("/register", h.Register).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")

	// チャット（Bearerトークン必須）
	r.Handle("/postMessage", h.requireAuth(h.PostMessage)).Methods("POST")
	r.Handle("/getMessages", h.requireAuth(h.GetMessages)).Methods("GET")
	r.Handle("/createRoom", h.requireAuth(h.CreateRoom)).Methods("POST")
	r.Handle("/getRooms", h.requireAuth(h.GetRooms)).Methods("GET")
	r.Handle("/deleteMessage", h.requireAuth(h.DeleteMessage)).Methods("DELETE")

	// 運用
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// ブラウザクライアント
	r.PathPrefix("/").HandlerFunc(h.StaticFile).Methods("GET")

	return r
}

// envelope is the JSON response shape shared by every endpoint.
type envelope map[string]any

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
