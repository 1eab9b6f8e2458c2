package handler

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// StaticFile serves the browser client from the configured static
// directory. "/" maps to index.html; paths containing ".." are rejected.
func (h *Handler) StaticFile(w http.ResponseWriter, r *http.Request) {
	requested := r.URL.Path
	if strings.Contains(requested, "..") {
		http.Error(w, "400 (Bad Request) Invalid path.", http.StatusBadRequest)
		return
	}
	if requested == "/" || requested == "" {
		requested = "/index.html"
	}

	path := filepath.Join(h.Config.StaticDir, filepath.FromSlash(requested))
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		log.Printf("[GET %s] Static file not found: %s", r.URL.Path, path)
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, path)
}
