package app

import (
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/leavedesk/leavedesk/internal/platform/httpx"
	"github.com/leavedesk/leavedesk/web"
)

const indexFile = "index.html"

// StaticAssets returns the front-end filesystem: STATIC_DIR when set,
// otherwise the embedded build.
func StaticAssets(cfg *Config) (fs.FS, error) {
	if cfg != nil && cfg.StaticDir != "" {
		return os.DirFS(cfg.StaticDir), nil
	}
	return fs.Sub(web.Static, "static")
}

// spaHandler serves existing assets and falls back to index.html so client
// routes resolve. Missing front-end files produce a JSON 404.
func spaHandler(assets fs.FS) http.HandlerFunc {
	var fileServer http.Handler
	if assets != nil {
		fileServer = http.FileServer(http.FS(assets))
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if assets == nil || (r.Method != http.MethodGet && r.Method != http.MethodHead) {
			httpx.Fail(w, http.StatusNotFound, "not found")
			return
		}
		name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
		if name != "" && name != indexFile {
			if info, err := fs.Stat(assets, name); err == nil && !info.IsDir() {
				w.Header().Set("Cache-Control", "public, max-age=3600")
				fileServer.ServeHTTP(w, r)
				return
			}
		}
		serveIndex(w, r, assets)
	}
}

func serveIndex(w http.ResponseWriter, r *http.Request, assets fs.FS) {
	body, err := fs.ReadFile(assets, indexFile)
	if err != nil {
		httpx.Fail(w, http.StatusNotFound, "front-end not found")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(body)
}
