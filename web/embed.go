// Package web embeds the single-page client shell. The client itself is
// rendered in the browser; the server only delivers the static assets
// and falls back to index.html for non-API routes.
package web

import (
	"embed"
	"io/fs"
	"log"
	"net/http"
)

//go:embed static
var content embed.FS

// StaticFS returns the static file system.
func StaticFS() fs.FS {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		log.Fatalf("failed to create static sub-filesystem: %v", err)
	}
	return sub
}

// Handler serves the embedded SPA: static files when they exist,
// index.html for everything else.
func Handler() http.Handler {
	static := StaticFS()
	fileServer := http.FileServer(http.FS(static))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			if info, err := fs.Stat(static, r.URL.Path[1:]); err == nil && !info.IsDir() {
				fileServer.ServeHTTP(w, r)
				return
			}
		}
		http.ServeFileFS(w, r, static, "index.html")
	})
}
