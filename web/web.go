// Package web serves the embedded staff UI.
//
// The UI is a pair of static pages compiled into the binary: an
// inventory table with client-side filtering and a form for logging a
// newly found disc. Both talk to the JSON API on the same origin.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var content embed.FS

// StaticHandler serves the embedded static assets under the given URL prefix.
func StaticHandler(prefix string) http.Handler {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		// The static directory is compiled in; a failure here is a build defect.
		panic("embedded static assets missing: " + err.Error())
	}
	return http.StripPrefix(prefix, http.FileServer(http.FS(sub)))
}

// ServePage returns a handler that serves a single embedded page.
func ServePage(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := content.ReadFile("static/" + name)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(data)
	}
}
