package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const etagCap = 64

// HandleFilesList serves the JSON list of available GeoJSON documents.
func (s *ServerContext) HandleFilesList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(s.documents())
}

// HandleFile serves one converted document under /files/{name}.
func (s *ServerContext) HandleFile(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/files/")

	// reject path traversal and nested paths
	if name == "" || name != filepath.Base(name) || !strings.EqualFold(filepath.Ext(name), ".geojson") {
		http.NotFound(w, r)
		return
	}

	if !s.serveFile(w, r, filepath.Join(s.Dir, name), "application/geo+json") {
		http.NotFound(w, r)
	}
}

// HandleIndex serves a minimal HTML listing of the available documents.
func (s *ServerContext) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = fmt.Fprint(w, "<!doctype html><title>dxf2geojson</title><h1>Converted documents</h1><ul>")
	for _, name := range s.documents() {
		_, _ = fmt.Fprintf(w, `<li><a href="/files/%s">%s</a></li>`, name, name)
	}
	_, _ = fmt.Fprint(w, "</ul>")
}

// serveFile tries to serve a file from disk with ETag generation.
// It returns true if the file was found and served (or 304).
func (s *ServerContext) serveFile(w http.ResponseWriter, r *http.Request, path string, contentType string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}

	buf := make([]byte, 0, etagCap)
	buf = append(buf, '"')
	buf = strconv.AppendInt(buf, info.Size(), 16)
	buf = append(buf, '-')
	buf = strconv.AppendInt(buf, info.ModTime().UnixNano(), 16)
	buf = append(buf, '"')
	etag := string(buf)

	// check If-None-Match (client sent ETag)
	if match := r.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return true
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, no-cache")
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}

	http.ServeFile(w, r, path)
	return true
}
