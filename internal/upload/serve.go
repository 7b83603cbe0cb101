// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

package upload

import (
	"net/http"
	"path/filepath"
	"strings"
)

// FileServer serves /uploads/<name>. Names starting with demo-image- come
// from the demo assets directory, everything else from the uploads
// directory. Only plain file names are accepted. Known image extensions are
// served with their image type; anything else is an octet-stream download.
type FileServer struct {
	uploads http.Dir
	demo    http.Dir
}

// NewFileServer creates a FileServer.
func NewFileServer(uploadsDir, demoAssetsDir string) *FileServer {
	return &FileServer{
		uploads: http.Dir(uploadsDir),
		demo:    http.Dir(demoAssetsDir),
	}
}

// ServeHTTP implements http.Handler.
func (s *FileServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name, ok := strings.CutPrefix(r.URL.Path, URLPrefix)
	if !ok || !validName(name) {
		http.NotFound(w, r)
		return
	}

	dir := s.uploads
	if strings.HasPrefix(name, demoImagePrefix) {
		dir = s.demo
	}

	f, err := dir.Open("/" + name)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil || stat.IsDir() {
		http.NotFound(w, r)
		return
	}

	h := w.Header()
	if ct, ok := imageTypes[strings.ToLower(filepath.Ext(name))]; ok {
		h.Set("Content-Type", ct)
	} else {
		h.Set("Content-Type", "application/octet-stream")
		h.Set("Content-Disposition", "attachment")
	}
	h.Set("Cache-Control", "public, max-age=604800")
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("Content-Security-Policy", "default-src 'none'; sandbox")
	http.ServeContent(w, r, stat.Name(), stat.ModTime(), f)
}

// validName accepts a single path element that is not hidden.
func validName(name string) bool {
	return name != "" && !strings.HasPrefix(name, ".") && !strings.ContainsAny(name, `/\`)
}
