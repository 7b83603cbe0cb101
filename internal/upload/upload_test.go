// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

package upload

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fileHeader builds a parsed multipart file header the way net/http would.
func fileHeader(t *testing.T, filename, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filename))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		t.Fatalf("CreatePart: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("ParseMultipartForm: %v", err)
	}
	t.Cleanup(func() { _ = req.MultipartForm.RemoveAll() })
	return req.MultipartForm.File["image"][0]
}

func TestDiskSaver_Save(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s, err := NewDiskSaver(dir, 1024)
	if err != nil {
		t.Fatalf("NewDiskSaver: %v", err)
	}

	url, cleanup, err := s.Save(fileHeader(t, "cat.png", "image/png", []byte("png-bytes")))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	name := strings.TrimPrefix(url, URLPrefix)
	if !strings.HasPrefix(url, URLPrefix+"image-") || !strings.HasSuffix(url, ".png") {
		t.Errorf("url = %q, want /uploads/image-<ms>-<rand>.png", url)
	}
	if parts := strings.Split(strings.TrimSuffix(name, ".png"), "-"); len(parts) != 3 {
		t.Errorf("name %q should have three dash-separated parts", name)
	}

	got, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(got) != "png-bytes" {
		t.Errorf("saved content = %q", got)
	}

	cleanup()
	if _, err := os.Stat(filepath.Join(dir, name)); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("cleanup should remove the file, stat err = %v", err)
	}
	cleanup()
}

func TestDiskSaver_Rejects(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s, _ := NewDiskSaver(dir, 8)

	tests := []struct {
		name string
		fh   *multipart.FileHeader
		want error
	}{
		{"missing", nil, ErrNoImage},
		{"too large", fileHeader(t, "big.png", "image/png", bytes.Repeat([]byte("x"), 9)), ErrTooLarge},
		{"not an image", fileHeader(t, "notes.txt", "text/plain", []byte("hi")), ErrNotImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := s.Save(tt.fh); !errors.Is(err, tt.want) {
				t.Errorf("Save error = %v, want %v", err, tt.want)
			}
		})
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("rejected uploads left %d files behind", len(entries))
	}
}

func TestDiskSaver_Remove(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s, _ := NewDiskSaver(dir, 1024)
	url, _, err := s.Save(fileHeader(t, "a.jpg", "image/jpeg", []byte("jpg")))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	keep := filepath.Join(dir, "demo-image-1.jpg")
	if err := os.WriteFile(keep, []byte("demo"), 0o644); err != nil {
		t.Fatal(err)
	}

	s.Remove(url)
	s.Remove("/uploads/demo-image-1.jpg")
	s.Remove("/uploads/../escape.jpg")
	s.Remove("https://example.com/x.jpg")
	s.Remove("/uploads/missing.jpg")

	if _, err := os.Stat(filepath.Join(dir, strings.TrimPrefix(url, URLPrefix))); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("uploaded file should be removed, stat err = %v", err)
	}
	if _, err := os.Stat(keep); err != nil {
		t.Errorf("demo image should be left alone: %v", err)
	}
}

func TestDemoSaver(t *testing.T) {
	t.Parallel()

	s := NewDemoSaver(1024)
	seen := map[string]bool{}
	for range 50 {
		url, cleanup, err := s.Save(nil)
		if err != nil {
			t.Fatalf("Save(nil): %v", err)
		}
		cleanup()
		seen[url] = true
	}
	for url := range seen {
		if url != "/uploads/demo-image-1.jpg" && url != "/uploads/demo-image-2.jpg" {
			t.Errorf("unexpected demo url %q", url)
		}
	}

	if _, _, err := s.Save(fileHeader(t, "x.txt", "text/plain", []byte("x"))); !errors.Is(err, ErrNotImage) {
		t.Errorf("Save(text) error = %v, want ErrNotImage", err)
	}
	if _, _, err := s.Save(fileHeader(t, "x.png", "image/png", []byte("x"))); err != nil {
		t.Errorf("Save(image) error = %v", err)
	}
}

func TestImageExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filename    string
		contentType string
		want        string
	}{
		{"a.png", "image/png", ".png"},
		{"a.JPEG", "image/jpeg", ".jpeg"},
		{"a.webp", "image/png", ".webp"},
		{"noext", "image/png", ".png"},
		{"noext", "image/jpeg; charset=binary", ".jpg"},
		{"a.", "image/gif", ".gif"},
		{"x.html", "image/png", ".png"},
		{"x.svg", "image/svg+xml", ""},
		{"a.tar.gz", "image/x-unknown", ""},
		{"a.php", "", ""},
	}
	for _, tt := range tests {
		if got := imageExt(tt.filename, tt.contentType); got != tt.want {
			t.Errorf("imageExt(%q, %q) = %q, want %q", tt.filename, tt.contentType, got, tt.want)
		}
	}
}

func TestDiskSaver_ScriptNameStoredAsImage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s, _ := NewDiskSaver(dir, 1024)

	url, _, err := s.Save(fileHeader(t, "x.html", "image/png", []byte("<script>alert(1)</script>")))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasSuffix(url, ".png") {
		t.Fatalf("url = %q, want a .png name", url)
	}

	rec := httptest.NewRecorder()
	NewFileServer(dir, t.TempDir()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	s, err := New(true, "", 10)
	if err != nil {
		t.Fatalf("New(demo): %v", err)
	}
	if _, ok := s.(*DemoSaver); !ok {
		t.Errorf("New(demo) = %T", s)
	}

	s, err = New(false, filepath.Join(t.TempDir(), "nested", "uploads"), 10)
	if err != nil {
		t.Fatalf("New(disk): %v", err)
	}
	if _, ok := s.(*DiskSaver); !ok {
		t.Errorf("New(disk) = %T", s)
	}
}
