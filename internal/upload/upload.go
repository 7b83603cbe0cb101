// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

// Package upload stores gallery images and serves them back under /uploads.
//
// Development uses DiskSaver, which writes each image into the uploads
// directory. Production uses DemoSaver, which never writes and hands out one
// of the bundled demo images instead.
package upload

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xvmee/portfolio/internal/logging"
)

var (
	// ErrNoImage is returned when a request carries no image part.
	ErrNoImage = errors.New("no image provided")

	// ErrTooLarge is returned when the image exceeds the size limit.
	ErrTooLarge = errors.New("file too large")

	// ErrNotImage is returned when the part's content type is not image/*.
	ErrNotImage = errors.New("only images are allowed")
)

// URLPrefix is the public path uploaded images are served under.
const URLPrefix = "/uploads/"

// demoImagePrefix marks files served from the demo assets directory.
const demoImagePrefix = "demo-image-"

// imageTypes maps the extensions stored uploads may carry to the content type
// they are served with. Script-capable formats such as SVG are absent.
var imageTypes = map[string]string{
	".avif": "image/avif",
	".bmp":  "image/bmp",
	".gif":  "image/gif",
	".jpeg": "image/jpeg",
	".jpg":  "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// typeExts is the extension used when the file name gives none we accept.
var typeExts = map[string]string{
	"image/avif": ".avif",
	"image/bmp":  ".bmp",
	"image/gif":  ".gif",
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// Saver turns an uploaded image into a public URL.
type Saver interface {
	// Save stores fh and returns its URL along with a cleanup func that undoes
	// the save. fh may be nil when the request carried no image.
	Save(fh *multipart.FileHeader) (imageURL string, cleanup func(), err error)

	// Remove deletes the stored image behind imageURL. Failures are logged.
	Remove(imageURL string)
}

// New returns a DemoSaver when demo is set, a DiskSaver otherwise.
func New(demo bool, dir string, maxBytes int64) (Saver, error) {
	if demo {
		return NewDemoSaver(maxBytes), nil
	}
	return NewDiskSaver(dir, maxBytes)
}

// checkImage applies the size and content type rules.
func checkImage(fh *multipart.FileHeader, maxBytes int64) error {
	if maxBytes > 0 && fh.Size > maxBytes {
		return ErrTooLarge
	}
	if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
		return ErrNotImage
	}
	return nil
}

func noop() {}

// DiskSaver writes images into a directory.
type DiskSaver struct {
	dir      string
	maxBytes int64
	now      func() time.Time
}

// NewDiskSaver creates dir if needed.
func NewDiskSaver(dir string, maxBytes int64) (*DiskSaver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads directory: %w", err)
	}
	return &DiskSaver{dir: dir, maxBytes: maxBytes, now: time.Now}, nil
}

// Save writes fh as image-<unixms>-<random><ext>.
func (s *DiskSaver) Save(fh *multipart.FileHeader) (string, func(), error) {
	if fh == nil {
		return "", noop, ErrNoImage
	}
	if err := checkImage(fh, s.maxBytes); err != nil {
		return "", noop, err
	}

	name := fmt.Sprintf("image-%d-%d%s", s.now().UnixMilli(), rand.IntN(1e9), imageExt(fh.Filename, fh.Header.Get("Content-Type")))
	path := filepath.Join(s.dir, name)

	if err := writeFile(fh, path, s.maxBytes); err != nil {
		_ = os.Remove(path)
		return "", noop, err
	}

	cleanup := func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			logging.Warn().Err(err).Str("path", path).Msg("failed to remove upload")
		}
	}
	return URLPrefix + name, cleanup, nil
}

func writeFile(fh *multipart.FileHeader, path string, maxBytes int64) error {
	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create upload file: %w", err)
	}

	var r io.Reader = src
	if maxBytes > 0 {
		r = io.LimitReader(src, maxBytes+1)
	}
	n, copyErr := io.Copy(dst, r)
	closeErr := dst.Close()
	switch {
	case copyErr != nil:
		return fmt.Errorf("write upload file: %w", copyErr)
	case closeErr != nil:
		return fmt.Errorf("close upload file: %w", closeErr)
	case maxBytes > 0 && n > maxBytes:
		return ErrTooLarge
	}
	return nil
}

// imageExt picks the stored extension: the file name's when it is a known
// image extension, else the one for the declared content type, else none.
func imageExt(filename, contentType string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := imageTypes[ext]; ok {
		return ext
	}
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		return typeExts[mediaType]
	}
	return ""
}

// Remove deletes the file behind an /uploads/ URL. Demo images and foreign
// URLs are left alone.
func (s *DiskSaver) Remove(imageURL string) {
	name, ok := strings.CutPrefix(imageURL, URLPrefix)
	if !ok || !validName(name) || strings.HasPrefix(name, demoImagePrefix) {
		return
	}
	path := filepath.Join(s.dir, name)
	if err := os.Remove(path); err != nil {
		logging.Error().Err(err).Str("path", path).Msg("error deleting file")
	}
}

// DemoSaver validates images when present but never stores them.
type DemoSaver struct {
	maxBytes int64
	pick     func() int
}

// NewDemoSaver creates a DemoSaver.
func NewDemoSaver(maxBytes int64) *DemoSaver {
	return &DemoSaver{
		maxBytes: maxBytes,
		pick:     func() int { return rand.IntN(2) + 1 },
	}
}

// Save returns /uploads/demo-image-1.jpg or /uploads/demo-image-2.jpg.
func (s *DemoSaver) Save(fh *multipart.FileHeader) (string, func(), error) {
	if fh != nil {
		if err := checkImage(fh, s.maxBytes); err != nil {
			return "", noop, err
		}
	}
	return fmt.Sprintf("%s%s%d.jpg", URLPrefix, demoImagePrefix, s.pick()), noop, nil
}

// Remove is a no-op; demo images are shared.
func (s *DemoSaver) Remove(string) {}

var (
	_ Saver = (*DiskSaver)(nil)
	_ Saver = (*DemoSaver)(nil)
)
