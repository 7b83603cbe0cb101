// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

package api

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/crypto/bcrypt"

	"github.com/xvmee/portfolio/internal/auth"
	"github.com/xvmee/portfolio/internal/config"
	"github.com/xvmee/portfolio/internal/eventprocessor"
	"github.com/xvmee/portfolio/internal/store"
	"github.com/xvmee/portfolio/internal/upload"
)

const (
	testAdminUser     = "admin"
	testAdminPassword = "correct horse"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []*eventprocessor.PortfolioEvent
}

func (p *recordingPublisher) PublishEvent(_ context.Context, event *eventprocessor.PortfolioEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Events() []*eventprocessor.PortfolioEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*eventprocessor.PortfolioEvent(nil), p.events...)
}

type testEnv struct {
	server     http.Handler
	handler    *Handler
	store      *store.MemoryStore
	config     *config.Config
	uploadsDir string
	events     *recordingPublisher
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Server: config.ServerConfig{Environment: config.EnvDevelopment},
		API:    config.APIConfig{DefaultPageSize: 6, MaxPageSize: 50},
		Security: config.SecurityConfig{
			SessionSecret:     "test-secret",
			SessionTimeout:    time.Hour,
			CORSOrigins:       []string{"http://localhost:5173"},
			RateLimitDisabled: true,
		},
		Storage: config.StorageConfig{
			UploadsDir:     t.TempDir(),
			DemoAssetsDir:  t.TempDir(),
			MaxUploadBytes: 1024,
		},
		Web: config.WebConfig{StaticDir: t.TempDir()},
	}
}

// newTestEnv builds the full router over in-memory stores. mutate, if set,
// adjusts the configuration first.
func newTestEnv(t *testing.T, mutate func(*config.Config)) *testEnv {
	t.Helper()

	cfg := testConfig(t)
	if mutate != nil {
		mutate(cfg)
	}

	st := store.NewMemoryStore(store.Options{Demo: cfg.IsProduction()})
	if _, err := auth.SeedAdmin(context.Background(), st, testAdminUser, testAdminPassword, bcrypt.MinCost); err != nil {
		t.Fatalf("SeedAdmin: %v", err)
	}
	authn, err := auth.NewAuthenticator(st, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("NewAuthenticator: %v", err)
	}
	signer, err := auth.NewCookieSigner(cfg.Security.SessionSecret)
	if err != nil {
		t.Fatalf("NewCookieSigner: %v", err)
	}
	sessionCfg := auth.DefaultSessionManagerConfig()
	sessionCfg.SessionTTL = cfg.Security.SessionTimeout
	sessionCfg.CookieSecure = cfg.IsProduction()
	sessions := auth.NewSessionManager(auth.NewMemorySessionStore(), signer, sessionCfg)

	saver, err := upload.New(cfg.IsProduction(), cfg.Storage.UploadsDir, cfg.Storage.MaxUploadBytes)
	if err != nil {
		t.Fatalf("upload.New: %v", err)
	}

	events := &recordingPublisher{}
	h := NewHandler(st, sessions, authn, saver, cfg, nil)
	h.SetEventPublisher(events)

	return &testEnv{
		server:     NewRouter(h, sessions, cfg).SetupChi(),
		handler:    h,
		store:      st,
		config:     cfg,
		uploadsDir: cfg.Storage.UploadsDir,
		events:     events,
	}
}

func (e *testEnv) do(req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.server.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) postLogin(username, password string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	body, _ := json.Marshal(LoginRequest{Username: username, Password: password})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return e.do(req, cookies...)
}

// login signs in as the seeded admin and returns the session cookie.
func (e *testEnv) login(t *testing.T) *http.Cookie {
	t.Helper()
	rec := e.postLogin(testAdminUser, testAdminPassword)
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body = %s", rec.Code, rec.Body.String())
	}
	c := findCookie(rec, "portfolio.sid")
	if c == nil {
		t.Fatal("login did not set portfolio.sid")
	}
	return c
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// imagePart describes the file field of a create request.
type imagePart struct {
	filename    string
	contentType string
	data        []byte
}

func pngPart() *imagePart {
	return &imagePart{filename: "shot.png", contentType: "image/png", data: []byte("\x89PNG\r\n\x1a\nfake")}
}

// newCreateRequest builds a multipart POST /api/portfolio. A nil image
// omits the file field.
func newCreateRequest(t *testing.T, title, description string, image *imagePart) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := mw.WriteField("title", title); err != nil {
		t.Fatal(err)
	}
	if err := mw.WriteField("description", description); err != nil {
		t.Fatal(err)
	}
	if image != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="image"; filename="`+image.filename+`"`)
		h.Set("Content-Type", image.contentType)
		part, err := mw.CreatePart(h)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := part.Write(image.data); err != nil {
			t.Fatal(err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/portfolio", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func bodyString(rec *httptest.ResponseRecorder) string {
	return strings.TrimSpace(rec.Body.String())
}

func decode[T any](t *testing.T, r io.Reader) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(r).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}
