// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

package api

import (
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/xvmee/portfolio/internal/auth"
	"github.com/xvmee/portfolio/internal/config"
	"github.com/xvmee/portfolio/internal/logging"
	"github.com/xvmee/portfolio/internal/middleware"
	"github.com/xvmee/portfolio/internal/upload"
)

// Router holds the route table dependencies.
type Router struct {
	handler       *Handler
	sessions      *auth.SessionManager
	chiMiddleware *ChiMiddleware
	uploads       http.Handler
	staticDir     string
}

// NewRouter creates a router. cfg supplies CORS, rate limits and the upload
// and static directories.
func NewRouter(handler *Handler, sessions *auth.SessionManager, cfg *config.Config) *Router {
	router := &Router{
		handler:       handler,
		sessions:      sessions,
		chiMiddleware: NewChiMiddleware(ChiMiddlewareConfigFromConfig(cfg)),
		staticDir:     "web/dist",
	}
	if cfg != nil {
		router.uploads = upload.NewFileServer(cfg.Storage.UploadsDir, cfg.Storage.DemoAssetsDir)
		router.staticDir = cfg.Web.StaticDir
	} else {
		router.uploads = upload.NewFileServer("uploads", "client/src/assets")
	}
	return router
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(APISecurityHeaders())
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered
	r.Use(middleware.PrometheusMetrics)
	r.Use(router.sessions.Authenticate)

	// ========================
	// Authentication Endpoints
	// ========================
	r.Route("/api/auth", func(r chi.Router) {
		r.With(router.chiMiddleware.RateLimitLogin()).Post("/login", router.handler.Login)
		r.Post("/logout", router.handler.Logout)
		r.Get("/check", router.handler.CheckAuth)
	})

	// ========================
	// Gallery Endpoints
	// ========================
	r.Route("/api/portfolio", func(r chi.Router) {
		r.Get("/", router.handler.ListPortfolio)
		r.Get("/{id}", router.handler.GetPortfolioItem)

		r.Group(func(r chi.Router) {
			r.Use(router.sessions.RequireAuth)
			r.Use(router.chiMiddleware.RateLimitWrite())

			r.Post("/", router.handler.CreatePortfolioItem)
			r.Delete("/{id}", router.handler.DeletePortfolioItem)
		})
	})

	r.Get("/api/ws", router.handler.WebSocket)
	r.Get("/api/health", router.handler.Health)

	// Unknown API paths get a JSON 404 rather than the SPA shell.
	r.HandleFunc("/api/*", func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).NotFound("Not found")
	})

	// ========================
	// Images
	// ========================
	r.Method(http.MethodGet, "/uploads/*", router.uploads)
	r.Method(http.MethodHead, "/uploads/*", router.uploads)

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// ========================
	// Static Files & SPA
	// ========================
	// Must be last - catches all unmatched routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Compression)
		r.Get("/*", router.serveStaticOrIndex)
	})

	return r
}

// serveStaticOrIndex serves built front-end files, falling back to
// index.html so client-side routes resolve.
func (router *Router) serveStaticOrIndex(w http.ResponseWriter, r *http.Request) {
	urlPath := r.URL.Path

	switch ext := path.Ext(urlPath); {
	case ext == ".js" || ext == ".css":
		// Vite emits content-hashed asset names.
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	case ext == ".png" || ext == ".svg" || ext == ".jpg" || ext == ".jpeg" || ext == ".webp" || ext == ".avif" || ext == ".ico":
		w.Header().Set("Cache-Control", "public, max-age=604800")
	case ext == ".json" && urlPath != "/manifest.json":
		w.Header().Set("Cache-Control", "public, max-age=3600")
	}

	if urlPath != "/" && urlPath != "/index.html" && router.fileExists(urlPath) {
		http.FileServer(http.Dir(router.staticDir)).ServeHTTP(w, r)
		return
	}

	// A missing asset is a real 404, not the SPA shell.
	if strings.HasPrefix(urlPath, "/assets/") {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=300")
	router.serveIndex(w, r)
}

// fileExists reports whether urlPath names a regular file in the static dir.
func (router *Router) fileExists(urlPath string) bool {
	f, err := http.Dir(router.staticDir).Open(urlPath)
	if err != nil {
		return false
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return !stat.IsDir()
}

func (router *Router) serveIndex(w http.ResponseWriter, r *http.Request) {
	f, err := http.Dir(router.staticDir).Open("/index.html")
	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Str("static_dir", router.staticDir).Msg("front end not built, index.html missing")
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	http.ServeContent(w, r, "index.html", stat.ModTime(), f)
}
