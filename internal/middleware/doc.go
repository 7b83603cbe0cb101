// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

/*
Package middleware provides chi-compatible HTTP middleware for the portfolio
server.

Key Components:

  - RequestID: X-Request-ID propagation into the logging context
  - RequestLogger: one structured log line per request
  - PrometheusMetrics: request count, latency and in-flight instrumentation
  - Compression: gzip for API and static responses

All middleware have the func(http.Handler) http.Handler shape and are
registered with r.Use:

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)

Response writers are wrapped with chi's WrapResponseWriter so the
http.Hijacker needed by the websocket upgrade keeps working.
*/
package middleware
