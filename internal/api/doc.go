// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

/*
Package api provides the HTTP layer of the portfolio site.

Key Components:

  - Router: chi route table and the global middleware stack
  - Handler: request handlers for auth, gallery items, health and live updates
  - ResponseWriter: JSON response helper shared by every handler
  - ChiMiddleware: CORS and per-route rate limiters from the chi ecosystem

Endpoints:

 1. Auth (/api/auth/):
    - login (rate limited per IP), logout, check

 2. Gallery (/api/portfolio):
    - list with optional page/limit paging, get by id
    - create (multipart upload) and delete, both behind the session gate

 3. Live updates (/api/ws):
    - pushes portfolio_created and portfolio_deleted messages

 4. Operations:
    - /api/health, /metrics, /swagger/*

Everything else is served from the built front end with an index.html
fallback so client-side routes resolve.

Usage Example:

	handler := api.NewHandler(st, sessions, authn, saver, cfg, hub)
	handler.SetEventPublisher(publisher)
	router := api.NewRouter(handler, sessions, cfg)
	srv := &http.Server{Addr: addr, Handler: router.SetupChi()}
*/
package api
