// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

package api

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/xvmee/portfolio/internal/auth"
	"github.com/xvmee/portfolio/internal/config"
	"github.com/xvmee/portfolio/internal/eventprocessor"
	"github.com/xvmee/portfolio/internal/logging"
	"github.com/xvmee/portfolio/internal/store"
	"github.com/xvmee/portfolio/internal/upload"
	ws "github.com/xvmee/portfolio/internal/websocket"
)

// EventPublisher publishes gallery change events. Errors are logged by the
// handler and never fail the request.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event *eventprocessor.PortfolioEvent) error
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct, constructor, websocket upgrade (this file)
//   - handlers_auth.go: login, logout, check
//   - handlers_portfolio.go: gallery list, get, create, delete
//   - handlers_health.go: health and live updates
type Handler struct {
	store     store.Store
	sessions  *auth.SessionManager
	authn     *auth.Authenticator
	saver     upload.Saver
	config    *config.Config
	wsHub     *ws.Hub
	audit     *logging.AuditLogger
	events    EventPublisher
	startTime time.Time
}

// NewHandler creates a new API handler.
//
// wsHub may be nil, in which case /api/ws answers 503. Event publishing is
// off until SetEventPublisher is called.
func NewHandler(st store.Store, sessions *auth.SessionManager, authn *auth.Authenticator, saver upload.Saver, cfg *config.Config, wsHub *ws.Hub) *Handler {
	return &Handler{
		store:     st,
		sessions:  sessions,
		authn:     authn,
		saver:     saver,
		config:    cfg,
		wsHub:     wsHub,
		audit:     logging.NewAuditLogger(),
		startTime: time.Now(),
	}
}

// SetEventPublisher sets the publisher for gallery change events. Passing nil
// disables publishing.
//
// Thread Safety: should be called once during startup.
func (h *Handler) SetEventPublisher(publisher EventPublisher) {
	h.events = publisher
}

// SetAuditLogger replaces the audit logger.
func (h *Handler) SetAuditLogger(audit *logging.AuditLogger) {
	h.audit = audit
}

// publish sends event if a publisher is configured. The request's
// cancellation is dropped so a client hanging up does not lose the event.
func (h *Handler) publish(ctx context.Context, event *eventprocessor.PortfolioEvent) {
	if h.events == nil {
		return
	}
	if err := h.events.PublishEvent(context.WithoutCancel(ctx), event); err != nil {
		logging.Ctx(ctx).Warn().Err(err).
			Str("type", string(event.Type)).
			Int("item_id", event.ItemID).
			Msg("failed to publish portfolio event")
	}
}

// getUpgrader creates a WebSocket upgrader with origin checking and a
// handshake timeout.
func (h *Handler) getUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		CheckOrigin:      h.checkWebSocketOrigin,
		HandshakeTimeout: 10 * time.Second,
	}
}

// checkWebSocketOrigin validates WebSocket connection origins
func (h *Handler) checkWebSocketOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")

	// Browsers always send Origin on websocket handshakes.
	if origin == "" {
		logging.Warn().Msg("websocket connection rejected: missing Origin header")
		return false
	}

	// The site's own pages are always allowed.
	if u, err := url.Parse(origin); err == nil && strings.EqualFold(u.Host, r.Host) {
		return true
	}

	if h.config == nil {
		return false
	}
	for _, allowedOrigin := range h.config.Security.CORSOrigins {
		if allowedOrigin == "*" || strings.EqualFold(allowedOrigin, origin) {
			return true
		}
	}

	logging.Warn().Str("origin", logging.SanitizeValue(origin)).Msg("websocket connection rejected from unauthorized origin")
	return false
}

// clientIP returns the request's remote IP. chi's RealIP middleware has
// already applied X-Forwarded-For / X-Real-IP.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
