// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

package api

import (
	"net/http"

	"github.com/xvmee/portfolio/internal/logging"
	ws "github.com/xvmee/portfolio/internal/websocket"
)

// Health handles health check requests
//
// @Summary Get service health
// @Description Reports the environment and the gallery size. Answers 503 when the store cannot be read.
// @Tags Core
// @Produce json
// @Success 200 {object} HealthResponse "Service is healthy"
// @Failure 503 {object} HealthResponse "Store unavailable"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	environment := ""
	if h.config != nil {
		environment = h.config.Server.Environment
	}

	count, err := h.store.CountPortfolioItems(r.Context())
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("health check could not count items")
		NewResponseWriter(w, r).JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:      "degraded",
			Environment: environment,
		})
		return
	}

	NewResponseWriter(w, r).OK(HealthResponse{
		Status:      "ok",
		Environment: environment,
		Items:       count,
	})
}

// WebSocket upgrades the connection for live gallery updates
//
// @Summary Live gallery updates
// @Description Upgrades to a WebSocket that receives portfolio_created and portfolio_deleted messages. Clients may send {"type":"ping"} and receive {"type":"pong"}.
// @Tags Core
// @Success 101 "Switching protocols"
// @Failure 403 "Origin not allowed"
// @Failure 503 {object} ErrorResponse "Live updates unavailable"
// @Router /ws [get]
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	if h.wsHub == nil {
		logging.Warn().Msg("websocket connection rejected: hub not initialized")
		NewResponseWriter(w, r).Error(http.StatusServiceUnavailable, msgWebSocketOffline)
		return
	}

	upgrader := h.getUpgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("websocket upgrade failed")
		return
	}

	ws.NewClient(h.wsHub, conn).Start()
}
