// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

package api

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/xvmee/portfolio/internal/auth"
	"github.com/xvmee/portfolio/internal/logging"
	"github.com/xvmee/portfolio/internal/metrics"
	"github.com/xvmee/portfolio/internal/validation"
)

// maxLoginBodyBytes bounds the login JSON body.
const maxLoginBodyBytes = 64 * 1024

// Login handles admin authentication requests
//
// @Summary Log in as the admin
// @Description Verifies the admin credentials and starts a session held in an HTTP-only cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} SuccessResponse "Authentication successful"
// @Failure 400 {object} SuccessResponse "Invalid request"
// @Failure 401 {object} SuccessResponse "Invalid credentials"
// @Failure 429 {object} ErrorResponse "Too many login attempts"
// @Failure 500 {object} SuccessResponse "Internal server error"
// @Router /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	resp := NewResponseWriter(w, r)
	ip := clientIP(r)

	var req LoginRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxLoginBodyBytes)).Decode(&req); err != nil {
		metrics.RecordLoginAttempt("invalid")
		resp.Failure(http.StatusBadRequest, msgInvalidRequest)
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		metrics.RecordLoginAttempt("invalid")
		logging.Ctx(r.Context()).Debug().Strs("fields", verr.Fields()).Msg("login request failed validation")
		resp.Failure(http.StatusBadRequest, msgInvalidRequest)
		return
	}

	user, err := h.authn.Authenticate(r.Context(), req.Username, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		metrics.RecordLoginAttempt("failure")
		h.audit.LoginFailure(req.Username, ip, "invalid_credentials")
		resp.Failure(http.StatusUnauthorized, msgInvalidCredentials)
		return
	}
	if err != nil {
		metrics.RecordLoginAttempt("error")
		logging.Ctx(r.Context()).Error().Err(err).Msg("credential check failed")
		resp.Failure(http.StatusInternalServerError, msgLoginFailed)
		return
	}

	session, err := h.sessions.Login(r.Context(), w, r, user)
	if err != nil {
		metrics.RecordLoginAttempt("error")
		logging.Ctx(r.Context()).Error().Err(err).Msg("failed to start session")
		resp.Failure(http.StatusInternalServerError, msgLoginFailed)
		return
	}

	metrics.RecordLoginAttempt("success")
	h.audit.LoginSuccess(user.ID, user.Username, session.ID, ip)
	resp.Success()
}

// Logout handles logout requests
//
// @Summary Log out
// @Description Destroys the current session and clears the session cookie. Succeeds without a session.
// @Tags Auth
// @Produce json
// @Success 200 {object} SuccessResponse "Logged out"
// @Failure 500 {object} SuccessResponse "Failed to logout"
// @Router /auth/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	resp := NewResponseWriter(w, r)

	sessionID, err := h.sessions.Logout(r.Context(), w, r)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("failed to destroy session")
		resp.Failure(http.StatusInternalServerError, msgLogoutFailed)
		return
	}
	if sessionID != "" {
		h.audit.Logout(sessionID, clientIP(r))
	}
	resp.Success()
}

// CheckAuth reports whether the request carries an authenticated session
//
// @Summary Check authentication
// @Description Reports whether the session cookie belongs to an authenticated admin session
// @Tags Auth
// @Produce json
// @Success 200 {object} AuthStatusResponse "Authentication state"
// @Router /auth/check [get]
func (h *Handler) CheckAuth(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).OK(AuthStatusResponse{Authenticated: auth.IsAuthenticated(r.Context())})
}
