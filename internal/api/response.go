// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/xvmee/portfolio/internal/logging"
)

// SuccessResponse is the {success, message?} shape used by the auth endpoints
// and by delete.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the {message} shape used by the gallery endpoints.
type ErrorResponse struct {
	Message string `json:"message"`
}

// AuthStatusResponse answers GET /api/auth/check.
type AuthStatusResponse struct {
	Authenticated bool `json:"authenticated"`
}

// HealthResponse answers GET /api/health.
type HealthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Items       int    `json:"items"`
}

// ResponseWriter provides methods for writing API responses.
type ResponseWriter struct {
	w http.ResponseWriter
	r *http.Request
}

// NewResponseWriter creates a new response writer.
func NewResponseWriter(w http.ResponseWriter, r *http.Request) *ResponseWriter {
	return &ResponseWriter{w: w, r: r}
}

// JSON writes data with the given status.
func (rw *ResponseWriter) JSON(statusCode int, data interface{}) {
	rw.writeJSON(statusCode, data)
}

// OK writes a 200 response with data.
func (rw *ResponseWriter) OK(data interface{}) {
	rw.writeJSON(http.StatusOK, data)
}

// Created writes a 201 Created response.
func (rw *ResponseWriter) Created(data interface{}) {
	rw.writeJSON(http.StatusCreated, data)
}

// Success writes 200 {"success":true}.
func (rw *ResponseWriter) Success() {
	rw.writeJSON(http.StatusOK, SuccessResponse{Success: true})
}

// Failure writes {"success":false,"message":...} with the given status.
func (rw *ResponseWriter) Failure(statusCode int, message string) {
	rw.writeJSON(statusCode, SuccessResponse{Success: false, Message: message})
}

// Error writes {"message":...} with the given status.
func (rw *ResponseWriter) Error(statusCode int, message string) {
	rw.writeJSON(statusCode, ErrorResponse{Message: message})
}

// BadRequest writes a 400 Bad Request error.
func (rw *ResponseWriter) BadRequest(message string) {
	rw.Error(http.StatusBadRequest, message)
}

// NotFound writes a 404 Not Found error.
func (rw *ResponseWriter) NotFound(message string) {
	rw.Error(http.StatusNotFound, message)
}

// TooManyRequests writes a 429 Too Many Requests error.
func (rw *ResponseWriter) TooManyRequests(message string) {
	rw.Error(http.StatusTooManyRequests, message)
}

// InternalError logs err and writes a 500 with a generic message.
func (rw *ResponseWriter) InternalError(message string, err error) {
	if err != nil {
		logging.Ctx(rw.r.Context()).Error().Err(err).Str("path", rw.r.URL.Path).Msg(message)
	}
	rw.Error(http.StatusInternalServerError, message)
}

// writeJSON writes JSON response with proper headers.
func (rw *ResponseWriter) writeJSON(statusCode int, data interface{}) {
	rw.w.Header().Set("Content-Type", "application/json; charset=utf-8")
	rw.w.Header().Set("Cache-Control", "no-store")
	rw.w.WriteHeader(statusCode)

	if err := json.NewEncoder(rw.w).Encode(data); err != nil {
		logging.Ctx(rw.r.Context()).Error().Err(err).Msg("failed to encode JSON response")
	}
}
