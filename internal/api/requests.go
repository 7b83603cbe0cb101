// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// LoginRequest is the JSON body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"min=1"`
	Password string `json:"password" validate:"min=1"`
}

// CreatePortfolioItemRequest holds the text fields of the create form.
// Lengths count characters, not bytes.
type CreatePortfolioItemRequest struct {
	Title       string `form:"title" validate:"min=1,max=100"`
	Description string `form:"description" validate:"min=1,max=255"`
}

// PaginationRequest holds the optional paging query of the list endpoint.
type PaginationRequest struct {
	Page  int `form:"page" validate:"gte=1"`
	Limit int `form:"limit" validate:"gte=1"`
}

// parseItemID reads the {id} route parameter. ok is false only when the value
// is not a decimal integer. Zero, negative and out-of-range values parse to
// an id no item carries, so lookups answer not found.
func parseItemID(r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "id")
	digits := raw
	if strings.HasPrefix(raw, "-") || strings.HasPrefix(raw, "+") {
		digits = raw[1:]
	}
	if digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, true
	}
	return id, true
}

// parsePagination returns the paging request when page or limit is present.
// ok is false when either value is not an integer; range checks are left to
// validation.
func parsePagination(r *http.Request, defaultLimit, maxLimit int) (req PaginationRequest, present bool, ok bool) {
	q := r.URL.Query()
	if !q.Has("page") && !q.Has("limit") {
		return PaginationRequest{}, false, true
	}

	req = PaginationRequest{Page: 1, Limit: defaultLimit}
	if v := q.Get("page"); q.Has("page") {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, true, false
		}
		req.Page = n
	}
	if v := q.Get("limit"); q.Has("limit") {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, true, false
		}
		req.Limit = n
	}
	if maxLimit > 0 && req.Limit > maxLimit {
		req.Limit = maxLimit
	}
	return req, true, true
}
