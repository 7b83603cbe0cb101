// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

package store

import "github.com/xvmee/portfolio/internal/models"

// Page is one slice of a listing.
type Page struct {
	Items      []models.PortfolioItem
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// Paginate returns the 1-based page of items. Pages past the end are empty,
// never nil. page and limit below 1 are treated as 1.
func Paginate(items []models.PortfolioItem, page, limit int) Page {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	total := len(items)
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}

	start := total
	if page-1 <= total/limit {
		start = min((page-1)*limit, total)
	}
	end := start + min(limit, total-start)

	out := make([]models.PortfolioItem, end-start)
	copy(out, items[start:end])

	return Page{
		Items:      out,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
