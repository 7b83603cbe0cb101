// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

package models

// Field limits for portfolio items, in characters.
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 255
)

// PortfolioItem is a project shown in the gallery.
type PortfolioItem struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// NewPortfolioItem is the insert shape; the store assigns the ID.
type NewPortfolioItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// DemoPortfolioItems returns the fixed items served in production.
func DemoPortfolioItems() []PortfolioItem {
	return []PortfolioItem{
		{
			ID:          1,
			Title:       "Discord Bot Example",
			Description: "A custom bot for Discord server management",
			ImageURL:    "/uploads/demo-image-1.jpg",
		},
		{
			ID:          2,
			Title:       "Portfolio Website",
			Description: "Discord-inspired personal portfolio site",
			ImageURL:    "/uploads/demo-image-2.jpg",
		},
	}
}
