// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

package api

// Client-facing error messages. The front end displays these verbatim.
const (
	msgInvalidRequest     = "Invalid request"
	msgInvalidCredentials = "Invalid credentials"
	msgLoginFailed        = "Failed to login"
	msgLogoutFailed       = "Failed to logout"

	msgFetchFailed      = "Failed to fetch portfolio items"
	msgFetchItemFailed  = "Failed to fetch portfolio item"
	msgCreateFailed     = "Failed to create portfolio item"
	msgDeleteFailed     = "Failed to delete portfolio item"
	msgInvalidID        = "Invalid ID"
	msgItemNotFound     = "Item not found"
	msgInvalidPaging    = "Invalid pagination parameters"
	msgNoImage          = "No image provided"
	msgFileTooLarge     = "File too large"
	msgOnlyImages       = "Only images are allowed"
	msgTooManyRequests  = "Too many requests, please try again later"
	msgWebSocketOffline = "Live updates unavailable"
)
