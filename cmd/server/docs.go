// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

// Package main provides the xvmee portfolio HTTP server
//
// @title xvmee portfolio API
// @version 1.0
// @description Gallery and admin session API behind the xvmee portfolio site.
// @description
// @description ## Authentication
// @description
// @description Mutating gallery endpoints require an admin session. Log in with
// @description `/api/auth/login`; the session is carried in an HTTP-only cookie.
// @description
// @description ## Rate Limiting
// @description
// @description Login is limited to 5 attempts per 5 minutes per IP address.
// @description Creating and deleting items is limited to 30 requests per minute.
// @description
// @description ## Error Responses
// @description
// @description Errors use a single message field:
// @description ```json
// @description { "message": "Item not found" }
// @description ```
// @description Login and logout failures use `{ "success": false, "message": "..." }`.
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /api
// @schemes http https
//
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name portfolio.sid
// @description Signed session cookie set by /api/auth/login.
//
// @tag.name Auth
// @tag.description Admin login, logout and session checks
//
// @tag.name Portfolio
// @tag.description Gallery items
//
// @tag.name Core
// @tag.description Health and live updates
package main
