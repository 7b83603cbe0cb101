// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

package models

// User is an account allowed to manage the gallery.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`

	// PasswordHash is a bcrypt hash and never leaves the process.
	PasswordHash []byte `json:"-"`
}
