// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

/*
Package models defines the data shared by the store, the API and the event bus.

Entities:

  - User: the seeded admin account. Created once at startup, never modified.
  - PortfolioItem: a gallery entry with an auto-incrementing integer ID.

IDs are unique within each collection and are never reused, even after a delete.
JSON field names match what the front end reads (imageUrl, not image_url).
*/
package models
