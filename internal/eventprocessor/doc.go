// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

// Package eventprocessor carries portfolio change events from the API to the
// live-update channel.
//
// Handlers publish a PortfolioEvent after every successful create or delete.
// Events travel over an in-process Watermill GoChannel pub/sub; the Forwarder
// subscribes to it and pushes each event to the websocket hub.
//
//	┌──────────────┐   ┌──────────────┐   ┌──────────────┐   ┌──────────────┐
//	│ API handlers │──▶│  Publisher   │──▶│  GoChannel   │──▶│  Forwarder   │──▶ websocket hub
//	└──────────────┘   │ (breaker)    │   │   pub/sub    │   │ (supervised) │
//	                   └──────────────┘   └──────────────┘   └──────────────┘
//
// Publishing is best effort. Each publish runs behind a gobreaker circuit
// breaker, and a failed publish is logged and counted but never fails the
// HTTP request that caused it.
//
// # Topics
//
//   - portfolio.created: an item was added; the event carries the item
//   - portfolio.deleted: an item was removed; the event carries its ID
package eventprocessor
