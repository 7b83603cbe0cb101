// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

/*
Package websocket pushes live gallery updates to connected browsers.

The Hub tracks connected clients and fans out broadcast messages. Each Client
runs a read pump and a write pump over a gorilla/websocket connection.

# Message Format

Every message is a JSON object with a type and a payload:

	{"type": "portfolio_created", "data": {"id": 3, "title": "...", ...}}
	{"type": "portfolio_deleted", "data": {"id": 3}}

Clients may send {"type": "ping"} and receive {"type": "pong"}. Inbound
messages are rate limited per client; a client that exceeds the limit is
disconnected.

# Supervision

RunWithContext returns when its context is canceled, closing every client,
so a suture supervisor can own the hub's lifecycle:

	hub := websocket.NewHub()
	go hub.RunWithContext(ctx)

# Ordering

Broadcasts reach clients in connection order. Clients get monotonically
increasing IDs and the hub iterates them sorted, so delivery order does not
depend on map iteration.
*/
package websocket
