// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

/*
Package main is the entry point for the portfolio server.

The server hosts the single-page portfolio site and the gallery API it talks
to. One admin account, seeded at startup, may add and remove gallery items;
everyone else can browse.

# Application Architecture

Long-lived components run under a Suture v4 supervisor tree:

	RootSupervisor ("portfolio")
	├── DataSupervisor ("data-layer")
	│   └── Session cleanup
	├── MessagingSupervisor ("messaging-layer")
	│   ├── WebSocket Hub (live gallery updates)
	│   └── Event forwarder (pub/sub to hub)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with defaults, optional config file and environment
 2. Logging: zerolog with JSON or console output
 3. Sessions: in-memory or BadgerDB store, signed cookies
 4. Store: demo items in production, JSON-mirrored items in development
 5. Admin account: bcrypt hashed from ADMIN_USERNAME and ADMIN_PASSWORD
 6. Events: Watermill in-process pub/sub behind a circuit breaker
 7. HTTP Server: Chi router with the middleware stack

# Configuration

Common environment variables:

	ENVIRONMENT        development, test or production
	HTTP_PORT          listen port (default 5000)
	SESSION_SECRET     cookie signing secret, required in production
	ADMIN_USERNAME     admin login name
	ADMIN_PASSWORD     admin password
	CORS_ORIGINS       comma separated allowed origins
	LOG_LEVEL          trace, debug, info, warn or error
	LOG_FORMAT         json or console

A .env file in the working directory is loaded first when present.

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server stops
accepting connections and drains in-flight requests within the shutdown
timeout, the hub closes its clients, and the session database is closed.
*/
package main
