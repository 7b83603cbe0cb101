// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

/*
Package metrics provides Prometheus metrics for the portfolio server.

Metrics are registered on the default registry at package init and exposed at
/metrics in Prometheus text format:

	curl http://localhost:5000/metrics

# Available Metrics

HTTP Metrics:
  - portfolio_api_requests_total: Requests served (counter)
    Labels: method, path, status
  - portfolio_api_request_duration_seconds: Request latency (histogram)
    Labels: method, path
  - portfolio_api_active_requests: In-flight requests (gauge)
  - portfolio_api_rate_limit_hits_total: Rate limited requests (counter)
    Labels: limiter

The path label is the chi route pattern (for example /api/portfolio/{id}),
never the raw URL, so label cardinality stays bounded.

Gallery Metrics:
  - portfolio_items: Items currently in the gallery (gauge)
  - portfolio_uploads_total: Upload attempts (counter)
    Labels: result (saved, demo, rejected, failed)
  - portfolio_login_attempts_total: Admin login attempts (counter)
    Labels: result (success, failure, invalid)

Live Update Metrics:
  - portfolio_websocket_clients: Connected websocket clients (gauge)
  - portfolio_websocket_messages_sent_total: Messages pushed to clients (counter)
  - portfolio_events_published_total: Domain events published (counter)
    Labels: type, result
  - portfolio_circuit_breaker_state: Event publisher breaker state (gauge)
    Labels: name. Values: 0=closed, 1=half-open, 2=open

# Usage

	start := time.Now()
	metrics.TrackActiveRequest(true)
	defer metrics.TrackActiveRequest(false)
	// ...
	metrics.RecordAPIRequest(r.Method, "/api/portfolio", "200", time.Since(start))
*/
package metrics
