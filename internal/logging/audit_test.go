// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestAuditLogger_MasksSensitiveValues(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	audit := NewAuditLoggerWithLogger(NewTestLogger(&buf))
	audit.LoginSuccess(1, "xvmee", "0123456789abcdef0123", "10.0.0.1")

	out := buf.String()
	if strings.Contains(out, "0123456789abcdef0123") {
		t.Errorf("session id leaked: %s", out)
	}
	if !strings.Contains(out, `"session_id":"0123...0123"`) {
		t.Errorf("masked session id missing: %s", out)
	}
	if !strings.Contains(out, `"username":"xv***"`) {
		t.Errorf("masked username missing: %s", out)
	}
}

func TestSanitizeValue(t *testing.T) {
	t.Parallel()

	if got := SanitizeValue("evil\n{\"level\":\"error\"}"); strings.ContainsRune(got, '\n') {
		t.Errorf("newline not stripped: %q", got)
	}
	long := strings.Repeat("a", 250)
	if got := SanitizeValue(long); len(got) != 203 {
		t.Errorf("len = %d, want 203", len(got))
	}
}
