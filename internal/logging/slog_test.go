package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestAnonymizeEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
	}{
		{"regular email", "amy@example.com"},
		{"another email", "bob@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashed := AnonymizeEmail(tt.email)

			if strings.Contains(hashed, tt.email) {
				t.Errorf("anonymized value contains the raw email: %s", hashed)
			}
			if !strings.HasPrefix(hashed, "user:") {
				t.Errorf("expected 'user:' prefix, got %s", hashed)
			}
			// Deterministic: same input, same hash
			if hashed != AnonymizeEmail(tt.email) {
				t.Error("anonymization is not deterministic")
			}
		})
	}
}

func TestAnonymizeEmail_Empty(t *testing.T) {
	if got := AnonymizeEmail(""); got != "" {
		t.Errorf("expected empty result for empty email, got %q", got)
	}
}

func TestAnonymizeEmail_DistinctInputs(t *testing.T) {
	if AnonymizeEmail("a@example.com") == AnonymizeEmail("b@example.com") {
		t.Error("distinct emails produced the same hash")
	}
}

func TestErr(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("failed", Err(errors.New("boom")))
	if !strings.Contains(buf.String(), "error=boom") {
		t.Errorf("expected error attribute in output: %s", buf.String())
	}
}

func TestErr_NilIsOmitted(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("ok", Err(nil))
	if strings.Contains(buf.String(), "error=") {
		t.Errorf("nil error should be omitted from output: %s", buf.String())
	}
}

func TestSanitizeToken(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{"empty token", "", "<empty>"},
		{"short token", "abc", "[token:3 chars]"},
		{"long token", strings.Repeat("x", 64), "[token:64 chars]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeToken(tt.token)
			if got != tt.expected {
				t.Errorf("SanitizeToken() = %q, expected %q", got, tt.expected)
			}
			if tt.token != "" && strings.Contains(got, tt.token) {
				t.Errorf("sanitized value leaks token content: %s", got)
			}
		})
	}
}

func TestWithHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	scoped := WithService(WithOperation(logger, "create_event"), "calendar")
	scoped.Info("created", Calendar("primary"), Status(StatusSuccess))

	out := buf.String()
	for _, want := range []string{"operation=create_event", "service=calendar", "calendar=primary", "status=success"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output: %s", want, out)
		}
	}
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	adapter.Debug("d", "k", "v")
	adapter.Info("i")
	adapter.Warn("w")
	adapter.Error("e")

	out := buf.String()
	for _, want := range []string{"msg=d", "msg=i", "msg=w", "msg=e", "k=v"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output: %s", want, out)
		}
	}
}

func TestNewSlogAdapter_NilUsesDefault(t *testing.T) {
	adapter := NewSlogAdapter(nil)
	if adapter.Logger() == nil {
		t.Error("expected non-nil underlying logger")
	}
}
