package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAPIError(t *testing.T) {
	err := NewAPIError(400, "test-endpoint", "test API error")

	expected := "API error [400] at test-endpoint: test API error"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}

	noStatus := NewAPIError(0, "test-endpoint", "no status")
	if noStatus.Error() != "API error at test-endpoint: no status" {
		t.Errorf("Error() = %s", noStatus.Error())
	}

	withBody := NewAPIErrorWithBody(403, "ep", "denied", `{"error":{}}`)
	if withBody.Body != `{"error":{}}` {
		t.Errorf("Body = %q", withBody.Body)
	}
}

func TestNetworkError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewNetworkErrorWithEndpoint("generate content", "https://example.test", cause)

	expected := "network error during generate content at https://example.test: connection refused"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}

	if !errors.Is(err, cause) {
		t.Error("NetworkError should unwrap to its cause")
	}

	bare := NewNetworkError("read body", cause)
	if bare.Error() != "network error during read body: connection refused" {
		t.Errorf("Error() = %s", bare.Error())
	}
}

func TestTimeoutError(t *testing.T) {
	if NewTimeoutError("").Error() != "request timed out" {
		t.Errorf("empty message: %s", NewTimeoutError("").Error())
	}
	if NewTimeoutError("after 5s").Error() != "request timed out: after 5s" {
		t.Errorf("with message: %s", NewTimeoutError("after 5s").Error())
	}
}

func TestParseError(t *testing.T) {
	err := NewParseError("body is not JSON", "")
	if err.Error() != "parse error: body is not JSON" {
		t.Errorf("Error() = %s", err.Error())
	}

	withPath := NewParseError("not a string", "candidates.0")
	if withPath.Error() != "parse error at candidates.0: not a string" {
		t.Errorf("Error() = %s", withPath.Error())
	}

	if !errors.Is(err, ErrInvalidResponse) {
		t.Error("ParseError should match ErrInvalidResponse")
	}

	if !errors.Is(err, NewParseError("other", "")) {
		t.Error("ParseError should match another ParseError")
	}

	if errors.Is(err, ErrNoContent) {
		t.Error("ParseError should not match ErrNoContent")
	}
}

func TestClassifiers(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		api       bool
		network   bool
		timeout   bool
		parse     bool
		noContent bool
		status    int
	}{
		{name: "nil", err: nil},
		{name: "api", err: NewAPIError(429, "ep", "quota"), api: true, status: 429},
		{name: "wrapped api", err: fmt.Errorf("generate: %w", NewAPIError(500, "ep", "boom")), api: true, status: 500},
		{name: "network", err: NewNetworkError("do", errors.New("x")), network: true},
		{name: "timeout", err: NewTimeoutError("slow"), timeout: true},
		{name: "parse", err: NewParseError("bad", ""), parse: true},
		{name: "no content", err: fmt.Errorf("extract: %w", ErrNoContent), noContent: true},
		{name: "plain", err: errors.New("plain")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAPIError(tt.err); got != tt.api {
				t.Errorf("IsAPIError = %v, want %v", got, tt.api)
			}
			if got := IsNetworkError(tt.err); got != tt.network {
				t.Errorf("IsNetworkError = %v, want %v", got, tt.network)
			}
			if got := IsTimeoutError(tt.err); got != tt.timeout {
				t.Errorf("IsTimeoutError = %v, want %v", got, tt.timeout)
			}
			if got := IsParseError(tt.err); got != tt.parse {
				t.Errorf("IsParseError = %v, want %v", got, tt.parse)
			}
			if got := IsNoContent(tt.err); got != tt.noContent {
				t.Errorf("IsNoContent = %v, want %v", got, tt.noContent)
			}
			if got := GetHTTPStatus(tt.err); got != tt.status {
				t.Errorf("GetHTTPStatus = %d, want %d", got, tt.status)
			}
		})
	}
}
