package utils

import (
	"certmgr/internal/api/http/logger"
	"certmgr/internal/core/ca"
	"certmgr/internal/toolchain"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		expect int
	}{
		{name: "not found", err: fmt.Errorf("sign: %w", ca.ErrNotFound), expect: http.StatusNotFound},
		{name: "root missing", err: ca.ErrRootCANotFound, expect: http.StatusNotFound},
		{name: "invalid", err: &ca.CAError{Op: "revokeCert", Kind: ca.KindInvalidInput, Err: ca.ErrInvalidInput}, expect: http.StatusUnprocessableEntity},
		{name: "exists", err: ca.ErrAlreadyExists, expect: http.StatusConflict},
		{name: "tool", err: &toolchain.CommandError{Tool: "openssl", Stderr: "bad decrypt"}, expect: http.StatusInternalServerError},
		{name: "other", err: errors.New("boom"), expect: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := StatusFor(tc.err); got != tc.expect {
				t.Fatalf("expected %d, got %d", tc.expect, got)
			}
		})
	}
}

func TestDecodeRequestBody(t *testing.T) {
	type body struct {
		Name string `json:"name"`
	}

	cases := []struct {
		name     string
		input    string
		optional bool
		wantErr  bool
	}{
		{name: "valid", input: `{"name":"a"}`},
		{name: "unknown field", input: `{"other":"a"}`, wantErr: true},
		{name: "malformed", input: `{"name":`, wantErr: true},
		{name: "empty optional", input: ``, optional: true},
		{name: "empty required", input: ``, wantErr: true},
		{name: "too large", input: `{"name":"` + strings.Repeat("a", 1<<20) + `"}`, wantErr: true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.input))
			var v body
			err := DecodeRequestBody(httptest.NewRecorder(), r, &v, tc.optional)
			if tc.wantErr != (err != nil) {
				t.Fatalf("wantErr=%v, got %v", tc.wantErr, err)
			}
		})
	}
}

type captureLogger struct {
	events []logger.Event
}

func (c *captureLogger) Write(event logger.Event) {
	c.events = append(c.events, event)
}

func TestRespondError(t *testing.T) {
	audit := &captureLogger{}
	handler := logger.LoggerMiddleware(audit, "", "")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		RespondError(w, r, &toolchain.CommandError{Tool: "openssl", Args: []string{"ca"}, Stderr: "unable to load CA private key\n"})
	}))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/certificates/sign", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var resp ApiResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Success || !strings.Contains(resp.Message, "unable to load CA private key") {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(audit.events) != 1 || !strings.Contains(audit.events[0].Result.Reason, "unable to load CA private key") {
		t.Fatalf("expected failure reason in audit event, got %+v", audit.events)
	}
}

func TestRespondFail_DataKeyPresent(t *testing.T) {
	w := httptest.NewRecorder()
	RespondFail(w, http.StatusNotFound, "file not found: x.pem", nil)

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	for _, k := range []string{"success", "message", "data"} {
		if _, ok := raw[k]; !ok {
			t.Fatalf("expected key %q in %s", k, w.Body.String())
		}
	}
	if string(raw["data"]) != "null" {
		t.Fatalf("expected null data, got %s", raw["data"])
	}
}
