package system

import (
	apimodel "certmgr/internal/api/http/utils"
	"certmgr/internal/config"
	"certmgr/internal/core/ca"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type fakeCAService struct {
	ca.CAServiceHandler
	initParameter ca.ServiceInitModel
	initErr       error
	cfg           config.Config
}

func (f *fakeCAService) Init(initParameter ca.ServiceInitModel) (config.Config, error) {
	f.initParameter = initParameter
	if f.initErr != nil {
		return config.Config{}, f.initErr
	}
	return config.Default("test.local").Merge(config.Config{Organization: initParameter.Organization}), nil
}

func (f *fakeCAService) GetConfig() (config.Config, error) { return f.cfg, nil }
func (f *fakeCAService) RootCAExists() bool                { return true }
func (f *fakeCAService) InterCAExists() bool               { return false }

func TestHealth(t *testing.T) {
	h := NewRequestHandler(&fakeCAService{}, config.Settings{Environment: "development"})
	w := httptest.NewRecorder()
	h.Health(w, httptest.NewRequest(http.MethodGet, "/", nil))

	var resp HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Status != "operational" || resp.Version != "1.0.0" || resp.Environment != "development" || !resp.RootCA || resp.InterCA {
		t.Fatalf("unexpected health %+v", resp)
	}
}

func TestInit(t *testing.T) {
	svc := &fakeCAService{}
	h := NewRequestHandler(svc, config.Settings{})

	cases := []struct {
		name   string
		body   string
		err    error
		expect int
	}{
		{name: "success", body: `{"organization":"My Company CA"}`, expect: http.StatusOK},
		{name: "empty body", body: ``, expect: http.StatusOK},
		{name: "malformed", body: `{"organization":`, expect: http.StatusBadRequest},
		{name: "unknown field", body: `{"org":"x"}`, expect: http.StatusBadRequest},
		{name: "invalid config", body: `{"country":"USA"}`, err: fmt.Errorf("init: %w", ca.ErrInvalidInput), expect: http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			svc.initErr = tc.err
			w := httptest.NewRecorder()
			h.Init(w, httptest.NewRequest(http.MethodPost, "/api/v1/init", strings.NewReader(tc.body)))
			if w.Code != tc.expect {
				t.Fatalf("expected %d, got %d: %s", tc.expect, w.Code, w.Body.String())
			}
		})
	}
}

func TestInit_ForwardsParameters(t *testing.T) {
	svc := &fakeCAService{}
	h := NewRequestHandler(svc, config.Settings{})
	body := `{"country":"JP","organization":"My Company CA","inter_ca_cn":"Issuing CA"}`
	w := httptest.NewRecorder()
	h.Init(w, httptest.NewRequest(http.MethodPost, "/api/v1/init", strings.NewReader(body)))

	want := ca.ServiceInitModel{Country: "JP", Organization: "My Company CA", InterCACN: "Issuing CA"}
	if svc.initParameter != want {
		t.Fatalf("expected %+v, got %+v", want, svc.initParameter)
	}
	var resp apimodel.ApiResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if !resp.Success || resp.Message != "Certificate management system initialized successfully" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestGetConfig(t *testing.T) {
	svc := &fakeCAService{cfg: config.Default("ca.local")}
	h := NewRequestHandler(svc, config.Settings{})
	w := httptest.NewRecorder()
	h.GetConfig(w, httptest.NewRequest(http.MethodGet, "/api/v1/config", nil))

	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}
	var resp struct {
		apimodel.ApiResponse
		Data config.Config `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Success || resp.Data.RootCACN != "Root CA ca.local" {
		t.Fatalf("unexpected response %+v", resp)
	}
}
