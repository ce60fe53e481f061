package certificate

import (
	"certmgr/internal/api/http/logger"
	apimodel "certmgr/internal/api/http/utils"
	"certmgr/internal/config"
	"certmgr/internal/core/ca"
	"certmgr/internal/store/ism"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

type fakeCAService struct {
	ca.CAServiceHandler
	dir     string
	certReq ca.ServiceCertReqModel
	sign    ca.ServiceSignModel
	revoke  ca.ServiceRevokeModel
	crl     ca.ServiceCRLModel
	certs   []ca.Certificate
}

func (f *fakeCAService) CreateCertReq(ctx context.Context, p ca.ServiceCertReqModel) (ca.CertReqResult, error) {
	f.certReq = p
	return ca.CertReqResult{RequestId: "01hq000000000000000000test", CommonName: p.CommonName, CSRFile: "/pki/csr/x.csr.pem"}, nil
}

func (f *fakeCAService) SignCert(ctx context.Context, p ca.ServiceSignModel) (ca.SignResult, error) {
	f.sign = p
	return ca.SignResult{Serial: "1000"}, nil
}

func (f *fakeCAService) RevokeCert(ctx context.Context, p ca.ServiceRevokeModel) (ca.RevokeResult, error) {
	f.revoke = p
	return ca.RevokeResult{Certificate: p.CertFile}, nil
}

func (f *fakeCAService) UpdateCRL(ctx context.Context, p ca.ServiceCRLModel) (ca.CRLResult, error) {
	f.crl = p
	return ca.CRLResult{CRLFile: "/pki/crl/intermediate.crl.pem"}, nil
}

func (f *fakeCAService) ListCerts() ([]ca.Certificate, error) { return f.certs, nil }
func (f *fakeCAService) GetRequestList() ([]ism.RequestInfo, error) {
	return []ism.RequestInfo{{RequestId: "a"}, {RequestId: "b"}}, nil
}
func (f *fakeCAService) CSRFile(name string) (string, error)    { return "/pki/csr/" + name, nil }
func (f *fakeCAService) IssuedFile(name string) (string, error) { return "/pki/certs/" + name, nil }

func (f *fakeCAService) Locate(name string) (string, error) {
	p := filepath.Join(f.dir, name)
	if _, err := os.Stat(p); err != nil {
		return "", fmt.Errorf("locate %s: %w", name, ca.ErrNotFound)
	}
	return p, nil
}

func decode(t *testing.T, w *httptest.ResponseRecorder) apimodel.ApiResponse {
	t.Helper()
	var resp apimodel.ApiResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response json: %v: %s", err, w.Body.String())
	}
	return resp
}

func TestCreateCSR(t *testing.T) {
	svc := &fakeCAService{}
	h := NewRequestHandler(svc, config.Settings{})

	body := `{"common_name":"example.local","cert_type":"server","san_dns":"*.example.local","san_ip":["10.0.0.1","10.0.0.2"]}`
	w := httptest.NewRecorder()
	h.CreateCSR(w, httptest.NewRequest(http.MethodPost, "/api/v1/csr", strings.NewReader(body)))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !slices.Equal(svc.certReq.SANDNS, []string{"*.example.local"}) {
		t.Fatalf("unexpected san_dns %v", svc.certReq.SANDNS)
	}
	if !slices.Equal(svc.certReq.SANIP, []string{"10.0.0.1", "10.0.0.2"}) {
		t.Fatalf("unexpected san_ip %v", svc.certReq.SANIP)
	}
	if resp := decode(t, w); !resp.Success {
		t.Fatalf("expected success, got %+v", resp)
	}
}

type captureLogger struct {
	events []logger.Event
}

func (c *captureLogger) Write(event logger.Event) {
	c.events = append(c.events, event)
}

func TestCreateCSR_AuditEvent(t *testing.T) {
	audit := &captureLogger{}
	h := NewRequestHandler(&fakeCAService{}, config.Settings{})
	handler := logger.LoggerMiddleware(audit, "", "")(http.HandlerFunc(h.CreateCSR))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/csr", strings.NewReader(`{"common_name":"example.local"}`)))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(audit.events) != 1 {
		t.Fatalf("expected one audit event, got %d", len(audit.events))
	}
	ev := audit.events[0]
	if ev.Extra["request_id"] != "01hq000000000000000000test" || ev.Target.CommonName != "example.local" {
		t.Fatalf("unexpected audit event: %+v", ev)
	}
}

func TestCreateCSR_Validation(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		expect int
	}{
		{name: "missing common name", body: `{"cert_type":"server"}`, expect: http.StatusUnprocessableEntity},
		{name: "blank common name", body: `{"common_name":"  "}`, expect: http.StatusUnprocessableEntity},
		{name: "malformed json", body: `{"common_name":`, expect: http.StatusBadRequest},
		{name: "unknown field", body: `{"common_name":"a","bogus":1}`, expect: http.StatusBadRequest},
		{name: "empty body", body: ``, expect: http.StatusBadRequest},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			h := NewRequestHandler(&fakeCAService{}, config.Settings{})
			w := httptest.NewRecorder()
			h.CreateCSR(w, httptest.NewRequest(http.MethodPost, "/api/v1/csr", strings.NewReader(tc.body)))
			if w.Code != tc.expect {
				t.Fatalf("expected %d, got %d: %s", tc.expect, w.Code, w.Body.String())
			}
		})
	}
}

func TestSignCert(t *testing.T) {
	svc := &fakeCAService{}
	h := NewRequestHandler(svc, config.Settings{InterPassphrase: "inter-env"})

	w := httptest.NewRecorder()
	h.SignCert(w, httptest.NewRequest(http.MethodPost, "/api/v1/certificates/sign", strings.NewReader(`{"csr_filename":"a.csr.pem"}`)))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if svc.sign.CSRFile != "/pki/csr/a.csr.pem" {
		t.Fatalf("unexpected csr path %q", svc.sign.CSRFile)
	}
	if svc.sign.Passphrase != "inter-env" {
		t.Fatalf("expected configured passphrase, got %q", svc.sign.Passphrase)
	}

	w = httptest.NewRecorder()
	h.SignCert(w, httptest.NewRequest(http.MethodPost, "/api/v1/certificates/sign", strings.NewReader(`{}`)))
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
}

func TestRevokeCert(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		expect int
	}{
		{name: "ok", body: `{"cert_filename":"a.cert.pem","reason":"keyCompromise","passphrase":"body"}`, expect: http.StatusOK},
		{name: "no reason", body: `{"cert_filename":"a.cert.pem"}`, expect: http.StatusOK},
		{name: "missing file", body: `{"reason":"superseded"}`, expect: http.StatusUnprocessableEntity},
		{name: "bad reason", body: `{"cert_filename":"a.cert.pem","reason":"boredom"}`, expect: http.StatusUnprocessableEntity},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			svc := &fakeCAService{}
			h := NewRequestHandler(svc, config.Settings{InterPassphrase: "inter-env"})
			w := httptest.NewRecorder()
			h.RevokeCert(w, httptest.NewRequest(http.MethodPost, "/api/v1/certificates/revoke", strings.NewReader(tc.body)))
			if w.Code != tc.expect {
				t.Fatalf("expected %d, got %d: %s", tc.expect, w.Code, w.Body.String())
			}
		})
	}
}

func TestUpdateCRL_EmptyBody(t *testing.T) {
	svc := &fakeCAService{}
	h := NewRequestHandler(svc, config.Settings{InterPassphrase: "inter-env"})

	w := httptest.NewRecorder()
	h.UpdateCRL(w, httptest.NewRequest(http.MethodPost, "/api/v1/crl/update", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if svc.crl.Passphrase != "inter-env" {
		t.Fatalf("expected configured passphrase, got %q", svc.crl.Passphrase)
	}
}

func TestListCerts(t *testing.T) {
	svc := &fakeCAService{certs: []ca.Certificate{{Status: "valid", Serial: "1000"}}}
	h := NewRequestHandler(svc, config.Settings{})

	w := httptest.NewRecorder()
	h.ListCerts(w, httptest.NewRequest(http.MethodGet, "/api/v1/certificates/list", nil))
	var resp struct {
		Success bool              `json:"success"`
		Data    ListCertsResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Data.Count != 1 || resp.Data.Certificates[0].Serial != "1000" {
		t.Fatalf("unexpected list %+v", resp.Data)
	}
}

func TestListRequests(t *testing.T) {
	h := NewRequestHandler(&fakeCAService{}, config.Settings{})

	w := httptest.NewRecorder()
	h.ListRequests(w, httptest.NewRequest(http.MethodGet, "/api/v1/requests", nil))
	var resp struct {
		Data ListRequestsResponse `json:"data"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Data.Count != 2 {
		t.Fatalf("expected 2 requests, got %+v", resp.Data)
	}
}

func TestDownload(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.cert.pem"), []byte("-----BEGIN CERTIFICATE-----\n"), 0o444); err != nil {
		t.Fatalf("write: %v", err)
	}
	h := NewRequestHandler(&fakeCAService{dir: dir}, config.Settings{})
	r := chi.NewRouter()
	r.Get("/api/v1/certificates/download/{filename}", h.Download)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/certificates/download/a.cert.pem", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Type"); got != "application/x-pem-file" {
		t.Fatalf("unexpected content type %q", got)
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), `filename="a.cert.pem"`) {
		t.Fatalf("unexpected disposition %q", w.Header().Get("Content-Disposition"))
	}
	if !strings.HasPrefix(w.Body.String(), "-----BEGIN CERTIFICATE-----") {
		t.Fatalf("unexpected body %q", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/certificates/download/missing.pem", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	if err := os.Mkdir(filepath.Join(dir, "sub.pem"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/certificates/download/sub.pem", nil))
	if w.Code != http.StatusNotFound || w.Header().Get("Content-Disposition") != "" {
		t.Fatalf("expected 404 for a directory, got %d %q", w.Code, w.Header().Get("Content-Disposition"))
	}
}

func TestStringList(t *testing.T) {
	cases := []struct {
		input  string
		expect []string
	}{
		{input: `"a"`, expect: []string{"a"}},
		{input: `["a","b"]`, expect: []string{"a", "b"}},
		{input: `""`, expect: nil},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			var l StringList
			if err := json.Unmarshal([]byte(tc.input), &l); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal([]string(l), tc.expect) {
				t.Fatalf("expected %v, got %v", tc.expect, l)
			}
		})
	}
}
