package env

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSetup(t *testing.T) {
	layout := NewLayout(t.TempDir())
	m := NewBootstrapManager(layout)

	if err := m.Setup(); err != nil {
		t.Fatalf("setup: %v", err)
	}

	for _, dir := range layout.directories() {
		fi, err := os.Stat(dir)
		if err != nil || !fi.IsDir() {
			t.Fatalf("expected directory %s: %v", dir, err)
		}
	}
	for _, dir := range layout.privateDirs() {
		fi, _ := os.Stat(dir)
		if fi.Mode().Perm() != 0o700 {
			t.Fatalf("expected 0700 on %s, got %o", dir, fi.Mode().Perm())
		}
	}
	for _, ca := range layout.caDirs() {
		for _, name := range []string{"serial", "crlnumber"} {
			b, err := os.ReadFile(filepath.Join(ca, name))
			if err != nil {
				t.Fatalf("read %s: %v", name, err)
			}
			if string(b) != "1000\n" {
				t.Fatalf("expected 1000 in %s, got %q", name, b)
			}
		}
	}
	if _, err := os.Stat(layout.TemplatePath("csr.cnf.template")); err != nil {
		t.Fatalf("expected seeded csr template: %v", err)
	}

	b, err := os.ReadFile(layout.RequestStorePath())
	if err != nil {
		t.Fatalf("expected issuance state file: %v", err)
	}
	var st struct {
		Version  string         `json:"version"`
		Requests map[string]any `json:"requests"`
	}
	if err := json.Unmarshal(b, &st); err != nil || st.Version == "" || st.Requests == nil {
		t.Fatalf("unexpected issuance state %s (%v)", b, err)
	}
}

type failingIsmStore struct{}

func (failingIsmStore) SetIssuanceState() error { return errors.New("store locked") }

func TestSetup_IsmFailure(t *testing.T) {
	layout := NewLayout(t.TempDir())
	m := NewBootstrapManager(layout)
	m.ismStoreHandler = failingIsmStore{}

	if err := m.Setup(); err == nil || err.Error() != "store locked" {
		t.Fatalf("expected issuance state error, got %v", err)
	}
}

func TestSetup_Idempotent(t *testing.T) {
	layout := NewLayout(t.TempDir())
	m := NewBootstrapManager(layout)
	if err := m.Setup(); err != nil {
		t.Fatalf("setup: %v", err)
	}

	serial := filepath.Join(layout.InterCADir, "serial")
	if err := os.WriteFile(serial, []byte("1A2B\n"), 0o644); err != nil {
		t.Fatalf("write serial: %v", err)
	}
	if err := m.Setup(); err != nil {
		t.Fatalf("second setup: %v", err)
	}
	b, _ := os.ReadFile(serial)
	if string(b) != "1A2B\n" {
		t.Fatalf("expected serial preserved, got %q", b)
	}
}

func TestNewLayout(t *testing.T) {
	l := NewLayout("/srv/pki")
	cases := []struct {
		name   string
		got    string
		expect string
	}{
		{name: "config", got: l.ConfigPath, expect: "/srv/pki/conf/certmgr_config.json"},
		{name: "root cert", got: l.RootCertPath(), expect: "/srv/pki/ca/root/certs/ca.cert.pem"},
		{name: "inter key", got: l.InterKeyPath(), expect: "/srv/pki/ca/intermediate/private/intermediate.key.pem"},
		{name: "chain", got: l.ChainCertPath(), expect: "/srv/pki/ca/intermediate/certs/ca-chain.cert.pem"},
		{name: "crl", got: l.CRLPath(), expect: "/srv/pki/crl/intermediate.crl.pem"},
		{name: "lock", got: l.LockPath, expect: "/srv/pki/ca/.lock"},
		{name: "requests", got: l.RequestStorePath(), expect: "/srv/pki/store/requests.json"},
	}
	for _, tc := range cases {
		if tc.got != tc.expect {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.expect, tc.got)
		}
	}
}
