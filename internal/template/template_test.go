package template

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"certmgr/internal/utils"
)

func TestRender(t *testing.T) {
	dir := t.TempDir()
	tmpl := filepath.Join(dir, "test.template")
	out := filepath.Join(dir, "test.conf")
	if err := os.WriteFile(tmpl, []byte("Hello {{NAME}}, your country is {{COUNTRY}}"), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	r := NewRenderer()
	if err := r.Render(tmpl, out, map[string]string{"NAME": "World", "COUNTRY": "US"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(got) != "Hello World, your country is US" {
		t.Fatalf("unexpected output: %q", string(got))
	}
}

func TestRender_MissingTemplate(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer()
	err := r.Render(filepath.Join(dir, "nope.template"), filepath.Join(dir, "out"), nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "read template") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRenderString(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		vars   map[string]string
		expect string
	}{
		{name: "repeated", input: "{{A}}-{{A}}", vars: map[string]string{"A": "x"}, expect: "x-x"},
		{name: "unknown left", input: "{{A}} {{B}}", vars: map[string]string{"A": "x"}, expect: "x {{B}}"},
		{name: "no recursion", input: "{{A}}", vars: map[string]string{"A": "{{B}}", "B": "y"}, expect: "{{B}}"},
		{name: "single braces", input: "{A}", vars: map[string]string{"A": "x"}, expect: "{A}"},
		{name: "empty vars", input: "plain", vars: nil, expect: "plain"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := RenderString(tc.input, tc.vars)
			if got != tc.expect {
				t.Fatalf("expected %q, got %q", tc.expect, got)
			}
		})
	}
}

func TestPlaceholders(t *testing.T) {
	got := Placeholders("dir = {{ROOT_CA_DIR}}\nCN = {{ROOT_CA_CN}}\nagain {{ROOT_CA_DIR}}")
	want := []string{"ROOT_CA_DIR", "ROOT_CA_CN"}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAltNames(t *testing.T) {
	got := AltNames([]string{"example.local", "*.example.local"}, []string{"127.0.0.1"})
	want := "DNS.1 = example.local\nDNS.2 = *.example.local\nIP.1 = 127.0.0.1"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSeedDefaults(t *testing.T) {
	dir := t.TempDir()
	custom := filepath.Join(dir, utils.CSRTemplateName)
	if err := os.WriteFile(custom, []byte("custom"), 0o644); err != nil {
		t.Fatalf("write custom template: %v", err)
	}

	r := NewRenderer()
	written, err := r.SeedDefaults(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(written) != 2 {
		t.Fatalf("expected 2 seeded templates, got %v", written)
	}

	b, _ := os.ReadFile(custom)
	if string(b) != "custom" {
		t.Fatalf("existing template overwritten: %q", string(b))
	}
	for _, name := range []string{utils.RootTemplateName, utils.IntermediateTemplateName} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("expected %s seeded: %v", name, err)
		}
	}
}

func TestDefaultTemplatesPlaceholders(t *testing.T) {
	cases := []struct {
		name string
		vars []string
	}{
		{name: utils.RootTemplateName, vars: []string{"ROOT_CA_DIR", "ROOT_CA_CN", "COUNTRY", "STATE", "LOCALITY", "ORG"}},
		{name: utils.IntermediateTemplateName, vars: []string{"INTER_CA_DIR", "INTER_CA_CN", "CRL_DIR", "COUNTRY", "STATE", "LOCALITY", "ORG"}},
		{name: utils.CSRTemplateName, vars: []string{"CERT_CN", "ALT_NAMES", "COUNTRY", "STATE", "LOCALITY", "ORG"}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			b, err := Default(tc.name)
			if err != nil {
				t.Fatalf("read default: %v", err)
			}
			got := Placeholders(string(b))
			for _, v := range tc.vars {
				if !slices.Contains(got, v) {
					t.Fatalf("expected placeholder %s in %s, got %v", v, tc.name, got)
				}
			}
		})
	}
}
