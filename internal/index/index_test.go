package index

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleIndex = "V\t261014120000Z\t\t1000\tunknown\t/C=US/ST=California/O=Local Development CA/CN=web.local\n" +
	"R\t261014120000Z\t251020090000Z,keyCompromise\t1001\tunknown\t/C=US/CN=old.local\n" +
	"E\t240101000000Z\t\t1002\tunknown\t/CN=expired.local\n" +
	"\n" +
	"V\tbroken line\n"

func TestParse(t *testing.T) {
	entries, err := Parse(strings.NewReader(sampleIndex))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	cases := []struct {
		serial  string
		status  string
		revoked string
		reason  string
		subject string
	}{
		{serial: "1000", status: StatusValid, subject: "/C=US/ST=California/O=Local Development CA/CN=web.local"},
		{serial: "1001", status: StatusRevoked, revoked: "251020090000Z", reason: "keyCompromise", subject: "/C=US/CN=old.local"},
		{serial: "1002", status: StatusExpired, subject: "/CN=expired.local"},
	}
	for i, tc := range cases {
		got := entries[i]
		if got.Serial != tc.serial || got.Status != tc.status || got.Subject != tc.subject {
			t.Fatalf("entry %d: unexpected %+v", i, got)
		}
		if got.RevocationDate != tc.revoked || got.RevocationReason != tc.reason {
			t.Fatalf("entry %d: unexpected revocation %q/%q", i, got.RevocationDate, got.RevocationReason)
		}
	}
	if !entries[0].IsValid() || entries[1].IsValid() {
		t.Fatalf("unexpected IsValid results")
	}
}

func TestStatusName(t *testing.T) {
	cases := []struct {
		flag   string
		expect string
	}{
		{flag: "V", expect: StatusValid},
		{flag: "R", expect: StatusRevoked},
		{flag: "E", expect: StatusExpired},
		{flag: "X", expect: StatusUnknown},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.flag, func(t *testing.T) {
			if got := statusName(tc.flag); got != tc.expect {
				t.Fatalf("expected %q, got %q", tc.expect, got)
			}
		})
	}
}

func TestReadFile_Missing(t *testing.T) {
	entries, err := ReadFile(filepath.Join(t.TempDir(), "index.txt"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Fatalf("expected empty non-nil list, got %v", entries)
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.txt")
	if err := os.WriteFile(path, []byte(sampleIndex), 0o644); err != nil {
		t.Fatalf("write index: %v", err)
	}
	entries, err := ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
}
