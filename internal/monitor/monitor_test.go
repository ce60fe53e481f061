package monitor

import (
	"certmgr/internal/config"
	"certmgr/internal/core/ca"
	"certmgr/internal/env"
	"certmgr/internal/index"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

const validLine = "V\t261014120000Z\t\t1000\tunknown\t/CN=web.local\n"
const revokedLine = "R\t261014120000Z\t251020090000Z,keyCompromise\t1000\tunknown\t/CN=web.local\n"

type fakeCAService struct {
	layout    env.Layout
	interCA   bool
	crlCalls  atomic.Int32
	crlErr    error
	reader    func(path string) ([]index.Entry, error)
	lastPhase string
}

func (f *fakeCAService) Layout() env.Layout  { return f.layout }
func (f *fakeCAService) InterCAExists() bool { return f.interCA }

func (f *fakeCAService) UpdateCRL(ctx context.Context, p ca.ServiceCRLModel) (ca.CRLResult, error) {
	f.crlCalls.Add(1)
	f.lastPhase = p.Passphrase
	return ca.CRLResult{CRLFile: f.layout.CRLPath()}, f.crlErr
}

func (f *fakeCAService) SetIndexReader(reader func(path string) ([]index.Entry, error)) {
	f.reader = reader
}

func writeIndex(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestIndexResolver_Read(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.txt")
	writeIndex(t, path, validLine)
	r := NewIndexResolver(path)
	if r.stamp == nil {
		t.Fatalf("expected snapshot after construction")
	}

	// an in-place rewrite is seen without waiting for the watcher
	writeIndex(t, path, revokedLine+validLine)
	entries, err := r.Read(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 || entries[0].Status != index.StatusRevoked {
		t.Fatalf("expected rewritten index, got %+v", entries)
	}

	// snapshot is a copy
	entries[0].Status = "mutated"
	again, _ := r.Read(path)
	if again[0].Status != index.StatusRevoked {
		t.Fatalf("snapshot was mutated through Read result")
	}
}

func TestIndexResolver_ReadAfterRotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.txt")
	writeIndex(t, path, "")
	r := NewIndexResolver(path)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = r.Watch(ctx) }()

	// openssl ca writes index.txt.new, then renames old and new into place
	writeIndex(t, path+".new", validLine)
	if err := os.Rename(path, path+".old"); err != nil {
		t.Fatalf("rename old: %v", err)
	}
	if err := os.Rename(path+".new", path); err != nil {
		t.Fatalf("rename new: %v", err)
	}

	entries, err := r.Read(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].Serial != "1000" {
		t.Fatalf("expected issued entry right after rotation, got %+v", entries)
	}
}

func TestIndexResolver_WatchFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "index.txt")
	r := NewIndexResolver(path)

	if err := r.Watch(context.Background()); err == nil {
		t.Fatalf("expected watch on a missing directory to fail")
	}
	if r.stamp != nil {
		t.Fatalf("expected snapshot to be dropped when the watcher stops")
	}

	writeIndex(t, path, validLine)
	entries, err := r.Read(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected entry written after watch failure, got %+v", entries)
	}
}

func TestIndexResolver_ReadOtherPath(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "a", "index.txt")
	other := filepath.Join(dir, "b", "index.txt")
	writeIndex(t, watched, validLine)
	writeIndex(t, other, validLine+revokedLine)

	r := NewIndexResolver(watched)
	entries, err := r.Read(other)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected direct read of other path, got %d entries", len(entries))
	}
}

func TestIndexResolver_Watch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.txt")
	writeIndex(t, path, validLine)
	r := NewIndexResolver(path)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- r.Watch(ctx) }()

	// new file content arrives through rename, as openssl ca does
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		tmp := path + ".new"
		writeIndex(t, tmp, revokedLine)
		if err := os.Rename(tmp, path); err != nil {
			t.Fatalf("rename: %v", err)
		}
		time.Sleep(100 * time.Millisecond)
		entries, _ := r.Read(path)
		if len(entries) == 1 && entries[0].Status == index.StatusRevoked {
			cancel()
			if err := <-done; !errors.Is(err, context.Canceled) {
				t.Fatalf("expected context.Canceled, got %v", err)
			}
			return
		}
	}
	t.Fatalf("index change not observed")
}

func TestCRLRefresher(t *testing.T) {
	svc := &fakeCAService{layout: env.NewLayout(t.TempDir()), interCA: true}
	c := NewCRLRefresher(svc, "inter-pass", 10*time.Millisecond)
	if !c.Enabled() {
		t.Fatalf("expected refresher enabled")
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.Run(ctx)
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for svc.crlCalls.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	<-done
	if svc.crlCalls.Load() < 2 {
		t.Fatalf("expected at least 2 refreshes, got %d", svc.crlCalls.Load())
	}
	if svc.lastPhase != "inter-pass" {
		t.Fatalf("unexpected passphrase %q", svc.lastPhase)
	}
}

func TestCRLRefresher_Skip(t *testing.T) {
	cases := []struct {
		name       string
		passphrase string
		interval   time.Duration
		enabled    bool
	}{
		{name: "enabled", passphrase: "pw", interval: time.Minute, enabled: true},
		{name: "no interval", passphrase: "pw", interval: 0, enabled: false},
		{name: "no passphrase", passphrase: "", interval: time.Minute, enabled: false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			c := NewCRLRefresher(&fakeCAService{}, tc.passphrase, tc.interval)
			if c.Enabled() != tc.enabled {
				t.Fatalf("expected enabled=%v", tc.enabled)
			}
		})
	}

	svc := &fakeCAService{}
	NewCRLRefresher(svc, "pw", time.Minute).refresh(context.Background())
	if svc.crlCalls.Load() != 0 {
		t.Fatalf("expected no refresh without intermediate CA")
	}
}

func TestCAMonitor_Start(t *testing.T) {
	layout := env.NewLayout(t.TempDir())
	writeIndex(t, layout.InterIndexPath(), validLine)
	svc := &fakeCAService{layout: layout}
	m := NewCAMonitor(svc, config.Settings{})

	if svc.reader == nil {
		t.Fatalf("expected index reader to be installed")
	}
	entries, err := svc.reader(layout.InterIndexPath())
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected snapshot reader, got %v %v", entries, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Start(ctx) }()
	time.Sleep(50 * time.Millisecond)
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
