package monitor

import (
	"certmgr/internal/config"
	"certmgr/internal/core/ca"
	"certmgr/internal/index"
	"context"
	"log"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

func NewCAMonitor(service CAService, settings config.Settings) *CAMonitor {
	resolver := NewIndexResolver(service.Layout().InterIndexPath())
	service.SetIndexReader(resolver.Read)
	return &CAMonitor{
		resolver:  resolver,
		refresher: NewCRLRefresher(service, settings.InterPassphrase, settings.CRLRefresh),
	}
}

type CAMonitor struct {
	resolver  *IndexResolver
	refresher *CRLRefresher
}

// Start keeps the index snapshot current and runs the CRL refresher
// until ctx is done.
func (m *CAMonitor) Start(ctx context.Context) error {
	var wg sync.WaitGroup
	errCh := make(chan error, 1)

	// watch index update
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := m.resolver.Watch(ctx); err != nil && ctx.Err() == nil {
			log.Printf("index watch stopped: %v", err)
			errCh <- err
		}
	}()

	// periodic crl
	if m.refresher.Enabled() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.refresher.Run(ctx)
		}()
	}

	wg.Wait()
	close(errCh)
	return <-errCh
}

// == index ==

func NewIndexResolver(path string) *IndexResolver {
	resolver := &IndexResolver{path: path}
	resolver.Refresh()
	return resolver
}

// IndexResolver holds the last parsed copy of the intermediate CA index
// together with the file state it was parsed from.
type IndexResolver struct {
	path    string
	mu      sync.RWMutex
	entries []index.Entry
	stamp   os.FileInfo
}

func (r *IndexResolver) Refresh() {
	if _, err := r.load(); err != nil {
		log.Printf("index refresh failed: %v", err)
	}
}

func (r *IndexResolver) load() ([]index.Entry, error) {
	fi, err := os.Stat(r.path)
	if err != nil {
		r.invalidate()
		return index.ReadFile(r.path)
	}
	entries, err := index.ReadFile(r.path)

	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.entries = nil
		r.stamp = nil
		return nil, err
	}
	r.entries = entries
	r.stamp = fi
	return slices.Clone(entries), nil
}

func (r *IndexResolver) invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
	r.stamp = nil
}

// Read satisfies the CA service index reader. The snapshot is served
// only while the file is unchanged since it was parsed. Paths other than
// the watched one fall through to a direct read.
func (r *IndexResolver) Read(path string) ([]index.Entry, error) {
	if path != r.path {
		return index.ReadFile(path)
	}
	if fi, err := os.Stat(path); err == nil {
		r.mu.RLock()
		if r.stamp != nil && sameFileState(r.stamp, fi) {
			entries := slices.Clone(r.entries)
			r.mu.RUnlock()
			return entries, nil
		}
		r.mu.RUnlock()
	}
	return r.load()
}

func sameFileState(a os.FileInfo, b os.FileInfo) bool {
	return os.SameFile(a, b) && a.Size() == b.Size() && a.ModTime().Equal(b.ModTime())
}

// Watch reparses the index whenever it is rewritten. The snapshot is
// dropped once Watch returns.
func (r *IndexResolver) Watch(ctx context.Context) error {
	defer r.invalidate()

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	dir := filepath.Dir(r.path)
	base := filepath.Base(r.path)

	if err := w.Add(dir); err != nil {
		return err
	}
	log.Printf("[*] watching %s", r.path)

	var pending atomic.Bool
	trigger := func() {
		if pending.CompareAndSwap(false, true) {
			go func() {
				time.Sleep(50 * time.Millisecond)
				pending.Store(false)
				r.Refresh()
				log.Printf("[*] index reloaded: %s", r.path)
			}()
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				trigger()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("index watch error: %v", err)
		}
	}
}

// == crl ==

func NewCRLRefresher(service CAService, passphrase string, interval time.Duration) *CRLRefresher {
	return &CRLRefresher{
		service:    service,
		passphrase: passphrase,
		interval:   interval,
	}
}

type CRLRefresher struct {
	service    CAService
	passphrase string
	interval   time.Duration
}

func (c *CRLRefresher) Enabled() bool {
	return c.interval > 0 && c.passphrase != ""
}

func (c *CRLRefresher) Run(ctx context.Context) {
	log.Printf("[*] crl refresh every %s", c.interval)
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.refresh(ctx)
		}
	}
}

func (c *CRLRefresher) refresh(ctx context.Context) {
	if !c.service.InterCAExists() {
		return
	}
	result, err := c.service.UpdateCRL(ctx, ca.ServiceCRLModel{Passphrase: c.passphrase})
	if err != nil {
		log.Printf("crl refresh failed: %v", err)
		return
	}
	log.Printf("[*] crl refreshed: %s", result.CRLFile)
}
