package config

import (
	"certmgr/internal/utils"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// NewConfigStore resolves the FQDN at most once per store, and only when
// the stored config lacks the fields derived from it.
func NewConfigStore(path string, fqdnResolver func() string) *ConfigStore {
	fs := utils.NewFilesystemExecutor()
	if fqdnResolver == nil {
		fqdnResolver = func() string { return "localhost" }
	}
	return &ConfigStore{
		path:              path,
		fqdnResolver:      sync.OnceValue(fqdnResolver),
		lock:              utils.NewFileLock(path+".lock", fs),
		filesystemHandler: fs,
	}
}

type ConfigStore struct {
	path              string
	fqdnResolver      func() string
	lock              *utils.FileLock
	filesystemHandler utils.FilesystemHandler
}

func (s *ConfigStore) Path() string {
	return s.path
}

// Load returns the stored config, or defaults when the file is missing.
func (s *ConfigStore) Load() (Config, error) {
	var cfg Config
	err := s.lock.WithLock(func() error {
		c, err := s.loadOrInit()
		if err != nil {
			return err
		}
		cfg = c
		return nil
	})
	return cfg, err
}

func (s *ConfigStore) Save(cfg Config) error {
	return s.lock.WithLock(func() error {
		return s.atomicSave(cfg)
	})
}

// Update applies fn to the stored config and persists the result.
func (s *ConfigStore) Update(fn func(cfg *Config) error) (Config, error) {
	var out Config
	err := s.lock.WithLock(func() error {
		cfg, err := s.loadOrInit()
		if err != nil {
			return err
		}
		if err := fn(&cfg); err != nil {
			return err
		}
		if err := s.atomicSave(cfg); err != nil {
			return err
		}
		out = cfg
		return nil
	})
	return out, err
}

func (s *ConfigStore) defaults() Config {
	return Default(s.fqdnResolver())
}

func (s *ConfigStore) loadOrInit() (Config, error) {
	b, err := s.filesystemHandler.ReadFile(s.path)
	if err != nil {
		if s.filesystemHandler.IsNotExist(err) {
			return s.defaults(), nil
		}
		return Config{}, err
	}

	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("config json broken: %w", err)
	}
	// fields missing from older files fall back to defaults
	if cfg.FQDN != "" && cfg.RootCACN != "" && cfg.InterCACN != "" {
		return Default(cfg.FQDN).Merge(cfg), nil
	}
	return s.defaults().Merge(cfg), nil
}

func (s *ConfigStore) atomicSave(cfg Config) error {
	tmp := s.path + ".tmp"

	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')

	f, err := s.filesystemHandler.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(b); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return s.filesystemHandler.Rename(tmp, s.path)
}
