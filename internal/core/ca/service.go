package ca

import (
	"certmgr/internal/config"
	"certmgr/internal/env"
	"certmgr/internal/index"
	"certmgr/internal/store/ism"
	"certmgr/internal/template"
	"certmgr/internal/toolchain"
	"certmgr/internal/toolchain/openssl"
	"certmgr/internal/utils"
	"log"
	"strings"
	"time"
)

const minPassphraseLen = 4

func NewCAService(layout env.Layout, settings config.Settings) *CAService {
	fs := utils.NewFilesystemExecutor()
	return &CAService{
		layout:            layout,
		filesystemHandler: fs,
		toolchainHandler:  openssl.NewOpenSSLHandler(settings.OpenSSL),
		renderer:          template.NewRenderer(),
		bootstrapManager:  env.NewBootstrapManager(layout),
		lock:              utils.NewFileLock(layout.LockPath, fs),

		configStore: config.NewConfigStore(layout.ConfigPath, utils.ResolveFQDN),
		ismHandler:  ism.NewIsmManager(ism.NewIsmStore(layout.RequestStorePath())),

		indexReader: index.ReadFile,
		newId:       utils.NewUlid,
		now:         time.Now,
	}
}

type CAService struct {
	layout            env.Layout
	filesystemHandler utils.FilesystemHandler
	toolchainHandler  toolchain.ToolchainHandler
	renderer          *template.Renderer
	bootstrapManager  *env.BootstrapManager
	lock              *utils.FileLock

	configStore *config.ConfigStore
	ismHandler  ism.IsmHandler

	indexReader func(path string) ([]index.Entry, error)
	newId       func() string
	now         func() time.Time
}

// SetIndexReader replaces how ListCerts reads the CA index, e.g. with a
// cached snapshot kept by a watcher.
func (s *CAService) SetIndexReader(reader func(path string) ([]index.Entry, error)) {
	s.indexReader = reader
}

func (s *CAService) Layout() env.Layout {
	return s.layout
}

func (s *CAService) RootCAExists() bool {
	return s.filesystemHandler.IsExist(s.layout.RootCertPath())
}

func (s *CAService) InterCAExists() bool {
	return s.filesystemHandler.IsExist(s.layout.InterCertPath())
}

func (s *CAService) requireInitialized(op string, cnfPath string) error {
	if !s.filesystemHandler.IsExist(cnfPath) {
		return newError(op, KindNotFound, ErrNotInitialized)
	}
	return nil
}

const backupSuffix = ".bak"

// replacement moves the files an overwrite replaces aside until the new
// ones are complete. Keys and certificates are read-only, so the tool
// cannot write over them in place.
type replacement struct {
	fs    utils.FilesystemHandler
	paths []string
	moved []string
}

func (s *CAService) replaceFiles(paths ...string) (*replacement, error) {
	r := &replacement{fs: s.filesystemHandler, paths: paths}
	for _, p := range paths {
		if !s.filesystemHandler.IsExist(p) {
			continue
		}
		if err := s.filesystemHandler.Rename(p, p+backupSuffix); err != nil {
			r.putBack()
			return nil, err
		}
		r.moved = append(r.moved, p)
	}
	return r, nil
}

// finish keeps the new files when err is nil and puts the old ones back
// otherwise.
func (r *replacement) finish(err error) {
	if err != nil {
		r.restore()
		return
	}
	for _, p := range r.moved {
		if rmErr := r.fs.Remove(p + backupSuffix); rmErr != nil {
			log.Printf("remove backup %s failed: %v", p+backupSuffix, rmErr)
		}
	}
}

func (r *replacement) restore() {
	for _, p := range r.paths {
		if r.fs.IsExist(p) {
			if err := r.fs.Remove(p); err != nil {
				log.Printf("remove partial %s failed: %v", p, err)
			}
		}
	}
	r.putBack()
}

func (r *replacement) putBack() {
	for _, p := range r.moved {
		if err := r.fs.Rename(p+backupSuffix, p); err != nil {
			log.Printf("restore %s failed: %v", p, err)
		}
	}
}

func validatePassphrase(op string, label string, passphrase string) error {
	if passphrase == "" {
		return invalidInput(op, "%s passphrase is required", label)
	}
	if len(passphrase) < minPassphraseLen {
		return invalidInput(op, "%s passphrase must be at least %d characters", label, minPassphraseLen)
	}
	return nil
}

func certTypeOrDefault(op string, certType string) (string, error) {
	certType = strings.TrimSpace(certType)
	if certType == "" {
		return CertTypeServer, nil
	}
	if !IsValidCertType(certType) {
		return "", invalidInput(op, "cert type must be server or client, got %q", certType)
	}
	return certType, nil
}

func (s *CAService) logResult(format string, args ...any) {
	log.Printf("[*] "+format, args...)
}
