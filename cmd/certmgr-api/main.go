package main

import (
	httpapi "certmgr/internal/api/http"
	"certmgr/internal/api/http/logger"
	"certmgr/internal/cert"
	"certmgr/internal/config"
	"certmgr/internal/core/ca"
	"certmgr/internal/env"
	"certmgr/internal/monitor"
	"certmgr/internal/toolchain/openssl"
	"certmgr/internal/utils"
	"context"
	"crypto/tls"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// == settings ==
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}

	// == bootstrap ==
	layout := env.NewLayout(settings.Home)
	bootstrap := env.NewBootstrapManager(layout)
	if err := bootstrap.Setup(); err != nil {
		return err
	}
	service := ca.NewCAService(layout, settings)

	// == audit log ==
	auditPath := settings.AuditLog
	if auditPath == "" {
		auditPath = layout.AuditLogPath()
	}
	auditFile, err := logger.NewRotatingFile(auditPath)
	if err != nil {
		return err
	}
	defer auditFile.Close()
	auditLogger := &logger.JsonLineLogger{Out: auditFile}

	// == monitoring ==
	caMonitor := monitor.NewCAMonitor(service, settings)
	go func() {
		log.Println("[*] CA Monitoring Start")
		if err := caMonitor.Start(ctx); err != nil {
			log.Printf("monitor stopped: %v", err)
		}
	}()

	// == rest api ==
	node, _ := os.Hostname()
	srv := &http.Server{
		Addr:              settings.APIAddr,
		Handler:           httpapi.NewApiRouter(service, settings, auditLogger, node),
		ReadHeaderTimeout: 10 * time.Second,
		TLSConfig: &tls.Config{
			MinVersion: tls.VersionTLS13,
		},
	}

	errCh := make(chan error, 1)
	go func() {
		if settings.TLSEnabled() {
			if err := ensureServerCert(ctx, settings); err != nil {
				errCh <- err
				return
			}
			log.Printf("[*] api server listening on https://%s", settings.APIAddr)
			errCh <- srv.ListenAndServeTLS(settings.TLSCert, settings.TLSKey)
			return
		}
		log.Printf("[*] api server listening on http://%s", settings.APIAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	// == shutdown ==
	log.Println("[*] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func ensureServerCert(ctx context.Context, settings config.Settings) error {
	fqdn := utils.ResolveFQDN()
	names := []string{fqdn}
	if fqdn != "localhost" {
		names = append(names, "localhost")
	}
	manager := cert.NewCertManager(openssl.NewOpenSSLHandler(settings.OpenSSL))
	return manager.EnsureSelfSignedCert(ctx, settings.TLSCert, settings.TLSKey, cert.CertConfig{
		CommonName:  fqdn,
		DNSNames:    names,
		IPAddresses: []net.IP{net.ParseIP("127.0.0.1")},
		ValidFor:    365 * 24 * time.Hour,
	})
}
