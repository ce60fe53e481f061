package http

import (
	"certmgr/internal/api/http/authority"
	"certmgr/internal/api/http/certificate"
	"certmgr/internal/api/http/logger"
	"certmgr/internal/api/http/system"
	"certmgr/internal/config"
	"certmgr/internal/core/ca"

	_ "certmgr/docs"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// @title Certificate Management API
// @version 1.0.0
// @description Two-tier PKI management on top of openssl
// @BasePath /
// @schemes http https

func NewApiRouter(serviceHandler ca.CAServiceHandler, settings config.Settings, auditLogger logger.Logger, node string) *chi.Mux {
	r := chi.NewRouter()
	systemHandler := system.NewRequestHandler(serviceHandler, settings)
	authorityHandler := authority.NewRequestHandler(serviceHandler, settings)
	certificateHandler := certificate.NewRequestHandler(serviceHandler, settings)

	// middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if auditLogger != nil {
		r.Use(logger.LoggerMiddleware(auditLogger, "certmgr-api", node))
	}

	// == swagger ==
	if !settings.IsProduction() {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	// == v1 ==
	// == system ==
	r.Get("/", systemHandler.Health)                 // health
	r.Post("/api/v1/init", systemHandler.Init)       // initialize layout and config
	r.Get("/api/v1/config", systemHandler.GetConfig) // show config

	// == ca ==
	r.Post("/api/v1/ca/root", authorityHandler.CreateRootCA)          // create root ca
	r.Post("/api/v1/ca/intermediate", authorityHandler.CreateInterCA) // create intermediate ca

	// == certificates ==
	r.Post("/api/v1/csr", certificateHandler.CreateCSR)                            // create csr
	r.Post("/api/v1/certificates/sign", certificateHandler.SignCert)               // sign csr
	r.Post("/api/v1/certificates/revoke", certificateHandler.RevokeCert)           // revoke certificate
	r.Get("/api/v1/certificates/list", certificateHandler.ListCerts)               // list index
	r.Get("/api/v1/certificates/download/{filename}", certificateHandler.Download) // download pem
	r.Get("/api/v1/requests", certificateHandler.ListRequests)                     // issuance registry

	// == crl ==
	r.Post("/api/v1/crl/update", certificateHandler.UpdateCRL) // regenerate crl

	return r
}
