package certificate

import (
	"certmgr/internal/api/http/logger"
	apimodel "certmgr/internal/api/http/utils"
	"certmgr/internal/config"
	"certmgr/internal/core/ca"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
)

func NewRequestHandler(serviceHandler ca.CAServiceHandler, settings config.Settings) *RequestHandler {
	return &RequestHandler{
		serviceHandler: serviceHandler,
		settings:       settings,
	}
}

type RequestHandler struct {
	serviceHandler ca.CAServiceHandler
	settings       config.Settings
}

// CreateCSR godoc
// @Summary create a certificate signing request
// @Description generate a 2048-bit key and a CSR with DNS/IP subject alternative names
// @Tags Certificates
// @Accept json
// @Produce json
// @Param request body CreateCSRRequest true "CSR parameters"
// @Success 200 {object} apimodel.ApiResponse{data=ca.CertReqResult}
// @Failure 422 {object} apimodel.ApiResponse
// @Router /api/v1/csr [post]
func (h *RequestHandler) CreateCSR(w http.ResponseWriter, r *http.Request) {
	// decode request
	var req CreateCSRRequest
	if err := apimodel.DecodeRequestBody(w, r, &req, false); err != nil {
		apimodel.RespondFail(w, http.StatusBadRequest, "invalid json: "+err.Error(), nil)
		return
	}
	if strings.TrimSpace(req.CommonName) == "" {
		apimodel.RespondFail(w, http.StatusUnprocessableEntity, "common_name is required", nil)
		return
	}

	// set log: target
	logger.SetTarget(r.Context(), logger.Target{
		CommonName: req.CommonName,
		CertType:   req.CertType,
		SANs:       append(append([]string{}, req.SANDNS...), req.SANIP...),
	})

	// service: create csr
	result, err := h.serviceHandler.CreateCertReq(
		r.Context(),
		ca.ServiceCertReqModel{
			CommonName: req.CommonName,
			CertType:   req.CertType,
			SANDNS:     req.SANDNS,
			SANIP:      req.SANIP,
		},
	)
	if err != nil {
		apimodel.RespondError(w, r, err)
		return
	}
	logger.PutExtra(r.Context(), "request_id", result.RequestId)

	// encode response
	apimodel.RespondSuccess(w, http.StatusOK, "CSR created successfully", result)
}

// SignCert godoc
// @Summary sign a certificate
// @Description issue a certificate from a CSR in the csr directory using the intermediate CA
// @Tags Certificates
// @Accept json
// @Produce json
// @Param request body SignCertRequest true "Sign parameters"
// @Success 200 {object} apimodel.ApiResponse{data=ca.SignResult}
// @Failure 404 {object} apimodel.ApiResponse
// @Failure 422 {object} apimodel.ApiResponse
// @Failure 500 {object} apimodel.ApiResponse
// @Router /api/v1/certificates/sign [post]
func (h *RequestHandler) SignCert(w http.ResponseWriter, r *http.Request) {
	// decode request
	var req SignCertRequest
	if err := apimodel.DecodeRequestBody(w, r, &req, false); err != nil {
		apimodel.RespondFail(w, http.StatusBadRequest, "invalid json: "+err.Error(), nil)
		return
	}
	if req.CSRFilename == "" {
		apimodel.RespondFail(w, http.StatusUnprocessableEntity, "csr_filename is required", nil)
		return
	}
	csrPath, err := h.serviceHandler.CSRFile(req.CSRFilename)
	if err != nil {
		apimodel.RespondError(w, r, err)
		return
	}

	// set log: target
	logger.SetTarget(r.Context(), logger.Target{File: req.CSRFilename, CertType: req.CertType})

	// service: sign
	result, err := h.serviceHandler.SignCert(
		r.Context(),
		ca.ServiceSignModel{
			CSRFile:    csrPath,
			CertType:   req.CertType,
			Passphrase: apimodel.PickPassphrase(req.Passphrase, h.settings.InterPassphrase),
		},
	)
	if err != nil {
		apimodel.RespondError(w, r, err)
		return
	}
	logger.SetTarget(r.Context(), logger.Target{Serial: result.Serial})

	// encode response
	apimodel.RespondSuccess(w, http.StatusOK, "Certificate signed successfully", result)
}

// RevokeCert godoc
// @Summary revoke a certificate
// @Description revoke an issued certificate and regenerate the CRL
// @Tags Certificates
// @Accept json
// @Produce json
// @Param request body RevokeCertRequest true "Revoke parameters"
// @Success 200 {object} apimodel.ApiResponse{data=ca.RevokeResult}
// @Failure 404 {object} apimodel.ApiResponse
// @Failure 422 {object} apimodel.ApiResponse
// @Failure 500 {object} apimodel.ApiResponse
// @Router /api/v1/certificates/revoke [post]
func (h *RequestHandler) RevokeCert(w http.ResponseWriter, r *http.Request) {
	// decode request
	var req RevokeCertRequest
	if err := apimodel.DecodeRequestBody(w, r, &req, false); err != nil {
		apimodel.RespondFail(w, http.StatusBadRequest, "invalid json: "+err.Error(), nil)
		return
	}
	if req.CertFilename == "" {
		apimodel.RespondFail(w, http.StatusUnprocessableEntity, "cert_filename is required", nil)
		return
	}
	if req.Reason != "" && !ca.IsValidReason(req.Reason) {
		apimodel.RespondFail(w, http.StatusUnprocessableEntity, "unknown revocation reason: "+req.Reason, nil)
		return
	}
	certPath, err := h.serviceHandler.IssuedFile(req.CertFilename)
	if err != nil {
		apimodel.RespondError(w, r, err)
		return
	}

	// set log: target
	logger.SetTarget(r.Context(), logger.Target{File: req.CertFilename, Reason: req.Reason})
	if req.Reason != "" {
		logger.SetAction(r.Context(), "pki.cert.revoke."+req.Reason)
	}

	// service: revoke
	result, err := h.serviceHandler.RevokeCert(
		r.Context(),
		ca.ServiceRevokeModel{
			CertFile:   certPath,
			Reason:     req.Reason,
			Passphrase: apimodel.PickPassphrase(req.Passphrase, h.settings.InterPassphrase),
		},
	)
	if err != nil {
		apimodel.RespondError(w, r, err)
		return
	}

	// encode response
	apimodel.RespondSuccess(w, http.StatusOK, "Certificate revoked successfully", result)
}

// UpdateCRL godoc
// @Summary update the CRL
// @Description regenerate the intermediate CA revocation list
// @Tags Revocation
// @Accept json
// @Produce json
// @Param request body UpdateCRLRequest false "CRL parameters"
// @Success 200 {object} apimodel.ApiResponse{data=ca.CRLResult}
// @Failure 500 {object} apimodel.ApiResponse
// @Router /api/v1/crl/update [post]
func (h *RequestHandler) UpdateCRL(w http.ResponseWriter, r *http.Request) {
	// decode request
	var req UpdateCRLRequest
	if err := apimodel.DecodeRequestBody(w, r, &req, true); err != nil {
		apimodel.RespondFail(w, http.StatusBadRequest, "invalid json: "+err.Error(), nil)
		return
	}

	// service: update crl
	result, err := h.serviceHandler.UpdateCRL(
		r.Context(),
		ca.ServiceCRLModel{
			Passphrase: apimodel.PickPassphrase(req.Passphrase, h.settings.InterPassphrase),
		},
	)
	if err != nil {
		apimodel.RespondError(w, r, err)
		return
	}

	// encode response
	apimodel.RespondSuccess(w, http.StatusOK, "CRL updated successfully", result)
}

// ListCerts godoc
// @Summary list issued certificates
// @Description list entries of the intermediate CA index
// @Tags Certificates
// @Produce json
// @Success 200 {object} apimodel.ApiResponse{data=ListCertsResponse}
// @Router /api/v1/certificates/list [get]
func (h *RequestHandler) ListCerts(w http.ResponseWriter, r *http.Request) {
	certs, err := h.serviceHandler.ListCerts()
	if err != nil {
		apimodel.RespondError(w, r, err)
		return
	}
	apimodel.RespondSuccess(w, http.StatusOK, "certificates listed", ListCertsResponse{
		Certificates: certs,
		Count:        len(certs),
	})
}

// ListRequests godoc
// @Summary list signing requests
// @Description list the issuance registry
// @Tags Certificates
// @Produce json
// @Success 200 {object} apimodel.ApiResponse{data=ListRequestsResponse}
// @Router /api/v1/requests [get]
func (h *RequestHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	list, err := h.serviceHandler.GetRequestList()
	if err != nil {
		apimodel.RespondError(w, r, err)
		return
	}
	apimodel.RespondSuccess(w, http.StatusOK, "requests listed", ListRequestsResponse{
		Requests: list,
		Count:    len(list),
	})
}

// Download godoc
// @Summary download a file
// @Description download an issued certificate, CSR or CRL by file name
// @Tags Certificates
// @Produce application/x-pem-file
// @Param filename path string true "File name"
// @Success 200 {file} file
// @Failure 404 {object} apimodel.ApiResponse
// @Router /api/v1/certificates/download/{filename} [get]
func (h *RequestHandler) Download(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	path, err := h.serviceHandler.Locate(filename)
	if err != nil {
		apimodel.RespondError(w, r, err)
		return
	}

	f, err := os.Open(path)
	if err != nil {
		apimodel.RespondFail(w, http.StatusNotFound, "file not found: "+filename, nil)
		return
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		apimodel.RespondError(w, r, err)
		return
	}
	if !fi.Mode().IsRegular() {
		apimodel.RespondFail(w, http.StatusNotFound, "file not found: "+filename, nil)
		return
	}

	// set log: target
	logger.SetTarget(r.Context(), logger.Target{File: filename})

	w.Header().Set("Content-Type", "application/x-pem-file")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filepath.Base(path)+`"`)
	http.ServeContent(w, r, filename, fi.ModTime(), f)
}
