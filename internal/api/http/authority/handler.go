package authority

import (
	"certmgr/internal/api/http/logger"
	apimodel "certmgr/internal/api/http/utils"
	"certmgr/internal/config"
	"certmgr/internal/core/ca"
	"net/http"
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

// CreateRootCA godoc
// @Summary create the root CA
// @Description generate an encrypted 4096-bit key and a self-signed root certificate
// @Tags Certificate Authority
// @Accept json
// @Produce json
// @Param request body CreateRootCARequest false "Root CA options"
// @Success 200 {object} apimodel.ApiResponse{data=ca.RootCAResult}
// @Failure 409 {object} apimodel.ApiResponse
// @Failure 500 {object} apimodel.ApiResponse
// @Router /api/v1/ca/root [post]
func (h *RequestHandler) CreateRootCA(w http.ResponseWriter, r *http.Request) {
	// decode request
	var req CreateRootCARequest
	if err := apimodel.DecodeRequestBody(w, r, &req, true); err != nil {
		apimodel.RespondFail(w, http.StatusBadRequest, "invalid json: "+err.Error(), nil)
		return
	}
	if req.Overwrite {
		logger.SetAction(r.Context(), "pki.ca.root.overwrite")
	}

	// service: create root CA
	result, err := h.serviceHandler.CreateRootCA(
		r.Context(),
		ca.ServiceRootCAModel{
			Passphrase: apimodel.PickPassphrase(req.Passphrase, h.settings.RootPassphrase),
			Overwrite:  req.Overwrite,
		},
	)
	if err != nil {
		apimodel.RespondError(w, r, err)
		return
	}

	// set log: target
	logger.SetTarget(r.Context(), logger.Target{File: result.Certificate})

	// encode response
	apimodel.RespondSuccess(w, http.StatusOK, "Root CA created successfully", result)
}

// CreateInterCA godoc
// @Summary create the intermediate CA
// @Description generate the intermediate key, sign it with the root CA and build the chain
// @Tags Certificate Authority
// @Accept json
// @Produce json
// @Param request body CreateInterCARequest false "Intermediate CA options"
// @Success 200 {object} apimodel.ApiResponse{data=ca.InterCAResult}
// @Failure 404 {object} apimodel.ApiResponse
// @Failure 409 {object} apimodel.ApiResponse
// @Failure 500 {object} apimodel.ApiResponse
// @Router /api/v1/ca/intermediate [post]
func (h *RequestHandler) CreateInterCA(w http.ResponseWriter, r *http.Request) {
	// decode request
	var req CreateInterCARequest
	if err := apimodel.DecodeRequestBody(w, r, &req, true); err != nil {
		apimodel.RespondFail(w, http.StatusBadRequest, "invalid json: "+err.Error(), nil)
		return
	}
	if req.Overwrite {
		logger.SetAction(r.Context(), "pki.ca.intermediate.overwrite")
	}

	// service: create intermediate CA
	result, err := h.serviceHandler.CreateInterCA(
		r.Context(),
		ca.ServiceInterCAModel{
			RootPassphrase: apimodel.PickPassphrase(req.RootPassphrase, h.settings.RootPassphrase),
			Passphrase:     apimodel.PickPassphrase(req.Passphrase, h.settings.InterPassphrase),
			Overwrite:      req.Overwrite,
		},
	)
	if err != nil {
		apimodel.RespondError(w, r, err)
		return
	}

	// set log: target
	logger.SetTarget(r.Context(), logger.Target{File: result.Certificate})

	// encode response
	apimodel.RespondSuccess(w, http.StatusOK, "Intermediate CA created successfully", result)
}
