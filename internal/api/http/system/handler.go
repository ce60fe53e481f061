package system

import (
	apimodel "certmgr/internal/api/http/utils"
	"certmgr/internal/config"
	"certmgr/internal/core/ca"
	"certmgr/internal/utils"
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

// Health godoc
// @Summary service status
// @Description report service name, version and CA presence
// @Tags Status
// @Produce json
// @Success 200 {object} HealthResponse
// @Router / [get]
func (h *RequestHandler) Health(w http.ResponseWriter, r *http.Request) {
	apimodel.WriteJson(w, http.StatusOK, HealthResponse{
		Service:     utils.ServiceName,
		Version:     utils.ServiceVersion,
		Status:      "operational",
		Environment: h.settings.Environment,
		RootCA:      h.serviceHandler.RootCAExists(),
		InterCA:     h.serviceHandler.InterCAExists(),
	})
}

// Init godoc
// @Summary initialize the certificate manager
// @Description create the directory layout, save the configuration and render CA configs
// @Tags Setup
// @Accept json
// @Produce json
// @Param request body InitRequest false "Configuration overrides"
// @Success 200 {object} apimodel.ApiResponse{data=InitResponse}
// @Failure 400 {object} apimodel.ApiResponse
// @Failure 422 {object} apimodel.ApiResponse
// @Router /api/v1/init [post]
func (h *RequestHandler) Init(w http.ResponseWriter, r *http.Request) {
	// decode request
	var req InitRequest
	if err := apimodel.DecodeRequestBody(w, r, &req, true); err != nil {
		apimodel.RespondFail(w, http.StatusBadRequest, "invalid json: "+err.Error(), nil)
		return
	}

	// service: init
	cfg, err := h.serviceHandler.Init(
		ca.ServiceInitModel{
			Country:      req.Country,
			State:        req.State,
			Locality:     req.Locality,
			Organization: req.Organization,
			RootCACN:     req.RootCACN,
			InterCACN:    req.InterCACN,
		},
	)
	if err != nil {
		apimodel.RespondError(w, r, err)
		return
	}

	// encode response
	apimodel.RespondSuccess(w, http.StatusOK, "Certificate management system initialized successfully", InitResponse{Config: cfg})
}

// GetConfig godoc
// @Summary current configuration
// @Description return the active CA configuration
// @Tags Configuration
// @Produce json
// @Success 200 {object} apimodel.ApiResponse{data=config.Config}
// @Router /api/v1/config [get]
func (h *RequestHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.serviceHandler.GetConfig()
	if err != nil {
		apimodel.RespondError(w, r, err)
		return
	}
	apimodel.RespondSuccess(w, http.StatusOK, "configuration", cfg)
}
