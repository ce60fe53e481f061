package utils

import (
	"certmgr/internal/api/http/logger"
	"certmgr/internal/core/ca"
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

const maxBodyBytes = 1 << 20 // 1 MiB

type ApiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// DecodeRequestBody decodes a JSON body into v. Unknown fields are
// rejected. An empty body leaves v untouched when optional is set.
func DecodeRequestBody(w http.ResponseWriter, r *http.Request, v any, optional bool) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if optional && errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

func WriteJson(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

func RespondSuccess(w http.ResponseWriter, statusCode int, message string, data any) {
	WriteJson(w, statusCode, ApiResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func RespondFail(w http.ResponseWriter, statusCode int, message string, data any) {
	WriteJson(w, statusCode, ApiResponse{
		Success: false,
		Message: message,
		Data:    data,
	})
}

// RespondError maps a service error to its status code and records it as
// the audit reason. Tool failures carry the tool's stderr in the message.
func RespondError(w http.ResponseWriter, r *http.Request, err error) {
	logger.SetReason(r.Context(), err.Error())
	RespondFail(w, StatusFor(err), err.Error(), nil)
}

func StatusFor(err error) int {
	switch ca.KindOf(err) {
	case ca.KindNotFound:
		return http.StatusNotFound
	case ca.KindInvalidInput:
		return http.StatusUnprocessableEntity
	case ca.KindConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// PickPassphrase prefers the request value over the configured one.
func PickPassphrase(requested string, configured string) string {
	if requested != "" {
		return requested
	}
	return configured
}
