package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"customers-be/internal/apperror"
	"customers-be/internal/logger"
	"customers-be/internal/utils"

	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

type envelope struct {
	Message    string      `json:"message"`
	Data       any         `json:"data"`
	Pagination *pagination `json:"pagination,omitempty"`
}

type pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func writeData(w http.ResponseWriter, code int, message string, data any) {
	utils.WriteJSON(w, code, envelope{Message: message, Data: data})
}

func writeMessage(w http.ResponseWriter, message string) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": message})
}

// writeError maps the error taxonomy onto status codes. Only unclassified
// storage failures are logged; their text never reaches the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case apperror.IsValidation(err):
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, apperror.ErrDuplicatePhoneNumber):
		utils.WriteJSONError(w, apperror.ErrDuplicatePhoneNumber.Error(), http.StatusConflict)
	case errors.Is(err, apperror.ErrNotFound):
		utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
	default:
		logger.FromCtx(r.Context()).Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		utils.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperror.NewValidation("invalid request body")
	}
	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	id, ok := utils.ParseID(r.PathValue(name))
	if !ok {
		return 0, apperror.NewValidation("invalid %s", name)
	}
	return id, nil
}
