package httpapi

import (
	"net/http"
	"strings"

	"customers-be/internal/utils"
)

// NewRouter registers every route on a ServeMux and wraps it with mws,
// the first middleware being the outermost.
func NewRouter(h *Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "OK"})
	})

	mux.HandleFunc("POST /api/customers", h.CreateCustomer)
	mux.HandleFunc("GET /api/customers", h.ListCustomers)
	mux.HandleFunc("GET /api/customers/{id}", h.GetCustomer)
	mux.HandleFunc("PUT /api/customers/{id}", h.UpdateCustomer)
	mux.HandleFunc("DELETE /api/customers/{id}", h.DeleteCustomer)

	mux.HandleFunc("POST /api/customers/{id}/addresses", h.CreateAddress)
	mux.HandleFunc("GET /api/customers/{id}/addresses", h.ListAddresses)
	mux.HandleFunc("PUT /api/addresses/{addressId}", h.UpdateAddress)
	mux.HandleFunc("DELETE /api/addresses/{addressId}", h.DeleteAddress)

	var handler http.Handler = jsonFallback(mux)
	for i := len(mws) - 1; i >= 0; i-- {
		handler = mws[i](handler)
	}
	return handler
}

// jsonFallback serves requests no route matches (404, or 405 with Allow)
// through the {"error": ...} envelope instead of the mux's plain text.
func jsonFallback(mux *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, pattern := mux.Handler(r); pattern == "" {
			w = &errorBodyWriter{ResponseWriter: w}
		}
		mux.ServeHTTP(w, r)
	})
}

// errorBodyWriter replaces whatever body follows WriteHeader with a JSON
// error named after the status.
type errorBodyWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *errorBodyWriter) WriteHeader(code int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.Header().Del("X-Content-Type-Options")
	utils.WriteJSONError(w.ResponseWriter, strings.ToLower(http.StatusText(code)), code)
}

func (w *errorBodyWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusNotFound)
	}
	return len(b), nil
}
