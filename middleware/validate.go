package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/JosephChoi/abcbond-api/utils"
)

// DecodeJSON decodes the request body into dst and runs the struct validator.
// It writes the error response itself; callers just return on error.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if ct := r.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "application/json") {
		utils.WriteJSON(w, http.StatusUnsupportedMediaType, utils.APIError{
			Error:   "Validation Error",
			Message: "Content-Type must be application/json",
		})
		return http.ErrNotSupported
	}
	// slow-read protection comes from the server read timeouts and the
	// request deadline set by TimeoutMiddleware
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIError{
			Error:   "Validation Error",
			Message: "Invalid JSON body",
		})
		return err
	}
	if err := utils.ValidateStruct(dst); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIError{
			Error:   "Validation Error",
			Message: err.Error(),
		})
		return err
	}
	return nil
}
