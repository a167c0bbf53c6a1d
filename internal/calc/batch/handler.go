package batch

import (
	"net/http"

	"Wirefill/internal/httputil"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input BatchInput
	if err := httputil.DecodeJSON(w, r, &input); err != nil {
		httputil.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		httputil.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	httputil.JSON(w, http.StatusOK, res)
}
