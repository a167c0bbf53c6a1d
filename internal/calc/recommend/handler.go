package recommend

import (
	"errors"
	"net/http"

	"Wirefill/internal/httputil"
)

type Handler struct{}

func (h *Handler) Conductor(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := httputil.DecodeJSON(w, r, &input); err != nil {
		httputil.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := PhaseConductor(input)
	if errors.Is(err, ErrNoSize) {
		httputil.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		httputil.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	httputil.JSON(w, http.StatusOK, res)
}
