package wireway

import (
	"net/http"

	"Wirefill/internal/httputil"
)

type CalcRequest struct {
	Input     Input      `json:"input"`
	Selection Selection  `json:"selection"`
	Previous  *Selection `json:"previous,omitempty"`
}

type CalcResponse struct {
	Outcome
	Input   Input   `json:"input"`
	Display Display `json:"display"`
}

type Handler struct{}

// Calc evaluates one snapshot. When a previous selection is sent, the
// table-derived fields are refreshed first.
func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var req CalcRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		httputil.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	httputil.JSON(w, http.StatusOK, Respond(req))
}

func Respond(req CalcRequest) CalcResponse {
	f := Form{Selection: req.Selection, Input: req.Input}
	if req.Previous != nil {
		f = f.ApplySelection(*req.Previous)
	}
	out := Evaluate(f.Input)
	return CalcResponse{
		Outcome: out,
		Input:   f.Input,
		Display: Format(out, f.Input),
	}
}
