package tables

import (
	"net/http"
	"strconv"

	"Wirefill/internal/httputil"
)

type Handler struct{}

type SizeRow struct {
	Size       Size    `json:"size"`
	Ampacity60 float64 `json:"ampacity_60"`
	Ampacity75 float64 `json:"ampacity_75"`
	Ampacity90 float64 `json:"ampacity_90"`
	DiameterIn float64 `json:"diameter_in"`
}

func Rows() []SizeRow {
	rows := make([]SizeRow, 0, len(conductors))
	for _, c := range conductors {
		rows = append(rows, SizeRow{
			Size:       c.Size,
			Ampacity60: c.Ampacity[Temp60],
			Ampacity75: c.Ampacity[Temp75],
			Ampacity90: c.Ampacity[Temp90],
			DiameterIn: c.DiameterIn,
		})
	}
	return rows
}

func (h *Handler) Sizes(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, Rows())
}

func (h *Handler) Ampacity(w http.ResponseWriter, r *http.Request) {
	size := Size(r.URL.Query().Get("size"))
	temp, ok := ParseTempRating(r.URL.Query().Get("temp"))
	if !ok {
		httputil.Error(w, "Unknown temperature rating", http.StatusNotFound)
		return
	}
	a, ok := Ampacity(size, temp)
	if !ok {
		httputil.Error(w, "Unknown conductor size", http.StatusNotFound)
		return
	}
	httputil.JSON(w, http.StatusOK, map[string]any{"size": size, "temp": temp, "ampacity": a})
}

func (h *Handler) Diameter(w http.ResponseWriter, r *http.Request) {
	size := Size(r.URL.Query().Get("size"))
	d, ok := Diameter(size)
	if !ok {
		httputil.Error(w, "Unknown conductor size", http.StatusNotFound)
		return
	}
	httputil.JSON(w, http.StatusOK, map[string]any{"size": size, "diameter_in": d})
}

func (h *Handler) Correction(w http.ResponseWriter, r *http.Request) {
	ambient, err := strconv.ParseFloat(r.URL.Query().Get("ambient"), 64)
	if err != nil {
		httputil.Error(w, "ambient must be a number", http.StatusBadRequest)
		return
	}
	temp, ok := ParseTempRating(r.URL.Query().Get("temp"))
	if !ok {
		httputil.Error(w, "Unknown temperature rating", http.StatusNotFound)
		return
	}
	f, ok := CorrectionFactor(ambient, temp)
	if !ok {
		httputil.Error(w, "No correction factor for that ambient", http.StatusNotFound)
		return
	}
	httputil.JSON(w, http.StatusOK, map[string]any{"ambient_c": ambient, "temp": temp, "factor": f})
}
