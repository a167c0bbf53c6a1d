package importer

import (
	"log/slog"
	"net/http"

	batch "Wirefill/internal/calc/batch"
	"Wirefill/internal/httputil"
)

const MaxUploadSize = 10 << 20 // 10MB

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct{}

// Import evaluates every row of an uploaded workbook.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		httputil.Error(w, "File too big", http.StatusBadRequest)
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		httputil.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	items, err := ReadItems(file)
	if err != nil {
		slog.Warn("Workbook import rejected", "error", err)
		httputil.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	res, err := batch.Calculate(batch.BatchInput{Items: items})
	if err != nil {
		httputil.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	httputil.JSON(w, http.StatusOK, res)
}

// Export evaluates a JSON batch and returns it as a workbook.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var input batch.BatchInput
	if err := httputil.DecodeJSON(w, r, &input); err != nil {
		httputil.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := batch.Calculate(input)
	if err != nil {
		httputil.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", "attachment; filename=\"wireway-sizing.xlsx\"")
	if err := WriteResults(w, res); err != nil {
		slog.Error("Workbook export failed", "error", err)
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
}
