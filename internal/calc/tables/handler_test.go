package tables

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Ampacity(t *testing.T) {
	h := &Handler{}
	w := httptest.NewRecorder()
	h.Ampacity(w, httptest.NewRequest(http.MethodGet, "/api/tables/ampacity?size=750&temp=90", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 535.0, resp["ampacity"])
	assert.Equal(t, 90.0, resp["temp"])
}

func TestHandler_AmpacityMiss(t *testing.T) {
	h := &Handler{}
	w := httptest.NewRecorder()
	h.Ampacity(w, httptest.NewRequest(http.MethodGet, "/api/tables/ampacity?size=2000&temp=90", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	h.Ampacity(w, httptest.NewRequest(http.MethodGet, "/api/tables/ampacity?size=750&temp=105", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Diameter(t *testing.T) {
	h := &Handler{}
	w := httptest.NewRecorder()
	h.Diameter(w, httptest.NewRequest(http.MethodGet, "/api/tables/diameter?size=500", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 0.949, resp["diameter_in"])
}

func TestHandler_Sizes(t *testing.T) {
	h := &Handler{}
	w := httptest.NewRecorder()
	h.Sizes(w, httptest.NewRequest(http.MethodGet, "/api/tables/sizes", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var rows []SizeRow
	require.NoError(t, json.NewDecoder(w.Body).Decode(&rows))
	require.Len(t, rows, len(Sizes()))
	assert.Equal(t, Size14, rows[0].Size)
}

func TestHandler_Correction(t *testing.T) {
	h := &Handler{}
	w := httptest.NewRecorder()
	h.Correction(w, httptest.NewRequest(http.MethodGet, "/api/tables/correction?ambient=40&temp=75", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 0.88, resp["factor"])

	w = httptest.NewRecorder()
	h.Correction(w, httptest.NewRequest(http.MethodGet, "/api/tables/correction?ambient=hot&temp=75", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
