package wireway

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"Wirefill/internal/calc/tables"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerCalc_OK(t *testing.T) {
	body, err := json.Marshal(CalcRequest{Input: sampleInput()})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/wireway/calc", strings.NewReader(string(body)))
	w := httptest.NewRecorder()
	(&Handler{}).Calc(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "ok", resp["status"])
	result := resp["result"].(map[string]any)
	assert.Equal(t, true, result["ampacity_pass"])
	assert.Equal(t, true, result["fill_pass"])
	display := resp["display"].(map[string]any)
	assert.Equal(t, "3081.6 A", display["calculated_ampacity"])
}

func TestHandlerCalc_PendingIsNotAnError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/wireway/calc", strings.NewReader(`{"input":{"fla":100,"ocpd":null}}`))
	w := httptest.NewRecorder()
	(&Handler{}).Calc(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "pending", resp["status"])
	assert.NotContains(t, resp, "result")
	display := resp["display"].(map[string]any)
	assert.Equal(t, Placeholder, display["fill_percentage"])
}

func TestHandlerCalc_BadJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/wireway/calc", strings.NewReader(`{"input":`))
	w := httptest.NewRecorder()
	(&Handler{}).Calc(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRespond_AppliesSelectionChange(t *testing.T) {
	in := sampleInput()
	resp := Respond(CalcRequest{
		Input:     in,
		Selection: Selection{PhaseSize: tables.Size500, TempRating: tables.Temp90, GroundSize: tables.Size500},
		Previous:  &Selection{PhaseSize: tables.Size750, TempRating: tables.Temp90, GroundSize: tables.Size500},
	})

	assert.Equal(t, 430.0, *resp.Input.BaseAmpacity)
	assert.Equal(t, 0.949, *resp.Input.PhaseDiameter)
	assert.Equal(t, 0.949, *resp.Input.GroundDiameter)
	_, ok := resp.Result()
	assert.True(t, ok)
}

func TestParseValues_RoundTrip(t *testing.T) {
	f := Form{
		Selection: Selection{PhaseSize: tables.Size750, TempRating: tables.Temp90, GroundSize: tables.Size500},
		Input:     sampleInput(),
	}

	got, prev := ParseValues(f.Values())
	assert.Equal(t, f.Selection, got.Selection)
	assert.Equal(t, f.Selection, prev)
	assert.Equal(t, Evaluate(f.Input), Evaluate(got.Input))
}

func TestParseValues_BlankAndGarbage(t *testing.T) {
	v := url.Values{}
	v.Set(KeyFLA, "  ")
	v.Set(KeyOCPD, "abc")
	v.Set(KeyParallel, "6")
	v.Set(KeyWireways, "NaN")
	v.Set(KeyWirewayArea, "Inf")
	v.Set(KeyBaseAmpacity, "-infinity")
	v.Set(KeyPhaseSize, "5000")

	f, prev := ParseValues(v)
	assert.Nil(t, f.Input.FLA)
	assert.Nil(t, f.Input.OCPD)
	assert.Nil(t, f.Input.Wireways)
	assert.Nil(t, f.Input.WirewayArea)
	assert.Nil(t, f.Input.BaseAmpacity)
	assert.Equal(t, 6.0, *f.Input.Parallel)
	assert.Equal(t, tables.Size(""), f.Selection.PhaseSize)
	assert.Equal(t, Selection{}, prev)
}
