package importer

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	batch "Wirefill/internal/calc/batch"
	wireway "Wirefill/internal/calc/wireway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func sampleRows() [][]any {
	return [][]any{
		header(),
		{"MSB-1", 2800, 3000, 6, 2, 0.96, 535, 1.156, 0.949, 1, 56.27},
		{},
		{"partial", 2800, 3000},
		{"", 100, 150, 1, 1, 1, 130, 0.446, 0.324, 1, 16},
	}
}

func TestReadItems(t *testing.T) {
	items, err := ReadItems(workbook(t, sampleRows()))
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "MSB-1", items[0].Label)
	assert.Equal(t, 535.0, *items[0].Input.BaseAmpacity)
	assert.Equal(t, 56.27, *items[0].Input.WirewayArea)

	assert.Equal(t, "partial", items[1].Label)
	assert.Nil(t, items[1].Input.Parallel)

	assert.Equal(t, "Row 5", items[2].Label)
}

func TestReadItems_HeaderOnly(t *testing.T) {
	_, err := ReadItems(workbook(t, [][]any{header()}))
	assert.ErrorContains(t, err, "no data rows")
}

func TestReadItems_NotAWorkbook(t *testing.T) {
	_, err := ReadItems(strings.NewReader("plain text"))
	assert.Error(t, err)
}

func TestImportHandler(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "feeders.xlsx")
	require.NoError(t, err)
	_, err = part.Write(workbook(t, sampleRows()).Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/wireway/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	(&Handler{}).Import(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var res batch.BatchResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
	assert.Equal(t, 3, res.Count)
	assert.Equal(t, 1, res.Pending)
	assert.Equal(t, wireway.StatusOK, res.Results[0].Outcome.Status)
}

func postWorkbook(t *testing.T, rows [][]any) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "feeders.xlsx")
	require.NoError(t, err)
	_, err = part.Write(workbook(t, rows).Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/wireway/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	(&Handler{}).Import(w, req)
	return w
}

func TestImportHandler_NonFiniteCellsArePending(t *testing.T) {
	w := postWorkbook(t, [][]any{
		header(),
		{"nan-area", 2800, 3000, 6, 2, 0.96, 535, 1.156, 0.949, 1, "NaN"},
		{"inf-area", 2800, 3000, 6, 2, 0.96, 535, 1.156, 0.949, 1, "Inf"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	var res batch.BatchResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, 2, res.Pending)
	assert.Equal(t, 0, res.Passed)
	assert.Nil(t, res.Results[0].Input.WirewayArea)
	assert.Equal(t, wireway.Placeholder, res.Results[1].Display.FillPercentage)
}

func TestImportHandler_NoFile(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("other", "x"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/wireway/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	(&Handler{}).Import(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportHandler(t *testing.T) {
	f := wireway.F
	in := batch.BatchInput{Items: []batch.Item{
		{Label: "MSB-1", Input: wireway.Input{
			FLA: f(2800), OCPD: f(3000), Parallel: f(6), Wireways: f(2), TempCorrection: f(0.96),
			BaseAmpacity: f(535), PhaseDiameter: f(1.156), GroundDiameter: f(0.949),
			GroundsPerRaceway: f(1), WirewayArea: f(56.27),
		}},
		{Label: "blank"},
	}}
	payload, err := json.Marshal(in)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	(&Handler{}).Export(w, httptest.NewRequest(http.MethodPost, "/api/wireway/export.xlsx", bytes.NewReader(payload)))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))

	book, err := excelize.OpenReader(w.Body)
	require.NoError(t, err)
	defer book.Close()
	rows, err := book.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Label", rows[0][0])
	assert.Equal(t, "MSB-1", rows[1][0])
	assert.Equal(t, "3081.6", rows[1][11])
	assert.Equal(t, "PASS", rows[1][12])
	assert.Equal(t, "PASS", rows[1][18])
	assert.Equal(t, wireway.Placeholder, rows[2][11])
}

func TestRound(t *testing.T) {
	assert.Equal(t, 18.0, round(18.044, 1))
	assert.Equal(t, 9.45, round(9.4460, 2))
}
