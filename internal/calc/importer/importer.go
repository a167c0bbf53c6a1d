package importer

import (
	"fmt"
	"io"
	"strings"

	batch "Wirefill/internal/calc/batch"
	wireway "Wirefill/internal/calc/wireway"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Sizing"

// Columns: label, then the ten inputs in wireway.InputKeys order.
var resultHeaders = []string{
	"Calculated ampacity (A)", "Ampacity check", "Conductors per raceway",
	"Total phase area (in²)", "Total ground area (in²)", "Total fill area (in²)",
	"Fill (%)", "Fill check",
}

func header() []any {
	row := []any{"Label"}
	for _, key := range wireway.InputKeys {
		row = append(row, wireway.InputLabels[key])
	}
	return row
}

// ReadItems parses the first sheet of a workbook. The first row is a header;
// blank rows are skipped and blank cells become missing inputs.
func ReadItems(r io.Reader) ([]batch.Item, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no data rows", sheet)
	}

	var items []batch.Item
	for i := 1; i < len(rows); i++ {
		item, ok := parseRow(rows[i])
		if !ok {
			continue
		}
		if item.Label == "" {
			item.Label = fmt.Sprintf("Row %d", i+1)
		}
		items = append(items, item)
	}
	return items, nil
}

func parseRow(row []string) (batch.Item, bool) {
	blank := true
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			blank = false
			break
		}
	}
	if blank {
		return batch.Item{}, false
	}

	item := batch.Item{Label: strings.TrimSpace(row[0])}
	for i, key := range wireway.InputKeys {
		col := i + 1
		if col < len(row) {
			item.Input.Set(key, wireway.ParseNumber(row[col]))
		}
	}
	return item, true
}

// WriteResults renders a batch result as a workbook with inputs and results
// side by side.
func WriteResults(w io.Writer, res batch.BatchResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	head := header()
	for _, h := range resultHeaders {
		head = append(head, h)
	}
	if err := f.SetSheetRow(sheetName, "A1", &head); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(head), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, "A1", last, bold); err != nil {
		return err
	}

	for i, row := range res.Results {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := resultRow(row)
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return err
		}
	}
	return f.Write(w)
}

func resultRow(row batch.Row) []any {
	values := []any{row.Label}
	for _, key := range wireway.InputKeys {
		if v := row.Input.Get(key); v != nil {
			values = append(values, *v)
		} else {
			values = append(values, "")
		}
	}

	res, ok := row.Outcome.Result()
	if !ok {
		for range resultHeaders {
			values = append(values, wireway.Placeholder)
		}
		return values
	}
	return append(values,
		round(res.CalculatedAmpacity, 1), passFail(res.AmpacityPass),
		res.ConductorsPerRaceway,
		round(res.TotalPhaseArea, 2), round(res.TotalGroundArea, 2), round(res.TotalFillArea, 2),
		round(res.FillPercentage, 1), passFail(res.FillPass),
	)
}

func passFail(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}
