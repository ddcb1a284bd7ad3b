package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	"megacalc/internal/calc/convert"
)

type Handler struct{}

type ConvertImportResult struct {
	Count   int              `json:"count"`
	Skipped int              `json:"skipped"`
	Results []convert.Result `json:"results"`
}

// Convert accepts a spreadsheet of conversion rows (value, from, to), one
// header row, and converts every parseable row. Bad rows are skipped and
// counted rather than failing the upload.
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	out := ConvertImportResult{Results: []convert.Result{}}
	for i := 1; i < len(rows); i++ {
		input, err := parseRow(rows[i])
		if err != nil {
			out.Skipped++
			continue
		}
		if errs := input.Validate(); !errs.OK() {
			out.Skipped++
			continue
		}
		res, err := convert.Calculate(input)
		if err != nil {
			out.Skipped++
			continue
		}
		out.Results = append(out.Results, res)
	}
	out.Count = len(out.Results)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

func parseRow(row []string) (convert.Input, error) {
	// expected: value, from, to
	if len(row) < 3 {
		return convert.Input{}, fmt.Errorf("bad row")
	}
	value, err := toFloat(row[0])
	if err != nil {
		return convert.Input{}, err
	}
	return convert.Input{Value: value, From: row[1], To: row[2]}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
