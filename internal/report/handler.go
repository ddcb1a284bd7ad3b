package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/phpdave11/gofpdf"

	"megacalc/internal/registry"
)

// Input carries one finished calculation the client wants as a PDF sheet.
// Inputs and results arrive as already-rendered label/value pairs; the server
// does not recompute anything here.
type Input struct {
	Calculator string            `json:"calculator"` // registry slug
	Title      string            `json:"title"`
	Inputs     map[string]string `json:"inputs"`
	Results    map[string]string `json:"results"`
	Notes      string            `json:"notes"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	desc, ok := registry.Lookup(input.Calculator)
	if !ok {
		http.Error(w, "Unknown calculator", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = desc.Name
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Calculator: %s", desc.Name))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	writeSection(pdf, "Inputs", input.Inputs)
	writeSection(pdf, "Results", input.Results)

	if input.Notes != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"calculation.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

func writeSection(pdf *gofpdf.Fpdf, title string, rows map[string]string) {
	if len(rows) == 0 {
		return
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)

	keys := make([]string, 0, len(rows))
	for k := range rows {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		pdf.Cell(60, 6, k)
		pdf.Cell(0, 6, rows[k])
		pdf.Ln(6)
	}
	pdf.Ln(4)
}
