package importer

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func uploadSheet(t *testing.T, rows [][]any) *httptest.ResponseRecorder {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	var xlsx bytes.Buffer
	require.NoError(t, f.Write(&xlsx))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "conversions.xlsx")
	require.NoError(t, err)
	_, err = part.Write(xlsx.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/tools/unit-convert/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	(&Handler{}).Convert(rec, req)
	return rec
}

func TestConvert(t *testing.T) {
	rec := uploadSheet(t, [][]any{
		{"value", "from", "to"},
		{1, "mi", "km"},
		{10, "acre", "ha"},
		{"garbage", "mi", "km"}, // unparseable value, skipped
		{5, "kg", "km"},         // category mismatch, skipped
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var out ConvertImportResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 2, out.Count)
	assert.Equal(t, 2, out.Skipped)
	require.Len(t, out.Results, 2)
	assert.InDelta(t, 1.609344, out.Results[0].Value, 1e-9)
	assert.InDelta(t, 4.04686, out.Results[1].Value, 1e-9)
}

func TestConvert_EmptySheet(t *testing.T) {
	rec := uploadSheet(t, [][]any{{"value", "from", "to"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConvert_NoFile(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/tools/unit-convert/import", nil)
	rec := httptest.NewRecorder()
	(&Handler{}).Convert(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
