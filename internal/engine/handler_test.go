package engine

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doubleInput struct {
	Value float64 `json:"value"`
}

func (in doubleInput) Validate() Errors {
	v := NewValidation()
	v.Positive("value", in.Value)
	return v.Errors()
}

type doubleResult struct {
	Value float64 `json:"value"`
}

func double(in doubleInput) (doubleResult, error) {
	if in.Value > 100 {
		return doubleResult{}, &FieldError{Field: "value", Message: "too large to double"}
	}
	return doubleResult{Value: in.Value * 2}, nil
}

func post(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/calc", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestHandler_Success(t *testing.T) {
	rec := post(t, Handler(double), `{"value": 21}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var out doubleResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 42.0, out.Value)
}

func TestHandler_ValidationBlocksCompute(t *testing.T) {
	rec := post(t, Handler(double), `{"value": -3}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Errors Errors `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "must be greater than zero", body.Errors["value"])
}

func TestHandler_MalformedJSON(t *testing.T) {
	rec := post(t, Handler(double), `{"value": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_FieldErrorFromCompute(t *testing.T) {
	rec := post(t, Handler(double), `{"value": 101}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Errors Errors `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "too large to double", body.Errors["value"])
}
