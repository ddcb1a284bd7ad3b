package registry

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogIntegrity(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)

	seen := map[string]bool{}
	for _, d := range all {
		assert.False(t, seen[d.Slug], "duplicate slug %s", d.Slug)
		seen[d.Slug] = true
		assert.NotEmpty(t, d.Name, "%s needs a name", d.Slug)
		assert.NotEmpty(t, d.Category, "%s needs a category", d.Slug)
		assert.NotEmpty(t, d.Summary, "%s needs a summary", d.Slug)
		assert.NotNil(t, d.Handler(), "%s needs a handler", d.Slug)
	}
}

func TestLookup(t *testing.T) {
	d, ok := Lookup("raid-capacity")
	require.True(t, ok)
	assert.Equal(t, "RAID Capacity", d.Name)

	_, ok = Lookup("perpetual-motion")
	assert.False(t, ok)
}

func TestSearch(t *testing.T) {
	hits := Search("volatility")
	require.Len(t, hits, 1)
	assert.Equal(t, "implied-volatility", hits[0].Slug)

	assert.Empty(t, Search(""))
	assert.Empty(t, Search("zzzznope"))

	// Category terms match every calculator in the category.
	health := Search("health")
	assert.GreaterOrEqual(t, len(health), 3)
}

func newRouter() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/tools", ListHandler).Methods("GET")
	r.HandleFunc("/api/tools/search", SearchHandler).Methods("GET")
	r.HandleFunc("/api/tools/{slug}/calc", CalcHandler).Methods("POST")
	return r
}

func TestCalcHandler_Dispatch(t *testing.T) {
	router := newRouter()

	body := `{"level":"5","disk_count":4,"disk_size_tb":2}`
	req := httptest.NewRequest(http.MethodPost, "/api/tools/raid-capacity/calc", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var out struct {
		UsableTB float64 `json:"usable_tb"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 6.0, out.UsableTB)
}

func TestCalcHandler_UnknownSlug(t *testing.T) {
	router := newRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/tools/nonsense/calc", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCalcHandler_ValidationError(t *testing.T) {
	router := newRouter()
	body := `{"level":"10","disk_count":5,"disk_size_tb":2}`
	req := httptest.NewRequest(http.MethodPost, "/api/tools/raid-capacity/calc", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var out struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Contains(t, out.Errors, "disk_count")
}

func TestListHandler_GroupedByCategory(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/tools", nil)
	rec := httptest.NewRecorder()
	ListHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var grouped map[string][]Descriptor
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &grouped))
	assert.Contains(t, grouped, "finance")
	assert.Contains(t, grouped, "engineering")
}
