package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/dmontes/ipogen/internal/render"
	"github.com/dmontes/ipogen/internal/repository"
	"github.com/dmontes/ipogen/internal/service"
	"github.com/dmontes/ipogen/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	database := testutil.NewTestDB(t)
	orders := service.NewOrderService(render.NewRenderer(), repository.NewSQLiteOrderRepo(database))
	catalog := service.NewCatalogService(repository.NewSQLiteCatalogRepo(database))

	srv, err := NewServer(orders, catalog)
	require.NoError(t, err)
	return srv
}

func validForm() url.Values {
	return url.Values{
		"title":           {"Bridge Inspection"},
		"ipo_number":      {"IPO-042"},
		"client_name":     {"Acme County"},
		"agreement_date":  {"2024-08-15"},
		"project_manager": {"J. Rivera"},
		"project_number":  {"PN-100"},
		"task_110":        {"1"},
		"fee_110":         {"1200.00"},
		"task_210":        {"1"},
		"fee_210":         {"300.00"},
	}
}

func postForm(t *testing.T, srv *Server, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestServer_FormPage(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `name="title"`)
	assert.Contains(t, body, `name="ipo_number"`)
	assert.Contains(t, body, "Civil Engineering Design")
	assert.Contains(t, body, "$40,000.00", "catalog default fees should show as placeholders")
}

func TestServer_Generate(t *testing.T) {
	srv := newTestServer(t)

	rec := postForm(t, srv, validForm())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "IPO_IPO-042_Bridge_Inspection.pdf")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF-"))
}

func TestServer_Generate_MissingRequiredField(t *testing.T) {
	srv := newTestServer(t)

	form := validForm()
	form.Del("project_number")

	rec := postForm(t, srv, form)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "is required")
	// Prior input survives the round trip.
	assert.Contains(t, rec.Body.String(), "Bridge Inspection")
}

func TestServer_Generate_NoTasksSelected(t *testing.T) {
	srv := newTestServer(t)

	form := validForm()
	form.Del("task_110")
	form.Del("task_210")

	rec := postForm(t, srv, form)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "select at least one task")
}

func TestServer_Generate_BadFee(t *testing.T) {
	srv := newTestServer(t)

	form := validForm()
	form.Set("fee_110", "a lot")

	rec := postForm(t, srv, form)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "dollar amount")
}

func TestServer_Generate_BadDate(t *testing.T) {
	srv := newTestServer(t)

	form := validForm()
	form.Set("agreement_date", "August 15, 2024")

	rec := postForm(t, srv, form)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "YYYY-MM-DD")
}

func TestServer_Generate_RecordsHistory(t *testing.T) {
	database := testutil.NewTestDB(t)
	orders := service.NewOrderService(render.NewRenderer(), repository.NewSQLiteOrderRepo(database))
	catalog := service.NewCatalogService(repository.NewSQLiteCatalogRepo(database))
	srv, err := NewServer(orders, catalog)
	require.NoError(t, err)

	rec := postForm(t, srv, validForm())
	require.Equal(t, http.StatusOK, rec.Code)

	history, err := orders.History(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, int64(150000), history[0].TotalCents)
}
