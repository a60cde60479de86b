package controllerImp

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"silage/database"
	"silage/entities"
	"silage/pkg/crud/repositoryImp"
	"silage/pkg/crud/serviceImp"
)

func newServer(t *testing.T) *echo.Echo {
	t.Helper()
	db, err := database.Open("sqlite", "file::memory:", zap.NewNop())
	require.NoError(t, err)
	svc := serviceImp.New[entities.Trench]("trench", repositoryImp.New[entities.Trench](db, "trenches_farm_name_uniq"), serviceImp.Hooks[entities.Trench]{}, zap.NewNop())
	e := echo.New()
	New(svc, Uint("farm_id")).Register(e.Group("/api/v1/trench"), "/trenches")
	return e
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCrud_Lifecycle(t *testing.T) {
	e := newServer(t)

	rec := do(e, http.MethodPost, "/api/v1/trench/trenches", `{"farm_id":1,"name":"T1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1,"farm_id":1,"name":"T1"}`, rec.Body.String())

	do(e, http.MethodPost, "/api/v1/trench/trenches", `{"farm_id":2,"name":"T2"}`)

	rec = do(e, http.MethodGet, "/api/v1/trench/trenches?farm_id=2", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":2,"farm_id":2,"name":"T2"}]`, rec.Body.String())

	rec = do(e, http.MethodPut, "/api/v1/trench/trenches/1", `{"farm_id":1,"name":"North"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"farm_id":1,"name":"North"}`, rec.Body.String())

	rec = do(e, http.MethodDelete, "/api/v1/trench/trenches/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"deleted"}`, rec.Body.String())

	rec = do(e, http.MethodGet, "/api/v1/trench/trenches/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCrud_Errors(t *testing.T) {
	e := newServer(t)

	rec := do(e, http.MethodGet, "/api/v1/trench/trenches?farm_id=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid farm_id"}`, rec.Body.String())

	rec = do(e, http.MethodPost, "/api/v1/trench/trenches", `{"farm_id":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodDelete, "/api/v1/trench/trenches/0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	do(e, http.MethodPost, "/api/v1/trench/trenches", `{"farm_id":1,"name":"T1"}`)
	rec = do(e, http.MethodPost, "/api/v1/trench/trenches", `{"farm_id":1,"name":"T1"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "trenches_farm_name_uniq")
}
