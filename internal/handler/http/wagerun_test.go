package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/construxhq/ops-backend-go/internal/domain/wagerun"
	"github.com/construxhq/ops-backend-go/internal/handler/http/response"
	"github.com/construxhq/ops-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRunID = "123e4567-e89b-42d3-a456-426614174000"

type stubWageRunService struct {
	generateResp wagerun.WageRunResponse
	generateErr  error
	getResp      wagerun.WageRunResponse
	getErr       error
	listResp     wagerun.ListWageRunResponse
	finalizeErr  error
	deleteErr    error
}

func (s *stubWageRunService) GenerateDraft(_ context.Context, _ wagerun.GenerateWageRunRequest) (wagerun.WageRunResponse, error) {
	return s.generateResp, s.generateErr
}

func (s *stubWageRunService) Get(_ context.Context, _ string) (wagerun.WageRunResponse, error) {
	return s.getResp, s.getErr
}

func (s *stubWageRunService) List(_ context.Context, _ wagerun.WageRunFilter) (wagerun.ListWageRunResponse, error) {
	return s.listResp, nil
}

func (s *stubWageRunService) Finalize(_ context.Context, _ string) error {
	return s.finalizeErr
}

func (s *stubWageRunService) Delete(_ context.Context, _ string) error {
	return s.deleteErr
}

func wageRunTestRouter(svc wagerun.WageRunService) chi.Router {
	h := NewWageRunHandler(svc)
	r := chi.NewRouter()
	r.Post("/wage-runs", h.Generate)
	r.Get("/wage-runs", h.List)
	r.Get("/wage-runs/{id}", h.Get)
	r.Post("/wage-runs/{id}/finalize", h.Finalize)
	r.Delete("/wage-runs/{id}", h.Delete)
	return r
}

func doRequest(t *testing.T, router chi.Router, method, target, body string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec, envelope
}

func TestWageRunHandler_Generate(t *testing.T) {
	svc := &stubWageRunService{
		generateResp: wagerun.WageRunResponse{ID: testRunID, Status: "draft"},
	}
	router := wageRunTestRouter(svc)

	rec, envelope := doRequest(t, router, http.MethodPost, "/wage-runs",
		`{"start_date":"2025-08-01","end_date":"2025-08-15","pay_type":"hourly"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, envelope.Success)
}

func TestWageRunHandler_Generate_InvalidBody(t *testing.T) {
	router := wageRunTestRouter(&stubWageRunService{})

	rec, envelope := doRequest(t, router, http.MethodPost, "/wage-runs", `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "BAD_REQUEST", envelope.Error.Code)
}

func TestWageRunHandler_Generate_ValidationError(t *testing.T) {
	svc := &stubWageRunService{
		generateErr: validator.ValidationErrors{{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"}},
	}
	router := wageRunTestRouter(svc)

	rec, envelope := doRequest(t, router, http.MethodPost, "/wage-runs",
		`{"start_date":"bogus","end_date":"2025-08-15"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
	assert.Contains(t, envelope.Error.Details, "start_date")
}

func TestWageRunHandler_Get_NotFound(t *testing.T) {
	svc := &stubWageRunService{getErr: wagerun.ErrWageRunNotFound}
	router := wageRunTestRouter(svc)

	rec, envelope := doRequest(t, router, http.MethodGet, "/wage-runs/"+testRunID, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "NOT_FOUND", envelope.Error.Code)
}

func TestWageRunHandler_Get_MalformedID(t *testing.T) {
	router := wageRunTestRouter(&stubWageRunService{})

	rec, envelope := doRequest(t, router, http.MethodGet, "/wage-runs/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "BAD_REQUEST", envelope.Error.Code)
}

func TestWageRunHandler_Finalize_Conflict(t *testing.T) {
	svc := &stubWageRunService{finalizeErr: wagerun.ErrWageRunFinalized}
	router := wageRunTestRouter(svc)

	rec, envelope := doRequest(t, router, http.MethodPost, "/wage-runs/"+testRunID+"/finalize", "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "CONFLICT", envelope.Error.Code)
}

func TestWageRunHandler_Delete_FinalizedConflict(t *testing.T) {
	svc := &stubWageRunService{deleteErr: wagerun.ErrWageRunFinalized}
	router := wageRunTestRouter(svc)

	rec, envelope := doRequest(t, router, http.MethodDelete, "/wage-runs/"+testRunID, "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "CONFLICT", envelope.Error.Code)
}

func TestWageRunHandler_Delete_Success(t *testing.T) {
	router := wageRunTestRouter(&stubWageRunService{})

	rec, envelope := doRequest(t, router, http.MethodDelete, "/wage-runs/"+testRunID, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, envelope.Success)
}

func TestWageRunHandler_List_Meta(t *testing.T) {
	svc := &stubWageRunService{
		listResp: wagerun.ListWageRunResponse{
			Data:       []wagerun.WageRunResponse{{ID: testRunID}},
			TotalCount: 41,
		},
	}
	router := wageRunTestRouter(svc)

	rec, envelope := doRequest(t, router, http.MethodGet, "/wage-runs?page=2&limit=20", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, envelope.Meta)
	assert.Equal(t, 2, envelope.Meta.Page)
	assert.EqualValues(t, 41, envelope.Meta.TotalItems)
	assert.Equal(t, 3, envelope.Meta.TotalPages)
}
