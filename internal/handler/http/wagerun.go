package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/construxhq/ops-backend-go/internal/domain/wagerun"
	"github.com/construxhq/ops-backend-go/internal/handler/http/response"
	"github.com/construxhq/ops-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type WageRunHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Finalize(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type wageRunHandlerImpl struct {
	wageRunService wagerun.WageRunService
}

func NewWageRunHandler(wageRunService wagerun.WageRunService) WageRunHandler {
	return &wageRunHandlerImpl{wageRunService: wageRunService}
}

func (h *wageRunHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req wagerun.GenerateWageRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.wageRunService.GenerateDraft(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Wage run draft generated", result)
}

func (h *wageRunHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Invalid wage run ID", nil)
		return
	}

	result, err := h.wageRunService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *wageRunHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := wagerun.WageRunFilter{
		Page:      1,
		Limit:     20,
		SortBy:    "created_at",
		SortOrder: "desc",
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page > 0 {
			filter.Page = page
		}
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	if payType := r.URL.Query().Get("pay_type"); payType != "" {
		filter.PayType = &payType
	}
	if sortBy := r.URL.Query().Get("sort_by"); sortBy != "" {
		filter.SortBy = sortBy
	}
	if sortOrder := r.URL.Query().Get("sort_order"); sortOrder != "" {
		filter.SortOrder = sortOrder
	}

	result, err := h.wageRunService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := int((result.TotalCount + int64(filter.Limit) - 1) / int64(filter.Limit))
	response.SuccessWithMeta(w, result.Data, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: result.TotalCount,
		TotalPages: totalPages,
	})
}

func (h *wageRunHandlerImpl) Finalize(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Invalid wage run ID", nil)
		return
	}

	if err := h.wageRunService.Finalize(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Wage run finalized", nil)
}

func (h *wageRunHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Invalid wage run ID", nil)
		return
	}

	if err := h.wageRunService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Wage run deleted successfully", nil)
}
