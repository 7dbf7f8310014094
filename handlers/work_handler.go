package handlers

import (
	"net/http"

	"github.com/g-vinokurov/interstellarium/services"
)

type WorkHandler struct {
	workService services.WorkService
}

func NewWorkHandler(workService services.WorkService) *WorkHandler {
	return &WorkHandler{workService: workService}
}

type workFiltersRequest struct {
	Name    *string  `json:"name"`
	MinCost *float64 `json:"min_cost"`
	MaxCost *float64 `json:"max_cost"`
}

type workRow struct {
	ID       uint    `json:"id"`
	Name     *string `json:"name"`
	Cost     float64 `json:"cost"`
	Contract Ref     `json:"contract"`
	Project  Ref     `json:"project"`
}

type createWorkRequest struct {
	Name string  `json:"name" validate:"required"`
	Cost float64 `json:"cost"`
}

func (h *WorkHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req workFiltersRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	works, err := h.workService.ListWorks(ctx, services.WorkFilters{
		Name:    req.Name,
		MinCost: req.MinCost,
		MaxCost: req.MaxCost,
	})
	if err != nil {
		HandleServiceError(w, err)
		return
	}

	rows := make([]workRow, 0, len(works))
	for _, work := range works {
		rows = append(rows, workRow{
			ID:       work.ID,
			Name:     work.Name,
			Cost:     work.Cost,
			Contract: contractRef(work.Contract),
			Project:  projectRef(work.Project),
		})
	}

	RespondWithJSON(w, http.StatusOK, rows)
}

func (h *WorkHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if requireElevated(w, r) == nil {
		return
	}

	var req createWorkRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	work, err := h.workService.CreateWork(ctx, services.CreateWorkInput{
		Name: req.Name,
		Cost: req.Cost,
	})
	if err != nil {
		HandleServiceError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, createdResponse{ID: work.ID})
}
