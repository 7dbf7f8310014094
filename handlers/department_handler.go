package handlers

import (
	"net/http"

	"github.com/g-vinokurov/interstellarium/services"
)

type DepartmentHandler struct {
	departmentService services.DepartmentService
	chief             services.DepartmentChiefLedger
}

func NewDepartmentHandler(departmentService services.DepartmentService, chief services.DepartmentChiefLedger) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService, chief: chief}
}

type departmentFiltersRequest struct {
	Name *string `json:"name"`
}

type departmentRow struct {
	ID    uint    `json:"id"`
	Name  *string `json:"name"`
	Chief Ref     `json:"chief"`
}

type createDepartmentRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *DepartmentHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req departmentFiltersRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	departments, err := h.departmentService.ListDepartments(ctx, services.DepartmentFilters{
		Name: req.Name,
	})
	if err != nil {
		HandleServiceError(w, err)
		return
	}

	rows := make([]departmentRow, 0, len(departments))
	for _, department := range departments {
		rows = append(rows, departmentRow{
			ID:    department.ID,
			Name:  department.Name,
			Chief: userRef(department.Chief),
		})
	}

	RespondWithJSON(w, http.StatusOK, rows)
}

func (h *DepartmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if requireElevated(w, r) == nil {
		return
	}

	var req createDepartmentRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	department, err := h.departmentService.CreateDepartment(ctx, req.Name)
	if err != nil {
		HandleServiceError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, createdResponse{ID: department.ID})
}

func (h *DepartmentHandler) ReassignChief(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if requireElevated(w, r) == nil {
		return
	}

	departmentID, err := parseIDParam(r, "id")
	if err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	var req reassignRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	if _, err := h.chief.Reassign(ctx, departmentID, req.ID); err != nil {
		HandleServiceError(w, err)
		return
	}

	RespondOK(w)
}

type chiefHistoryRow struct {
	ID             uint   `json:"id"`
	AssignmentDate string `json:"assignment_date"`
	IsAssigned     bool   `json:"is_assigned"`
	User           Ref    `json:"user"`
}

func (h *DepartmentHandler) ChiefHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	departmentID, err := parseIDParam(r, "id")
	if err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	events, err := h.chief.History(ctx, departmentID)
	if err != nil {
		HandleServiceError(w, err)
		return
	}

	rows := make([]chiefHistoryRow, 0, len(events))
	for _, event := range events {
		rows = append(rows, chiefHistoryRow{
			ID:             event.ID,
			AssignmentDate: formatDate(event.AssignmentDate),
			IsAssigned:     event.IsAssigned,
			User:           userRef(event.User),
		})
	}

	RespondWithJSON(w, http.StatusOK, rows)
}
