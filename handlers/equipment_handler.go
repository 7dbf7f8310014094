package handlers

import (
	"net/http"

	"github.com/g-vinokurov/interstellarium/services"
)

type EquipmentHandler struct {
	equipmentService services.EquipmentService
	department       services.EquipmentDepartmentLedger
	group            services.EquipmentGroupLedger
}

func NewEquipmentHandler(equipmentService services.EquipmentService, department services.EquipmentDepartmentLedger, group services.EquipmentGroupLedger) *EquipmentHandler {
	return &EquipmentHandler{equipmentService: equipmentService, department: department, group: group}
}

type equipmentFiltersRequest struct {
	Name *string `json:"name"`
}

type equipmentRow struct {
	ID         uint    `json:"id"`
	Name       *string `json:"name"`
	Department Ref     `json:"department"`
	Group      Ref     `json:"group"`
}

type createEquipmentRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req equipmentFiltersRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	items, err := h.equipmentService.ListEquipment(ctx, services.EquipmentFilters{
		Name: req.Name,
	})
	if err != nil {
		HandleServiceError(w, err)
		return
	}

	rows := make([]equipmentRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, equipmentRow{
			ID:         item.ID,
			Name:       item.Name,
			Department: departmentRef(item.Department),
			Group:      groupRef(item.Group),
		})
	}

	RespondWithJSON(w, http.StatusOK, rows)
}

func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if requireElevated(w, r) == nil {
		return
	}

	var req createEquipmentRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	item, err := h.equipmentService.CreateEquipment(ctx, req.Name)
	if err != nil {
		HandleServiceError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, createdResponse{ID: item.ID})
}

func (h *EquipmentHandler) ReassignDepartment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if requireElevated(w, r) == nil {
		return
	}

	equipmentID, err := parseIDParam(r, "id")
	if err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	var req reassignRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	if _, err := h.department.Reassign(ctx, equipmentID, req.ID); err != nil {
		HandleServiceError(w, err)
		return
	}

	RespondOK(w)
}

func (h *EquipmentHandler) DepartmentHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	equipmentID, err := parseIDParam(r, "id")
	if err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	events, err := h.department.History(ctx, equipmentID)
	if err != nil {
		HandleServiceError(w, err)
		return
	}

	rows := make([]departmentHistoryRow, 0, len(events))
	for _, event := range events {
		rows = append(rows, departmentHistoryRow{
			ID:             event.ID,
			AssignmentDate: formatDate(event.AssignmentDate),
			IsAssigned:     event.IsAssigned,
			Department:     departmentRef(event.Department),
		})
	}

	RespondWithJSON(w, http.StatusOK, rows)
}

func (h *EquipmentHandler) ReassignGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if requireElevated(w, r) == nil {
		return
	}

	equipmentID, err := parseIDParam(r, "id")
	if err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	var req reassignRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	if _, err := h.group.Reassign(ctx, equipmentID, req.ID); err != nil {
		HandleServiceError(w, err)
		return
	}

	RespondOK(w)
}

type groupHistoryRow struct {
	ID             uint   `json:"id"`
	AssignmentDate string `json:"assignment_date"`
	IsAssigned     bool   `json:"is_assigned"`
	Group          Ref    `json:"group"`
}

func (h *EquipmentHandler) GroupHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	equipmentID, err := parseIDParam(r, "id")
	if err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	events, err := h.group.History(ctx, equipmentID)
	if err != nil {
		HandleServiceError(w, err)
		return
	}

	rows := make([]groupHistoryRow, 0, len(events))
	for _, event := range events {
		rows = append(rows, groupHistoryRow{
			ID:             event.ID,
			AssignmentDate: formatDate(event.AssignmentDate),
			IsAssigned:     event.IsAssigned,
			Group:          groupRef(event.Group),
		})
	}

	RespondWithJSON(w, http.StatusOK, rows)
}
