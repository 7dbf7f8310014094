package handlers

import (
	"net/http"

	"github.com/g-vinokurov/interstellarium/services"
)

type ProjectHandler struct {
	projectService services.ProjectService
	chief          services.ProjectChiefLedger
}

func NewProjectHandler(projectService services.ProjectService, chief services.ProjectChiefLedger) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, chief: chief}
}

type projectFiltersRequest struct {
	Name       *string `json:"name"`
	StartDate  *Date   `json:"start_date"`
	FinishDate *Date   `json:"finish_date"`
}

type projectRow struct {
	ID         uint    `json:"id"`
	Name       *string `json:"name"`
	StartDate  *string `json:"start_date"`
	FinishDate *string `json:"finish_date"`
	Chief      Ref     `json:"chief"`
	Group      Ref     `json:"group"`
}

type createProjectRequest struct {
	Name       string `json:"name" validate:"required"`
	StartDate  *Date  `json:"start_date"`
	FinishDate *Date  `json:"finish_date"`
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req projectFiltersRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	projects, err := h.projectService.ListProjects(ctx, services.ProjectFilters{
		Name:       req.Name,
		StartDate:  dateValue(req.StartDate),
		FinishDate: dateValue(req.FinishDate),
	})
	if err != nil {
		HandleServiceError(w, err)
		return
	}

	rows := make([]projectRow, 0, len(projects))
	for _, project := range projects {
		rows = append(rows, projectRow{
			ID:         project.ID,
			Name:       project.Name,
			StartDate:  formatDatePtr(project.StartDate),
			FinishDate: formatDatePtr(project.FinishDate),
			Chief:      userRef(project.Chief),
			Group:      groupRef(project.Group),
		})
	}

	RespondWithJSON(w, http.StatusOK, rows)
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if requireElevated(w, r) == nil {
		return
	}

	var req createProjectRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	if req.StartDate != nil && req.FinishDate != nil && req.StartDate.After(req.FinishDate.Time) {
		RespondWithError(w, ErrCodeInvalidDateRange, nil)
		return
	}

	project, err := h.projectService.CreateProject(ctx, services.CreateProjectInput{
		Name:       req.Name,
		StartDate:  dateValue(req.StartDate),
		FinishDate: dateValue(req.FinishDate),
	})
	if err != nil {
		HandleServiceError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, createdResponse{ID: project.ID})
}

func (h *ProjectHandler) ReassignChief(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if requireElevated(w, r) == nil {
		return
	}

	projectID, err := parseIDParam(r, "id")
	if err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	var req reassignRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	if _, err := h.chief.Reassign(ctx, projectID, req.ID); err != nil {
		HandleServiceError(w, err)
		return
	}

	RespondOK(w)
}

func (h *ProjectHandler) ChiefHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	projectID, err := parseIDParam(r, "id")
	if err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	events, err := h.chief.History(ctx, projectID)
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
