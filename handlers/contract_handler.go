package handlers

import (
	"net/http"

	"github.com/g-vinokurov/interstellarium/services"
)

type ContractHandler struct {
	contractService services.ContractService
	chief           services.ContractChiefLedger
	projects        services.ContractProjectLinks
}

func NewContractHandler(contractService services.ContractService, chief services.ContractChiefLedger, projects services.ContractProjectLinks) *ContractHandler {
	return &ContractHandler{contractService: contractService, chief: chief, projects: projects}
}

type contractFiltersRequest struct {
	Name       *string `json:"name"`
	StartDate  *Date   `json:"start_date"`
	FinishDate *Date   `json:"finish_date"`
}

type contractRow struct {
	ID         uint    `json:"id"`
	Name       *string `json:"name"`
	StartDate  *string `json:"start_date"`
	FinishDate *string `json:"finish_date"`
}

type createContractRequest struct {
	Name       string `json:"name" validate:"required"`
	StartDate  *Date  `json:"start_date"`
	FinishDate *Date  `json:"finish_date"`
}

func (h *ContractHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req contractFiltersRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	contracts, err := h.contractService.ListContracts(ctx, services.ContractFilters{
		Name:       req.Name,
		StartDate:  dateValue(req.StartDate),
		FinishDate: dateValue(req.FinishDate),
	})
	if err != nil {
		HandleServiceError(w, err)
		return
	}

	rows := make([]contractRow, 0, len(contracts))
	for _, contract := range contracts {
		rows = append(rows, contractRow{
			ID:         contract.ID,
			Name:       contract.Name,
			StartDate:  formatDatePtr(contract.StartDate),
			FinishDate: formatDatePtr(contract.FinishDate),
		})
	}

	RespondWithJSON(w, http.StatusOK, rows)
}

func (h *ContractHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if requireElevated(w, r) == nil {
		return
	}

	var req createContractRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	if req.StartDate != nil && req.FinishDate != nil && req.StartDate.After(req.FinishDate.Time) {
		RespondWithError(w, ErrCodeInvalidDateRange, nil)
		return
	}

	contract, err := h.contractService.CreateContract(ctx, services.CreateContractInput{
		Name:       req.Name,
		StartDate:  dateValue(req.StartDate),
		FinishDate: dateValue(req.FinishDate),
	})
	if err != nil {
		HandleServiceError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, createdResponse{ID: contract.ID})
}

func (h *ContractHandler) ReassignChief(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if requireElevated(w, r) == nil {
		return
	}

	contractID, err := parseIDParam(r, "id")
	if err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	var req reassignRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	if _, err := h.chief.Reassign(ctx, contractID, req.ID); err != nil {
		HandleServiceError(w, err)
		return
	}

	RespondOK(w)
}

func (h *ContractHandler) ChiefHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	contractID, err := parseIDParam(r, "id")
	if err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	events, err := h.chief.History(ctx, contractID)
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

func (h *ContractHandler) LinkProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if requireElevated(w, r) == nil {
		return
	}

	contractID, err := parseIDParam(r, "id")
	if err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	var req linkRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	if err := h.projects.Link(ctx, contractID, req.ID); err != nil {
		HandleServiceError(w, err)
		return
	}

	RespondOK(w)
}

func (h *ContractHandler) UnlinkProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if requireElevated(w, r) == nil {
		return
	}

	contractID, err := parseIDParam(r, "id")
	if err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	projectID, err := parseIDParam(r, "project_id")
	if err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	if err := h.projects.Unlink(ctx, contractID, projectID); err != nil {
		HandleServiceError(w, err)
		return
	}

	RespondOK(w)
}
