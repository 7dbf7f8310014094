package handlers

import (
	"net/http"

	"github.com/g-vinokurov/interstellarium/services"
)

type GroupHandler struct {
	groupService services.GroupService
	users        services.GroupUserLinks
}

func NewGroupHandler(groupService services.GroupService, users services.GroupUserLinks) *GroupHandler {
	return &GroupHandler{groupService: groupService, users: users}
}

type groupFiltersRequest struct {
	Name *string `json:"name"`
}

type groupRow struct {
	ID   uint    `json:"id"`
	Name *string `json:"name"`
}

type createGroupRequest struct {
	Name string `json:"name" validate:"required"`
}

type linkRequest struct {
	ID uint `json:"id" validate:"required"`
}

func (h *GroupHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req groupFiltersRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	groups, err := h.groupService.ListGroups(ctx, services.GroupFilters{
		Name: req.Name,
	})
	if err != nil {
		HandleServiceError(w, err)
		return
	}

	rows := make([]groupRow, 0, len(groups))
	for _, group := range groups {
		rows = append(rows, groupRow{ID: group.ID, Name: group.Name})
	}

	RespondWithJSON(w, http.StatusOK, rows)
}

func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if requireElevated(w, r) == nil {
		return
	}

	var req createGroupRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	group, err := h.groupService.CreateGroup(ctx, req.Name)
	if err != nil {
		HandleServiceError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, createdResponse{ID: group.ID})
}

func (h *GroupHandler) LinkUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if requireElevated(w, r) == nil {
		return
	}

	groupID, err := parseIDParam(r, "id")
	if err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	var req linkRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	if err := h.users.Link(ctx, groupID, req.ID); err != nil {
		HandleServiceError(w, err)
		return
	}

	RespondOK(w)
}

func (h *GroupHandler) UnlinkUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if requireElevated(w, r) == nil {
		return
	}

	groupID, err := parseIDParam(r, "id")
	if err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	userID, err := parseIDParam(r, "user_id")
	if err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	if err := h.users.Unlink(ctx, groupID, userID); err != nil {
		HandleServiceError(w, err)
		return
	}

	RespondOK(w)
}
