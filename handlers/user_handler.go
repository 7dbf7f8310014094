package handlers

import (
	"net/http"

	"github.com/g-vinokurov/interstellarium/services"
)

type UserHandler struct {
	userService services.UserService
	departments services.UserDepartmentLedger
}

func NewUserHandler(userService services.UserService, departments services.UserDepartmentLedger) *UserHandler {
	return &UserHandler{userService: userService, departments: departments}
}

type userFiltersRequest struct {
	Name          *string `json:"name"`
	BirthdateFrom *Date   `json:"birthdate_from"`
	BirthdateTo   *Date   `json:"birthdate_to"`
	DepartmentID  *uint   `json:"department_id"`
}

type userRow struct {
	ID         uint    `json:"id"`
	Name       *string `json:"name"`
	Department Ref     `json:"department"`
}

type createUserRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	IsAdmin   bool   `json:"is_admin"`
	Name      string `json:"name" validate:"required"`
	Birthdate *Date  `json:"birthdate"`
}

type createdResponse struct {
	ID uint `json:"id"`
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req userFiltersRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	users, err := h.userService.ListUsers(ctx, services.UserFilters{
		Name:          req.Name,
		BirthdateFrom: dateValue(req.BirthdateFrom),
		BirthdateTo:   dateValue(req.BirthdateTo),
		DepartmentID:  req.DepartmentID,
	})
	if err != nil {
		HandleServiceError(w, err)
		return
	}

	rows := make([]userRow, 0, len(users))
	for _, user := range users {
		rows = append(rows, userRow{
			ID:         user.ID,
			Name:       user.Name,
			Department: departmentRef(user.Department),
		})
	}

	RespondWithJSON(w, http.StatusOK, rows)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if requireElevated(w, r) == nil {
		return
	}

	var req createUserRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	user, err := h.userService.CreateUser(ctx, services.CreateUserInput{
		Email:     req.Email,
		Password:  req.Password,
		IsAdmin:   req.IsAdmin,
		Name:      req.Name,
		Birthdate: dateValue(req.Birthdate),
	})
	if err != nil {
		HandleServiceError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, createdResponse{ID: user.ID})
}

func (h *UserHandler) ReassignDepartment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if requireElevated(w, r) == nil {
		return
	}

	userID, err := parseIDParam(r, "id")
	if err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	var req reassignRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	if _, err := h.departments.Reassign(ctx, userID, req.ID); err != nil {
		HandleServiceError(w, err)
		return
	}

	RespondOK(w)
}

type departmentHistoryRow struct {
	ID             uint   `json:"id"`
	AssignmentDate string `json:"assignment_date"`
	IsAssigned     bool   `json:"is_assigned"`
	Department     Ref    `json:"department"`
}

func (h *UserHandler) DepartmentHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := parseIDParam(r, "id")
	if err != nil {
		RespondWithError(w, ErrCodeBadRequest, err)
		return
	}

	events, err := h.departments.History(ctx, userID)
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
