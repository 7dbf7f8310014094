package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/g-vinokurov/interstellarium/services"
)

type routerBuilder struct {
	mux *http.ServeMux

	authService services.AuthService

	userService     services.UserService
	userDepartments services.UserDepartmentLedger

	departmentService services.DepartmentService
	departmentChief   services.DepartmentChiefLedger

	groupService services.GroupService
	groupUsers   services.GroupUserLinks

	contractService  services.ContractService
	contractChief    services.ContractChiefLedger
	contractProjects services.ContractProjectLinks

	projectService services.ProjectService
	projectChief   services.ProjectChiefLedger

	equipmentService    services.EquipmentService
	equipmentDepartment services.EquipmentDepartmentLedger
	equipmentGroup      services.EquipmentGroupLedger

	workService services.WorkService

	middlewares []Middleware
}

func NewRouter() *routerBuilder {
	return &routerBuilder{}
}

func (b *routerBuilder) WithMux(mux *http.ServeMux) *routerBuilder {
	b.mux = mux
	return b
}

func (b *routerBuilder) WithAuthService(svc services.AuthService) *routerBuilder {
	b.authService = svc
	return b
}

func (b *routerBuilder) WithUserServices(svc services.UserService, departments services.UserDepartmentLedger) *routerBuilder {
	b.userService = svc
	b.userDepartments = departments
	return b
}

func (b *routerBuilder) WithDepartmentServices(svc services.DepartmentService, chief services.DepartmentChiefLedger) *routerBuilder {
	b.departmentService = svc
	b.departmentChief = chief
	return b
}

func (b *routerBuilder) WithGroupServices(svc services.GroupService, users services.GroupUserLinks) *routerBuilder {
	b.groupService = svc
	b.groupUsers = users
	return b
}

func (b *routerBuilder) WithContractServices(svc services.ContractService, chief services.ContractChiefLedger, projects services.ContractProjectLinks) *routerBuilder {
	b.contractService = svc
	b.contractChief = chief
	b.contractProjects = projects
	return b
}

func (b *routerBuilder) WithProjectServices(svc services.ProjectService, chief services.ProjectChiefLedger) *routerBuilder {
	b.projectService = svc
	b.projectChief = chief
	return b
}

func (b *routerBuilder) WithEquipmentServices(svc services.EquipmentService, department services.EquipmentDepartmentLedger, group services.EquipmentGroupLedger) *routerBuilder {
	b.equipmentService = svc
	b.equipmentDepartment = department
	b.equipmentGroup = group
	return b
}

func (b *routerBuilder) WithWorkService(svc services.WorkService) *routerBuilder {
	b.workService = svc
	return b
}

func (b *routerBuilder) WithMiddlewares(mws ...Middleware) *routerBuilder {
	b.middlewares = append(b.middlewares, mws...)
	return b
}

// authenticated wraps a handler with bearer-token authentication when an
// auth service is configured. The resolved user lands in the request
// context for the admin gate and audit purposes.
func (b *routerBuilder) authenticated(next http.HandlerFunc) http.HandlerFunc {
	if b.authService == nil {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			RespondWithError(w, ErrCodeUnauthorized, nil)
			return
		}
		user, err := b.authService.CurrentUser(r.Context(), token)
		if err != nil {
			RespondWithError(w, ErrCodeUnauthorized, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(withCurrentUser(r.Context(), user)))
	}
}

func (b *routerBuilder) Build() http.Handler {
	mux := b.mux
	if mux == nil {
		mux = http.NewServeMux()
	}

	mux.HandleFunc("GET /health", healthHandler)

	if b.authService != nil {
		h := NewAuthHandler(b.authService)
		mux.HandleFunc("POST /api/auth/login", h.Login)
	}

	if b.userService != nil {
		h := NewUserHandler(b.userService, b.userDepartments)
		mux.HandleFunc("POST /api/users", b.authenticated(h.List))
		mux.HandleFunc("POST /api/users/create", b.authenticated(h.Create))
		mux.HandleFunc("POST /api/users/{id}/department", b.authenticated(h.ReassignDepartment))
		mux.HandleFunc("GET /api/users/{id}/department/history", b.authenticated(h.DepartmentHistory))
	}

	if b.departmentService != nil {
		h := NewDepartmentHandler(b.departmentService, b.departmentChief)
		mux.HandleFunc("POST /api/departments", b.authenticated(h.List))
		mux.HandleFunc("POST /api/departments/create", b.authenticated(h.Create))
		mux.HandleFunc("POST /api/departments/{id}/chief", b.authenticated(h.ReassignChief))
		mux.HandleFunc("GET /api/departments/{id}/chief/history", b.authenticated(h.ChiefHistory))
	}

	if b.groupService != nil {
		h := NewGroupHandler(b.groupService, b.groupUsers)
		mux.HandleFunc("POST /api/groups", b.authenticated(h.List))
		mux.HandleFunc("POST /api/groups/create", b.authenticated(h.Create))
		mux.HandleFunc("POST /api/groups/{id}/users", b.authenticated(h.LinkUser))
		mux.HandleFunc("DELETE /api/groups/{id}/users/{user_id}", b.authenticated(h.UnlinkUser))
	}

	if b.contractService != nil {
		h := NewContractHandler(b.contractService, b.contractChief, b.contractProjects)
		mux.HandleFunc("POST /api/contracts", b.authenticated(h.List))
		mux.HandleFunc("POST /api/contracts/create", b.authenticated(h.Create))
		mux.HandleFunc("POST /api/contracts/{id}/chief", b.authenticated(h.ReassignChief))
		mux.HandleFunc("GET /api/contracts/{id}/chief/history", b.authenticated(h.ChiefHistory))
		mux.HandleFunc("POST /api/contracts/{id}/projects", b.authenticated(h.LinkProject))
		mux.HandleFunc("DELETE /api/contracts/{id}/projects/{project_id}", b.authenticated(h.UnlinkProject))
	}

	if b.projectService != nil {
		h := NewProjectHandler(b.projectService, b.projectChief)
		mux.HandleFunc("POST /api/projects", b.authenticated(h.List))
		mux.HandleFunc("POST /api/projects/create", b.authenticated(h.Create))
		mux.HandleFunc("POST /api/projects/{id}/chief", b.authenticated(h.ReassignChief))
		mux.HandleFunc("GET /api/projects/{id}/chief/history", b.authenticated(h.ChiefHistory))
	}

	if b.equipmentService != nil {
		h := NewEquipmentHandler(b.equipmentService, b.equipmentDepartment, b.equipmentGroup)
		mux.HandleFunc("POST /api/equipment", b.authenticated(h.List))
		mux.HandleFunc("POST /api/equipment/create", b.authenticated(h.Create))
		mux.HandleFunc("POST /api/equipment/{id}/department", b.authenticated(h.ReassignDepartment))
		mux.HandleFunc("GET /api/equipment/{id}/department/history", b.authenticated(h.DepartmentHistory))
		mux.HandleFunc("POST /api/equipment/{id}/group", b.authenticated(h.ReassignGroup))
		mux.HandleFunc("GET /api/equipment/{id}/group/history", b.authenticated(h.GroupHistory))
	}

	if b.workService != nil {
		h := NewWorkHandler(b.workService)
		mux.HandleFunc("POST /api/works", b.authenticated(h.List))
		mux.HandleFunc("POST /api/works/create", b.authenticated(h.Create))
	}

	var handler http.Handler = mux
	for _, mw := range b.middlewares {
		handler = mw(handler)
	}
	return handler
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
