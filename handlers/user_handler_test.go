package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/g-vinokurov/interstellarium/handlers"
	"github.com/g-vinokurov/interstellarium/services"
	"github.com/g-vinokurov/interstellarium/testutil"
	"gorm.io/gorm"
)

func buildUserMux(db *gorm.DB) http.Handler {
	passwordSvc := services.NewPasswordService().Build()
	userSvc := services.NewUserService(db).
		WithPasswordService(passwordSvc).
		Build()

	return handlers.NewRouter().
		WithAuthService(buildAuthService(db)).
		WithUserServices(userSvc, services.NewUserDepartmentLedger(db)).
		Build()
}

func TestUserHandler_CreateAndList(t *testing.T) {
	tdb := testutil.SetupTestDB(t)
	defer tdb.Close(t)
	defer testutil.TruncateAllTables(tdb.DB)

	if _, err := testutil.CreateTestUser(tdb.DB, "admin@example.com", "adminpass123", true, false); err != nil {
		t.Fatalf("failed to create admin: %v", err)
	}

	mux := buildUserMux(tdb.DB)
	adminToken := loginAs(t, mux, "admin@example.com", "adminpass123")

	rec := doJSON(t, mux, "POST", "/api/users/create", adminToken, map[string]any{
		"email":     "ivanov@example.com",
		"password":  "password123",
		"name":      "Ivanov Ivan",
		"birthdate": "1990-04-15",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create failed: status %d, body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, mux, "POST", "/api/users/create", adminToken, map[string]any{
		"email":    "ivanov@example.com",
		"password": "password123",
		"name":     "Ivanov Again",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for duplicate email, got %d", rec.Code)
	}

	rec = doJSON(t, mux, "POST", "/api/users", adminToken, map[string]any{"name": "ivanov"})
	if rec.Code != http.StatusOK {
		t.Fatalf("list failed: status %d, body %s", rec.Code, rec.Body.String())
	}

	var rows []struct {
		ID         uint    `json:"id"`
		Name       *string `json:"name"`
		Department struct {
			ID   *uint   `json:"id"`
			Name *string `json:"name"`
		} `json:"department"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
		t.Fatalf("Failed to parse list response: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected 1 filtered row, got %d", len(rows))
	}
	if rows[0].Department.ID != nil {
		t.Errorf("Expected null department ref, got %v", rows[0].Department.ID)
	}
}

func TestUserHandler_ReassignDepartment(t *testing.T) {
	tdb := testutil.SetupTestDB(t)
	defer tdb.Close(t)
	defer testutil.TruncateAllTables(tdb.DB)

	if _, err := testutil.CreateTestUser(tdb.DB, "admin@example.com", "adminpass123", true, false); err != nil {
		t.Fatalf("failed to create admin: %v", err)
	}
	worker, err := testutil.CreateTestUser(tdb.DB, "worker@example.com", "password123", false, false)
	if err != nil {
		t.Fatalf("failed to create worker: %v", err)
	}
	department, err := testutil.CreateTestDepartment(tdb.DB, "Research")
	if err != nil {
		t.Fatalf("failed to create department: %v", err)
	}

	mux := buildUserMux(tdb.DB)
	adminToken := loginAs(t, mux, "admin@example.com", "adminpass123")

	reassignPath := fmt.Sprintf("/api/users/%d/department", worker.ID)
	historyPath := fmt.Sprintf("/api/users/%d/department/history", worker.ID)

	rec := doJSON(t, mux, "POST", reassignPath, adminToken, map[string]any{"id": department.ID})
	if rec.Code != http.StatusOK {
		t.Fatalf("reassign failed: status %d, body %s", rec.Code, rec.Body.String())
	}

	// List reflects the new pointer through the preloaded ref.
	rec = doJSON(t, mux, "POST", "/api/users", adminToken, map[string]any{"department_id": department.ID})
	if rec.Code != http.StatusOK {
		t.Fatalf("list failed: status %d, body %s", rec.Code, rec.Body.String())
	}
	var rows []struct {
		ID         uint `json:"id"`
		Department struct {
			ID   *uint   `json:"id"`
			Name *string `json:"name"`
		} `json:"department"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
		t.Fatalf("Failed to parse list response: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != worker.ID {
		t.Fatalf("Expected the reassigned worker, got %v", rows)
	}
	if rows[0].Department.Name == nil || *rows[0].Department.Name != "Research" {
		t.Errorf("Expected department Research, got %v", rows[0].Department.Name)
	}

	rec = doJSON(t, mux, "GET", historyPath, adminToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("history failed: status %d, body %s", rec.Code, rec.Body.String())
	}
	var history []struct {
		IsAssigned bool `json:"is_assigned"`
		Department struct {
			ID *uint `json:"id"`
		} `json:"department"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &history); err != nil {
		t.Fatalf("Failed to parse history response: %v", err)
	}
	if len(history) != 1 || !history[0].IsAssigned {
		t.Fatalf("Expected a single assignment event, got %v", history)
	}
	if history[0].Department.ID == nil || *history[0].Department.ID != department.ID {
		t.Errorf("Expected department ref %d, got %v", department.ID, history[0].Department.ID)
	}
}
