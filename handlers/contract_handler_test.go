package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/g-vinokurov/interstellarium/handlers"
	"github.com/g-vinokurov/interstellarium/internal/models"
	"github.com/g-vinokurov/interstellarium/services"
	"github.com/g-vinokurov/interstellarium/testutil"
	"gorm.io/gorm"
)

func buildContractMux(db *gorm.DB) http.Handler {
	return handlers.NewRouter().
		WithAuthService(buildAuthService(db)).
		WithContractServices(
			services.NewContractService(db).Build(),
			services.NewContractChiefLedger(db),
			services.NewContractProjectLinks(db),
		).
		Build()
}

func doJSON(t *testing.T, mux http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestContractHandler_Create(t *testing.T) {
	tdb := testutil.SetupTestDB(t)
	defer tdb.Close(t)
	defer testutil.TruncateAllTables(tdb.DB)

	if _, err := testutil.CreateTestUser(tdb.DB, "admin@example.com", "adminpass123", true, false); err != nil {
		t.Fatalf("failed to create admin: %v", err)
	}
	if _, err := testutil.CreateTestUser(tdb.DB, "user@example.com", "userpass123", false, false); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	mux := buildContractMux(tdb.DB)
	adminToken := loginAs(t, mux, "admin@example.com", "adminpass123")
	userToken := loginAs(t, mux, "user@example.com", "userpass123")

	testCases := []struct {
		name           string
		token          string
		body           map[string]any
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "admin creates contract",
			token:          adminToken,
			body:           map[string]any{"name": "Alpha"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "duplicate name rejected",
			token:          adminToken,
			body:           map[string]any{"name": "Alpha"},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Contract exists",
		},
		{
			name:           "non-admin denied",
			token:          userToken,
			body:           map[string]any{"name": "Beta"},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "Access denied",
		},
		{
			name:           "start date after finish date rejected",
			token:          adminToken,
			body:           map[string]any{"name": "Gamma", "start_date": "2026-12-01", "finish_date": "2026-01-01"},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Start date cannot be greater than finish date",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, mux, "POST", "/api/contracts/create", tc.token, tc.body)

			if rec.Code != tc.expectedStatus {
				t.Errorf("Expected status %d, got %d. Body: %s", tc.expectedStatus, rec.Code, rec.Body.String())
			}

			if tc.expectedMsg != "" {
				var errResp handlers.ErrorResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &errResp); err != nil {
					t.Fatalf("Failed to parse error response: %v", err)
				}
				if errResp.Msg != tc.expectedMsg {
					t.Errorf("Expected msg %q, got %q", tc.expectedMsg, errResp.Msg)
				}
			}

			if tc.expectedStatus == http.StatusCreated {
				var resp struct {
					ID uint `json:"id"`
				}
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
					t.Fatalf("Failed to parse success response: %v", err)
				}
				if resp.ID == 0 {
					t.Error("Expected created id in response")
				}
			}
		})
	}
}

func TestContractHandler_ReassignChiefAndHistory(t *testing.T) {
	tdb := testutil.SetupTestDB(t)
	defer tdb.Close(t)
	defer testutil.TruncateAllTables(tdb.DB)

	if _, err := testutil.CreateTestUser(tdb.DB, "admin@example.com", "adminpass123", true, false); err != nil {
		t.Fatalf("failed to create admin: %v", err)
	}
	if _, err := testutil.CreateTestUser(tdb.DB, "user@example.com", "userpass123", false, false); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	first, err := testutil.CreateTestUser(tdb.DB, "first@example.com", "password123", false, false)
	if err != nil {
		t.Fatalf("failed to create chief: %v", err)
	}
	second, err := testutil.CreateTestUser(tdb.DB, "second@example.com", "password123", false, false)
	if err != nil {
		t.Fatalf("failed to create chief: %v", err)
	}
	contract, err := testutil.CreateTestContract(tdb.DB, "Alpha")
	if err != nil {
		t.Fatalf("failed to create contract: %v", err)
	}

	mux := buildContractMux(tdb.DB)
	adminToken := loginAs(t, mux, "admin@example.com", "adminpass123")
	userToken := loginAs(t, mux, "user@example.com", "userpass123")

	reassignPath := fmt.Sprintf("/api/contracts/%d/chief", contract.ID)
	historyPath := fmt.Sprintf("/api/contracts/%d/chief/history", contract.ID)

	// Assign, replace, clear.
	for _, step := range []map[string]any{
		{"id": first.ID},
		{"id": second.ID},
		{"id": nil},
	} {
		rec := doJSON(t, mux, "POST", reassignPath, adminToken, step)
		if rec.Code != http.StatusOK {
			t.Fatalf("reassign failed: status %d, body %s", rec.Code, rec.Body.String())
		}
	}

	// Non-admin reassign is denied and leaves no event behind.
	rec := doJSON(t, mux, "POST", reassignPath, userToken, map[string]any{"id": first.ID})
	if rec.Code != http.StatusForbidden {
		t.Errorf("Expected status 403 for non-admin, got %d", rec.Code)
	}

	// Unknown chief is a 404 from inside the transaction.
	rec = doJSON(t, mux, "POST", reassignPath, adminToken, map[string]any{"id": 9999})
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 for unknown chief, got %d", rec.Code)
	}

	var count int64
	if err := tdb.DB.Model(&models.ContractChiefAssignment{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count events: %v", err)
	}
	if count != 4 {
		t.Errorf("Expected 4 events (assign, unassign, assign, unassign), got %d", count)
	}

	rec = doJSON(t, mux, "GET", historyPath, adminToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("history failed: status %d, body %s", rec.Code, rec.Body.String())
	}

	var rows []struct {
		ID             uint   `json:"id"`
		AssignmentDate string `json:"assignment_date"`
		IsAssigned     bool   `json:"is_assigned"`
		User           struct {
			ID   *uint   `json:"id"`
			Name *string `json:"name"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
		t.Fatalf("Failed to parse history response: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("Expected 4 history rows, got %d", len(rows))
	}
	expected := []struct {
		userID     uint
		isAssigned bool
	}{
		{first.ID, true},
		{first.ID, false},
		{second.ID, true},
		{second.ID, false},
	}
	for i, want := range expected {
		if rows[i].IsAssigned != want.isAssigned {
			t.Errorf("Row %d: expected is_assigned=%v, got %v", i, want.isAssigned, rows[i].IsAssigned)
		}
		if rows[i].User.ID == nil || *rows[i].User.ID != want.userID {
			t.Errorf("Row %d: expected user id %d, got %v", i, want.userID, rows[i].User.ID)
		}
		if rows[i].AssignmentDate == "" {
			t.Errorf("Row %d: expected assignment_date", i)
		}
	}
}
