package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/g-vinokurov/interstellarium/handlers"
	"github.com/g-vinokurov/interstellarium/services"
	"github.com/g-vinokurov/interstellarium/testutil"
	"gorm.io/gorm"
)

const testJWTSecret = "test-secret-key-32-bytes-long!!"

func buildAuthService(db *gorm.DB) services.AuthService {
	passwordSvc := services.NewPasswordService().Build()
	jwtSvc := services.NewJWTService(testJWTSecret).Build()
	return services.NewAuthService(db).
		WithPasswordService(passwordSvc).
		WithJWTService(jwtSvc).
		Build()
}

// loginAs fetches a bearer token through the login endpoint.
func loginAs(t *testing.T, mux http.Handler, email, password string) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("login as %s failed: status %d, body %s", email, rec.Code, rec.Body.String())
	}

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse login response: %v", err)
	}
	return resp.AccessToken
}

func TestAuthHandler_Login(t *testing.T) {
	tdb := testutil.SetupTestDB(t)
	defer tdb.Close(t)
	defer testutil.TruncateAllTables(tdb.DB)

	if _, err := testutil.CreateTestUser(tdb.DB, "user@example.com", "userpass123", false, false); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	mux := handlers.NewRouter().
		WithAuthService(buildAuthService(tdb.DB)).
		Build()

	testCases := []struct {
		name           string
		body           map[string]string
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "successful login returns bearer token",
			body:           map[string]string{"email": "user@example.com", "password": "userpass123"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown email",
			body:           map[string]string{"email": "nobody@example.com", "password": "userpass123"},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "User not found",
		},
		{
			name:           "wrong password",
			body:           map[string]string{"email": "user@example.com", "password": "wrongpassword"},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid password",
		},
		{
			name:           "missing email",
			body:           map[string]string{"password": "userpass123"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			body, _ := json.Marshal(tc.body)
			req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

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

			if tc.expectedStatus == http.StatusOK {
				var resp struct {
					AccessToken string `json:"access_token"`
					TokenType   string `json:"token_type"`
				}
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
					t.Fatalf("Failed to parse success response: %v", err)
				}
				if resp.AccessToken == "" {
					t.Error("Expected access_token in response")
				}
				if resp.TokenType != "bearer" {
					t.Errorf("Expected token_type bearer, got %s", resp.TokenType)
				}
			}
		})
	}
}

func TestProtectedEndpointsRequireToken(t *testing.T) {
	tdb := testutil.SetupTestDB(t)
	defer tdb.Close(t)
	defer testutil.TruncateAllTables(tdb.DB)

	mux := handlers.NewRouter().
		WithAuthService(buildAuthService(tdb.DB)).
		WithGroupServices(services.NewGroupService(tdb.DB).Build(), services.NewGroupUserLinks(tdb.DB)).
		Build()

	req := httptest.NewRequest("POST", "/api/groups", bytes.NewReader([]byte("{}")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 without token, got %d", rec.Code)
	}

	req = httptest.NewRequest("POST", "/api/groups", bytes.NewReader([]byte("{}")))
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	rec = httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 with bogus token, got %d", rec.Code)
	}
}
