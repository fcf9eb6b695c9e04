package httpserver

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	account "celestialbay/contexts/identity-access/account-service"
	catalog "celestialbay/contexts/sky-catalog/catalog-service"
)

func newTestServer() *Server {
	catalogModule := catalog.NewInMemoryModule(slog.Default())
	accounts := account.NewInMemoryModule(slog.Default(), catalogModule.Service)
	return New(accounts, catalogModule, slog.Default(), ":0")
}

func do(server *Server, method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body %q: %v", rr.Body.String(), err)
	}
	return body
}

// registerAndLogin creates an account through the API and returns its
// access and refresh tokens.
func registerAndLogin(t *testing.T, server *Server, email string) (string, string) {
	t.Helper()
	register := fmt.Sprintf(`{"email":%q,"password":"stargazer42","password2":"stargazer42","first_name":"Ada","last_name":"Lovelace"}`, email)
	if rr := do(server, "POST", "/auth/register/", "", register); rr.Code != 201 {
		t.Fatalf("register: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	login := fmt.Sprintf(`{"email":%q,"password":"stargazer42"}`, email)
	rr := do(server, "POST", "/auth/login/", "", login)
	if rr.Code != 200 {
		t.Fatalf("login: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	body := decodeBody(t, rr)
	access, _ := body["access"].(string)
	refresh, _ := body["refresh"].(string)
	if access == "" || refresh == "" {
		t.Fatalf("login body missing tokens: %v", body)
	}
	return access, refresh
}
