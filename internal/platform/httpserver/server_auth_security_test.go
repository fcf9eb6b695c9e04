package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRegisterReturnsCreated(t *testing.T) {
	server := newTestServer()
	body := `{"email":"ada@example.com","password":"stargazer42","password2":"stargazer42","first_name":"Ada","last_name":"Lovelace"}`

	rr := do(server, "POST", "/auth/register/", "", body)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	resp := decodeBody(t, rr)
	if resp["email"] != "ada@example.com" {
		t.Fatalf("body = %v", resp)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	server := newTestServer()
	registerAndLogin(t, server, "ada@example.com")
	body := `{"email":"ada@example.com","password":"stargazer42","password2":"stargazer42","first_name":"Ada","last_name":"Lovelace"}`

	rr := do(server, "POST", "/auth/register/", "", body)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
	resp := decodeBody(t, rr)
	if _, ok := resp["email"]; !ok {
		t.Fatalf("expected email field error, got %v", resp)
	}
}

func TestRegisterRejectsAuthenticatedCaller(t *testing.T) {
	server := newTestServer()
	access, _ := registerAndLogin(t, server, "ada@example.com")
	body := `{"email":"grace@example.com","password":"stargazer42","password2":"stargazer42","first_name":"Grace","last_name":"Hopper"}`

	rr := do(server, "POST", "/auth/register/", access, body)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestLoginFailureBodiesAreIdentical(t *testing.T) {
	server := newTestServer()
	registerAndLogin(t, server, "ada@example.com")

	unknown := do(server, "POST", "/auth/login/", "", `{"email":"nobody@example.com","password":"stargazer42"}`)
	wrongPassword := do(server, "POST", "/auth/login/", "", `{"email":"ada@example.com","password":"wrong-password"}`)

	if unknown.Code != http.StatusUnauthorized || wrongPassword.Code != http.StatusUnauthorized {
		t.Fatalf("codes = %d / %d", unknown.Code, wrongPassword.Code)
	}
	if unknown.Body.String() != wrongPassword.Body.String() {
		t.Fatalf("bodies differ: %s vs %s", unknown.Body.String(), wrongPassword.Body.String())
	}
	resp := decodeBody(t, unknown)
	if resp["detail"] != "No active account found with the given credentials" {
		t.Fatalf("detail = %v", resp["detail"])
	}
}

func TestRefreshIssuesAccessToken(t *testing.T) {
	server := newTestServer()
	_, refresh := registerAndLogin(t, server, "ada@example.com")

	rr := do(server, "POST", "/auth/login/refresh/", "", `{"refresh":"`+refresh+`"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	resp := decodeBody(t, rr)
	access, _ := resp["access"].(string)
	if access == "" {
		t.Fatalf("body = %v", resp)
	}

	// The new access token opens protected routes.
	created := do(server, "POST", "/posts/", access, `{"title":"First light","content":"Clear skies."}`)
	if created.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", created.Code, created.Body.String())
	}
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	server := newTestServer()
	access, refresh := registerAndLogin(t, server, "ada@example.com")

	rr := do(server, "POST", "/auth/logout/", access, `{"refresh_token":"`+refresh+`"}`)
	if rr.Code != http.StatusResetContent {
		t.Fatalf("expected 205, got %d body=%s", rr.Code, rr.Body.String())
	}

	refreshed := do(server, "POST", "/auth/login/refresh/", "", `{"refresh":"`+refresh+`"}`)
	if refreshed.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d body=%s", refreshed.Code, refreshed.Body.String())
	}
}

func TestLogoutFailureKinds(t *testing.T) {
	server := newTestServer()
	access, refresh := registerAndLogin(t, server, "ada@example.com")

	missing := do(server, "POST", "/auth/logout/", access, `{}`)
	if missing.Code != http.StatusBadRequest {
		t.Fatalf("missing: expected 400, got %d body=%s", missing.Code, missing.Body.String())
	}
	if _, ok := decodeBody(t, missing)["refresh_token"]; !ok {
		t.Fatalf("missing: body = %s", missing.Body.String())
	}

	malformed := do(server, "POST", "/auth/logout/", access, `{"refresh_token":"not-a-jwt"}`)
	if malformed.Code != http.StatusBadRequest {
		t.Fatalf("malformed: expected 400, got %d body=%s", malformed.Code, malformed.Body.String())
	}
	if decodeBody(t, malformed)["detail"] != "Refresh token is malformed." {
		t.Fatalf("malformed: body = %s", malformed.Body.String())
	}

	do(server, "POST", "/auth/logout/", access, `{"refresh_token":"`+refresh+`"}`)
	again := do(server, "POST", "/auth/logout/", access, `{"refresh_token":"`+refresh+`"}`)
	if again.Code != http.StatusBadRequest {
		t.Fatalf("again: expected 400, got %d body=%s", again.Code, again.Body.String())
	}
	if decodeBody(t, again)["detail"] != "Refresh token is already revoked." {
		t.Fatalf("again: body = %s", again.Body.String())
	}
}

func TestChangePasswordRequiresOwnership(t *testing.T) {
	server := newTestServer()
	access, _ := registerAndLogin(t, server, "ada@example.com")
	registerAndLogin(t, server, "grace@example.com")

	// The path id belongs to the other account.
	rr := do(server, "PUT", "/auth/change_password/"+otherUserID(t, server, "grace@example.com")+"/", access,
		`{"old_password":"stargazer42","password":"telescope99","password2":"telescope99"}`)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
	if decodeBody(t, rr)["detail"] != "You do not have permission to perform this action." {
		t.Fatalf("body = %s", rr.Body.String())
	}
}

// otherUserID logs in as the named account and reads its id from the
// login response.
func otherUserID(t *testing.T, server *Server, email string) string {
	t.Helper()
	rr := do(server, "POST", "/auth/login/", "", `{"email":"`+email+`","password":"stargazer42"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	user, _ := decodeBody(t, rr)["user"].(map[string]any)
	id, _ := user["id"].(string)
	if id == "" {
		t.Fatalf("login body missing user id: %s", rr.Body.String())
	}
	return id
}

func TestNonBearerSchemeIsAnonymous(t *testing.T) {
	server := newTestServer()

	read := httptest.NewRequest("GET", "/constellations/", nil)
	read.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, read)
	if rr.Code != http.StatusOK {
		t.Fatalf("read: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	write := httptest.NewRequest("POST", "/posts/", strings.NewReader(`{"title":"x","content":"y"}`))
	write.Header.Set("Content-Type", "application/json")
	write.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, write)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("write: expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
	if decodeBody(t, rr)["detail"] != "Authentication credentials were not provided." {
		t.Fatalf("write: body = %s", rr.Body.String())
	}
}

func TestInvalidBearerTokenIsRejected(t *testing.T) {
	server := newTestServer()

	rr := do(server, "POST", "/posts/", "garbage-token", `{"title":"x","content":"y"}`)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
	if decodeBody(t, rr)["detail"] != "Given token not valid for any token type" {
		t.Fatalf("body = %s", rr.Body.String())
	}
}
