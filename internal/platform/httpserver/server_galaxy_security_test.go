package httpserver

import (
	"context"
	"net/http"
	"testing"

	catalogports "celestialbay/contexts/sky-catalog/catalog-service/ports"
)

func seedTestConstellation(t *testing.T, server *Server, name string) uint64 {
	t.Helper()
	abbreviation := "And"
	area := 722.0
	constellation, err := server.catalog.Service.CreateConstellation(context.Background(), catalogports.ConstellationWrite{
		Name:         &name,
		Abbreviation: &abbreviation,
		AreaInSqDeg:  &area,
	})
	if err != nil {
		t.Fatal(err)
	}
	return constellation.ID
}

func TestGalaxyCreateRequiresAuthentication(t *testing.T) {
	server := newTestServer()
	seedTestConstellation(t, server, "Andromeda")
	body := `{"name":"M31","name_origin":"Messier catalog","galaxy_type":"spiral","distance":2537,"constellation":1}`

	rr := do(server, "POST", "/galaxies/", "", body)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
	if decodeBody(t, rr)["detail"] != "Authentication credentials were not provided." {
		t.Fatalf("body = %s", rr.Body.String())
	}
}

func TestGalaxyCreateBindsOwnerToCaller(t *testing.T) {
	server := newTestServer()
	seedTestConstellation(t, server, "Andromeda")
	access, _ := registerAndLogin(t, server, "ada@example.com")

	// The owner in the payload is ignored.
	body := `{"name":"M31","name_origin":"Messier catalog","galaxy_type":"spiral","distance":2537,"constellation":1,"owner":"someone-else"}`
	rr := do(server, "POST", "/galaxies/", access, body)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	resp := decodeBody(t, rr)
	if resp["owner"] == "someone-else" || resp["owner"] == "" {
		t.Fatalf("owner = %v", resp["owner"])
	}
}

func TestGalaxyPatchRequiresOwnership(t *testing.T) {
	server := newTestServer()
	seedTestConstellation(t, server, "Andromeda")
	owner, _ := registerAndLogin(t, server, "ada@example.com")
	intruder, _ := registerAndLogin(t, server, "grace@example.com")

	created := do(server, "POST", "/galaxies/", owner, `{"name":"M31","name_origin":"Messier catalog","galaxy_type":"spiral","distance":2537,"constellation":1}`)
	if created.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d body=%s", created.Code, created.Body.String())
	}

	denied := do(server, "PATCH", "/galaxies/1/", intruder, `{"size":303}`)
	if denied.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", denied.Code, denied.Body.String())
	}
	if decodeBody(t, denied)["detail"] != "You do not have permission to perform this action." {
		t.Fatalf("body = %s", denied.Body.String())
	}

	patched := do(server, "PATCH", "/galaxies/1/", owner, `{"size":303}`)
	if patched.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", patched.Code, patched.Body.String())
	}
	resp := decodeBody(t, patched)
	if resp["size"] != 303.0 || resp["name"] != "M31" || resp["distance"] != 2537.0 {
		t.Fatalf("body = %v", resp)
	}
}

func TestGalaxyDeleteReturnsNoContent(t *testing.T) {
	server := newTestServer()
	seedTestConstellation(t, server, "Andromeda")
	access, _ := registerAndLogin(t, server, "ada@example.com")

	do(server, "POST", "/galaxies/", access, `{"name":"M31","name_origin":"Messier catalog","galaxy_type":"spiral","distance":2537,"constellation":1}`)

	deleted := do(server, "DELETE", "/galaxies/1/", access, "")
	if deleted.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d body=%s", deleted.Code, deleted.Body.String())
	}

	missing := do(server, "GET", "/galaxies/1/", "", "")
	if missing.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", missing.Code, missing.Body.String())
	}
}

func TestGalaxyCreateUnknownConstellationIsFieldError(t *testing.T) {
	server := newTestServer()
	access, _ := registerAndLogin(t, server, "ada@example.com")

	rr := do(server, "POST", "/galaxies/", access, `{"name":"M31","name_origin":"Messier catalog","galaxy_type":"spiral","distance":2537,"constellation":42}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
	resp := decodeBody(t, rr)
	messages, ok := resp["constellation"].([]any)
	if !ok || len(messages) != 1 || messages[0] != `Invalid pk "42" - object does not exist.` {
		t.Fatalf("body = %v", resp)
	}
}

func TestGalaxyImageOwnershipThroughParent(t *testing.T) {
	server := newTestServer()
	seedTestConstellation(t, server, "Andromeda")
	owner, _ := registerAndLogin(t, server, "ada@example.com")
	intruder, _ := registerAndLogin(t, server, "grace@example.com")

	do(server, "POST", "/galaxies/", owner, `{"name":"M31","name_origin":"Messier catalog","galaxy_type":"spiral","distance":2537,"constellation":1}`)

	denied := do(server, "POST", "/galaxy_images/", intruder, `{"galaxy":1,"image":"m31.jpg"}`)
	if denied.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", denied.Code, denied.Body.String())
	}

	created := do(server, "POST", "/galaxy_images/", owner, `{"galaxy":1,"image":"m31.jpg","image_ppoi":"0.25x0.75"}`)
	if created.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", created.Code, created.Body.String())
	}
	if decodeBody(t, created)["image_ppoi"] != "0.25x0.75" {
		t.Fatalf("body = %s", created.Body.String())
	}
}

func TestNonNumericIDIsNotFound(t *testing.T) {
	server := newTestServer()

	rr := do(server, "GET", "/galaxies/abc/", "", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
	if decodeBody(t, rr)["detail"] != "Not found." {
		t.Fatalf("body = %s", rr.Body.String())
	}
}
