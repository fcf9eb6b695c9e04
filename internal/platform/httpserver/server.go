package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	account "celestialbay/contexts/identity-access/account-service"
	accounterrors "celestialbay/contexts/identity-access/account-service/domain/errors"
	accountports "celestialbay/contexts/identity-access/account-service/ports"
	catalog "celestialbay/contexts/sky-catalog/catalog-service"
	catalogerrors "celestialbay/contexts/sky-catalog/catalog-service/domain/errors"
	_ "celestialbay/internal/platform/httpserver/docs"
	"celestialbay/internal/shared/paging"
	"celestialbay/internal/shared/shaping"

	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	detailNotAuthenticated = "Authentication credentials were not provided."
	detailPermissionDenied = "You do not have permission to perform this action."
	detailNotFound         = "Not found."
	detailTokenNotValid    = "Given token not valid for any token type"
)

type Server struct {
	mux      *http.ServeMux
	logger   *slog.Logger
	addr     string
	accounts account.Module
	catalog  catalog.Module
}

func New(
	accounts account.Module,
	catalogModule catalog.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:      http.NewServeMux(),
		logger:   logger,
		addr:     addr,
		accounts: accounts,
		catalog:  catalogModule,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// registerRoutes wires every supported operation; anything absent here,
// such as constellation writes, simply has no route.
func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /auth/register/{$}", s.handleRegister)
	s.mux.HandleFunc("POST /auth/login/{$}", s.handleLogin)
	s.mux.HandleFunc("POST /auth/login/refresh/{$}", s.handleRefresh)
	s.mux.HandleFunc("POST /auth/logout/{$}", s.handleLogout)
	s.mux.HandleFunc("PUT /auth/change_password/{id}/{$}", s.handleChangePassword)
	s.mux.HandleFunc("PUT /auth/update_user/{id}/{$}", s.handleUpdateUser)
	s.mux.HandleFunc("GET /auth/users/{id}/{$}", s.handleGetUser)

	s.mux.HandleFunc("GET /constellations/{$}", s.handleListConstellations)
	s.mux.HandleFunc("GET /constellations/{id}/{$}", s.handleGetConstellation)
	s.mux.HandleFunc("GET /constellation_images/{id}/{$}", s.handleGetConstellationImage)

	s.mux.HandleFunc("GET /galaxies/{$}", s.handleListGalaxies)
	s.mux.HandleFunc("POST /galaxies/{$}", s.handleCreateGalaxy)
	s.mux.HandleFunc("GET /galaxies/{id}/{$}", s.handleGetGalaxy)
	s.mux.HandleFunc("PUT /galaxies/{id}/{$}", s.handleReplaceGalaxy)
	s.mux.HandleFunc("PATCH /galaxies/{id}/{$}", s.handlePatchGalaxy)
	s.mux.HandleFunc("DELETE /galaxies/{id}/{$}", s.handleDeleteGalaxy)

	s.mux.HandleFunc("GET /galaxy_images/{$}", s.handleListGalaxyImages)
	s.mux.HandleFunc("POST /galaxy_images/{$}", s.handleCreateGalaxyImage)
	s.mux.HandleFunc("GET /galaxy_images/{id}/{$}", s.handleGetGalaxyImage)
	s.mux.HandleFunc("PUT /galaxy_images/{id}/{$}", s.handleReplaceGalaxyImage)
	s.mux.HandleFunc("PATCH /galaxy_images/{id}/{$}", s.handlePatchGalaxyImage)
	s.mux.HandleFunc("DELETE /galaxy_images/{id}/{$}", s.handleDeleteGalaxyImage)

	s.mux.HandleFunc("GET /posts/{$}", s.handleListPosts)
	s.mux.HandleFunc("POST /posts/{$}", s.handleCreatePost)
	s.mux.HandleFunc("GET /posts/{id}/{$}", s.handleGetPost)
	s.mux.HandleFunc("PUT /posts/{id}/{$}", s.handleReplacePost)
	s.mux.HandleFunc("PATCH /posts/{id}/{$}", s.handlePatchPost)
	s.mux.HandleFunc("DELETE /posts/{id}/{$}", s.handleDeletePost)

	s.mux.HandleFunc("GET /post_images/{$}", s.handleListPostImages)
	s.mux.HandleFunc("POST /post_images/{$}", s.handleCreatePostImage)
	s.mux.HandleFunc("GET /post_images/{id}/{$}", s.handleGetPostImage)
	s.mux.HandleFunc("PUT /post_images/{id}/{$}", s.handleReplacePostImage)
	s.mux.HandleFunc("PATCH /post_images/{id}/{$}", s.handlePatchPostImage)
	s.mux.HandleFunc("DELETE /post_images/{id}/{$}", s.handleDeletePostImage)

	s.mux.HandleFunc("GET /comments/{$}", s.handleListComments)
	s.mux.HandleFunc("POST /comments/{$}", s.handleCreateComment)
	s.mux.HandleFunc("GET /comments/{id}/{$}", s.handleGetComment)
	s.mux.HandleFunc("PUT /comments/{id}/{$}", s.handleReplaceComment)
	s.mux.HandleFunc("PATCH /comments/{id}/{$}", s.handlePatchComment)
	s.mux.HandleFunc("DELETE /comments/{id}/{$}", s.handleDeleteComment)
}

// resolveCaller turns the Authorization header into a caller id. No header
// means an anonymous caller; a present but unusable bearer token is an
// authentication failure, never anonymous.
func (s *Server) resolveCaller(r *http.Request) (string, bool) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return "", true
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		// Non-bearer schemes are not ours to judge; the caller stays
		// anonymous.
		return "", true
	}
	claims, err := s.accounts.Tokens.Parse(strings.TrimSpace(token))
	if err != nil {
		return "", false
	}
	if claims.TokenType != accountports.TokenTypeAccess {
		return "", false
	}
	return claims.UserID, true
}

// caller resolves the request's identity, writing the 401 itself when the
// bearer token is unusable.
func (s *Server) caller(w http.ResponseWriter, r *http.Request) (string, bool) {
	callerID, ok := s.resolveCaller(r)
	if !ok {
		writeDetail(w, http.StatusUnauthorized, detailTokenNotValid)
		return "", false
	}
	return callerID, true
}

// listParams parses the shared shaping and paging query parameters,
// writing the 400 itself on invalid paging values.
func listParams(w http.ResponseWriter, query url.Values) (shaping.Params, paging.Params, bool) {
	shape := shaping.ParseParams(query)
	page, err := paging.Parse(query)
	if err != nil {
		switch {
		case errors.Is(err, paging.ErrInvalidLimit):
			writeFieldErrors(w, map[string][]string{"limit": {err.Error()}})
		case errors.Is(err, paging.ErrInvalidOffset):
			writeFieldErrors(w, map[string][]string{"offset": {err.Error()}})
		default:
			writeDetail(w, http.StatusBadRequest, err.Error())
		}
		return shaping.Params{}, paging.Params{}, false
	}
	return shape, page, true
}

// pathID parses the numeric {id} segment. Unknown and non-numeric
// identifiers are the same 404 to the client.
func pathID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		writeDetail(w, http.StatusNotFound, detailNotFound)
		return 0, false
	}
	return id, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeDetail(w, http.StatusBadRequest, "request body must be valid JSON")
		return false
	}
	return true
}

func writeAccountError(w http.ResponseWriter, err error) {
	var validation *accounterrors.ValidationError
	switch {
	case errors.As(err, &validation):
		writeFieldErrors(w, map[string][]string{validation.Field: {validation.Message}})
	case errors.Is(err, accounterrors.ErrInvalidCredentials):
		writeDetail(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, accounterrors.ErrAuthenticationRequired):
		writeDetail(w, http.StatusUnauthorized, detailNotAuthenticated)
	case errors.Is(err, accounterrors.ErrAlreadyAuthenticated):
		writeDetail(w, http.StatusForbidden, detailPermissionDenied)
	case errors.Is(err, accounterrors.ErrNotResourceOwner):
		writeDetail(w, http.StatusForbidden, detailPermissionDenied)
	case errors.Is(err, accounterrors.ErrUserNotFound):
		writeDetail(w, http.StatusNotFound, detailNotFound)
	case errors.Is(err, accounterrors.ErrTokenInvalid):
		writeDetail(w, http.StatusUnauthorized, detailTokenNotValid)
	case errors.Is(err, accounterrors.ErrRefreshTokenRequired):
		writeFieldErrors(w, map[string][]string{"refresh_token": {"This field is required."}})
	case errors.Is(err, accounterrors.ErrTokenMalformed):
		writeDetail(w, http.StatusBadRequest, "Refresh token is malformed.")
	case errors.Is(err, accounterrors.ErrTokenAlreadyRevoked):
		writeDetail(w, http.StatusBadRequest, "Refresh token is already revoked.")
	default:
		writeDetail(w, http.StatusInternalServerError, "A server error occurred.")
	}
}

func writeCatalogError(w http.ResponseWriter, err error) {
	var validation *catalogerrors.ValidationError
	switch {
	case errors.As(err, &validation):
		writeFieldErrors(w, map[string][]string{validation.Field: {validation.Message}})
	case errors.Is(err, catalogerrors.ErrAuthenticationRequired):
		writeDetail(w, http.StatusUnauthorized, detailNotAuthenticated)
	case errors.Is(err, catalogerrors.ErrPermissionDenied):
		writeDetail(w, http.StatusForbidden, detailPermissionDenied)
	case errors.Is(err, catalogerrors.ErrConstellationNotFound),
		errors.Is(err, catalogerrors.ErrGalaxyNotFound),
		errors.Is(err, catalogerrors.ErrPostNotFound),
		errors.Is(err, catalogerrors.ErrCommentNotFound),
		errors.Is(err, catalogerrors.ErrImageNotFound):
		writeDetail(w, http.StatusNotFound, detailNotFound)
	default:
		writeDetail(w, http.StatusInternalServerError, "A server error occurred.")
	}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeFieldErrors(w http.ResponseWriter, fields map[string][]string) {
	writeJSON(w, http.StatusBadRequest, fields)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
