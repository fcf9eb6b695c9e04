package httpserver

import (
	"net/http"

	accounthttp "celestialbay/contexts/identity-access/account-service/transport/http"
	"celestialbay/internal/shared/shaping"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	callerID, ok := s.caller(w, r)
	if !ok {
		return
	}
	var req accounthttp.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.accounts.Handler.RegisterHandler(r.Context(), callerID, req)
	if err != nil {
		writeAccountError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req accounthttp.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.accounts.Handler.LoginHandler(r.Context(), req)
	if err != nil {
		writeAccountError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var req accounthttp.RefreshRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.accounts.Handler.RefreshHandler(r.Context(), req)
	if err != nil {
		writeAccountError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	callerID, ok := s.caller(w, r)
	if !ok {
		return
	}
	var req accounthttp.LogoutRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.accounts.Handler.LogoutHandler(r.Context(), callerID, req); err != nil {
		writeAccountError(w, err)
		return
	}
	w.WriteHeader(http.StatusResetContent)
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	callerID, ok := s.caller(w, r)
	if !ok {
		return
	}
	var req accounthttp.ChangePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.accounts.Handler.ChangePasswordHandler(r.Context(), callerID, r.PathValue("id"), req); err != nil {
		writeAccountError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"detail": "Password updated successfully."})
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	callerID, ok := s.caller(w, r)
	if !ok {
		return
	}
	var req accounthttp.UpdateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.accounts.Handler.UpdateUserHandler(r.Context(), callerID, r.PathValue("id"), req)
	if err != nil {
		writeAccountError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	shape := shaping.ParseParams(r.URL.Query())
	doc, err := s.accounts.Handler.GetUserHandler(r.Context(), r.PathValue("id"), shape)
	if err != nil {
		writeAccountError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}
