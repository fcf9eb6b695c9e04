package httpserver

import (
	"net/http"

	cataloghttp "celestialbay/contexts/sky-catalog/catalog-service/transport/http"
	"celestialbay/internal/shared/paging"
	"celestialbay/internal/shared/shaping"
)

func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	shape, page, ok := listParams(w, r.URL.Query())
	if !ok {
		return
	}
	docs, total, err := s.catalog.Handler.ListCommentsHandler(r.Context(), shape, page.Limit, page.Offset)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, paging.NewPage(r.URL, page, total, docs))
}

func (s *Server) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	callerID, ok := s.caller(w, r)
	if !ok {
		return
	}
	var req cataloghttp.CommentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	doc, err := s.catalog.Handler.CreateCommentHandler(r.Context(), callerID, req)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

func (s *Server) handleGetComment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	doc, err := s.catalog.Handler.GetCommentHandler(r.Context(), id, shaping.ParseParams(r.URL.Query()))
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleReplaceComment(w http.ResponseWriter, r *http.Request) {
	s.updateComment(w, r, false)
}

func (s *Server) handlePatchComment(w http.ResponseWriter, r *http.Request) {
	s.updateComment(w, r, true)
}

func (s *Server) updateComment(w http.ResponseWriter, r *http.Request, partial bool) {
	callerID, ok := s.caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req cataloghttp.CommentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	doc, err := s.catalog.Handler.UpdateCommentHandler(r.Context(), callerID, id, req, partial)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	callerID, ok := s.caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.catalog.Handler.DeleteCommentHandler(r.Context(), callerID, id); err != nil {
		writeCatalogError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
