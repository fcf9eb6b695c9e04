package httpserver

import (
	"net/http"

	cataloghttp "celestialbay/contexts/sky-catalog/catalog-service/transport/http"
	"celestialbay/internal/shared/paging"
	"celestialbay/internal/shared/shaping"
)

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	shape, page, ok := listParams(w, r.URL.Query())
	if !ok {
		return
	}
	docs, total, err := s.catalog.Handler.ListPostsHandler(r.Context(), shape, page.Limit, page.Offset)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, paging.NewPage(r.URL, page, total, docs))
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	callerID, ok := s.caller(w, r)
	if !ok {
		return
	}
	var req cataloghttp.PostRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	doc, err := s.catalog.Handler.CreatePostHandler(r.Context(), callerID, req)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	doc, err := s.catalog.Handler.GetPostHandler(r.Context(), id, shaping.ParseParams(r.URL.Query()))
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleReplacePost(w http.ResponseWriter, r *http.Request) {
	s.updatePost(w, r, false)
}

func (s *Server) handlePatchPost(w http.ResponseWriter, r *http.Request) {
	s.updatePost(w, r, true)
}

func (s *Server) updatePost(w http.ResponseWriter, r *http.Request, partial bool) {
	callerID, ok := s.caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req cataloghttp.PostRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	doc, err := s.catalog.Handler.UpdatePostHandler(r.Context(), callerID, id, req, partial)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	callerID, ok := s.caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.catalog.Handler.DeletePostHandler(r.Context(), callerID, id); err != nil {
		writeCatalogError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
