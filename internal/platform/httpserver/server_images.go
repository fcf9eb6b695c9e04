package httpserver

import (
	"net/http"

	cataloghttp "celestialbay/contexts/sky-catalog/catalog-service/transport/http"
	"celestialbay/internal/shared/paging"
	"celestialbay/internal/shared/shaping"
)

func (s *Server) handleListGalaxyImages(w http.ResponseWriter, r *http.Request) {
	shape, page, ok := listParams(w, r.URL.Query())
	if !ok {
		return
	}
	docs, total, err := s.catalog.Handler.ListGalaxyImagesHandler(r.Context(), shape, page.Limit, page.Offset)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, paging.NewPage(r.URL, page, total, docs))
}

func (s *Server) handleCreateGalaxyImage(w http.ResponseWriter, r *http.Request) {
	callerID, ok := s.caller(w, r)
	if !ok {
		return
	}
	var req cataloghttp.GalaxyImageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	doc, err := s.catalog.Handler.CreateGalaxyImageHandler(r.Context(), callerID, req)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

func (s *Server) handleGetGalaxyImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	doc, err := s.catalog.Handler.GetGalaxyImageHandler(r.Context(), id, shaping.ParseParams(r.URL.Query()))
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleReplaceGalaxyImage(w http.ResponseWriter, r *http.Request) {
	s.updateGalaxyImage(w, r, false)
}

func (s *Server) handlePatchGalaxyImage(w http.ResponseWriter, r *http.Request) {
	s.updateGalaxyImage(w, r, true)
}

func (s *Server) updateGalaxyImage(w http.ResponseWriter, r *http.Request, partial bool) {
	callerID, ok := s.caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req cataloghttp.GalaxyImageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	doc, err := s.catalog.Handler.UpdateGalaxyImageHandler(r.Context(), callerID, id, req, partial)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleDeleteGalaxyImage(w http.ResponseWriter, r *http.Request) {
	callerID, ok := s.caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.catalog.Handler.DeleteGalaxyImageHandler(r.Context(), callerID, id); err != nil {
		writeCatalogError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListPostImages(w http.ResponseWriter, r *http.Request) {
	shape, page, ok := listParams(w, r.URL.Query())
	if !ok {
		return
	}
	docs, total, err := s.catalog.Handler.ListPostImagesHandler(r.Context(), shape, page.Limit, page.Offset)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, paging.NewPage(r.URL, page, total, docs))
}

func (s *Server) handleCreatePostImage(w http.ResponseWriter, r *http.Request) {
	callerID, ok := s.caller(w, r)
	if !ok {
		return
	}
	var req cataloghttp.PostImageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	doc, err := s.catalog.Handler.CreatePostImageHandler(r.Context(), callerID, req)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

func (s *Server) handleGetPostImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	doc, err := s.catalog.Handler.GetPostImageHandler(r.Context(), id, shaping.ParseParams(r.URL.Query()))
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleReplacePostImage(w http.ResponseWriter, r *http.Request) {
	s.updatePostImage(w, r, false)
}

func (s *Server) handlePatchPostImage(w http.ResponseWriter, r *http.Request) {
	s.updatePostImage(w, r, true)
}

func (s *Server) updatePostImage(w http.ResponseWriter, r *http.Request, partial bool) {
	callerID, ok := s.caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req cataloghttp.PostImageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	doc, err := s.catalog.Handler.UpdatePostImageHandler(r.Context(), callerID, id, req, partial)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleDeletePostImage(w http.ResponseWriter, r *http.Request) {
	callerID, ok := s.caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.catalog.Handler.DeletePostImageHandler(r.Context(), callerID, id); err != nil {
		writeCatalogError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
