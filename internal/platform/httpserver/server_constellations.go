package httpserver

import (
	"net/http"

	"celestialbay/internal/shared/paging"
	"celestialbay/internal/shared/shaping"
)

func (s *Server) handleListConstellations(w http.ResponseWriter, r *http.Request) {
	shape, page, ok := listParams(w, r.URL.Query())
	if !ok {
		return
	}
	docs, total, err := s.catalog.Handler.ListConstellationsHandler(r.Context(), shape, page.Limit, page.Offset)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, paging.NewPage(r.URL, page, total, docs))
}

func (s *Server) handleGetConstellation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	doc, err := s.catalog.Handler.GetConstellationHandler(r.Context(), id, shaping.ParseParams(r.URL.Query()))
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleGetConstellationImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	doc, err := s.catalog.Handler.GetConstellationImageHandler(r.Context(), id, shaping.ParseParams(r.URL.Query()))
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}
