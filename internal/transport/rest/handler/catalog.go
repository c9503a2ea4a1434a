package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/radion-x/ODI-Aaron-3/internal/catalog"
)

// CatalogHandler serves question catalogs to the wizard UI
type CatalogHandler struct {
	catalogs *catalog.Registry
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogs *catalog.Registry) *CatalogHandler {
	return &CatalogHandler{catalogs: catalogs}
}

// Get handles GET /api/catalogs/{id}
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	cat, err := h.catalogs.Get(id)
	if err != nil {
		var notFound *catalog.NotFoundError
		if errors.As(err, &notFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, cat)
}
