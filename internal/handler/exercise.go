package handler

import (
	"net/http"

	"github.com/katasiddartha-lang/health-coach-ai/internal/utils"
)

const defaultSearchLimit = 20

// SearchExercises proxies the catalog. The client degrades on its own, so
// this endpoint always answers 200 with whatever list came back.
func (h *Handler) SearchExercises(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	limit := utils.QueryInt(r, "limit", defaultSearchLimit)

	exercises := h.catalog.Search(r.Context(), query, limit)

	utils.Success(w, map[string]interface{}{
		"exercises": exercises,
	})
}
