package api

import (
	"net/http"
	"time"

	"github.com/kabomba/statusengine/internal/status"
	"github.com/kabomba/statusengine/internal/store"
)

// HandleStatus returns the fleet-wide status document.
func HandleStatus(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fleet, err := status.Aggregate(r.Context(), st, time.Now().Unix())
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, fleet)
	}
}
