package api

import (
	"net/http"

	"github.com/kabomba/statusengine/internal/store"
)

// HandleHealth issues one trivial datastore read to confirm connectivity.
func HandleHealth(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := st.Ping(r.Context()); err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}
