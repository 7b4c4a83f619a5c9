package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/kabomba/statusengine/internal/store"
	"github.com/kabomba/statusengine/internal/uptime"
	"github.com/kabomba/statusengine/internal/uptimeapi"
)

// HandleUptime returns the availability fraction for a single monitor
// over the requested range.
func HandleUptime(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parsePositiveID(chi.URLParam(r, "id"))
		if !ok {
			writeValidationError(w, "id must be a positive integer")
			return
		}

		rangeKeyword := r.URL.Query().Get("range")
		if rangeKeyword == "" {
			rangeKeyword = "24h"
		}
		seconds, ok := uptime.RangeSeconds(rangeKeyword)
		if !ok {
			writeValidationError(w, "range must be one of: 24h, 7d, 30d")
			return
		}

		monitor, err := st.ActiveMonitorByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				writeNotFound(w, "Monitor not found")
				return
			}
			writeInternalError(w, err)
			return
		}

		result, err := uptimeapi.Aggregate(r.Context(), st, monitor, rangeKeyword, seconds, time.Now().Unix())
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}
