package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/kabomba/statusengine/internal/latency"
	"github.com/kabomba/statusengine/internal/store"
	"github.com/kabomba/statusengine/internal/uptime"
)

// HandleLatency returns the latency profile for a single monitor.
func HandleLatency(st *store.Store) http.HandlerFunc {
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
		if rangeKeyword != "24h" {
			writeValidationError(w, "range must be one of: 24h")
			return
		}
		seconds, _ := uptime.RangeSeconds(rangeKeyword)

		monitor, err := st.ActiveMonitorByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				writeNotFound(w, "Monitor not found")
				return
			}
			writeInternalError(w, err)
			return
		}

		result, err := latency.Aggregate(r.Context(), st, monitor, rangeKeyword, seconds, time.Now().Unix())
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}
