package handlers

import (
	"net/http"
	"strconv"
)

// EventsRecent serves the persisted notification feed. Unavailable when no
// event store is configured.
func (a *App) EventsRecent(w http.ResponseWriter, r *http.Request) {
	if a.Events == nil {
		a.error(w, http.StatusServiceUnavailable, "unavailable", "event feed not configured")
		return
	}
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	items, err := a.Events.ListRecent(r.Context(), limit)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load events")
		return
	}
	out := make([]map[string]any, 0, len(items))
	for _, ev := range items {
		out = append(out, map[string]any{
			"id":         ev.ID,
			"type":       ev.Type,
			"fund_id":    ev.FundID,
			"amount":     ev.Amount,
			"country":    ev.Country,
			"created_at": ev.CreatedAt,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": out})
}
