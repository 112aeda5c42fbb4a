package handlers

import (
	"encoding/json"
	"net/http"

	"fundledger/internal/middleware"
)

type switchRequest struct {
	Enabled bool `json:"enabled"`
}

// AdminSwitch flips the process-wide activation switch. Admin only.
func (a *App) AdminSwitch(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFromContext(r.Context())
	if !a.Guard.IsAdmin(caller) {
		a.error(w, http.StatusForbidden, "unauthorized", "admin only")
		return
	}
	var req switchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.Enabled {
		a.Switch.Enable()
	} else {
		a.Switch.Disable()
	}
	a.Log.Info().Bool("enabled", req.Enabled).Str("caller", caller).Msg("activation switch flipped")
	a.json(w, http.StatusOK, map[string]bool{"enabled": a.Switch.Enabled()})
}
