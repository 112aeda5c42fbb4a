package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"fundledger/internal/access"
	"fundledger/internal/domain"
	"fundledger/internal/ledger"
)

// App bundles the handler dependencies: the ledger core, the collaborators
// gating it, and the event feed.
type App struct {
	Ledger *ledger.Ledger
	Guard  *access.Guard
	Switch *access.Switch
	Events domain.EventRepository
	Log    zerolog.Logger
}

func NewApp(l *ledger.Ledger, guard *access.Guard, sw *access.Switch, events domain.EventRepository, log zerolog.Logger) *App {
	return &App{Ledger: l, Guard: guard, Switch: sw, Events: events, Log: log}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, reason, msg string) {
	a.json(w, code, map[string]string{"error": reason, "message": msg})
}

// domainError maps ledger sentinel errors onto HTTP status plus reason code.
func (a *App) domainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, domain.ErrFundInactive):
		a.error(w, http.StatusConflict, "fund_inactive", err.Error())
	case errors.Is(err, domain.ErrLedgerDisabled):
		a.error(w, http.StatusServiceUnavailable, "ledger_disabled", err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		a.error(w, http.StatusForbidden, "unauthorized", err.Error())
	case errors.Is(err, domain.ErrIneligibleRefund):
		a.error(w, http.StatusConflict, "ineligible_refund", err.Error())
	case errors.Is(err, domain.ErrTransferFailed):
		a.error(w, http.StatusBadGateway, "transfer_failed", err.Error())
	default:
		a.error(w, http.StatusInternalServerError, "internal", "unexpected error")
	}
}
