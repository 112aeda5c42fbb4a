package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"fundledger/internal/domain"
	"fundledger/internal/middleware"
)

type createFundRequest struct {
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	End               time.Time `json:"end"`
	Target            int64     `json:"target"`
	DonationRecipient string    `json:"donation_recipient"`
}

type contributeRequest struct {
	Amount int64 `json:"amount"`
}

type fundResponse struct {
	ID                int64     `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	End               time.Time `json:"end"`
	Target            int64     `json:"target"`
	CurrentAmount     int64     `json:"current_amount"`
	DonationRecipient string    `json:"donation_recipient"`
	Owner             string    `json:"owner"`
	Active            bool      `json:"active"`
	CreatedAt         time.Time `json:"created_at"`
}

func toFundResponse(f domain.Fund) fundResponse {
	return fundResponse{
		ID:                f.ID,
		Title:             f.Title,
		Description:       f.Description,
		End:               f.End,
		Target:            f.Target,
		CurrentAmount:     f.CurrentAmount,
		DonationRecipient: f.DonationRecipient,
		Owner:             f.Owner,
		Active:            f.Active,
		CreatedAt:         f.CreatedAt,
	}
}

func (a *App) FundsCreate(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFromContext(r.Context())
	if caller == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "caller address required")
		return
	}
	var req createFundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	fund, err := a.Ledger.CreateFund(r.Context(), req.Title, req.Description, req.End, req.Target, req.DonationRecipient, caller)
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusCreated, toFundResponse(fund))
}

func (a *App) FundsList(w http.ResponseWriter, r *http.Request) {
	funds := a.Ledger.AllFunds()
	items := make([]fundResponse, 0, len(funds))
	for _, f := range funds {
		items = append(items, toFundResponse(f))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) FundsGet(w http.ResponseWriter, r *http.Request) {
	id, ok := a.fundID(w, r)
	if !ok {
		return
	}
	fund, err := a.Ledger.Fund(id)
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, toFundResponse(fund))
}

func (a *App) FundsFunding(w http.ResponseWriter, r *http.Request) {
	id, ok := a.fundID(w, r)
	if !ok {
		return
	}
	total, err := a.Ledger.CheckFunding(id)
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"fund_id": id, "current_amount": total})
}

func (a *App) FundsContribute(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFromContext(r.Context())
	if caller == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "caller address required")
		return
	}
	id, ok := a.fundID(w, r)
	if !ok {
		return
	}
	var req contributeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.Amount <= 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "amount must be positive")
		return
	}
	fund, err := a.Ledger.Contribute(r.Context(), id, caller, req.Amount)
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, toFundResponse(fund))
}

func (a *App) FundsRefund(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFromContext(r.Context())
	if caller == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "caller address required")
		return
	}
	id, ok := a.fundID(w, r)
	if !ok {
		return
	}
	if !a.Guard.IsDonorOrOwner(caller, id) {
		a.error(w, http.StatusForbidden, "unauthorized", "caller is neither donor nor owner")
		return
	}
	if err := a.Ledger.Refund(r.Context(), id); err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"fund_id": id, "refunded": true})
}

func (a *App) fundID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid fund id")
		return 0, false
	}
	return id, true
}
