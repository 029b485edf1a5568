package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/fitquest/internal/domain"
	"github.com/GlebRadaev/fitquest/internal/dto"
	"github.com/GlebRadaev/fitquest/internal/handlers/httperr"
	"github.com/GlebRadaev/fitquest/pkg/utils"
	"github.com/GlebRadaev/fitquest/pkg/validate"
)

//go:generate mockgen -source=admin.go -destination=mock_admin.go -package=admin

type LedgerService interface {
	GetLedger(ctx context.Context, userID string) (*domain.LedgerEntry, error)
	AccrueXP(ctx context.Context, userID string, delta int, source domain.XPSource, sourceID string) (*domain.LedgerEntry, error)
}

type AuditService interface {
	List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEvent, error)
}

type AdminHandler struct {
	ledgerService LedgerService
	auditService  AuditService
	validator     *validate.Validator
}

func New(ledgerService LedgerService, auditService AuditService, validator *validate.Validator) *AdminHandler {
	return &AdminHandler{
		ledgerService: ledgerService,
		auditService:  auditService,
		validator:     validator,
	}
}

// GetLedger godoc
//
//	@Summary		Inspect any user's ledger
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userID	path		string					true	"User id"
//	@Success		200		{object}	dto.LedgerResponseDTO	"Ledger"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		403		{object}	utils.Response			"Not an administrator"
//	@Failure		404		{object}	utils.Response			"Ledger not found"
//	@Router			/api/admin/ledger/{userID} [get]
func (h *AdminHandler) GetLedger(w http.ResponseWriter, r *http.Request) {
	entry, err := h.ledgerService.GetLedger(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromLedger(entry))
}

// AwardXP godoc
//
//	@Summary		Grant XP to a user
//	@Description	Goes through the same accrual path as micro-goals and challenges, so level and badges are recomputed.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			userID	path		string					true	"User id"
//	@Param			request	body		dto.AwardXPRequestDTO	true	"Award"
//	@Success		200		{object}	dto.LedgerResponseDTO	"Updated ledger"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		403		{object}	utils.Response			"Not an administrator"
//	@Failure		404		{object}	utils.Response			"Ledger not found"
//	@Failure		422		{object}	utils.Response			"Validation failed"
//	@Router			/api/admin/ledger/{userID}/xp [post]
func (h *AdminHandler) AwardXP(w http.ResponseWriter, r *http.Request) {
	var req dto.AwardXPRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	entry, err := h.ledgerService.AccrueXP(r.Context(), chi.URLParam(r, "userID"), req.Delta, domain.XPSourceAdmin, req.Reason)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromLedger(entry))
}

// ListAudit godoc
//
//	@Summary		Recent audit events
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			user_id	query		string				false	"Only events of this user"
//	@Param			limit	query		int					false	"Max events (default and max 100)"
//	@Success		200		{array}		dto.AuditEventDTO	"Events, newest first"
//	@Failure		400		{object}	utils.Response		"Invalid limit"
//	@Failure		403		{object}	utils.Response		"Not an administrator"
//	@Failure		503		{object}	utils.Response		"Storage unavailable"
//	@Router			/api/admin/audit [get]
func (h *AdminHandler) ListAudit(w http.ResponseWriter, r *http.Request) {
	filter := domain.AuditFilter{UserID: r.URL.Query().Get("user_id")}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			utils.RespondWithError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		filter.Limit = n
	}

	events, err := h.auditService.List(r.Context(), filter)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromAuditEvents(events))
}
