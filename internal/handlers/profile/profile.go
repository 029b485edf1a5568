package profile

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/fitquest/internal/domain"
	"github.com/GlebRadaev/fitquest/internal/dto"
	"github.com/GlebRadaev/fitquest/internal/handlers/httperr"
	"github.com/GlebRadaev/fitquest/pkg/auth"
	"github.com/GlebRadaev/fitquest/pkg/utils"
	"github.com/GlebRadaev/fitquest/pkg/validate"
)

//go:generate mockgen -source=profile.go -destination=mock_profile.go -package=profile

type Service interface {
	Provision(ctx context.Context, userID, email, displayName, avatarURL string) (*domain.Profile, *domain.LedgerEntry, error)
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
}

type ProfileHandler struct {
	profileService Service
	validator      *validate.Validator
}

func New(profileService Service, validator *validate.Validator) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		validator:      validator,
	}
}

// Provision godoc
//
//	@Summary		Create or refresh the caller's profile
//	@Description	Stores display name and avatar and opens the XP ledger at level 1. Safe to call on every sign-in; existing XP is kept.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ProvisionRequestDTO		false	"Profile details"
//	@Success		200		{object}	dto.ProvisionResponseDTO	"Profile and ledger"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		422		{object}	utils.Response				"Validation failed"
//	@Failure		503		{object}	utils.Response				"Storage unavailable"
//	@Router			/api/user/profile [post]
func (h *ProfileHandler) Provision(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.ProvisionRequestDTO
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}
	if err := h.validator.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	profile, entry, err := h.profileService.Provision(r.Context(), id.UserID, id.Email, req.DisplayName, req.AvatarURL)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProvisionResponseDTO{
		Profile: dto.FromProfile(profile),
		Ledger:  dto.FromLedger(entry),
	})
}

// GetProfile godoc
//
//	@Summary		Get the caller's profile
//	@Tags			Profile
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ProfileResponseDTO	"Profile"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Profile not provisioned yet"
//	@Failure		503	{object}	utils.Response			"Storage unavailable"
//	@Router			/api/user/profile [get]
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile, err := h.profileService.GetProfile(r.Context(), id.UserID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromProfile(profile))
}
