package challenges

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/GlebRadaev/fitquest/internal/domain"
	"github.com/GlebRadaev/fitquest/internal/dto"
	"github.com/GlebRadaev/fitquest/internal/handlers/httperr"
	"github.com/GlebRadaev/fitquest/pkg/auth"
	"github.com/GlebRadaev/fitquest/pkg/utils"
	"github.com/GlebRadaev/fitquest/pkg/validate"
)

//go:generate mockgen -source=challenges.go -destination=mock_challenges.go -package=challenges

type Service interface {
	CreateChallenge(ctx context.Context, userID string, c *domain.WeeklyChallenge) (*domain.WeeklyChallenge, error)
	GetChallenge(ctx context.Context, userID string, id uuid.UUID) (*domain.WeeklyChallenge, error)
	CurrentChallenge(ctx context.Context, userID string) (*domain.WeeklyChallenge, error)
	WeeklyProgress(ctx context.Context, userID string, id uuid.UUID) (domain.Progress, error)
	CheckIn(ctx context.Context, userID string, id uuid.UUID, day *int) (*domain.WeeklyChallenge, error)
	ClaimReward(ctx context.Context, userID string, id uuid.UUID) (*domain.ClaimResult, error)
}

type ChallengeHandler struct {
	challengeService Service
	validator        *validate.Validator
}

func New(challengeService Service, validator *validate.Validator) *ChallengeHandler {
	return &ChallengeHandler{
		challengeService: challengeService,
		validator:        validator,
	}
}

func challengeID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "challengeID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid challengeID")
		return uuid.Nil, false
	}
	return id, true
}

// CreateChallenge godoc
//
//	@Summary		Open a weekly challenge
//	@Description	Week defaults to the current ISO week. One challenge per user and week.
//	@Tags			Challenges
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateChallengeRequestDTO	true	"Challenge"
//	@Success		201		{object}	dto.ChallengeResponseDTO		"Created challenge"
//	@Failure		400		{object}	utils.Response					"Invalid request body"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		409		{object}	utils.Response					"Challenge for this week already exists"
//	@Failure		422		{object}	utils.Response					"Validation failed"
//	@Router			/api/user/challenges [post]
func (h *ChallengeHandler) CreateChallenge(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.CreateChallengeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	c, err := h.challengeService.CreateChallenge(r.Context(), id.UserID, &domain.WeeklyChallenge{
		Week:        req.Week,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromChallenge(c))
}

// CurrentChallenge godoc
//
//	@Summary		Challenge of the current ISO week
//	@Tags			Challenges
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ChallengeResponseDTO	"Challenge"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		404	{object}	utils.Response				"No challenge this week"
//	@Router			/api/user/challenges/current [get]
func (h *ChallengeHandler) CurrentChallenge(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	c, err := h.challengeService.CurrentChallenge(r.Context(), id.UserID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromChallenge(c))
}

// GetChallenge godoc
//
//	@Summary		Get a weekly challenge
//	@Tags			Challenges
//	@Security		BearerAuth
//	@Produce		json
//	@Param			challengeID	path		string						true	"Challenge id"
//	@Success		200			{object}	dto.ChallengeResponseDTO	"Challenge"
//	@Failure		400			{object}	utils.Response				"Invalid challenge id"
//	@Failure		401			{object}	utils.Response				"User not authorized"
//	@Failure		404			{object}	utils.Response				"Challenge not found"
//	@Router			/api/user/challenges/{challengeID} [get]
func (h *ChallengeHandler) GetChallenge(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	cid, ok := challengeID(w, r)
	if !ok {
		return
	}

	c, err := h.challengeService.GetChallenge(r.Context(), id.UserID, cid)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromChallenge(c))
}

// WeeklyProgress godoc
//
//	@Summary		Completed days over seven
//	@Tags			Challenges
//	@Security		BearerAuth
//	@Produce		json
//	@Param			challengeID	path		string			true	"Challenge id"
//	@Success		200			{object}	dto.ProgressDTO	"Progress"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Challenge not found"
//	@Router			/api/user/challenges/{challengeID}/progress [get]
func (h *ChallengeHandler) WeeklyProgress(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	cid, ok := challengeID(w, r)
	if !ok {
		return
	}

	progress, err := h.challengeService.WeeklyProgress(r.Context(), id.UserID, cid)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromProgress(progress))
}

// CheckIn godoc
//
//	@Summary		Mark a day of the challenge as done
//	@Description	Day is 0 (Monday) to 6 (Sunday). Without a body the current UTC day is used, which requires a challenge of the current week. Checking in twice is a no-op.
//	@Tags			Challenges
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			challengeID	path		string					true	"Challenge id"
//	@Param			request		body		dto.CheckInRequestDTO	false	"Day"
//	@Success		200			{object}	dto.ChallengeResponseDTO	"Challenge"
//	@Failure		400			{object}	utils.Response			"Invalid request body"
//	@Failure		401			{object}	utils.Response			"User not authorized"
//	@Failure		404			{object}	utils.Response			"Challenge not found"
//	@Failure		422			{object}	utils.Response			"Day outside 0..6"
//	@Failure		429			{object}	utils.Response			"Too many requests"
//	@Router			/api/user/challenges/{challengeID}/check-in [post]
func (h *ChallengeHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	cid, ok := challengeID(w, r)
	if !ok {
		return
	}

	var req dto.CheckInRequestDTO
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := h.validator.Struct(req); err != nil {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
	}

	c, err := h.challengeService.CheckIn(r.Context(), id.UserID, cid, req.Day)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromChallenge(c))
}

// ClaimReward godoc
//
//	@Summary		Claim the XP reward of a completed challenge
//	@Description	All seven days must be checked in. The reward can be claimed once.
//	@Tags			Challenges
//	@Security		BearerAuth
//	@Produce		json
//	@Param			challengeID	path		string					true	"Challenge id"
//	@Success		200			{object}	dto.ClaimResponseDTO	"Claimed"
//	@Failure		401			{object}	utils.Response			"User not authorized"
//	@Failure		404			{object}	utils.Response			"Challenge not found"
//	@Failure		409			{object}	utils.Response			"Incomplete or already claimed"
//	@Failure		429			{object}	utils.Response			"Too many requests"
//	@Router			/api/user/challenges/{challengeID}/claim [post]
func (h *ChallengeHandler) ClaimReward(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	cid, ok := challengeID(w, r)
	if !ok {
		return
	}

	res, err := h.challengeService.ClaimReward(r.Context(), id.UserID, cid)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	response := dto.ClaimResponseDTO{
		Challenge: dto.FromChallenge(&res.Challenge),
		XPAwarded: res.XPAwarded,
	}
	if res.Ledger != nil {
		ledger := dto.FromLedger(res.Ledger)
		response.Ledger = &ledger
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
