package goals

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

//go:generate mockgen -source=goals.go -destination=mock_goals.go -package=goals

type Service interface {
	CreateGoal(ctx context.Context, userID string, goal *domain.Goal) (*domain.Goal, error)
	ListGoals(ctx context.Context, userID, status string) ([]domain.GoalSummary, error)
	GetGoal(ctx context.Context, userID string, goalID uuid.UUID) (*domain.GoalDetails, error)
	DeleteGoal(ctx context.Context, userID string, goalID uuid.UUID) error
	GoalProgress(ctx context.Context, userID string, goalID uuid.UUID) (domain.Progress, error)
	CreateMicroGoal(ctx context.Context, userID string, goalID uuid.UUID, mg *domain.MicroGoal) (*domain.MicroGoal, error)
	DeleteMicroGoal(ctx context.Context, userID string, id uuid.UUID) error
	ToggleMicroGoal(ctx context.Context, userID string, id uuid.UUID) (*domain.ToggleResult, error)
}

type GoalHandler struct {
	goalService Service
	validator   *validate.Validator
}

func New(goalService Service, validator *validate.Validator) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
		validator:   validator,
	}
}

func pathID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid "+param)
		return uuid.Nil, false
	}
	return id, true
}

// CreateGoal godoc
//
//	@Summary		Create a goal
//	@Tags			Goals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateGoalRequestDTO	true	"Goal"
//	@Success		201		{object}	dto.GoalResponseDTO			"Created goal"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		422		{object}	utils.Response				"Validation failed"
//	@Failure		503		{object}	utils.Response				"Storage unavailable"
//	@Router			/api/user/goals [post]
func (h *GoalHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.CreateGoalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	goal, err := h.goalService.CreateGoal(r.Context(), id.UserID, req.ToGoal())
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromGoal(*goal, domain.Progress{}))
}

// ListGoals godoc
//
//	@Summary		List goals with progress
//	@Description	Status is derived: a goal is completed when it has micro-goals and all of them are done.
//	@Tags			Goals
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string				false	"Filter by status"	Enums(active, completed)
//	@Success		200		{array}		dto.GoalResponseDTO	"Goals"
//	@Failure		401		{object}	utils.Response		"User not authorized"
//	@Failure		422		{object}	utils.Response		"Unknown status"
//	@Failure		503		{object}	utils.Response		"Storage unavailable"
//	@Router			/api/user/goals [get]
func (h *GoalHandler) ListGoals(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	goals, err := h.goalService.ListGoals(r.Context(), id.UserID, r.URL.Query().Get("status"))
	if err != nil {
		httperr.Write(w, err)
		return
	}
	response := make([]dto.GoalResponseDTO, len(goals))
	for i, g := range goals {
		response[i] = dto.FromGoal(g.Goal, g.Progress)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetGoal godoc
//
//	@Summary		Get a goal with its micro-goals
//	@Tags			Goals
//	@Security		BearerAuth
//	@Produce		json
//	@Param			goalID	path		string						true	"Goal id"
//	@Success		200		{object}	dto.GoalDetailsResponseDTO	"Goal"
//	@Failure		400		{object}	utils.Response				"Invalid goal id"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		404		{object}	utils.Response				"Goal not found"
//	@Router			/api/user/goals/{goalID} [get]
func (h *GoalHandler) GetGoal(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	goalID, ok := pathID(w, r, "goalID")
	if !ok {
		return
	}

	details, err := h.goalService.GetGoal(r.Context(), id.UserID, goalID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	response := dto.GoalDetailsResponseDTO{
		GoalResponseDTO: dto.FromGoal(details.Goal, details.Progress),
		MicroGoals:      make([]dto.MicroGoalResponseDTO, len(details.MicroGoals)),
	}
	for i, mg := range details.MicroGoals {
		response.MicroGoals[i] = dto.FromMicroGoal(mg)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// DeleteGoal godoc
//
//	@Summary		Delete a goal and its micro-goals
//	@Tags			Goals
//	@Security		BearerAuth
//	@Param			goalID	path	string	true	"Goal id"
//	@Success		204
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Goal not found"
//	@Router			/api/user/goals/{goalID} [delete]
func (h *GoalHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	goalID, ok := pathID(w, r, "goalID")
	if !ok {
		return
	}

	if err := h.goalService.DeleteGoal(r.Context(), id.UserID, goalID); err != nil {
		httperr.Write(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GoalProgress godoc
//
//	@Summary		Completed micro-goals over total
//	@Tags			Goals
//	@Security		BearerAuth
//	@Produce		json
//	@Param			goalID	path		string			true	"Goal id"
//	@Success		200		{object}	dto.ProgressDTO	"Progress"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Goal not found"
//	@Router			/api/user/goals/{goalID}/progress [get]
func (h *GoalHandler) GoalProgress(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	goalID, ok := pathID(w, r, "goalID")
	if !ok {
		return
	}

	progress, err := h.goalService.GoalProgress(r.Context(), id.UserID, goalID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromProgress(progress))
}

// CreateMicroGoal godoc
//
//	@Summary		Add a weekly micro-goal to a goal
//	@Tags			Goals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			goalID	path		string						true	"Goal id"
//	@Param			request	body		dto.CreateMicroGoalRequestDTO	true	"Micro-goal"
//	@Success		201		{object}	dto.MicroGoalResponseDTO	"Created micro-goal"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		404		{object}	utils.Response				"Goal not found"
//	@Failure		422		{object}	utils.Response				"Week outside 1..52"
//	@Router			/api/user/goals/{goalID}/micro-goals [post]
func (h *GoalHandler) CreateMicroGoal(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	goalID, ok := pathID(w, r, "goalID")
	if !ok {
		return
	}

	var req dto.CreateMicroGoalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	mg, err := h.goalService.CreateMicroGoal(r.Context(), id.UserID, goalID, &domain.MicroGoal{
		Title:       req.Title,
		Description: req.Description,
		Week:        req.Week,
	})
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromMicroGoal(*mg))
}

// DeleteMicroGoal godoc
//
//	@Summary		Delete a micro-goal
//	@Tags			Goals
//	@Security		BearerAuth
//	@Param			microGoalID	path	string	true	"Micro-goal id"
//	@Success		204
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Micro-goal not found"
//	@Router			/api/user/micro-goals/{microGoalID} [delete]
func (h *GoalHandler) DeleteMicroGoal(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	microGoalID, ok := pathID(w, r, "microGoalID")
	if !ok {
		return
	}

	if err := h.goalService.DeleteMicroGoal(r.Context(), id.UserID, microGoalID); err != nil {
		httperr.Write(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ToggleMicroGoal godoc
//
//	@Summary		Flip a micro-goal between done and not done
//	@Description	Marking a micro-goal done awards XP in the same transaction. Un-marking never removes XP.
//	@Tags			Goals
//	@Security		BearerAuth
//	@Produce		json
//	@Param			microGoalID	path		string					true	"Micro-goal id"
//	@Success		200			{object}	dto.ToggleResponseDTO	"New state and awarded XP"
//	@Failure		401			{object}	utils.Response			"User not authorized"
//	@Failure		404			{object}	utils.Response			"Micro-goal or ledger not found"
//	@Failure		429			{object}	utils.Response			"Too many requests"
//	@Failure		503			{object}	utils.Response			"Storage unavailable, nothing was changed"
//	@Router			/api/user/micro-goals/{microGoalID}/toggle [post]
func (h *GoalHandler) ToggleMicroGoal(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	microGoalID, ok := pathID(w, r, "microGoalID")
	if !ok {
		return
	}

	res, err := h.goalService.ToggleMicroGoal(r.Context(), id.UserID, microGoalID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	response := dto.ToggleResponseDTO{
		MicroGoal: dto.FromMicroGoal(res.MicroGoal),
		XPAwarded: res.XPAwarded,
	}
	if res.Ledger != nil {
		ledger := dto.FromLedger(res.Ledger)
		response.Ledger = &ledger
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
