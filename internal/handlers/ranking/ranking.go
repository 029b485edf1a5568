package ranking

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/fitquest/internal/domain"
	"github.com/GlebRadaev/fitquest/internal/dto"
	"github.com/GlebRadaev/fitquest/pkg/auth"
	"github.com/GlebRadaev/fitquest/pkg/utils"
)

//go:generate mockgen -source=ranking.go -destination=mock_ranking.go -package=ranking

const maxLimit = 100

type Service interface {
	Ranking(ctx context.Context, userID string, limit int) (*domain.RankingView, error)
}

type RankingHandler struct {
	rankingService Service
	now            func() time.Time
}

func New(rankingService Service) *RankingHandler {
	return &RankingHandler{
		rankingService: rankingService,
		now:            time.Now,
	}
}

// Ranking godoc
//
//	@Summary		Weekly XP ranking
//	@Description	Top users by XP earned this ISO week plus the caller's own position. When the ranking cannot be computed an empty list is returned.
//	@Tags			Ranking
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int						false	"Number of top entries (default 3, max 100)"
//	@Success		200		{object}	dto.RankingResponseDTO	"Ranking"
//	@Failure		400		{object}	utils.Response			"Invalid limit"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Router			/api/user/ranking [get]
func (h *RankingHandler) Ranking(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxLimit {
			utils.RespondWithError(w, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	view, err := h.rankingService.Ranking(r.Context(), id.UserID, limit)
	if err != nil {
		zap.L().Warn("ranking unavailable, returning empty list", zap.Error(err))
		view = &domain.RankingView{Week: domain.WeekID(h.now())}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromRanking(view))
}
