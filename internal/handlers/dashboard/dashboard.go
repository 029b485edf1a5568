package dashboard

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/fitquest/internal/domain"
	"github.com/GlebRadaev/fitquest/internal/dto"
	"github.com/GlebRadaev/fitquest/internal/handlers/httperr"
	"github.com/GlebRadaev/fitquest/pkg/auth"
	"github.com/GlebRadaev/fitquest/pkg/utils"
)

//go:generate mockgen -source=dashboard.go -destination=mock_dashboard.go -package=dashboard

type Service interface {
	Dashboard(ctx context.Context, userID string) (*domain.Dashboard, error)
}

type DashboardHandler struct {
	dashboardService Service
}

func New(dashboardService Service) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetDashboard godoc
//
//	@Summary		Home page data
//	@Description	Ledger, weekly rank, goals with progress and the current weekly challenge in one call.
//	@Tags			Dashboard
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.DashboardResponseDTO	"Dashboard"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		404	{object}	utils.Response				"Ledger not provisioned yet"
//	@Failure		503	{object}	utils.Response				"Storage unavailable"
//	@Router			/api/user/dashboard [get]
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	d, err := h.dashboardService.Dashboard(r.Context(), id.UserID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromDashboard(d))
}
