package httperr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/GlebRadaev/fitquest/internal/domain"
	"github.com/GlebRadaev/fitquest/pkg/utils"
)

// Write maps a service error onto the HTTP status the API promises for it.
func Write(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, message(err, domain.ErrInvalidInput))
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, message(err, domain.ErrNotFound))
	case errors.Is(err, domain.ErrConflict):
		utils.RespondWithError(w, http.StatusConflict, message(err, domain.ErrConflict))
	case errors.Is(err, domain.ErrStore):
		utils.RespondWithError(w, http.StatusServiceUnavailable, "Storage temporarily unavailable, try again")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// message strips the sentinel prefix, "not found: goal 42" becomes "goal 42".
func message(err, sentinel error) string {
	msg := strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
	if msg == "" {
		return sentinel.Error()
	}
	return msg
}
