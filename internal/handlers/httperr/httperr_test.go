package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/fitquest/internal/domain"
	"github.com/GlebRadaev/fitquest/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestWrite(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedCode    int
		expectedMessage string
	}{
		{"Invalid input", domain.InvalidInput("week must be between 1 and 52"), http.StatusUnprocessableEntity, "week must be between 1 and 52"},
		{"Not found", fmt.Errorf("%w: goal 42", domain.ErrNotFound), http.StatusNotFound, "goal 42"},
		{"Bare sentinel", domain.ErrNotFound, http.StatusNotFound, "not found"},
		{"Conflict", fmt.Errorf("%w: challenge reward already claimed", domain.ErrConflict), http.StatusConflict, "challenge reward already claimed"},
		{"Store", domain.StoreError(errors.New("connection reset")), http.StatusServiceUnavailable, "Storage temporarily unavailable, try again"},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			Write(w, tt.err)
			assert.Equal(t, tt.expectedCode, w.Code)
			var body utils.Response
			assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.expectedMessage, body.Error)
		})
	}
}
