package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baharkarakas/credit-ledger/internal/api/validate"
	repo "github.com/baharkarakas/credit-ledger/internal/repository"
	"github.com/baharkarakas/credit-ledger/internal/services"
)

func TestWriteErr(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{validate.Errs{{Field: "name", Msg: "required"}}, http.StatusUnprocessableEntity, "validation_failed"},
		{fmt.Errorf("get client: %w", repo.ErrNotFound), http.StatusNotFound, "not_found"},
		{repo.ErrConflict, http.StatusConflict, "conflict"},
		{services.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
		{fmt.Errorf("%w: %w", repo.ErrUnavailable, errors.New("conn refused")), http.StatusServiceUnavailable, "store_unavailable"},
		{fmt.Errorf("%w: %w", services.ErrSessionUnavailable, errors.New("redis down")), http.StatusServiceUnavailable, "session_unavailable"},
		{errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeErr(rr, httptest.NewRequest(http.MethodGet, "/", nil), tc.err)
			assert.Equal(t, tc.status, rr.Code)
			assert.Contains(t, rr.Body.String(), `"code":"`+tc.code+`"`)
		})
	}
}
