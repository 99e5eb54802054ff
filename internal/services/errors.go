package services

import (
	"errors"

	"github.com/baharkarakas/credit-ledger/internal/metrics"
	repo "github.com/baharkarakas/credit-ledger/internal/repository"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrSessionUnavailable means the revocation store could not be reached; the
// caller may retry.
var ErrSessionUnavailable = errors.New("session store unavailable")

// observe counts store failures on their way out.
func observe(err error) error {
	if errors.Is(err, repo.ErrUnavailable) {
		metrics.StoreErrors.Inc()
	}
	return err
}
