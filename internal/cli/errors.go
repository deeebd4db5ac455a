package cli

import (
	"errors"

	"github.com/aretw0/parley/pkg/domain"
)

// HandleExecutionError maps session outcomes to process results. A
// user-entered exit word is a clean cancellation, not a failure, so it
// becomes a nil error (exit 0) after the engine has already printed the
// farewell. Configuration errors and stream failures pass through.
func HandleExecutionError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrExitRequested) {
		return nil
	}
	return err
}
