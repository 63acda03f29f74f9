package infra

import (
	"log/slog"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/errs"
)

// Backend failures are marked with one of these so callers can tell a broken
// store from a broken broker without matching on driver errors.
var (
	ErrStoreFailure  = errs.New("store failure")
	ErrCorruptData   = errs.New("corrupt data")
	ErrBrokerFailure = errs.New("broker failure")
)

// BackendError logs a failed backend call once, at the boundary, and returns
// err wrapped with op and marked with kind.
func BackendError(logger *slog.Logger, kind error, op string, err error) error {
	if err == nil {
		err = errs.New(op)
	} else {
		err = errs.Wrap(err, op)
	}
	logger.Error("backend call failed", "op", op, "kind", kind.Error(), "error", err.Error())
	return errs.Mark(err, kind)
}
