package shared

import (
	"context"
	"errors"

	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/errs"
)

// MarkStoreErr tags timeouts and lost connections as ErrStoreUnavailable so
// callers can tell a transient failure from a rejected request.
func MarkStoreErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || infra.IsKind(err, infra.KindUnavailable) {
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return err
}
