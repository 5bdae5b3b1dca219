package service

import (
	"context"
	"time"

	"lotus/shared/constant"
	"lotus/shared/failure"

	"github.com/jmoiron/sqlx"
)

// IsSlotFree reports whether [start, end) on date is free of slot-blocking
// reservations. excludeID skips one reservation, used when re-checking
// during an edit of that reservation.
func (s *serviceImpl) IsSlotFree(ctx context.Context, date, start, end time.Time, excludeID string) (bool, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsSlotFree")
	defer scope.End()

	if err := validateInterval(start, end); err != nil {
		return false, err
	}

	count, err := s.repo.CountOverlapping(ctx, date, start, end, excludeID)
	if err != nil {
		return false, err
	}

	return count == 0, nil
}

// isSlotFreeTx is the transactional variant. Every non-draft insert runs this
// inside the same transaction as the insert, which closes the
// check-then-insert race window.
func (s *serviceImpl) isSlotFreeTx(ctx context.Context, tx *sqlx.Tx, date, start, end time.Time, excludeID string) (bool, error) {
	if err := validateInterval(start, end); err != nil {
		return false, err
	}

	count, err := s.repo.CountOverlappingTx(ctx, tx, date, start, end, excludeID)
	if err != nil {
		return false, err
	}

	return count == 0, nil
}

func validateInterval(start, end time.Time) error {
	if !end.After(start) {
		return failure.BadRequestFromString("end time must be after start time") // nolint:wrapcheck
	}

	return nil
}
