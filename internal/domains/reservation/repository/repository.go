package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lotus/infras/otel"
	"lotus/infras/postgres"
	"lotus/internal/domains/reservation/model"
	"lotus/shared/constant"
	gDto "lotus/shared/dto"
	"lotus/shared/logger"
	gRepo "lotus/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Reservation interface {
	Insert(ctx context.Context, model model.Reservation) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Reservation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error

	CountOverlapping(ctx context.Context, date time.Time, start, end time.Time, excludeID string) (int, error)
	CountOverlappingTx(ctx context.Context, tx *sqlx.Tx, date time.Time, start, end time.Time, excludeID string) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type getter interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

func (repo *repositoryImpl) CountOverlapping(ctx context.Context, date time.Time, start, end time.Time, excludeID string) (int, error) {
	return repo.countOverlapping(ctx, repo.db.Read, date, start, end, excludeID)
}

// CountOverlappingTx is the transactional variant used by the booking path,
// so the conflict check and the insert see the same snapshot.
func (repo *repositoryImpl) CountOverlappingTx(ctx context.Context, tx *sqlx.Tx, date time.Time, start, end time.Time, excludeID string) (int, error) {
	return repo.countOverlapping(ctx, tx, date, start, end, excludeID)
}

// countOverlapping counts slot-blocking reservations on date whose interval
// overlaps [start, end). Half-open semantics: back-to-back reservations do
// not overlap.
func (repo *repositoryImpl) countOverlapping(ctx context.Context, db getter, date time.Time, start, end time.Time, excludeID string) (count int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.countOverlapping")
	defer scope.End()

	query := overlapQuery()
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = db.GetContext(ctx, &count, query, date, end, start, excludeID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count overlapping reservations: %w", err)
	}

	return count, nil
}

// IsExclusionViolation reports whether err is the reservations_no_overlap
// exclusion constraint firing, the storage-level backstop for double booking.
func IsExclusionViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeExclusionViolation
	}

	return false
}

// overlapQuery builds the half-open interval test: rows overlap [start, end)
// when row.start < end AND row.end > start, so back-to-back reservations do
// not collide. The id column is compared as text because an untyped $4 is
// resolved to text by the `$4 = ''` guard.
func overlapQuery() string {
	return fmt.Sprintf(
		"SELECT COUNT(*) FROM %s WHERE %s = $1 AND %s < $2 AND %s > $3 AND %s NOT IN ('%s', '%s', '%s') AND ($4 = '' OR %s::text <> $4)",
		model.TableName,
		model.FieldReservationDate,
		model.FieldStartTime,
		model.FieldEndTime,
		model.FieldStatus, model.StatusCancelled, model.StatusNoShow, model.StatusDraft,
		model.FieldID,
	)
}
