package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"lotus/infras/otel"
	"lotus/infras/postgres"
	"lotus/internal/domains/membership/model"
	"lotus/shared/constant"
	gDto "lotus/shared/dto"
	"lotus/shared/logger"
	gRepo "lotus/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Grant interface {
	Insert(ctx context.Context, model model.Grant) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Grant, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Grant, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error

	UsableGrants(ctx context.Context, clientID string, today time.Time) ([]model.Grant, error)
	ConsumeCreditTx(ctx context.Context, tx *sqlx.Tx, grantID string) (bool, error)
	RefundCreditTx(ctx context.Context, tx *sqlx.Tx, grantID string) (bool, error)
	ExpireStale(ctx context.Context, today time.Time) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Grant]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Grant {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Grant](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// UsableGrants returns the client's active grants with remaining credits and
// an end date no earlier than today, soonest-expiring first.
func (repo *repositoryImpl) UsableGrants(ctx context.Context, clientID string, today time.Time) (grants []model.Grant, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".membership_grant.UsableGrants")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT * FROM %s WHERE %s = $1 AND %s = $2 AND %s < %s AND %s >= $3 ORDER BY %s ASC",
		model.TableName,
		model.FieldClientID,
		model.FieldStatus,
		model.FieldUsedCredits, model.FieldTotalCredits,
		model.FieldEndDate,
		model.FieldEndDate,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.SelectContext(ctx, &grants, query, clientID, model.StatusActive, today); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get usable membership grants: %w", err)
	}

	return grants, nil
}

// ConsumeCreditTx debits one credit, guarded so remaining can never go
// negative under concurrent bookings. Returns false when the guard rejected
// the update.
func (repo *repositoryImpl) ConsumeCreditTx(ctx context.Context, tx *sqlx.Tx, grantID string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".membership_grant.ConsumeCreditTx")
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET %s = %s + 1 WHERE %s = $1 AND %s = $2 AND %s < %s",
		model.TableName,
		model.FieldUsedCredits, model.FieldUsedCredits,
		model.FieldID,
		model.FieldStatus,
		model.FieldUsedCredits, model.FieldTotalCredits,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	return repo.guardedUpdate(ctx, scope, tx, query, grantID, model.StatusActive)
}

// RefundCreditTx is the inverse of ConsumeCreditTx, guarded by used > 0.
func (repo *repositoryImpl) RefundCreditTx(ctx context.Context, tx *sqlx.Tx, grantID string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".membership_grant.RefundCreditTx")
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET %s = %s - 1 WHERE %s = $1 AND %s > 0",
		model.TableName,
		model.FieldUsedCredits, model.FieldUsedCredits,
		model.FieldID,
		model.FieldUsedCredits,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	return repo.guardedUpdate(ctx, scope, tx, query, grantID)
}

func (repo *repositoryImpl) guardedUpdate(ctx context.Context, scope otel.Scope, tx *sqlx.Tx, query string, args ...any) (bool, error) {
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to update membership grant credits: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}

// ExpireStale moves every active grant whose end date has passed to expired.
// Idempotent: a second run finds nothing left to move.
func (repo *repositoryImpl) ExpireStale(ctx context.Context, today time.Time) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".membership_grant.ExpireStale")
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET %s = $1, %s = $2 WHERE %s = $3 AND %s < $4",
		model.TableName,
		model.FieldStatus,
		constant.FieldModifiedAt,
		model.FieldStatus,
		model.FieldEndDate,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.ExecContext(ctx, query, model.StatusExpired, today, model.StatusActive, today)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to expire stale membership grants: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected, nil
}
