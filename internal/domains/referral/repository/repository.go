package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"lotus/infras/otel"
	"lotus/infras/postgres"
	"lotus/internal/domains/referral/model"
	"lotus/shared/constant"
	gDto "lotus/shared/dto"
	"lotus/shared/logger"
	gRepo "lotus/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Referral interface {
	Insert(ctx context.Context, model model.ReferralCode) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ReferralCode, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ReferralCode, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error

	GetByCode(ctx context.Context, code string) (model.ReferralCode, error)
	GetByCodeTx(ctx context.Context, tx *sqlx.Tx, code string) (model.ReferralCode, error)
	UsageExists(ctx context.Context, codeID, clientID string) (bool, error)
	UsageExistsTx(ctx context.Context, tx *sqlx.Tx, codeID, clientID string) (bool, error)
	InsertUsageTx(ctx context.Context, tx *sqlx.Tx, usage model.ReferralUsage) error
	IncrementUsesTx(ctx context.Context, tx *sqlx.Tx, codeID string) (bool, error)
	GetUsagesByCode(ctx context.Context, codeID string) ([]model.ReferralUsage, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.ReferralCode]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Referral {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ReferralCode](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// IsUniqueViolation reports whether err is a postgres unique-constraint
// violation, the storage-level backstop for double redemption.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
	}

	return false
}

func (repo *repositoryImpl) GetByCode(ctx context.Context, code string) (model.ReferralCode, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldCode, Operator: gDto.FilterOperatorEq, Value: code, Table: model.TableName},
		},
	}

	return repo.Get(ctx, filter)
}

func (repo *repositoryImpl) GetByCodeTx(ctx context.Context, tx *sqlx.Tx, code string) (res model.ReferralCode, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".referral_code.GetByCodeTx")
	defer scope.End()

	query := fmt.Sprintf("SELECT * FROM %s WHERE %s = $1 FOR UPDATE", model.TableName, model.FieldCode)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = tx.GetContext(ctx, &res, query, code)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ReferralCode{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return res, fmt.Errorf("failed to get referral code for update: %w", err)
	}

	return res, nil
}

func (repo *repositoryImpl) UsageExists(ctx context.Context, codeID, clientID string) (bool, error) {
	return repo.usageExists(ctx, repo.db.Read, codeID, clientID)
}

func (repo *repositoryImpl) UsageExistsTx(ctx context.Context, tx *sqlx.Tx, codeID, clientID string) (bool, error) {
	return repo.usageExists(ctx, tx, codeID, clientID)
}

type getter interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

func (repo *repositoryImpl) usageExists(ctx context.Context, db getter, codeID, clientID string) (exists bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".referral_usage.usageExists")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1 AND %s = $2)",
		model.UsageTableName, model.UsageFieldCodeID, model.UsageFieldClientID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = db.GetContext(ctx, &exists, query, codeID, clientID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check referral usage: %w", err)
	}

	return exists, nil
}

func (repo *repositoryImpl) InsertUsageTx(ctx context.Context, tx *sqlx.Tx, usage model.ReferralUsage) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".referral_usage.InsertUsageTx")
	defer scope.End()

	query := fmt.Sprintf(
		"INSERT INTO %s (%s, %s, %s, %s, %s, %s) VALUES (:%s, :%s, :%s, :%s, :%s, :%s)",
		model.UsageTableName,
		model.UsageFieldID, model.UsageFieldCodeID, model.UsageFieldClientID,
		model.UsageFieldReservationID, model.UsageFieldAmount, model.UsageFieldCreatedAt,
		model.UsageFieldID, model.UsageFieldCodeID, model.UsageFieldClientID,
		model.UsageFieldReservationID, model.UsageFieldAmount, model.UsageFieldCreatedAt,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := tx.NamedExecContext(ctx, query, usage); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to insert referral usage: %w", err)
	}

	return nil
}

// IncrementUsesTx bumps current_uses by one, guarded so the counter can never
// pass max_uses even under concurrent redemptions. Returns false when the
// guard rejected the update.
func (repo *repositoryImpl) IncrementUsesTx(ctx context.Context, tx *sqlx.Tx, codeID string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".referral_code.IncrementUsesTx")
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET %s = %s + 1 WHERE %s = $1 AND (%s IS NULL OR %s < %s)",
		model.TableName,
		model.FieldCurrentUses, model.FieldCurrentUses,
		model.FieldID,
		model.FieldMaxUses, model.FieldCurrentUses, model.FieldMaxUses,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := tx.ExecContext(ctx, query, codeID)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to increment referral code uses: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}

func (repo *repositoryImpl) GetUsagesByCode(ctx context.Context, codeID string) (usages []model.ReferralUsage, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".referral_usage.GetUsagesByCode")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT * FROM %s WHERE %s = $1 ORDER BY %s DESC",
		model.UsageTableName, model.UsageFieldCodeID, model.UsageFieldCreatedAt,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.SelectContext(ctx, &usages, query, codeID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get referral usages: %w", err)
	}

	return usages, nil
}
