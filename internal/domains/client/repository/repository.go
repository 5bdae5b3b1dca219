package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"lotus/infras/otel"
	"lotus/infras/postgres"
	"lotus/internal/domains/client/model"
	gDto "lotus/shared/dto"
	gRepo "lotus/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Client interface {
	Insert(ctx context.Context, model model.Client) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Client) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Client, error)
	GetByIdentity(ctx context.Context, firstName, lastName, phone string) (model.Client, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Client, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Client]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Client {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Client](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetByIdentity looks a client up by the guest matching key (phone + first
// name + last name). Matching is exact; typos produce a new client record.
func (repo *repositoryImpl) GetByIdentity(ctx context.Context, firstName, lastName, phone string) (model.Client, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldFirstName, Operator: gDto.FilterOperatorEq, Value: firstName, Table: model.TableName},
			gDto.Filter{Field: model.FieldLastName, Operator: gDto.FilterOperatorEq, Value: lastName, Table: model.TableName},
			gDto.Filter{Field: model.FieldPhone, Operator: gDto.FilterOperatorEq, Value: phone, Table: model.TableName},
		},
	}

	return repo.Get(ctx, filter)
}
