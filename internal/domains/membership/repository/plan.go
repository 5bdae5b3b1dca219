package repository

//go:generate go run go.uber.org/mock/mockgen -source=./plan.go -destination=../mocks/plan_repository_mock.go -package=mocks

import (
	"context"
	"lotus/infras/otel"
	"lotus/infras/postgres"
	"lotus/internal/domains/membership/model"
	gDto "lotus/shared/dto"
	gRepo "lotus/shared/repository"
)

type Plan interface {
	Insert(ctx context.Context, model model.Plan) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Plan, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Plan, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type planRepositoryImpl struct {
	gRepo.Repository[model.Plan]
	db   *postgres.Connection
	otel otel.Otel
}

func NewPlan(db *postgres.Connection, otel otel.Otel) Plan {
	return &planRepositoryImpl{
		Repository: gRepo.NewRepository[model.Plan](model.PlanEntityName, model.PlanTableName, model.PlanFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
