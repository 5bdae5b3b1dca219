package repository

//go:generate go run go.uber.org/mock/mockgen -source=./item.go -destination=../mocks/item_mock.go -package=mocks

import (
	"context"
	"fmt"

	"lotus/infras/otel"
	"lotus/infras/postgres"
	"lotus/internal/domains/reservation/model"
	"lotus/shared/constant"
	gDto "lotus/shared/dto"
	"lotus/shared/logger"
	gRepo "lotus/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Item interface {
	Insert(ctx context.Context, model model.ReservationItem) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.ReservationItem) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ReservationItem, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) error

	InsertBulkTx(ctx context.Context, tx *sqlx.Tx, items []model.ReservationItem) error
	GetAllByReservation(ctx context.Context, reservationID string) ([]model.ReservationItem, error)
	GetAllByReservationTx(ctx context.Context, tx *sqlx.Tx, reservationID string) ([]model.ReservationItem, error)
	DeleteByReservationTx(ctx context.Context, tx *sqlx.Tx, reservationID string) error
}

type itemRepositoryImpl struct {
	gRepo.Repository[model.ReservationItem]
	db   *postgres.Connection
	otel otel.Otel
}

func NewItem(db *postgres.Connection, otel otel.Otel) Item {
	return &itemRepositoryImpl{
		Repository: gRepo.NewRepository[model.ReservationItem](model.ItemEntityName, model.ItemTableName, model.ItemFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *itemRepositoryImpl) InsertBulkTx(ctx context.Context, tx *sqlx.Tx, items []model.ReservationItem) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation_item.InsertBulkTx")
	defer scope.End()

	if len(items) == 0 {
		return nil
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s) VALUES (:%s, :%s, :%s, :%s, :%s, :%s, :%s, :%s)",
		model.ItemTableName,
		model.ItemFieldID, model.ItemFieldReservationID, model.ItemFieldServiceID, model.ItemFieldKind,
		model.ItemFieldUnitPrice, model.ItemFieldDurationMinutes, model.ItemFieldNotes, model.ItemFieldCreatedAt,
		model.ItemFieldID, model.ItemFieldReservationID, model.ItemFieldServiceID, model.ItemFieldKind,
		model.ItemFieldUnitPrice, model.ItemFieldDurationMinutes, model.ItemFieldNotes, model.ItemFieldCreatedAt,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := tx.NamedExecContext(ctx, query, items); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert reservation items: %w", err)
	}

	return nil
}

func (repo *itemRepositoryImpl) GetAllByReservation(ctx context.Context, reservationID string) ([]model.ReservationItem, error) {
	return repo.getAllByReservation(ctx, repo.db.Read, reservationID)
}

func (repo *itemRepositoryImpl) GetAllByReservationTx(ctx context.Context, tx *sqlx.Tx, reservationID string) ([]model.ReservationItem, error) {
	return repo.getAllByReservation(ctx, tx, reservationID)
}

type selecter interface {
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

func (repo *itemRepositoryImpl) getAllByReservation(ctx context.Context, db selecter, reservationID string) (items []model.ReservationItem, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation_item.getAllByReservation")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT * FROM %s WHERE %s = $1 ORDER BY %s ASC",
		model.ItemTableName, model.ItemFieldReservationID, model.ItemFieldCreatedAt,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = db.SelectContext(ctx, &items, query, reservationID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get reservation items: %w", err)
	}

	return items, nil
}

func (repo *itemRepositoryImpl) DeleteByReservationTx(ctx context.Context, tx *sqlx.Tx, reservationID string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation_item.DeleteByReservationTx")
	defer scope.End()

	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", model.ItemTableName, model.ItemFieldReservationID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := tx.ExecContext(ctx, query, reservationID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete reservation items: %w", err)
	}

	return nil
}
