package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names Reservation=MockReservationService

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lotus/config"
	"lotus/infras/kafka"
	"lotus/infras/otel"
	catalogModel "lotus/internal/domains/catalog/model"
	catalogRepo "lotus/internal/domains/catalog/repository"
	clientDto "lotus/internal/domains/client/model/dto"
	clientService "lotus/internal/domains/client/service"
	membershipService "lotus/internal/domains/membership/service"
	referralService "lotus/internal/domains/referral/service"
	"lotus/internal/domains/reservation/model"
	"lotus/internal/domains/reservation/model/dto"
	"lotus/internal/domains/reservation/repository"
	"lotus/shared"
	"lotus/shared/cache"
	"lotus/shared/constant"
	gDto "lotus/shared/dto"
	"lotus/shared/failure"
	"lotus/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
	cacheCountReservation  = "reservation:count"
)

// Transactor runs a function inside one storage transaction. Satisfied by
// postgres.Connection.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	Update(ctx context.Context, req dto.UpdateReservationRequest, id string) error
	UpdateStatus(ctx context.Context, id, status string) error
	Cancel(ctx context.Context, id string) error
	AddService(ctx context.Context, id string, req dto.AddServiceRequest) error
	RemoveService(ctx context.Context, id, itemID string) error
	IsSlotFree(ctx context.Context, date, start, end time.Time, excludeID string) (bool, error)
}

type serviceImpl struct {
	repo        repository.Reservation
	itemRepo    repository.Item
	catalogRepo catalogRepo.Catalog
	clients     clientService.Client
	referral    referralService.Referral
	membership  membershipService.Membership
	db          Transactor
	kafka       kafka.Client
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Reservation,
	itemRepo repository.Item,
	catalogRepo catalogRepo.Catalog,
	clients clientService.Client,
	referral referralService.Referral,
	membership membershipService.Membership,
	db Transactor,
	kafkaClient kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:        repo,
		itemRepo:    itemRepo,
		catalogRepo: catalogRepo,
		clients:     clients,
		referral:    referral,
		membership:  membership,
		db:          db,
		kafka:       kafkaClient,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Create books a reservation as one unit: conflict check, pricing, optional
// discount redemption and credit consumption, then the reservation row and
// its line items. If any step fails nothing is persisted.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	date, start, err := req.ParseSlot()
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date/time format: %v", err)) // nolint:wrapcheck
	}

	status := model.StatusPending
	if req.Status != "" {
		status = req.Status
	}

	clientID, err := s.resolveClient(ctx, req, status)
	if err != nil {
		return res, err
	}

	if clientID == nil && (req.ReferralCode != "" || req.UseMembershipCredit) {
		return res, failure.BadRequestFromString("a client is required to use a discount code or membership credit") // nolint:wrapcheck
	}

	reservation := dto.NewReservation(req, user, clientID, date, start, start, status)

	items, totals, err := s.resolveItems(ctx, reservation.ID, req)
	if err != nil {
		return res, err
	}

	end := start.Add(time.Duration(totals.DurationMinutes) * time.Minute)
	reservation.EndTime = end
	reservation.TotalDurationMinutes = totals.DurationMinutes

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if model.BlocksSlot(status) {
			free, err := s.isSlotFreeTx(ctx, tx, date, start, end, constant.Empty)
			if err != nil {
				return err
			}

			if !free {
				return failure.Conflict("the requested time slot is no longer available") // nolint:wrapcheck
			}
		} else if err := validateInterval(start, end); err != nil {
			return err
		}

		price := totals.Price

		if req.ReferralCode != "" {
			validation, err := s.referral.Validate(ctx, req.ReferralCode, *clientID)
			if err != nil {
				return err
			}

			amount := s.referral.DiscountAmount(price, validation.DiscountPercent)

			usageID, err := s.referral.RedeemTx(ctx, tx, req.ReferralCode, *clientID, &reservation.ID, amount)
			if err != nil {
				return err
			}

			reservation.ReferralUsageID = &usageID
			price = shared.RoundCurrency(price - amount)
		}

		if req.UseMembershipCredit {
			grant, ok, err := s.membership.UsableGrant(ctx, *clientID)
			if err != nil {
				return err
			}

			if !ok {
				return failure.InsufficientCredit("no usable membership grant") // nolint:wrapcheck
			}

			if err := s.membership.ConsumeCreditTx(ctx, tx, grant.ID); err != nil {
				return err
			}

			reservation.MembershipGrantID = &grant.ID
			price = 0
		}

		reservation.TotalPrice = price

		if err := s.repo.InsertTx(ctx, tx, reservation); err != nil {
			return err
		}

		return s.itemRepo.InsertBulkTx(ctx, tx, items)
	})
	if err != nil {
		if repository.IsExclusionViolation(err) {
			return res, failure.Conflict("the requested time slot is no longer available") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create reservation")

		return res, err
	}

	s.notify(ctx, eventReservationCreated, reservation.ID, clientID, date, start, reservation.TotalPrice)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()

	res.FromModel(reservation, items)

	return res, nil
}

// resolveClient returns the client reference for a create request. Guests
// are promoted to client records unless the reservation stays a draft, where
// the guest fields remain on the reservation until confirmation.
func (s *serviceImpl) resolveClient(ctx context.Context, req dto.CreateReservationRequest, status string) (*string, error) {
	if req.ClientID != "" {
		return &req.ClientID, nil
	}

	if status == model.StatusDraft {
		return nil, nil
	}

	if req.GuestName == "" || req.GuestPhone == "" {
		return nil, failure.BadRequestFromString("guest name and phone are required when no client id is given") // nolint:wrapcheck
	}

	first, last := splitName(req.GuestName)

	id, err := s.clients.FindOrCreate(ctx, clientDto.CreateClientRequest{
		FirstName: first,
		LastName:  last,
		Phone:     req.GuestPhone,
		Email:     req.GuestEmail,
	})
	if err != nil {
		return nil, err
	}

	return &id, nil
}

// resolveItems normalizes the two request shapes into one: a list of
// snapshot line items plus their totals. In legacy single-service mode the
// list stays empty and the totals come from the service itself.
func (s *serviceImpl) resolveItems(ctx context.Context, reservationID string, req dto.CreateReservationRequest) ([]model.ReservationItem, Totals, error) {
	if len(req.Items) == 0 {
		service, err := s.getActiveService(ctx, req.ServiceID)
		if err != nil {
			return nil, Totals{}, err
		}

		return nil, Totals{Price: service.Price, DurationMinutes: service.DurationMinutes}, nil
	}

	items := make([]model.ReservationItem, len(req.Items))

	for i, itemReq := range req.Items {
		service, err := s.getActiveService(ctx, itemReq.ServiceID)
		if err != nil {
			return nil, Totals{}, err
		}

		kind := itemReq.Kind
		if kind == "" {
			kind = model.ItemKindAddon
			if i == 0 {
				kind = model.ItemKindMain
			}
		}

		items[i] = model.ReservationItem{
			ID:              uuid.NewString(),
			ReservationID:   reservationID,
			ServiceID:       service.ID,
			Kind:            kind,
			UnitPrice:       service.Price,
			DurationMinutes: service.DurationMinutes,
			Notes:           itemReq.Notes,
			CreatedAt:       timezone.Now(),
		}
	}

	return items, Aggregate(items), nil
}

func (s *serviceImpl) getActiveService(ctx context.Context, serviceID string) (catalogModel.Service, error) {
	service, err := s.catalogRepo.Get(ctx, shared.FilterByID(serviceID, catalogModel.FieldID, catalogModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get spa service")

		return service, fmt.Errorf("failed to get spa service: %w", err)
	}

	if service.ID == constant.Empty || !service.Active {
		return service, failure.BadRequestFromString("spa service does not exist or is inactive") // nolint:wrapcheck
	}

	return service, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(nil)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reservation, err := s.getReservation(ctx, id)
	if err != nil {
		return res, err
	}

	items, err := s.itemRepo.GetAllByReservation(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(reservation, items)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReservationRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(nil)

	if req == (dto.UpdateReservationRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if _, err := s.getReservation(ctx, id); err != nil {
		return err
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update reservation")

		return fmt.Errorf("failed to update reservation: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// UpdateStatus drives the reservation state machine. Confirming a draft
// promotes the guest to a client record and re-checks availability;
// cancelling goes through Cancel so credits are reconciled.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id, status string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if status == model.StatusCancelled {
		return s.Cancel(ctx, id)
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservation, err := s.getReservation(ctx, id)
	if err != nil {
		return err
	}

	if reservation.Status == status {
		return nil
	}

	if model.IsTerminal(reservation.Status) {
		return failure.BadRequestFromString(fmt.Sprintf("cannot transition a %s reservation", reservation.Status)) // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if reservation.Status == model.StatusDraft && model.BlocksSlot(status) && reservation.ClientID == nil {
		clientID, err := s.resolveClient(ctx, dto.CreateReservationRequest{
			GuestName:  reservation.GuestName,
			GuestEmail: reservation.GuestEmail,
			GuestPhone: reservation.GuestPhone,
		}, status)
		if err != nil {
			return err
		}

		updatedFields[model.FieldClientID] = *clientID
		updatedFields[model.FieldGuestName] = constant.Empty
		updatedFields[model.FieldGuestEmail] = constant.Empty
		updatedFields[model.FieldGuestPhone] = constant.Empty
	}

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if reservation.Status == model.StatusDraft && model.BlocksSlot(status) {
			free, err := s.isSlotFreeTx(ctx, tx, reservation.ReservationDate, reservation.StartTime, reservation.EndTime, id)
			if err != nil {
				return err
			}

			if !free {
				return failure.Conflict("the reservation's time slot is no longer available") // nolint:wrapcheck
			}
		}

		if reservation.TotalPrice == 0 && reservation.MembershipGrantID == nil &&
			(status == model.StatusConfirmed || status == model.StatusCompleted) {
			if err := s.recomputeTotals(ctx, tx, reservation, updatedFields); err != nil {
				return err
			}
		}

		return s.repo.UpdateTx(ctx, tx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName))
	})
	if err != nil {
		if repository.IsExclusionViolation(err) {
			return failure.Conflict("the reservation's time slot is no longer available") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update reservation status")

		return err
	}

	s.invalidate(ctx, id)

	return nil
}

// recomputeTotals restores zero or missing totals from the stored line items,
// or from the catalog in legacy single-service mode, and realigns the end
// time with the recomputed duration.
func (s *serviceImpl) recomputeTotals(ctx context.Context, tx *sqlx.Tx, reservation model.Reservation, updatedFields map[string]any) error {
	items, err := s.itemRepo.GetAllByReservationTx(ctx, tx, reservation.ID)
	if err != nil {
		return err
	}

	var totals Totals

	switch {
	case len(items) > 0:
		totals = Aggregate(items)
	case reservation.ServiceID != nil:
		service, err := s.getActiveService(ctx, *reservation.ServiceID)
		if err != nil {
			return err
		}

		totals = Totals{Price: service.Price, DurationMinutes: service.DurationMinutes}
	default:
		return nil
	}

	updatedFields[model.FieldTotalPrice] = totals.Price
	updatedFields[model.FieldTotalDuration] = totals.DurationMinutes
	updatedFields[model.FieldEndTime] = reservation.StartTime.Add(time.Duration(totals.DurationMinutes) * time.Minute)

	return nil
}

// Cancel transitions a reservation to cancelled and, when a membership
// credit was consumed for it, refunds that credit in the same transaction.
// Discount usages are never reversed, a used code stays used.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservation, err := s.getReservation(ctx, id)
	if err != nil {
		return err
	}

	if reservation.Status == model.StatusCancelled {
		return nil
	}

	if model.IsTerminal(reservation.Status) {
		return failure.BadRequestFromString(fmt.Sprintf("cannot cancel a %s reservation", reservation.Status)) // nolint:wrapcheck
	}

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		updatedFields := map[string]any{
			model.FieldStatus:        model.StatusCancelled,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if err := s.repo.UpdateTx(ctx, tx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return err
		}

		if reservation.MembershipGrantID != nil {
			return s.membership.RefundCreditTx(ctx, tx, *reservation.MembershipGrantID)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to cancel reservation")

		return err
	}

	s.notify(ctx, eventReservationCancelled, id, reservation.ClientID, reservation.ReservationDate, reservation.StartTime, reservation.TotalPrice)
	s.invalidate(ctx, id)

	return nil
}

// AddService appends a line item and re-aggregates totals. A legacy
// single-service reservation is converted to line items first so pricing
// only ever deals with one shape.
func (s *serviceImpl) AddService(ctx context.Context, id string, req dto.AddServiceRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddService")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservation, err := s.getReservation(ctx, id)
	if err != nil {
		return err
	}

	if model.IsTerminal(reservation.Status) {
		return failure.BadRequestFromString(fmt.Sprintf("cannot modify a %s reservation", reservation.Status)) // nolint:wrapcheck
	}

	service, err := s.getActiveService(ctx, req.ServiceID)
	if err != nil {
		return err
	}

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		items, err := s.itemRepo.GetAllByReservationTx(ctx, tx, id)
		if err != nil {
			return err
		}

		if len(items) == 0 && reservation.ServiceID != nil {
			legacyService, err := s.getActiveService(ctx, *reservation.ServiceID)
			if err != nil {
				return err
			}

			legacyItem := newItem(id, legacyService, model.ItemKindMain, constant.Empty)
			if err := s.itemRepo.InsertTx(ctx, tx, legacyItem); err != nil {
				return err
			}

			items = append(items, legacyItem)
		}

		kind := req.Kind
		if kind == "" {
			kind = model.ItemKindAddon
			if len(items) == 0 {
				kind = model.ItemKindMain
			}
		}

		item := newItem(id, service, kind, req.Notes)
		if err := s.itemRepo.InsertTx(ctx, tx, item); err != nil {
			return err
		}

		items = append(items, item)

		return s.applyTotals(ctx, tx, reservation, items, user)
	})
	if err != nil {
		if repository.IsExclusionViolation(err) {
			return failure.Conflict("extending the reservation would conflict with another booking") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to add service to reservation")

		return err
	}

	s.invalidate(ctx, id)

	return nil
}

// RemoveService deletes one line item and re-aggregates totals.
func (s *serviceImpl) RemoveService(ctx context.Context, id, itemID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RemoveService")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservation, err := s.getReservation(ctx, id)
	if err != nil {
		return err
	}

	if model.IsTerminal(reservation.Status) {
		return failure.BadRequestFromString(fmt.Sprintf("cannot modify a %s reservation", reservation.Status)) // nolint:wrapcheck
	}

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		items, err := s.itemRepo.GetAllByReservationTx(ctx, tx, id)
		if err != nil {
			return err
		}

		remaining := items[:0:0]
		found := false

		for _, item := range items {
			if item.ID == itemID {
				found = true

				continue
			}

			remaining = append(remaining, item)
		}

		if !found {
			return failure.NotFound("reservation item not found") // nolint:wrapcheck
		}

		// An empty reservation would have end == start, which the interval
		// rules reject; the last item can only go by cancelling.
		if len(remaining) == 0 {
			return failure.BadRequestFromString("cannot remove the last service from a reservation") // nolint:wrapcheck
		}

		itemFilter := gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{Field: model.ItemFieldID, Operator: gDto.FilterOperatorEq, Value: itemID, Table: model.ItemTableName},
				gDto.Filter{Field: model.ItemFieldReservationID, Operator: gDto.FilterOperatorEq, Value: id, Table: model.ItemTableName},
			},
		}

		if err := s.itemRepo.DeleteTx(ctx, tx, itemFilter); err != nil {
			return err
		}

		return s.applyTotals(ctx, tx, reservation, remaining, user)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to remove service from reservation")

		return err
	}

	s.invalidate(ctx, id)

	return nil
}

// applyTotals re-runs the aggregator over the final item set and persists
// the new totals and end time. Non-draft reservations re-check availability
// when the duration change moves the end time.
func (s *serviceImpl) applyTotals(ctx context.Context, tx *sqlx.Tx, reservation model.Reservation, items []model.ReservationItem, user string) error {
	totals := Aggregate(items)
	end := reservation.StartTime.Add(time.Duration(totals.DurationMinutes) * time.Minute)

	if model.BlocksSlot(reservation.Status) && end.After(reservation.EndTime) {
		free, err := s.isSlotFreeTx(ctx, tx, reservation.ReservationDate, reservation.StartTime, end, reservation.ID)
		if err != nil {
			return err
		}

		if !free {
			return failure.Conflict("extending the reservation would conflict with another booking") // nolint:wrapcheck
		}
	}

	updatedFields := map[string]any{
		model.FieldTotalPrice:    totals.Price,
		model.FieldTotalDuration: totals.DurationMinutes,
		model.FieldEndTime:       end,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if reservation.ServiceID != nil {
		updatedFields[model.FieldServiceID] = nil
	}

	return s.repo.UpdateTx(ctx, tx, updatedFields, shared.FilterByID(reservation.ID, model.FieldID, model.TableName))
}

func (s *serviceImpl) getReservation(ctx context.Context, id string) (model.Reservation, error) {
	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return reservation, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return reservation, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	return reservation, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()
}

func newItem(reservationID string, service catalogModel.Service, kind, notes string) model.ReservationItem {
	return model.ReservationItem{
		ID:              uuid.NewString(),
		ReservationID:   reservationID,
		ServiceID:       service.ID,
		Kind:            kind,
		UnitPrice:       service.Price,
		DurationMinutes: service.DurationMinutes,
		Notes:           notes,
		CreatedAt:       timezone.Now(),
	}
}

func splitName(full string) (first, last string) {
	parts := strings.SplitN(strings.TrimSpace(full), " ", 2)
	first = parts[0]

	if len(parts) > 1 {
		last = parts[1]
	}

	return first, last
}
