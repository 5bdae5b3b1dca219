package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"lotus/config"
	"lotus/infras/otel"
	"lotus/internal/domains/membership/model"
	"lotus/internal/domains/membership/model/dto"
	"lotus/internal/domains/membership/repository"
	"lotus/shared"
	"lotus/shared/cache"
	"lotus/shared/constant"
	gDto "lotus/shared/dto"
	"lotus/shared/failure"
	"lotus/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetGrant    = "membership:get"
	cacheGetAllGrant = "membership:gets"
	cacheGetAllPlan  = "membership_plan:gets"
)

type Membership interface {
	CreatePlan(ctx context.Context, req dto.CreatePlanRequest) error
	GetPlans(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPlansResponse, error)

	Purchase(ctx context.Context, req dto.PurchaseGrantRequest) (dto.GrantResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetGrantsResponse, error)
	Get(ctx context.Context, id string) (dto.GrantResponse, error)
	Cancel(ctx context.Context, id string) error
	ActiveGrant(ctx context.Context, clientID string) (dto.GrantResponse, error)

	UsableGrant(ctx context.Context, clientID string) (model.Grant, bool, error)
	ConsumeCreditTx(ctx context.Context, tx *sqlx.Tx, grantID string) error
	RefundCreditTx(ctx context.Context, tx *sqlx.Tx, grantID string) error
	ExpireStaleGrants(ctx context.Context) (int64, error)
}

type serviceImpl struct {
	repo     repository.Grant
	planRepo repository.Plan
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Grant, planRepo repository.Plan, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Membership {
	return &serviceImpl{
		repo:     repo,
		planRepo: planRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) CreatePlan(ctx context.Context, req dto.CreatePlanRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreatePlan")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.planRepo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create membership plan")

		return fmt.Errorf("failed to create membership plan: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllPlan)
	}()

	return nil
}

func (s *serviceImpl) GetPlans(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPlansResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPlans")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPlan, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for membership plans")

		return res, nil
	}

	total, err := s.planRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count membership plans")

		return res, fmt.Errorf("failed to count membership plans: %w", err)
	}

	models, err := s.planRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get membership plans")

		return res, fmt.Errorf("failed to get membership plans: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save membership plans to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Purchase(ctx context.Context, req dto.PurchaseGrantRequest) (res dto.GrantResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Purchase")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	plan, err := s.planRepo.Get(ctx, shared.FilterByID(req.PlanID, model.PlanFieldID, model.PlanTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get membership plan")

		return res, fmt.Errorf("failed to get membership plan: %w", err)
	}

	if plan.ID == constant.Empty || !plan.Active {
		return res, failure.BadRequestFromString("membership plan does not exist or is inactive") // nolint:wrapcheck
	}

	grant, err := req.ToModel(user, plan)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid start date format: %v", err)) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, grant); err != nil {
		log.Error().Err(err).Msg("failed to create membership grant")

		return res, fmt.Errorf("failed to create membership grant: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllGrant)
	}()

	res.FromModel(grant)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetGrantsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllGrant, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for membership grants")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count membership grants")

		return res, fmt.Errorf("failed to count membership grants: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get membership grants")

		return res, fmt.Errorf("failed to get membership grants: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save membership grants to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.GrantResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(nil)

	grant, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get membership grant")

		return res, fmt.Errorf("failed to get membership grant: %w", err)
	}

	if grant.ID == constant.Empty {
		return res, failure.NotFound("membership grant not found") // nolint:wrapcheck
	}

	res.FromModel(grant)

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(nil)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	grant, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get membership grant")

		return fmt.Errorf("failed to get membership grant: %w", err)
	}

	if grant.ID == constant.Empty {
		return failure.NotFound("membership grant not found") // nolint:wrapcheck
	}

	if grant.Status != model.StatusActive && grant.Status != model.StatusPending {
		return failure.BadRequestFromString("only active or pending grants can be cancelled") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusCancelled,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to cancel membership grant")

		return fmt.Errorf("failed to cancel membership grant: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetGrant, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete membership grant from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllGrant)
	}()

	return nil
}

func (s *serviceImpl) ActiveGrant(ctx context.Context, clientID string) (res dto.GrantResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ActiveGrant")
	defer scope.End()
	defer scope.TraceIfError(nil)

	grant, ok, err := s.UsableGrant(ctx, clientID)
	if err != nil {
		return res, err
	}

	if !ok {
		return res, failure.NotFound("no usable membership grant") // nolint:wrapcheck
	}

	res.FromModel(grant)

	return res, nil
}

// UsableGrant picks the grant a booking should draw from. Policy: of all
// active grants with remaining credits and a valid end date, take the one
// expiring soonest, so short-lived credits are not wasted.
func (s *serviceImpl) UsableGrant(ctx context.Context, clientID string) (model.Grant, bool, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UsableGrant")
	defer scope.End()

	grants, err := s.repo.UsableGrants(ctx, clientID, timezone.Today())
	if err != nil {
		log.Error().Err(err).Msg("failed to get usable membership grants")

		return model.Grant{}, false, fmt.Errorf("failed to get usable membership grants: %w", err)
	}

	if len(grants) == 0 {
		return model.Grant{}, false, nil
	}

	return grants[0], true, nil
}

// ConsumeCreditTx debits one credit inside the caller's transaction. The
// conditional update is the race guard: once remaining hits zero the update
// no-ops and the booking fails instead of overdrawing.
func (s *serviceImpl) ConsumeCreditTx(ctx context.Context, tx *sqlx.Tx, grantID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConsumeCreditTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	consumed, err := s.repo.ConsumeCreditTx(ctx, tx, grantID)
	if err != nil {
		log.Error().Err(err).Msg("failed to consume membership credit")

		return err
	}

	if !consumed {
		return failure.InsufficientCredit("no remaining membership credits") // nolint:wrapcheck
	}

	return nil
}

// RefundCreditTx returns one credit inside the caller's transaction, guarded
// by used > 0.
func (s *serviceImpl) RefundCreditTx(ctx context.Context, tx *sqlx.Tx, grantID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefundCreditTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	refunded, err := s.repo.RefundCreditTx(ctx, tx, grantID)
	if err != nil {
		log.Error().Err(err).Msg("failed to refund membership credit")

		return err
	}

	if !refunded {
		return failure.BadRequestFromString("membership grant has no used credits to refund") // nolint:wrapcheck
	}

	return nil
}

// ExpireStaleGrants is the periodic sweep; safe to run on a timer and on
// demand at the same time.
func (s *serviceImpl) ExpireStaleGrants(ctx context.Context) (count int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExpireStaleGrants")
	defer scope.End()
	defer scope.TraceIfError(err)

	count, err = s.repo.ExpireStale(ctx, timezone.Today())
	if err != nil {
		log.Error().Err(err).Msg("failed to expire stale membership grants")

		return 0, err
	}

	if count > 0 {
		log.Info().Int64("expired", count).Msg("expired stale membership grants")

		go func() {
			c := context.WithoutCancel(ctx)

			shared.InvalidateCaches(c, s.cache, cacheGetAllGrant)
		}()
	}

	return count, nil
}
