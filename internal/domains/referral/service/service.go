package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names Referral=MockReferralService

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"lotus/config"
	"lotus/infras/otel"
	"lotus/internal/domains/referral/model"
	"lotus/internal/domains/referral/model/dto"
	"lotus/internal/domains/referral/repository"
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
	cacheGetCode    = "referral:get"
	cacheGetAllCode = "referral:gets"
	cacheCountCode  = "referral:count"

	codeTokenBytes = 8
)

type Referral interface {
	Create(ctx context.Context, req dto.CreateCodeRequest) (dto.CodeResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCodesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.CodeResponse, error)
	Update(ctx context.Context, req dto.UpdateCodeRequest, id string) error
	GetUsages(ctx context.Context, codeID string) ([]dto.UsageResponse, error)

	Validate(ctx context.Context, code, clientID string) (dto.ValidationResponse, error)
	DiscountAmount(totalPrice, percent float64) float64
	RedeemTx(ctx context.Context, tx *sqlx.Tx, code, clientID string, reservationID *string, amount float64) (string, error)
}

type serviceImpl struct {
	repo  repository.Referral
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Referral, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Referral {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// generateCode produces an unguessable referral token.
func generateCode() (string, error) {
	buf := make([]byte, codeTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return constant.Empty, fmt.Errorf("failed to generate referral code: %w", err)
	}

	return strings.ToUpper(hex.EncodeToString(buf)), nil
}

// checkCode applies the validation rules in priority order: unknown/inactive,
// expired, max uses reached, already used by this client, owner self-use.
func checkCode(code model.ReferralCode, used bool, clientID string) error {
	if code.ID == constant.Empty || !code.Active {
		return failure.DiscountInvalid(failure.DiscountReasonNotFound) // nolint:wrapcheck
	}

	if code.ExpiresAt != nil && code.ExpiresAt.Before(timezone.Now()) {
		return failure.DiscountInvalid(failure.DiscountReasonExpired) // nolint:wrapcheck
	}

	if code.MaxUses != nil && code.CurrentUses >= *code.MaxUses {
		return failure.DiscountInvalid(failure.DiscountReasonMaxUsesReached) // nolint:wrapcheck
	}

	if used {
		return failure.DiscountInvalid(failure.DiscountReasonAlreadyUsed) // nolint:wrapcheck
	}

	if code.OwnerClientID == clientID {
		return failure.DiscountInvalid(failure.DiscountReasonOwnerSelfUse) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCodeRequest) (res dto.CodeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	token, err := generateCode()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate referral code token")

		return res, err
	}

	code, err := req.ToModel(user, token)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse referral code request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid expiry date format: %v", err)) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, code); err != nil {
		log.Error().Err(err).Msg("failed to create referral code")

		return res, fmt.Errorf("failed to create referral code: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllCode)
		shared.InvalidateCaches(c, s.cache, cacheCountCode)
	}()

	res.FromModel(code)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCodesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCode, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for referral codes")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count referral codes")

		return res, fmt.Errorf("failed to count referral codes: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get referral codes")

		return res, fmt.Errorf("failed to get referral codes: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save referral codes to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count referral codes")

		return res, fmt.Errorf("failed to count referral codes: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CodeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(nil)

	cacheKey := shared.BuildCacheKey(cacheGetCode, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for referral code")

		return res, nil
	}

	code, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get referral code")

		return res, fmt.Errorf("failed to get referral code: %w", err)
	}

	if code.ID == constant.Empty {
		return res, failure.NotFound("referral code not found") // nolint:wrapcheck
	}

	res.FromModel(code)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save referral code to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCodeRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(nil)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if referral code exists")

		return fmt.Errorf("failed to check if referral code exists: %w", err)
	}

	if !exist {
		return failure.NotFound("referral code not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if req.ExpiresAt != constant.Empty {
		expiresAt, err := timezone.Parse("2006-01-02", req.ExpiresAt)
		if err != nil {
			return failure.BadRequestFromString(fmt.Sprintf("invalid expiry date format: %v", err)) // nolint:wrapcheck
		}

		updatedFields[model.FieldExpiresAt] = expiresAt
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update referral code")

		return fmt.Errorf("failed to update referral code: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCode, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete referral code from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCode)
		shared.InvalidateCaches(c, s.cache, cacheCountCode)
	}()

	return nil
}

func (s *serviceImpl) GetUsages(ctx context.Context, codeID string) (res []dto.UsageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetUsages")
	defer scope.End()
	defer scope.TraceIfError(err)

	usages, err := s.repo.GetUsagesByCode(ctx, codeID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get referral usages")

		return nil, fmt.Errorf("failed to get referral usages: %w", err)
	}

	res = make([]dto.UsageResponse, len(usages))
	for i, usage := range usages {
		res[i].FromModel(usage)
	}

	return res, nil
}

// Validate reports whether clientID may redeem the given code. The returned
// error for an unusable code is always a DiscountError carrying the reason.
func (s *serviceImpl) Validate(ctx context.Context, code, clientID string) (res dto.ValidationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Validate")
	defer scope.End()
	defer scope.TraceIfError(err)

	referralCode, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		log.Error().Err(err).Msg("failed to get referral code")

		return res, fmt.Errorf("failed to get referral code: %w", err)
	}

	used := false
	if referralCode.ID != constant.Empty {
		used, err = s.repo.UsageExists(ctx, referralCode.ID, clientID)
		if err != nil {
			log.Error().Err(err).Msg("failed to check referral usage")

			return res, fmt.Errorf("failed to check referral usage: %w", err)
		}
	}

	if err := checkCode(referralCode, used, clientID); err != nil {
		reason, _ := failure.GetDiscountReason(err)

		return dto.ValidationResponse{Valid: false, Reason: string(reason)}, err
	}

	return dto.ValidationResponse{Valid: true, DiscountPercent: referralCode.DiscountPercent}, nil
}

// DiscountAmount computes the discount for a total at the given percentage,
// rounded half-up to cents.
func (s *serviceImpl) DiscountAmount(totalPrice, percent float64) float64 {
	return shared.RoundCurrency(totalPrice * percent / 100)
}

// RedeemTx records one redemption inside the caller's transaction: it
// re-validates against the locked row, inserts the usage record, and bumps
// the guarded counter. Any failure aborts the caller's whole transaction.
func (s *serviceImpl) RedeemTx(ctx context.Context, tx *sqlx.Tx, code, clientID string, reservationID *string, amount float64) (usageID string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RedeemTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	referralCode, err := s.repo.GetByCodeTx(ctx, tx, code)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to get referral code: %w", err)
	}

	used := false
	if referralCode.ID != constant.Empty {
		used, err = s.repo.UsageExistsTx(ctx, tx, referralCode.ID, clientID)
		if err != nil {
			return constant.Empty, fmt.Errorf("failed to check referral usage: %w", err)
		}
	}

	if err = checkCode(referralCode, used, clientID); err != nil {
		return constant.Empty, err
	}

	usage := model.ReferralUsage{
		ID:            uuid.NewString(),
		CodeID:        referralCode.ID,
		ClientID:      clientID,
		ReservationID: reservationID,
		Amount:        amount,
		CreatedAt:     timezone.Now(),
	}

	if err = s.repo.InsertUsageTx(ctx, tx, usage); err != nil {
		if repository.IsUniqueViolation(err) {
			// Lost the race; the storage constraint is the final word.
			return constant.Empty, failure.DiscountInvalid(failure.DiscountReasonAlreadyUsed) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to insert referral usage")

		return constant.Empty, err
	}

	updated, err := s.repo.IncrementUsesTx(ctx, tx, referralCode.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to increment referral code uses")

		return constant.Empty, err
	}

	if !updated {
		return constant.Empty, failure.DiscountInvalid(failure.DiscountReasonMaxUsesReached) // nolint:wrapcheck
	}

	return usage.ID, nil
}
