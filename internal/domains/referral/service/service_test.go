package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lotus/config"
	"lotus/infras/otel/mocks"
	referralMocks "lotus/internal/domains/referral/mocks"
	"lotus/internal/domains/referral/model"
	"lotus/internal/domains/referral/model/dto"
	"lotus/internal/domains/referral/service"
	cacheMocks "lotus/shared/cache/mocks"
	"lotus/shared/constant"
	"lotus/shared/failure"
	gModel "lotus/shared/model"
	"lotus/shared/timezone"
)

func activeCode() model.ReferralCode {
	return model.ReferralCode{
		ID:              "code-id-1",
		Code:            "AB12CD34EF56AB78",
		OwnerClientID:   "owner-client-id",
		DiscountPercent: 10,
		CurrentUses:     0,
		Active:          true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}
}

func intPtr(i int) *int {
	return &i
}

func TestReferralService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := referralMocks.NewMockReferral(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateCodeRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateCodeRequest{
				OwnerClientID:   "owner-client-id",
				DiscountPercent: 15,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "invalid expiry date",
			req: dto.CreateCodeRequest{
				OwnerClientID:   "owner-client-id",
				DiscountPercent: 15,
				ExpiresAt:       "not-a-date",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "repository error",
			req: dto.CreateCodeRequest{
				OwnerClientID:   "owner-client-id",
				DiscountPercent: 15,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			result, err := svc.Create(ctx, tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.Code)
				assert.True(t, result.Active)
			}
		})
	}
}

func TestReferralService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := referralMocks.NewMockReferral(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantID    string
	}{
		{
			name: "cache hit",
			id:   "code-id-1",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			id:   "code-id-1",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeCode(), nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantID:  "code-id-1",
		},
		{
			name: "referral code not found",
			id:   "nonexistent-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.ReferralCode{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), tt.id)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantID != "" {
					assert.Equal(t, tt.wantID, result.ID)
				}
			}
		})
	}
}

func TestReferralService_Validate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := referralMocks.NewMockReferral(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	expired := timezone.Now().Add(-24 * time.Hour)

	tests := []struct {
		name       string
		code       string
		clientID   string
		setupMock  func()
		wantValid  bool
		wantReason failure.DiscountReason
		wantErr    bool
	}{
		{
			name:     "valid code",
			code:     "AB12CD34EF56AB78",
			clientID: "client-id-1",
			setupMock: func() {
				mockRepo.EXPECT().
					GetByCode(gomock.Any(), "AB12CD34EF56AB78").
					Return(activeCode(), nil)

				mockRepo.EXPECT().
					UsageExists(gomock.Any(), "code-id-1", "client-id-1").
					Return(false, nil)
			},
			wantValid: true,
		},
		{
			name:     "unknown code",
			code:     "UNKNOWN",
			clientID: "client-id-1",
			setupMock: func() {
				mockRepo.EXPECT().
					GetByCode(gomock.Any(), "UNKNOWN").
					Return(model.ReferralCode{}, nil)
			},
			wantReason: failure.DiscountReasonNotFound,
			wantErr:    true,
		},
		{
			name:     "inactive code",
			code:     "AB12CD34EF56AB78",
			clientID: "client-id-1",
			setupMock: func() {
				code := activeCode()
				code.Active = false

				mockRepo.EXPECT().
					GetByCode(gomock.Any(), "AB12CD34EF56AB78").
					Return(code, nil)

				mockRepo.EXPECT().
					UsageExists(gomock.Any(), "code-id-1", "client-id-1").
					Return(false, nil)
			},
			wantReason: failure.DiscountReasonNotFound,
			wantErr:    true,
		},
		{
			name:     "expired code",
			code:     "AB12CD34EF56AB78",
			clientID: "client-id-1",
			setupMock: func() {
				code := activeCode()
				code.ExpiresAt = &expired

				mockRepo.EXPECT().
					GetByCode(gomock.Any(), "AB12CD34EF56AB78").
					Return(code, nil)

				mockRepo.EXPECT().
					UsageExists(gomock.Any(), "code-id-1", "client-id-1").
					Return(false, nil)
			},
			wantReason: failure.DiscountReasonExpired,
			wantErr:    true,
		},
		{
			name:     "max uses reached",
			code:     "AB12CD34EF56AB78",
			clientID: "client-id-1",
			setupMock: func() {
				code := activeCode()
				code.MaxUses = intPtr(5)
				code.CurrentUses = 5

				mockRepo.EXPECT().
					GetByCode(gomock.Any(), "AB12CD34EF56AB78").
					Return(code, nil)

				mockRepo.EXPECT().
					UsageExists(gomock.Any(), "code-id-1", "client-id-1").
					Return(false, nil)
			},
			wantReason: failure.DiscountReasonMaxUsesReached,
			wantErr:    true,
		},
		{
			name:     "already used by client",
			code:     "AB12CD34EF56AB78",
			clientID: "client-id-1",
			setupMock: func() {
				mockRepo.EXPECT().
					GetByCode(gomock.Any(), "AB12CD34EF56AB78").
					Return(activeCode(), nil)

				mockRepo.EXPECT().
					UsageExists(gomock.Any(), "code-id-1", "client-id-1").
					Return(true, nil)
			},
			wantReason: failure.DiscountReasonAlreadyUsed,
			wantErr:    true,
		},
		{
			name:     "owner self-use",
			code:     "AB12CD34EF56AB78",
			clientID: "owner-client-id",
			setupMock: func() {
				mockRepo.EXPECT().
					GetByCode(gomock.Any(), "AB12CD34EF56AB78").
					Return(activeCode(), nil)

				mockRepo.EXPECT().
					UsageExists(gomock.Any(), "code-id-1", "owner-client-id").
					Return(false, nil)
			},
			wantReason: failure.DiscountReasonOwnerSelfUse,
			wantErr:    true,
		},
		{
			name:     "expired beats max uses",
			code:     "AB12CD34EF56AB78",
			clientID: "client-id-1",
			setupMock: func() {
				code := activeCode()
				code.ExpiresAt = &expired
				code.MaxUses = intPtr(5)
				code.CurrentUses = 5

				mockRepo.EXPECT().
					GetByCode(gomock.Any(), "AB12CD34EF56AB78").
					Return(code, nil)

				mockRepo.EXPECT().
					UsageExists(gomock.Any(), "code-id-1", "client-id-1").
					Return(true, nil)
			},
			wantReason: failure.DiscountReasonExpired,
			wantErr:    true,
		},
		{
			name:     "lookup error",
			code:     "AB12CD34EF56AB78",
			clientID: "client-id-1",
			setupMock: func() {
				mockRepo.EXPECT().
					GetByCode(gomock.Any(), "AB12CD34EF56AB78").
					Return(model.ReferralCode{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Validate(context.Background(), tt.code, tt.clientID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.False(t, result.Valid)

				if tt.wantReason != "" {
					reason, ok := failure.GetDiscountReason(err)
					assert.True(t, ok)
					assert.Equal(t, tt.wantReason, reason)
					assert.Equal(t, string(tt.wantReason), result.Reason)
				}

				return
			}

			assert.NoError(t, err)
			assert.True(t, result.Valid)
			assert.Equal(t, activeCode().DiscountPercent, result.DiscountPercent)
		})
	}
}

func TestReferralService_DiscountAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := referralMocks.NewMockReferral(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockCache, mockOtel)

	tests := []struct {
		name    string
		total   float64
		percent float64
		want    float64
	}{
		{name: "whole amount", total: 200, percent: 10, want: 20},
		{name: "rounds half up", total: 100.05, percent: 10, want: 10.01},
		{name: "rounds down", total: 100.04, percent: 10, want: 10},
		{name: "zero percent", total: 150, percent: 0, want: 0},
		{name: "full discount", total: 99.99, percent: 100, want: 99.99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, svc.DiscountAmount(tt.total, tt.percent), 0.0001)
		})
	}
}

func TestReferralService_RedeemTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := referralMocks.NewMockReferral(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockCache, mockOtel)

	reservationID := "reservation-id-1"

	tests := []struct {
		name       string
		clientID   string
		setupMock  func()
		wantErr    bool
		wantReason failure.DiscountReason
	}{
		{
			name:     "successful redemption",
			clientID: "client-id-1",
			setupMock: func() {
				mockRepo.EXPECT().
					GetByCodeTx(gomock.Any(), gomock.Any(), "AB12CD34EF56AB78").
					Return(activeCode(), nil)

				mockRepo.EXPECT().
					UsageExistsTx(gomock.Any(), gomock.Any(), "code-id-1", "client-id-1").
					Return(false, nil)

				mockRepo.EXPECT().
					InsertUsageTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockRepo.EXPECT().
					IncrementUsesTx(gomock.Any(), gomock.Any(), "code-id-1").
					Return(true, nil)
			},
			wantErr: false,
		},
		{
			name:     "usage unique violation maps to already used",
			clientID: "client-id-1",
			setupMock: func() {
				mockRepo.EXPECT().
					GetByCodeTx(gomock.Any(), gomock.Any(), "AB12CD34EF56AB78").
					Return(activeCode(), nil)

				mockRepo.EXPECT().
					UsageExistsTx(gomock.Any(), gomock.Any(), "code-id-1", "client-id-1").
					Return(false, nil)

				mockRepo.EXPECT().
					InsertUsageTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: "23505"})
			},
			wantErr:    true,
			wantReason: failure.DiscountReasonAlreadyUsed,
		},
		{
			name:     "counter exhausted maps to max uses",
			clientID: "client-id-1",
			setupMock: func() {
				mockRepo.EXPECT().
					GetByCodeTx(gomock.Any(), gomock.Any(), "AB12CD34EF56AB78").
					Return(activeCode(), nil)

				mockRepo.EXPECT().
					UsageExistsTx(gomock.Any(), gomock.Any(), "code-id-1", "client-id-1").
					Return(false, nil)

				mockRepo.EXPECT().
					InsertUsageTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockRepo.EXPECT().
					IncrementUsesTx(gomock.Any(), gomock.Any(), "code-id-1").
					Return(false, nil)
			},
			wantErr:    true,
			wantReason: failure.DiscountReasonMaxUsesReached,
		},
		{
			name:     "owner self-use rejected before insert",
			clientID: "owner-client-id",
			setupMock: func() {
				mockRepo.EXPECT().
					GetByCodeTx(gomock.Any(), gomock.Any(), "AB12CD34EF56AB78").
					Return(activeCode(), nil)

				mockRepo.EXPECT().
					UsageExistsTx(gomock.Any(), gomock.Any(), "code-id-1", "owner-client-id").
					Return(false, nil)
			},
			wantErr:    true,
			wantReason: failure.DiscountReasonOwnerSelfUse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			usageID, err := svc.RedeemTx(context.Background(), nil, "AB12CD34EF56AB78", tt.clientID, &reservationID, 20)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantReason != "" {
					reason, ok := failure.GetDiscountReason(err)
					assert.True(t, ok)
					assert.Equal(t, tt.wantReason, reason)
				}

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, usageID)
		})
	}
}
