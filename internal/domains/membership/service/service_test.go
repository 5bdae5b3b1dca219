package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lotus/config"
	"lotus/infras/otel/mocks"
	membershipMocks "lotus/internal/domains/membership/mocks"
	"lotus/internal/domains/membership/model"
	"lotus/internal/domains/membership/model/dto"
	"lotus/internal/domains/membership/service"
	cacheMocks "lotus/shared/cache/mocks"
	"lotus/shared/constant"
	"lotus/shared/failure"
	gModel "lotus/shared/model"
	"lotus/shared/timezone"
)

func activePlan() model.Plan {
	return model.Plan{
		ID:           "plan-id-1",
		Name:         "Silver",
		Credits:      10,
		Price:        500,
		DurationDays: 90,
		Active:       true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}
}

func activeGrant() model.Grant {
	now := timezone.Today()

	return model.Grant{
		ID:           "grant-id-1",
		ClientID:     "client-id-1",
		PlanID:       "plan-id-1",
		StartDate:    now,
		EndDate:      now.AddDate(0, 0, 90),
		TotalCredits: 10,
		UsedCredits:  3,
		Status:       model.StatusActive,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}
}

func newService(ctrl *gomock.Controller) (service.Membership, *membershipMocks.MockGrant, *membershipMocks.MockPlan, *cacheMocks.MockRedisCache) {
	mockRepo := membershipMocks.NewMockGrant(ctrl)
	mockPlanRepo := membershipMocks.NewMockPlan(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockPlanRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockPlanRepo, mockCache
}

func TestMembershipService_CreatePlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockPlanRepo, mockCache := newService(ctrl)

	tests := []struct {
		name      string
		req       dto.CreatePlanRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreatePlanRequest{
				Name:         "Silver",
				Credits:      10,
				Price:        500,
				DurationDays: 90,
			},
			setupMock: func() {
				mockPlanRepo.EXPECT().
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
			name: "repository error",
			req: dto.CreatePlanRequest{
				Name:         "Silver",
				Credits:      10,
				Price:        500,
				DurationDays: 90,
			},
			setupMock: func() {
				mockPlanRepo.EXPECT().
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
			err := svc.CreatePlan(ctx, tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMembershipService_Purchase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockPlanRepo, mockCache := newService(ctrl)

	tests := []struct {
		name      string
		req       dto.PurchaseGrantRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful purchase",
			req: dto.PurchaseGrantRequest{
				ClientID: "client-id-1",
				PlanID:   "plan-id-1",
			},
			setupMock: func() {
				mockPlanRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activePlan(), nil)

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
			name: "plan not found",
			req: dto.PurchaseGrantRequest{
				ClientID: "client-id-1",
				PlanID:   "nonexistent-plan",
			},
			setupMock: func() {
				mockPlanRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Plan{}, nil)
			},
			wantErr: true,
		},
		{
			name: "inactive plan",
			req: dto.PurchaseGrantRequest{
				ClientID: "client-id-1",
				PlanID:   "plan-id-1",
			},
			setupMock: func() {
				plan := activePlan()
				plan.Active = false

				mockPlanRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(plan, nil)
			},
			wantErr: true,
		},
		{
			name: "invalid start date",
			req: dto.PurchaseGrantRequest{
				ClientID:  "client-id-1",
				PlanID:    "plan-id-1",
				StartDate: "not-a-date",
			},
			setupMock: func() {
				mockPlanRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activePlan(), nil)
			},
			wantErr: true,
		},
		{
			name: "insert error",
			req: dto.PurchaseGrantRequest{
				ClientID: "client-id-1",
				PlanID:   "plan-id-1",
			},
			setupMock: func() {
				mockPlanRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activePlan(), nil)

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
			result, err := svc.Purchase(ctx, tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, activePlan().Credits, result.TotalCredits)
				assert.Equal(t, model.StatusActive, result.Status)
				assert.Equal(t, activePlan().Credits, result.RemainingCredits)
			}
		})
	}
}

func TestMembershipService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockCache := newService(ctrl)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful cancellation",
			id:   "grant-id-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeGrant(), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "grant not found",
			id:   "nonexistent-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Grant{}, nil)
			},
			wantErr: true,
		},
		{
			name: "already expired grant",
			id:   "grant-id-1",
			setupMock: func() {
				grant := activeGrant()
				grant.Status = model.StatusExpired

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(grant, nil)
			},
			wantErr: true,
		},
		{
			name: "already cancelled grant",
			id:   "grant-id-1",
			setupMock: func() {
				grant := activeGrant()
				grant.Status = model.StatusCancelled

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(grant, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Cancel(ctx, tt.id)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMembershipService_UsableGrant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newService(ctrl)

	soonest := activeGrant()
	soonest.ID = "grant-soonest"
	soonest.EndDate = timezone.Now().AddDate(0, 0, 7)

	later := activeGrant()
	later.ID = "grant-later"
	later.EndDate = timezone.Now().AddDate(0, 0, 60)

	tests := []struct {
		name      string
		setupMock func()
		wantOK    bool
		wantID    string
		wantErr   bool
	}{
		{
			name: "picks soonest expiring grant",
			setupMock: func() {
				mockRepo.EXPECT().
					UsableGrants(gomock.Any(), "client-id-1", gomock.Any()).
					Return([]model.Grant{soonest, later}, nil)
			},
			wantOK: true,
			wantID: "grant-soonest",
		},
		{
			name: "no usable grants",
			setupMock: func() {
				mockRepo.EXPECT().
					UsableGrants(gomock.Any(), "client-id-1", gomock.Any()).
					Return(nil, nil)
			},
			wantOK: false,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					UsableGrants(gomock.Any(), "client-id-1", gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			grant, ok, err := svc.UsableGrant(context.Background(), "client-id-1")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.Equal(t, tt.wantID, grant.ID)
			}
		})
	}
}

func TestMembershipService_ConsumeCreditTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful consumption",
			setupMock: func() {
				mockRepo.EXPECT().
					ConsumeCreditTx(gomock.Any(), gomock.Any(), "grant-id-1").
					Return(true, nil)
			},
			wantErr: false,
		},
		{
			name: "no remaining credits",
			setupMock: func() {
				mockRepo.EXPECT().
					ConsumeCreditTx(gomock.Any(), gomock.Any(), "grant-id-1").
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					ConsumeCreditTx(gomock.Any(), gomock.Any(), "grant-id-1").
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.ConsumeCreditTx(context.Background(), nil, "grant-id-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMembershipService_RefundCreditTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful refund",
			setupMock: func() {
				mockRepo.EXPECT().
					RefundCreditTx(gomock.Any(), gomock.Any(), "grant-id-1").
					Return(true, nil)
			},
			wantErr: false,
		},
		{
			name: "no used credits to refund",
			setupMock: func() {
				mockRepo.EXPECT().
					RefundCreditTx(gomock.Any(), gomock.Any(), "grant-id-1").
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					RefundCreditTx(gomock.Any(), gomock.Any(), "grant-id-1").
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.RefundCreditTx(context.Background(), nil, "grant-id-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMembershipService_ExpireStaleGrants(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockCache := newService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantCount int64
		wantErr   bool
	}{
		{
			name: "expires stale grants",
			setupMock: func() {
				mockRepo.EXPECT().
					ExpireStale(gomock.Any(), gomock.Any()).
					Return(int64(3), nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantCount: 3,
		},
		{
			name: "nothing to expire",
			setupMock: func() {
				mockRepo.EXPECT().
					ExpireStale(gomock.Any(), gomock.Any()).
					Return(int64(0), nil)
			},
			wantCount: 0,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					ExpireStale(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			count, err := svc.ExpireStaleGrants(context.Background())

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}
