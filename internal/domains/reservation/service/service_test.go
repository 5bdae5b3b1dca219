package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lotus/config"
	kafkaMocks "lotus/infras/kafka/mocks"
	"lotus/infras/otel/mocks"
	catalogMocks "lotus/internal/domains/catalog/mocks"
	catalogModel "lotus/internal/domains/catalog/model"
	clientMocks "lotus/internal/domains/client/mocks"
	membershipMocks "lotus/internal/domains/membership/mocks"
	membershipModel "lotus/internal/domains/membership/model"
	referralMocks "lotus/internal/domains/referral/mocks"
	referralDto "lotus/internal/domains/referral/model/dto"
	reservationMocks "lotus/internal/domains/reservation/mocks"
	"lotus/internal/domains/reservation/model"
	"lotus/internal/domains/reservation/model/dto"
	"lotus/internal/domains/reservation/service"
	cacheMocks "lotus/shared/cache/mocks"
	"lotus/shared/constant"
	"lotus/shared/failure"
	gModel "lotus/shared/model"
	"lotus/shared/timezone"
)

type serviceMocks struct {
	repo       *reservationMocks.MockReservation
	itemRepo   *reservationMocks.MockItem
	catalog    *catalogMocks.MockCatalog
	clients    *clientMocks.MockClientService
	referral   *referralMocks.MockReferralService
	membership *membershipMocks.MockMembership
	db         *reservationMocks.MockTransactor
	kafka      *kafkaMocks.MockClient
	cache      *cacheMocks.MockRedisCache
}

func newService(ctrl *gomock.Controller) (service.Reservation, *serviceMocks) {
	m := &serviceMocks{
		repo:       reservationMocks.NewMockReservation(ctrl),
		itemRepo:   reservationMocks.NewMockItem(ctrl),
		catalog:    catalogMocks.NewMockCatalog(ctrl),
		clients:    clientMocks.NewMockClientService(ctrl),
		referral:   referralMocks.NewMockReferralService(ctrl),
		membership: membershipMocks.NewMockMembership(ctrl),
		db:         reservationMocks.NewMockTransactor(ctrl),
		kafka:      kafkaMocks.NewMockClient(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
	}

	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.repo, m.itemRepo, m.catalog, m.clients, m.referral, m.membership, m.db, m.kafka, cfg, m.cache, mockOtel)

	return svc, m
}

// expectAsync covers the fire-and-forget work every mutation kicks off:
// cache invalidation and event publishing.
func (m *serviceMocks) expectAsync() {
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func (m *serviceMocks) expectTransaction() {
	m.db.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*sqlx.Tx) error) error {
			return fn(nil)
		})
}

func massageService(id string, price float64, duration int) catalogModel.Service {
	return catalogModel.Service{
		ID:              id,
		Name:            "Massage",
		DurationMinutes: duration,
		Price:           price,
		Active:          true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}
}

func pendingReservation() model.Reservation {
	clientID := "client-id-1"
	date, _ := time.Parse("2006-01-02", "2026-09-01")
	start, _ := time.Parse("15:04", "10:00")

	return model.Reservation{
		ID:                   "reservation-id-1",
		ClientID:             &clientID,
		ReservationDate:      date,
		StartTime:            start,
		EndTime:              start.Add(90 * time.Minute),
		Status:               model.StatusPending,
		PaymentStatus:        model.PaymentStatusUnpaid,
		TotalPrice:           230,
		TotalDurationMinutes: 90,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}
}

func reservationItems(reservationID string) []model.ReservationItem {
	return []model.ReservationItem{
		{
			ID:              "item-id-1",
			ReservationID:   reservationID,
			ServiceID:       "service-id-1",
			Kind:            model.ItemKindMain,
			UnitPrice:       150,
			DurationMinutes: 60,
			CreatedAt:       timezone.Now(),
		},
		{
			ID:              "item-id-2",
			ReservationID:   reservationID,
			ServiceID:       "service-id-2",
			Kind:            model.ItemKindAddon,
			UnitPrice:       80,
			DurationMinutes: 30,
			CreatedAt:       timezone.Now(),
		},
	}
}

func TestReservationService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)
	m.expectAsync()

	baseReq := dto.CreateReservationRequest{
		ClientID:        "client-id-1",
		ReservationDate: "2026-09-01",
		StartTime:       "10:00",
		Items: []dto.CreateItemRequest{
			{ServiceID: "service-id-1", Kind: model.ItemKindMain},
			{ServiceID: "service-id-2", Kind: model.ItemKindAddon},
		},
	}

	tests := []struct {
		name      string
		req       dto.CreateReservationRequest
		setupMock func()
		check     func(t *testing.T, res dto.ReservationResponse, err error)
	}{
		{
			name: "successful creation with aggregated totals",
			req:  baseReq,
			setupMock: func() {
				m.catalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(massageService("service-id-1", 150, 60), nil)

				m.catalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(massageService("service-id-2", 80, 30), nil)

				m.expectTransaction()

				m.repo.EXPECT().
					CountOverlappingTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(0, nil)

				m.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.itemRepo.EXPECT().
					InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			check: func(t *testing.T, res dto.ReservationResponse, err error) {
				assert.NoError(t, err)
				assert.InDelta(t, 230.0, res.TotalPrice, 0.0001)
				assert.Equal(t, 90, res.TotalDurationMinutes)
				assert.Equal(t, "10:00", res.StartTime)
				assert.Equal(t, "11:30", res.EndTime)
				assert.Len(t, res.Items, 2)
			},
		},
		{
			name: "slot conflict",
			req:  baseReq,
			setupMock: func() {
				m.catalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(massageService("service-id-1", 150, 60), nil)

				m.catalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(massageService("service-id-2", 80, 30), nil)

				m.expectTransaction()

				m.repo.EXPECT().
					CountOverlappingTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(1, nil)
			},
			check: func(t *testing.T, _ dto.ReservationResponse, err error) {
				assert.Error(t, err)
				assert.Equal(t, http.StatusConflict, failure.GetCode(err))
			},
		},
		{
			name: "lost insert race surfaces as conflict",
			req:  baseReq,
			setupMock: func() {
				m.catalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(massageService("service-id-1", 150, 60), nil)

				m.catalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(massageService("service-id-2", 80, 30), nil)

				m.expectTransaction()

				// The availability check passes, but a concurrent booking
				// commits first and the exclusion constraint rejects ours.
				m.repo.EXPECT().
					CountOverlappingTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(0, nil)

				m.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: "23P01"})
			},
			check: func(t *testing.T, _ dto.ReservationResponse, err error) {
				assert.Error(t, err)
				assert.Equal(t, http.StatusConflict, failure.GetCode(err))
			},
		},
		{
			name: "referral discount applied",
			req: func() dto.CreateReservationRequest {
				req := baseReq
				req.ReferralCode = "AB12CD34EF56AB78"

				return req
			}(),
			setupMock: func() {
				m.catalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(massageService("service-id-1", 150, 60), nil)

				m.catalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(massageService("service-id-2", 80, 30), nil)

				m.expectTransaction()

				m.repo.EXPECT().
					CountOverlappingTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(0, nil)

				m.referral.EXPECT().
					Validate(gomock.Any(), "AB12CD34EF56AB78", "client-id-1").
					Return(referralDto.ValidationResponse{Valid: true, DiscountPercent: 10}, nil)

				m.referral.EXPECT().
					DiscountAmount(230.0, 10.0).
					Return(23.0)

				m.referral.EXPECT().
					RedeemTx(gomock.Any(), gomock.Any(), "AB12CD34EF56AB78", "client-id-1", gomock.Any(), 23.0).
					Return("usage-id-1", nil)

				m.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.itemRepo.EXPECT().
					InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			check: func(t *testing.T, res dto.ReservationResponse, err error) {
				assert.NoError(t, err)
				assert.InDelta(t, 207.0, res.TotalPrice, 0.0001)
				assert.NotNil(t, res.ReferralUsageID)
				assert.Equal(t, "usage-id-1", *res.ReferralUsageID)
			},
		},
		{
			name: "membership credit consumed",
			req: func() dto.CreateReservationRequest {
				req := baseReq
				req.UseMembershipCredit = true

				return req
			}(),
			setupMock: func() {
				m.catalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(massageService("service-id-1", 150, 60), nil)

				m.catalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(massageService("service-id-2", 80, 30), nil)

				m.expectTransaction()

				m.repo.EXPECT().
					CountOverlappingTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(0, nil)

				m.membership.EXPECT().
					UsableGrant(gomock.Any(), "client-id-1").
					Return(membershipModel.Grant{ID: "grant-id-1"}, true, nil)

				m.membership.EXPECT().
					ConsumeCreditTx(gomock.Any(), gomock.Any(), "grant-id-1").
					Return(nil)

				m.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.itemRepo.EXPECT().
					InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			check: func(t *testing.T, res dto.ReservationResponse, err error) {
				assert.NoError(t, err)
				assert.InDelta(t, 0.0, res.TotalPrice, 0.0001)
				assert.NotNil(t, res.MembershipGrantID)
				assert.Equal(t, "grant-id-1", *res.MembershipGrantID)
			},
		},
		{
			name: "no usable membership grant",
			req: func() dto.CreateReservationRequest {
				req := baseReq
				req.UseMembershipCredit = true

				return req
			}(),
			setupMock: func() {
				m.catalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(massageService("service-id-1", 150, 60), nil)

				m.catalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(massageService("service-id-2", 80, 30), nil)

				m.expectTransaction()

				m.repo.EXPECT().
					CountOverlappingTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(0, nil)

				m.membership.EXPECT().
					UsableGrant(gomock.Any(), "client-id-1").
					Return(membershipModel.Grant{}, false, nil)
			},
			check: func(t *testing.T, _ dto.ReservationResponse, err error) {
				assert.Error(t, err)
				assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
			},
		},
		{
			name: "guest promoted to client record",
			req: dto.CreateReservationRequest{
				GuestName:       "Jane Doe",
				GuestPhone:      "555-0101",
				ReservationDate: "2026-09-01",
				StartTime:       "10:00",
				ServiceID:       "service-id-1",
			},
			setupMock: func() {
				m.clients.EXPECT().
					FindOrCreate(gomock.Any(), gomock.Any()).
					Return("client-id-9", nil)

				m.catalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(massageService("service-id-1", 150, 60), nil)

				m.expectTransaction()

				m.repo.EXPECT().
					CountOverlappingTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(0, nil)

				m.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.itemRepo.EXPECT().
					InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			check: func(t *testing.T, res dto.ReservationResponse, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, res.ClientID)
				assert.Equal(t, "client-id-9", *res.ClientID)
				assert.NotNil(t, res.ServiceID)
			},
		},
		{
			name: "draft keeps guest fields without client",
			req: dto.CreateReservationRequest{
				GuestName:       "Jane Doe",
				GuestPhone:      "555-0101",
				ReservationDate: "2026-09-01",
				StartTime:       "10:00",
				ServiceID:       "service-id-1",
				Status:          model.StatusDraft,
			},
			setupMock: func() {
				m.catalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(massageService("service-id-1", 150, 60), nil)

				m.expectTransaction()

				m.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.itemRepo.EXPECT().
					InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			check: func(t *testing.T, res dto.ReservationResponse, err error) {
				assert.NoError(t, err)
				assert.Nil(t, res.ClientID)
				assert.Equal(t, "Jane Doe", res.GuestName)
			},
		},
		{
			name: "discount requires a client",
			req: dto.CreateReservationRequest{
				GuestName:       "Jane Doe",
				GuestPhone:      "555-0101",
				ReservationDate: "2026-09-01",
				StartTime:       "10:00",
				ServiceID:       "service-id-1",
				Status:          model.StatusDraft,
				ReferralCode:    "AB12CD34EF56AB78",
			},
			setupMock: func() {},
			check: func(t *testing.T, _ dto.ReservationResponse, err error) {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			},
		},
		{
			name: "guest phone required",
			req: dto.CreateReservationRequest{
				GuestName:       "Jane Doe",
				ReservationDate: "2026-09-01",
				StartTime:       "10:00",
				ServiceID:       "service-id-1",
			},
			setupMock: func() {},
			check: func(t *testing.T, _ dto.ReservationResponse, err error) {
				assert.Error(t, err)
			},
		},
		{
			name: "invalid date format",
			req: func() dto.CreateReservationRequest {
				req := baseReq
				req.ReservationDate = "01-09-2026"

				return req
			}(),
			setupMock: func() {},
			check: func(t *testing.T, _ dto.ReservationResponse, err error) {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			},
		},
		{
			name: "inactive service rejected",
			req:  baseReq,
			setupMock: func() {
				inactive := massageService("service-id-1", 150, 60)
				inactive.Active = false

				m.catalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(inactive, nil)
			},
			check: func(t *testing.T, _ dto.ReservationResponse, err error) {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Create(ctx, tt.req)

			time.Sleep(10 * time.Millisecond)

			tt.check(t, res, err)
		})
	}
}

func TestReservationService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)
	m.expectAsync()

	tests := []struct {
		name      string
		status    string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:   "same status is a no-op",
			status: model.StatusPending,
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingReservation(), nil)
			},
			wantErr: false,
		},
		{
			name:   "terminal status rejects transitions",
			status: model.StatusConfirmed,
			setupMock: func() {
				reservation := pendingReservation()
				reservation.Status = model.StatusCompleted

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservation, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "pending to confirmed",
			status: model.StatusConfirmed,
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingReservation(), nil)

				m.expectTransaction()

				m.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:   "confirming a draft promotes the guest and re-checks the slot",
			status: model.StatusConfirmed,
			setupMock: func() {
				reservation := pendingReservation()
				reservation.Status = model.StatusDraft
				reservation.ClientID = nil
				reservation.GuestName = "Jane Doe"
				reservation.GuestPhone = "555-0101"
				reservation.TotalPrice = 0

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservation, nil)

				m.clients.EXPECT().
					FindOrCreate(gomock.Any(), gomock.Any()).
					Return("client-id-9", nil)

				m.expectTransaction()

				m.repo.EXPECT().
					CountOverlappingTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), "reservation-id-1").
					Return(0, nil)

				m.itemRepo.EXPECT().
					GetAllByReservationTx(gomock.Any(), gomock.Any(), "reservation-id-1").
					Return(reservationItems("reservation-id-1"), nil)

				m.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
						assert.Equal(t, "client-id-9", fields[model.FieldClientID])
						assert.InDelta(t, 230.0, fields[model.FieldTotalPrice].(float64), 0.0001)
						assert.Equal(t, 90, fields[model.FieldTotalDuration])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name:   "draft confirmation loses the slot",
			status: model.StatusConfirmed,
			setupMock: func() {
				reservation := pendingReservation()
				reservation.Status = model.StatusDraft

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservation, nil)

				m.expectTransaction()

				m.repo.EXPECT().
					CountOverlappingTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), "reservation-id-1").
					Return(1, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name:   "cancelled status routes through cancellation",
			status: model.StatusCancelled,
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingReservation(), nil)

				m.expectTransaction()

				m.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:   "reservation not found",
			status: model.StatusConfirmed,
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.UpdateStatus(ctx, "reservation-id-1", tt.status)

			time.Sleep(10 * time.Millisecond)

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

func TestReservationService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)
	m.expectAsync()

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "cancellation refunds the consumed credit",
			setupMock: func() {
				grantID := "grant-id-1"
				reservation := pendingReservation()
				reservation.MembershipGrantID = &grantID

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservation, nil)

				m.expectTransaction()

				m.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.membership.EXPECT().
					RefundCreditTx(gomock.Any(), gomock.Any(), "grant-id-1").
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cancellation without credit",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingReservation(), nil)

				m.expectTransaction()

				m.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "already cancelled is a no-op",
			setupMock: func() {
				reservation := pendingReservation()
				reservation.Status = model.StatusCancelled

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservation, nil)
			},
			wantErr: false,
		},
		{
			name: "completed reservation cannot be cancelled",
			setupMock: func() {
				reservation := pendingReservation()
				reservation.Status = model.StatusCompleted

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservation, nil)
			},
			wantErr: true,
		},
		{
			name: "refund failure aborts the cancellation",
			setupMock: func() {
				grantID := "grant-id-1"
				reservation := pendingReservation()
				reservation.MembershipGrantID = &grantID

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservation, nil)

				m.expectTransaction()

				m.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.membership.EXPECT().
					RefundCreditTx(gomock.Any(), gomock.Any(), "grant-id-1").
					Return(errors.New("refund error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Cancel(ctx, "reservation-id-1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReservationService_AddService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)
	m.expectAsync()

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "legacy reservation is converted to line items",
			setupMock: func() {
				legacyServiceID := "service-id-1"
				reservation := pendingReservation()
				reservation.ServiceID = &legacyServiceID
				reservation.EndTime = reservation.StartTime.Add(60 * time.Minute)

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservation, nil)

				m.catalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(massageService("service-id-2", 80, 30), nil)

				m.expectTransaction()

				m.itemRepo.EXPECT().
					GetAllByReservationTx(gomock.Any(), gomock.Any(), "reservation-id-1").
					Return(nil, nil)

				m.catalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(massageService("service-id-1", 150, 60), nil)

				m.itemRepo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					Times(2)

				m.repo.EXPECT().
					CountOverlappingTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), "reservation-id-1").
					Return(0, nil)

				m.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
						assert.InDelta(t, 230.0, fields[model.FieldTotalPrice].(float64), 0.0001)
						assert.Equal(t, 90, fields[model.FieldTotalDuration])
						assert.Nil(t, fields[model.FieldServiceID])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "extension conflicts with another booking",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingReservation(), nil)

				m.catalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(massageService("service-id-3", 60, 45), nil)

				m.expectTransaction()

				m.itemRepo.EXPECT().
					GetAllByReservationTx(gomock.Any(), gomock.Any(), "reservation-id-1").
					Return(reservationItems("reservation-id-1"), nil)

				m.itemRepo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.repo.EXPECT().
					CountOverlappingTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), "reservation-id-1").
					Return(1, nil)
			},
			wantErr: true,
		},
		{
			name: "completed reservation cannot be modified",
			setupMock: func() {
				reservation := pendingReservation()
				reservation.Status = model.StatusCompleted

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservation, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.AddService(ctx, "reservation-id-1", dto.AddServiceRequest{ServiceID: "service-id-2"})

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReservationService_RemoveService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)
	m.expectAsync()

	tests := []struct {
		name      string
		itemID    string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:   "removal re-aggregates totals",
			itemID: "item-id-2",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingReservation(), nil)

				m.expectTransaction()

				m.itemRepo.EXPECT().
					GetAllByReservationTx(gomock.Any(), gomock.Any(), "reservation-id-1").
					Return(reservationItems("reservation-id-1"), nil)

				m.itemRepo.EXPECT().
					DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
						assert.InDelta(t, 150.0, fields[model.FieldTotalPrice].(float64), 0.0001)
						assert.Equal(t, 60, fields[model.FieldTotalDuration])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name:   "removing the last item is rejected",
			itemID: "item-id-1",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingReservation(), nil)

				m.expectTransaction()

				m.itemRepo.EXPECT().
					GetAllByReservationTx(gomock.Any(), gomock.Any(), "reservation-id-1").
					Return(reservationItems("reservation-id-1")[:1], nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "item not found",
			itemID: "nonexistent-item",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingReservation(), nil)

				m.expectTransaction()

				m.itemRepo.EXPECT().
					GetAllByReservationTx(gomock.Any(), gomock.Any(), "reservation-id-1").
					Return(reservationItems("reservation-id-1"), nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.RemoveService(ctx, "reservation-id-1", tt.itemID)

			time.Sleep(10 * time.Millisecond)

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

func TestReservationService_IsSlotFree(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)

	date, _ := time.Parse("2006-01-02", "2026-09-01")
	start, _ := time.Parse("15:04", "10:00")
	end := start.Add(time.Hour)

	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		setupMock func()
		wantFree  bool
		wantErr   bool
	}{
		{
			name:  "free slot",
			start: start,
			end:   end,
			setupMock: func() {
				m.repo.EXPECT().
					CountOverlapping(gomock.Any(), date, start, end, "").
					Return(0, nil)
			},
			wantFree: true,
		},
		{
			name:  "occupied slot",
			start: start,
			end:   end,
			setupMock: func() {
				m.repo.EXPECT().
					CountOverlapping(gomock.Any(), date, start, end, "").
					Return(2, nil)
			},
			wantFree: false,
		},
		{
			name:      "inverted interval",
			start:     end,
			end:       start,
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:      "zero-length interval",
			start:     start,
			end:       start,
			setupMock: func() {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			free, err := svc.IsSlotFree(context.Background(), date, tt.start, tt.end, "")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantFree, free)
		})
	}
}
