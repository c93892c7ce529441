package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"courtside/config"
	"courtside/infras/otel/mocks"
	upstreamMocks "courtside/infras/upstream/mocks"
	"courtside/internal/domains/tracking/model"
	"courtside/internal/domains/tracking/service"
	cacheMocks "courtside/shared/cache/mocks"
	"courtside/shared/constant"
	"courtside/shared/failure"
)

func activeBooking(code string) model.TrackedBooking {
	return model.TrackedBooking{
		ID:           1,
		TrackingCode: code,
		FutsalID:     7,
		FutsalName:   "Arena One",
		Location:     "Baneshwor",
		City:         "Kathmandu",
		BookingDate:  "2030-06-15",
		TimeSlot:     "18:00-19:00",
		PlayerCount:  10,
		GuestName:    "Sita",
		GuestPhone:   "9800000000",
		AmountPaid:   1000,
		CreatedAt:    time.Now(),
	}
}

func TestTrackingService_Track(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBackend := upstreamMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockBackend, cfg, mockCache, mockOtel)

	cancelled := activeBooking("CANCELLD")
	cancelledAt := time.Now()
	cancelled.CancelledAt = &cancelledAt

	expired := activeBooking("EXPIRED1")
	expired.BookingDate = "2020-06-15"

	tests := []struct {
		name        string
		code        string
		setupMock   func()
		wantErr     bool
		wantCode    int
		wantStatus  model.Status
		wantMessage string
		wantPrice   bool
	}{
		{
			name:      "code with wrong length rejected before any backend call",
			code:      "SHORT",
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "cache miss fetches and derives active status",
			code: "ABCD1234",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "tracking:get:ABCD1234", gomock.Any()).
					Return(errors.New("cache miss"))

				mockBackend.EXPECT().
					TrackBooking(gomock.Any(), "ABCD1234").
					Return(activeBooking("ABCD1234"), nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockBackend.EXPECT().
					EffectivePrice(gomock.Any(), int64(7), "2030-06-15").
					Return(850.0, nil)
			},
			wantErr:    false,
			wantStatus: model.StatusActive,
			wantPrice:  true,
		},
		{
			name: "price fetch failure does not fail the lookup",
			code: "ABCD1234",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "tracking:get:ABCD1234", gomock.Any()).
					Return(errors.New("cache miss"))

				mockBackend.EXPECT().
					TrackBooking(gomock.Any(), "ABCD1234").
					Return(activeBooking("ABCD1234"), nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockBackend.EXPECT().
					EffectivePrice(gomock.Any(), int64(7), "2030-06-15").
					Return(0.0, errors.New("upstream down"))
			},
			wantErr:    false,
			wantStatus: model.StatusActive,
			wantPrice:  false,
		},
		{
			name: "unknown code maps to booking not found",
			code: "ZZZZ9999",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "tracking:get:ZZZZ9999", gomock.Any()).
					Return(errors.New("cache miss"))

				mockBackend.EXPECT().
					TrackBooking(gomock.Any(), "ZZZZ9999").
					Return(model.TrackedBooking{}, failure.NotFound("booking not found"))

				mockCache.EXPECT().
					Delete(gomock.Any(), "tracking:get:ZZZZ9999").
					Return(nil).
					AnyTimes()
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "backend outage reads as booking not found and drops the cached entry",
			code: "ABCD1234",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "tracking:get:ABCD1234", gomock.Any()).
					Return(errors.New("cache miss"))

				mockBackend.EXPECT().
					TrackBooking(gomock.Any(), "ABCD1234").
					Return(model.TrackedBooking{}, failure.UpstreamUnavailable("booking backend unreachable"))

				mockCache.EXPECT().
					Delete(gomock.Any(), "tracking:get:ABCD1234").
					Return(nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "cancelled booking reports not found",
			code: "CANCELLD",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "tracking:get:CANCELLD", gomock.Any()).
					Return(errors.New("cache miss"))

				mockBackend.EXPECT().
					TrackBooking(gomock.Any(), "CANCELLD").
					Return(cancelled, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "past booking reports expired with message",
			code: "EXPIRED1",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "tracking:get:EXPIRED1", gomock.Any()).
					Return(errors.New("cache miss"))

				mockBackend.EXPECT().
					TrackBooking(gomock.Any(), "EXPIRED1").
					Return(expired, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockBackend.EXPECT().
					EffectivePrice(gomock.Any(), int64(7), "2020-06-15").
					Return(0.0, errors.New("no price for past date"))
			},
			wantErr:     false,
			wantStatus:  model.StatusExpired,
			wantMessage: constant.MsgBookingExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Track(context.Background(), tt.code)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.code, res.TrackingCode)
			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, tt.wantMessage, res.StatusMessage)

			if tt.wantPrice {
				assert.NotNil(t, res.EffectivePrice)
				assert.Equal(t, 850.0, *res.EffectivePrice)
			} else {
				assert.Nil(t, res.EffectivePrice)
			}
		})
	}
}

func TestTrackingService_Track_CacheHitSkipsBackendFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBackend := upstreamMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockBackend, cfg, mockCache, mockOtel)

	mockCache.EXPECT().
		Get(gomock.Any(), "tracking:get:ABCD1234", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			booking, _ := value.(*model.TrackedBooking)
			*booking = activeBooking("ABCD1234")

			return nil
		})

	mockBackend.EXPECT().
		EffectivePrice(gomock.Any(), int64(7), "2030-06-15").
		Return(850.0, nil)

	res, err := svc.Track(context.Background(), "ABCD1234")

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, model.StatusActive, res.Status)
}

func TestTrackingService_Track_SupersededLookupDoesNotCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBackend := upstreamMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockBackend, cfg, mockCache, mockOtel)

	started := make(chan struct{})
	release := make(chan struct{})

	mockCache.EXPECT().
		Get(gomock.Any(), "tracking:get:ABCD1234", gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)

	// The first lookup blocks inside the backend call until a second lookup
	// for the same code has fully completed, so its response comes back stale.
	mockBackend.EXPECT().
		TrackBooking(gomock.Any(), "ABCD1234").
		DoAndReturn(func(context.Context, string) (model.TrackedBooking, error) {
			close(started)
			<-release

			return activeBooking("ABCD1234"), nil
		})

	mockBackend.EXPECT().
		TrackBooking(gomock.Any(), "ABCD1234").
		Return(activeBooking("ABCD1234"), nil)

	// Exactly one save: the superseding lookup writes, the stale one must not.
	mockCache.EXPECT().
		Save(gomock.Any(), "tracking:get:ABCD1234", gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	mockBackend.EXPECT().
		EffectivePrice(gomock.Any(), int64(7), "2030-06-15").
		Return(850.0, nil).
		Times(2)

	staleDone := make(chan struct{})

	go func() {
		defer close(staleDone)

		_, err := svc.Track(context.Background(), "ABCD1234")
		assert.NoError(t, err)
	}()

	<-started

	_, err := svc.Track(context.Background(), "ABCD1234")
	assert.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	close(release)
	<-staleDone

	time.Sleep(10 * time.Millisecond)
}

func TestTrackingService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBackend := upstreamMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockBackend, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		code      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:      "code with wrong length rejected before any backend call",
			code:      "TOOLONGCODE",
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "successful cancel drops the cached booking",
			code: "ABCD1234",
			setupMock: func() {
				mockBackend.EXPECT().
					CancelBooking(gomock.Any(), "ABCD1234").
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), "tracking:get:ABCD1234").
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "unknown code maps to booking not found",
			code: "ZZZZ9999",
			setupMock: func() {
				mockBackend.EXPECT().
					CancelBooking(gomock.Any(), "ZZZZ9999").
					Return(failure.NotFound("booking not found"))
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "backend outage surfaces",
			code: "ABCD1234",
			setupMock: func() {
				mockBackend.EXPECT().
					CancelBooking(gomock.Any(), "ABCD1234").
					Return(failure.UpstreamUnavailable("booking backend unreachable"))
			},
			wantErr:  true,
			wantCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Cancel(context.Background(), tt.code)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.code, res.TrackingCode)
			assert.Equal(t, constant.MsgBookingCancelled, res.Message)
		})
	}
}
