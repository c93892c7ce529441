package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"courtside/config"
	"courtside/infras/otel/mocks"
	upstreamMocks "courtside/infras/upstream/mocks"
	"courtside/internal/domains/venue/model"
	"courtside/internal/domains/venue/model/dto"
	"courtside/internal/domains/venue/service"
	cacheMocks "courtside/shared/cache/mocks"
)

func coord(v float64) *float64 {
	return &v
}

func TestVenueService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBackend := upstreamMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockBackend, cfg, mockCache, mockOtel)

	venues := []model.Venue{
		{ID: 1, Name: "A", City: "Kathmandu", Location: "Baneshwor", PricePerHour: 1000, AverageRating: rating(4.5), TotalRatings: 12, Latitude: coord(27.7), Longitude: coord(85.33)},
		{ID: 2, Name: "B", City: "Lalitpur", Location: "Pulchowk", PricePerHour: 800, AverageRating: rating(4.9), TotalRatings: 30},
	}

	tests := []struct {
		name      string
		state     dto.FilterState
		viewer    dto.Viewer
		setupMock func()
		wantErr   bool
		wantIDs   []int64
	}{
		{
			name:  "cache miss fetches from backend",
			state: dto.FilterState{},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockBackend.EXPECT().
					Venues(gomock.Any()).
					Return(venues, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantIDs: []int64{1, 2},
		},
		{
			name:  "filter and sort applied after fetch",
			state: dto.FilterState{SortByPrice: "low-to-high"},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockBackend.EXPECT().
					Venues(gomock.Any()).
					Return(venues, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantIDs: []int64{2, 1},
		},
		{
			name:  "backend error surfaces",
			state: dto.FilterState{},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockBackend.EXPECT().
					Venues(gomock.Any()).
					Return(nil, errors.New("upstream down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.List(context.Background(), tt.state, tt.viewer)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)

			gotIDs := make([]int64, 0, len(res.Venues))
			for _, venue := range res.Venues {
				gotIDs = append(gotIDs, venue.ID)
			}

			assert.Equal(t, tt.wantIDs, gotIDs)
			assert.Equal(t, len(tt.wantIDs), res.Display.TotalFiltered)
		})
	}
}

func TestVenueService_List_AttachesDistances(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBackend := upstreamMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockBackend, cfg, mockCache, mockOtel)

	venues := []model.Venue{
		{ID: 1, Name: "A", City: "Kathmandu", Location: "Baneshwor", Latitude: coord(27.7172), Longitude: coord(85.324)},
		{ID: 2, Name: "B", City: "Lalitpur", Location: "Pulchowk"},
	}

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	mockBackend.EXPECT().
		Venues(gomock.Any()).
		Return(venues, nil)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	viewer := dto.Viewer{Latitude: coord(27.6710), Longitude: coord(85.4298)}

	res, err := svc.List(context.Background(), dto.FilterState{}, viewer)

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.NotNil(t, res.Venues[0].DistanceKm)
	assert.InDelta(t, 11.6, *res.Venues[0].DistanceKm, 0.5)
	// Venues without coordinates stay distance-less instead of failing the request.
	assert.Nil(t, res.Venues[1].DistanceKm)
}

func TestVenueService_List_RatingSuppressedWithoutRatings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBackend := upstreamMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockBackend, cfg, mockCache, mockOtel)

	venues := []model.Venue{
		{ID: 1, Name: "A", City: "Kathmandu", Location: "Baneshwor", AverageRating: rating(4.5), TotalRatings: 0},
		{ID: 2, Name: "B", City: "Lalitpur", Location: "Pulchowk", AverageRating: rating(4.9), TotalRatings: 3},
	}

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	mockBackend.EXPECT().
		Venues(gomock.Any()).
		Return(venues, nil)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.List(context.Background(), dto.FilterState{}, dto.Viewer{})

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Nil(t, res.Venues[0].AverageRating)
	assert.NotNil(t, res.Venues[1].AverageRating)
}

func TestVenueService_SpecialPrices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBackend := upstreamMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockBackend, cfg, mockCache, mockOtel)

	specials := []model.SpecialPrice{
		{ID: 1, FutsalID: 7, Type: model.SpecialPriceTypeDate, Date: strPtr("2026-01-20"), Price: 900},
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantLen   int
	}{
		{
			name: "cache miss fetches from backend",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockBackend.EXPECT().
					SpecialPrices(gomock.Any(), int64(7)).
					Return(specials, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantLen: 1,
		},
		{
			name: "backend error surfaces",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockBackend.EXPECT().
					SpecialPrices(gomock.Any(), int64(7)).
					Return(nil, errors.New("upstream down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.SpecialPrices(context.Background(), 7)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Len(t, res, tt.wantLen)
		})
	}
}

func TestVenueService_EffectivePrice(t *testing.T) {
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
		date      string
		setupMock func()
		wantErr   bool
		wantPrice float64
	}{
		{
			name: "backend price returned on cache miss",
			date: "2026-01-20",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockBackend.EXPECT().
					EffectivePrice(gomock.Any(), int64(7), "2026-01-20").
					Return(850.0, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantPrice: 850,
		},
		{
			name:      "malformed date rejected before hitting backend",
			date:      "20-01-2026",
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "price endpoint outage falls back to the applicable special",
			date: "2026-01-20",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockBackend.EXPECT().
					EffectivePrice(gomock.Any(), int64(7), "2026-01-20").
					Return(0.0, errors.New("upstream down"))

				mockBackend.EXPECT().
					SpecialPrices(gomock.Any(), int64(7)).
					Return([]model.SpecialPrice{
						{ID: 1, FutsalID: 7, Type: model.SpecialPriceTypeDate, Date: strPtr("2026-01-20"), Price: 900},
					}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantPrice: 900,
		},
		{
			name: "price endpoint outage without an override falls back to the base hourly rate",
			date: "2026-01-20",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(3)

				mockBackend.EXPECT().
					EffectivePrice(gomock.Any(), int64(7), "2026-01-20").
					Return(0.0, errors.New("upstream down"))

				mockBackend.EXPECT().
					SpecialPrices(gomock.Any(), int64(7)).
					Return(nil, nil)

				mockBackend.EXPECT().
					Venues(gomock.Any()).
					Return([]model.Venue{
						{ID: 7, Name: "Arena One", City: "Kathmandu", Location: "Baneshwor", PricePerHour: 1000},
					}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantPrice: 1000,
		},
		{
			name: "error surfaces when the local fallback has no data either",
			date: "2026-01-20",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockBackend.EXPECT().
					EffectivePrice(gomock.Any(), int64(7), "2026-01-20").
					Return(0.0, errors.New("upstream down"))

				mockBackend.EXPECT().
					SpecialPrices(gomock.Any(), int64(7)).
					Return(nil, errors.New("upstream down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.EffectivePrice(context.Background(), 7, tt.date)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantPrice, res.EffectivePrice)
			assert.Equal(t, tt.date, res.Date)
		})
	}
}

func TestVenueService_Distance(t *testing.T) {
	mockOtel := mocks.NewOtel()
	cfg := &config.Config{}

	svc := service.New(nil, cfg, nil, mockOtel)

	res := svc.Distance(context.Background(), 27.7172, 85.3240, 27.6710, 85.4298)

	assert.InDelta(t, 11.6, res.DistanceKm, 0.5)
}
