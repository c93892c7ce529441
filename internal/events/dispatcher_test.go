package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	otelMocks "courtside/infras/otel/mocks"
	"courtside/internal/events"
	cacheMocks "courtside/shared/cache/mocks"
)

func newDispatcher(t *testing.T) (*events.Dispatcher, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	return events.NewDispatcher(mockCache, otelMocks.NewOtel()), mockCache
}

func TestDispatch_FutsalEventsInvalidateVenueCaches(t *testing.T) {
	for _, kind := range []events.Kind{events.FutsalCreated, events.FutsalUpdated, events.FutsalDeleted} {
		t.Run(string(kind), func(t *testing.T) {
			dispatcher, mockCache := newDispatcher(t)

			mockCache.EXPECT().Clear(gomock.Any(), "venue:gets*").Return(nil)
			mockCache.EXPECT().Clear(gomock.Any(), "venue:specials*").Return(nil)
			mockCache.EXPECT().Clear(gomock.Any(), "venue:price*").Return(nil)

			dispatcher.Dispatch(context.Background(), events.Event{Kind: kind})
		})
	}
}

func TestDispatch_SpecialPriceEventsInvalidatePriceCaches(t *testing.T) {
	dispatcher, mockCache := newDispatcher(t)

	mockCache.EXPECT().Clear(gomock.Any(), "venue:specials*").Return(nil)
	mockCache.EXPECT().Clear(gomock.Any(), "venue:price*").Return(nil)
	mockCache.EXPECT().Clear(gomock.Any(), "venue:gets*").Return(nil)

	dispatcher.Dispatch(context.Background(), events.Event{Kind: events.SpecialPriceUpdated})
}

func TestDispatch_RatingEventsInvalidateVenueList(t *testing.T) {
	dispatcher, mockCache := newDispatcher(t)

	mockCache.EXPECT().Clear(gomock.Any(), "venue:gets*").Return(nil)

	dispatcher.Dispatch(context.Background(), events.Event{Kind: events.RatingCreated})
}

func TestDispatch_BookingEventWithCodeDeletesSingleEntry(t *testing.T) {
	dispatcher, mockCache := newDispatcher(t)

	payload, _ := json.Marshal(events.BookingPayload{TrackingCode: "AB123456"})

	mockCache.EXPECT().Delete(gomock.Any(), "tracking:get:AB123456").Return(nil)

	dispatcher.Dispatch(context.Background(), events.Event{
		Kind:    events.BookingUpdated,
		Payload: payload,
	})
}

func TestDispatch_BookingEventWithoutCodeClearsPrefix(t *testing.T) {
	dispatcher, mockCache := newDispatcher(t)

	mockCache.EXPECT().Clear(gomock.Any(), "tracking:get*").Return(nil)

	dispatcher.Dispatch(context.Background(), events.Event{Kind: events.BookingDeleted})
}

func TestDispatch_UserEventsAreIgnored(t *testing.T) {
	// No cache expectations: any call would fail the controller.
	dispatcher, _ := newDispatcher(t)

	for _, kind := range []events.Kind{
		events.UserCreated, events.UserBlocked, events.FutsalAdminUpdated,
	} {
		dispatcher.Dispatch(context.Background(), events.Event{Kind: kind})
	}
}

func TestDispatch_UnknownEventIsIgnored(t *testing.T) {
	dispatcher, _ := newDispatcher(t)

	dispatcher.Dispatch(context.Background(), events.Event{Kind: events.Kind("somethingNew")})
}

func TestDispatch_CacheErrorsAreSwallowed(t *testing.T) {
	dispatcher, mockCache := newDispatcher(t)

	mockCache.EXPECT().Clear(gomock.Any(), "venue:gets*").Return(errors.New("redis down"))

	// Must not panic or propagate: stale caches self-heal on TTL.
	dispatcher.Dispatch(context.Background(), events.Event{Kind: events.RatingDeleted})
}

func TestEventDecode(t *testing.T) {
	tests := []struct {
		name    string
		event   events.Event
		want    any
		wantErr bool
	}{
		{
			name: "booking payload",
			event: events.Event{
				Kind:    events.BookingCreated,
				Payload: json.RawMessage(`{"tracking_code":"AB123456","futsal_id":7}`),
			},
			want: &events.BookingPayload{TrackingCode: "AB123456", FutsalID: 7},
		},
		{
			name: "futsal payload",
			event: events.Event{
				Kind:    events.FutsalUpdated,
				Payload: json.RawMessage(`{"futsal_id":3}`),
			},
			want: &events.FutsalPayload{FutsalID: 3},
		},
		{
			name:  "absent payload yields zero value",
			event: events.Event{Kind: events.RatingDeleted},
			want:  &events.RatingPayload{},
		},
		{
			name: "malformed payload",
			event: events.Event{
				Kind:    events.BookingCreated,
				Payload: json.RawMessage(`{`),
			},
			wantErr: true,
		},
		{
			name:    "unknown kind",
			event:   events.Event{Kind: events.Kind("mystery")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.event.Decode()

			if tt.wantErr {
				if err == nil {
					t.Error("expected decode error, got nil")
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			gotJSON, _ := json.Marshal(got)
			wantJSON, _ := json.Marshal(tt.want)

			if string(gotJSON) != string(wantJSON) {
				t.Errorf("expected %s, got %s", wantJSON, gotJSON)
			}
		})
	}
}
