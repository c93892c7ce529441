package push

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"courtside/config"
	"courtside/internal/events"
)

// Listener holds the persistent socket subscription to the booking backend's
// push channel. Every decoded frame is handed to the event dispatcher; a
// dropped connection is redialed after a fixed delay.
type Listener struct {
	url            string
	enabled        bool
	reconnectDelay time.Duration
	dispatcher     *events.Dispatcher
}

func New(cfg *config.Config, dispatcher *events.Dispatcher) *Listener {
	return &Listener{
		url:            cfg.Upstream.PushURL,
		enabled:        cfg.Upstream.Push.Enable,
		reconnectDelay: time.Duration(cfg.Upstream.Push.ReconnectDelaySeconds) * time.Second,
		dispatcher:     dispatcher,
	}
}

// Run blocks until the context is cancelled. Intended to be started once as a
// background goroutine from main.
func (l *Listener) Run(ctx context.Context) {
	if !l.enabled || l.url == "" {
		log.Info().Msg("Push channel disabled, cache invalidation relies on TTL expiry only")

		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if err := l.listen(ctx); err != nil {
			log.Error().Err(err).Str("url", l.url).Msg("push channel connection lost")
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(l.reconnectDelay):
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, l.url, nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	log.Info().Str("url", l.url).Msg("Connected to push channel")

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	for {
		_, frame, err := conn.ReadMessage()
		if err != nil {
			return err
		}

		event := events.Event{}
		if err := json.Unmarshal(frame, &event); err != nil {
			log.Warn().Err(err).Msg("skipping malformed push frame")

			continue
		}

		l.dispatcher.Dispatch(ctx, event)
	}
}
