package eventbus

import (
	"context"
	"log/slog"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/events"
)

// InMemoryEventBus implements a simple synchronous event bus.
// Events are delivered synchronously in the same goroutine, outside of any
// transaction. Use this for handlers with external side effects.
type InMemoryEventBus struct {
	registry *EventHandlerRegistry
	logger   *slog.Logger
}

func New(logger *slog.Logger) *InMemoryEventBus {
	return &InMemoryEventBus{
		registry: NewEventHandlerRegistry(logger),
		logger:   logger,
	}
}

// Publish implements events.Publisher.
func (b *InMemoryEventBus) Publish(ctx context.Context, event events.Event) error {
	handlers := b.registry.HandlersFor(event.EventType())

	b.logger.Debug("publishing event", slog.String("event_type", event.EventType().String()), slog.String("event_id", event.EventID()), slog.Int("handler_count", len(handlers)))

	for _, handler := range handlers {
		if err := handler.Handle(ctx, event); err != nil {
			b.logger.Error("event handler failed", slog.String("event_type", event.EventType().String()), slog.String("event_id", event.EventID()), slog.Any("error", err))
			// Continue processing other handlers even if one fails
		}
	}

	return nil
}

// Subscribe implements events.Subscriber.
func (b *InMemoryEventBus) Subscribe(eventType events.EventType, handler events.Handler) error {
	return b.registry.Subscribe(eventType, handler)
}

// Registry exposes the underlying handler registry so transactional
// publishers can dispatch to the same subscriptions.
func (b *InMemoryEventBus) Registry() HandlerRegistry {
	return b.registry
}

// HandlerFunc is an adapter to use ordinary functions as event handlers.
type HandlerFunc func(ctx context.Context, event events.Event) error

func (f HandlerFunc) Handle(ctx context.Context, event events.Event) error {
	return f(ctx, event)
}

// Compile-time interface checks.
var (
	_ events.Publisher  = (*InMemoryEventBus)(nil)
	_ events.Subscriber = (*InMemoryEventBus)(nil)
)
