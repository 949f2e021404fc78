package eventbus_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/internal/platform/eventbus"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/events"
)

const testEventType events.EventType = "test.Event"

type testEvent struct {
	events.BaseEvent
}

func newTestEvent() testEvent {
	return testEvent{BaseEvent: events.NewBaseEvent(testEventType, "aggregate-1")}
}

func TestTransactionalPublisher_FlushDeliversBufferedEvents(t *testing.T) {
	registry := eventbus.NewEventHandlerRegistry(slog.Default())

	var handled []string
	_ = registry.Subscribe(testEventType, eventbus.HandlerFunc(func(ctx context.Context, event events.Event) error {
		handled = append(handled, event.EventID())
		return nil
	}))

	publisher := eventbus.NewTransactionalPublisher(registry, 10)

	ev1 := newTestEvent()
	ev2 := newTestEvent()
	_ = publisher.Publish(context.Background(), ev1)
	_ = publisher.Publish(context.Background(), ev2)

	if got := publisher.PendingCount(); got != 2 {
		t.Fatalf("expected 2 pending events before flush, got %d", got)
	}

	if err := publisher.Flush(context.Background()); err != nil {
		t.Fatalf("flush failed: %v", err)
	}

	if len(handled) != 2 {
		t.Fatalf("expected 2 handled events, got %d", len(handled))
	}
	if handled[0] != ev1.EventID() || handled[1] != ev2.EventID() {
		t.Error("events delivered out of publish order")
	}
	if got := publisher.PendingCount(); got != 0 {
		t.Errorf("expected empty buffer after flush, got %d", got)
	}
}

func TestTransactionalPublisher_HandlerErrorAbortsFlush(t *testing.T) {
	registry := eventbus.NewEventHandlerRegistry(slog.Default())

	errHandler := errors.New("handler failed")
	_ = registry.Subscribe(testEventType, eventbus.HandlerFunc(func(ctx context.Context, event events.Event) error {
		return errHandler
	}))

	publisher := eventbus.NewTransactionalPublisher(registry, 10)
	_ = publisher.Publish(context.Background(), newTestEvent())

	if err := publisher.Flush(context.Background()); !errors.Is(err, errHandler) {
		t.Fatalf("expected handler error, got %v", err)
	}
}

func TestTransactionalPublisher_DepthLimit(t *testing.T) {
	registry := eventbus.NewEventHandlerRegistry(slog.Default())
	publisher := eventbus.NewTransactionalPublisher(registry, 2)

	// Handler republishes on every delivery, so the flush never drains.
	_ = registry.Subscribe(testEventType, eventbus.HandlerFunc(func(ctx context.Context, event events.Event) error {
		return publisher.Publish(ctx, newTestEvent())
	}))

	_ = publisher.Publish(context.Background(), newTestEvent())

	if err := publisher.Flush(context.Background()); !errors.Is(err, eventbus.ErrEventProcessingDepthExceeded) {
		t.Fatalf("expected depth exceeded error, got %v", err)
	}
}
