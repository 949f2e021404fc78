// Package eventhandlers contains the notification module's event subscribers.
package eventhandlers

import (
	"context"
	"log/slog"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/events"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/events/contracts"
)

// OrderPartAdvancedHandler notifies the owning role when an order part
// completes a workflow stage.
//
// This handler performs external side effects (notification delivery) and
// must not run within a store transaction; it is dispatched via the
// in-memory bus after commit.
type OrderPartAdvancedHandler struct {
	logger *slog.Logger
}

func NewOrderPartAdvancedHandler(logger *slog.Logger) *OrderPartAdvancedHandler {
	return &OrderPartAdvancedHandler{logger: logger}
}

func (h *OrderPartAdvancedHandler) Handle(ctx context.Context, event events.Event) error {
	advanced, ok := event.(contracts.OrderPartAdvancedEvent)
	if !ok {
		h.logger.Warn("unexpected event payload", slog.String("event_type", event.EventType().String()))
		return nil
	}

	// Mock delivery; a real deployment would push to the dashboard feed.
	h.logger.Info("notifying stage completion",
		slog.String("order_part_id", advanced.OrderPartID),
		slog.String("order_id", advanced.OrderID),
		slog.String("stage", advanced.Stage),
	)
	return nil
}

// OrderPartDeniedHandler notifies the requesting factory when head office
// denies an order part.
type OrderPartDeniedHandler struct {
	logger *slog.Logger
}

func NewOrderPartDeniedHandler(logger *slog.Logger) *OrderPartDeniedHandler {
	return &OrderPartDeniedHandler{logger: logger}
}

func (h *OrderPartDeniedHandler) Handle(ctx context.Context, event events.Event) error {
	denied, ok := event.(contracts.OrderPartDeniedEvent)
	if !ok {
		h.logger.Warn("unexpected event payload", slog.String("event_type", event.EventType().String()))
		return nil
	}

	h.logger.Info("notifying order denial",
		slog.String("order_part_id", denied.OrderPartID),
		slog.String("order_id", denied.OrderID),
	)
	return nil
}
