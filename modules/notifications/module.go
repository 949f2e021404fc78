// Package notifications reacts to workflow events with user-facing notices.
package notifications

import (
	"log/slog"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/notifications/application/eventhandlers"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/events"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/events/contracts"
)

// Module represents the notification module entry point.
type Module struct{}

type Config struct {
	EventSubscriber events.Subscriber
	Logger          *slog.Logger
}

// New initializes the notification module and subscribes to events.
func New(cfg Config) *Module {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("module", "notifications")

	advancedHandler := eventhandlers.NewOrderPartAdvancedHandler(logger)
	deniedHandler := eventhandlers.NewOrderPartDeniedHandler(logger)

	if err := cfg.EventSubscriber.Subscribe(contracts.OrderPartAdvancedEventType, advancedHandler); err != nil {
		logger.Error("failed to subscribe to order part advanced event", slog.Any("error", err))
	}
	if err := cfg.EventSubscriber.Subscribe(contracts.OrderPartDeniedEventType, deniedHandler); err != nil {
		logger.Error("failed to subscribe to order part denied event", slog.Any("error", err))
	}

	return &Module{}
}
