// Package contracts defines public event contracts for inter-module communication.
// Modules should import event types from here, NOT from other module's domain packages.
package contracts

import "github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/events"

const (
	OrderPartAdvancedEventType events.EventType = "orders.OrderPartAdvanced"
	OrderPartDeniedEventType   events.EventType = "orders.OrderPartDenied"
)

// OrderPartAdvancedEvent is published whenever an order part completes a
// workflow stage.
type OrderPartAdvancedEvent struct {
	events.BaseEvent
	OrderPartID string
	OrderID     string
	Stage       string
}

// OrderPartDeniedEvent is published when the head office denies an order part
// and the record is removed.
type OrderPartDeniedEvent struct {
	events.BaseEvent
	OrderPartID string
	OrderID     string
}
