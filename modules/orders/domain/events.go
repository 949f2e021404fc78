package domain

import (
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/events"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/events/contracts"
)

// newAdvancedEvent builds the cross-module event for a completed stage.
func newAdvancedEvent(p *OrderPart, stage Stage) events.Event {
	return contracts.OrderPartAdvancedEvent{
		BaseEvent:   events.NewBaseEvent(contracts.OrderPartAdvancedEventType, p.id.String()),
		OrderPartID: p.id.String(),
		OrderID:     p.orderID.String(),
		Stage:       stage.Name(),
	}
}

// NewDeniedEvent builds the cross-module event for a denied (deleted) order
// part. Denial removes the record, so the event is built by the command
// handler rather than collected on the aggregate.
func NewDeniedEvent(p *OrderPart) events.Event {
	return contracts.OrderPartDeniedEvent{
		BaseEvent:   events.NewBaseEvent(contracts.OrderPartDeniedEventType, p.id.String()),
		OrderPartID: p.id.String(),
		OrderID:     p.orderID.String(),
	}
}
