package domain

import "time"

// Visibility predicates. Each one is a pure, total function over the narrow
// slice of state it documents, encoding a single workflow edge's
// precondition. The front-end uses these to decide which next-action control
// to offer; the advance guard is what actually enforces order on writes.

// ShowPendingOrderApprove reports whether storage approval should be offered.
func ShowPendingOrderApprove(stage Stage, approved bool) bool {
	return stage == StagePending && !approved
}

// ShowOfficeOrderApprove reports whether head office approval should be offered.
func ShowOfficeOrderApprove(stage Stage, approved bool) bool {
	return stage == StageOrderSentToHeadOffice && !approved
}

// ShowOfficeOrderDeny reports whether the head office may deny the order part.
func ShowOfficeOrderDeny(stage Stage) bool {
	return stage == StageOrderSentToHeadOffice
}

// ShowOfficeOrderChangeQty reports whether the head office may adjust quantity.
func ShowOfficeOrderChangeQty(stage Stage) bool {
	return stage == StageOrderSentToHeadOffice
}

// ShowQuotation reports whether quotation entry should be offered. Partially
// entered costing (vendor without cost, or vice versa) blocks the action
// until the record is normalized.
func ShowQuotation(stage Stage, vendor *string, unitCost *float64) bool {
	return stage == StageWaitingForQuotation && vendor == nil && unitCost == nil
}

// ShowBudgetApprove reports whether budget approval should be offered.
func ShowBudgetApprove(stage Stage, approved bool) bool {
	return stage == StageBudgetReleased && !approved
}

// ShowPurchase reports whether recording the purchase should be offered.
func ShowPurchase(stage Stage, purchasedAt *time.Time) bool {
	return stage == StageWaitingForPurchase && purchasedAt == nil
}

// ShowSentToFactory reports whether recording dispatch should be offered.
func ShowSentToFactory(stage Stage, sentAt *time.Time) bool {
	return stage == StagePurchaseComplete && sentAt == nil
}

// ShowReceivedByFactory reports whether recording receipt should be offered.
func ShowReceivedByFactory(stage Stage, receivedAt *time.Time) bool {
	return stage == StagePartsSentToFactory && receivedAt == nil
}

// ShowSampleReceived reports whether office sample receipt should be offered.
// The sample flow runs beside the stage sequence.
func ShowSampleReceived(sampleSentToOffice, sampleReceivedByOffice bool) bool {
	return sampleSentToOffice && !sampleReceivedByOffice
}

// Action names a next-action control the caller may offer.
type Action string

const (
	ActionApprovePendingOrder    Action = "approve_pending_order"
	ActionApproveOfficeOrder     Action = "approve_office_order"
	ActionDenyOrder              Action = "deny_order"
	ActionChangeQuantity         Action = "change_quantity"
	ActionRecordQuotation        Action = "record_quotation"
	ActionApproveBudget          Action = "approve_budget"
	ActionMarkPurchased          Action = "mark_purchased"
	ActionMarkSentToFactory      Action = "mark_sent_to_factory"
	ActionMarkReceivedByFactory  Action = "mark_received_by_factory"
	ActionMarkSampleReceived     Action = "mark_sample_received"
)

// AvailableActions returns the controls legal for the order part's current
// state. Only the lowest incomplete stage contributes actions, so state left
// inconsistent by out-of-band edits never offers two competing transitions.
// The sample-received control is independent of the stage sequence and may
// appear alongside any stage action.
func AvailableActions(p *OrderPart) []Action {
	var actions []Action

	stage := p.CurrentStage()
	switch stage {
	case StagePending:
		if ShowPendingOrderApprove(stage, p.PendingOrderApproved()) {
			actions = append(actions, ActionApprovePendingOrder)
		}
	case StageOrderSentToHeadOffice:
		if ShowOfficeOrderApprove(stage, p.OfficeOrderApproved()) {
			actions = append(actions, ActionApproveOfficeOrder)
		}
		if ShowOfficeOrderDeny(stage) {
			actions = append(actions, ActionDenyOrder)
		}
		if ShowOfficeOrderChangeQty(stage) {
			actions = append(actions, ActionChangeQuantity)
		}
	case StageWaitingForQuotation:
		if ShowQuotation(stage, p.Vendor(), p.UnitCost()) {
			actions = append(actions, ActionRecordQuotation)
		}
	case StageBudgetReleased:
		if ShowBudgetApprove(stage, p.BudgetApproved()) {
			actions = append(actions, ActionApproveBudget)
		}
	case StageWaitingForPurchase:
		if ShowPurchase(stage, p.PurchasedDate()) {
			actions = append(actions, ActionMarkPurchased)
		}
	case StagePurchaseComplete:
		if ShowSentToFactory(stage, p.SentByOfficeDate()) {
			actions = append(actions, ActionMarkSentToFactory)
		}
	case StagePartsSentToFactory:
		if ShowReceivedByFactory(stage, p.ReceivedByFactoryDate()) {
			actions = append(actions, ActionMarkReceivedByFactory)
		}
	case StageOrderComplete:
		// terminal, nothing to offer
	}

	if ShowSampleReceived(p.SampleSentToOffice(), p.SampleReceivedByOffice()) {
		actions = append(actions, ActionMarkSampleReceived)
	}

	return actions
}
