package domain

import "time"

// Stage enumerates the workflow stages an order part passes through, in
// order. Each stage carries a typed accessor into the OrderPart record, so
// the stage-to-field mapping is checked at compile time instead of relying
// on string matches against the catalog.
type Stage int

const (
	StagePending Stage = iota
	StageOrderSentToHeadOffice
	StageWaitingForQuotation
	StageBudgetReleased
	StageWaitingForPurchase
	StagePurchaseComplete
	StagePartsSentToFactory
	// StageOrderComplete is terminal. Its completion mirrors the factory
	// receipt date; no action is offered once it is reached.
	StageOrderComplete
)

// Actor identifies which role owns a stage's completing action.
type Actor string

const (
	ActorFactoryStorage Actor = "factory storage"
	ActorHeadOffice     Actor = "head office"
	ActorFactory        Actor = "factory"

	// ActorUnknown is the placeholder reported when no actor was recorded.
	ActorUnknown Actor = "-"
)

var stageNames = map[Stage]string{
	StagePending:               "Pending",
	StageOrderSentToHeadOffice: "Order Sent To Head Office",
	StageWaitingForQuotation:   "Waiting For Quotation",
	StageBudgetReleased:        "Budget Released",
	StageWaitingForPurchase:    "Waiting For Purchase",
	StagePurchaseComplete:      "Purchase Complete",
	StagePartsSentToFactory:    "Parts Sent To Factory",
	StageOrderComplete:         "Order Complete",
}

// Stages returns every stage in workflow order.
func Stages() []Stage {
	return []Stage{
		StagePending,
		StageOrderSentToHeadOffice,
		StageWaitingForQuotation,
		StageBudgetReleased,
		StageWaitingForPurchase,
		StagePurchaseComplete,
		StagePartsSentToFactory,
		StageOrderComplete,
	}
}

// StageByName resolves a catalog status name to its stage.
// Returns false for names the workflow does not know.
func StageByName(name string) (Stage, bool) {
	for stage, n := range stageNames {
		if n == name {
			return stage, true
		}
	}
	return 0, false
}

func (s Stage) Name() string { return stageNames[s] }

// Ordinal returns the 1-based position of the stage in the catalog sequence.
func (s Stage) Ordinal() int { return int(s) + 1 }

func (s Stage) String() string { return s.Name() }

// Owner returns the role that performs the action completing this stage.
func (s Stage) Owner() Actor {
	switch s {
	case StagePending:
		return ActorFactoryStorage
	case StageOrderSentToHeadOffice, StageWaitingForQuotation, StageBudgetReleased,
		StageWaitingForPurchase, StagePurchaseComplete:
		return ActorHeadOffice
	case StagePartsSentToFactory, StageOrderComplete:
		return ActorFactory
	default:
		return ActorUnknown
	}
}

// CompletedIn reports whether this stage's milestone is satisfied on the
// given record. A nil record is treated as entirely incomplete.
func (s Stage) CompletedIn(p *OrderPart) bool {
	if p == nil {
		return false
	}
	switch s {
	case StagePending:
		return p.PendingOrderApproved()
	case StageOrderSentToHeadOffice:
		return p.OfficeOrderApproved()
	case StageWaitingForQuotation:
		return p.Vendor() != nil && p.UnitCost() != nil
	case StageBudgetReleased:
		return p.BudgetApproved()
	case StageWaitingForPurchase:
		return p.PurchasedDate() != nil
	case StagePurchaseComplete:
		return p.SentByOfficeDate() != nil
	case StagePartsSentToFactory, StageOrderComplete:
		return p.ReceivedByFactoryDate() != nil
	default:
		return false
	}
}

// CompletedAt returns the timestamp recorded for this stage's milestone,
// or nil for milestones that only carry a boolean flag.
func (s Stage) CompletedAt(p *OrderPart) *time.Time {
	if p == nil {
		return nil
	}
	switch s {
	case StageWaitingForPurchase:
		return p.PurchasedDate()
	case StagePurchaseComplete:
		return p.SentByOfficeDate()
	case StagePartsSentToFactory, StageOrderComplete:
		return p.ReceivedByFactoryDate()
	default:
		return nil
	}
}
