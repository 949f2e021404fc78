package domain_test

import (
	"testing"
	"time"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/orders/domain"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/types"
)

func TestPredicates_FalseOutsideDocumentedStage(t *testing.T) {
	now := time.Now()
	for _, stage := range domain.Stages() {
		if stage != domain.StagePending && domain.ShowPendingOrderApprove(stage, false) {
			t.Errorf("ShowPendingOrderApprove true at %q", stage)
		}
		if stage != domain.StageOrderSentToHeadOffice {
			if domain.ShowOfficeOrderApprove(stage, false) {
				t.Errorf("ShowOfficeOrderApprove true at %q", stage)
			}
			if domain.ShowOfficeOrderDeny(stage) {
				t.Errorf("ShowOfficeOrderDeny true at %q", stage)
			}
			if domain.ShowOfficeOrderChangeQty(stage) {
				t.Errorf("ShowOfficeOrderChangeQty true at %q", stage)
			}
		}
		if stage != domain.StageWaitingForQuotation && domain.ShowQuotation(stage, nil, nil) {
			t.Errorf("ShowQuotation true at %q", stage)
		}
		if stage != domain.StageBudgetReleased && domain.ShowBudgetApprove(stage, false) {
			t.Errorf("ShowBudgetApprove true at %q", stage)
		}
		if stage != domain.StageWaitingForPurchase && domain.ShowPurchase(stage, nil) {
			t.Errorf("ShowPurchase true at %q", stage)
		}
		if stage != domain.StagePurchaseComplete && domain.ShowSentToFactory(stage, nil) {
			t.Errorf("ShowSentToFactory true at %q", stage)
		}
		if stage != domain.StagePartsSentToFactory && domain.ShowReceivedByFactory(stage, nil) {
			t.Errorf("ShowReceivedByFactory true at %q", stage)
		}
	}

	// Satisfied milestones also turn the predicate off at its own stage.
	if domain.ShowPendingOrderApprove(domain.StagePending, true) {
		t.Error("ShowPendingOrderApprove true after approval")
	}
	if domain.ShowPurchase(domain.StageWaitingForPurchase, &now) {
		t.Error("ShowPurchase true after purchase date set")
	}
}

func TestShowQuotation_PartialDataBlocksAction(t *testing.T) {
	vendor := "Acme"

	if !domain.ShowQuotation(domain.StageWaitingForQuotation, nil, nil) {
		t.Error("expected quotation action with no costing data")
	}
	if domain.ShowQuotation(domain.StageWaitingForQuotation, &vendor, nil) {
		t.Error("vendor set without unit cost must block the action")
	}
}

func TestShowSampleReceived(t *testing.T) {
	if !domain.ShowSampleReceived(true, false) {
		t.Error("expected sample action when sent and not yet received")
	}
	if domain.ShowSampleReceived(false, false) {
		t.Error("no sample action when nothing was sent")
	}
	if domain.ShowSampleReceived(true, true) {
		t.Error("no sample action after receipt")
	}
}

func TestMonotonicity_PurchaseTrueImpliesLaterStagesFalse(t *testing.T) {
	part := newTestPart(t)
	completeThrough(t, part, domain.StageWaitingForPurchase)

	stage := part.CurrentStage()
	if !domain.ShowPurchase(stage, part.PurchasedDate()) {
		t.Fatal("expected purchase action at Waiting For Purchase")
	}
	if domain.ShowSentToFactory(stage, part.SentByOfficeDate()) {
		t.Error("sent action must be false while purchase is pending")
	}
	if domain.ShowReceivedByFactory(stage, part.ReceivedByFactoryDate()) {
		t.Error("received action must be false while purchase is pending")
	}
}

func TestAvailableActions_FreshPart(t *testing.T) {
	part := newTestPart(t)

	actions := domain.AvailableActions(part)
	if len(actions) != 1 || actions[0] != domain.ActionApprovePendingOrder {
		t.Fatalf("expected only %q, got %v", domain.ActionApprovePendingOrder, actions)
	}
}

func TestAvailableActions_ScenarioApprovedThroughBudget(t *testing.T) {
	// approved_pending_order, approved_office_order, quotation and
	// approved_budget all set; purchase date unset.
	part := newTestPart(t)
	completeThrough(t, part, domain.StageWaitingForPurchase)

	actions := domain.AvailableActions(part)
	if len(actions) != 1 || actions[0] != domain.ActionMarkPurchased {
		t.Fatalf("expected only %q, got %v", domain.ActionMarkPurchased, actions)
	}
}

func TestAvailableActions_OfficeStageOffersDenyAndQty(t *testing.T) {
	part := newTestPart(t)
	completeThrough(t, part, domain.StageOrderSentToHeadOffice)

	got := domain.AvailableActions(part)
	want := []domain.Action{
		domain.ActionApproveOfficeOrder,
		domain.ActionDenyOrder,
		domain.ActionChangeQuantity,
	}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestAvailableActions_TerminalStageOffersNothing(t *testing.T) {
	part := newTestPart(t)
	completeThrough(t, part, domain.StageOrderComplete)

	if actions := domain.AvailableActions(part); len(actions) != 0 {
		t.Fatalf("expected no actions at terminal stage, got %v", actions)
	}
}

func TestAvailableActions_OutOfBandEditLowestStageWins(t *testing.T) {
	// Simulate a record edited out-of-band: budget approved while the office
	// approval is missing. Only the lowest incomplete stage's action shows.
	now := time.Now().UTC()
	part := domain.ReconstituteOrderPart(
		types.NewOrderPartID(), types.NewOrderID(), types.NewPartID(), 2,
		nil, nil, nil,
		nil, nil,
		false, false,
		true, false, true,
		false, false,
		nil, nil, nil,
		now, now,
	)

	got := domain.AvailableActions(part)
	want := []domain.Action{
		domain.ActionApproveOfficeOrder,
		domain.ActionDenyOrder,
		domain.ActionChangeQuantity,
	}
	if len(got) != len(want) {
		t.Fatalf("expected office-stage actions only, got %v", got)
	}
}
