package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/internal/platform/eventbus"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/orders/application/commands"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/orders/domain"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/events"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/events/contracts"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/types"
)

func TestCreateOrderPartHandler_Success(t *testing.T) {
	var inserted *domain.OrderPart
	repo := &mockOrderPartRepository{
		insertFn: func(ctx context.Context, part *domain.OrderPart) error {
			inserted = part
			return nil
		},
	}
	handler := commands.NewCreateOrderPartHandler(repo)

	id, err := handler.Handle(context.Background(), commands.CreateOrderPartCommand{
		OrderID:  types.NewOrderID().String(),
		PartID:   types.NewPartID().String(),
		Quantity: 12,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id == "" {
		t.Error("expected a generated order part ID")
	}
	if inserted == nil {
		t.Fatal("expected Insert to be called")
	}
	if inserted.Quantity() != 12 {
		t.Errorf("expected quantity 12, got %d", inserted.Quantity())
	}
	if got := inserted.CurrentStage(); got != domain.StagePending {
		t.Errorf("expected new part at %s, got %s", domain.StagePending, got)
	}
}

func TestCreateOrderPartHandler_RejectsInvalidQuantity(t *testing.T) {
	handler := commands.NewCreateOrderPartHandler(&mockOrderPartRepository{})

	_, err := handler.Handle(context.Background(), commands.CreateOrderPartCommand{
		OrderID:  types.NewOrderID().String(),
		PartID:   types.NewPartID().String(),
		Quantity: 0,
	})
	if !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Errorf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestApproveOfficeOrderHandler_WritesApprovalAndPublishes(t *testing.T) {
	part := newPartAt(t, domain.StageOrderSentToHeadOffice)
	id := part.ID()

	var approvedID types.OrderPartID
	repo := &mockOrderPartRepository{
		findByIDFn: func(ctx context.Context, got types.OrderPartID) (*domain.OrderPart, error) {
			return part, nil
		},
		setOfficeFn: func(ctx context.Context, got types.OrderPartID, approved bool) error {
			if !approved {
				t.Error("expected approval write with approved=true")
			}
			approvedID = got
			return nil
		},
	}

	registry := newRegistry()
	var received []events.Event
	registry.Subscribe(contracts.OrderPartAdvancedEventType, eventbus.HandlerFunc(func(ctx context.Context, event events.Event) error {
		received = append(received, event)
		return nil
	}))

	handler := commands.NewApproveOfficeOrderHandler(repo, passthroughScope{}, registry)
	if err := handler.Handle(context.Background(), commands.ApproveOfficeOrderCommand{OrderPartID: id.String()}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if approvedID != id {
		t.Errorf("expected write against %s, got %s", id, approvedID)
	}
	if len(received) != 1 {
		t.Fatalf("expected 1 advanced event, got %d", len(received))
	}
	advanced, ok := received[0].(contracts.OrderPartAdvancedEvent)
	if !ok {
		t.Fatalf("unexpected event type %T", received[0])
	}
	if advanced.Stage != domain.StageOrderSentToHeadOffice.Name() {
		t.Errorf("expected stage %q, got %q", domain.StageOrderSentToHeadOffice.Name(), advanced.Stage)
	}
}

func TestApproveOfficeOrderHandler_RejectsOutOfOrder(t *testing.T) {
	// Pending approval has not happened yet, so office approval must refuse.
	part := newPartAt(t, domain.StagePending)
	repo := &mockOrderPartRepository{
		findByIDFn: func(ctx context.Context, id types.OrderPartID) (*domain.OrderPart, error) {
			return part, nil
		},
		setOfficeFn: func(ctx context.Context, id types.OrderPartID, approved bool) error {
			t.Error("write must not happen when the guard rejects")
			return nil
		},
	}

	handler := commands.NewApproveOfficeOrderHandler(repo, passthroughScope{}, newRegistry())
	err := handler.Handle(context.Background(), commands.ApproveOfficeOrderCommand{OrderPartID: part.ID().String()})
	if !errors.Is(err, domain.ErrStageOutOfOrder) {
		t.Errorf("expected ErrStageOutOfOrder, got %v", err)
	}
}

func TestRecordQuotationHandler_WritesCosting(t *testing.T) {
	part := newPartAt(t, domain.StageWaitingForQuotation)

	var gotVendor, gotBrand *string
	var gotCost *float64
	repo := &mockOrderPartRepository{
		findByIDFn: func(ctx context.Context, id types.OrderPartID) (*domain.OrderPart, error) {
			return part, nil
		},
		setCostingFn: func(ctx context.Context, id types.OrderPartID, vendor, brand *string, unitCost *float64) error {
			gotVendor, gotBrand, gotCost = vendor, brand, unitCost
			return nil
		},
	}

	handler := commands.NewRecordQuotationHandler(repo, passthroughScope{}, newRegistry())
	brand := "SKF"
	err := handler.Handle(context.Background(), commands.RecordQuotationCommand{
		OrderPartID: part.ID().String(),
		Vendor:      "Acme Supplies",
		Brand:       &brand,
		UnitCost:    42.5,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotVendor == nil || *gotVendor != "Acme Supplies" {
		t.Errorf("expected vendor write, got %v", gotVendor)
	}
	if gotBrand == nil || *gotBrand != "SKF" {
		t.Errorf("expected brand write, got %v", gotBrand)
	}
	if gotCost == nil || *gotCost != 42.5 {
		t.Errorf("expected unit cost write, got %v", gotCost)
	}
}

func TestRecordQuotationHandler_RejectsIncompleteQuotation(t *testing.T) {
	part := newPartAt(t, domain.StageWaitingForQuotation)
	repo := &mockOrderPartRepository{
		findByIDFn: func(ctx context.Context, id types.OrderPartID) (*domain.OrderPart, error) {
			return part, nil
		},
	}

	handler := commands.NewRecordQuotationHandler(repo, passthroughScope{}, newRegistry())
	err := handler.Handle(context.Background(), commands.RecordQuotationCommand{
		OrderPartID: part.ID().String(),
		Vendor:      "",
		UnitCost:    42.5,
	})
	if !errors.Is(err, domain.ErrQuotationIncomplete) {
		t.Errorf("expected ErrQuotationIncomplete, got %v", err)
	}
}

func TestMarkPurchasedHandler_DefaultsTimestamp(t *testing.T) {
	part := newPartAt(t, domain.StageWaitingForPurchase)

	var written time.Time
	repo := &mockOrderPartRepository{
		findByIDFn: func(ctx context.Context, id types.OrderPartID) (*domain.OrderPart, error) {
			return part, nil
		},
		setPurchasedFn: func(ctx context.Context, id types.OrderPartID, at time.Time) error {
			written = at
			return nil
		},
	}

	before := time.Now().UTC()
	handler := commands.NewMarkPurchasedHandler(repo, passthroughScope{}, newRegistry())
	err := handler.Handle(context.Background(), commands.MarkPurchasedCommand{OrderPartID: part.ID().String()})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if written.Before(before) {
		t.Errorf("expected timestamp defaulted to now, got %v", written)
	}
}

func TestDenyOrderPartHandler_DeletesAndPublishes(t *testing.T) {
	part := newPartAt(t, domain.StageOrderSentToHeadOffice)

	var deleted types.OrderPartID
	repo := &mockOrderPartRepository{
		findByIDFn: func(ctx context.Context, id types.OrderPartID) (*domain.OrderPart, error) {
			return part, nil
		},
		deleteFn: func(ctx context.Context, id types.OrderPartID) error {
			deleted = id
			return nil
		},
	}

	registry := newRegistry()
	denials := 0
	registry.Subscribe(contracts.OrderPartDeniedEventType, eventbus.HandlerFunc(func(ctx context.Context, event events.Event) error {
		denials++
		return nil
	}))

	handler := commands.NewDenyOrderPartHandler(repo, passthroughScope{}, registry)
	if err := handler.Handle(context.Background(), commands.DenyOrderPartCommand{OrderPartID: part.ID().String()}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if deleted != part.ID() {
		t.Errorf("expected delete of %s, got %s", part.ID(), deleted)
	}
	if denials != 1 {
		t.Errorf("expected 1 denial event, got %d", denials)
	}
}

func TestDenyOrderPartHandler_RejectsOutsideOfficeStage(t *testing.T) {
	part := newPartAt(t, domain.StageBudgetReleased)
	repo := &mockOrderPartRepository{
		findByIDFn: func(ctx context.Context, id types.OrderPartID) (*domain.OrderPart, error) {
			return part, nil
		},
		deleteFn: func(ctx context.Context, id types.OrderPartID) error {
			t.Error("delete must not happen outside the office review stage")
			return nil
		},
	}

	handler := commands.NewDenyOrderPartHandler(repo, passthroughScope{}, newRegistry())
	err := handler.Handle(context.Background(), commands.DenyOrderPartCommand{OrderPartID: part.ID().String()})
	if !errors.Is(err, domain.ErrStageOutOfOrder) {
		t.Errorf("expected ErrStageOutOfOrder, got %v", err)
	}
}

func TestChangeQuantityHandler_ValidatesAgainstAggregate(t *testing.T) {
	part := newPartAt(t, domain.StageOrderSentToHeadOffice)
	repo := &mockOrderPartRepository{
		findByIDFn: func(ctx context.Context, id types.OrderPartID) (*domain.OrderPart, error) {
			return part, nil
		},
	}

	handler := commands.NewChangeQuantityHandler(repo)
	err := handler.Handle(context.Background(), commands.ChangeQuantityCommand{
		OrderPartID: part.ID().String(),
		Quantity:    -3,
	})
	if !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Errorf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestHandlers_RejectMalformedID(t *testing.T) {
	handler := commands.NewApproveBudgetHandler(&mockOrderPartRepository{}, passthroughScope{}, newRegistry())
	err := handler.Handle(context.Background(), commands.ApproveBudgetCommand{OrderPartID: "not-a-uuid"})
	if !errors.Is(err, types.ErrInvalidID) {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}
}
