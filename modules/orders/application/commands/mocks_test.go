package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/internal/platform/eventbus"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/orders/domain"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/types"
)

// --- Mocks ---

// mockOrderPartRepository implements domain.OrderPartRepository with
// overridable function fields. Unset write functions succeed silently.
type mockOrderPartRepository struct {
	insertFn           func(ctx context.Context, part *domain.OrderPart) error
	findByIDFn         func(ctx context.Context, id types.OrderPartID) (*domain.OrderPart, error)
	setPendingFn       func(ctx context.Context, id types.OrderPartID, approved bool) error
	setOfficeFn        func(ctx context.Context, id types.OrderPartID, approved bool) error
	setBudgetFn        func(ctx context.Context, id types.OrderPartID, approved bool) error
	setCostingFn       func(ctx context.Context, id types.OrderPartID, vendor, brand *string, unitCost *float64) error
	setPurchasedFn     func(ctx context.Context, id types.OrderPartID, at time.Time) error
	setSentFn          func(ctx context.Context, id types.OrderPartID, at time.Time) error
	setReceivedFn      func(ctx context.Context, id types.OrderPartID, at time.Time) error
	setSampleFn        func(ctx context.Context, id types.OrderPartID, received bool) error
	setQuantityFn      func(ctx context.Context, id types.OrderPartID, qty int) error
	setOfficeNoteFn    func(ctx context.Context, id types.OrderPartID, note string) error
	setStorageFn       func(ctx context.Context, id types.OrderPartID, approved bool) error
	deleteFn           func(ctx context.Context, id types.OrderPartID) error
	findByOrderIDFn    func(ctx context.Context, orderID types.OrderID) ([]*domain.OrderPart, error)
	findByPartIDFn     func(ctx context.Context, partID types.PartID) ([]*domain.OrderPart, error)
	findLastPurchaseFn func(ctx context.Context, partID types.PartID) (*domain.PurchaseRecord, error)
}

func (m *mockOrderPartRepository) Insert(ctx context.Context, part *domain.OrderPart) error {
	if m.insertFn == nil {
		return nil
	}
	return m.insertFn(ctx, part)
}

func (m *mockOrderPartRepository) FindByID(ctx context.Context, id types.OrderPartID) (*domain.OrderPart, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockOrderPartRepository) FindByOrderID(ctx context.Context, orderID types.OrderID) ([]*domain.OrderPart, error) {
	if m.findByOrderIDFn == nil {
		return nil, nil
	}
	return m.findByOrderIDFn(ctx, orderID)
}

func (m *mockOrderPartRepository) FindByPartID(ctx context.Context, partID types.PartID) ([]*domain.OrderPart, error) {
	if m.findByPartIDFn == nil {
		return nil, nil
	}
	return m.findByPartIDFn(ctx, partID)
}

func (m *mockOrderPartRepository) FindLastPurchase(ctx context.Context, partID types.PartID) (*domain.PurchaseRecord, error) {
	if m.findLastPurchaseFn == nil {
		return nil, domain.ErrOrderPartNotFound
	}
	return m.findLastPurchaseFn(ctx, partID)
}

func (m *mockOrderPartRepository) SetPendingOrderApproved(ctx context.Context, id types.OrderPartID, approved bool) error {
	if m.setPendingFn == nil {
		return nil
	}
	return m.setPendingFn(ctx, id, approved)
}

func (m *mockOrderPartRepository) SetOfficeOrderApproved(ctx context.Context, id types.OrderPartID, approved bool) error {
	if m.setOfficeFn == nil {
		return nil
	}
	return m.setOfficeFn(ctx, id, approved)
}

func (m *mockOrderPartRepository) SetBudgetApproved(ctx context.Context, id types.OrderPartID, approved bool) error {
	if m.setBudgetFn == nil {
		return nil
	}
	return m.setBudgetFn(ctx, id, approved)
}

func (m *mockOrderPartRepository) SetStorageWithdrawalApproved(ctx context.Context, id types.OrderPartID, approved bool) error {
	if m.setStorageFn == nil {
		return nil
	}
	return m.setStorageFn(ctx, id, approved)
}

func (m *mockOrderPartRepository) SetCosting(ctx context.Context, id types.OrderPartID, vendor, brand *string, unitCost *float64) error {
	if m.setCostingFn == nil {
		return nil
	}
	return m.setCostingFn(ctx, id, vendor, brand, unitCost)
}

func (m *mockOrderPartRepository) SetPurchasedDate(ctx context.Context, id types.OrderPartID, at time.Time) error {
	if m.setPurchasedFn == nil {
		return nil
	}
	return m.setPurchasedFn(ctx, id, at)
}

func (m *mockOrderPartRepository) SetSentByOfficeDate(ctx context.Context, id types.OrderPartID, at time.Time) error {
	if m.setSentFn == nil {
		return nil
	}
	return m.setSentFn(ctx, id, at)
}

func (m *mockOrderPartRepository) SetReceivedByFactoryDate(ctx context.Context, id types.OrderPartID, at time.Time) error {
	if m.setReceivedFn == nil {
		return nil
	}
	return m.setReceivedFn(ctx, id, at)
}

func (m *mockOrderPartRepository) SetSampleReceived(ctx context.Context, id types.OrderPartID, received bool) error {
	if m.setSampleFn == nil {
		return nil
	}
	return m.setSampleFn(ctx, id, received)
}

func (m *mockOrderPartRepository) SetQuantity(ctx context.Context, id types.OrderPartID, qty int) error {
	if m.setQuantityFn == nil {
		return nil
	}
	return m.setQuantityFn(ctx, id, qty)
}

func (m *mockOrderPartRepository) SetOfficeNote(ctx context.Context, id types.OrderPartID, note string) error {
	if m.setOfficeNoteFn == nil {
		return nil
	}
	return m.setOfficeNoteFn(ctx, id, note)
}

func (m *mockOrderPartRepository) Delete(ctx context.Context, id types.OrderPartID) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}

// passthroughScope runs the closure without any real transaction.
type passthroughScope struct{}

func (passthroughScope) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newRegistry() *eventbus.EventHandlerRegistry {
	return eventbus.NewEventHandlerRegistry(slog.Default())
}

// --- Fixtures ---

func newPartAt(t *testing.T, stage domain.Stage) *domain.OrderPart {
	t.Helper()
	part, err := domain.NewOrderPart(types.NewOrderID(), types.NewPartID(), 4, false, nil, false, false)
	if err != nil {
		t.Fatalf("failed to create order part: %v", err)
	}

	steps := []func() error{
		part.ApprovePendingOrder,
		part.ApproveOfficeOrder,
		func() error { return part.RecordQuotation("Acme", nil, 9.99) },
		part.ApproveBudget,
		func() error { return part.MarkPurchased(time.Now()) },
		func() error { return part.MarkSentToFactory(time.Now()) },
		func() error { return part.MarkReceivedByFactory(time.Now()) },
	}
	for i, step := range steps {
		if i >= int(stage) {
			break
		}
		if err := step(); err != nil {
			t.Fatalf("fixture step %d failed: %v", i, err)
		}
	}
	part.ClearDomainEvents()
	return part
}
