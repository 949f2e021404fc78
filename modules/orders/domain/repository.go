package domain

import (
	"context"
	"time"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/types"
)

// StatusRepository reads the seeded status catalog.
type StatusRepository interface {
	// ListStatuses returns all status definitions ordered by ordinal
	// ascending. There is no fallback list; an unreachable store is an error.
	ListStatuses(ctx context.Context) ([]StatusDefinition, error)
}

// PurchaseRecord is the projection returned by FindLastPurchase: the most
// recent purchase of a part, used to prefill quotations.
type PurchaseRecord struct {
	UnitCost    float64
	PurchasedAt time.Time
}

// OrderPartRepository defines persistence operations for order parts.
//
// Every Set* method is one targeted write against a single record; the
// store's per-statement atomicity is the only transactionality relied upon.
// A failed write leaves the previous state intact.
type OrderPartRepository interface {
	Insert(ctx context.Context, part *OrderPart) error
	FindByID(ctx context.Context, id types.OrderPartID) (*OrderPart, error)
	FindByOrderID(ctx context.Context, orderID types.OrderID) ([]*OrderPart, error)
	FindByPartID(ctx context.Context, partID types.PartID) ([]*OrderPart, error)
	// FindLastPurchase returns the latest purchased record for the part, or
	// ErrOrderPartNotFound when the part has never been purchased.
	FindLastPurchase(ctx context.Context, partID types.PartID) (*PurchaseRecord, error)

	SetPendingOrderApproved(ctx context.Context, id types.OrderPartID, approved bool) error
	SetOfficeOrderApproved(ctx context.Context, id types.OrderPartID, approved bool) error
	SetBudgetApproved(ctx context.Context, id types.OrderPartID, approved bool) error
	SetStorageWithdrawalApproved(ctx context.Context, id types.OrderPartID, approved bool) error
	SetCosting(ctx context.Context, id types.OrderPartID, vendor, brand *string, unitCost *float64) error
	SetPurchasedDate(ctx context.Context, id types.OrderPartID, at time.Time) error
	SetSentByOfficeDate(ctx context.Context, id types.OrderPartID, at time.Time) error
	SetReceivedByFactoryDate(ctx context.Context, id types.OrderPartID, at time.Time) error
	SetSampleReceived(ctx context.Context, id types.OrderPartID, received bool) error
	SetQuantity(ctx context.Context, id types.OrderPartID, qty int) error
	SetOfficeNote(ctx context.Context, id types.OrderPartID, note string) error

	// Delete removes the record outright; there is no soft delete.
	Delete(ctx context.Context, id types.OrderPartID) error
}
