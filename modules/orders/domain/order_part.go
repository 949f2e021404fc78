// Package domain contains business entities and rules for the order-part
// workflow: the status catalog, the stage sequence, and the guarded
// transitions an order part moves through from request to receipt.
package domain

import (
	"time"

	shareddomain "github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/domain"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/types"
)

// OrderPart is the workflow-bearing aggregate: one order line item carrying
// its own progress through the stage sequence as milestone flags and dates.
//
// Milestones are monotonic and non-skipping: a milestone may only be set when
// every logically-prior milestone is already satisfied. All mutators route
// through the advance guard, which enforces this against the derived current
// stage.
type OrderPart struct {
	shareddomain.AggregateRoot

	id      types.OrderPartID
	orderID types.OrderID
	partID  types.PartID
	qty     int

	vendor   *string
	brand    *string
	unitCost *float64

	note       *string
	officeNote *string

	inStorage                 bool
	approvedStorageWithdrawal bool

	approvedPendingOrder bool
	approvedOfficeOrder  bool
	approvedBudget       bool

	sampleSentToOffice     bool
	sampleReceivedByOffice bool

	purchasedDate         *time.Time
	sentByOfficeDate      *time.Time
	receivedByFactoryDate *time.Time

	createdAt time.Time
	updatedAt time.Time
}

// NewOrderPart creates a freshly requested order line with no milestones set.
func NewOrderPart(orderID types.OrderID, partID types.PartID, qty int, sampleSentToOffice bool, note *string, inStorage bool, approvedStorageWithdrawal bool) (*OrderPart, error) {
	if qty <= 0 {
		return nil, ErrInvalidQuantity
	}
	now := time.Now().UTC()
	return &OrderPart{
		id:                        types.NewOrderPartID(),
		orderID:                   orderID,
		partID:                    partID,
		qty:                       qty,
		sampleSentToOffice:        sampleSentToOffice,
		note:                      note,
		inStorage:                 inStorage,
		approvedStorageWithdrawal: approvedStorageWithdrawal,
		createdAt:                 now,
		updatedAt:                 now,
	}, nil
}

// ReconstituteOrderPart rebuilds an order part from persistence.
func ReconstituteOrderPart(
	id types.OrderPartID,
	orderID types.OrderID,
	partID types.PartID,
	qty int,
	vendor, brand *string,
	unitCost *float64,
	note, officeNote *string,
	inStorage, approvedStorageWithdrawal bool,
	approvedPendingOrder, approvedOfficeOrder, approvedBudget bool,
	sampleSentToOffice, sampleReceivedByOffice bool,
	purchasedDate, sentByOfficeDate, receivedByFactoryDate *time.Time,
	createdAt, updatedAt time.Time,
) *OrderPart {
	return &OrderPart{
		id:                        id,
		orderID:                   orderID,
		partID:                    partID,
		qty:                       qty,
		vendor:                    vendor,
		brand:                     brand,
		unitCost:                  unitCost,
		note:                      note,
		officeNote:                officeNote,
		inStorage:                 inStorage,
		approvedStorageWithdrawal: approvedStorageWithdrawal,
		approvedPendingOrder:      approvedPendingOrder,
		approvedOfficeOrder:       approvedOfficeOrder,
		approvedBudget:            approvedBudget,
		sampleSentToOffice:        sampleSentToOffice,
		sampleReceivedByOffice:    sampleReceivedByOffice,
		purchasedDate:             purchasedDate,
		sentByOfficeDate:          sentByOfficeDate,
		receivedByFactoryDate:     receivedByFactoryDate,
		createdAt:                 createdAt,
		updatedAt:                 updatedAt,
	}
}

// Getters

func (p *OrderPart) ID() types.OrderPartID             { return p.id }
func (p *OrderPart) OrderID() types.OrderID            { return p.orderID }
func (p *OrderPart) PartID() types.PartID              { return p.partID }
func (p *OrderPart) Quantity() int                     { return p.qty }
func (p *OrderPart) Vendor() *string                   { return p.vendor }
func (p *OrderPart) Brand() *string                    { return p.brand }
func (p *OrderPart) UnitCost() *float64                { return p.unitCost }
func (p *OrderPart) Note() *string                     { return p.note }
func (p *OrderPart) OfficeNote() *string               { return p.officeNote }
func (p *OrderPart) InStorage() bool                   { return p.inStorage }
func (p *OrderPart) StorageWithdrawalApproved() bool   { return p.approvedStorageWithdrawal }
func (p *OrderPart) PendingOrderApproved() bool        { return p.approvedPendingOrder }
func (p *OrderPart) OfficeOrderApproved() bool         { return p.approvedOfficeOrder }
func (p *OrderPart) BudgetApproved() bool              { return p.approvedBudget }
func (p *OrderPart) SampleSentToOffice() bool          { return p.sampleSentToOffice }
func (p *OrderPart) SampleReceivedByOffice() bool      { return p.sampleReceivedByOffice }
func (p *OrderPart) PurchasedDate() *time.Time         { return p.purchasedDate }
func (p *OrderPart) SentByOfficeDate() *time.Time      { return p.sentByOfficeDate }
func (p *OrderPart) ReceivedByFactoryDate() *time.Time { return p.receivedByFactoryDate }
func (p *OrderPart) CreatedAt() time.Time              { return p.createdAt }
func (p *OrderPart) UpdatedAt() time.Time              { return p.updatedAt }

// CurrentStage derives which stage the order part is at: the lowest-ordinal
// stage whose milestone is not yet satisfied, or StageOrderComplete once all
// are. This derivation is also the precedence policy for conflicting state
// left by out-of-band edits - the lowest incomplete stage wins.
func (p *OrderPart) CurrentStage() Stage {
	for _, stage := range Stages() {
		if stage == StageOrderComplete {
			break
		}
		if !stage.CompletedIn(p) {
			return stage
		}
	}
	return StageOrderComplete
}

// advance validates that target is the legal next transition.
func (p *OrderPart) advance(target Stage) error {
	cur := p.CurrentStage()
	if cur == StageOrderComplete {
		return ErrWorkflowComplete
	}
	if target.Ordinal() < cur.Ordinal() {
		return ErrStageAlreadyComplete
	}
	if target.Ordinal() > cur.Ordinal() {
		return ErrStageOutOfOrder
	}
	return nil
}

func (p *OrderPart) touch() {
	p.updatedAt = time.Now().UTC()
}

// Transitions. Each completes exactly one stage's milestone.

// ApprovePendingOrder records factory storage approval of the request.
func (p *OrderPart) ApprovePendingOrder() error {
	if err := p.advance(StagePending); err != nil {
		return err
	}
	p.approvedPendingOrder = true
	p.touch()
	p.AddDomainEvent(newAdvancedEvent(p, StagePending))
	return nil
}

// ApproveOfficeOrder records head office approval of the forwarded order.
func (p *OrderPart) ApproveOfficeOrder() error {
	if err := p.advance(StageOrderSentToHeadOffice); err != nil {
		return err
	}
	p.approvedOfficeOrder = true
	p.touch()
	p.AddDomainEvent(newAdvancedEvent(p, StageOrderSentToHeadOffice))
	return nil
}

// RecordQuotation stores the vendor quotation. Both vendor and unit cost are
// required; brand is optional.
func (p *OrderPart) RecordQuotation(vendor string, brand *string, unitCost float64) error {
	if err := p.advance(StageWaitingForQuotation); err != nil {
		return err
	}
	if vendor == "" || unitCost <= 0 {
		return ErrQuotationIncomplete
	}
	p.vendor = &vendor
	p.brand = brand
	p.unitCost = &unitCost
	p.touch()
	p.AddDomainEvent(newAdvancedEvent(p, StageWaitingForQuotation))
	return nil
}

// ApproveBudget records head office approval of the released budget.
func (p *OrderPart) ApproveBudget() error {
	if err := p.advance(StageBudgetReleased); err != nil {
		return err
	}
	p.approvedBudget = true
	p.touch()
	p.AddDomainEvent(newAdvancedEvent(p, StageBudgetReleased))
	return nil
}

// MarkPurchased records when the part was purchased.
func (p *OrderPart) MarkPurchased(at time.Time) error {
	if err := p.advance(StageWaitingForPurchase); err != nil {
		return err
	}
	at = at.UTC()
	p.purchasedDate = &at
	p.touch()
	p.AddDomainEvent(newAdvancedEvent(p, StageWaitingForPurchase))
	return nil
}

// MarkSentToFactory records when the office dispatched the part.
func (p *OrderPart) MarkSentToFactory(at time.Time) error {
	if err := p.advance(StagePurchaseComplete); err != nil {
		return err
	}
	at = at.UTC()
	p.sentByOfficeDate = &at
	p.touch()
	p.AddDomainEvent(newAdvancedEvent(p, StagePurchaseComplete))
	return nil
}

// MarkReceivedByFactory records factory receipt, completing the workflow.
func (p *OrderPart) MarkReceivedByFactory(at time.Time) error {
	if err := p.advance(StagePartsSentToFactory); err != nil {
		return err
	}
	at = at.UTC()
	p.receivedByFactoryDate = &at
	p.touch()
	p.AddDomainEvent(newAdvancedEvent(p, StagePartsSentToFactory))
	return nil
}

// MarkSampleReceived records office receipt of the sample. The sample runs
// beside the stage sequence and is not gated by the advance guard.
func (p *OrderPart) MarkSampleReceived() error {
	if !p.sampleSentToOffice {
		return ErrSampleNotSent
	}
	if p.sampleReceivedByOffice {
		return ErrSampleAlreadyReceived
	}
	p.sampleReceivedByOffice = true
	p.touch()
	return nil
}

// ApproveStorageWithdrawal allows the requested quantity to be taken from
// factory storage instead of purchased.
func (p *OrderPart) ApproveStorageWithdrawal() {
	p.approvedStorageWithdrawal = true
	p.touch()
}

// ChangeQuantity adjusts the requested quantity.
func (p *OrderPart) ChangeQuantity(qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	p.qty = qty
	p.touch()
	return nil
}

// SetOfficeNote replaces the head office note.
func (p *OrderPart) SetOfficeNote(note string) {
	p.officeNote = &note
	p.touch()
}
