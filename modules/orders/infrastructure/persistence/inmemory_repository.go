package persistence

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/orders/domain"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/types"
)

// orderPartRecord is the stored shape. Keeping a flat record instead of the
// aggregate lets Set* methods patch single fields the way the real store
// does, including edits the workflow guards would refuse.
type orderPartRecord struct {
	id                        string
	orderID                   string
	partID                    string
	qty                       int
	vendor                    *string
	brand                     *string
	unitCost                  *float64
	note                      *string
	officeNote                *string
	inStorage                 bool
	approvedStorageWithdrawal bool
	approvedPendingOrder      bool
	approvedOfficeOrder       bool
	approvedBudget            bool
	sampleSentToOffice        bool
	sampleReceivedByOffice    bool
	purchasedDate             *time.Time
	sentByOfficeDate          *time.Time
	receivedByFactoryDate     *time.Time
	createdAt                 time.Time
	updatedAt                 time.Time
}

// InMemoryOrderPartRepository implements OrderPartRepository using in-memory
// storage, for tests and local development.
type InMemoryOrderPartRepository struct {
	mu    sync.RWMutex
	parts map[string]*orderPartRecord
}

func NewInMemoryOrderPartRepository() *InMemoryOrderPartRepository {
	return &InMemoryOrderPartRepository{
		parts: make(map[string]*orderPartRecord),
	}
}

func (r *InMemoryOrderPartRepository) Insert(ctx context.Context, part *domain.OrderPart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parts[part.ID().String()] = &orderPartRecord{
		id:                        part.ID().String(),
		orderID:                   part.OrderID().String(),
		partID:                    part.PartID().String(),
		qty:                       part.Quantity(),
		vendor:                    part.Vendor(),
		brand:                     part.Brand(),
		unitCost:                  part.UnitCost(),
		note:                      part.Note(),
		officeNote:                part.OfficeNote(),
		inStorage:                 part.InStorage(),
		approvedStorageWithdrawal: part.StorageWithdrawalApproved(),
		approvedPendingOrder:      part.PendingOrderApproved(),
		approvedOfficeOrder:       part.OfficeOrderApproved(),
		approvedBudget:            part.BudgetApproved(),
		sampleSentToOffice:        part.SampleSentToOffice(),
		sampleReceivedByOffice:    part.SampleReceivedByOffice(),
		purchasedDate:             part.PurchasedDate(),
		sentByOfficeDate:          part.SentByOfficeDate(),
		receivedByFactoryDate:     part.ReceivedByFactoryDate(),
		createdAt:                 part.CreatedAt(),
		updatedAt:                 part.UpdatedAt(),
	}
	return nil
}

func (r *InMemoryOrderPartRepository) FindByID(ctx context.Context, id types.OrderPartID) (*domain.OrderPart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.parts[id.String()]
	if !exists {
		return nil, domain.ErrOrderPartNotFound
	}
	return reconstitute(record)
}

func (r *InMemoryOrderPartRepository) FindByOrderID(ctx context.Context, orderID types.OrderID) ([]*domain.OrderPart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var records []*orderPartRecord
	for _, record := range r.parts {
		if record.orderID == orderID.String() {
			records = append(records, record)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].createdAt.Before(records[j].createdAt)
	})

	parts := make([]*domain.OrderPart, 0, len(records))
	for _, record := range records {
		part, err := reconstitute(record)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	return parts, nil
}

func (r *InMemoryOrderPartRepository) FindByPartID(ctx context.Context, partID types.PartID) ([]*domain.OrderPart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var records []*orderPartRecord
	for _, record := range r.parts {
		if record.partID == partID.String() {
			records = append(records, record)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].createdAt.After(records[j].createdAt)
	})

	parts := make([]*domain.OrderPart, 0, len(records))
	for _, record := range records {
		part, err := reconstitute(record)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	return parts, nil
}

func (r *InMemoryOrderPartRepository) FindLastPurchase(ctx context.Context, partID types.PartID) (*domain.PurchaseRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *orderPartRecord
	for _, record := range r.parts {
		if record.partID != partID.String() || record.unitCost == nil || record.purchasedDate == nil {
			continue
		}
		if latest == nil || record.purchasedDate.After(*latest.purchasedDate) {
			latest = record
		}
	}
	if latest == nil {
		return nil, domain.ErrOrderPartNotFound
	}
	return &domain.PurchaseRecord{
		UnitCost:    *latest.unitCost,
		PurchasedAt: *latest.purchasedDate,
	}, nil
}

func (r *InMemoryOrderPartRepository) SetPendingOrderApproved(ctx context.Context, id types.OrderPartID, approved bool) error {
	return r.patch(id, func(record *orderPartRecord) {
		record.approvedPendingOrder = approved
	})
}

func (r *InMemoryOrderPartRepository) SetOfficeOrderApproved(ctx context.Context, id types.OrderPartID, approved bool) error {
	return r.patch(id, func(record *orderPartRecord) {
		record.approvedOfficeOrder = approved
	})
}

func (r *InMemoryOrderPartRepository) SetBudgetApproved(ctx context.Context, id types.OrderPartID, approved bool) error {
	return r.patch(id, func(record *orderPartRecord) {
		record.approvedBudget = approved
	})
}

func (r *InMemoryOrderPartRepository) SetStorageWithdrawalApproved(ctx context.Context, id types.OrderPartID, approved bool) error {
	return r.patch(id, func(record *orderPartRecord) {
		record.approvedStorageWithdrawal = approved
	})
}

func (r *InMemoryOrderPartRepository) SetCosting(ctx context.Context, id types.OrderPartID, vendor, brand *string, unitCost *float64) error {
	return r.patch(id, func(record *orderPartRecord) {
		record.vendor = vendor
		record.brand = brand
		record.unitCost = unitCost
	})
}

func (r *InMemoryOrderPartRepository) SetPurchasedDate(ctx context.Context, id types.OrderPartID, at time.Time) error {
	return r.patch(id, func(record *orderPartRecord) {
		record.purchasedDate = &at
	})
}

func (r *InMemoryOrderPartRepository) SetSentByOfficeDate(ctx context.Context, id types.OrderPartID, at time.Time) error {
	return r.patch(id, func(record *orderPartRecord) {
		record.sentByOfficeDate = &at
	})
}

func (r *InMemoryOrderPartRepository) SetReceivedByFactoryDate(ctx context.Context, id types.OrderPartID, at time.Time) error {
	return r.patch(id, func(record *orderPartRecord) {
		record.receivedByFactoryDate = &at
	})
}

func (r *InMemoryOrderPartRepository) SetSampleReceived(ctx context.Context, id types.OrderPartID, received bool) error {
	return r.patch(id, func(record *orderPartRecord) {
		record.sampleReceivedByOffice = received
	})
}

func (r *InMemoryOrderPartRepository) SetQuantity(ctx context.Context, id types.OrderPartID, qty int) error {
	return r.patch(id, func(record *orderPartRecord) {
		record.qty = qty
	})
}

func (r *InMemoryOrderPartRepository) SetOfficeNote(ctx context.Context, id types.OrderPartID, note string) error {
	return r.patch(id, func(record *orderPartRecord) {
		record.officeNote = &note
	})
}

func (r *InMemoryOrderPartRepository) Delete(ctx context.Context, id types.OrderPartID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.parts, id.String())
	return nil
}

func (r *InMemoryOrderPartRepository) patch(id types.OrderPartID, mutate func(*orderPartRecord)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, exists := r.parts[id.String()]
	if !exists {
		return domain.ErrOrderPartNotFound
	}
	mutate(record)
	record.updatedAt = time.Now().UTC()
	return nil
}

func reconstitute(record *orderPartRecord) (*domain.OrderPart, error) {
	id, err := types.ParseOrderPartID(record.id)
	if err != nil {
		return nil, err
	}
	orderID, err := types.ParseOrderID(record.orderID)
	if err != nil {
		return nil, err
	}
	partID, err := types.ParsePartID(record.partID)
	if err != nil {
		return nil, err
	}
	return domain.ReconstituteOrderPart(
		id, orderID, partID, record.qty,
		record.vendor, record.brand, record.unitCost,
		record.note, record.officeNote,
		record.inStorage, record.approvedStorageWithdrawal,
		record.approvedPendingOrder, record.approvedOfficeOrder, record.approvedBudget,
		record.sampleSentToOffice, record.sampleReceivedByOffice,
		record.purchasedDate, record.sentByOfficeDate, record.receivedByFactoryDate,
		record.createdAt, record.updatedAt,
	), nil
}

// InMemoryStatusRepository serves the status catalog from memory, seeded
// with the default catalog unless overridden.
type InMemoryStatusRepository struct {
	mu      sync.RWMutex
	catalog []domain.StatusDefinition
}

func NewInMemoryStatusRepository() *InMemoryStatusRepository {
	return &InMemoryStatusRepository{catalog: domain.DefaultCatalog()}
}

func (r *InMemoryStatusRepository) ListStatuses(ctx context.Context) ([]domain.StatusDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	catalog := make([]domain.StatusDefinition, len(r.catalog))
	copy(catalog, r.catalog)
	return catalog, nil
}

// SetCatalog replaces the catalog, for tests.
func (r *InMemoryStatusRepository) SetCatalog(catalog []domain.StatusDefinition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.catalog = catalog
}
