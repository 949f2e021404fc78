// Package persistence implements repository interfaces for the orders module.
package persistence

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/internal/platform/transaction"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/orders/domain"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/types"
)

var orderPartColumns = []string{
	"OrderPartID", "OrderID", "PartID", "Qty",
	"Vendor", "Brand", "UnitCost", "Note", "OfficeNote",
	"InStorage", "ApprovedStorageWithdrawal",
	"ApprovedPendingOrder", "ApprovedOfficeOrder", "ApprovedBudget",
	"SampleSentToOffice", "SampleReceivedByOffice",
	"PartPurchasedDate", "PartSentByOfficeDate", "PartReceivedByFactoryDate",
	"CreatedAt", "UpdatedAt",
}

type SpannerOrderPartRepository struct {
	client *spanner.Client
}

func NewSpannerOrderPartRepository(client *spanner.Client) *SpannerOrderPartRepository {
	return &SpannerOrderPartRepository{client: client}
}

// apply buffers the mutations on the transaction embedded in ctx if there is
// one, otherwise applies them standalone. Every Set* write below is a single
// mutation so standalone application stays atomic per record.
func (r *SpannerOrderPartRepository) apply(ctx context.Context, mutations ...*spanner.Mutation) error {
	if txn, ok := transaction.ReadWriteTxFromContext(ctx); ok {
		return txn.BufferWrite(mutations)
	}
	_, err := r.client.Apply(ctx, mutations)
	return err
}

func (r *SpannerOrderPartRepository) reader(ctx context.Context) (transaction.ReadTransaction, func()) {
	if reader, ok := transaction.ReadTxFromContext(ctx); ok {
		return reader, func() {}
	}
	roTx := r.client.ReadOnlyTransaction()
	return roTx, roTx.Close
}

func (r *SpannerOrderPartRepository) Insert(ctx context.Context, part *domain.OrderPart) error {
	mutation := spanner.Insert("OrderParts", orderPartColumns, []interface{}{
		part.ID().String(),
		part.OrderID().String(),
		part.PartID().String(),
		int64(part.Quantity()),
		part.Vendor(),
		part.Brand(),
		part.UnitCost(),
		part.Note(),
		part.OfficeNote(),
		part.InStorage(),
		part.StorageWithdrawalApproved(),
		part.PendingOrderApproved(),
		part.OfficeOrderApproved(),
		part.BudgetApproved(),
		part.SampleSentToOffice(),
		part.SampleReceivedByOffice(),
		part.PurchasedDate(),
		part.SentByOfficeDate(),
		part.ReceivedByFactoryDate(),
		part.CreatedAt(),
		part.UpdatedAt(),
	})
	if err := r.apply(ctx, mutation); err != nil {
		return fmt.Errorf("failed to insert order part: %w", err)
	}
	return nil
}

func (r *SpannerOrderPartRepository) FindByID(ctx context.Context, id types.OrderPartID) (*domain.OrderPart, error) {
	reader, done := r.reader(ctx)
	defer done()

	row, err := reader.ReadRow(ctx, "OrderParts", spanner.Key{id.String()}, orderPartColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrOrderPartNotFound
		}
		return nil, fmt.Errorf("failed to read order part: %w", err)
	}
	return scanOrderPart(row)
}

func (r *SpannerOrderPartRepository) FindByOrderID(ctx context.Context, orderID types.OrderID) ([]*domain.OrderPart, error) {
	stmt := spanner.Statement{
		SQL: `SELECT ` + columnList() + `
		      FROM OrderParts@{FORCE_INDEX=OrderPartsByOrderID}
		      WHERE OrderID = @orderID
		      ORDER BY CreatedAt`,
		Params: map[string]interface{}{"orderID": orderID.String()},
	}
	return r.queryOrderParts(ctx, stmt)
}

func (r *SpannerOrderPartRepository) FindByPartID(ctx context.Context, partID types.PartID) ([]*domain.OrderPart, error) {
	stmt := spanner.Statement{
		SQL: `SELECT ` + columnList() + `
		      FROM OrderParts@{FORCE_INDEX=OrderPartsByPartID}
		      WHERE PartID = @partID
		      ORDER BY CreatedAt DESC`,
		Params: map[string]interface{}{"partID": partID.String()},
	}
	return r.queryOrderParts(ctx, stmt)
}

func (r *SpannerOrderPartRepository) FindLastPurchase(ctx context.Context, partID types.PartID) (*domain.PurchaseRecord, error) {
	reader, done := r.reader(ctx)
	defer done()

	stmt := spanner.Statement{
		SQL: `SELECT UnitCost, PartPurchasedDate
		      FROM OrderParts@{FORCE_INDEX=OrderPartsByPartID}
		      WHERE PartID = @partID
		        AND UnitCost IS NOT NULL
		        AND PartPurchasedDate IS NOT NULL
		      ORDER BY PartPurchasedDate DESC
		      LIMIT 1`,
		Params: map[string]interface{}{"partID": partID.String()},
	}

	iter := reader.Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrOrderPartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query last purchase: %w", err)
	}

	var unitCost float64
	var purchasedAt time.Time
	if err := row.Columns(&unitCost, &purchasedAt); err != nil {
		return nil, fmt.Errorf("failed to scan last purchase: %w", err)
	}
	return &domain.PurchaseRecord{UnitCost: unitCost, PurchasedAt: purchasedAt}, nil
}

func (r *SpannerOrderPartRepository) SetPendingOrderApproved(ctx context.Context, id types.OrderPartID, approved bool) error {
	return r.updateColumns(ctx, id, []string{"ApprovedPendingOrder"}, approved)
}

func (r *SpannerOrderPartRepository) SetOfficeOrderApproved(ctx context.Context, id types.OrderPartID, approved bool) error {
	return r.updateColumns(ctx, id, []string{"ApprovedOfficeOrder"}, approved)
}

func (r *SpannerOrderPartRepository) SetBudgetApproved(ctx context.Context, id types.OrderPartID, approved bool) error {
	return r.updateColumns(ctx, id, []string{"ApprovedBudget"}, approved)
}

func (r *SpannerOrderPartRepository) SetStorageWithdrawalApproved(ctx context.Context, id types.OrderPartID, approved bool) error {
	return r.updateColumns(ctx, id, []string{"ApprovedStorageWithdrawal"}, approved)
}

func (r *SpannerOrderPartRepository) SetCosting(ctx context.Context, id types.OrderPartID, vendor, brand *string, unitCost *float64) error {
	return r.updateColumns(ctx, id, []string{"Vendor", "Brand", "UnitCost"}, vendor, brand, unitCost)
}

func (r *SpannerOrderPartRepository) SetPurchasedDate(ctx context.Context, id types.OrderPartID, at time.Time) error {
	return r.updateColumns(ctx, id, []string{"PartPurchasedDate"}, at)
}

func (r *SpannerOrderPartRepository) SetSentByOfficeDate(ctx context.Context, id types.OrderPartID, at time.Time) error {
	return r.updateColumns(ctx, id, []string{"PartSentByOfficeDate"}, at)
}

func (r *SpannerOrderPartRepository) SetReceivedByFactoryDate(ctx context.Context, id types.OrderPartID, at time.Time) error {
	return r.updateColumns(ctx, id, []string{"PartReceivedByFactoryDate"}, at)
}

func (r *SpannerOrderPartRepository) SetSampleReceived(ctx context.Context, id types.OrderPartID, received bool) error {
	return r.updateColumns(ctx, id, []string{"SampleReceivedByOffice"}, received)
}

func (r *SpannerOrderPartRepository) SetQuantity(ctx context.Context, id types.OrderPartID, qty int) error {
	return r.updateColumns(ctx, id, []string{"Qty"}, int64(qty))
}

func (r *SpannerOrderPartRepository) SetOfficeNote(ctx context.Context, id types.OrderPartID, note string) error {
	return r.updateColumns(ctx, id, []string{"OfficeNote"}, note)
}

func (r *SpannerOrderPartRepository) Delete(ctx context.Context, id types.OrderPartID) error {
	if err := r.apply(ctx, spanner.Delete("OrderParts", spanner.Key{id.String()})); err != nil {
		return fmt.Errorf("failed to delete order part: %w", err)
	}
	return nil
}

// updateColumns writes the given columns plus UpdatedAt as one Update
// mutation keyed by the part ID. Spanner rejects updates against missing
// keys with NotFound, which maps to the domain error.
func (r *SpannerOrderPartRepository) updateColumns(ctx context.Context, id types.OrderPartID, columns []string, values ...interface{}) error {
	cols := append([]string{"OrderPartID"}, columns...)
	cols = append(cols, "UpdatedAt")
	vals := append([]interface{}{id.String()}, values...)
	vals = append(vals, time.Now().UTC())

	if err := r.apply(ctx, spanner.Update("OrderParts", cols, vals)); err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return domain.ErrOrderPartNotFound
		}
		return fmt.Errorf("failed to update order part: %w", err)
	}
	return nil
}

func (r *SpannerOrderPartRepository) queryOrderParts(ctx context.Context, stmt spanner.Statement) ([]*domain.OrderPart, error) {
	reader, done := r.reader(ctx)
	defer done()

	iter := reader.Query(ctx, stmt)
	defer iter.Stop()

	var parts []*domain.OrderPart
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate order parts: %w", err)
		}
		part, err := scanOrderPart(row)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	return parts, nil
}

func scanOrderPart(row *spanner.Row) (*domain.OrderPart, error) {
	var (
		orderPartID, orderID, partID string
		qty                          int64
		vendor, brand                *string
		unitCost                     *float64
		note, officeNote             *string
		inStorage, storageApproved   bool
		pending, office, budget      bool
		sampleSent, sampleReceived   bool
		purchased, sent, received    *time.Time
		createdAt, updatedAt         time.Time
	)
	if err := row.Columns(
		&orderPartID, &orderID, &partID, &qty,
		&vendor, &brand, &unitCost, &note, &officeNote,
		&inStorage, &storageApproved,
		&pending, &office, &budget,
		&sampleSent, &sampleReceived,
		&purchased, &sent, &received,
		&createdAt, &updatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to scan order part: %w", err)
	}

	id, err := types.ParseOrderPartID(orderPartID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse order part id: %w", err)
	}
	parsedOrderID, err := types.ParseOrderID(orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse order id: %w", err)
	}
	parsedPartID, err := types.ParsePartID(partID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse part id: %w", err)
	}

	return domain.ReconstituteOrderPart(
		id, parsedOrderID, parsedPartID, int(qty),
		vendor, brand, unitCost,
		note, officeNote,
		inStorage, storageApproved,
		pending, office, budget,
		sampleSent, sampleReceived,
		purchased, sent, received,
		createdAt, updatedAt,
	), nil
}

func columnList() string {
	list := orderPartColumns[0]
	for _, col := range orderPartColumns[1:] {
		list += ", " + col
	}
	return list
}
