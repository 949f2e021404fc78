// Package persistence implements repository interfaces for the machines module.
package persistence

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/internal/platform/transaction"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/machines/domain"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/types"
)

var machineColumns = []string{
	"MachineID", "Name", "MachineType", "FactorySectionID", "IsRunning",
	"CreatedAt", "UpdatedAt",
}

type SpannerMachineRepository struct {
	client *spanner.Client
}

func NewSpannerMachineRepository(client *spanner.Client) *SpannerMachineRepository {
	return &SpannerMachineRepository{client: client}
}

func (r *SpannerMachineRepository) reader(ctx context.Context) (transaction.ReadTransaction, func()) {
	if reader, ok := transaction.ReadTxFromContext(ctx); ok {
		return reader, func() {}
	}
	roTx := r.client.ReadOnlyTransaction()
	return roTx, roTx.Close
}

func (r *SpannerMachineRepository) Insert(ctx context.Context, machine *domain.Machine) error {
	mutation := spanner.Insert("Machines", machineColumns, []interface{}{
		machine.ID().String(),
		machine.Name(),
		machine.MachineType(),
		machine.FactorySectionID(),
		machine.IsRunning(),
		machine.CreatedAt(),
		machine.UpdatedAt(),
	})
	if _, err := r.client.Apply(ctx, []*spanner.Mutation{mutation}); err != nil {
		return fmt.Errorf("failed to insert machine: %w", err)
	}
	return nil
}

func (r *SpannerMachineRepository) FindByID(ctx context.Context, id types.MachineID) (*domain.Machine, error) {
	reader, done := r.reader(ctx)
	defer done()

	row, err := reader.ReadRow(ctx, "Machines", spanner.Key{id.String()}, machineColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrMachineNotFound
		}
		return nil, fmt.Errorf("failed to read machine: %w", err)
	}
	return scanMachine(row)
}

func (r *SpannerMachineRepository) List(ctx context.Context, query domain.MachineQuery) ([]*domain.Machine, int, error) {
	reader, done := r.reader(ctx)
	defer done()

	where := ""
	params := map[string]interface{}{
		"limit":  int64(query.Limit()),
		"offset": int64(query.Offset()),
	}
	if sectionID := query.FactorySectionID(); sectionID != nil {
		where = " WHERE FactorySectionID = @sectionID"
		params["sectionID"] = *sectionID
	}

	countIter := reader.Query(ctx, spanner.Statement{
		SQL:    `SELECT COUNT(*) FROM Machines` + where,
		Params: params,
	})
	defer countIter.Stop()

	var total int64
	countRow, err := countIter.Next()
	if err != nil && err != iterator.Done {
		return nil, 0, fmt.Errorf("failed to count machines: %w", err)
	}
	if countRow != nil {
		if err := countRow.Columns(&total); err != nil {
			return nil, 0, fmt.Errorf("failed to scan count: %w", err)
		}
	}

	orderBy := " ORDER BY Name"
	switch query.RunningSort() {
	case domain.SortAsc:
		orderBy = " ORDER BY IsRunning, Name"
	case domain.SortDesc:
		orderBy = " ORDER BY IsRunning DESC, Name"
	}

	stmt := spanner.Statement{
		SQL: `SELECT MachineID, Name, MachineType, FactorySectionID, IsRunning, CreatedAt, UpdatedAt
		      FROM Machines` + where + orderBy + `
		      LIMIT @limit OFFSET @offset`,
		Params: params,
	}

	iter := reader.Query(ctx, stmt)
	defer iter.Stop()

	var machines []*domain.Machine
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("failed to iterate machines: %w", err)
		}
		machine, err := scanMachine(row)
		if err != nil {
			return nil, 0, err
		}
		machines = append(machines, machine)
	}
	return machines, int(total), nil
}

func (r *SpannerMachineRepository) SetRunning(ctx context.Context, id types.MachineID, running bool) error {
	mutation := spanner.Update("Machines",
		[]string{"MachineID", "IsRunning", "UpdatedAt"},
		[]interface{}{id.String(), running, time.Now().UTC()},
	)
	err := r.applyWrite(ctx, mutation)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return domain.ErrMachineNotFound
		}
		return fmt.Errorf("failed to update machine: %w", err)
	}
	return nil
}

func (r *SpannerMachineRepository) CountByRunning(ctx context.Context, running bool) (int64, error) {
	reader, done := r.reader(ctx)
	defer done()

	iter := reader.Query(ctx, spanner.Statement{
		SQL:    `SELECT COUNT(*) FROM Machines WHERE IsRunning = @running`,
		Params: map[string]interface{}{"running": running},
	})
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, fmt.Errorf("failed to count machines: %w", err)
	}
	var count int64
	if err := row.Columns(&count); err != nil {
		return 0, fmt.Errorf("failed to scan count: %w", err)
	}
	return count, nil
}

func (r *SpannerMachineRepository) applyWrite(ctx context.Context, mutations ...*spanner.Mutation) error {
	if txn, ok := transaction.ReadWriteTxFromContext(ctx); ok {
		return txn.BufferWrite(mutations)
	}
	_, err := r.client.Apply(ctx, mutations)
	return err
}

func scanMachine(row *spanner.Row) (*domain.Machine, error) {
	var (
		machineID, name, machineType string
		factorySectionID             int64
		isRunning                    bool
		createdAt, updatedAt         time.Time
	)
	if err := row.Columns(&machineID, &name, &machineType, &factorySectionID, &isRunning, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("failed to scan machine: %w", err)
	}

	id, err := types.ParseMachineID(machineID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse machine id: %w", err)
	}
	return domain.ReconstituteMachine(id, name, machineType, factorySectionID, isRunning, createdAt, updatedAt), nil
}

// SpannerMachinePartRepository persists machine part quantities keyed by the
// composite (MachineID, PartID) primary key. InsertOrUpdate on that key is
// the upsert the quantity records rely on.
type SpannerMachinePartRepository struct {
	client *spanner.Client
}

func NewSpannerMachinePartRepository(client *spanner.Client) *SpannerMachinePartRepository {
	return &SpannerMachinePartRepository{client: client}
}

var machinePartColumns = []string{"MachineID", "PartID", "PartName", "Qty", "UpdatedAt"}

func (r *SpannerMachinePartRepository) Upsert(ctx context.Context, part *domain.MachinePart) error {
	mutation := spanner.InsertOrUpdate("MachineParts", machinePartColumns, []interface{}{
		part.MachineID().String(),
		part.PartID().String(),
		part.PartName(),
		int64(part.Quantity()),
		part.UpdatedAt(),
	})

	var err error
	if txn, ok := transaction.ReadWriteTxFromContext(ctx); ok {
		err = txn.BufferWrite([]*spanner.Mutation{mutation})
	} else {
		_, err = r.client.Apply(ctx, []*spanner.Mutation{mutation})
	}
	if err != nil {
		return fmt.Errorf("failed to upsert machine part: %w", err)
	}
	return nil
}

func (r *SpannerMachinePartRepository) Find(ctx context.Context, machineID types.MachineID, partID types.PartID) (*domain.MachinePart, error) {
	reader, done := r.reader(ctx)
	defer done()

	row, err := reader.ReadRow(ctx, "MachineParts", spanner.Key{machineID.String(), partID.String()}, machinePartColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrMachinePartNotFound
		}
		return nil, fmt.Errorf("failed to read machine part: %w", err)
	}
	return scanMachinePart(row)
}

func (r *SpannerMachinePartRepository) List(ctx context.Context, filter domain.MachinePartFilter) ([]*domain.MachinePart, error) {
	reader, done := r.reader(ctx)
	defer done()

	sql := `SELECT MachineID, PartID, PartName, Qty, UpdatedAt FROM MachineParts`
	params := map[string]interface{}{}
	var conditions []string
	if filter.MachineID != nil {
		conditions = append(conditions, "MachineID = @machineID")
		params["machineID"] = *filter.MachineID
	}
	if filter.PartID != nil {
		conditions = append(conditions, "PartID = @partID")
		params["partID"] = *filter.PartID
	}
	for i, condition := range conditions {
		if i == 0 {
			sql += " WHERE " + condition
		} else {
			sql += " AND " + condition
		}
	}
	sql += " ORDER BY MachineID, PartID"

	iter := reader.Query(ctx, spanner.Statement{SQL: sql, Params: params})
	defer iter.Stop()

	var parts []*domain.MachinePart
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate machine parts: %w", err)
		}
		part, err := scanMachinePart(row)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	return parts, nil
}

func (r *SpannerMachinePartRepository) reader(ctx context.Context) (transaction.ReadTransaction, func()) {
	if reader, ok := transaction.ReadTxFromContext(ctx); ok {
		return reader, func() {}
	}
	roTx := r.client.ReadOnlyTransaction()
	return roTx, roTx.Close
}

func scanMachinePart(row *spanner.Row) (*domain.MachinePart, error) {
	var (
		machineID, partID, partName string
		qty                         int64
		updatedAt                   time.Time
	)
	if err := row.Columns(&machineID, &partID, &partName, &qty, &updatedAt); err != nil {
		return nil, fmt.Errorf("failed to scan machine part: %w", err)
	}

	parsedMachineID, err := types.ParseMachineID(machineID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse machine id: %w", err)
	}
	parsedPartID, err := types.ParsePartID(partID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse part id: %w", err)
	}
	return domain.ReconstituteMachinePart(parsedMachineID, parsedPartID, partName, int(qty), updatedAt), nil
}
