package persistence_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/orders/domain"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/orders/infrastructure/persistence"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/types"
)

func newStoredPart(t *testing.T, repo *persistence.InMemoryOrderPartRepository, orderID types.OrderID, partID types.PartID) *domain.OrderPart {
	t.Helper()
	part, err := domain.NewOrderPart(orderID, partID, 3, false, nil, false, false)
	if err != nil {
		t.Fatalf("failed to create order part: %v", err)
	}
	if err := repo.Insert(context.Background(), part); err != nil {
		t.Fatalf("failed to insert order part: %v", err)
	}
	return part
}

func TestInMemoryRepository_InsertAndFindByID(t *testing.T) {
	repo := persistence.NewInMemoryOrderPartRepository()
	part := newStoredPart(t, repo, types.NewOrderID(), types.NewPartID())

	found, err := repo.FindByID(context.Background(), part.ID())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if found.ID() != part.ID() {
		t.Errorf("expected ID %s, got %s", part.ID(), found.ID())
	}
	if found.Quantity() != 3 {
		t.Errorf("expected quantity 3, got %d", found.Quantity())
	}
	if found.CurrentStage() != domain.StagePending {
		t.Errorf("expected stage %s, got %s", domain.StagePending, found.CurrentStage())
	}
}

func TestInMemoryRepository_FindByIDNotFound(t *testing.T) {
	repo := persistence.NewInMemoryOrderPartRepository()

	_, err := repo.FindByID(context.Background(), types.NewOrderPartID())
	if !errors.Is(err, domain.ErrOrderPartNotFound) {
		t.Errorf("expected ErrOrderPartNotFound, got %v", err)
	}
}

func TestInMemoryRepository_TargetedWritesSurviveReload(t *testing.T) {
	repo := persistence.NewInMemoryOrderPartRepository()
	part := newStoredPart(t, repo, types.NewOrderID(), types.NewPartID())
	ctx := context.Background()

	if err := repo.SetPendingOrderApproved(ctx, part.ID(), true); err != nil {
		t.Fatalf("failed to set approval: %v", err)
	}
	vendor := "Acme Supplies"
	cost := 12.75
	if err := repo.SetCosting(ctx, part.ID(), &vendor, nil, &cost); err != nil {
		t.Fatalf("failed to set costing: %v", err)
	}

	found, err := repo.FindByID(ctx, part.ID())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !found.PendingOrderApproved() {
		t.Error("expected pending approval to persist")
	}
	if found.Vendor() == nil || *found.Vendor() != vendor {
		t.Errorf("expected vendor %q to persist, got %v", vendor, found.Vendor())
	}
	if found.UnitCost() == nil || *found.UnitCost() != cost {
		t.Errorf("expected unit cost %v to persist, got %v", cost, found.UnitCost())
	}
}

func TestInMemoryRepository_WriteToMissingRecord(t *testing.T) {
	repo := persistence.NewInMemoryOrderPartRepository()

	err := repo.SetBudgetApproved(context.Background(), types.NewOrderPartID(), true)
	if !errors.Is(err, domain.ErrOrderPartNotFound) {
		t.Errorf("expected ErrOrderPartNotFound, got %v", err)
	}
}

func TestInMemoryRepository_DeleteThenFetchNotFound(t *testing.T) {
	repo := persistence.NewInMemoryOrderPartRepository()
	part := newStoredPart(t, repo, types.NewOrderID(), types.NewPartID())
	ctx := context.Background()

	if err := repo.Delete(ctx, part.ID()); err != nil {
		t.Fatalf("failed to delete: %v", err)
	}
	_, err := repo.FindByID(ctx, part.ID())
	if !errors.Is(err, domain.ErrOrderPartNotFound) {
		t.Errorf("expected ErrOrderPartNotFound after delete, got %v", err)
	}
}

func TestInMemoryRepository_FindByOrderID(t *testing.T) {
	repo := persistence.NewInMemoryOrderPartRepository()
	orderID := types.NewOrderID()
	newStoredPart(t, repo, orderID, types.NewPartID())
	newStoredPart(t, repo, orderID, types.NewPartID())
	newStoredPart(t, repo, types.NewOrderID(), types.NewPartID())

	parts, err := repo.FindByOrderID(context.Background(), orderID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(parts) != 2 {
		t.Errorf("expected 2 parts for the order, got %d", len(parts))
	}
	for _, part := range parts {
		if part.OrderID() != orderID {
			t.Errorf("expected order %s, got %s", orderID, part.OrderID())
		}
	}
}

func TestInMemoryRepository_FindLastPurchase(t *testing.T) {
	repo := persistence.NewInMemoryOrderPartRepository()
	partID := types.NewPartID()
	ctx := context.Background()

	older := newStoredPart(t, repo, types.NewOrderID(), partID)
	newer := newStoredPart(t, repo, types.NewOrderID(), partID)

	oldCost, newCost := 10.0, 14.5
	if err := repo.SetCosting(ctx, older.ID(), nil, nil, &oldCost); err != nil {
		t.Fatalf("failed to set costing: %v", err)
	}
	if err := repo.SetCosting(ctx, newer.ID(), nil, nil, &newCost); err != nil {
		t.Fatalf("failed to set costing: %v", err)
	}
	if err := repo.SetPurchasedDate(ctx, older.ID(), time.Now().Add(-48*time.Hour)); err != nil {
		t.Fatalf("failed to set purchased date: %v", err)
	}
	if err := repo.SetPurchasedDate(ctx, newer.ID(), time.Now().Add(-time.Hour)); err != nil {
		t.Fatalf("failed to set purchased date: %v", err)
	}

	record, err := repo.FindLastPurchase(ctx, partID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if record.UnitCost != newCost {
		t.Errorf("expected latest unit cost %v, got %v", newCost, record.UnitCost)
	}
}

func TestInMemoryRepository_FindLastPurchaseNeverPurchased(t *testing.T) {
	repo := persistence.NewInMemoryOrderPartRepository()
	partID := types.NewPartID()
	newStoredPart(t, repo, types.NewOrderID(), partID)

	_, err := repo.FindLastPurchase(context.Background(), partID)
	if !errors.Is(err, domain.ErrOrderPartNotFound) {
		t.Errorf("expected ErrOrderPartNotFound, got %v", err)
	}
}

func TestInMemoryStatusRepository_ServesDefaultCatalog(t *testing.T) {
	repo := persistence.NewInMemoryStatusRepository()

	catalog, err := repo.ListStatuses(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	stages := domain.Stages()
	if len(catalog) != len(stages) {
		t.Fatalf("expected %d statuses, got %d", len(stages), len(catalog))
	}
	for i, status := range catalog {
		if status.Name != stages[i].Name() {
			t.Errorf("status %d: expected %q, got %q", i, stages[i].Name(), status.Name)
		}
		if status.Ordinal != stages[i].Ordinal() {
			t.Errorf("status %d: expected ordinal %d, got %d", i, stages[i].Ordinal(), status.Ordinal)
		}
	}
}
