package domain_test

import (
	"testing"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/machines/domain"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/types"
)

func TestMachineQuery_Defaults(t *testing.T) {
	q := domain.NewMachineQuery()

	if q.Page() != 1 {
		t.Errorf("expected default page 1, got %d", q.Page())
	}
	if q.Limit() != 10 {
		t.Errorf("expected default limit 10, got %d", q.Limit())
	}
	if q.FactorySectionID() != nil {
		t.Error("expected no section filter by default")
	}
	if q.RunningSort() != domain.SortNone {
		t.Error("expected no sort by default")
	}
}

func TestMachineQuery_WithReturnsCopies(t *testing.T) {
	base := domain.NewMachineQuery()
	filtered := base.WithFactorySection(7).WithPage(3, 25).WithRunningSort(domain.SortDesc)

	if base.FactorySectionID() != nil || base.Page() != 1 {
		t.Error("expected base query to be unchanged")
	}
	if filtered.FactorySectionID() == nil || *filtered.FactorySectionID() != 7 {
		t.Errorf("expected section filter 7, got %v", filtered.FactorySectionID())
	}
	if filtered.Page() != 3 || filtered.Limit() != 25 {
		t.Errorf("expected page 3 limit 25, got %d/%d", filtered.Page(), filtered.Limit())
	}
	if filtered.Offset() != 50 {
		t.Errorf("expected offset 50, got %d", filtered.Offset())
	}
}

func TestMachineQuery_ClampsPagination(t *testing.T) {
	q := domain.NewMachineQuery().WithPage(0, 1000)

	if q.Page() != 1 {
		t.Errorf("expected page clamped to 1, got %d", q.Page())
	}
	if q.Limit() != 100 {
		t.Errorf("expected limit clamped to 100, got %d", q.Limit())
	}
}

func TestMachinePart_AddQuantity(t *testing.T) {
	part, err := domain.NewMachinePart(types.NewMachineID(), types.NewPartID(), "bearing", 5)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := part.AddQuantity(3); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if part.Quantity() != 8 {
		t.Errorf("expected quantity 8, got %d", part.Quantity())
	}

	if err := part.AddQuantity(-10); err != domain.ErrInvalidQuantity {
		t.Errorf("expected ErrInvalidQuantity for negative total, got %v", err)
	}
	if part.Quantity() != 8 {
		t.Errorf("expected quantity unchanged at 8, got %d", part.Quantity())
	}
}

func TestNewMachinePart_RejectsNegativeQuantity(t *testing.T) {
	_, err := domain.NewMachinePart(types.NewMachineID(), types.NewPartID(), "bearing", -1)
	if err != domain.ErrInvalidQuantity {
		t.Errorf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestNewMachine_RequiresName(t *testing.T) {
	_, err := domain.NewMachine("", "loom", 1)
	if err != domain.ErrMachineNameRequired {
		t.Errorf("expected ErrMachineNameRequired, got %v", err)
	}
}
