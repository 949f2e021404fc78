package domain_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/orders/domain"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/types"
)

func TestMergeStatusTimeline_LengthAndOrderMatchCatalog(t *testing.T) {
	catalog := domain.DefaultCatalog()
	part := newTestPart(t)

	merged := domain.MergeStatusTimeline(catalog, part)

	if len(merged) != len(catalog) {
		t.Fatalf("expected %d entries, got %d", len(catalog), len(merged))
	}
	for i, entry := range merged {
		if entry.Status != catalog[i].Name {
			t.Errorf("entry %d: expected %q, got %q", i, catalog[i].Name, entry.Status)
		}
	}
}

func TestMergeStatusTimeline_Idempotent(t *testing.T) {
	catalog := domain.DefaultCatalog()
	part := newTestPart(t)
	completeThrough(t, part, domain.StageWaitingForPurchase)

	first := domain.MergeStatusTimeline(catalog, part)
	second := domain.MergeStatusTimeline(catalog, part)

	if !reflect.DeepEqual(first, second) {
		t.Error("merging twice on the same inputs must yield identical output")
	}
}

func TestMergeStatusTimeline_NoFlagsSet(t *testing.T) {
	// Catalog subset: Pending, Budget Released, Waiting For Purchase, Purchase Complete.
	catalog := []domain.StatusDefinition{
		{ID: 1, Name: "Pending", Ordinal: 1},
		{ID: 4, Name: "Budget Released", Ordinal: 4},
		{ID: 5, Name: "Waiting For Purchase", Ordinal: 5},
		{ID: 6, Name: "Purchase Complete", Ordinal: 6},
	}
	part := newTestPart(t)

	merged := domain.MergeStatusTimeline(catalog, part)

	if len(merged) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(merged))
	}
	for i, entry := range merged {
		if entry.Complete {
			t.Errorf("entry %d (%s): expected incomplete", i, entry.Status)
		}
		if entry.ActionBy != string(domain.ActorUnknown) {
			t.Errorf("entry %d: expected actor placeholder, got %q", i, entry.ActionBy)
		}
	}
}

func TestMergeStatusTimeline_CompletedStagesCarryMetadata(t *testing.T) {
	catalog := domain.DefaultCatalog()
	part := newTestPart(t)
	completeThrough(t, part, domain.StagePurchaseComplete)

	merged := domain.MergeStatusTimeline(catalog, part)

	for i, entry := range merged {
		wantComplete := i < int(domain.StagePurchaseComplete)
		if entry.Complete != wantComplete {
			t.Errorf("entry %d (%s): complete = %v, want %v", i, entry.Status, entry.Complete, wantComplete)
		}
	}

	purchase := merged[domain.StageWaitingForPurchase]
	if purchase.ActionAt == nil {
		t.Error("purchase entry should carry the purchase timestamp")
	}
	if purchase.ActionBy != string(domain.ActorHeadOffice) {
		t.Errorf("purchase entry actor: got %q, want %q", purchase.ActionBy, domain.ActorHeadOffice)
	}

	pending := merged[domain.StagePending]
	if pending.ActionAt != nil {
		t.Error("boolean milestones carry no timestamp")
	}
	if pending.ActionBy != string(domain.ActorFactoryStorage) {
		t.Errorf("pending entry actor: got %q, want %q", pending.ActionBy, domain.ActorFactoryStorage)
	}
}

func TestMergeStatusTimeline_TotalOnUnknownInput(t *testing.T) {
	catalog := []domain.StatusDefinition{
		{ID: 99, Name: "Not A Real Stage", Ordinal: 1},
	}

	merged := domain.MergeStatusTimeline(catalog, nil)

	if len(merged) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(merged))
	}
	if merged[0].Complete {
		t.Error("unknown stage on nil part must degenerate to incomplete")
	}
}

func TestDefaultCatalog_OrdinalOrder(t *testing.T) {
	catalog := domain.DefaultCatalog()

	if len(catalog) != len(domain.Stages()) {
		t.Fatalf("expected %d definitions, got %d", len(domain.Stages()), len(catalog))
	}
	for i := 1; i < len(catalog); i++ {
		if catalog[i].Ordinal <= catalog[i-1].Ordinal {
			t.Fatalf("catalog not in ordinal order at index %d", i)
		}
	}
}

func TestStageByName_RoundTrips(t *testing.T) {
	for _, stage := range domain.Stages() {
		got, ok := domain.StageByName(stage.Name())
		if !ok || got != stage {
			t.Errorf("StageByName(%q) = %v, %v", stage.Name(), got, ok)
		}
	}
	if _, ok := domain.StageByName("nope"); ok {
		t.Error("unknown name must not resolve")
	}
}

func TestReconstituteOrderPart_PreservesDerivedStage(t *testing.T) {
	now := time.Now().UTC()
	vendor := "Acme"
	cost := 12.5
	part := domain.ReconstituteOrderPart(
		types.NewOrderPartID(), types.NewOrderID(), types.NewPartID(), 3,
		&vendor, nil, &cost,
		nil, nil,
		false, false,
		true, true, true,
		false, false,
		nil, nil, nil,
		now, now,
	)

	if got := part.CurrentStage(); got != domain.StageWaitingForPurchase {
		t.Errorf("expected %q, got %q", domain.StageWaitingForPurchase, got)
	}
}
