package domain

import "time"

// MergedStatusEntry is the display-ready view of one catalog stage against an
// order part's progress. It is derived on every read and never persisted.
type MergedStatusEntry struct {
	Status   string     `json:"status"`
	ActionAt *time.Time `json:"action_at"`
	ActionBy string     `json:"action_by"`
	Complete bool       `json:"complete"`
}

// MergeStatusTimeline zips the status catalog against an order part's
// milestone flags, producing one entry per catalog row in catalog order.
//
// The function is pure and total: it performs no I/O, never fails, and never
// skips or reorders entries. A catalog name the workflow does not recognize,
// or a nil part, degenerates to an incomplete entry. Actor attribution is
// best-effort: no actor is persisted per milestone, so completed entries
// report the stage's owning role and incomplete ones a placeholder.
func MergeStatusTimeline(catalog []StatusDefinition, part *OrderPart) []MergedStatusEntry {
	merged := make([]MergedStatusEntry, 0, len(catalog))
	for _, def := range catalog {
		entry := MergedStatusEntry{
			Status:   def.Name,
			ActionBy: string(ActorUnknown),
		}
		if stage, ok := StageByName(def.Name); ok && stage.CompletedIn(part) {
			entry.Complete = true
			entry.ActionAt = stage.CompletedAt(part)
			entry.ActionBy = string(stage.Owner())
		}
		merged = append(merged, entry)
	}
	return merged
}
