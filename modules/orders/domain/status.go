package domain

// StatusDefinition is one row of the status catalog: a named workflow stage
// and its position in the canonical sequence. The catalog is seed data and is
// never mutated by the workflow.
type StatusDefinition struct {
	ID      int64
	Name    string
	Ordinal int
}

// DefaultCatalog returns the seeded status catalog in ordinal order.
// It mirrors the StatusDefinitions table contents.
func DefaultCatalog() []StatusDefinition {
	stages := Stages()
	catalog := make([]StatusDefinition, len(stages))
	for i, stage := range stages {
		catalog[i] = StatusDefinition{
			ID:      int64(i + 1),
			Name:    stage.Name(),
			Ordinal: stage.Ordinal(),
		}
	}
	return catalog
}
