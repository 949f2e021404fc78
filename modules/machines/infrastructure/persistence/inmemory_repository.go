package persistence

import (
	"context"
	"sort"
	"sync"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/machines/domain"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/types"
)

// InMemoryMachineRepository implements MachineRepository using in-memory
// storage, for tests and local development.
type InMemoryMachineRepository struct {
	mu       sync.RWMutex
	machines map[string]*domain.Machine
}

func NewInMemoryMachineRepository() *InMemoryMachineRepository {
	return &InMemoryMachineRepository{
		machines: make(map[string]*domain.Machine),
	}
}

func (r *InMemoryMachineRepository) Insert(ctx context.Context, machine *domain.Machine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.machines[machine.ID().String()] = machine
	return nil
}

func (r *InMemoryMachineRepository) FindByID(ctx context.Context, id types.MachineID) (*domain.Machine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	machine, exists := r.machines[id.String()]
	if !exists {
		return nil, domain.ErrMachineNotFound
	}
	return machine, nil
}

func (r *InMemoryMachineRepository) List(ctx context.Context, query domain.MachineQuery) ([]*domain.Machine, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*domain.Machine
	for _, machine := range r.machines {
		if sectionID := query.FactorySectionID(); sectionID != nil && machine.FactorySectionID() != *sectionID {
			continue
		}
		matched = append(matched, machine)
	}

	sort.Slice(matched, func(i, j int) bool {
		switch query.RunningSort() {
		case domain.SortAsc:
			if matched[i].IsRunning() != matched[j].IsRunning() {
				return !matched[i].IsRunning()
			}
		case domain.SortDesc:
			if matched[i].IsRunning() != matched[j].IsRunning() {
				return matched[i].IsRunning()
			}
		}
		return matched[i].Name() < matched[j].Name()
	})

	total := len(matched)
	offset := query.Offset()
	if offset >= total {
		return []*domain.Machine{}, total, nil
	}
	end := offset + query.Limit()
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (r *InMemoryMachineRepository) SetRunning(ctx context.Context, id types.MachineID, running bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	machine, exists := r.machines[id.String()]
	if !exists {
		return domain.ErrMachineNotFound
	}
	machine.SetRunning(running)
	return nil
}

func (r *InMemoryMachineRepository) CountByRunning(ctx context.Context, running bool) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, machine := range r.machines {
		if machine.IsRunning() == running {
			count++
		}
	}
	return count, nil
}

// InMemoryMachinePartRepository implements MachinePartRepository with the
// same composite-key upsert semantics as the table store.
type InMemoryMachinePartRepository struct {
	mu    sync.RWMutex
	parts map[string]*domain.MachinePart
}

func NewInMemoryMachinePartRepository() *InMemoryMachinePartRepository {
	return &InMemoryMachinePartRepository{
		parts: make(map[string]*domain.MachinePart),
	}
}

func compositeKey(machineID types.MachineID, partID types.PartID) string {
	return machineID.String() + "/" + partID.String()
}

func (r *InMemoryMachinePartRepository) Upsert(ctx context.Context, part *domain.MachinePart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parts[compositeKey(part.MachineID(), part.PartID())] = part
	return nil
}

func (r *InMemoryMachinePartRepository) Find(ctx context.Context, machineID types.MachineID, partID types.PartID) (*domain.MachinePart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	part, exists := r.parts[compositeKey(machineID, partID)]
	if !exists {
		return nil, domain.ErrMachinePartNotFound
	}
	return part, nil
}

func (r *InMemoryMachinePartRepository) List(ctx context.Context, filter domain.MachinePartFilter) ([]*domain.MachinePart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*domain.MachinePart
	for _, part := range r.parts {
		if filter.MachineID != nil && part.MachineID().String() != *filter.MachineID {
			continue
		}
		if filter.PartID != nil && part.PartID().String() != *filter.PartID {
			continue
		}
		matched = append(matched, part)
	}
	sort.Slice(matched, func(i, j int) bool {
		return compositeKey(matched[i].MachineID(), matched[i].PartID()) <
			compositeKey(matched[j].MachineID(), matched[j].PartID())
	})
	return matched, nil
}
