package runtime

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/samber/lo"

	"roomlist-lab/contract"
	"roomlist-lab/errors"
)

// Registry tracks the attached sources in insertion order, so that
// rebuilds iterate them deterministically.
type Registry struct {
	mu      sync.RWMutex
	log     *slog.Logger
	sources []contract.Source
}

func NewRegistry(log *slog.Logger) *Registry {
	return &Registry{log: log}
}

// Attach registers a source. Attaching a source twice is an integrity
// slip: logged, nothing changes.
func (r *Registry) Attach(s contract.Source) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if lo.Contains(r.sources, s) {
		r.log.Warn(fmt.Sprintf("Source %s is already attached", s.ID()))
		return errors.ErrAlreadyListed
	}
	r.sources = append(r.sources, s)
	return nil
}

// Detach removes a source, keeping the relative order of the others.
func (r *Registry) Detach(s contract.Source) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	pos := lo.IndexOf(r.sources, s)
	if pos < 0 {
		r.log.Error(fmt.Sprintf("Source %s is missing in the registry", s.ID()))
		return errors.ErrUnknownSource
	}
	r.sources = append(r.sources[:pos], r.sources[pos+1:]...)
	return nil
}

func (r *Registry) Contains(s contract.Source) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Contains(r.sources, s)
}

// Sources returns the attached sources in attach order.
func (r *Registry) Sources() []contract.Source {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]contract.Source(nil), r.sources...)
}

// TotalRooms aggregates the room count over every attached source.
func (r *Registry) TotalRooms() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := 0
	for _, s := range r.sources {
		total += len(s.Rooms())
	}
	return total
}
