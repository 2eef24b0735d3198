package ackermann

import (
	"sort"
	"sync"

	apperrors "github.com/agbru/recur/internal/errors"
)

// DefaultStrategy is the strategy the Ackermann program runs with.
const DefaultStrategy = "recursive"

// Factory is a registry of Calculator strategies keyed by name.
type Factory struct {
	mu          sync.RWMutex
	calculators map[string]Calculator
}

// NewFactory returns an empty factory.
func NewFactory() *Factory {
	return &Factory{calculators: make(map[string]Calculator)}
}

// NewDefaultFactory returns a factory with the built-in strategies registered.
func NewDefaultFactory() *Factory {
	f := NewFactory()
	f.Register(Recursive{})
	f.Register(Stack{})
	return f
}

// Register adds or replaces a strategy under its Name.
func (f *Factory) Register(c Calculator) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calculators[c.Name()] = c
}

// Get returns the strategy registered under name.
func (f *Factory) Get(name string) (Calculator, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	c, ok := f.calculators[name]
	if !ok {
		return nil, apperrors.NewConfigError("unknown ackermann strategy %q", name)
	}
	return c, nil
}

// List returns the registered names in sorted order.
func (f *Factory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]string, 0, len(f.calculators))
	for name := range f.calculators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll returns every registered strategy, ordered by name.
func (f *Factory) GetAll() []Calculator {
	names := f.List()
	f.mu.RLock()
	defer f.mu.RUnlock()
	all := make([]Calculator, 0, len(names))
	for _, name := range names {
		all = append(all, f.calculators[name])
	}
	return all
}
