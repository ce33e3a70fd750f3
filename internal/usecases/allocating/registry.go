package allocating

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var ErrUnknownStrategy = errors.New("estratégia de rateio desconhecida")

// Registry resolve estratégias de rateio pelo nome configurado
type Registry struct {
	mu          sync.RWMutex
	strategies  map[string]Strategy
	defaultName string
}

func NewRegistry(defaultName string, strategies ...Strategy) *Registry {
	r := &Registry{
		strategies:  make(map[string]Strategy, len(strategies)),
		defaultName: defaultName,
	}
	for _, s := range strategies {
		r.strategies[s.Name()] = s
	}
	return r
}

// DefaultRegistry registra as estratégias conhecidas com divisão igualitária como padrão
func DefaultRegistry() *Registry {
	return NewRegistry(EqualSplitName, NewEqualSplit(), NewRevenueProportional())
}

func (r *Registry) Register(s Strategy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.strategies[s.Name()] = s
}

// Get retorna a estratégia pelo nome, ou a padrão quando o nome é vazio
func (r *Registry) Get(name string) (Strategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if name == "" {
		name = r.defaultName
	}

	s, ok := r.strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return s, nil
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.strategies))
	for name := range r.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
