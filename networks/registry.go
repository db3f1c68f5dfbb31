package networks

import (
	"fmt"

	"github.com/strangelove-ventures/subgraph-networks/types"
)

// Registry holds one validated record per supported network. It is never
// modified after construction, so it is safe for concurrent readers.
type Registry struct {
	records map[types.Network]types.SubgraphConfig
}

// NewRegistry builds and validates a record for every definition. Every
// supported network must be defined exactly once.
func NewRegistry(defs map[types.Network]Definition) (*Registry, error) {
	for n := range defs {
		if !n.Supported() {
			return nil, fmt.Errorf("definition for unsupported network %d", uint64(n))
		}
	}

	records := make(map[types.Network]types.SubgraphConfig, len(defs))
	for _, n := range types.AllNetworks() {
		def, ok := defs[n]
		if !ok {
			return nil, fmt.Errorf("network %s has no definition", n)
		}
		cfg, err := def.Build(n)
		if err != nil {
			return nil, err
		}
		records[n] = cfg
	}

	return &Registry{records: records}, nil
}

// MustNewRegistry is like NewRegistry but panics on error.
func MustNewRegistry(defs map[types.Network]Definition) *Registry {
	r, err := NewRegistry(defs)
	if err != nil {
		panic(err)
	}
	return r
}

// Resolve returns the record for the network whose runtime name is name.
// An unknown name yields an *types.UnsupportedNetworkError.
func (r *Registry) Resolve(name string) (types.SubgraphConfig, error) {
	n, err := types.ParseNetwork(name)
	if err != nil {
		return types.SubgraphConfig{}, err
	}
	cfg, _ := r.Get(n)
	return cfg, nil
}

// Get returns a copy of the record for n.
func (r *Registry) Get(n types.Network) (types.SubgraphConfig, bool) {
	cfg, ok := r.records[n]
	if !ok {
		return types.SubgraphConfig{}, false
	}
	return cfg.Clone(), true
}

// Networks returns the networks held by the registry in table order.
func (r *Registry) Networks() []types.Network {
	out := make([]types.Network, 0, len(r.records))
	for _, n := range types.AllNetworks() {
		if _, ok := r.records[n]; ok {
			out = append(out, n)
		}
	}
	return out
}

// Validate re-checks every stored record.
func (r *Registry) Validate() error {
	for _, n := range r.Networks() {
		if err := r.records[n].Validate(); err != nil {
			return err
		}
	}
	return nil
}

var defaultRegistry = MustNewRegistry(Definitions())

// Default returns the registry built from the compiled-in table.
func Default() *Registry {
	return defaultRegistry
}

// Resolve resolves name against the default registry.
func Resolve(name string) (types.SubgraphConfig, error) {
	return defaultRegistry.Resolve(name)
}
