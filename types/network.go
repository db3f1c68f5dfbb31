package types

import (
	"fmt"
)

// Network identifies a supported chain. The value is the chain's EVM chain id.
type Network uint64

const (
	ArbitrumOne  Network = 42161
	Avalanche    Network = 43114
	Base         Network = 8453
	BlastMainnet Network = 81457
	BSC          Network = 56
	Celo         Network = 42220
	Mainnet      Network = 1
	Matic        Network = 137
	Optimism     Network = 10
	SmartBCH     Network = 10000
)

// networkNames maps each supported network to the name the indexing runtime reports for it.
var networkNames = map[Network]string{
	ArbitrumOne:  "arbitrum-one",
	Avalanche:    "avalanche",
	Base:         "base",
	BlastMainnet: "blast-mainnet",
	BSC:          "bsc",
	Celo:         "celo",
	Mainnet:      "mainnet",
	Matic:        "matic",
	Optimism:     "optimism",
	SmartBCH:     "smartbch-mainnet",
}

// allNetworks is the supported set in table order.
var allNetworks = []Network{
	ArbitrumOne,
	Avalanche,
	Base,
	BlastMainnet,
	BSC,
	SmartBCH,
	Celo,
	Mainnet,
	Matic,
	Optimism,
}

var networksByName map[string]Network

func init() {
	if len(allNetworks) != len(networkNames) {
		panic(fmt.Sprintf("network list has %d entries but %d names are defined", len(allNetworks), len(networkNames)))
	}

	networksByName = make(map[string]Network, len(networkNames))
	for _, n := range allNetworks {
		name, ok := networkNames[n]
		if !ok || name == "" {
			panic(fmt.Sprintf("network %d has no name", uint64(n)))
		}
		if prev, dup := networksByName[name]; dup {
			panic(fmt.Sprintf("networks %d and %d share the name %q", uint64(prev), uint64(n), name))
		}
		networksByName[name] = n
	}
}

// ParseNetwork returns the network whose canonical name is exactly name.
// Matching is case-sensitive and there is no default.
func ParseNetwork(name string) (Network, error) {
	n, ok := networksByName[name]
	if !ok {
		return 0, &UnsupportedNetworkError{Name: name}
	}
	return n, nil
}

// AllNetworks returns every supported network.
func AllNetworks() []Network {
	out := make([]Network, len(allNetworks))
	copy(out, allNetworks)
	return out
}

// Name returns the canonical runtime name, or "" for an unsupported value.
func (n Network) Name() string {
	return networkNames[n]
}

func (n Network) ChainID() uint64 {
	return uint64(n)
}

// Supported reports whether n is one of the defined networks.
func (n Network) Supported() bool {
	_, ok := networkNames[n]
	return ok
}

func (n Network) String() string {
	if name, ok := networkNames[n]; ok {
		return name
	}
	return fmt.Sprintf("network(%d)", uint64(n))
}

func (n Network) MarshalText() ([]byte, error) {
	name, ok := networkNames[n]
	if !ok {
		return nil, fmt.Errorf("cannot marshal unsupported network %d", uint64(n))
	}
	return []byte(name), nil
}

func (n *Network) UnmarshalText(text []byte) error {
	parsed, err := ParseNetwork(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
