package types

import (
	"cosmossdk.io/math"
)

// SubgraphConfig holds every per-network parameter the indexing logic needs.
// Values handed out by the registry are copies; mutating one has no effect on
// the registry or on other consumers.
type SubgraphConfig struct {
	Network Network

	// deployment address of the pool factory
	FactoryAddress Address

	// pool pairing a stablecoin with the wrapped native token, used to derive
	// the native token's USD price. Prefer the pool with the most liquidity.
	StablecoinWrappedNativePoolAddress Address

	// true if the stablecoin is token0 of StablecoinWrappedNativePoolAddress
	StablecoinIsToken0 bool

	// token tracking the native asset price, usually the wrapped native token
	WrappedNativeAddress Address

	// pools with less native token locked are not used for price derivation
	MinimumNativeLocked math.LegacyDec

	StablecoinAddresses []Address

	// a token must share a pool with one of these to get a derived price;
	// also decides whether volume is tracked
	WhitelistTokens []Address

	TokenOverrides []TokenOverride

	// pools never created by the pool-created handler
	PoolsToSkip []Address

	// pools and tokens initialized on factory creation
	PoolMappings []PoolMapping
}

// IsWhitelisted reports whether addr is a whitelist token. addr may be in any case.
func (c SubgraphConfig) IsWhitelisted(addr string) bool {
	return containsAddress(c.WhitelistTokens, canonical(addr))
}

// IsStablecoin reports whether addr is one of the ground-truth priced stablecoins.
func (c SubgraphConfig) IsStablecoin(addr string) bool {
	return containsAddress(c.StablecoinAddresses, canonical(addr))
}

// ShouldSkipPool reports whether the pool at addr is excluded from indexing.
func (c SubgraphConfig) ShouldSkipPool(addr string) bool {
	return containsAddress(c.PoolsToSkip, canonical(addr))
}

// TokenOverride returns the metadata override for addr, if any.
func (c SubgraphConfig) TokenOverride(addr string) (TokenOverride, bool) {
	want := canonical(addr)
	for _, o := range c.TokenOverrides {
		if o.Address == want {
			return o, true
		}
	}
	return TokenOverride{}, false
}

// Clone returns a deep copy of c.
func (c SubgraphConfig) Clone() SubgraphConfig {
	out := c
	if !c.MinimumNativeLocked.IsNil() {
		out.MinimumNativeLocked = c.MinimumNativeLocked.Clone()
	}
	out.StablecoinAddresses = cloneAddresses(c.StablecoinAddresses)
	out.WhitelistTokens = cloneAddresses(c.WhitelistTokens)
	out.PoolsToSkip = cloneAddresses(c.PoolsToSkip)
	if c.TokenOverrides != nil {
		out.TokenOverrides = make([]TokenOverride, len(c.TokenOverrides))
		copy(out.TokenOverrides, c.TokenOverrides)
	}
	if c.PoolMappings != nil {
		out.PoolMappings = make([]PoolMapping, len(c.PoolMappings))
		for i, m := range c.PoolMappings {
			out.PoolMappings[i] = m.clone()
		}
	}
	return out
}

// Equal reports whether c and other hold the same values. A nil and an empty
// list are considered equal.
func (c SubgraphConfig) Equal(other SubgraphConfig) bool {
	if c.Network != other.Network ||
		c.FactoryAddress != other.FactoryAddress ||
		c.StablecoinWrappedNativePoolAddress != other.StablecoinWrappedNativePoolAddress ||
		c.StablecoinIsToken0 != other.StablecoinIsToken0 ||
		c.WrappedNativeAddress != other.WrappedNativeAddress {
		return false
	}

	switch {
	case c.MinimumNativeLocked.IsNil() != other.MinimumNativeLocked.IsNil():
		return false
	case !c.MinimumNativeLocked.IsNil() && !c.MinimumNativeLocked.Equal(other.MinimumNativeLocked):
		return false
	}

	if !equalAddresses(c.StablecoinAddresses, other.StablecoinAddresses) ||
		!equalAddresses(c.WhitelistTokens, other.WhitelistTokens) ||
		!equalAddresses(c.PoolsToSkip, other.PoolsToSkip) {
		return false
	}

	if len(c.TokenOverrides) != len(other.TokenOverrides) {
		return false
	}
	for i := range c.TokenOverrides {
		if c.TokenOverrides[i] != other.TokenOverrides[i] {
			return false
		}
	}

	if len(c.PoolMappings) != len(other.PoolMappings) {
		return false
	}
	for i := range c.PoolMappings {
		if !c.PoolMappings[i].equal(other.PoolMappings[i]) {
			return false
		}
	}
	return true
}

func containsAddress(list []Address, a Address) bool {
	for _, item := range list {
		if item == a {
			return true
		}
	}
	return false
}

func cloneAddresses(list []Address) []Address {
	if list == nil {
		return nil
	}
	out := make([]Address, len(list))
	copy(out, list)
	return out
}

func equalAddresses(a, b []Address) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
