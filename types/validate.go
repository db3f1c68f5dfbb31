package types

// Validate checks c against the invariants every registry record must hold.
// The first violation found is returned as an *InvalidConfigError.
func (c SubgraphConfig) Validate() error {
	n := c.Network
	if !n.Supported() {
		return invalid(n, "network", "network %d is not supported", uint64(n))
	}

	if err := validateAddress(n, "factoryAddress", c.FactoryAddress); err != nil {
		return err
	}
	if err := validateAddress(n, "stablecoinWrappedNativePoolAddress", c.StablecoinWrappedNativePoolAddress); err != nil {
		return err
	}
	if err := validateAddress(n, "wrappedNativeAddress", c.WrappedNativeAddress); err != nil {
		return err
	}

	if c.MinimumNativeLocked.IsNil() {
		return invalid(n, "minimumNativeLocked", "must be set")
	}
	if !c.MinimumNativeLocked.IsPositive() {
		return invalid(n, "minimumNativeLocked", "must be greater than zero (minimumNativeLocked: %s)", c.MinimumNativeLocked)
	}

	if err := validateUniqueAddresses(n, "stablecoinAddresses", c.StablecoinAddresses); err != nil {
		return err
	}
	if err := validateUniqueAddresses(n, "whitelistTokens", c.WhitelistTokens); err != nil {
		return err
	}
	if !containsAddress(c.WhitelistTokens, c.WrappedNativeAddress) {
		return invalid(n, "whitelistTokens", "wrapped native token %s must be whitelisted", c.WrappedNativeAddress)
	}

	seen := make(map[Address]struct{}, len(c.TokenOverrides))
	for _, o := range c.TokenOverrides {
		if err := validateAddress(n, "tokenOverrides", o.Address); err != nil {
			return err
		}
		if _, dup := seen[o.Address]; dup {
			return invalid(n, "tokenOverrides", "duplicate override for %s", o.Address)
		}
		seen[o.Address] = struct{}{}
	}

	for _, p := range c.PoolsToSkip {
		if err := validateAddress(n, "poolsToSkip", p); err != nil {
			return err
		}
	}

	for i, m := range c.PoolMappings {
		if len(m) == 0 {
			return invalid(n, "poolMappings", "entry %d is empty", i)
		}
		for _, a := range m {
			if err := validateAddress(n, "poolMappings", a); err != nil {
				return err
			}
		}
	}

	return nil
}

func validateAddress(n Network, field string, a Address) error {
	if a == "" {
		return invalid(n, field, "address must be set")
	}
	if !a.Valid() {
		return invalid(n, field, "%q is not a canonical lowercase hex address", string(a))
	}
	return nil
}

func validateUniqueAddresses(n Network, field string, list []Address) error {
	seen := make(map[Address]struct{}, len(list))
	for _, a := range list {
		if err := validateAddress(n, field, a); err != nil {
			return err
		}
		if _, dup := seen[a]; dup {
			return invalid(n, field, "duplicate address %s", a)
		}
		seen[a] = struct{}{}
	}
	return nil
}
