package types

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Address is a 20 byte account or contract address in lowercase 0x-prefixed hex.
type Address string

// ParseAddress validates s as a hex address and returns its canonical lowercase form.
// The 0x prefix is required.
func ParseAddress(s string) (Address, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return "", fmt.Errorf("address %q is missing the 0x prefix", s)
	}
	if !common.IsHexAddress(s) {
		return "", fmt.Errorf("address %q is not a valid 20 byte hex address", s)
	}
	return Address(strings.ToLower(common.HexToAddress(s).Hex())), nil
}

// MustParseAddress is like ParseAddress but panics on error.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// canonical lowercases a caller supplied address for lookups without validating it.
func canonical(s string) Address {
	return Address(strings.ToLower(s))
}

func (a Address) String() string {
	return string(a)
}

// Common returns the go-ethereum representation of the address.
func (a Address) Common() common.Address {
	return common.HexToAddress(string(a))
}

// Valid reports whether a is a well formed address already in canonical case.
func (a Address) Valid() bool {
	parsed, err := ParseAddress(string(a))
	return err == nil && parsed == a
}

// PoolMapping is an ordered address tuple seeded at factory creation,
// typically [pool, token0, token1].
type PoolMapping []Address

func (m PoolMapping) clone() PoolMapping {
	if m == nil {
		return nil
	}
	out := make(PoolMapping, len(m))
	copy(out, m)
	return out
}

func (m PoolMapping) equal(other PoolMapping) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		if m[i] != other[i] {
			return false
		}
	}
	return true
}
