package types

// TokenOverride replaces the on-chain symbol, name and decimals of a token
// whose metadata calls revert or return wrong values.
type TokenOverride struct {
	Address  Address
	Symbol   string
	Name     string
	Decimals uint32
}
