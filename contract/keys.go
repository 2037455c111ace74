package contract

import "incrementer/sdk"

// -----------------------------------------------------------------------------
// Storage Keys
// -----------------------------------------------------------------------------

const (
	// ContractConfigKey stores the init snapshot (deployer account + balance).
	ContractConfigKey = "cfg"
	// BoolValueKey stores the contract flag as "0"/"1".
	BoolValueKey = "bool"
	// NumberKey stores the eagerly loaded counter as a decimal string.
	NumberKey = "number"
	// LazyNumberKey stores the lazily loaded counter as a decimal string.
	LazyNumberKey = "number:lazy"
)

// kAccountNumber prefixes per-account counter entries so they sit in their
// own keyspace next to the scalar cells.
const kAccountNumber byte = 0x01

// accountNumberKey builds the storage key for one account's counter.
func accountNumberKey(addr sdk.Address) string {
	a := addr.String()
	buf := make([]byte, 0, 1+len(a))
	buf = append(buf, kAccountNumber)
	buf = append(buf, a...)
	return string(buf)
}
