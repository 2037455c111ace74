package contract

import (
	"strings"

	"incrementer/sdk"
)

// -----------------------------------------------------------------------------
// Call Payloads
// -----------------------------------------------------------------------------

// InitArgs carries the optional init values for contract_init. Every field
// may be omitted; missing counters fall back to zero and a missing balance
// falls back to the contract's hive balance snapshot.
//
//tinyjson:json
type InitArgs struct {
	Value      *bool   `json:"value"`
	Number     *uint32 `json:"number"`
	LazyNumber *uint32 `json:"lazyNumber"`
	Balance    *uint64 `json:"balance"`
}

// SetValueArgs is the payload for set_number / set_number_lazy / set_my_number.
//
//tinyjson:json
type SetValueArgs struct {
	Value uint32 `json:"value"`
}

// IncArgs is the payload for inc / inc_lazy.
//
//tinyjson:json
type IncArgs struct {
	By uint32 `json:"by"`
}

// AccountArgs names the account for the open read (get).
//
//tinyjson:json
type AccountArgs struct {
	Account string `json:"account"`
}

// -----------------------------------------------------------------------------
// Decode Helpers
// -----------------------------------------------------------------------------

// payloadEmpty treats nil, blank and JSON null payloads the same way.
func payloadEmpty(payload *string) bool {
	if payload == nil {
		return true
	}
	trimmed := strings.TrimSpace(*payload)
	return trimmed == "" || trimmed == "null"
}

// decodeInitArgs parses the optional init payload, nil when absent.
func decodeInitArgs(payload *string) *InitArgs {
	if payloadEmpty(payload) {
		return nil
	}
	args := &InitArgs{}
	if err := args.UnmarshalJSON([]byte(*payload)); err != nil {
		sdk.Abort("invalid init payload: " + err.Error())
	}
	return args
}

// decodeSetValueArgs parses a required {"value": n} payload.
func decodeSetValueArgs(payload *string) *SetValueArgs {
	if payloadEmpty(payload) {
		sdk.Abort("value payload required")
	}
	args := &SetValueArgs{}
	if err := args.UnmarshalJSON([]byte(*payload)); err != nil {
		sdk.Abort("invalid value payload: " + err.Error())
	}
	return args
}

// decodeIncArgs parses a required {"by": n} payload.
func decodeIncArgs(payload *string) *IncArgs {
	if payloadEmpty(payload) {
		sdk.Abort("increment payload required")
	}
	args := &IncArgs{}
	if err := args.UnmarshalJSON([]byte(*payload)); err != nil {
		sdk.Abort("invalid increment payload: " + err.Error())
	}
	return args
}

// decodeAccountArgs parses a required {"account": "hive:..."} payload and
// sanity-checks the address shape.
func decodeAccountArgs(payload *string) sdk.Address {
	if payloadEmpty(payload) {
		sdk.Abort("account payload required")
	}
	args := &AccountArgs{}
	if err := args.UnmarshalJSON([]byte(*payload)); err != nil {
		sdk.Abort("invalid account payload: " + err.Error())
	}
	addr := sdk.Address(args.Account)
	if !addr.IsValid() {
		sdk.Abort("invalid account address: " + args.Account)
	}
	return addr
}

// Convenience helper
func strptr(s string) *string { return &s }
