////////////////////////////////////////////////////////////////////////////////
// incrementer: a counter contract for the vsc network
////////////////////////////////////////////////////////////////////////////////

package contract

import (
	"strconv"

	"incrementer/sdk"
)

// -----------------------------------------------------------------------------
// Contract Initialization
// -----------------------------------------------------------------------------

// ContractInit initializes the contract with the caller as the stored
// account identity. Must be called before any other function.
// Payload (optional): {"value":bool,"number":u32,"lazyNumber":u32,"balance":u64}
// An empty payload initializes every field to its zero value; a payload
// without "balance" snapshots the contract's hive balance instead.
//
//go:wasmexport contract_init
func ContractInit(payload *string) *string {
	if isContractInitialized() {
		sdk.Abort("contract already initialized")
	}

	account := getSenderAddress()
	args := decodeInitArgs(payload)

	var inc *Incrementer
	if args == nil {
		inc = DefaultIncrementer(account)
	} else {
		var initValue bool
		var initNumber, initLazyNumber uint32
		var initBalance uint64
		if args.Value != nil {
			initValue = *args.Value
		}
		if args.Number != nil {
			initNumber = *args.Number
		}
		if args.LazyNumber != nil {
			initLazyNumber = *args.LazyNumber
		}
		if args.Balance != nil {
			initBalance = *args.Balance
		} else {
			initBalance = contractHiveBalance()
		}
		inc = NewIncrementer(initValue, initNumber, initLazyNumber, initBalance, account)
	}

	emitInitEvent(inc.Account().String(), inc.Balance())
	return strptr("initialized")
}

// contractHiveBalance snapshots the contract's own hive balance at init.
func contractHiveBalance() uint64 {
	bal := sdk.GetBalance(sdk.Address(currentEnv().ContractId), sdk.AssetHive)
	if bal < 0 {
		return 0
	}
	return uint64(bal)
}

// -----------------------------------------------------------------------------
// Flag
// -----------------------------------------------------------------------------

// Flip negates the stored flag and returns the new value.
//
//go:wasmexport flip
func Flip(_ *string) *string {
	inc := loadIncrementer()
	inc.Flip()
	v := inc.Bool()
	emitFlipEvent(getSenderAddress().String(), v)
	return strptr(strconv.FormatBool(v))
}

// GetBool returns the current flag value.
//
//go:wasmexport get_bool
func GetBool(_ *string) *string {
	inc := loadIncrementer()
	return strptr(strconv.FormatBool(inc.Bool()))
}

// -----------------------------------------------------------------------------
// Eager Counter
// -----------------------------------------------------------------------------

// GetNumber returns the current counter value.
//
//go:wasmexport get_number
func GetNumber(_ *string) *string {
	inc := loadIncrementer()
	return strptr(encodeU32(inc.Number()))
}

// SetNumber replaces the counter. Payload: {"value": n}
//
//go:wasmexport set_number
func SetNumber(payload *string) *string {
	args := decodeSetValueArgs(payload)
	inc := loadIncrementer()
	inc.SetNumber(args.Value)
	emitNumberEvent("set", getSenderAddress().String(), inc.Number())
	return strptr(encodeU32(inc.Number()))
}

// Inc adds to the counter (wrapping). Payload: {"by": n}
//
//go:wasmexport inc
func Inc(payload *string) *string {
	args := decodeIncArgs(payload)
	inc := loadIncrementer()
	inc.Inc(args.By)
	emitNumberEvent("inc", getSenderAddress().String(), inc.Number())
	return strptr(encodeU32(inc.Number()))
}

// -----------------------------------------------------------------------------
// Lazy Counter
// -----------------------------------------------------------------------------

// GetNumberLazy returns the lazily loaded counter, materializing it on the
// first access of this call.
//
//go:wasmexport get_number_lazy
func GetNumberLazy(_ *string) *string {
	inc := loadIncrementer()
	return strptr(encodeU32(inc.LazyNumber()))
}

// SetNumberLazy replaces the lazy counter. Payload: {"value": n}
//
//go:wasmexport set_number_lazy
func SetNumberLazy(payload *string) *string {
	args := decodeSetValueArgs(payload)
	inc := loadIncrementer()
	inc.SetLazyNumber(args.Value)
	emitNumberEvent("lset", getSenderAddress().String(), inc.LazyNumber())
	return strptr(encodeU32(inc.LazyNumber()))
}

// IncLazy adds to the lazy counter (wrapping). Payload: {"by": n}
//
//go:wasmexport inc_lazy
func IncLazy(payload *string) *string {
	args := decodeIncArgs(payload)
	inc := loadIncrementer()
	inc.IncLazy(args.By)
	emitNumberEvent("linc", getSenderAddress().String(), inc.LazyNumber())
	return strptr(encodeU32(inc.LazyNumber()))
}

// -----------------------------------------------------------------------------
// Per-Account Counters
// -----------------------------------------------------------------------------

// GetOf returns any account's counter, "0" when never written.
// Payload: {"account": "hive:..."}
//
//go:wasmexport get
func GetOf(payload *string) *string {
	of := decodeAccountArgs(payload)
	inc := loadIncrementer()
	return strptr(encodeU32(inc.NumberOf(of)))
}

// GetMyNumber returns the calling account's counter.
//
//go:wasmexport get_my_number
func GetMyNumber(_ *string) *string {
	inc := loadIncrementer()
	return strptr(encodeU32(inc.MyNumber(getSenderAddress())))
}

// SetMyNumber replaces the calling account's counter. Payload: {"value": n}
//
//go:wasmexport set_my_number
func SetMyNumber(payload *string) *string {
	args := decodeSetValueArgs(payload)
	caller := getSenderAddress()
	inc := loadIncrementer()
	inc.SetMyNumber(caller, args.Value)
	emitMyNumberEvent("set", caller.String(), inc.MyNumber(caller))
	return strptr(encodeU32(inc.MyNumber(caller)))
}

// AddMyNumber adds to the calling account's counter (wrapping).
// Payload: {"value": n}
//
//go:wasmexport add_my_number
func AddMyNumber(payload *string) *string {
	args := decodeSetValueArgs(payload)
	caller := getSenderAddress()
	inc := loadIncrementer()
	inc.AddMyNumber(caller, args.Value)
	emitMyNumberEvent("add", caller.String(), inc.MyNumber(caller))
	return strptr(encodeU32(inc.MyNumber(caller)))
}

// -----------------------------------------------------------------------------
// Init Snapshot
// -----------------------------------------------------------------------------

// GetAccount returns the account identity stored at init.
//
//go:wasmexport get_account
func GetAccount(_ *string) *string {
	inc := loadIncrementer()
	return strptr(inc.Account().String())
}

// GetBalance returns the balance snapshot stored at init.
//
//go:wasmexport get_balance
func GetBalance(_ *string) *string {
	inc := loadIncrementer()
	return strptr(strconv.FormatUint(inc.Balance(), 10))
}
