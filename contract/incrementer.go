package contract

import "incrementer/sdk"

// Incrementer is the contract state: a flag, an eager counter, a lazy
// counter, the per-account counter map, plus the immutable init snapshot
// (deployer account and balance). It owns all of its cells; nothing here is
// shared between instances.
type Incrementer struct {
	boolValue      *ScalarCell[bool]
	number         *ScalarCell[uint32]
	lazyNumber     *LazyCell[uint32]
	accountNumbers *CounterMap
	account        sdk.Address
	balance        uint64
}

// NewIncrementer writes the full set of initial values and the config
// snapshot. Only contract_init may call it, on a fresh keyspace.
func NewIncrementer(initValue bool, initNumber uint32, initLazyNumber uint32, initBalance uint64, account sdk.Address) *Incrementer {
	inc := &Incrementer{
		boolValue:      newScalarCell(BoolValueKey, initValue, encodeBool, decodeBool),
		number:         newScalarCell(NumberKey, initNumber, encodeU32, decodeU32),
		lazyNumber:     newLazyCell(LazyNumberKey, initLazyNumber, encodeU32, decodeU32),
		accountNumbers: newCounterMap(accountNumberKey),
		account:        account,
		balance:        initBalance,
	}
	// persist the lazy seed so later binds observe it
	inc.lazyNumber.Set(initLazyNumber)
	saveContractConfig(&ContractConfig{Account: account, Balance: initBalance})
	return inc
}

// DefaultIncrementer delegates with zero values for every field. It supplies
// defaults and nothing else.
func DefaultIncrementer(account sdk.Address) *Incrementer {
	return NewIncrementer(false, 0, 0, 0, account)
}

// loadIncrementer rebinds the cells to existing storage for one call. The
// scalar cells load here; the lazy cell waits for its first access.
func loadIncrementer() *Incrementer {
	cfg := loadContractConfig()
	if cfg == nil {
		sdk.Abort("contract not initialized")
	}
	return &Incrementer{
		boolValue:      newScalarCell(BoolValueKey, false, encodeBool, decodeBool),
		number:         newScalarCell(NumberKey, 0, encodeU32, decodeU32),
		lazyNumber:     newLazyCell(LazyNumberKey, 0, encodeU32, decodeU32),
		accountNumbers: newCounterMap(accountNumberKey),
		account:        cfg.Account,
		balance:        cfg.Balance,
	}
}

// -----------------------------------------------------------------------------
// Flag
// -----------------------------------------------------------------------------

func (inc *Incrementer) Bool() bool {
	return inc.boolValue.Get()
}

// Flip negates the flag. Calling it twice lands back on the original value.
func (inc *Incrementer) Flip() {
	inc.boolValue.Set(!inc.boolValue.Get())
}

// -----------------------------------------------------------------------------
// Eager Counter
// -----------------------------------------------------------------------------

func (inc *Incrementer) Number() uint32 {
	return inc.number.Get()
}

func (inc *Incrementer) SetNumber(value uint32) {
	inc.number.Set(value)
}

func (inc *Incrementer) Inc(by uint32) {
	addScalar(inc.number, by)
}

// -----------------------------------------------------------------------------
// Lazy Counter
// -----------------------------------------------------------------------------

func (inc *Incrementer) LazyNumber() uint32 {
	return inc.lazyNumber.Get()
}

func (inc *Incrementer) SetLazyNumber(value uint32) {
	inc.lazyNumber.Set(value)
}

func (inc *Incrementer) IncLazy(by uint32) {
	addLazy(inc.lazyNumber, by)
}

// -----------------------------------------------------------------------------
// Per-Account Counters
// -----------------------------------------------------------------------------

// NumberOf reads any account's counter, zero when never written. Reads are
// open to arbitrary accounts; writes stay scoped to the caller below.
func (inc *Incrementer) NumberOf(of sdk.Address) uint32 {
	return inc.accountNumbers.Get(of)
}

// MyNumber returns the counter of the resolved caller. The caller comes in
// as an explicit parameter so the core stays host-independent.
func (inc *Incrementer) MyNumber(caller sdk.Address) uint32 {
	return inc.accountNumbers.Get(caller)
}

func (inc *Incrementer) SetMyNumber(caller sdk.Address, value uint32) {
	inc.accountNumbers.Set(caller, value)
}

func (inc *Incrementer) AddMyNumber(caller sdk.Address, value uint32) {
	inc.accountNumbers.Add(caller, value)
}

// -----------------------------------------------------------------------------
// Init Snapshot
// -----------------------------------------------------------------------------

// Account returns the deployer identity captured at init.
func (inc *Incrementer) Account() sdk.Address {
	return inc.account
}

// Balance returns the balance snapshot captured at init. Never mutated.
func (inc *Incrementer) Balance() uint64 {
	return inc.balance
}

// -----------------------------------------------------------------------------
// Contract Configuration State
// -----------------------------------------------------------------------------

// ContractConfig is the immutable snapshot stored at contract_init.
//
//tinyjson:json
type ContractConfig struct {
	Account sdk.Address `json:"account"`
	Balance uint64      `json:"balance"`
}

// isContractInitialized returns true once contract_init has run.
func isContractInitialized() bool {
	ptr := getState().Get(ContractConfigKey)
	return ptr != nil && *ptr != ""
}

// loadContractConfig loads the init snapshot from state, nil when missing.
func loadContractConfig() *ContractConfig {
	ptr := getState().Get(ContractConfigKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	cfg := &ContractConfig{}
	if err := cfg.UnmarshalJSON([]byte(*ptr)); err != nil {
		sdk.Abort("failed to decode contract config: " + err.Error())
	}
	return cfg
}

// saveContractConfig stores the init snapshot.
func saveContractConfig(cfg *ContractConfig) {
	data, err := cfg.MarshalJSON()
	if err != nil {
		sdk.Abort("failed to encode contract config: " + err.Error())
	}
	getState().Set(ContractConfigKey, string(data))
}
