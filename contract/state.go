package contract

import "incrementer/sdk"

// State is the kv surface the cells run against. The host serializes all
// calls into a contract instance, so implementations need no locking.
type State interface {
	Set(key, value string)
	Get(key string) *string
	Delete(key string)
}

// WasmState forwards straight to the host kv imports.
type WasmState struct{}

func (WasmState) Set(key, value string) {
	sdk.StateSetObject(key, value)
}

func (WasmState) Get(key string) *string {
	return sdk.StateGetObject(key)
}

func (WasmState) Delete(key string) {
	sdk.StateDeleteObject(key)
}

// singleton state used everywhere
var state State = WasmState{}

// InitState swaps the backing store. Local debug and tests run on MockState,
// the deployed contract keeps the default WasmState.
func InitState(localDebug bool) {
	if localDebug {
		state = NewMockState()
	} else {
		state = WasmState{}
	}
}

func getState() State {
	return state
}

// stateSetIfChanged avoids unnecessary writes so we dont thrash storage fees.
func stateSetIfChanged(key, value string) {
	if existing := getState().Get(key); existing != nil && *existing == value {
		return
	}
	getState().Set(key, value)
}
