package contract

import (
	"incrementer/sdk"
)

const (
	aliceAddress = "hive:alice"
	bobAddress   = "hive:bob"
	ownerAddress = "hive:tester"
)

// setupTest gives every test a fresh mock host, a fresh keyspace and a
// known sender.
func setupTest() {
	InitState(true)
	sdk.MockReset()
	cachedEnvLoaded = false
	sdk.MockSetSender(ownerAddress)
}

// initDefault runs contract_init with an empty payload.
func initDefault() {
	ContractInit(nil)
}

// initWith runs contract_init with the given JSON payload.
func initWith(payload string) {
	ContractInit(&payload)
}

// countingState wraps the active store and tallies host reads/writes so the
// cell tests can check when storage is actually touched.
type countingState struct {
	inner  State
	reads  int
	writes int
}

func (c *countingState) Get(key string) *string {
	c.reads++
	return c.inner.Get(key)
}

func (c *countingState) Set(key, value string) {
	c.writes++
	c.inner.Set(key, value)
}

func (c *countingState) Delete(key string) {
	c.inner.Delete(key)
}

// useCountingState swaps the singleton for a counting wrapper and returns it.
func useCountingState() *countingState {
	cs := &countingState{inner: NewMockState()}
	state = cs
	return cs
}
