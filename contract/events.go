package contract

import (
	"fmt"

	"incrementer/sdk"
)

// Short pipe-delimited log lines so explorers can follow state changes
// without scanning storage diffs.

// emitInitEvent marks the one-time init with the deployer and balance snapshot.
func emitInitEvent(account string, balance uint64) {
	sdk.Log(fmt.Sprintf(
		"ci|by:%s|bal:%d",
		account,
		balance,
	))
}

// emitFlipEvent logs the flag value after the flip.
func emitFlipEvent(by string, value bool) {
	sdk.Log(fmt.Sprintf(
		"fl|by:%s|v:%t",
		by,
		value,
	))
}

// emitNumberEvent covers both counters; op is one of set/inc/lset/linc.
func emitNumberEvent(op string, by string, value uint32) {
	sdk.Log(fmt.Sprintf(
		"nr|op:%s|by:%s|v:%d",
		op,
		by,
		value,
	))
}

// emitMyNumberEvent logs per-account counter writes; op is set or add.
func emitMyNumberEvent(op string, account string, value uint32) {
	sdk.Log(fmt.Sprintf(
		"mn|op:%s|acc:%s|v:%d",
		op,
		account,
		value,
	))
}
