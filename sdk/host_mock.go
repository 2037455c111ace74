//go:build !wasm

package sdk

import (
	"fmt"
	"strconv"
)

// In-memory stand-in for the wasm host so the contract runs under plain
// go test and the local debug binary. Mirrors the real host ABI one
// function at a time.

var (
	mockKV       = map[string]string{}
	mockBalances = map[string]int64{}
	mockEnv      = defaultMockEnv()
	mockTxSeq    = 0
)

func defaultMockEnv() envJSON {
	return envJSON{
		ContractId:           "contract:incrementer",
		TxId:                 "tx-0",
		BlockId:              "block-0",
		BlockHeight:          0,
		Timestamp:            "2025-01-01T00:00:00",
		Sender:               "hive:test_sender",
		RequiredAuths:        []string{"hive:test_sender"},
		RequiredPostingAuths: []string{},
		Payer:                "hive:test_sender",
	}
}

// MockReset wipes the kv store, balances and env back to defaults between tests.
func MockReset() {
	mockKV = map[string]string{}
	mockBalances = map[string]int64{}
	mockEnv = defaultMockEnv()
	mockTxSeq = 0
}

// MockSetSender switches the calling identity and bumps tx.id so per-tx
// caches in the contract refresh instead of leaking the previous caller.
func MockSetSender(addr string) {
	mockTxSeq++
	mockEnv.Sender = addr
	mockEnv.Payer = addr
	mockEnv.RequiredAuths = []string{addr}
	mockEnv.TxId = "tx-" + strconv.Itoa(mockTxSeq)
}

// MockSetBalance seeds the hive balance returned for an account+asset combo.
func MockSetBalance(addr Address, asset Asset, amount int64) {
	mockBalances[addr.String()+"/"+asset.String()] = amount
}

func log(s *string) *string {
	fmt.Println("SDK log:", *s)
	return s
}

func stateSetObject(key *string, value *string) *string {
	mockKV[*key] = *value
	return nil
}

func stateGetObject(key *string) *string {
	val, ok := mockKV[*key]
	if !ok {
		return nil
	}
	return &val
}

func stateDeleteObject(key *string) *string {
	delete(mockKV, *key)
	return nil
}

func getEnv(arg *string) *string {
	data, err := mockEnv.MarshalJSON()
	if err != nil {
		return nil
	}
	s := string(data)
	return &s
}

func getEnvKey(arg *string) *string {
	var val string
	switch *arg {
	case "contract.id":
		val = mockEnv.ContractId
	case "tx.id":
		val = mockEnv.TxId
	case "block.id":
		val = mockEnv.BlockId
	case "block.timestamp":
		val = mockEnv.Timestamp
	case "msg.sender":
		val = mockEnv.Sender
	default:
		return nil
	}
	return &val
}

func getBalance(arg1 *string, arg2 *string) *string {
	bal := mockBalances[*arg1+"/"+*arg2]
	s := strconv.FormatInt(bal, 10)
	return &s
}

func abort(msg, file *string, line, column *int32) {
	fmt.Println("SDK abort:", *msg)
}

func revert(msg, symbol *string) {
	fmt.Println("SDK revert:", *symbol, *msg)
}
