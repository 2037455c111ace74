package sdk

import "strconv"

// Log writes a message to the host console so we can trace contract steps.
// Example payload: sdk.Log("counter moved")
func Log(s string) {
	log(&s)
}

// Abort stops execution immediately and surfaces the message to the chain, so use sparingly.
// Example payload: sdk.Abort("contract not initialized")
func Abort(msg string) {
	ln := int32(0)
	abort(&msg, nil, &ln, &ln)
	panic(msg)
}

// Revert throws a named error back to the caller (like revert in solidity) with a short symbol.
// Example payload: sdk.Revert("bad input", "input_error")
func Revert(msg string, symbol string) {
	revert(&msg, &symbol)
}

// StateSetObject stores a key/value string pair into contract kv storage.
// Example payload: sdk.StateSetObject("number", "5")
func StateSetObject(key string, value string) {
	stateSetObject(&key, &value)
}

// StateGetObject fetches a key and returns nil when missing.
// Example payload: sdk.StateGetObject("number")
func StateGetObject(key string) *string {
	return stateGetObject(&key)
}

// StateDeleteObject removes the key entirely, handy for cleanup.
// Example payload: sdk.StateDeleteObject("number")
func StateDeleteObject(key string) {
	stateDeleteObject(&key)
}

// GetEnv pulls the JSON env blob from the chain and maps it to the Env struct.
// Example payload: sdk.GetEnv()
func GetEnv() Env {
	raw := getEnv(nil)
	if raw == nil {
		Abort("host returned no environment")
	}
	env, err := parseEnv(*raw)
	if err != nil {
		Abort("failed to parse environment: " + err.Error())
	}
	return env
}

// GetEnvStr returns the raw JSON environment string without parsing.
// Example payload: sdk.GetEnvStr()
func GetEnvStr() string {
	return *getEnv(nil)
}

// GetEnvKey pulls a single env key (like tx.id) to avoid parsing the whole struct.
// Example payload: sdk.GetEnvKey("tx.id")
func GetEnvKey(key string) *string {
	return getEnvKey(&key)
}

// GetBalance queries the hive balance for the given account+asset combo.
// Example payload: sdk.GetBalance(sdk.Address("hive:foo"), sdk.AssetHive)
func GetBalance(address Address, asset Asset) int64 {
	addr := address.String()
	as := asset.String()
	balStr := *getBalance(&addr, &as)
	bal, err := strconv.ParseInt(balStr, 10, 64)
	if err != nil {
		Abort("failed to parse balance: " + err.Error())
	}
	return bal
}
