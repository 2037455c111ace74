package contract

import "incrementer/sdk"

// cachedEnv is scoped to the currently executing transaction. Whenever tx.id
// changes we refresh sdk.GetEnv() so repeated caller lookups inside one call
// hit the host once and always see the same snapshot.
var (
	cachedEnv       sdk.Env
	cachedEnvLoaded bool
)

// currentEnv caches the env per tx.id so we dont poke the host api every few lines.
func currentEnv() *sdk.Env {
	var currentTx string
	if txPtr := sdk.GetEnvKey("tx.id"); txPtr != nil {
		currentTx = *txPtr
	}
	if !cachedEnvLoaded || cachedEnv.TxId != currentTx {
		cachedEnv = sdk.GetEnv()
		cachedEnvLoaded = true
	}
	return &cachedEnv
}

// getSenderAddress returns the address of the current transaction sender.
func getSenderAddress() sdk.Address {
	return currentEnv().Sender.Address
}
