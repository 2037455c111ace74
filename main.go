//go:build !wasm

////////////////////////////////////////////////////////////////////////////////
// incrementer: a counter contract for the vsc network
// local debug entry, the deployed contract runs through the wasm exports
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"fmt"

	"incrementer/contract"
)

func main() {
	contract.InitState(true) // true = use MockState

	payload := `{"value":false,"number":4,"lazyNumber":4,"balance":1000}`
	fmt.Println("init:", *contract.ContractInit(&payload))
	fmt.Println("bool:", *contract.GetBool(nil))
	fmt.Println("flip:", *contract.Flip(nil))

	by := `{"by":3}`
	fmt.Println("inc:", *contract.Inc(&by))
	fmt.Println("inc_lazy:", *contract.IncLazy(&by))

	mine := `{"value":7}`
	fmt.Println("set_my_number:", *contract.SetMyNumber(&mine))
	fmt.Println("get_my_number:", *contract.GetMyNumber(nil))
	fmt.Println("get_account:", *contract.GetAccount(nil))
	fmt.Println("get_balance:", *contract.GetBalance(nil))
}
