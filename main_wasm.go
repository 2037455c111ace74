//go:build wasm

package main

import (
	_ "incrementer/contract"
)

// main is left empty on purpose; the host invokes the wasm exports directly.
func main() {

}
