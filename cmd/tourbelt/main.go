// Command tourbelt counts tour belts for every case of a synergy graph input.
//
// Usage:
//
//	tourbelt [input] [-o output] [--log-level debug] [--log-format json] [--config file]
//
// Input is read from stdin when omitted or "-".
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tourbelt:", err)
		os.Exit(1)
	}
}
