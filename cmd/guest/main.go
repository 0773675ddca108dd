// The guest binary reads an encoded benchmark input on stdin, verifies the
// proof batch-size times, and writes its journal to stdout. It is spawned
// by the host's subprocess executor.
package main

import (
	"fmt"
	"os"

	"github.com/consensys/groth16-agg/common"
	"github.com/consensys/groth16-agg/guest"
)

func main() {
	debug := common.DebugLogger("guest")
	debug.Println("reading input from stdin")

	if err := guest.Exec(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
