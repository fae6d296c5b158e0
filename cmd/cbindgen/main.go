// Command cbindgen is the entrypoint binary; all of its behavior lives
// in the cmd package so it stays testable without a process boundary.
package main

import (
	"fmt"
	"os"

	"github.com/daedaleanai/cbindgen/cmd"
)

func main() {
	if err := cmd.RunRootCommand(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
