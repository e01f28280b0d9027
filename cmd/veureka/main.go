// Command veureka runs the Veureka scripting language: scripts, inline
// expressions, and an interactive REPL.
package main

import (
	"fmt"
	"os"

	"github.com/veureka-lang/veureka-go/cmd/veureka/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
