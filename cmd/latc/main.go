// Command latc compiles Latte source files to textual LLVM IR.
package main

import (
	"fmt"
	"os"

	"latc/cmd/latc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
