// Command testswag generates OpenAPI documentation from specs collected
// during a test run.
package main

import (
	"fmt"
	"os"

	"github.com/dev-jwshin/testswag/cmd/testswag/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
