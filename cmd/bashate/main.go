// Command bashate checks bash scripts for style problems.
package main

import (
	"os"

	"github.com/leapstack-labs/bashate/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
