package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/atomistic/cmd/kindsctl/commands"
	"github.com/katalvlaran/atomistic/errors"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
